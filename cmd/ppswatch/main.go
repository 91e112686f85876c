// Command ppswatch is a small inspection tool built on top of the color
// engine: it converts and compares colors from the command line, emits
// SGR parameter lists, samples colors against a named theme, and
// renders labeled PNG swatches. None of this logic lives in the core
// package; ppswatch is an external collaborator the way spec.md 1
// describes CLI entry points.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/SCKelemen/clix"
)

func main() {
	app := clix.NewApp("ppswatch")

	app.Root = clix.NewGroup("ppswatch", "Inspect and render prettypretty colors",
		convertCommand(),
		diffCommand(),
		sgrCommand(),
		themeCommand(),
		swatchCommand(),
	)

	if err := app.Run(context.Background(), nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

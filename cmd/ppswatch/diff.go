package main

import (
	"fmt"

	"github.com/SCKelemen/clix"

	pp "github.com/ok-colors/prettypretty"
)

func diffCommand() *clix.Command {
	cmd := clix.NewCommand("diff", clix.WithCommandShort("Report the perceptual distance between two colors"))
	cmd.Run = func(ctx *clix.Context) error {
		first := ctx.Arg(0)
		second := ctx.Arg(1)
		versionArg := ctx.Arg(2)
		if first == "" || second == "" {
			return fmt.Errorf("usage: ppswatch diff <color1> <color2> [original|revised]")
		}

		a, err := pp.Parse(first)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", first, err)
		}
		b, err := pp.Parse(second)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", second, err)
		}

		version := pp.Revised
		if versionArg == "original" {
			version = pp.Original
		}

		fmt.Printf("%.6f\n", a.Distance(b, version))
		return nil
	}
	return cmd
}

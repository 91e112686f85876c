package main

import (
	"fmt"

	"github.com/SCKelemen/clix"

	pp "github.com/ok-colors/prettypretty"
)

func convertCommand() *clix.Command {
	cmd := clix.NewCommand("convert", clix.WithCommandShort("Convert a color into another color space"))
	cmd.Run = func(ctx *clix.Context) error {
		input := ctx.Arg(0)
		targetTag := ctx.Arg(1)
		if input == "" || targetTag == "" {
			return fmt.Errorf("usage: ppswatch convert <color> <space>")
		}

		c, err := pp.Parse(input)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", input, err)
		}

		target, ok := pp.SpaceByName(targetTag)
		if !ok {
			return fmt.Errorf("unknown color space %q", targetTag)
		}

		fmt.Println(c.To(target).String())
		return nil
	}
	return cmd
}

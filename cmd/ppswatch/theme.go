package main

import (
	"fmt"

	"github.com/SCKelemen/clix"

	pp "github.com/ok-colors/prettypretty"
)

func themeCommand() *clix.Command {
	return clix.NewGroup("theme", "Inspect built-in themes", themeSampleCommand())
}

func themeSampleCommand() *clix.Command {
	cmd := clix.NewCommand("sample", clix.WithCommandShort("Report the closest ANSI slot for a color under a named theme"))
	cmd.Run = func(ctx *clix.Context) error {
		name := ctx.Arg(0)
		input := ctx.Arg(1)
		if name == "" || input == "" {
			return fmt.Errorf("usage: ppswatch theme sample <theme> <color>")
		}

		theme, ok := pp.NamedTheme(name)
		if !ok {
			return fmt.Errorf("unknown theme %q", name)
		}

		c, err := pp.Parse(input)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", input, err)
		}

		sampler := pp.NewSampler(theme, pp.Revised)
		fmt.Println(sampler.ToClosestAnsi(c).String())
		return nil
	}
	return cmd
}

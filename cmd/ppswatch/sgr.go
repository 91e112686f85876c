package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SCKelemen/clix"

	pp "github.com/ok-colors/prettypretty"
)

func sgrCommand() *clix.Command {
	cmd := clix.NewCommand("sgr", clix.WithCommandShort("Print the SGR parameters for a terminal color"))
	cmd.Run = func(ctx *clix.Context) error {
		spec := ctx.Arg(0)
		layerArg := ctx.Arg(1)
		if spec == "" {
			return fmt.Errorf("usage: ppswatch sgr <default|ansi:N|rgb6:r,g,b|gray:N|rgb256:r,g,b|8bit:N> [fg|bg]")
		}

		tc, err := parseTerminalColor(spec)
		if err != nil {
			return err
		}

		layer := pp.Foreground
		if layerArg == "bg" {
			layer = pp.Background
		}

		params := tc.SGRParameters(layer)
		strs := make([]string, len(params))
		for i, p := range params {
			strs[i] = strconv.Itoa(p)
		}
		fmt.Println(strings.Join(strs, ";"))
		return nil
	}
	return cmd
}

func parseTerminalColor(spec string) (pp.TerminalColor, error) {
	kind, rest, _ := strings.Cut(spec, ":")
	switch kind {
	case "default":
		return pp.DefaultColor{}, nil
	case "8bit":
		idx, err := strconv.Atoi(rest)
		if err != nil {
			return nil, fmt.Errorf("invalid 8-bit index %q: %w", rest, err)
		}
		return pp.TerminalColorFrom8Bit(idx)
	case "ansi":
		idx, err := strconv.Atoi(rest)
		if err != nil {
			return nil, fmt.Errorf("invalid ansi index %q: %w", rest, err)
		}
		if idx < 0 || idx > 15 {
			return nil, fmt.Errorf("ansi index %d out of range [0, 15]", idx)
		}
		return pp.TerminalColorFrom8Bit(idx)
	case "rgb6":
		r, g, b, err := parseTriple(rest)
		if err != nil {
			return nil, err
		}
		return pp.NewEmbeddedRgb(uint8(r), uint8(g), uint8(b))
	case "gray":
		level, err := strconv.Atoi(rest)
		if err != nil {
			return nil, fmt.Errorf("invalid gray level %q: %w", rest, err)
		}
		return pp.NewGrayGradient(uint8(level))
	case "rgb256":
		r, g, b, err := parseTriple(rest)
		if err != nil {
			return nil, err
		}
		return pp.NewTrueColor(uint8(r), uint8(g), uint8(b)), nil
	default:
		return nil, fmt.Errorf("unrecognized terminal color kind %q", kind)
	}
}

func parseTriple(s string) (int, int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected \"r,g,b\", got %q", s)
	}
	vals := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid component %q: %w", p, err)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], nil
}

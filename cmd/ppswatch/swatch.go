package main

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"
	"os"

	"github.com/SCKelemen/clix"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	pp "github.com/ok-colors/prettypretty"
)

const (
	swatchSize    = 96
	swatchPadding = 8
)

func swatchCommand() *clix.Command {
	cmd := clix.NewCommand("swatch", clix.WithCommandShort("Render a labeled PNG swatch for a color"))
	cmd.Run = func(ctx *clix.Context) error {
		input := ctx.Arg(0)
		outPath := ctx.Arg(1)
		if input == "" || outPath == "" {
			return fmt.Errorf("usage: ppswatch swatch <color> <output.png>")
		}

		c, err := pp.Parse(input)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", input, err)
		}

		return renderSwatch(c, outPath)
	}
	return cmd
}

func renderSwatch(c pp.Color, outPath string) error {
	height := swatchSize + swatchPadding*2 + 13
	img := image.NewRGBA(image.Rect(0, 0, swatchSize+swatchPadding*2, height))

	fill := stdcolor.RGBA{255, 255, 255, 255}
	for y := 0; y < height; y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			img.Set(x, y, fill)
		}
	}

	srgb := c.To(pp.Srgb).Clip()
	swatchColor := stdcolor.RGBA{
		R: pp.To24Bit(srgb.Coordinates()[0]),
		G: pp.To24Bit(srgb.Coordinates()[1]),
		B: pp.To24Bit(srgb.Coordinates()[2]),
		A: 255,
	}
	for y := swatchPadding; y < swatchPadding+swatchSize; y++ {
		for x := swatchPadding; x < swatchPadding+swatchSize; x++ {
			img.Set(x, y, swatchColor)
		}
	}

	// The label sits on the white page background below the swatch, not
	// on the swatch itself, so it's always legible in black.
	textColor := stdcolor.RGBA{0, 0, 0, 255}

	label := c.ToHexFormat()
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(swatchPadding * 64),
			Y: fixed.Int26_6((swatchPadding + swatchSize + 11) * 64),
		},
	}
	drawer.DrawString(label)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()
	return png.Encode(f, img)
}

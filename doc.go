// Package color is the perceptually-correct color engine at the heart of
// prettypretty: a library for reasoning about color on the terminal.
//
// It unifies three historically distinct worlds:
//
//   - High-resolution floating-point colors in standard color spaces
//     (sRGB, Display P3, Rec. 2020, CIE XYZ, Oklab/Oklch and their
//     lightness-revised variants Oklrab/Oklrch).
//   - Low-resolution, quantized terminal colors (the 16 ANSI slots, the
//     6x6x6 embedded RGB cube, the 24-step gray ramp, and 24-bit true
//     color).
//   - Terminal themes that resolve the first 16 ANSI colors to concrete
//     high-resolution colors, enabling downsampling from full-fidelity
//     colors to whatever a given terminal actually supports.
//
// Every value in this package is immutable; every operation returns a new
// value rather than mutating its receiver. There is no I/O, no shared
// mutable state beyond the optional named-theme registry, and no hidden
// global configuration, so every exported type is safe to use
// concurrently without synchronization.
//
// Basic usage:
//
//	red := color.NewSrgb(1, 0, 0)
//	oklch := red.To(color.Oklch)
//	hex := red.ToHexFormat() // "#FF0000"
//
//	parsed, err := color.Parse("color(oklch 0.7 0.2 120)")
//
//	vga, _ := color.NamedTheme("vga")
//	sampler := color.NewSampler(vga, color.Revised)
//	ansi := sampler.ToClosestAnsi(red)
//
// What this package does not do: control-sequence I/O, ICC profile
// handling, CMYK or spectral color, chromatic adaptation beyond the fixed
// D65 white point implied by the supported spaces, font rendering, or
// emitting anything beyond SGR parameter integers. Those concerns live
// one layer up, in cmd/ppswatch and in the terminal library that embeds
// this package.
package color

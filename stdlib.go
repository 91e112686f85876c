package color

import stdcolor "image/color"

// RGBA implements image/color.Color, letting a Color be used directly
// with the standard library's imaging APIs. The color is converted to
// sRGB, clipped into gamut, and each channel is expanded from 8-bit to
// the 16-bit range image/color.Color expects, fully opaque (prettypretty
// has no alpha channel of its own).
func (c Color) RGBA() (r, g, b, a uint32) {
	s := c.To(Srgb).Clip()
	r8, g8, b8 := To24Bit(s.c0), To24Bit(s.c1), To24Bit(s.c2)
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	a = 0xffff
	return
}

// FromStdColor converts any image/color.Color into a Color in the sRGB
// space.
func FromStdColor(c stdcolor.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return NewSrgb(0, 0, 0)
	}
	// Un-premultiply, then narrow back to 8-bit precision, matching
	// what a caller reading 24-bit truecolor pixels would see.
	r = r * 0xffff / a
	g = g * 0xffff / a
	b = b * 0xffff / a
	return NewSrgb(float64(r>>8)/255, float64(g>>8)/255, float64(b>>8)/255)
}

var _ stdcolor.Color = Color{}

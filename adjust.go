package color

// Lighten returns a copy of the color with its revised lightness (Oklrch
// Lr) increased by amount, then converted back to the original space.
// amount is a raw addition to Lr, not a multiplicative factor; callers
// wanting "20% lighter" should scale by the room left to Lr=1 themselves.
// Lighten and Darken operate in Oklrch rather than Oklch because Lr is
// the perceptually-uniform lightness axis; see OkVersion.
func (c Color) Lighten(amount float64) Color {
	return c.adjustLightness(amount)
}

// Darken is Lighten with the sign flipped.
func (c Color) Darken(amount float64) Color {
	return c.adjustLightness(-amount)
}

func (c Color) adjustLightness(delta float64) Color {
	original := c.space
	oklrch := c.To(Oklrch)
	lr := clampLightness(oklrch.c0 + delta)
	return Color{space: Oklrch, c0: lr, c1: oklrch.c1, c2: oklrch.c2}.normalize().To(original)
}

func clampLightness(lr float64) float64 {
	if lr < 0 {
		return 0
	}
	if lr > 1 {
		return 1
	}
	return lr
}

package color

import "math"

// Distance computes the perceptual distance between two colors as plain
// Euclidean distance in the Cartesian Ok-family space named by version
// (Oklab for Original, Oklrab for Revised). Neither input color needs to
// already be in that space; both are converted first.
func (a Color) Distance(b Color, version OkVersion) float64 {
	space := version.CartesianSpace()
	pa := a.To(space)
	pb := b.To(space)
	d0 := pa.c0 - pb.c0
	d1 := pa.c1 - pb.c1
	d2 := pa.c2 - pb.c2
	return math.Sqrt(d0*d0 + d1*d1 + d2*d2)
}

package color

// Space is the closed enumeration of the 11 color spaces this engine
// understands. Unlike the open, registry-based Space abstraction a
// general-purpose color library needs (new RGB working spaces, new log
// encodings, ...), prettypretty's space graph is fixed by specification:
// every caller-visible operation switches exhaustively over Space rather
// than dispatching through an interface.
type Space uint8

const (
	Srgb Space = iota
	LinearSrgb
	DisplayP3
	LinearDisplayP3
	Rec2020
	LinearRec2020
	Xyz
	Oklab
	Oklch
	Oklrab
	Oklrch
)

// spaceNames holds the lowercase wire tag for each space, as emitted by
// Color.String and accepted by Parse inside a color(...) function.
// Linear variants use the "--linear-..." custom-ident form CSS Color 4
// uses for non-standard idents.
var spaceNames = [...]string{
	Srgb:            "srgb",
	LinearSrgb:      "--linear-srgb",
	DisplayP3:       "display-p3",
	LinearDisplayP3: "--linear-display-p3",
	Rec2020:         "rec2020",
	LinearRec2020:   "--linear-rec2020",
	Xyz:             "xyz",
	Oklab:           "oklab",
	Oklch:           "oklch",
	Oklrab:          "oklrab",
	Oklrch:          "oklrch",
}

// String returns the lowercase wire tag for the space.
func (s Space) String() string {
	if int(s) >= len(spaceNames) {
		return "unknown"
	}
	return spaceNames[s]
}

// spaceByName maps every wire tag (and the bare name without its
// "--linear-" prefix is intentionally NOT accepted, to keep Parse strict)
// back to its Space.
var spaceByName = func() map[string]Space {
	m := make(map[string]Space, len(spaceNames))
	for i, name := range spaceNames {
		m[name] = Space(i)
	}
	return m
}()

// spaceFromName looks up a Space by its lowercase wire tag. The lookup
// itself is case-sensitive; Parse folds case before calling this.
func spaceFromName(name string) (Space, bool) {
	s, ok := spaceByName[name]
	return s, ok
}

// SpaceByName is spaceFromName's exported counterpart, case-folded the
// same way Parse folds a color() function's space tag. It exists for
// callers outside this package (such as a CLI) that need to turn a
// user-supplied space name into a Space.
func SpaceByName(name string) (Space, bool) {
	return spaceFromName(tagFolder.String(name))
}

// IsRGBLike reports whether the space is one of the six bounded RGB-like
// spaces (encoded or linear sRGB / Display P3 / Rec. 2020).
func (s Space) IsRGBLike() bool {
	switch s {
	case Srgb, LinearSrgb, DisplayP3, LinearDisplayP3, Rec2020, LinearRec2020:
		return true
	default:
		return false
	}
}

// IsLinear reports whether the space is the linear-light sibling of one
// of the RGB-like spaces.
func (s Space) IsLinear() bool {
	switch s {
	case LinearSrgb, LinearDisplayP3, LinearRec2020:
		return true
	default:
		return false
	}
}

// IsPolar reports whether the space represents hue as an angle (Oklch or
// Oklrch). Every polar space is also an Ok-family space: IsPolar implies
// IsOkFamily.
func (s Space) IsPolar() bool {
	switch s {
	case Oklch, Oklrch:
		return true
	default:
		return false
	}
}

// IsOkFamily reports whether the space is one of the four Oklab-derived
// spaces (Oklab, Oklch, Oklrab, Oklrch).
func (s Space) IsOkFamily() bool {
	switch s {
	case Oklab, Oklch, Oklrab, Oklrch:
		return true
	default:
		return false
	}
}

// IsBounded reports whether coordinates in this space are expected to lie
// in [0, 1]^3 for an in-gamut color. Only the six RGB-like spaces are
// bounded; XYZ and the Ok family are unbounded.
func (s Space) IsBounded() bool {
	return s.IsRGBLike()
}

// OkVersion selects between the original Oklab/Oklch lightness and the
// Ottosson 2023 revision (Oklrab/Oklrch) that preserves mid-gray
// lightness under the CSS Color 4 "Lr" remapping.
type OkVersion uint8

const (
	Original OkVersion = iota
	Revised
)

// CartesianSpace returns the Cartesian (non-polar) Ok-family space for
// this version: Oklab for Original, Oklrab for Revised.
func (v OkVersion) CartesianSpace() Space {
	if v == Revised {
		return Oklrab
	}
	return Oklab
}

// PolarSpace returns the polar Ok-family space for this version: Oklch
// for Original, Oklrch for Revised.
func (v OkVersion) PolarSpace() Space {
	if v == Revised {
		return Oklrch
	}
	return Oklch
}

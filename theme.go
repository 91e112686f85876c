package color

import "sync"

// ThemeEntry indexes the 18 slots a Theme maps to concrete colors: the
// terminal's default foreground/background plus the 16 ANSI colors, in
// the fixed order spec.md assigns them.
type ThemeEntry uint8

const (
	EntryForeground ThemeEntry = iota
	EntryBackground
	EntryBlack
	EntryRed
	EntryGreen
	EntryYellow
	EntryBlue
	EntryMagenta
	EntryCyan
	EntryWhite
	EntryBrightBlack
	EntryBrightRed
	EntryBrightGreen
	EntryBrightYellow
	EntryBrightBlue
	EntryBrightMagenta
	EntryBrightCyan
	EntryBrightWhite

	themeLength = 18
)

// ThemeEntryFromIndex returns the ThemeEntry at position idx in a
// theme's backing sequence, or an error if idx is out of 0..17.
func ThemeEntryFromIndex(idx int) (ThemeEntry, error) {
	if idx < 0 || idx >= themeLength {
		return 0, &BadIndexError{Index: idx, Len: themeLength}
	}
	return ThemeEntry(idx), nil
}

// ThemeEntryFromAnsiColor returns the ThemeEntry an AnsiColor resolves
// to: its 8-bit index plus 2, since EntryBlack occupies slot 2.
func ThemeEntryFromAnsiColor(c AnsiColor) ThemeEntry {
	return ThemeEntry(c.To8Bit() + 2)
}

// Theme is an immutable 18-entry table mapping the default
// foreground/background and the 16 ANSI colors to concrete
// high-resolution colors.
type Theme struct {
	entries [themeLength]Color
}

// NewTheme builds a Theme from exactly 18 colors, in ThemeEntry order.
// Every entry must be finite and in-gamut sRGB after normalize;
// violating either fails with BadThemeLengthError (wrong count) or
// OutOfRangeError (bad entry).
func NewTheme(colors []Color) (*Theme, error) {
	if len(colors) != themeLength {
		return nil, &BadThemeLengthError{Got: len(colors)}
	}
	t := &Theme{}
	for i, c := range colors {
		srgb := c.To(Srgb)
		if !isFinite(srgb.c0) || !isFinite(srgb.c1) || !isFinite(srgb.c2) || !srgb.InGamut() {
			return nil, &OutOfRangeError{Field: "theme entry", Value: i, Min: 0, Max: themeLength - 1}
		}
		t.entries[i] = c
	}
	return t, nil
}

// Get returns the color stored at entry.
func (t *Theme) Get(entry ThemeEntry) Color {
	return t.entries[entry]
}

// ansiColor returns the color for the ANSI slot a resolves to.
func (t *Theme) ansiColor(a AnsiColor) Color {
	return t.entries[ThemeEntryFromAnsiColor(a)]
}

// themeRegistry holds the built-in named themes, guarded the same way
// the original space registry this package's design is grounded on
// guards its own entries: a RWMutex over a plain map, read-heavy and
// rarely written.
var themeRegistry = struct {
	mu     sync.RWMutex
	themes map[string]*Theme
}{themes: map[string]*Theme{}}

func registerTheme(name string, entries [18]Color) {
	t, err := NewTheme(entries[:])
	if err != nil {
		panic("color: built-in theme " + name + " is invalid: " + err.Error())
	}
	themeRegistry.mu.Lock()
	defer themeRegistry.mu.Unlock()
	themeRegistry.themes[name] = t
}

// RegisterTheme makes t available to later NamedTheme calls under name,
// overwriting any existing theme registered under the same name. It is
// the caller-facing counterpart to the built-in "vga" and "xterm"
// registrations this package performs at init.
func RegisterTheme(name string, t *Theme) {
	themeRegistry.mu.Lock()
	defer themeRegistry.mu.Unlock()
	themeRegistry.themes[name] = t
}

// NamedTheme looks up a theme by name: either one of the built-in themes
// ("vga" or "xterm" ship with this package) or one added with
// RegisterTheme. Safe for concurrent use.
func NamedTheme(name string) (*Theme, bool) {
	themeRegistry.mu.RLock()
	defer themeRegistry.mu.RUnlock()
	t, ok := themeRegistry.themes[name]
	return t, ok
}

func init() {
	registerTheme("vga", [18]Color{
		NewSrgb(170.0/255, 170.0/255, 170.0/255), // Foreground
		NewSrgb(0, 0, 0),                         // Background
		NewSrgb(0, 0, 0),                         // Black
		NewSrgb(170.0/255, 0, 0),                 // Red
		NewSrgb(0, 170.0/255, 0),                 // Green
		NewSrgb(170.0/255, 85.0/255, 0),          // Yellow
		NewSrgb(0, 0, 170.0/255),                 // Blue
		NewSrgb(170.0/255, 0, 170.0/255),         // Magenta
		NewSrgb(0, 170.0/255, 170.0/255),         // Cyan
		NewSrgb(170.0/255, 170.0/255, 170.0/255), // White
		NewSrgb(85.0/255, 85.0/255, 85.0/255),    // BrightBlack
		NewSrgb(1, 85.0/255, 85.0/255),           // BrightRed
		NewSrgb(85.0/255, 1, 85.0/255),           // BrightGreen
		NewSrgb(1, 1, 85.0/255),                  // BrightYellow
		NewSrgb(85.0/255, 85.0/255, 1),           // BrightBlue
		NewSrgb(1, 85.0/255, 1),                  // BrightMagenta
		NewSrgb(85.0/255, 1, 1),                  // BrightCyan
		NewSrgb(1, 1, 1),                         // BrightWhite
	})

	registerTheme("xterm", [18]Color{
		NewSrgb(229.0/255, 229.0/255, 229.0/255), // Foreground
		NewSrgb(0, 0, 0),                         // Background
		NewSrgb(0, 0, 0),                         // Black
		NewSrgb(205.0/255, 0, 0),                 // Red
		NewSrgb(0, 205.0/255, 0),                 // Green
		NewSrgb(205.0/255, 205.0/255, 0),         // Yellow
		NewSrgb(0, 0, 238.0/255),                 // Blue
		NewSrgb(205.0/255, 0, 205.0/255),         // Magenta
		NewSrgb(0, 205.0/255, 205.0/255),         // Cyan
		NewSrgb(229.0/255, 229.0/255, 229.0/255), // White
		NewSrgb(127.0/255, 127.0/255, 127.0/255), // BrightBlack
		NewSrgb(1, 0, 0),                         // BrightRed
		NewSrgb(0, 1, 0),                         // BrightGreen
		NewSrgb(1, 1, 0),                         // BrightYellow
		NewSrgb(92.0/255, 92.0/255, 1),           // BrightBlue
		NewSrgb(1, 0, 1),                         // BrightMagenta
		NewSrgb(0, 1, 1),                         // BrightCyan
		NewSrgb(1, 1, 1),                         // BrightWhite
	})
}

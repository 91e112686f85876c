package color

import "fmt"

// ParseError reports malformed color syntax passed to Parse. It carries
// the offending substring so callers can surface a precise diagnostic.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse color %q: %s", e.Input, e.Reason)
}

// OutOfRangeError reports a constructor argument that violates its range
// constraint, e.g. an EmbeddedRgb coordinate outside 0..=5.
type OutOfRangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s value %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// BadThemeLengthError reports a Theme constructor invoked with a number of
// colors other than the required 18.
type BadThemeLengthError struct {
	Got int
}

func (e *BadThemeLengthError) Error() string {
	return fmt.Sprintf("theme requires exactly 18 colors, got %d", e.Got)
}

// BadIndexError reports indexing into a color or theme beyond its bounds.
type BadIndexError struct {
	Index int
	Len   int
}

func (e *BadIndexError) Error() string {
	return fmt.Sprintf("index %d out of bounds for length %d", e.Index, e.Len)
}

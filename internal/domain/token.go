package domain

import "strconv"

// Token is the parsed classification of one input string.
// The only implementations are [Invalid] and [Spec].
type Token interface {
	isToken()
}

// Invalid marks an input string that is not dice notation.
type Invalid struct{}

func (Invalid) isToken() {}

// Spec is a request to roll Count dice, each with Sides faces.
type Spec struct {
	// Count is the number of dice. Defaults to 1 when the input omits it.
	Count uint64

	// Sides is the number of faces per die. Zero is representable but
	// cannot be rolled.
	Sides uint64
}

func (Spec) isToken() {}

// String renders the spec in normalized notation, e.g. "1d20".
func (s Spec) String() string {
	return strconv.FormatUint(s.Count, 10) + "d" + strconv.FormatUint(s.Sides, 10)
}

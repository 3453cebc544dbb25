package dice

import (
	"strconv"
	"strings"

	"github.com/bft-labs/dieroll/internal/domain"
)

// Token is the classification of one input string: [Invalid] or [Spec].
type Token = domain.Token

// Invalid marks an input that is not dice notation.
type Invalid = domain.Invalid

// Spec is a validated request to roll Count dice of Sides faces.
type Spec = domain.Spec

// Tokenize classifies every input, preserving order.
func Tokenize(inputs []string) []Token {
	tokens := make([]Token, len(inputs))
	for i, s := range inputs {
		tokens[i] = ParseToken(s)
	}
	return tokens
}

// ParseToken classifies a single string as a Spec or Invalid.
// It never panics: empty or overflowing numeric fields are Invalid.
func ParseToken(s string) Token {
	if strings.Count(s, "d") != 1 {
		return Invalid{}
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != 'd' && (c < '0' || c > '9') {
			return Invalid{}
		}
	}

	fore, aft, _ := strings.Cut(s, "d")

	count := uint64(1)
	if fore != "" {
		n, err := strconv.ParseUint(fore, 10, 64)
		if err != nil {
			return Invalid{}
		}
		count = n
	}

	sides, err := strconv.ParseUint(aft, 10, 64)
	if err != nil {
		return Invalid{}
	}

	return Spec{Count: count, Sides: sides}
}

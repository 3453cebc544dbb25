package dice

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/bft-labs/dieroll/internal/domain"
)

// ErrZeroSides indicates a die with no faces, whose range [1, 0] is empty.
var ErrZeroSides = fmt.Errorf("%w: die must have at least one side", domain.ErrInvalidDice)

// ErrTooManyDice indicates a spec asks for more dice than the configured limit.
var ErrTooManyDice = fmt.Errorf("%w: too many dice", domain.ErrInvalidDice)

// MaxDice is the most dice a single Roll will draw, whatever limit the
// caller configures. Larger counts return ErrTooManyDice.
const MaxDice = 1 << 24

// Source yields uniform integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	Uint64N(n uint64) uint64
}

// RollResult holds one value per die rolled, each in [1, sides].
type RollResult []uint64

// Sum adds the rolls without overflowing.
func (r RollResult) Sum() *big.Int {
	total := new(big.Int)
	var v big.Int
	for _, x := range r {
		total.Add(total, v.SetUint64(x))
	}
	return total
}

// Roll draws count independent values from [1, sides].
//
// A zero count yields an empty result. A zero sides count returns
// ErrZeroSides; src is not consulted in either case. A count above MaxDice
// returns ErrTooManyDice.
func Roll(count, sides uint64, src Source) (RollResult, error) {
	if sides == 0 {
		return nil, ErrZeroSides
	}
	if count > MaxDice {
		return nil, fmt.Errorf("%w: %d exceeds limit %d", ErrTooManyDice, count, MaxDice)
	}
	if count == 0 {
		return RollResult{}, nil
	}
	if src == nil {
		return nil, errors.New("dice: nil source")
	}

	rolls := make(RollResult, count)
	for i := range rolls {
		rolls[i] = src.Uint64N(sides) + 1
	}
	return rolls, nil
}

// rollLimited is Roll with an upper bound on count. A zero limit is unbounded.
func rollLimited(spec Spec, limit uint64, src Source) (RollResult, error) {
	if limit > 0 && spec.Count > limit {
		return nil, fmt.Errorf("%w: %d exceeds limit %d", ErrTooManyDice, spec.Count, limit)
	}
	return Roll(spec.Count, spec.Sides, src)
}

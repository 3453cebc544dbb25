// Package dieroll rolls dice written in [count]d<sides> notation.
//
// Example usage:
//
//	src := dieroll.NewSource(42)
//	summary, err := dieroll.Run(os.Stdout, src, []string{"3d6", "d20"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(summary.Total)
package dieroll

import (
	"io"

	"github.com/bft-labs/dieroll/internal/random"
	"github.com/bft-labs/dieroll/pkg/dice"
)

// Summary describes a completed run.
type Summary = dice.Summary

// Source yields uniform integers in [0, n).
type Source = dice.Source

// Run tokenizes, rolls and reports inputs to w, drawing from src.
func Run(w io.Writer, src Source, inputs []string, opts ...dice.Option) (Summary, error) {
	return dice.NewReporter(w, src, opts...).Run(inputs)
}

// NewSource returns a seeded generator. The same seed reproduces a run.
func NewSource(seed uint64) Source {
	return random.NewSource(seed)
}

// NewRandomSource returns a generator seeded from crypto/rand.
func NewRandomSource() (Source, error) {
	seed, err := random.NewSeed()
	if err != nil {
		return nil, err
	}
	return random.NewSource(seed), nil
}

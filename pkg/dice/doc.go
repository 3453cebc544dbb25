// Package dice parses dice notation and rolls it.
//
// The pipeline is one-way: raw strings are classified by [Tokenize], each
// [Spec] is rolled by [Roll] using an explicitly passed [Source], and a
// [Reporter] prints a block per spec followed by the grand total.
//
// # Notation
//
// Only the [count]d<sides> form is understood: "3d6", "d20", "0d6".
// Anything else, including signs, whitespace and modifiers, is [Invalid].
//
// # Randomness
//
// There is no package-level generator. Callers own the Source and pass it in,
// which makes runs reproducible when the Source is seeded:
//
//	src := rand.New(rand.NewPCG(1, 2))
//	r := dice.NewReporter(os.Stdout, src)
//	summary, err := r.Run([]string{"3d6", "d20"})
package dice

package dice_test

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/bft-labs/dieroll/pkg/dice"
)

// ExampleParseToken shows how inputs are classified.
func ExampleParseToken() {
	for _, s := range []string{"3d6", "d20", "3d", "1d6+2"} {
		switch tok := dice.ParseToken(s).(type) {
		case dice.Spec:
			fmt.Printf("%s -> %s\n", s, tok)
		case dice.Invalid:
			fmt.Printf("%s -> invalid\n", s)
		}
	}
	// Output:
	// 3d6 -> 3d6
	// d20 -> 1d20
	// 3d -> invalid
	// 1d6+2 -> invalid
}

// ExampleReporter_Run demonstrates a run with no valid dice.
func ExampleReporter_Run() {
	r := dice.NewReporter(os.Stdout, rand.New(rand.NewPCG(1, 2)))
	if _, err := r.Run([]string{"abc", "2d6d"}); err != nil {
		fmt.Println(err)
	}
	// Output: Total roll:0
}

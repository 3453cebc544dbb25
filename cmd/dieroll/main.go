package main

import (
	"os"

	"github.com/bft-labs/dieroll/internal/cliconfig"
)

func main() {
	if err := runRoot(newRootCmd(), os.Args[1:]); err != nil {
		log := cliconfig.NewLogger(os.Stderr, cliconfig.DefaultConfig().Level())
		log.Error().Err(err).Msg("dieroll")
		os.Exit(1)
	}
}

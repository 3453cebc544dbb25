package main

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/dieroll/internal/cliconfig"
	"github.com/bft-labs/dieroll/internal/random"
	"github.com/bft-labs/dieroll/pkg/dice"
	logAdapter "github.com/bft-labs/dieroll/pkg/log"
)

const longHelp = `Roll dice written in [count]d<sides> notation and print every roll.

Each argument is one dice spec. "3d6" rolls three six-sided dice and "d20"
rolls a single twenty-sided die. Arguments that are not dice notation are
ignored. A report block is printed per spec, followed by the grand total.

Settings are read from flags, then DIEROLL_* environment variables, then
$HOME/.dieroll/config.toml.`

var exampleUsage = strings.TrimSpace(`
  dieroll 3d6 d20 2d10
  dieroll --seed 42 4d6
  dieroll --strict -- 1d8 d12`)

// errStrict reports that strict mode saw tokens it could not roll.
var errStrict = errors.New("some dice could not be rolled")

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRootCmd() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "dieroll [dice...]",
		Short:         "Roll dice from [count]d<sides> notation",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
			if changed["seed"] {
				cfg.SeedSet = true
			}

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			} else if cfgPath != "" {
				return fmt.Errorf("load config: %s does not exist", cfgPath)
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return fmt.Errorf("load env: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := cliconfig.NewLogger(cmd.ErrOrStderr(), cfg.Level())
			log.Debug().Interface("config", cfg).Msg("configuration")

			if !cfg.SeedSet {
				seed, err := random.NewSeed()
				if err != nil {
					return err
				}
				cfg.Seed = seed
			}
			log.Debug().Uint64("seed", cfg.Seed).Msg("random source ready")

			reporter := dice.NewReporter(cmd.OutOrStdout(), random.NewSource(cfg.Seed),
				dice.WithLogger(logAdapter.NewZerologAdapterWithLogger(log)),
				dice.WithMaxCount(cfg.MaxCount),
			)
			summary, err := reporter.Run(args)
			if err != nil {
				return err
			}
			log.Info().
				Int("rolled", summary.Rolled).
				Int("skipped", summary.Skipped).
				Int("failed", summary.Failed).
				Stringer("total", summary.Total).
				Msg("done")

			if cfg.Strict && !summary.Clean() {
				return fmt.Errorf("%w: %d invalid, %d failed", errStrict, summary.Skipped, summary.Failed)
			}
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.dieroll/config.toml)")
	root.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for reproducible rolls (default: random)")
	root.Flags().Uint64Var(&cfg.MaxCount, "max-count", cfg.MaxCount, "maximum dice per spec, 0 for no limit")
	root.Flags().BoolVar(&cfg.Strict, "strict", cfg.Strict, "exit non-zero if any argument could not be rolled")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "stderr log level (debug, info, warn, error)")

	return root
}

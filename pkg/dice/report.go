package dice

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/bft-labs/dieroll/pkg/log"
)

// Option configures optional behavior of a Reporter.
type Option func(*options)

type options struct {
	logger   log.Logger
	maxCount uint64
}

func defaultOptions() options {
	return options{logger: log.NewNoopLogger()}
}

// WithLogger sets the logger used for per-token diagnostics.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxCount caps the number of dice a single spec may roll.
// Zero, the default, means no cap.
func WithMaxCount(n uint64) Option {
	return func(o *options) {
		o.maxCount = n
	}
}

// Summary describes a completed run.
type Summary struct {
	// Total is the grand total across every rolled spec.
	Total *big.Int

	// Rolled is the number of specs that produced a block.
	Rolled int

	// Skipped is the number of inputs that were not dice notation.
	Skipped int

	// Failed is the number of specs that parsed but could not be rolled.
	Failed int
}

// Clean reports whether every input was rolled.
func (s Summary) Clean() bool {
	return s.Skipped == 0 && s.Failed == 0
}

// Reporter drives tokenize, roll and print for a list of inputs.
type Reporter struct {
	out  io.Writer
	src  Source
	opts options
}

// NewReporter creates a Reporter writing to w and drawing from src.
func NewReporter(w io.Writer, src Source, opts ...Option) *Reporter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Reporter{out: w, src: src, opts: o}
}

// Run processes every input in order and prints the grand total.
//
// Inputs that are not dice notation are skipped without output. Specs that
// cannot be rolled are logged at warn level and skipped. The returned error
// is only ever a write error.
func (r *Reporter) Run(inputs []string) (Summary, error) {
	bw := bufio.NewWriter(r.out)
	summary := Summary{Total: new(big.Int)}

	for i, tok := range Tokenize(inputs) {
		spec, ok := tok.(Spec)
		if !ok {
			r.opts.logger.Debug("skipping invalid token",
				log.Int("index", i),
				log.String("token", inputs[i]))
			summary.Skipped++
			continue
		}

		rolls, err := rollLimited(spec, r.opts.maxCount, r.src)
		if err != nil {
			r.opts.logger.Warn("cannot roll dice",
				log.Int("index", i),
				log.String("token", inputs[i]),
				log.Uint64("count", spec.Count),
				log.Uint64("sides", spec.Sides),
				log.Err(err))
			summary.Failed++
			continue
		}

		sum := rolls.Sum()
		writeBlock(bw, spec, rolls, sum)
		summary.Total.Add(summary.Total, sum)
		summary.Rolled++
	}

	fmt.Fprintf(bw, "Total roll:%s\n", summary.Total)
	if err := bw.Flush(); err != nil {
		return summary, fmt.Errorf("write report: %w", err)
	}
	return summary, nil
}

// writeBlock prints one report block. bufio.Writer keeps the first write
// error and reports it on Flush.
func writeBlock(w *bufio.Writer, spec Spec, rolls RollResult, sum *big.Int) {
	w.WriteString(spec.String())
	w.WriteString(":\n\t")
	for _, v := range rolls {
		w.WriteString(strconv.FormatUint(v, 10))
		w.WriteString(", ")
	}
	w.WriteString("\nTotal: ")
	w.WriteString(sum.String())
	w.WriteString("\n---\n")
}

package summary

// Default assembler configuration constants.
const (
	defaultTopN = 5
)

// Assembler computes summary bundles from normalized tables. It holds no
// mutable state: a single Assembler is safe to share across concurrent
// requests.
type Assembler struct {
	topN int
}

// Option applies a configuration option to the Assembler.
type Option func(*Assembler)

// WithTopN sets how many entries top-N rankings return.
func WithTopN(n int) Option {
	return func(a *Assembler) {
		if n > 0 {
			a.topN = n
		}
	}
}

// New creates an Assembler with default configuration.
func New(opts ...Option) *Assembler {
	a := &Assembler{
		topN: defaultTopN,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

package decomposition

import "github.com/rs/zerolog"

// Default tuning values, documented the way matrix/options.go and
// bfs/types.go document theirs.
const (
	// DefaultSeriesParallel is the default for Params.seriesParallel: S5 runs
	// unless explicitly disabled.
	DefaultSeriesParallel = true
	// DefaultThreeSumStrategy names the S9 child-splitting policy used when
	// none is configured.
	DefaultThreeSumStrategy = "balanced"
)

// Option configures a Params at construction time, following the teacher's
// functional-options convention (matrix.Option, bfs's With* helpers).
type Option func(*Params)

// Params holds the driver's recognised options (spec.md §6).
type Params struct {
	directGraphicness bool
	seriesParallel    bool
	completeTree      bool

	threeSumPivotsDistribution string
	threeSumStrategy           string

	logger zerolog.Logger
}

// WithDirectGraphicness makes S2/S3 attempt direct (co)graphicness on any
// node, not just ones with rows<=3 or cols<=3.
func WithDirectGraphicness(enabled bool) Option {
	return func(p *Params) { p.directGraphicness = enabled }
}

// WithSeriesParallel toggles S5; when false, the stage is skipped and its
// flag is set directly without reduction.
func WithSeriesParallel(enabled bool) Option {
	return func(p *Params) { p.seriesParallel = enabled }
}

// WithCompleteTree makes the driver ignore queue.foundIrregularity and pump
// the whole tree to completion even after an irregular leaf is found.
func WithCompleteTree(enabled bool) Option {
	return func(p *Params) { p.completeTree = enabled }
}

// WithThreeSumStrategy sets the policy S9 uses when choosing how to split a
// node across a found 3-separation.
func WithThreeSumStrategy(strategy string) Option {
	return func(p *Params) { p.threeSumStrategy = strategy }
}

// WithThreeSumPivotsDistribution sets the order in which S9 appends the
// shared separator elements to each of the two children it produces:
// "reverse" appends them back-to-front, any other value in ascending index
// order.
func WithThreeSumPivotsDistribution(distribution string) Option {
	return func(p *Params) { p.threeSumPivotsDistribution = distribution }
}

// WithLogger attaches a zerolog.Logger for Trace-level stage tracing, the
// Go-native equivalent of the original's CMR_DEBUG-gated CMRdbgMsg calls.
// When unset, logging is zerolog.Nop() — silent, zero allocation.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Params) { p.logger = logger }
}

// NewParams resolves Option values into a ready-to-use Params, following
// matrix.NewDense-style constructors: defaults first, options applied in
// order, never panics on caller data.
func NewParams(opts ...Option) *Params {
	p := &Params{
		seriesParallel:   DefaultSeriesParallel,
		threeSumStrategy: DefaultThreeSumStrategy,
		logger:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

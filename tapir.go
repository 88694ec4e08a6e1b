package tapir

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/turingtools/tapir/internal/loader"
	"github.com/turingtools/tapir/internal/runtime"
	"github.com/turingtools/tapir/pkg/domain"
)

// Version is the release version reported by the CLI.
var Version = "0.1.0"

// Simulator is the high-level entry point for the Tapir library. It wraps an
// immutable machine definition and evaluates tapes against it, one engine per
// evaluation so independent cases never share mutable state.
type Simulator struct {
	machine   *domain.Machine
	cases     []string
	logger    *slog.Logger
	hooks     domain.RunHooks
	stepLimit int
	Name      string
}

// Option defines a functional option for configuring the Simulator.
type Option func(*Simulator)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRunHooks registers observability hooks invoked on every step and halt.
func WithRunHooks(hooks domain.RunHooks) Option {
	return func(s *Simulator) {
		s.hooks = hooks
	}
}

// WithStepLimit bounds each evaluation to at most n steps. The default (zero)
// is unbounded: a table that never reaches halt runs forever.
func WithStepLimit(n int) Option {
	return func(s *Simulator) {
		s.stepLimit = n
	}
}

// New wraps an already-built machine and optional test cases.
func New(machine *domain.Machine, cases []string, opts ...Option) *Simulator {
	s := &Simulator{
		machine: machine,
		cases:   cases,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads a machine specification file (text or YAML, by extension) and
// returns a simulator over it.
func Load(path string, opts ...Option) (*Simulator, error) {
	spec, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	s := New(spec.Machine, spec.Cases, opts...)
	s.Name = filepath.Base(path)
	return s, nil
}

// Machine returns the immutable machine definition.
func (s *Simulator) Machine() *domain.Machine { return s.machine }

// Cases returns the test-case tapes bundled with the specification.
func (s *Simulator) Cases() []string {
	out := make([]string, len(s.cases))
	copy(out, s.cases)
	return out
}

// Evaluate runs a single tape to halt on a fresh engine and returns the
// result. Errors (unknown symbol, incomplete table, exhausted step budget)
// are local to this evaluation.
func (s *Simulator) Evaluate(ctx context.Context, input string) (*domain.Result, error) {
	eng := runtime.NewEngine(s.machine,
		runtime.WithLogger(s.logger),
		runtime.WithRunHooks(s.hooks),
		runtime.WithStepLimit(s.stepLimit),
	)
	eng.Load(input)
	return eng.Run(ctx)
}

// CaseResult is the outcome of one bundled test case: either a Result or the
// error that aborted that case.
type CaseResult struct {
	Index  int
	Input  string
	Result *domain.Result
	Err    error
}

// EvaluateAll runs every bundled test case in order. A failing case is
// reported in its slot and evaluation continues with the remaining cases.
func (s *Simulator) EvaluateAll(ctx context.Context) []CaseResult {
	results := make([]CaseResult, 0, len(s.cases))
	for i, input := range s.cases {
		res, err := s.Evaluate(ctx, input)
		if err != nil {
			s.logger.Warn("case failed", "case", i+1, "error", err)
		}
		results = append(results, CaseResult{Index: i, Input: input, Result: res, Err: err})
	}
	return results
}

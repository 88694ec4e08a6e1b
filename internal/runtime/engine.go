package runtime

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/turingtools/tapir/pkg/domain"
)

// ErrStepLimit is returned by Run when a configured step budget is exhausted
// before the machine halts.
var ErrStepLimit = errors.New("step limit exceeded")

// Engine owns one mutable execution context (current state, head, tape) and
// runs it to halt against an immutable machine definition. Create one engine
// per concurrent evaluation; the machine itself may be shared.
type Engine struct {
	machine *domain.Machine
	logger  *slog.Logger
	hooks   domain.RunHooks

	// stepLimit bounds Run when > 0. The simulated execution model provides
	// no cycle detection: a table that never reaches halt runs forever
	// unless a budget is configured.
	stepLimit int

	state   domain.Next
	head    int
	tape    *Tape
	steps   int
	input   string
	loaded  bool
	started time.Time // stamped on the first step
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a structured logger for step tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRunHooks registers observability callbacks.
func WithRunHooks(hooks domain.RunHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithStepLimit bounds a run to at most n steps. Zero (the default) means
// unbounded.
func WithStepLimit(n int) Option {
	return func(e *Engine) {
		e.stepLimit = n
	}
}

// NewEngine creates an engine for the given machine.
func NewEngine(machine *domain.Machine, opts ...Option) *Engine {
	e := &Engine{
		machine: machine,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load resets the engine to the initial configuration (state 0, head 0) over
// the given raw input. Trailing whitespace and line termination are stripped;
// each remaining character is one tape cell. Symbols are not validated here:
// an undeclared character surfaces as an UnknownSymbolError on the step that
// reads it.
func (e *Engine) Load(input string) {
	trimmed := strings.TrimRightFunc(input, unicode.IsSpace)
	cells := make([]domain.Symbol, 0, len(trimmed))
	for _, r := range trimmed {
		cells = append(cells, domain.Symbol(r))
	}

	e.tape = NewTape(e.machine.Alphabet().Blank(), cells)
	e.state = domain.ToState(0)
	e.head = 0
	e.steps = 0
	e.input = trimmed
	e.loaded = true
}

// Step executes exactly one transition: read the cell under the head, look up
// the rule, write, move (extending the tape by one blank when the head walks
// off either end), and adopt the rule's next state.
func (e *Engine) Step(ctx context.Context) error {
	if !e.loaded {
		return domain.ErrNoTape
	}
	if e.state.Halted() {
		return domain.ErrHalted
	}
	if e.steps == 0 {
		e.started = time.Now()
	}

	sym := e.tape.Read(e.head)
	rule, err := e.machine.Table().Lookup(e.state.State(), sym)
	if err != nil {
		return err
	}

	e.tape.Write(e.head, rule.Write)

	switch rule.Move {
	case domain.MoveRight:
		e.head++
		if e.head == e.tape.Len() {
			e.tape.ExtendRight()
		}
	case domain.MoveLeft:
		e.head--
		if e.head < 0 {
			e.tape.ExtendLeft()
			e.head = 0
		}
	case domain.MoveStay:
		// no head or tape change
	}

	prev := e.state.State()
	e.state = rule.Next
	e.steps++

	e.logger.Debug("step",
		"state", prev,
		"read", sym.String(),
		"wrote", rule.Write.String(),
		"move", rule.Move.String(),
		"next", rule.Next.String(),
		"head", e.head,
	)

	if e.hooks.OnStep != nil {
		e.hooks.OnStep(ctx, &domain.StepEvent{
			State: prev,
			Head:  e.head,
			Read:  sym,
			Wrote: rule.Write,
			Move:  rule.Move,
			Steps: e.steps,
		})
	}

	if e.state.Halted() && e.hooks.OnHalt != nil {
		e.hooks.OnHalt(ctx, &domain.HaltEvent{
			Head:     e.head,
			Steps:    e.steps,
			Accepted: e.accepted(),
			Duration: time.Since(e.started),
		})
	}
	return nil
}

// Run executes the step loop until the machine halts, then returns the
// result. The loop is unbounded unless a step limit was configured; context
// cancellation is checked between steps.
func (e *Engine) Run(ctx context.Context) (*domain.Result, error) {
	if !e.loaded {
		return nil, domain.ErrNoTape
	}

	for !e.state.Halted() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if e.stepLimit > 0 && e.steps >= e.stepLimit {
			return nil, ErrStepLimit
		}
		if err := e.Step(ctx); err != nil {
			return nil, err
		}
	}

	return &domain.Result{
		Input:    e.input,
		Tape:     e.tape.String(),
		Head:     e.head,
		Steps:    e.steps,
		Accepted: e.accepted(),
	}, nil
}

// Accepted reports the verdict of a halted run: rejected when the cell under
// the head holds the blank symbol, accepted otherwise. Only that single cell
// is inspected. Returns ErrNotHalted while the machine is still running.
func (e *Engine) Accepted() (bool, error) {
	if !e.loaded {
		return false, domain.ErrNoTape
	}
	if !e.state.Halted() {
		return false, domain.ErrNotHalted
	}
	return e.accepted(), nil
}

func (e *Engine) accepted() bool {
	return e.tape.Read(e.head) != e.machine.Alphabet().Blank()
}

// Halted reports whether the engine reached the terminal state.
func (e *Engine) Halted() bool { return e.loaded && e.state.Halted() }

// Head returns the current head position.
func (e *Engine) Head() int { return e.head }

// Steps returns the number of transitions executed since the last Load.
func (e *Engine) Steps() int { return e.steps }

// TapeString returns the current tape contents.
func (e *Engine) TapeString() string {
	if e.tape == nil {
		return ""
	}
	return e.tape.String()
}

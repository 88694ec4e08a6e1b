package domain

import (
	"context"
	"time"
)

// StepEvent describes one executed transition.
type StepEvent struct {
	State int    `json:"state"`
	Head  int    `json:"head"`
	Read  Symbol `json:"read"`
	Wrote Symbol `json:"wrote"`
	Move  Move   `json:"move"`
	Steps int    `json:"steps"` // total steps executed so far, including this one
}

// HaltEvent describes the end of a run.
type HaltEvent struct {
	Head     int  `json:"head"`
	Steps    int  `json:"steps"`
	Accepted bool `json:"accepted"`

	// Duration is the wall-clock time from the run's first step to the halt,
	// measured by the engine so hook sets stay free of per-run state.
	Duration time.Duration `json:"duration"`
}

// RunHooks defines callbacks for engine observability. Nil callbacks are
// skipped. Hooks run synchronously inside the step loop.
type RunHooks struct {
	OnStep func(context.Context, *StepEvent)
	OnHalt func(context.Context, *HaltEvent)
}

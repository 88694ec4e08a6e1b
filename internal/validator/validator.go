// Package validator performs static checks on a machine definition beyond the
// totality guarantee already enforced at construction time.
package validator

import "github.com/turingtools/tapir/pkg/domain"

// Report lists structural findings. None of them make the machine unusable;
// they flag definitions that are likely mistakes.
type Report struct {
	// UnreachableStates are states no chain of transitions from state 0 can
	// reach, whatever the tape contents.
	UnreachableStates []int

	// HaltReachable is false when no reachable state has any rule leading
	// to the halt marker: every run of the machine would loop forever.
	HaltReachable bool
}

// Clean reports whether the check found nothing to flag.
func (r *Report) Clean() bool {
	return len(r.UnreachableStates) == 0 && r.HaltReachable
}

// Check crawls the transition graph from state 0 over all alphabet symbols.
// Reachability here is an over-approximation (it ignores what the tape can
// actually contain), so an "unreachable" finding is always a real one.
func Check(m *domain.Machine) *Report {
	nstates := m.NStates()
	visited := make([]bool, nstates)
	haltReachable := false

	queue := []int{0}
	if nstates > 0 {
		visited[0] = true
	}
	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]

		for _, sym := range m.Alphabet().Symbols() {
			rule, err := m.Table().Lookup(state, sym)
			if err != nil {
				continue // totality is enforced elsewhere
			}
			if rule.Next.Halted() {
				haltReachable = true
				continue
			}
			next := rule.Next.State()
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	report := &Report{HaltReachable: haltReachable}
	for state, seen := range visited {
		if !seen {
			report.UnreachableStates = append(report.UnreachableStates, state)
		}
	}
	return report
}

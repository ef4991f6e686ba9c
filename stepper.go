package search

import "github.com/pdrpinto/search/internal/path"

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[S comparable, A any] struct {
	Current S
	// Frontier counts the entries held per state; a state can be queued more than once.
	Frontier  map[S]int
	Visited   map[S]bool
	Actions   []A
	Done      bool
	Found     bool
	StepIndex int
}

// Stepper runs a search one expansion at a time, to drive UIs or to stop a
// search the caller considers too expensive.
type Stepper[S comparable, A any] struct {
	expander  *expander[S, A]
	stepCount int
}

// NewStepper prepares a search with the same semantics as Search.
// No work is done until Step is called.
func NewStepper[S comparable, A any](
	problem Problem[S, A],
	strategy Strategy,
	heuristic Heuristic[S, A],
	options ...Option,
) *Stepper[S, A] {
	return &Stepper[S, A]{expander: newExpander(problem, strategy, heuristic, options)}
}

// Step pops the next live entry and either expands it or finishes the search.
// Once Done, further calls return the final snapshot without doing work.
func (s *Stepper[S, A]) Step() StepSnapshot[S, A] {
	if !s.expander.done {
		s.stepCount++
		s.expander.advance()
	}
	return s.snapshot()
}

// Done reports whether the search reached a goal or exhausted the frontier.
func (s *Stepper[S, A]) Done() bool { return s.expander.done }

// Result is only meaningful once Done reports true.
func (s *Stepper[S, A]) Result() Result[S, A] {
	if !s.expander.done {
		return Result[S, A]{Stats: s.expander.stats}
	}
	return s.expander.result
}

// RunFor steps at most maxSteps times. The boolean is false when the budget
// ran out before the search finished; the search can be resumed afterwards.
func (s *Stepper[S, A]) RunFor(maxSteps int) (Result[S, A], bool) {
	for i := 0; i < maxSteps && !s.expander.done; i++ {
		s.stepCount++
		s.expander.advance()
	}
	return s.Result(), s.expander.done
}

func (s *Stepper[S, A]) snapshot() StepSnapshot[S, A] {
	e := s.expander
	frontier := make(map[S]int, e.frontier.Len())
	e.frontier.Each(func(item entry[S, A]) { frontier[item.state]++ })
	snapshot := StepSnapshot[S, A]{
		Current:   e.current,
		Frontier:  frontier,
		Visited:   e.visited.Snapshot(),
		Done:      e.done,
		Found:     e.result.Found,
		StepIndex: s.stepCount,
	}
	if e.result.Found {
		snapshot.Actions = path.Clone(e.result.Actions)
	}
	return snapshot
}

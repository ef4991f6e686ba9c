package search

// VisitedSet records states that have been expanded. It only grows.
type VisitedSet[S comparable] struct {
	states map[S]struct{}
}

func NewVisitedSet[S comparable]() *VisitedSet[S] {
	return &VisitedSet[S]{states: make(map[S]struct{})}
}

func (visited *VisitedSet[S]) Contains(state S) bool {
	_, ok := visited.states[state]
	return ok
}

func (visited *VisitedSet[S]) Mark(state S) { visited.states[state] = struct{}{} }

func (visited *VisitedSet[S]) Len() int { return len(visited.states) }

// Snapshot copies the set for callers that outlive the current step.
func (visited *VisitedSet[S]) Snapshot() map[S]bool {
	snapshot := make(map[S]bool, len(visited.states))
	for state := range visited.states {
		snapshot[state] = true
	}
	return snapshot
}

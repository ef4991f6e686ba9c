package search

import (
	"errors"
	"fmt"
)

var ErrInvalidAction = errors.New("action not offered by successors")

// Replay walks actions from the start state through Successors and returns
// every state visited, start included. When two transitions share an action
// the first one listed is taken.
func Replay[S comparable, A comparable](problem Problem[S, A], actions []A) ([]S, error) {
	current := problem.StartState()
	states := make([]S, 0, len(actions)+1)
	states = append(states, current)
	for index, action := range actions {
		next, ok := follow(problem.Successors(current), action)
		if !ok {
			return states, fmt.Errorf("%w: step %d %v from %v", ErrInvalidAction, index, action, current)
		}
		current = next
		states = append(states, current)
	}
	return states, nil
}

func follow[S comparable, A comparable](transitions []Transition[S, A], action A) (S, bool) {
	for _, transition := range transitions {
		if transition.Action == action {
			return transition.State, true
		}
	}
	var zero S
	return zero, false
}

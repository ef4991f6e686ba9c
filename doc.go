// Package search provides generic graph search over implicit state spaces.
//
// A state space is described by a Problem: a start state, a goal test,
// successor generation and a cost for a sequence of actions. Four strategies
// share a single expansion loop and differ only in their frontier:
//
//   - DepthFirstSearch: LIFO stack.
//   - BreadthFirstSearch: FIFO queue.
//   - UniformCostSearch: priority queue keyed by path cost.
//   - AStarSearch: priority queue keyed by path cost plus a heuristic.
//
// The goal test runs when a state is popped. A state is expanded at most once;
// duplicate frontier entries are discarded lazily when they are popped.
//
// Stepper iterates the same loop one expansion at a time to drive UIs or to
// bound a search over a space that may not contain a reachable goal.
package search

package search

import (
	"fmt"
	"time"

	"github.com/pdrpinto/search/internal/path"
)

// entry is one frontier item: a state and the actions that reached it.
type entry[S comparable, A any] struct {
	state   S
	actions []A
	cost    float64
}

func newFrontier[T any](strategy Strategy) Frontier[T] {
	switch strategy {
	case DepthFirst:
		return NewStack[T]()
	case BreadthFirst:
		return NewQueue[T]()
	case UniformCost, AStar:
		return NewPriorityQueue[T]()
	default:
		panic(fmt.Sprintf("search: unsupported strategy %v", strategy))
	}
}

// expander owns the frontier and visited set of a single search call.
type expander[S comparable, A any] struct {
	problem   Problem[S, A]
	strategy  Strategy
	heuristic Heuristic[S, A]
	options   Options

	frontier Frontier[entry[S, A]]
	visited  *VisitedSet[S]

	stats   Stats
	started time.Time
	current S
	done    bool
	result  Result[S, A]
}

func newExpander[S comparable, A any](
	problem Problem[S, A],
	strategy Strategy,
	heuristic Heuristic[S, A],
	options []Option,
) *expander[S, A] {
	if heuristic == nil {
		heuristic = NullHeuristic[S, A]
	}
	e := &expander[S, A]{
		problem:   problem,
		strategy:  strategy,
		heuristic: heuristic,
		options:   applyOptions(options),
		frontier:  newFrontier[entry[S, A]](strategy),
		visited:   NewVisitedSet[S](),
		started:   time.Now(),
	}

	start := problem.StartState()
	e.frontier.Push(entry[S, A]{state: start, actions: []A{}}, 0)
	e.stats.Pushed = 1
	e.stats.MaxFrontier = 1
	e.options.Logger.Debugf("%s search started at %v", strategy, start)
	return e
}

// advance takes entries off the frontier until one state is expanded,
// a goal is popped, or the frontier is exhausted.
func (e *expander[S, A]) advance() {
	if e.done {
		return
	}
	for !e.frontier.IsEmpty() {
		next := e.frontier.Pop()
		// stale duplicate, superseded by an entry popped earlier
		if e.visited.Contains(next.state) {
			e.stats.Discarded++
			continue
		}
		e.visited.Mark(next.state)
		e.current = next.state

		if e.problem.IsGoal(next.state) {
			e.finish(&next)
			return
		}
		e.expand(next)
		return
	}
	e.finish(nil)
}

func (e *expander[S, A]) expand(parent entry[S, A]) {
	successors := e.problem.Successors(parent.state)
	e.stats.Expanded++

	pushed := 0
	for _, transition := range successors {
		if e.visited.Contains(transition.State) {
			continue
		}
		e.push(parent, transition)
		pushed++
	}
	if size := e.frontier.Len(); size > e.stats.MaxFrontier {
		e.stats.MaxFrontier = size
	}

	e.options.Logger.Debugf("expanded %v depth=%d successors=%d pushed=%d frontier=%d",
		parent.state, len(parent.actions), len(successors), pushed, e.frontier.Len())
	event := ExpansionEvent{
		Strategy:     e.strategy,
		Depth:        len(parent.actions),
		Successors:   len(successors),
		Pushed:       pushed,
		FrontierSize: e.frontier.Len(),
	}
	for _, observer := range e.options.Observers {
		observer.OnExpansion(event)
	}
}

func (e *expander[S, A]) push(parent entry[S, A], transition Transition[S, A]) {
	child := entry[S, A]{
		state:   transition.State,
		actions: path.Extend(parent.actions, transition.Action),
	}
	priority := 0.0
	if e.strategy.ordered() {
		if e.options.IncrementalCost {
			child.cost = parent.cost + transition.Cost
		} else {
			child.cost = e.problem.CostOfActions(child.actions)
		}
		priority = child.cost
		if e.strategy == AStar {
			priority += e.heuristic(transition.State, e.problem)
		}
	}
	e.frontier.Push(child, priority)
	e.stats.Pushed++
}

// finish records the outcome; goal is nil when the frontier was exhausted.
func (e *expander[S, A]) finish(goal *entry[S, A]) {
	e.done = true
	e.result = Result[S, A]{Stats: e.stats}
	if goal != nil {
		e.result.Found = true
		e.result.Goal = goal.state
		e.result.Actions = goal.actions
		e.result.Cost = e.problem.CostOfActions(goal.actions)
	}

	elapsed := time.Since(e.started)
	e.options.Logger.Infof("%s search finished: found=%t actions=%d expanded=%d pushed=%d discarded=%d in %s",
		e.strategy, e.result.Found, len(e.result.Actions), e.stats.Expanded, e.stats.Pushed, e.stats.Discarded, elapsed)
	event := CompletionEvent{
		Strategy:   e.strategy,
		Found:      e.result.Found,
		PathLength: len(e.result.Actions),
		Cost:       e.result.Cost,
		Stats:      e.stats,
		Elapsed:    elapsed,
	}
	for _, observer := range e.options.Observers {
		observer.OnCompletion(event)
	}
}

// Search runs strategy on problem until a goal is popped or the frontier is
// empty. heuristic is only consulted by AStar; nil means NullHeuristic.
//
// Every entry carries its full action list, so memory grows with the number
// of pushed entries times the average path length. Search does not return
// on an infinite space without a reachable goal; use a Stepper to bound it.
func Search[S comparable, A any](
	problem Problem[S, A],
	strategy Strategy,
	heuristic Heuristic[S, A],
	options ...Option,
) Result[S, A] {
	e := newExpander(problem, strategy, heuristic, options)
	for !e.done {
		e.advance()
	}
	return e.result
}

// DepthFirstSearch expands the deepest entry first.
func DepthFirstSearch[S comparable, A any](problem Problem[S, A], options ...Option) ([]A, bool) {
	result := Search(problem, DepthFirst, nil, options...)
	return result.Actions, result.Found
}

// BreadthFirstSearch expands the shallowest entry first.
func BreadthFirstSearch[S comparable, A any](problem Problem[S, A], options ...Option) ([]A, bool) {
	result := Search(problem, BreadthFirst, nil, options...)
	return result.Actions, result.Found
}

// UniformCostSearch expands the entry with the least path cost first.
func UniformCostSearch[S comparable, A any](problem Problem[S, A], options ...Option) ([]A, bool) {
	result := Search(problem, UniformCost, nil, options...)
	return result.Actions, result.Found
}

// AStarSearch expands the entry with the lowest path cost plus heuristic
// estimate first. The returned path is optimal when heuristic is admissible.
func AStarSearch[S comparable, A any](problem Problem[S, A], heuristic Heuristic[S, A], options ...Option) ([]A, bool) {
	result := Search(problem, AStar, heuristic, options...)
	return result.Actions, result.Found
}

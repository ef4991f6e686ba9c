package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kataras/golog"
)

// Problem describes an implicit state space.
// S must be comparable so states can be tracked in the visited set.
type Problem[S comparable, A any] interface {
	StartState() S
	IsGoal(state S) bool
	Successors(state S) []Transition[S, A]
	// CostOfActions is only called with sequences the search built from
	// Successors, starting at StartState.
	CostOfActions(actions []A) float64
}

// Transition is one edge out of an expanded state.
type Transition[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Heuristic estimates the remaining cost from state to the nearest goal.
type Heuristic[S comparable, A any] func(state S, problem Problem[S, A]) float64

// NullHeuristic is the zero estimator. A* with it behaves like uniform-cost search.
func NullHeuristic[S comparable, A any](S, Problem[S, A]) float64 { return 0 }

// Stats counts the work done by one search call.
type Stats struct {
	Expanded    int
	Pushed      int
	Discarded   int
	MaxFrontier int
}

// Result contains the outcome of a search
type Result[S comparable, A any] struct {
	Actions []A
	Goal    S
	Cost    float64
	Found   bool
	Stats   Stats
}

// Strategy selects the frontier discipline and priority function.
type Strategy int

const (
	DepthFirst Strategy = iota
	BreadthFirst
	UniformCost
	AStar
)

var ErrUnknownStrategy = errors.New("unknown search strategy")

func (strategy Strategy) String() string {
	switch strategy {
	case DepthFirst:
		return "dfs"
	case BreadthFirst:
		return "bfs"
	case UniformCost:
		return "ucs"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("Strategy(%d)", int(strategy))
	}
}

// ordered reports whether entries are popped by accumulated cost.
func (strategy Strategy) ordered() bool {
	return strategy == UniformCost || strategy == AStar
}

// ParseStrategy accepts short names (dfs, bfs, ucs, astar) and long ones
// (depthFirstSearch, uniform-cost, ...), case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	normalized := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	switch normalized {
	case "dfs", "depthfirst", "depthfirstsearch":
		return DepthFirst, nil
	case "bfs", "breadthfirst", "breadthfirstsearch":
		return BreadthFirst, nil
	case "ucs", "uniformcost", "uniformcostsearch":
		return UniformCost, nil
	case "astar", "a*", "astarsearch":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Options defines parameters for the search.
type Options struct {
	Logger          *golog.Logger
	Observers       []Observer
	IncrementalCost bool
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger routes search logs to logger. Expansions are logged at debug level.
func WithLogger(logger *golog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithObserver adds an observer notified on every expansion and on completion.
func WithObserver(observer Observer) Option {
	return func(options *Options) { options.Observers = append(options.Observers, observer) }
}

// WithIncrementalCost makes uniform-cost and A* derive an entry's cost from
// its parent's cost plus the step cost, instead of calling CostOfActions on the
// whole path at every push. Only equivalent when CostOfActions is the sum of
// the step costs reported by Successors.
func WithIncrementalCost() Option {
	return func(options *Options) { options.IncrementalCost = true }
}

var silentLogger = func() *golog.Logger {
	logger := golog.New()
	logger.SetLevel("disable")
	return logger
}()

func applyOptions(options []Option) Options {
	searchOptions := Options{Logger: silentLogger}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = silentLogger
	}
	return searchOptions
}

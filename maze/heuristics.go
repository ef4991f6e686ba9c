package maze

import (
	"math"

	"github.com/pdrpinto/search"
)

func manhattan(a, b Position) float64 {
	return math.Abs(float64(a.Row-b.Row)) + math.Abs(float64(a.Col-b.Col))
}

// ManhattanHeuristic is admissible when no move costs less than 1.
// Wrap it with Scaled for cheaper cost functions.
func ManhattanHeuristic(goal Position) search.Heuristic[Position, Direction] {
	return func(state Position, _ search.Problem[Position, Direction]) float64 {
		return manhattan(state, goal)
	}
}

// EuclideanHeuristic is admissible when no move costs less than 1.
func EuclideanHeuristic(goal Position) search.Heuristic[Position, Direction] {
	return func(state Position, _ search.Problem[Position, Direction]) float64 {
		return math.Hypot(float64(state.Row-goal.Row), float64(state.Col-goal.Col))
	}
}

// Scaled multiplies every estimate by factor. A distance heuristic scaled by
// PositionProblem.CheapestStep stays admissible under any CostFunc.
func Scaled(heuristic search.Heuristic[Position, Direction], factor float64) search.Heuristic[Position, Direction] {
	return func(state Position, problem search.Problem[Position, Direction]) float64 {
		return factor * heuristic(state, problem)
	}
}

// Heuristic estimates the remaining tour as the cheapest order of visiting
// the unseen corners, measuring every leg in Manhattan distance.
func (p *CornersProblem) Heuristic() search.Heuristic[CornersState, Direction] {
	return func(state CornersState, _ search.Problem[CornersState, Direction]) float64 {
		var remaining []Position
		for index, corner := range p.corners {
			if state.Seen&(1<<index) == 0 {
				remaining = append(remaining, corner)
			}
		}
		return cheapestTour(state.Pos, remaining)
	}
}

func cheapestTour(from Position, remaining []Position) float64 {
	if len(remaining) == 0 {
		return 0
	}
	best := math.Inf(1)
	for index, next := range remaining {
		rest := make([]Position, 0, len(remaining)-1)
		rest = append(rest, remaining[:index]...)
		rest = append(rest, remaining[index+1:]...)
		if cost := manhattan(from, next) + cheapestTour(next, rest); cost < best {
			best = cost
		}
	}
	return best
}

package maze

import (
	"errors"
	"math"

	"github.com/pdrpinto/search"
)

var ErrNoGoal = errors.New("layout has no goal: add a 'G' cell, a single food dot, or pass WithGoal")

// CostFunc prices entering a cell.
type CostFunc func(Position) float64

// UnitCost charges 1 per move.
func UnitCost(Position) float64 { return 1 }

// EastCost makes cells cheaper the further east they are.
func EastCost(p Position) float64 { return math.Pow(0.5, float64(p.Col)) }

// WestCost makes cells more expensive the further east they are.
func WestCost(p Position) float64 { return math.Pow(2, float64(p.Col)) }

// PositionProblem asks for a path from the layout start to a single goal cell.
type PositionProblem struct {
	layout *Layout
	goal   Position
	cost   CostFunc

	expanded map[Position]int
	order    []Position
}

var _ search.Problem[Position, Direction] = (*PositionProblem)(nil)

type positionConfig struct {
	goal    Position
	hasGoal bool
	cost    CostFunc
}

// PositionOption configures a PositionProblem.
type PositionOption func(*positionConfig)

// WithGoal overrides the goal read from the layout.
func WithGoal(goal Position) PositionOption {
	return func(config *positionConfig) { config.goal, config.hasGoal = goal, true }
}

// WithCost replaces UnitCost.
func WithCost(cost CostFunc) PositionOption {
	return func(config *positionConfig) { config.cost = cost }
}

// NewPositionProblem uses the layout's 'G' cell, or its only food dot, as goal
// unless WithGoal is given.
func NewPositionProblem(layout *Layout, options ...PositionOption) (*PositionProblem, error) {
	config := positionConfig{cost: UnitCost}
	switch {
	case layout.HasGoal:
		config.goal, config.hasGoal = layout.Goal, true
	case len(layout.Food) == 1:
		config.goal, config.hasGoal = layout.Food[0], true
	}
	for _, option := range options {
		option(&config)
	}
	if !config.hasGoal {
		return nil, ErrNoGoal
	}
	return &PositionProblem{
		layout:   layout,
		goal:     config.goal,
		cost:     config.cost,
		expanded: make(map[Position]int),
	}, nil
}

func (p *PositionProblem) Goal() Position { return p.goal }

// CheapestStep is the lowest price of entering any open cell of the layout.
func (p *PositionProblem) CheapestStep() float64 {
	cheapest := math.Inf(1)
	for row := 0; row < p.layout.Height; row++ {
		for col := 0; col < p.layout.Width; col++ {
			cell := Position{Row: row, Col: col}
			if p.layout.Open(cell) {
				cheapest = math.Min(cheapest, p.cost(cell))
			}
		}
	}
	return cheapest
}

func (p *PositionProblem) StartState() Position { return p.layout.Start }

func (p *PositionProblem) IsGoal(state Position) bool { return state == p.goal }

func (p *PositionProblem) Successors(state Position) []search.Transition[Position, Direction] {
	p.expanded[state]++
	p.order = append(p.order, state)

	successors := make([]search.Transition[Position, Direction], 0, len(Directions))
	for _, direction := range Directions {
		next := state.Move(direction)
		if !p.layout.Open(next) {
			continue
		}
		successors = append(successors, search.Transition[Position, Direction]{
			State:  next,
			Action: direction,
			Cost:   p.cost(next),
		})
	}
	return successors
}

// CostOfActions returns +Inf when a move runs into a wall.
func (p *PositionProblem) CostOfActions(actions []Direction) float64 {
	current, total := p.layout.Start, 0.0
	for _, action := range actions {
		current = current.Move(action)
		if !p.layout.Open(current) {
			return math.Inf(1)
		}
		total += p.cost(current)
	}
	return total
}

// Expanded reports how many times each cell was passed to Successors.
func (p *PositionProblem) Expanded() map[Position]int {
	counts := make(map[Position]int, len(p.expanded))
	for position, count := range p.expanded {
		counts[position] = count
	}
	return counts
}

// ExpansionOrder lists cells in the order they were expanded.
func (p *PositionProblem) ExpansionOrder() []Position {
	return append([]Position(nil), p.order...)
}

// CornersState is the agent position plus a bitmask of corners touched so far.
type CornersState struct {
	Pos  Position
	Seen uint8
}

const allCorners uint8 = 0b1111

// CornersProblem asks for the shortest tour from the start touching all four corners.
type CornersProblem struct {
	layout   *Layout
	corners  [4]Position
	expanded int
}

var _ search.Problem[CornersState, Direction] = (*CornersProblem)(nil)

func NewCornersProblem(layout *Layout) *CornersProblem {
	return &CornersProblem{layout: layout, corners: layout.Corners()}
}

func (p *CornersProblem) mark(position Position, seen uint8) uint8 {
	for index, corner := range p.corners {
		if corner == position {
			seen |= 1 << index
		}
	}
	return seen
}

func (p *CornersProblem) StartState() CornersState {
	return CornersState{Pos: p.layout.Start, Seen: p.mark(p.layout.Start, 0)}
}

func (p *CornersProblem) IsGoal(state CornersState) bool { return state.Seen == allCorners }

func (p *CornersProblem) Successors(state CornersState) []search.Transition[CornersState, Direction] {
	p.expanded++
	successors := make([]search.Transition[CornersState, Direction], 0, len(Directions))
	for _, direction := range Directions {
		next := state.Pos.Move(direction)
		if !p.layout.Open(next) {
			continue
		}
		successors = append(successors, search.Transition[CornersState, Direction]{
			State:  CornersState{Pos: next, Seen: p.mark(next, state.Seen)},
			Action: direction,
			Cost:   1,
		})
	}
	return successors
}

// CostOfActions returns +Inf when a move runs into a wall.
func (p *CornersProblem) CostOfActions(actions []Direction) float64 {
	current := p.layout.Start
	for _, action := range actions {
		current = current.Move(action)
		if !p.layout.Open(current) {
			return math.Inf(1)
		}
	}
	return float64(len(actions))
}

// Expanded counts calls to Successors.
func (p *CornersProblem) Expanded() int { return p.expanded }

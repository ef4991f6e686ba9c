package maze

import "math/rand"

// Generate builds a borderless layout with clustered walls laid down by
// random walks. start and goal are always left open.
func Generate(width, height, clusters, steps int, density float64, rng *rand.Rand, start, goal Position) *Layout {
	layout := &Layout{
		Width:   width,
		Height:  height,
		Walls:   make(map[Position]bool),
		Start:   start,
		Goal:    goal,
		HasGoal: true,
	}
	for c := 0; c < clusters; c++ {
		p := Position{Row: rng.Intn(height), Col: rng.Intn(width)}
		for s := 0; s < steps; s++ {
			if rng.Float64() < density && p != start && p != goal {
				layout.Walls[p] = true
			}
			next := p.Move(Directions[rng.Intn(len(Directions))])
			if layout.InBounds(next) {
				p = next
			}
		}
	}
	return layout
}

// RandomEndpoints picks two distinct cells for start and goal.
func RandomEndpoints(width, height int, rng *rand.Rand) (Position, Position) {
	for {
		start := Position{Row: rng.Intn(height), Col: rng.Intn(width)}
		goal := Position{Row: rng.Intn(height), Col: rng.Intn(width)}
		if start != goal {
			return start, goal
		}
	}
}

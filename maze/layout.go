// Package maze provides grid state spaces in the style of Pacman layouts.
//
// A layout is a rectangle of cells: '%' is a wall, 'P' the start, '.' food,
// 'G' an explicit goal and ' ' (or 'o') open floor. Row 0 is the top line.
package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrNoStart       = errors.New("layout has no start cell 'P'")
	ErrMultipleStart = errors.New("layout has more than one start cell 'P'")
	ErrMultipleGoal  = errors.New("layout has more than one goal cell 'G'")
	ErrRagged        = errors.New("layout rows have different widths")
	ErrBadCell       = errors.New("unknown layout cell")
	ErrEmpty         = errors.New("layout is empty")
)

// Position is a cell coordinate.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Move returns the neighbouring cell in direction d.
func (p Position) Move(d Direction) Position {
	delta := d.delta()
	return Position{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

// Direction labels a move between adjacent cells.
type Direction string

const (
	North Direction = "North"
	South Direction = "South"
	East  Direction = "East"
	West  Direction = "West"
)

// Directions is the order successors are generated in.
var Directions = []Direction{North, South, East, West}

func (d Direction) delta() Position {
	switch d {
	case North:
		return Position{Row: -1}
	case South:
		return Position{Row: 1}
	case East:
		return Position{Col: 1}
	case West:
		return Position{Col: -1}
	}
	return Position{}
}

// Layout is a parsed maze.
type Layout struct {
	Width  int
	Height int
	Walls  map[Position]bool
	Start  Position
	Food   []Position
	// Goal is only meaningful when HasGoal is set.
	Goal    Position
	HasGoal bool
}

func (l *Layout) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < l.Height && p.Col >= 0 && p.Col < l.Width
}

// Open reports whether p is inside the layout and not a wall.
func (l *Layout) Open(p Position) bool { return l.InBounds(p) && !l.Walls[p] }

// Corners returns the four innermost corner cells, assuming a one-cell
// border of walls: top-left, top-right, bottom-left, bottom-right.
func (l *Layout) Corners() [4]Position {
	top, bottom := 1, l.Height-2
	left, right := 1, l.Width-2
	return [4]Position{
		{Row: top, Col: left},
		{Row: top, Col: right},
		{Row: bottom, Col: left},
		{Row: bottom, Col: right},
	}
}

// Parse reads a layout. Trailing blank lines are ignored.
func Parse(r io.Reader) (*Layout, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	layout := &Layout{
		Width:  len(rows[0]),
		Height: len(rows),
		Walls:  make(map[Position]bool),
	}
	hasStart := false
	for row, line := range rows {
		if len(line) != layout.Width {
			return nil, fmt.Errorf("row %d has width %d, want %d: %w", row, len(line), layout.Width, ErrRagged)
		}
		for col, cell := range line {
			position := Position{Row: row, Col: col}
			switch cell {
			case '%':
				layout.Walls[position] = true
			case ' ', 'o':
			case '.':
				layout.Food = append(layout.Food, position)
			case 'G':
				if layout.HasGoal {
					return nil, fmt.Errorf("row %d col %d: %w", row, col, ErrMultipleGoal)
				}
				layout.Goal, layout.HasGoal = position, true
			case 'P':
				if hasStart {
					return nil, fmt.Errorf("row %d col %d: %w", row, col, ErrMultipleStart)
				}
				layout.Start, hasStart = position, true
			default:
				return nil, fmt.Errorf("row %d col %d %q: %w", row, col, cell, ErrBadCell)
			}
		}
	}
	if !hasStart {
		return nil, ErrNoStart
	}
	return layout, nil
}

// ParseString is Parse over an in-memory layout.
func ParseString(text string) (*Layout, error) { return Parse(strings.NewReader(text)) }

// Load reads a layout file.
func Load(path string) (*Layout, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout: %w", err)
	}
	defer file.Close()
	layout, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

// Render draws the layout with path cells marked '*'.
func Render(layout *Layout, path []Position) string {
	onPath := make(map[Position]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}
	food := make(map[Position]bool, len(layout.Food))
	for _, p := range layout.Food {
		food[p] = true
	}

	var b strings.Builder
	for row := 0; row < layout.Height; row++ {
		for col := 0; col < layout.Width; col++ {
			p := Position{Row: row, Col: col}
			switch {
			case layout.Walls[p]:
				b.WriteByte('%')
			case p == layout.Start:
				b.WriteByte('P')
			case layout.HasGoal && p == layout.Goal:
				b.WriteByte('G')
			case onPath[p]:
				b.WriteByte('*')
			case food[p]:
				b.WriteByte('.')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

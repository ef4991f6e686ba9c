package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdrpinto/search/maze"
)

var (
	wallStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	startStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	goalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	foodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func renderMaze(layout *maze.Layout, cells []maze.Position, color bool) string {
	plain := maze.Render(layout, cells)
	if !color {
		return plain
	}
	var b strings.Builder
	for _, cell := range plain {
		text := string(cell)
		switch cell {
		case '%':
			b.WriteString(wallStyle.Render(text))
		case '*':
			b.WriteString(pathStyle.Render(text))
		case 'P':
			b.WriteString(startStyle.Render(text))
		case 'G':
			b.WriteString(goalStyle.Render(text))
		case '.':
			b.WriteString(foodStyle.Render(text))
		default:
			b.WriteString(text)
		}
	}
	return b.String()
}

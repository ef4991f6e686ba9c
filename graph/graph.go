// Package graph defines search problems over explicit weighted directed graphs,
// typically loaded from YAML files.
package graph

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/search"
)

var (
	ErrUnknownStart    = errors.New("start state has no edges and is not a goal")
	ErrNegativeCost    = errors.New("edge cost must not be negative")
	ErrDuplicateAction = errors.New("action used twice from the same state")
	ErrEmptyState      = errors.New("state name must not be empty")
)

// Edge is a labelled, weighted transition between two named states.
type Edge struct {
	From   string  `yaml:"from" json:"from"`
	To     string  `yaml:"to" json:"to"`
	Action string  `yaml:"action" json:"action"`
	Cost   float64 `yaml:"cost" json:"cost"`
}

// File is the on-disk description of a graph problem.
type File struct {
	Start     string             `yaml:"start" json:"start"`
	Goals     []string           `yaml:"goals" json:"goals"`
	Edges     []Edge             `yaml:"edges" json:"edges"`
	Heuristic map[string]float64 `yaml:"heuristic,omitempty" json:"heuristic,omitempty"`
}

// Problem implements search.Problem[string, string].
// Successors are returned in the order the edges were declared.
type Problem struct {
	start      string
	goals      map[string]bool
	edges      map[string][]search.Transition[string, string]
	estimates  map[string]float64
	expansions map[string]int
	order      []string
}

var _ search.Problem[string, string] = (*Problem)(nil)

// New validates the description and builds a problem from it.
func New(file File) (*Problem, error) {
	if file.Start == "" {
		return nil, fmt.Errorf("start: %w", ErrEmptyState)
	}
	problem := &Problem{
		start:      file.Start,
		goals:      make(map[string]bool, len(file.Goals)),
		edges:      make(map[string][]search.Transition[string, string]),
		estimates:  file.Heuristic,
		expansions: make(map[string]int),
	}
	for _, goal := range file.Goals {
		problem.goals[goal] = true
	}
	for index, edge := range file.Edges {
		if edge.From == "" || edge.To == "" {
			return nil, fmt.Errorf("edge %d: %w", index, ErrEmptyState)
		}
		if edge.Cost < 0 {
			return nil, fmt.Errorf("edge %d %s->%s: %w", index, edge.From, edge.To, ErrNegativeCost)
		}
		action := edge.Action
		if action == "" {
			action = edge.From + "->" + edge.To
		}
		for _, existing := range problem.edges[edge.From] {
			if existing.Action == action {
				return nil, fmt.Errorf("edge %d %q from %s: %w", index, action, edge.From, ErrDuplicateAction)
			}
		}
		problem.edges[edge.From] = append(problem.edges[edge.From], search.Transition[string, string]{
			State:  edge.To,
			Action: action,
			Cost:   edge.Cost,
		})
	}
	if _, ok := problem.edges[file.Start]; !ok && !problem.goals[file.Start] {
		return nil, fmt.Errorf("%q: %w", file.Start, ErrUnknownStart)
	}
	return problem, nil
}

// Parse decodes a YAML graph description.
func Parse(data []byte) (*Problem, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse graph: %w", err)
	}
	return New(file)
}

// Load reads and parses a YAML graph file.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph: %w", err)
	}
	problem, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return problem, nil
}

func (p *Problem) StartState() string { return p.start }

func (p *Problem) IsGoal(state string) bool { return p.goals[state] }

func (p *Problem) Successors(state string) []search.Transition[string, string] {
	p.expansions[state]++
	p.order = append(p.order, state)
	return p.edges[state]
}

// CostOfActions follows actions from the start state. A sequence that leaves
// the graph costs +Inf.
func (p *Problem) CostOfActions(actions []string) float64 {
	state, total := p.start, 0.0
	for _, action := range actions {
		next, cost, ok := p.step(state, action)
		if !ok {
			return math.Inf(1)
		}
		state = next
		total += cost
	}
	return total
}

func (p *Problem) step(state, action string) (string, float64, bool) {
	for _, transition := range p.edges[state] {
		if transition.Action == action {
			return transition.State, transition.Cost, true
		}
	}
	return "", 0, false
}

// Heuristic looks up the estimates declared in the file; missing states estimate 0.
func (p *Problem) Heuristic() search.Heuristic[string, string] {
	return func(state string, _ search.Problem[string, string]) float64 {
		return p.estimates[state]
	}
}

// Expansions reports how many times each state was passed to Successors.
func (p *Problem) Expansions() map[string]int {
	counts := make(map[string]int, len(p.expansions))
	for state, count := range p.expansions {
		counts[state] = count
	}
	return counts
}

// ExpansionOrder lists states in the order they were expanded.
func (p *Problem) ExpansionOrder() []string {
	return append([]string(nil), p.order...)
}

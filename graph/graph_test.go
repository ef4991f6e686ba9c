package graph

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/search"
)

func TestLoad(t *testing.T) {
	problem, err := Load(filepath.Join("testdata", "two_routes.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "S", problem.StartState())
	assert.True(t, problem.IsGoal("G"))
	assert.False(t, problem.IsGoal("S"))

	successors := problem.Successors("S")
	require.Len(t, successors, 2)
	assert.Equal(t, search.Transition[string, string]{State: "C", Action: "short", Cost: 5}, successors[0])
	assert.Equal(t, "long", successors[1].Action)

	// missing action names default to from->to
	assert.Equal(t, "A->B", problem.Successors("A")[0].Action)
	assert.Equal(t, map[string]int{"S": 1, "A": 1}, problem.Expansions())
	assert.Equal(t, []string{"S", "A"}, problem.ExpansionOrder())
}

func TestCostOfActions(t *testing.T) {
	problem, err := Load(filepath.Join("testdata", "two_routes.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 0.0, problem.CostOfActions(nil))
	assert.Equal(t, 3.0, problem.CostOfActions([]string{"long", "A->B", "finish-long"}))
	assert.Equal(t, 10.0, problem.CostOfActions([]string{"short", "finish-short"}))
	assert.True(t, math.IsInf(problem.CostOfActions([]string{"short", "finish-long"}), 1))
}

func TestHeuristic(t *testing.T) {
	problem, err := Load(filepath.Join("testdata", "two_routes.yaml"))
	require.NoError(t, err)

	heuristic := problem.Heuristic()
	assert.Equal(t, 3.0, heuristic("S", problem))
	assert.Equal(t, 0.0, heuristic("G", problem))

	actions, found := search.AStarSearch[string, string](problem, heuristic)
	require.True(t, found)
	assert.Equal(t, []string{"long", "A->B", "finish-long"}, actions)
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name string
		file File
		want error
	}{
		{"empty start", File{Goals: []string{"G"}}, ErrEmptyState},
		{"empty edge end", File{Start: "S", Edges: []Edge{{From: "S"}}}, ErrEmptyState},
		{"negative cost", File{Start: "S", Edges: []Edge{{From: "S", To: "G", Cost: -1}}}, ErrNegativeCost},
		{"duplicate action", File{Start: "S", Edges: []Edge{
			{From: "S", To: "A", Action: "x"},
			{From: "S", To: "B", Action: "x"},
		}}, ErrDuplicateAction},
		{"unknown start", File{Start: "S", Goals: []string{"G"}, Edges: []Edge{{From: "A", To: "G"}}}, ErrUnknownStart},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.file)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := New(File{Start: "S", Goals: []string{"S"}})
	assert.NoError(t, err, "a start that is already a goal needs no edges")
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("start: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse graph")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start: S\nedges:\n  - {from: S, to: T, cost: -2}\n"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrNegativeCost)
	assert.ErrorContains(t, err, path)
}

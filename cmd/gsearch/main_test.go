package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tinyMaze    = filepath.Join("..", "..", "maze", "testdata", "tinyMaze.lay")
	tinyCorners = filepath.Join("..", "..", "maze", "testdata", "tinyCorners.lay")
	eastTrap    = filepath.Join("..", "..", "maze", "testdata", "eastTrap.lay")
	twoRoutes   = filepath.Join("..", "..", "graph", "testdata", "two_routes.yaml")
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestMazeCommand(t *testing.T) {
	out, _, err := execute(t, "maze", "--layout", tinyMaze, "--strategy", "bfs", "--color=false")
	require.NoError(t, err)
	assert.Contains(t, out, "strategy: bfs")
	assert.Contains(t, out, "actions (8): [South South West South West West South West]")
	assert.Contains(t, out, "cost: 8")
	assert.Contains(t, out, "%%***%%")
}

func TestMazeCornersCommand(t *testing.T) {
	out, _, err := execute(t, "maze", "--layout", tinyCorners, "--problem", "corners",
		"--strategy", "astar", "--heuristic", "corners", "--color=false")
	require.NoError(t, err)
	assert.Contains(t, out, "actions (28)")
}

func TestMazeCommandErrors(t *testing.T) {
	_, _, err := execute(t, "maze")
	assert.ErrorContains(t, err, "no layout")

	_, _, err = execute(t, "maze", "--layout", tinyMaze, "--strategy", "greedy")
	assert.ErrorContains(t, err, "unknown search strategy")

	_, _, err = execute(t, "maze", "--layout", tinyMaze, "--heuristic", "chebyshev")
	assert.ErrorContains(t, err, "unknown heuristic")

	_, _, err = execute(t, "maze", "--layout", tinyMaze, "--problem", "food")
	assert.ErrorContains(t, err, "unknown problem")

	_, _, err = execute(t, "maze", "--layout", tinyMaze, "--cost", "free")
	assert.ErrorContains(t, err, "unknown cost function")

	_, _, err = execute(t, "maze", "--layout", tinyCorners)
	assert.ErrorContains(t, err, "no goal")
}

func TestGraphCommand(t *testing.T) {
	out, _, err := execute(t, "graph", "--file", twoRoutes, "--strategy", "ucs")
	require.NoError(t, err)
	assert.Contains(t, out, "actions (3): [long A->B finish-long]")
	assert.Contains(t, out, "cost: 3")
	assert.Contains(t, out, "expansion order: [S A B]")

	out, _, err = execute(t, "graph", "--file", twoRoutes, "--strategy", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "actions (2): [short finish-short]")
}

func TestConfigDefaultsAndOverrides(t *testing.T) {
	config := writeConfig(t, "strategy: dfs\nlayout: "+tinyMaze+"\ncolor: false\nlog_level: info\n")

	out, logs, err := execute(t, "--config", config, "maze")
	require.NoError(t, err)
	assert.Contains(t, out, "strategy: dfs")
	assert.Contains(t, out, "actions (10)")
	assert.Contains(t, logs, "dfs search finished")

	out, _, err = execute(t, "--config", config, "maze", "--strategy", "ucs")
	require.NoError(t, err)
	assert.Contains(t, out, "strategy: ucs")
	assert.Contains(t, out, "actions (8)")
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)

	config, err = LoadConfig(writeConfig(t, "heuristic: euclidean\nincremental_cost: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "euclidean", config.Heuristic)
	assert.True(t, config.IncrementalCost)
	assert.Equal(t, "astar", config.Strategy)

	_, err = LoadConfig(writeConfig(t, "log_level: loud\n"))
	assert.ErrorContains(t, err, "unknown log_level")

	_, err = LoadConfig(writeConfig(t, "strategy: [\n"))
	assert.ErrorContains(t, err, "failed to parse config")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestUnknownLogLevelFlag(t *testing.T) {
	_, _, err := execute(t, "--log-level", "loud", "maze", "--layout", tinyMaze)
	assert.ErrorContains(t, err, "unknown log level")
}

func TestRenderMazeColor(t *testing.T) {
	out, _, err := execute(t, "maze", "--layout", tinyMaze)
	require.NoError(t, err)
	assert.Contains(t, out, "P")
}

var costLine = regexp.MustCompile(`(?m)^cost: (\S+)$`)

func TestMazeEastCostAStarMatchesUniformCost(t *testing.T) {
	for _, heuristic := range []string{"manhattan", "euclidean"} {
		t.Run(heuristic, func(t *testing.T) {
			ucs, _, err := execute(t, "maze", "--layout", eastTrap, "--cost", "east", "--strategy", "ucs", "--color=false")
			require.NoError(t, err)
			astar, logs, err := execute(t, "--log-level", "info", "maze", "--layout", eastTrap, "--cost", "east",
				"--heuristic", heuristic, "--color=false")
			require.NoError(t, err)

			want := costLine.FindStringSubmatch(ucs)
			got := costLine.FindStringSubmatch(astar)
			require.Len(t, want, 2)
			require.Len(t, got, 2)
			assert.Equal(t, "2.4375", want[1])
			assert.Equal(t, want[1], got[1])
			assert.Contains(t, logs, "scaling "+heuristic+" heuristic")
		})
	}
}

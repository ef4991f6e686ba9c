package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/search"
	"github.com/pdrpinto/search/maze"
)

var costFuncs = map[string]maze.CostFunc{
	"unit": maze.UnitCost,
	"east": maze.EastCost,
	"west": maze.WestCost,
}

func newMazeCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Solve a maze layout",
		Long: `Reads a layout ('%' wall, 'P' start, '.' food, 'G' goal) and searches it.
The position problem walks to the goal cell; the corners problem touches all four corners.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaze(cmd, s)
		},
	}
	cmd.Flags().String("layout", "", "layout file")
	cmd.Flags().String("strategy", "astar", "dfs, bfs, ucs or astar")
	cmd.Flags().String("heuristic", "manhattan", "null, manhattan or euclidean (corners problem: null or corners)")
	cmd.Flags().String("problem", "position", "position or corners")
	cmd.Flags().String("cost", "unit", "step cost for the position problem: unit, east or west")
	cmd.Flags().Bool("incremental", false, "accumulate step costs instead of recomputing path costs")
	cmd.Flags().Bool("color", true, "colorize the rendered maze")
	return cmd
}

func runMaze(cmd *cobra.Command, s *settings) error {
	layoutPath := stringSetting(cmd, "layout", s.config.Layout)
	if layoutPath == "" {
		return fmt.Errorf("no layout: pass --layout or set layout in the config file")
	}
	strategy, err := search.ParseStrategy(stringSetting(cmd, "strategy", s.config.Strategy))
	if err != nil {
		return err
	}
	layout, err := maze.Load(layoutPath)
	if err != nil {
		return err
	}
	heuristicName := stringSetting(cmd, "heuristic", s.config.Heuristic)
	options := searchOptions(s, boolSetting(cmd, "incremental", s.config.IncrementalCost))
	color := boolSetting(cmd, "color", s.config.Color)

	var cells []maze.Position
	switch problemName := stringSetting(cmd, "problem", s.config.Problem); problemName {
	case "position":
		costName := stringSetting(cmd, "cost", s.config.Cost)
		cost, ok := costFuncs[costName]
		if !ok {
			return fmt.Errorf("unknown cost function %q", costName)
		}
		problem, err := maze.NewPositionProblem(layout, maze.WithCost(cost))
		if err != nil {
			return err
		}
		heuristic, err := positionHeuristic(heuristicName, problem.Goal())
		if err != nil {
			return err
		}
		// distance estimates assume every move costs at least 1
		if cheapest := problem.CheapestStep(); heuristic != nil && cheapest < 1 {
			s.logger.Infof("scaling %s heuristic by cheapest step cost %g", heuristicName, cheapest)
			heuristic = maze.Scaled(heuristic, cheapest)
		}
		s.logger.Infof("searching %s from %v to %v", layoutPath, layout.Start, problem.Goal())
		result := search.Search[maze.Position, maze.Direction](problem, strategy, heuristic, options...)
		printSummary(cmd, strategy, result)
		if result.Found {
			if cells, err = search.Replay[maze.Position, maze.Direction](problem, result.Actions); err != nil {
				return err
			}
		}
	case "corners":
		problem := maze.NewCornersProblem(layout)
		var heuristic search.Heuristic[maze.CornersState, maze.Direction]
		switch heuristicName {
		case "null", "manhattan":
			// manhattan is the position default; corners falls back to the null estimate
		case "corners":
			heuristic = problem.Heuristic()
		default:
			return fmt.Errorf("unknown corners heuristic %q", heuristicName)
		}
		s.logger.Infof("searching %s for all corners from %v", layoutPath, layout.Start)
		result := search.Search[maze.CornersState, maze.Direction](problem, strategy, heuristic, options...)
		printSummary(cmd, strategy, result)
		if result.Found {
			states, err := search.Replay[maze.CornersState, maze.Direction](problem, result.Actions)
			if err != nil {
				return err
			}
			for _, state := range states {
				cells = append(cells, state.Pos)
			}
		}
	default:
		return fmt.Errorf("unknown problem %q", problemName)
	}

	fmt.Fprint(cmd.OutOrStdout(), renderMaze(layout, cells, color))
	return nil
}

func positionHeuristic(name string, goal maze.Position) (search.Heuristic[maze.Position, maze.Direction], error) {
	switch name {
	case "null":
		return nil, nil
	case "manhattan":
		return maze.ManhattanHeuristic(goal), nil
	case "euclidean":
		return maze.EuclideanHeuristic(goal), nil
	}
	return nil, fmt.Errorf("unknown heuristic %q", name)
}

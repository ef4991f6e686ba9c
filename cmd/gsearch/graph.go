package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/search"
	"github.com/pdrpinto/search/graph"
)

func newGraphCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Solve a YAML graph",
		Long:  `Reads start, goals, edges and optional heuristic estimates from a YAML file and searches it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := stringSetting(cmd, "file", s.config.Graph)
			if path == "" {
				return fmt.Errorf("no graph: pass --file or set graph in the config file")
			}
			strategy, err := search.ParseStrategy(stringSetting(cmd, "strategy", s.config.Strategy))
			if err != nil {
				return err
			}
			problem, err := graph.Load(path)
			if err != nil {
				return err
			}

			var heuristic search.Heuristic[string, string]
			if useEstimates, _ := cmd.Flags().GetBool("estimates"); useEstimates {
				heuristic = problem.Heuristic()
			}
			options := searchOptions(s, boolSetting(cmd, "incremental", s.config.IncrementalCost))
			result := search.Search[string, string](problem, strategy, heuristic, options...)
			printSummary(cmd, strategy, result)
			if result.Found {
				fmt.Fprintf(cmd.OutOrStdout(), "expansion order: %v\n", problem.ExpansionOrder())
			}
			return nil
		},
	}
	cmd.Flags().String("file", "", "graph file")
	cmd.Flags().String("strategy", "astar", "dfs, bfs, ucs or astar")
	cmd.Flags().Bool("estimates", true, "use the file's heuristic estimates for astar")
	cmd.Flags().Bool("incremental", false, "accumulate step costs instead of recomputing path costs")
	return cmd
}

package main

import (
	"fmt"

	"github.com/kataras/golog"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/search"
)

// settings is shared by subcommands after the config file has been applied.
type settings struct {
	configPath string
	config     Config
	logger     *golog.Logger
}

func newRootCmd() *cobra.Command {
	s := &settings{}
	cmd := &cobra.Command{
		Use:           "gsearch",
		Short:         "Find action sequences in mazes and graphs",
		Long:          `gsearch runs depth-first, breadth-first, uniform-cost or A* search over Pacman-style maze layouts and YAML graph files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(s.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				level, _ := cmd.Flags().GetString("log-level")
				if !logLevels[level] {
					return fmt.Errorf("unknown log level %q", level)
				}
				config.LogLevel = level
			}
			s.config = config
			s.logger = golog.New()
			s.logger.SetOutput(cmd.ErrOrStderr())
			s.logger.SetLevel(config.LogLevel)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&s.configPath, "config", "", "YAML file with default settings")
	cmd.PersistentFlags().String("log-level", "warn", "disable, fatal, error, warn, info or debug")

	cmd.AddCommand(newMazeCmd(s), newGraphCmd(s))
	return cmd
}

// stringSetting returns the flag value when it was given, the config value otherwise.
func stringSetting(cmd *cobra.Command, flag, configured string) string {
	if cmd.Flags().Changed(flag) {
		value, _ := cmd.Flags().GetString(flag)
		return value
	}
	return configured
}

func boolSetting(cmd *cobra.Command, flag string, configured bool) bool {
	if cmd.Flags().Changed(flag) {
		value, _ := cmd.Flags().GetBool(flag)
		return value
	}
	return configured
}

func searchOptions(s *settings, incremental bool) []search.Option {
	options := []search.Option{search.WithLogger(s.logger)}
	if incremental {
		options = append(options, search.WithIncrementalCost())
	}
	return options
}

func printSummary[S comparable, A any](cmd *cobra.Command, strategy search.Strategy, result search.Result[S, A]) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "strategy: %s\n", strategy)
	if !result.Found {
		fmt.Fprintln(out, "no solution")
	} else {
		fmt.Fprintf(out, "actions (%d): %v\n", len(result.Actions), result.Actions)
		fmt.Fprintf(out, "cost: %g\n", result.Cost)
	}
	fmt.Fprintf(out, "expanded: %d pushed: %d discarded: %d\n",
		result.Stats.Expanded, result.Stats.Pushed, result.Stats.Discarded)
}

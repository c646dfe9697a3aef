package main

import (
	"context"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/AcrylicShrimp/Chess-Challenge/internal/bench"
	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
	"github.com/AcrylicShrimp/Chess-Challenge/internal/search"
)

var _suites = map[string]func() []bench.Entry{
	"all":         bench.DefaultSuite,
	"openings":    func() []bench.Entry { return bench.Openings },
	"middlegames": func() []bench.Entry { return bench.Middlegames },
	"mates":       func() []bench.Entry { return bench.MatesInOne },
	"endgames":    func() []bench.Entry { return bench.Endgames },
}

func Bench() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Search a built-in set of positions and report the results",
		Long: heredoc.Doc(`bench runs one search per position with a fixed time budget
			and prints the chosen move, the depth, the score and the node count.
			Positions with a known best move are counted as solved or not.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("suite")
			suite, ok := _suites[name]
			if !ok {
				return Errorf("unknown suite %q", name)
			}

			timeBudget, _ := cmd.Flags().GetInt("time")
			jobs, _ := cmd.Flags().GetInt("jobs")
			quiet, _ := cmd.Flags().GetBool("quiet")

			opts := bench.Options{
				TimeBudgetMillis: timeBudget,
				Jobs:             jobs,
				SearchOptions:    searchOptionsFromFlags(cmd),
			}
			if !quiet {
				opts.Progress = os.Stderr
			}

			results, err := bench.Run(context.Background(), suite(), opts)
			if !IsNil(err) {
				return err
			}

			bench.Report(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().String("suite", "all", "Positions to search: all, openings, middlegames, mates or endgames")
	cmd.Flags().Int("time", search.DefaultTimeBudgetMillis, "Time budget per position in milliseconds")
	cmd.Flags().IntP("jobs", "j", 1, "Positions searched at once")
	cmd.Flags().BoolP("quiet", "q", false, "Hide the progress bar")

	return cmd
}

package main

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
	"github.com/AcrylicShrimp/Chess-Challenge/internal/search"
	"github.com/AcrylicShrimp/Chess-Challenge/internal/uci"
)

func Root() *cobra.Command {
	var stopProfile func()

	root := &cobra.Command{
		Use:   "chessbot",
		Short: "A small chess engine speaking UCI",
		Long: heredoc.Doc(`chessbot picks moves with a depth-limited negamax search
			over material and piece advancement. Without a subcommand it reads UCI
			commands from stdin and answers on stdout; logs go to stderr.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// --trace also shows one summary line per search
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}

			if dir, _ := cmd.Flags().GetString("profile"); dir != "" {
				p := profile.Start(profile.ProfilePath(dir), profile.Quiet)
				stopProfile = p.Stop
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if stopProfile != nil {
				stopProfile()
			}
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runUci(cmd)
		},
	}

	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().String("profile", "", "Write a CPU profile to this directory")
	root.PersistentFlags().Int("depth", 0, "Search to a fixed depth instead of the piece-count table")

	root.AddCommand(Uci())
	root.AddCommand(Bench())

	return root
}

func searchOptionsFromFlags(cmd *cobra.Command) []search.SearchOption {
	result := []search.SearchOption{}
	if depth, _ := cmd.Flags().GetInt("depth"); depth > 0 {
		result = append(result, search.WithDepth{Depth: depth})
	}
	return result
}

func Uci() *cobra.Command {
	return &cobra.Command{
		Use:   "uci",
		Short: "Speak UCI on stdin and stdout",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runUci(cmd)
		},
	}
}

func runUci(cmd *cobra.Command) error {
	entry := logrus.WithField("component", "uci")
	searchLogger := &LevelLogger{Entry: entry, Level: logrus.TraceLevel}

	r := uci.NewUciRunner(uci.NewRunner(uci.RunnerOptions{
		SearchOptions: searchOptionsFromFlags(cmd),
		Logger:        Some[Logger](searchLogger),
	}))
	r.Logger = entry

	err := r.Run(cmd.InOrStdin(), cmd.OutOrStdout())
	if !IsNil(err) {
		return err
	}
	return nil
}

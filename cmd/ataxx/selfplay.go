package main

import (
	"ataxx/config"
	"ataxx/experiments"
	"ataxx/searcher/agent"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newSelfPlayCmd(cfg *config.Config) *cobra.Command {
	var (
		matchup experiments.Matchup
		games   int
		outDir  string
	)
	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Play agents against each other and summarise the results",
		Example: "  ataxx selfplay --p1 greedy:2 --p2 random --games 10\n" +
			"  ataxx selfplay --p1 random --p2 greedy --out experiments",
		RunE: func(cmd *cobra.Command, args []string) error {
			if games < 1 {
				return fmt.Errorf("--games must be at least 1, got %d", games)
			}
			advisor := agent.NewAdvisor(cfg.AdvisorOptions()...)
			summary, gameRecords, moveRecords, err := experiments.Run(advisor, matchup, games)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (Player 1): %d wins\n%s (Player 2): %d wins\nDraws: %d\nUnfinished: %d\n",
				matchup.Player1, summary.Wins1, matchup.Player2, summary.Wins2, summary.Draws, summary.Unfinished)

			if outDir == "" {
				return nil
			}
			writer, err := experiments.NewWriter(outDir)
			if err != nil {
				return err
			}
			if err := writer.WriteGameRecords(gameRecords); err != nil {
				return err
			}
			if err := writer.WriteMoveRecords(moveRecords); err != nil {
				return err
			}
			log.Info().Str("dir", writer.Dir()).Msg("stored game and move records")
			return nil
		},
	}

	cmd.Flags().StringVar(&matchup.Player1, "p1", "greedy", "agent for Player 1, <algorithm>[:<depth>]")
	cmd.Flags().StringVar(&matchup.Player2, "p2", "random", "agent for Player 2, <algorithm>[:<depth>]")
	cmd.Flags().IntVar(&games, "games", 1, "number of games")
	cmd.Flags().StringVar(&outDir, "out", "", "directory for CSV game and move records")
	return cmd
}

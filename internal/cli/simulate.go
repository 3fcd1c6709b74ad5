package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okian/proctor/internal/simulate"
)

func (a *app) simulateCommand() *cobra.Command {
	def := simulate.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Submit a synthetic roster to proctord and verify the rankings",
		Example: `  proctor simulate --marines 5000 --workers 16
  proctor simulate --url http://localhost:8080 --seed 42 --output roster.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := simulate.Config{
				BaseURL:    a.v.GetString("url"),
				Marines:    a.v.GetInt("marines"),
				TopN:       a.v.GetInt("top"),
				Workers:    a.v.GetInt("workers"),
				Timeout:    a.v.GetDuration("timeout"),
				Settle:     a.v.GetDuration("settle"),
				Seed:       a.v.GetUint64("seed"),
				OutputFile: a.v.GetString("output"),
			}
			stats, err := simulate.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if err := a.render(stats, func() string { return simulateText(stats) }); err != nil {
				return err
			}
			if len(stats.Inconsistent) > 0 {
				return fmt.Errorf("%d leaderboard inconsistencies", len(stats.Inconsistent))
			}
			return nil
		},
	}
	cmd.Flags().String("url", def.BaseURL, "Base URL of proctord")
	cmd.Flags().Int("marines", def.Marines, "Number of Marines to generate")
	cmd.Flags().IntP("top", "n", def.TopN, "Leaderboard entries to verify per test")
	cmd.Flags().Int("workers", def.Workers, "Concurrent submitters")
	cmd.Flags().Duration("timeout", def.Timeout, "HTTP request timeout")
	cmd.Flags().Duration("settle", def.Settle, "Longest wait for the roster to be scored")
	cmd.Flags().Uint64("seed", 0, "Generator seed (0 picks one)")
	cmd.Flags().StringP("output", "o", "", "Write the generated submissions to this JSON file")
	return cmd
}

func simulateText(s *simulate.Stats) string {
	lines := []string{
		titleStyle.Render("Simulation"),
		row("Generated", fmt.Sprint(s.Generated), ""),
		row("Accepted", fmt.Sprint(s.Accepted), ""),
		row("Duplicate", fmt.Sprint(s.Duplicate), ""),
		row("Rejected", fmt.Sprint(s.Rejected), ""),
		row("Failed", fmt.Sprint(s.Failed), ""),
		row("Scored", fmt.Sprint(s.Scored), ""),
		row("Throughput", fmt.Sprintf("%.0f/s", s.PerSecond), dimStyle.Render(s.Duration.String())),
	}
	if len(s.Inconsistent) == 0 {
		lines = append(lines, verdict(true, "Leaderboards consistent"))
	}
	for _, msg := range s.Inconsistent {
		lines = append(lines, verdict(false, msg))
	}
	return strings.Join(lines, "\n")
}

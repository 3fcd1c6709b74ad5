package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	service "github.com/okian/proctor/internal/app"
	"github.com/okian/proctor/internal/domain/model"
	"github.com/okian/proctor/internal/domain/types"
	"github.com/okian/proctor/pkg/logger"
)

const rosterPoll = 10 * time.Millisecond

// RosterReport is the outcome of scoring a roster file.
type RosterReport struct {
	Scorecards []model.Scorecard        `json:"scorecards"`
	Boards     map[string][]types.Entry `json:"leaderboards"`
	Rejected   map[string]string        `json:"rejected,omitempty"`
}

func (a *app) rosterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster FILE",
		Short: "Score every Marine in a roster file and rank them",
		Long: `Reads a YAML or JSON list of submissions, each with a marine record and
any of pft, cft and body, scores them through the same pipeline proctord
uses, and prints both leaderboards.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var subs []model.Submission
			if err := readRecord(args[0], &subs); err != nil {
				return err
			}
			rep, err := scoreRoster(cmd.Context(), subs, a.v.GetInt("top"), a.v.GetDuration("wait"))
			if err != nil {
				return err
			}
			return a.render(rep, func() string { return rosterText(rep) })
		},
	}
	cmd.Flags().IntP("top", "n", 10, "Leaderboard entries to show per test")
	cmd.Flags().Duration("wait", 30*time.Second, "Longest wait for scoring to finish")
	return cmd
}

func scoreRoster(ctx context.Context, subs []model.Submission, top int, wait time.Duration) (*RosterReport, error) {
	svc := service.New(
		service.WithLogger(logger.Named("roster")),
		service.WithQueueSize(max(len(subs), 1)),
		service.WithDedupeSize(max(len(subs), 1)),
	)
	if err := svc.Start(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = svc.Stop(context.Background()) }()

	rep := &RosterReport{Boards: make(map[string][]types.Entry)}
	marines := make(map[string]struct{})
	for i, sub := range subs {
		receipt, err := svc.Submit(ctx, sub)
		if err != nil {
			if rep.Rejected == nil {
				rep.Rejected = make(map[string]string)
			}
			rep.Rejected[fmt.Sprintf("#%d %s", i+1, sub.Marine.DisplayName())] = err.Error()
			continue
		}
		marines[receipt.MarineID] = struct{}{}
	}

	deadline := time.Now().Add(wait)
	for svc.GetStats(ctx).RosterSize < len(marines) {
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("roster not scored within %s", wait)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(rosterPoll):
		}
	}

	cards, err := svc.List(ctx)
	if err != nil {
		return nil, err
	}
	rep.Scorecards = cards
	for _, b := range types.Boards {
		entries, err := svc.TopN(ctx, b, top)
		if err != nil {
			return nil, err
		}
		rep.Boards[string(b)] = entries
	}
	return rep, nil
}

func rosterText(rep *RosterReport) string {
	out := leaderboardText(types.BoardPFT, rep.Boards[string(types.BoardPFT)]) + "\n\n" +
		leaderboardText(types.BoardCFT, rep.Boards[string(types.BoardCFT)])
	for _, c := range rep.Scorecards {
		for test, msg := range c.Errors {
			out += "\n" + failStyle.Render(fmt.Sprintf("%s %s: %s", c.Marine.DisplayName(), test, msg))
		}
	}
	for who, msg := range rep.Rejected {
		out += "\n" + failStyle.Render(fmt.Sprintf("rejected %s: %s", who, msg))
	}
	return out
}

package main

import (
	"context"
	"time"

	"github.com/KirkDiggler/mentorcast/internal/services/announcer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	announceTables  []string
	announceTimeout time.Duration
)

var announceCmd = &cobra.Command{
	Use:   "announce",
	Short: "Run one announcement pass and exit",
	Long:  `Announces upcoming sessions that have not gone out on every channel yet. Meant for external schedulers.`,
	RunE:  runAnnounce,
}

func init() {
	announceCmd.Flags().StringSliceVar(&announceTables, "table", nil, "limit the pass to these schedule tables")
	announceCmd.Flags().DurationVar(&announceTimeout, "timeout", 10*time.Minute, "abort the pass after this long")
}

func runAnnounce(cmd *cobra.Command, _ []string) error {
	a, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), announceTimeout)
	defer cancel()

	out, err := a.announcer.Announce(ctx, &announcer.AnnounceInput{Tables: announceTables})
	if err != nil {
		return err
	}
	a.log.Info("announce finished",
		zap.Int("tables", out.Tables),
		zap.Int("pending", out.Pending),
		zap.Int("announced", out.Announced),
		zap.Int("busy", out.Busy),
		zap.Int("failed", out.Failed))
	return nil
}

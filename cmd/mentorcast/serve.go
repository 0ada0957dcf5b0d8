package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/mentorcast/internal/handlers/rest"
	"github.com/KirkDiggler/mentorcast/internal/services/announcer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var noAnnouncer bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the scheduled announcer",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&noAnnouncer, "no-announcer", false, "do not schedule announcement passes")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	a, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	handler, err := rest.New(&rest.Config{
		Schedule:  a.schedule,
		Announcer: a.announcer,
		UUID:      a.ids,
		Logger:    a.log,
	})
	if err != nil {
		return err
	}
	server := handler.NewApp()

	var scheduler *announcer.Scheduler
	if !noAnnouncer {
		scheduler, err = announcer.NewScheduler(&announcer.SchedulerConfig{
			Spec:      a.cfg.AnnounceCron,
			Announcer: a.announcer,
			Logger:    a.log,
		})
		if err != nil {
			return err
		}
		if err := scheduler.Start(); err != nil {
			return err
		}
	}

	serveErr := make(chan error, 1)
	go func() {
		a.log.Info("listening", zap.String("addr", a.cfg.Addr()))
		serveErr <- server.Listen(a.cfg.Addr())
	}()

	select {
	case err = <-serveErr:
	case <-ctx.Done():
		a.log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()
	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}
	if shutdownErr := server.ShutdownWithContext(shutdownCtx); shutdownErr != nil {
		a.log.Warn("server shutdown", zap.Error(shutdownErr))
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

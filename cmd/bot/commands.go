package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/myscrumteam-bot/internal/config"
	"github.com/diegoclair/myscrumteam-bot/internal/handlers"
	"github.com/diegoclair/myscrumteam-bot/internal/server"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "myscrumteam-bot",
		Short:         "Slack bot that drives MyScrumTeam for you",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newCheckCmd(),
		newOverviewCmd(),
		newVersionCmd(),
	)

	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve Slack slash commands and run the weekly schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), a)
		},
	}
}

func runServe(ctx context.Context, a *app) error {
	if err := a.cfg.ValidateSlack(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.instance.Scheduler.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer a.instance.Scheduler.Stop()

	go a.instance.Dispatcher.Run(ctx, a.instance.Scheduler.Events())

	handler := handlers.New(
		a.slackClient,
		a.instance.Scrum,
		a.cfg.SlackSigningSecret,
		a.cfg.AuthorizedUserID,
		handlers.WithDebugMode(a.cfg.DebugMode),
		handlers.WithLogger(a.logger.With("component", "slack")),
	)

	srv := &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      server.NewRouter(a.cfg.Version, handler.HandleSlashCommand, a.logger),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Server starting", "port", a.cfg.Port, "version", a.cfg.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	a.logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	a.logger.Info("server stopped")
	return nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Count the open workdays of this week",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			count, err := a.instance.Scrum.CheckOpenHours(cmd.Context())
			if err != nil {
				return fmt.Errorf("checking open hours: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}
}

func newOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Capture the dashboard and print the screenshot path",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			path, err := a.instance.Scrum.Overview(cmd.Context(), "cli")
			if err != nil {
				return fmt.Errorf("capturing overview: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the bot version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			fmt.Fprintln(cmd.OutOrStdout(), config.AppVersion())
			return nil
		},
	}
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/diegoclair/myscrumteam-bot/internal/browser"
	"github.com/diegoclair/myscrumteam-bot/internal/config"
	"github.com/diegoclair/myscrumteam-bot/internal/domain/service"
	"github.com/diegoclair/myscrumteam-bot/internal/screenshot"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app is everything the commands share once config is loaded.
type app struct {
	cfg         *config.Config
	logger      *slog.Logger
	slackClient *slack.Client
	artifacts   *screenshot.Store
	instance    *service.Instance
}

func newApp() (*app, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	slackClient := slack.New(cfg.SlackBotToken)
	artifacts := screenshot.New(cfg.ScreenshotDir)
	opener := browser.NewOpener(browser.OptionsFromConfig(cfg), logger.With("component", "browser"))

	return &app{
		cfg:         cfg,
		logger:      logger,
		slackClient: slackClient,
		artifacts:   artifacts,
		instance:    service.NewInstance(cfg, opener, artifacts, slackClient, logger),
	}, nil
}

func newLogger(level string) *slog.Logger {
	logLevel := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	AuthorizedUserID   string

	ScrumUsername string
	ScrumPassword string
	ScrumBaseURL  string

	ScreenshotDir    string
	Headless         bool
	BrowserPath      string
	WaitTimeout      time.Duration
	OperationTimeout time.Duration

	WeeklyUpdateSchedule  string
	WeeklyCleanupSchedule string
	Timezone              string
	Location              *time.Location

	Port      string
	LogLevel  string
	DebugMode bool
	Version   string
}

func Load() (*Config, error) {
	cfg := &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		AuthorizedUserID:   getEnv("AUTHORIZED_USER_ID", ""),

		ScrumUsername: getEnv("MYSCRUMTEAM_USERNAME", ""),
		ScrumPassword: getEnv("MYSCRUMTEAM_PASSWORD", ""),
		ScrumBaseURL:  strings.TrimSuffix(getEnv("MYSCRUMTEAM_BASE_URL", "https://myscrum.team"), "/"),

		ScreenshotDir:    getEnv("SCREENSHOT_DIR", "./screenshots"),
		Headless:         getEnvBool("HEADLESS", true),
		BrowserPath:      getEnv("BROWSER_PATH", ""),
		WaitTimeout:      getEnvDuration("WAIT_TIMEOUT", 30*time.Second),
		OperationTimeout: getEnvDuration("OPERATION_TIMEOUT", 2*time.Minute),

		WeeklyUpdateSchedule:  getEnv("WEEKLY_UPDATE_SCHEDULE", "0 18 * * 6"),
		WeeklyCleanupSchedule: getEnv("WEEKLY_CLEANUP_SCHEDULE", "0 22 * * 0"),
		Timezone:              getEnv("TIMEZONE", "Europe/Amsterdam"),

		Port:      getEnv("PORT", "3001"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		DebugMode: getEnvBool("DEBUG_MODE", false),
		Version:   AppVersion(),
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.ScrumUsername == "" || c.ScrumPassword == "" {
		errs = append(errs, errors.New("MYSCRUMTEAM_USERNAME and MYSCRUMTEAM_PASSWORD are required"))
	}
	if c.WaitTimeout <= 0 {
		errs = append(errs, errors.New("WAIT_TIMEOUT must be positive"))
	}
	if c.OperationTimeout < 0 {
		errs = append(errs, errors.New("OPERATION_TIMEOUT must not be negative"))
	}
	if c.ScreenshotDir == "" {
		errs = append(errs, errors.New("SCREENSHOT_DIR must not be empty"))
	}
	return errors.Join(errs...)
}

// ValidateSlack checks the settings only the Slack front-end needs.
func (c *Config) ValidateSlack() error {
	var errs []error
	if c.SlackBotToken == "" {
		errs = append(errs, errors.New("SLACK_BOT_TOKEN is required"))
	}
	if c.SlackSigningSecret == "" {
		errs = append(errs, errors.New("SLACK_SIGNING_SECRET is required"))
	}
	if c.AuthorizedUserID == "" {
		errs = append(errs, errors.New("AUTHORIZED_USER_ID is required"))
	}
	return errors.Join(errs...)
}

// DefaultVersion is reported when VERSION is unset.
const DefaultVersion = "dev"

// AppVersion reads VERSION without requiring the rest of the configuration.
func AppVersion() string {
	return getEnv("VERSION", DefaultVersion)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/diegoclair/myscrumteam-bot/internal/domain/contract"
	"github.com/diegoclair/myscrumteam-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/myscrumteam-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

// dispatcher reacts to scheduler events: the weekly reminder goes to the
// owner, the weekly cleanup wipes the screenshot directory.
type dispatcher struct {
	scrum       contract.ScrumService
	artifacts   contract.ArtifactStore
	slackClient contract.SlackClient
	ownerID     string
	logger      *slog.Logger
}

func newDispatcher(scrum contract.ScrumService, artifacts contract.ArtifactStore, slackClient contract.SlackClient, ownerID string, logger *slog.Logger) *dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &dispatcher{
		scrum:       scrum,
		artifacts:   artifacts,
		slackClient: slackClient,
		ownerID:     ownerID,
		logger:      logger,
	}
}

// Run handles events until ctx is done or events is closed.
func (d *dispatcher) Run(ctx context.Context, events <-chan entity.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := d.safeHandle(ctx, event); err != nil {
				d.logger.Error("failed to handle event", "event", string(event.Type), "error", err)
			}
		}
	}
}

// safeHandle turns a panic inside Handle into an error so the loop keeps running.
func (d *dispatcher) safeHandle(ctx context.Context, event entity.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while handling %s: %v", event.Type, r)
		}
	}()
	return d.Handle(ctx, event)
}

func (d *dispatcher) Handle(ctx context.Context, event entity.Event) error {
	switch event.Type {
	case entity.EventWeeklyUpdate:
		return d.sendWeeklyUpdate(ctx)
	case entity.EventWeeklyCleanup:
		removed, err := d.artifacts.Clean()
		if err != nil {
			return fmt.Errorf("failed to clear screenshots: %w", err)
		}
		d.logger.Info("Screenshot folder cleared", "removed", removed)
		return nil
	default:
		return fmt.Errorf("unknown event type %q", event.Type)
	}
}

func (d *dispatcher) sendWeeklyUpdate(ctx context.Context) error {
	if d.ownerID == "" {
		return fmt.Errorf("no owner configured for the weekly update")
	}

	message := ""
	count, checkErr := d.scrum.CheckOpenHours(ctx)
	if checkErr != nil {
		message = slackcmd.WeeklyUpdateFailedText()
	} else {
		message = slackcmd.WeeklyUpdateText(count)
	}

	_, _, err := d.slackClient.PostMessage(
		d.ownerID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	if checkErr != nil {
		return fmt.Errorf("failed to check open hours: %w", checkErr)
	}
	return nil
}

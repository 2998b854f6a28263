package service

import (
	"log/slog"

	"github.com/diegoclair/myscrumteam-bot/internal/config"
	"github.com/diegoclair/myscrumteam-bot/internal/domain/contract"
	"github.com/diegoclair/myscrumteam-bot/internal/domain/entity"
)

type Instance struct {
	Scrum      *scrumService
	Scheduler  *scheduler
	Dispatcher *dispatcher
}

func NewInstance(cfg *config.Config, opener contract.SiteOpener, artifacts contract.ArtifactStore, slackClient contract.SlackClient, logger *slog.Logger) *Instance {
	scrum := newScrum(opener, artifacts, entity.DefaultPalette, cfg.OperationTimeout, logger.With("component", "scrum"))

	specs := map[entity.EventType]string{
		entity.EventWeeklyUpdate:  cfg.WeeklyUpdateSchedule,
		entity.EventWeeklyCleanup: cfg.WeeklyCleanupSchedule,
	}

	return &Instance{
		Scrum:      scrum,
		Scheduler:  newScheduler(specs, cfg.Location, logger.With("component", "scheduler")),
		Dispatcher: newDispatcher(scrum, artifacts, slackClient, cfg.AuthorizedUserID, logger.With("component", "events")),
	}
}

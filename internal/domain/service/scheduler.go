package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/diegoclair/myscrumteam-bot/internal/domain/entity"
	"github.com/robfig/cron/v3"
)

const eventBuffer = 4

// scheduler fires the weekly events on their cron specs and hands them to
// whoever reads Events. A full buffer drops the event instead of blocking cron.
type scheduler struct {
	cron    *cron.Cron
	specs   map[entity.EventType]string
	events  chan entity.Event
	logger  *slog.Logger
	now     func() time.Time
	running bool
}

func newScheduler(specs map[entity.EventType]string, loc *time.Location, logger *slog.Logger) *scheduler {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		specs:  specs,
		events: make(chan entity.Event, eventBuffer),
		logger: logger,
		now:    time.Now,
	}
}

// Events is the channel the dispatcher consumes.
func (s *scheduler) Events() <-chan entity.Event {
	return s.events
}

func (s *scheduler) Start() error {
	if s.running {
		return nil
	}

	for eventType, spec := range s.specs {
		eventType := eventType
		if _, err := s.cron.AddFunc(spec, func() { s.emit(eventType) }); err != nil {
			return fmt.Errorf("invalid schedule %q for %s: %w", spec, eventType, err)
		}
		s.logger.Info("event scheduled", "event", string(eventType), "spec", spec)
	}

	s.cron.Start()
	s.running = true
	s.logger.Info("Scheduler started")
	return nil
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	<-s.cron.Stop().Done()
	s.running = false
	s.logger.Info("Scheduler stopped")
}

func (s *scheduler) emit(eventType entity.EventType) {
	event := entity.Event{Type: eventType, FiredAt: s.now()}
	select {
	case s.events <- event:
		s.logger.Info("event fired", "event", string(eventType))
	default:
		s.logger.Warn("event dropped, dispatcher is behind", "event", string(eventType))
	}
}

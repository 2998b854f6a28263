package entity

import "time"

type EventType string

const (
	EventWeeklyUpdate  EventType = "weekly-update"
	EventWeeklyCleanup EventType = "weekly-cleanup"
)

// Event is emitted by the scheduler and consumed by the event dispatcher.
type Event struct {
	Type    EventType
	FiredAt time.Time
}

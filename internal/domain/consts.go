package domain

import (
	"time"

	"github.com/diegoclair/myscrumteam-bot/internal/domain/entity"
)

const (
	// MaxWeekAdvances bounds the forward pagination when looking up a date.
	MaxWeekAdvances = 5

	// SettleDelay is the pause after a calendar action; the page re-renders
	// asynchronously without any completion signal.
	SettleDelay = 500 * time.Millisecond

	// MinPlanningAmount and MaxPlanningAmount bound how far sprint planning may page.
	MinPlanningAmount = -9
	MaxPlanningAmount = 9

	// DateLayout is the ISO date format used by the calendar cells.
	DateLayout = "2006-01-02"

	// WatermarkText replaces the profile name on planning screenshots.
	WatermarkText = "ScrumBuddy"
)

// PlanningViews maps the accepted planning options to calendar views.
// An empty option means the default week view.
var PlanningViews = map[string]entity.PlanningView{
	"":      entity.ViewWeek,
	"week":  entity.ViewWeek,
	"day":   entity.ViewDay,
	"month": entity.ViewMonth,
}

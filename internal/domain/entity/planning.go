package entity

// PlannedStatus is the answer to "is this date already planned". Unknown means
// the date could not be located and must not be read as "not planned".
type PlannedStatus int

const (
	PlannedUnknown PlannedStatus = iota
	PlannedNo
	PlannedYes
)

func (s PlannedStatus) String() string {
	switch s {
	case PlannedNo:
		return "not planned"
	case PlannedYes:
		return "planned"
	default:
		return "unknown"
	}
}

// PlanOutcome reports what happened after clicking a day to plan it.
type PlanOutcome int

const (
	PlanNotFound PlanOutcome = iota
	PlanUnconfirmed
	PlanConfirmed
)

func (o PlanOutcome) String() string {
	switch o {
	case PlanUnconfirmed:
		return "unconfirmed"
	case PlanConfirmed:
		return "confirmed"
	default:
		return "not found"
	}
}

// PlanningView is the calendar view used for sprint planning screenshots.
type PlanningView string

const (
	ViewDay   PlanningView = "day"
	ViewWeek  PlanningView = "week"
	ViewMonth PlanningView = "month"
)

// PlanningRequest selects which part of the sprint planning gets captured.
// Amount pages forward (positive) or backward (negative) from the current period.
type PlanningRequest struct {
	View   PlanningView
	Amount int
}

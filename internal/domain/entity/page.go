package entity

// Page names a MyScrumTeam page; the browser layer resolves it to a URL.
type Page int

const (
	PageHome Page = iota
	PageDashboard
	PagePlanning
	PagePlanningEnglish
)

// Element names a page element that can be captured on its own.
type Element int

const (
	ElementSprintHours Element = iota
)

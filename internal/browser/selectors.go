package browser

import (
	"fmt"

	"github.com/diegoclair/myscrumteam-bot/internal/domain/entity"
)

// PageSpec locates a MyScrumTeam page and the element that tells it rendered.
type PageSpec struct {
	Path  string
	Ready string
}

// Selectors is the whole remote site contract. A redesign of MyScrumTeam
// should only ever touch this table.
type Selectors struct {
	Pages    map[entity.Page]PageSpec
	Elements map[entity.Element]string

	Username    string
	Password    string
	LoginButton string

	NextButton  string
	PrevButton  string
	DayButton   string
	MonthButton string

	DayCell        string
	DayColumn      string
	EntryContainer string
	Entry          string

	StatusSelect      string
	WorkedStatusValue string
	SaveButton        string
	ConfirmButton     string
	EditorFields      string

	ProfileName string
}

var DefaultSelectors = Selectors{
	Pages: map[entity.Page]PageSpec{
		entity.PageHome:            {Path: "/", Ready: "body"},
		entity.PageDashboard:       {Path: "/en/", Ready: "body"},
		entity.PagePlanning:        {Path: "/nl/planning/overview", Ready: ".fc-view-container"},
		entity.PagePlanningEnglish: {Path: "/en/planning/overview", Ready: ".fc-view-container"},
	},
	Elements: map[entity.Element]string{
		entity.ElementSprintHours: "div.bg-blue-lighter",
	},

	Username:    "#username",
	Password:    "#password",
	LoginButton: "body > div.app.signin.v2.usersession > div > div.card.bg-white.no-border > div > form > button",

	NextButton:  ".fc-next-button",
	PrevButton:  ".fc-prev-button",
	DayButton:   ".fc-agendaDay-button.fc-corner-right",
	MonthButton: ".fc-month-button.fc-corner-left",

	DayCell:        "td",
	DayColumn:      "td:not([class])",
	EntryContainer: ".fc-event-container:not(.fc-helper-container)",
	Entry:          ".fc-time-grid-event",

	StatusSelect:      "select#event-status",
	WorkedStatusValue: "1",
	SaveButton:        "#modal > div > div > div.modal-footer > button.btn.btn-primary.btn-shadow.ripple.confirm",
	ConfirmButton:     "body > div.sweet-alert.showSweetAlert.visible > div.sa-button-container > div > button",
	EditorFields:      "input.input__field",

	ProfileName: "body > div.app.header-blue.layout-fixed-header > div.sidebar-panel.offscreen-left.ps-container > nav > ul > li.menu-profile > div > span",
}

// URL resolves page against baseURL.
func (s Selectors) URL(baseURL string, page entity.Page) (string, PageSpec, error) {
	spec, ok := s.Pages[page]
	if !ok {
		return "", PageSpec{}, fmt.Errorf("no page configured for %d", page)
	}
	return baseURL + spec.Path, spec, nil
}

func (s Selectors) Element(element entity.Element) (string, error) {
	sel, ok := s.Elements[element]
	if !ok {
		return "", fmt.Errorf("no selector configured for element %d", element)
	}
	return sel, nil
}

package entity

import "strings"

// EntryState is the semantic state of a work entry, derived from its color.
type EntryState int

const (
	EntryOther EntryState = iota
	EntryWorked
	EntryPlanned
)

func (s EntryState) String() string {
	switch s {
	case EntryWorked:
		return "worked"
	case EntryPlanned:
		return "planned"
	default:
		return "other"
	}
}

// CalendarCell is one day column of the rendered week grid.
type CalendarCell struct {
	Date        string
	ColumnIndex int
}

// WorkEntry is a planned or worked block as rendered by the calendar.
// Index is the position of the entry among all entries of the current view.
type WorkEntry struct {
	Index int
	Color string
}

// Palette maps the background colors used by MyScrumTeam to entry states.
// The site exposes no status field, so the colors are the only signal.
type Palette struct {
	Worked  string
	Planned string
}

// DefaultPalette holds the inline colors the site renders today.
var DefaultPalette = Palette{
	Worked:  "rgb(88, 168, 61)",
	Planned: "rgb(230, 145, 56)",
}

// Classify maps a raw inline background color to an EntryState. Surrounding
// whitespace is trimmed, everything else must match exactly.
//
// Colors come from the CSSOM (element.style.backgroundColor), which the browser
// serializes as "rgb(r, g, b)" with a space after each comma no matter how the
// markup spells it, so "rgb(230,145,56)" in the page source reaches Classify as
// "rgb(230, 145, 56)". The palette is therefore kept in the serialized form.
func (p Palette) Classify(color string) EntryState {
	switch strings.TrimSpace(color) {
	case "":
		return EntryOther
	case p.Worked:
		return EntryWorked
	case p.Planned:
		return EntryPlanned
	default:
		return EntryOther
	}
}

// CountState returns how many entries classify as state.
func (p Palette) CountState(entries []WorkEntry, state EntryState) int {
	count := 0
	for _, e := range entries {
		if p.Classify(e.Color) == state {
			count++
		}
	}
	return count
}

// FirstWithState returns the first entry that classifies as state.
func (p Palette) FirstWithState(entries []WorkEntry, state EntryState) (WorkEntry, bool) {
	for _, e := range entries {
		if p.Classify(e.Color) == state {
			return e, true
		}
	}
	return WorkEntry{}, false
}

// HasMarked reports whether any entry is either worked or planned.
func (p Palette) HasMarked(entries []WorkEntry) bool {
	for _, e := range entries {
		switch p.Classify(e.Color) {
		case EntryWorked, EntryPlanned:
			return true
		}
	}
	return false
}

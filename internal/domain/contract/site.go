package contract

//go:generate mockgen -source=site.go -destination=../../../mocks/site_mock.go -package=mocks

import (
	"context"

	"github.com/diegoclair/myscrumteam-bot/internal/domain/entity"
)

// SiteOpener starts a fresh, isolated browser session against MyScrumTeam.
// Every session returned must be closed by the caller.
type SiteOpener interface {
	Open(ctx context.Context) (RemoteCalendarSite, error)
}

// RemoteCalendarSite is one authenticated browser page on MyScrumTeam. All
// selectors, URLs and colors stay behind this interface.
type RemoteCalendarSite interface {
	// Login opens page and signs in with the configured credentials.
	Login(ctx context.Context, page entity.Page) error
	// Navigate opens page and waits for its ready marker, then settles.
	Navigate(ctx context.Context, page entity.Page) error
	// Settle waits the fixed settle delay.
	Settle(ctx context.Context) error

	// FindCellByDate looks for date in the rendered view only. A nil cell
	// with a nil error means the date is not part of this view.
	FindCellByDate(ctx context.Context, date string) (*entity.CalendarCell, error)
	// AdvanceWeek clicks the next-period button and settles.
	AdvanceWeek(ctx context.Context) error
	// RewindWeek clicks the previous-period button and settles.
	RewindWeek(ctx context.Context) error
	SwitchView(ctx context.Context, view entity.PlanningView) error

	ListEntries(ctx context.Context) ([]entity.WorkEntry, error)
	CellEntries(ctx context.Context, cell entity.CalendarCell) ([]entity.WorkEntry, error)
	ClickCell(ctx context.Context, cell entity.CalendarCell) error

	OpenEditor(ctx context.Context, entry entity.WorkEntry) error
	SelectWorkedStatus(ctx context.Context) error
	Save(ctx context.Context) error
	ConfirmSave(ctx context.Context) error
	ReadEditor(ctx context.Context) (entity.Approval, error)

	Watermark(ctx context.Context, text string) error
	Screenshot(ctx context.Context, path string) error
	CaptureElement(ctx context.Context, element entity.Element, path string, padding float64) error

	Close() error
}

// ArtifactStore hands out screenshot paths and wipes them in bulk.
type ArtifactStore interface {
	NewPath(requesterID string) (string, error)
	Clean() (int, error)
}

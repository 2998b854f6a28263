package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/diegoclair/myscrumteam-bot/internal/domain"
	"github.com/diegoclair/myscrumteam-bot/internal/domain/contract"
	"github.com/diegoclair/myscrumteam-bot/internal/domain/entity"
)

var errEmptyReadBack = errors.New("editor fields were empty after saving")

var _ contract.ScrumService = (*scrumService)(nil)

type scrumService struct {
	opener    contract.SiteOpener
	artifacts contract.ArtifactStore
	palette   entity.Palette
	locks     *keyedMutex
	timeout   time.Duration
	logger    *slog.Logger
}

func newScrum(opener contract.SiteOpener, artifacts contract.ArtifactStore, palette entity.Palette, timeout time.Duration, logger *slog.Logger) *scrumService {
	if logger == nil {
		logger = slog.Default()
	}
	return &scrumService{
		opener:    opener,
		artifacts: artifacts,
		palette:   palette,
		locks:     newKeyedMutex(),
		timeout:   timeout,
		logger:    logger,
	}
}

// withSession opens one browser session for op, runs fn and closes the
// session on every path, panics included.
func (s *scrumService) withSession(ctx context.Context, op string, fn func(ctx context.Context, site contract.RemoteCalendarSite) error) (err error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	site, err := s.opener.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open browser session: %w", err)
	}

	defer func() {
		if cerr := site.Close(); cerr != nil {
			s.logger.Warn("failed to close browser session", "operation", op, "error", cerr)
		}

		attrs := []any{"operation", op, "duration_ms", time.Since(start).Milliseconds()}
		if err != nil {
			s.logger.Error("operation failed", append(attrs, "error", err)...)
			return
		}
		s.logger.Info("operation finished", attrs...)
	}()

	return fn(ctx, site)
}

// findCellForDate looks for date in the rendered week and pages forward at
// most MaxWeekAdvances times. A nil cell with a nil error means "not found".
func (s *scrumService) findCellForDate(ctx context.Context, site contract.RemoteCalendarSite, date string) (*entity.CalendarCell, error) {
	for advances := 0; ; advances++ {
		cell, err := site.FindCellByDate(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("failed to look up %s: %w", date, err)
		}
		if cell != nil {
			s.logger.Debug("calendar cell found", "date", date, "column", cell.ColumnIndex, "advances", advances)
			return cell, nil
		}
		if advances == domain.MaxWeekAdvances {
			return nil, nil
		}
		if err := site.AdvanceWeek(ctx); err != nil {
			return nil, fmt.Errorf("failed to advance week: %w", err)
		}
	}
}

func (s *scrumService) openPlanning(ctx context.Context, site contract.RemoteCalendarSite) error {
	if err := site.Login(ctx, entity.PageHome); err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}
	if err := site.Navigate(ctx, entity.PagePlanning); err != nil {
		return fmt.Errorf("failed to open planning overview: %w", err)
	}
	return nil
}

// Overview captures the dashboard of the authenticated user.
func (s *scrumService) Overview(ctx context.Context, requesterID string) (string, error) {
	path, err := s.artifacts.NewPath(requesterID)
	if err != nil {
		return "", fmt.Errorf("failed to prepare screenshot: %w", err)
	}

	err = s.withSession(ctx, "overview", func(ctx context.Context, site contract.RemoteCalendarSite) error {
		if err := site.Login(ctx, entity.PageHome); err != nil {
			return fmt.Errorf("failed to log in: %w", err)
		}
		return site.Screenshot(ctx, path)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// CheckOpenHours counts the entries of the planning overview that still carry
// the unapproved color.
func (s *scrumService) CheckOpenHours(ctx context.Context) (int, error) {
	var count int
	err := s.withSession(ctx, "check_open_hours", func(ctx context.Context, site contract.RemoteCalendarSite) error {
		if err := s.openPlanning(ctx, site); err != nil {
			return err
		}

		entries, err := site.ListEntries(ctx)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}
		count = s.palette.CountState(entries, entity.EntryPlanned)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// IsAlreadyPlanned reports whether date already holds a worked or planned
// entry. PlannedUnknown comes with ErrDateNotFound when the date is out of reach.
func (s *scrumService) IsAlreadyPlanned(ctx context.Context, date string) (entity.PlannedStatus, error) {
	date, err := domain.ParseDate(date)
	if err != nil {
		return entity.PlannedUnknown, err
	}

	status := entity.PlannedUnknown
	err = s.withSession(ctx, "is_already_planned", func(ctx context.Context, site contract.RemoteCalendarSite) error {
		if err := s.openPlanning(ctx, site); err != nil {
			return err
		}

		cell, err := s.findCellForDate(ctx, site, date)
		if err != nil {
			return err
		}
		if cell == nil {
			return domain.ErrDateNotFound
		}

		entries, err := site.CellEntries(ctx, *cell)
		if err != nil {
			return fmt.Errorf("failed to read entries of %s: %w", date, err)
		}

		status = entity.PlannedNo
		if s.palette.HasMarked(entries) {
			status = entity.PlannedYes
		}
		return nil
	})
	if err != nil {
		return entity.PlannedUnknown, err
	}
	return status, nil
}

// Plan clicks the day to create an entry, then reads the day back. The site
// gives no feedback on the click itself, so a missing entry afterwards is
// reported as PlanUnconfirmed rather than a failure. A day that is already
// marked is refused with ErrAlreadyPlanned before clicking, under the
// requester lock, so the read back can only see the new entry.
func (s *scrumService) Plan(ctx context.Context, requesterID, date string) (entity.PlanOutcome, error) {
	date, err := domain.ParseDate(date)
	if err != nil {
		return entity.PlanNotFound, err
	}

	unlock := s.locks.Lock(requesterID)
	defer unlock()

	outcome := entity.PlanNotFound
	err = s.withSession(ctx, "plan", func(ctx context.Context, site contract.RemoteCalendarSite) error {
		if err := s.openPlanning(ctx, site); err != nil {
			return err
		}

		cell, err := s.findCellForDate(ctx, site, date)
		if err != nil {
			return err
		}
		if cell == nil {
			return domain.ErrDateNotFound
		}

		before, err := site.CellEntries(ctx, *cell)
		if err != nil {
			return fmt.Errorf("failed to read entries of %s: %w", date, err)
		}
		if s.palette.HasMarked(before) {
			return domain.ErrAlreadyPlanned
		}

		if err := site.ClickCell(ctx, *cell); err != nil {
			return fmt.Errorf("failed to click %s: %w", date, err)
		}
		outcome = entity.PlanUnconfirmed

		if err := site.Settle(ctx); err != nil {
			s.logger.Warn("could not wait for plan to settle", "date", date, "error", err)
			return nil
		}

		entries, err := site.CellEntries(ctx, *cell)
		if err != nil {
			s.logger.Warn("could not read back planned day", "date", date, "error", err)
			return nil
		}
		if s.palette.HasMarked(entries) {
			outcome = entity.PlanConfirmed
		}
		return nil
	})
	if err != nil {
		return entity.PlanNotFound, err
	}
	return outcome, nil
}

// Approve marks the first unapproved entry as worked and returns what the
// editor shows after saving.
func (s *scrumService) Approve(ctx context.Context, requesterID string) (entity.Approval, error) {
	unlock := s.locks.Lock(requesterID)
	defer unlock()

	var approval entity.Approval
	err := s.withSession(ctx, "approve", func(ctx context.Context, site contract.RemoteCalendarSite) error {
		if err := s.openPlanning(ctx, site); err != nil {
			return &domain.StageError{Stage: entity.StageIdle, Err: err}
		}

		entries, err := site.ListEntries(ctx)
		if err != nil {
			return &domain.StageError{Stage: entity.StageIdle, Err: fmt.Errorf("failed to list entries: %w", err)}
		}

		entry, ok := s.palette.FirstWithState(entries, entity.EntryPlanned)
		if !ok {
			return domain.ErrNoOpenEntries
		}

		result, err := s.runApproval(ctx, site, entry)
		if err != nil {
			return err
		}
		approval = result
		return nil
	})
	if err != nil {
		return entity.Approval{}, err
	}
	return approval, nil
}

// runApproval walks the editor modal from a located entry to the read back.
func (s *scrumService) runApproval(ctx context.Context, site contract.RemoteCalendarSite, entry entity.WorkEntry) (entity.Approval, error) {
	stage := entity.StageEntryLocated

	steps := []struct {
		next entity.ApprovalStage
		run  func(context.Context) error
	}{
		{entity.StageModalOpen, func(ctx context.Context) error { return site.OpenEditor(ctx, entry) }},
		{entity.StageStatusSet, site.SelectWorkedStatus},
		{entity.StageSaveClicked, site.Save},
		{entity.StageConfirmClicked, site.ConfirmSave},
	}

	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			return entity.Approval{}, &domain.StageError{Stage: stage, Err: err}
		}
		stage = step.next
		s.logger.Debug("approval advanced", "stage", stage.String(), "entry", entry.Index)
	}

	approval, err := site.ReadEditor(ctx)
	if err != nil {
		return entity.Approval{}, &domain.StageError{Stage: stage, Err: err}
	}
	if approval.IsZero() {
		return entity.Approval{}, &domain.StageError{Stage: entity.StageReadBack, Err: errEmptyReadBack}
	}

	s.logger.Debug("approval advanced", "stage", entity.StageDone.String(), "entry", entry.Index)
	return approval, nil
}

// SprintHours captures the sprint hours panel of the dashboard.
func (s *scrumService) SprintHours(ctx context.Context, requesterID string) (string, error) {
	path, err := s.artifacts.NewPath(requesterID)
	if err != nil {
		return "", fmt.Errorf("failed to prepare screenshot: %w", err)
	}

	err = s.withSession(ctx, "sprint_hours", func(ctx context.Context, site contract.RemoteCalendarSite) error {
		if err := site.Login(ctx, entity.PageDashboard); err != nil {
			return fmt.Errorf("failed to log in: %w", err)
		}
		return site.CaptureElement(ctx, entity.ElementSprintHours, path, 0)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// SprintPlanning captures the planning calendar in the requested view, paged
// req.Amount periods away from today.
func (s *scrumService) SprintPlanning(ctx context.Context, requesterID string, req entity.PlanningRequest) (string, error) {
	if err := domain.ValidatePlanningRequest(req); err != nil {
		return "", err
	}

	path, err := s.artifacts.NewPath(requesterID)
	if err != nil {
		return "", fmt.Errorf("failed to prepare screenshot: %w", err)
	}

	err = s.withSession(ctx, "sprint_planning", func(ctx context.Context, site contract.RemoteCalendarSite) error {
		if err := site.Login(ctx, entity.PagePlanningEnglish); err != nil {
			return fmt.Errorf("failed to log in: %w", err)
		}
		if err := site.Settle(ctx); err != nil {
			return err
		}
		if err := site.SwitchView(ctx, req.View); err != nil {
			return fmt.Errorf("failed to switch to %s view: %w", req.View, err)
		}

		page := site.AdvanceWeek
		steps := req.Amount
		if steps < 0 {
			page = site.RewindWeek
			steps = -steps
		}
		for i := 0; i < steps; i++ {
			if err := page(ctx); err != nil {
				return fmt.Errorf("failed to page planning: %w", err)
			}
		}

		if err := site.Watermark(ctx, domain.WatermarkText); err != nil {
			return fmt.Errorf("failed to watermark planning: %w", err)
		}
		return site.Screenshot(ctx, path)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

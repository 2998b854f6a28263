package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/diegoclair/myscrumteam-bot/internal/domain/entity"
)

// minEditorFields is date, start time and end time.
const minEditorFields = 3

var errNotFound = errors.New("element not found")

type site struct {
	tab    context.Context
	cancel context.CancelFunc
	opts   Options
	logger *slog.Logger

	closeOnce sync.Once
	closeErr  error
}

type rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// run executes actions on the tab, bounded by the wait timeout and by ctx.
func (s *site) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(s.tab, s.opts.WaitTimeout)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}

func (s *site) sel() Selectors {
	return s.opts.Selectors
}

func (s *site) Login(ctx context.Context, p entity.Page) error {
	url, spec, err := s.sel().URL(s.opts.BaseURL, p)
	if err != nil {
		return err
	}

	sel := s.sel()
	err = s.run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(sel.Username, chromedp.ByQuery),
		chromedp.SendKeys(sel.Username, s.opts.Username, chromedp.ByQuery),
		chromedp.WaitVisible(sel.Password, chromedp.ByQuery),
		chromedp.SendKeys(sel.Password, s.opts.Password, chromedp.ByQuery),
		chromedp.Click(sel.LoginButton, chromedp.ByQuery),
		chromedp.WaitNotPresent(sel.Username, chromedp.ByQuery),
		chromedp.WaitReady(spec.Ready, chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("login at %s: %w", url, err)
	}
	return nil
}

// Navigate opens p and waits for its ready element plus one settle delay,
// since calendar entries arrive after the document itself.
func (s *site) Navigate(ctx context.Context, p entity.Page) error {
	url, spec, err := s.sel().URL(s.opts.BaseURL, p)
	if err != nil {
		return err
	}

	err = s.run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady(spec.Ready, chromedp.ByQuery),
		chromedp.Sleep(s.opts.SettleDelay),
	)
	if err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

func (s *site) Settle(ctx context.Context) error {
	return s.run(ctx, chromedp.Sleep(s.opts.SettleDelay))
}

func (s *site) FindCellByDate(ctx context.Context, date string) (*entity.CalendarCell, error) {
	var index int
	if err := s.run(ctx, chromedp.Evaluate(findCellScript(s.sel().DayCell, date), &index)); err != nil {
		return nil, err
	}
	if index < 0 {
		return nil, nil
	}
	return &entity.CalendarCell{Date: date, ColumnIndex: index}, nil
}

func (s *site) clickAndSettle(ctx context.Context, selector string) error {
	return s.run(ctx,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Click(selector, chromedp.ByQuery),
		chromedp.Sleep(s.opts.SettleDelay),
	)
}

func (s *site) AdvanceWeek(ctx context.Context) error {
	return s.clickAndSettle(ctx, s.sel().NextButton)
}

func (s *site) RewindWeek(ctx context.Context) error {
	return s.clickAndSettle(ctx, s.sel().PrevButton)
}

func (s *site) SwitchView(ctx context.Context, view entity.PlanningView) error {
	switch view {
	case entity.ViewDay:
		return s.clickAndSettle(ctx, s.sel().DayButton)
	case entity.ViewMonth:
		return s.clickAndSettle(ctx, s.sel().MonthButton)
	case entity.ViewWeek, "":
		return nil
	default:
		return fmt.Errorf("unknown planning view %q", view)
	}
}

func toEntries(colors []string) []entity.WorkEntry {
	entries := make([]entity.WorkEntry, 0, len(colors))
	for i, color := range colors {
		entries = append(entries, entity.WorkEntry{Index: i, Color: color})
	}
	return entries
}

func (s *site) ListEntries(ctx context.Context) ([]entity.WorkEntry, error) {
	var colors []string
	if err := s.run(ctx, chromedp.Evaluate(listEntriesScript(s.sel().Entry), &colors)); err != nil {
		return nil, err
	}
	return toEntries(colors), nil
}

func (s *site) CellEntries(ctx context.Context, cell entity.CalendarCell) ([]entity.WorkEntry, error) {
	sel := s.sel()
	var colors []string
	script := cellEntriesScript(sel.DayColumn, sel.EntryContainer, cell.ColumnIndex)
	if err := s.run(ctx, chromedp.Evaluate(script, &colors)); err != nil {
		return nil, err
	}
	return toEntries(colors), nil
}

// evalClick runs a script that returns whether it found something to click.
func (s *site) evalClick(ctx context.Context, script, what string) error {
	var clicked bool
	if err := s.run(ctx, chromedp.Evaluate(script, &clicked)); err != nil {
		return err
	}
	if !clicked {
		return fmt.Errorf("%s: %w", what, errNotFound)
	}
	return nil
}

func (s *site) ClickCell(ctx context.Context, cell entity.CalendarCell) error {
	sel := s.sel()
	return s.evalClick(ctx, clickCellScript(sel.DayColumn, sel.EntryContainer, cell.ColumnIndex), "entry container of "+cell.Date)
}

func (s *site) OpenEditor(ctx context.Context, entry entity.WorkEntry) error {
	return s.evalClick(ctx, clickEntryScript(s.sel().Entry, entry.Index), fmt.Sprintf("entry %d", entry.Index))
}

func (s *site) SelectWorkedStatus(ctx context.Context) error {
	sel := s.sel()
	if err := s.run(ctx, chromedp.WaitVisible(sel.StatusSelect, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("status select did not appear: %w", err)
	}
	return s.evalClick(ctx, selectScript(sel.StatusSelect, sel.WorkedStatusValue), "status select")
}

func (s *site) Save(ctx context.Context) error {
	sel := s.sel()
	if err := s.run(ctx, chromedp.WaitVisible(sel.SaveButton, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("save button did not appear: %w", err)
	}
	return s.evalClick(ctx, clickScript(sel.SaveButton), "save button")
}

func (s *site) ConfirmSave(ctx context.Context) error {
	sel := s.sel()
	if err := s.run(ctx, chromedp.WaitVisible(sel.ConfirmButton, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("confirm dialog did not appear: %w", err)
	}
	return s.evalClick(ctx, clickScript(sel.ConfirmButton), "confirm button")
}

func (s *site) ReadEditor(ctx context.Context) (entity.Approval, error) {
	var values []string
	if err := s.run(ctx, chromedp.Evaluate(fieldValuesScript(s.sel().EditorFields), &values)); err != nil {
		return entity.Approval{}, err
	}
	if len(values) < minEditorFields {
		return entity.Approval{}, fmt.Errorf("expected %d editor fields, found %d", minEditorFields, len(values))
	}
	return entity.Approval{Date: values[0], From: values[1], To: values[2]}, nil
}

// Watermark replaces the profile name. A page without the profile element is
// captured as is.
func (s *site) Watermark(ctx context.Context, text string) error {
	var replaced bool
	if err := s.run(ctx, chromedp.Evaluate(replaceTextScript(s.sel().ProfileName, text), &replaced)); err != nil {
		return err
	}
	if !replaced {
		s.logger.Debug("profile element missing, screenshot not watermarked")
	}
	return nil
}

func (s *site) Screenshot(ctx context.Context, path string) error {
	var buf []byte
	if err := s.run(ctx, chromedp.FullScreenshot(&buf, 100)); err != nil {
		return fmt.Errorf("capture page: %w", err)
	}
	return writeFile(path, buf)
}

func (s *site) CaptureElement(ctx context.Context, element entity.Element, path string, padding float64) error {
	selector, err := s.sel().Element(element)
	if err != nil {
		return err
	}

	var r rect
	var buf []byte
	err = s.run(ctx,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Evaluate(rectScript(selector), &r),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, err = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithCaptureBeyondViewport(true).
				WithClip(clipFor(r, padding)).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return fmt.Errorf("capture %s: %w", selector, err)
	}
	return writeFile(path, buf)
}

func clipFor(r rect, padding float64) *page.Viewport {
	return &page.Viewport{
		X:      r.X - padding,
		Y:      r.Y - padding,
		Width:  r.Width + padding*2,
		Height: r.Height + padding*2,
		Scale:  1,
	}
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}
	return nil
}

// Close shuts the browser down. Safe to call more than once.
func (s *site) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = chromedp.Cancel(s.tab)
		s.cancel()
		s.logger.Debug("browser session closed")
	})
	return s.closeErr
}

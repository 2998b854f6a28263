package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/myscrumteam-bot/internal/domain"
	"github.com/diegoclair/myscrumteam-bot/internal/domain/contract"
	"github.com/diegoclair/myscrumteam-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_newScrum(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newScrum(m.mockOpener, m.mockArtifacts, entity.DefaultPalette, 0, nil)

	require.NotNil(t, s)
	assert.Equal(t, m.mockOpener, s.opener)
	assert.Equal(t, m.mockArtifacts, s.artifacts)
	assert.NotNil(t, s.logger)
	assert.NotNil(t, s.locks)
}

func Test_scrumService_findCellForDate(t *testing.T) {
	const date = "2018-06-01"
	cell := &entity.CalendarCell{Date: date, ColumnIndex: 5}

	tests := []struct {
		name      string
		buildMock func(m allMocks)
		want      *entity.CalendarCell
		wantErr   bool
	}{
		{
			name: "Should return the cell without paging when it is in view",
			buildMock: func(m allMocks) {
				m.mockSite.EXPECT().FindCellByDate(gomock.Any(), date).Return(cell, nil).Times(1)
				m.mockSite.EXPECT().AdvanceWeek(gomock.Any()).Times(0)
			},
			want: cell,
		},
		{
			name: "Should page forward until the date shows up",
			buildMock: func(m allMocks) {
				gomock.InOrder(
					m.mockSite.EXPECT().FindCellByDate(gomock.Any(), date).Return(nil, nil),
					m.mockSite.EXPECT().AdvanceWeek(gomock.Any()).Return(nil),
					m.mockSite.EXPECT().FindCellByDate(gomock.Any(), date).Return(nil, nil),
					m.mockSite.EXPECT().AdvanceWeek(gomock.Any()).Return(nil),
					m.mockSite.EXPECT().FindCellByDate(gomock.Any(), date).Return(cell, nil),
				)
			},
			want: cell,
		},
		{
			name: "Should give up after exactly five advances",
			buildMock: func(m allMocks) {
				m.mockSite.EXPECT().FindCellByDate(gomock.Any(), date).Return(nil, nil).Times(domain.MaxWeekAdvances + 1)
				m.mockSite.EXPECT().AdvanceWeek(gomock.Any()).Return(nil).Times(domain.MaxWeekAdvances)
			},
			want: nil,
		},
		{
			name: "Should return error when the lookup fails",
			buildMock: func(m allMocks) {
				m.mockSite.EXPECT().FindCellByDate(gomock.Any(), date).Return(nil, assert.AnError).Times(1)
			},
			wantErr: true,
		},
		{
			name: "Should return error when paging fails",
			buildMock: func(m allMocks) {
				m.mockSite.EXPECT().FindCellByDate(gomock.Any(), date).Return(nil, nil).Times(1)
				m.mockSite.EXPECT().AdvanceWeek(gomock.Any()).Return(assert.AnError).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			s := newTestScrum(m)
			got, err := s.findCellForDate(context.Background(), m.mockSite, date)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, assert.AnError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_scrumService_CheckOpenHours(t *testing.T) {
	tests := []struct {
		name      string
		buildMock func(m allMocks)
		want      int
		wantErr   bool
	}{
		{
			name: "Should count one unapproved entry next to a worked one",
			buildMock: func(m allMocks) {
				expectSession(m)
				expectPlanningPage(m)
				m.mockSite.EXPECT().ListEntries(gomock.Any()).Return(entries(orange, green), nil).Times(1)
			},
			want: 1,
		},
		{
			name: "Should trim surrounding whitespace but not inner whitespace",
			buildMock: func(m allMocks) {
				expectSession(m)
				expectPlanningPage(m)
				m.mockSite.EXPECT().ListEntries(gomock.Any()).
					Return(entries(" "+orange+" ", "rgb(230,145,56)", orange, blue, ""), nil).Times(1)
			},
			want: 2,
		},
		{
			name: "Should return zero for an empty week",
			buildMock: func(m allMocks) {
				expectSession(m)
				expectPlanningPage(m)
				m.mockSite.EXPECT().ListEntries(gomock.Any()).Return(nil, nil).Times(1)
			},
			want: 0,
		},
		{
			name: "Should fail and still close when login fails",
			buildMock: func(m allMocks) {
				expectSession(m)
				m.mockSite.EXPECT().Login(gomock.Any(), entity.PageHome).Return(assert.AnError).Times(1)
			},
			wantErr: true,
		},
		{
			name: "Should fail and still close when the overview does not load",
			buildMock: func(m allMocks) {
				expectSession(m)
				m.mockSite.EXPECT().Login(gomock.Any(), entity.PageHome).Return(nil).Times(1)
				m.mockSite.EXPECT().Navigate(gomock.Any(), entity.PagePlanning).Return(assert.AnError).Times(1)
			},
			wantErr: true,
		},
		{
			name: "Should fail and still close when entries cannot be read",
			buildMock: func(m allMocks) {
				expectSession(m)
				expectPlanningPage(m)
				m.mockSite.EXPECT().ListEntries(gomock.Any()).Return(nil, assert.AnError).Times(1)
			},
			wantErr: true,
		},
		{
			name: "Should fail without closing when the browser does not start",
			buildMock: func(m allMocks) {
				m.mockOpener.EXPECT().Open(gomock.Any()).Return(nil, assert.AnError).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			got, err := newTestScrum(m).CheckOpenHours(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, assert.AnError)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_scrumService_IsAlreadyPlanned(t *testing.T) {
	const date = "2018-06-01"
	cell := &entity.CalendarCell{Date: date, ColumnIndex: 5}

	tests := []struct {
		name      string
		date      string
		buildMock func(m allMocks)
		want      entity.PlannedStatus
		wantErr   error
	}{
		{
			name: "Should report planned when the day holds an unapproved entry",
			date: date,
			buildMock: func(m allMocks) {
				expectSession(m)
				expectPlanningPage(m)
				m.mockSite.EXPECT().FindCellByDate(gomock.Any(), date).Return(cell, nil).Times(1)
				m.mockSite.EXPECT().CellEntries(gomock.Any(), *cell).Return(entries(blue, orange), nil).Times(1)
			},
			want: entity.PlannedYes,
		},
		{
			name: "Should report planned when the day holds a worked entry",
			date: date,
			buildMock: func(m allMocks) {
				expectSession(m)
				expectPlanningPage(m)
				m.mockSite.EXPECT().FindCellByDate(gomock.Any(), date).Return(cell, nil).Times(1)
				m.mockSite.EXPECT().CellEntries(gomock.Any(), *cell).Return(entries(green), nil).Times(1)
			},
			want: entity.PlannedYes,
		},
		{
			name: "Should report not planned when the day only holds other entries",
			date: date,
			buildMock: func(m allMocks) {
				expectSession(m)
				expectPlanningPage(m)
				m.mockSite.EXPECT().FindCellByDate(gomock.Any(), date).Return(cell, nil).Times(1)
				m.mockSite.EXPECT().CellEntries(gomock.Any(), *cell).Return(entries(blue), nil).Times(1)
			},
			want: entity.PlannedNo,
		},
		{
			name: "Should report unknown, not false, when the date is out of reach",
			date: date,
			buildMock: func(m allMocks) {
				expectSession(m)
				expectPlanningPage(m)
				m.mockSite.EXPECT().FindCellByDate(gomock.Any(), date).Return(nil, nil).Times(domain.MaxWeekAdvances + 1)
				m.mockSite.EXPECT().AdvanceWeek(gomock.Any()).Return(nil).Times(domain.MaxWeekAdvances)
			},
			want:    entity.PlannedUnknown,
			wantErr: domain.ErrDateNotFound,
		},
		{
			name: "Should report unknown when the entries cannot be read",
			date: date,
			buildMock: func(m allMocks) {
				expectSession(m)
				expectPlanningPage(m)
				m.mockSite.EXPECT().FindCellByDate(gomock.Any(), date).Return(cell, nil).Times(1)
				m.mockSite.EXPECT().CellEntries(gomock.Any(), *cell).Return(nil, assert.AnError).Times(1)
			},
			want:    entity.PlannedUnknown,
			wantErr: assert.AnError,
		},
		{
			name:      "Should reject malformed dates before opening a browser",
			date:      "06/01/2018",
			buildMock: func(m allMocks) {},
			want:      entity.PlannedUnknown,
			wantErr:   domain.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			got, err := newTestScrum(m).IsAlreadyPlanned(context.Background(), tt.date)
			assert.Equal(t, tt.want, got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_scrumService_Plan(t *testing.T) {
	const date = "2018-06-01"
	cell := &entity.CalendarCell{Date: date, ColumnIndex: 5}

	// expectFreeDay registers the lookup of a day that holds no marked entry yet.
	expectFreeDay := func(m allMocks) {
		expectSession(m)
		expectPlanningPage(m)
		m.mockSite.EXPECT().FindCellByDate(gomock.Any(), date).Return(cell, nil).Times(1)
	}

	tests := []struct {
		name      string
		buildMock func(m allMocks)
		want      entity.PlanOutcome
		wantErr   error
	}{
		{
			name: "Should confirm the plan when the entry shows up",
			buildMock: func(m allMocks) {
				expectFreeDay(m)
				gomock.InOrder(
					m.mockSite.EXPECT().CellEntries(gomock.Any(), *cell).Return(entries(blue), nil),
					m.mockSite.EXPECT().ClickCell(gomock.Any(), *cell).Return(nil),
					m.mockSite.EXPECT().Settle(gomock.Any()).Return(nil),
					m.mockSite.EXPECT().CellEntries(gomock.Any(), *cell).Return(entries(blue, orange), nil),
				)
			},
			want: entity.PlanConfirmed,
		},
		{
			name: "Should report unconfirmed when no entry shows up",
			buildMock: func(m allMocks) {
				expectFreeDay(m)
				gomock.InOrder(
					m.mockSite.EXPECT().CellEntries(gomock.Any(), *cell).Return(nil, nil),
					m.mockSite.EXPECT().ClickCell(gomock.Any(), *cell).Return(nil),
					m.mockSite.EXPECT().Settle(gomock.Any()).Return(nil),
					m.mockSite.EXPECT().CellEntries(gomock.Any(), *cell).Return(entries(blue), nil),
				)
			},
			want: entity.PlanUnconfirmed,
		},
		{
			name: "Should report unconfirmed when the read back fails",
			buildMock: func(m allMocks) {
				expectFreeDay(m)
				gomock.InOrder(
					m.mockSite.EXPECT().CellEntries(gomock.Any(), *cell).Return(nil, nil),
					m.mockSite.EXPECT().ClickCell(gomock.Any(), *cell).Return(nil),
					m.mockSite.EXPECT().Settle(gomock.Any()).Return(nil),
					m.mockSite.EXPECT().CellEntries(gomock.Any(), *cell).Return(nil, assert.AnError),
				)
			},
			want: entity.PlanUnconfirmed,
		},
		{
			name: "Should refuse without clicking when the day already holds a worked entry",
			buildMock: func(m allMocks) {
				expectFreeDay(m)
				m.mockSite.EXPECT().CellEntries(gomock.Any(), *cell).Return(entries(green), nil).Times(1)
				m.mockSite.EXPECT().ClickCell(gomock.Any(), gomock.Any()).Times(0)
			},
			want:    entity.PlanNotFound,
			wantErr: domain.ErrAlreadyPlanned,
		},
		{
			name: "Should refuse without clicking when the day already holds a planned entry",
			buildMock: func(m allMocks) {
				expectFreeDay(m)
				m.mockSite.EXPECT().CellEntries(gomock.Any(), *cell).Return(entries(blue, orange), nil).Times(1)
				m.mockSite.EXPECT().ClickCell(gomock.Any(), gomock.Any()).Times(0)
			},
			want:    entity.PlanNotFound,
			wantErr: domain.ErrAlreadyPlanned,
		},
		{
			name: "Should not click when the day cannot be read first",
			buildMock: func(m allMocks) {
				expectFreeDay(m)
				m.mockSite.EXPECT().CellEntries(gomock.Any(), *cell).Return(nil, assert.AnError).Times(1)
				m.mockSite.EXPECT().ClickCell(gomock.Any(), gomock.Any()).Times(0)
			},
			want:    entity.PlanNotFound,
			wantErr: assert.AnError,
		},
		{
			name: "Should not click when the date is out of reach",
			buildMock: func(m allMocks) {
				expectSession(m)
				expectPlanningPage(m)
				m.mockSite.EXPECT().FindCellByDate(gomock.Any(), date).Return(nil, nil).Times(domain.MaxWeekAdvances + 1)
				m.mockSite.EXPECT().AdvanceWeek(gomock.Any()).Return(nil).Times(domain.MaxWeekAdvances)
				m.mockSite.EXPECT().ClickCell(gomock.Any(), gomock.Any()).Times(0)
			},
			want:    entity.PlanNotFound,
			wantErr: domain.ErrDateNotFound,
		},
		{
			name: "Should fail when the click fails",
			buildMock: func(m allMocks) {
				expectFreeDay(m)
				m.mockSite.EXPECT().CellEntries(gomock.Any(), *cell).Return(nil, nil).Times(1)
				m.mockSite.EXPECT().ClickCell(gomock.Any(), *cell).Return(assert.AnError).Times(1)
			},
			want:    entity.PlanNotFound,
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			got, err := newTestScrum(m).Plan(context.Background(), "U123456789", date)
			assert.Equal(t, tt.want, got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_scrumService_Plan_concurrent(t *testing.T) {
	const date = "2018-06-01"
	cell := &entity.CalendarCell{Date: date, ColumnIndex: 5}

	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	// The site keeps the entry once it was clicked, like MyScrumTeam does.
	var planned bool
	m.mockOpener.EXPECT().Open(gomock.Any()).Return(m.mockSite, nil).Times(2)
	m.mockSite.EXPECT().Close().Return(nil).Times(2)
	m.mockSite.EXPECT().Login(gomock.Any(), entity.PageHome).Return(nil).Times(2)
	m.mockSite.EXPECT().Navigate(gomock.Any(), entity.PagePlanning).Return(nil).Times(2)
	m.mockSite.EXPECT().FindCellByDate(gomock.Any(), date).Return(cell, nil).Times(2)
	m.mockSite.EXPECT().Settle(gomock.Any()).Return(nil).Times(1)
	m.mockSite.EXPECT().ClickCell(gomock.Any(), *cell).DoAndReturn(func(context.Context, entity.CalendarCell) error {
		planned = true
		return nil
	}).Times(1)
	m.mockSite.EXPECT().CellEntries(gomock.Any(), *cell).DoAndReturn(func(context.Context, entity.CalendarCell) ([]entity.WorkEntry, error) {
		if planned {
			return entries(orange), nil
		}
		return nil, nil
	}).Times(3)

	s := newTestScrum(m)

	type result struct {
		outcome entity.PlanOutcome
		err     error
	}
	results := make(chan result, 2)
	for i := 0; i < 2; i++ {
		go func() {
			outcome, err := s.Plan(context.Background(), "U123456789", date)
			results <- result{outcome, err}
		}()
	}

	var confirmed, refused int
	for i := 0; i < 2; i++ {
		r := <-results
		switch {
		case r.err == nil && r.outcome == entity.PlanConfirmed:
			confirmed++
		case errors.Is(r.err, domain.ErrAlreadyPlanned):
			refused++
		}
	}

	assert.Equal(t, 1, confirmed)
	assert.Equal(t, 1, refused)
}

func Test_scrumService_Approve(t *testing.T) {
	approval := entity.Approval{Date: "01-06-2018", From: "09:00", To: "17:00"}
	unapproved := entity.WorkEntry{Index: 1, Color: orange}

	// expectUntil registers the happy path up to, and including, the failing step.
	expectUntil := func(m allMocks, failAt string) {
		expectSession(m)
		expectPlanningPage(m)
		m.mockSite.EXPECT().ListEntries(gomock.Any()).Return(entries(green, orange, orange), nil).Times(1)

		steps := []struct {
			name   string
			expect func(err error)
		}{
			{"open", func(err error) { m.mockSite.EXPECT().OpenEditor(gomock.Any(), unapproved).Return(err).Times(1) }},
			{"status", func(err error) { m.mockSite.EXPECT().SelectWorkedStatus(gomock.Any()).Return(err).Times(1) }},
			{"save", func(err error) { m.mockSite.EXPECT().Save(gomock.Any()).Return(err).Times(1) }},
			{"confirm", func(err error) { m.mockSite.EXPECT().ConfirmSave(gomock.Any()).Return(err).Times(1) }},
		}
		for _, step := range steps {
			if step.name == failAt {
				step.expect(assert.AnError)
				return
			}
			step.expect(nil)
		}
		if failAt == "read" {
			m.mockSite.EXPECT().ReadEditor(gomock.Any()).Return(entity.Approval{}, assert.AnError).Times(1)
			return
		}
		if failAt == "empty" {
			m.mockSite.EXPECT().ReadEditor(gomock.Any()).Return(entity.Approval{}, nil).Times(1)
			return
		}
		m.mockSite.EXPECT().ReadEditor(gomock.Any()).Return(approval, nil).Times(1)
	}

	tests := []struct {
		name      string
		buildMock func(m allMocks)
		want      entity.Approval
		wantStage entity.ApprovalStage
		wantErr   error
	}{
		{
			name:      "Should mark the first unapproved entry as worked",
			buildMock: func(m allMocks) { expectUntil(m, "") },
			want:      approval,
		},
		{
			name: "Should return nothing without opening a modal when all is approved",
			buildMock: func(m allMocks) {
				expectSession(m)
				expectPlanningPage(m)
				m.mockSite.EXPECT().ListEntries(gomock.Any()).Return(entries(green, blue), nil).Times(1)
				m.mockSite.EXPECT().OpenEditor(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrNoOpenEntries,
		},
		{
			name: "Should fail idle when login fails",
			buildMock: func(m allMocks) {
				expectSession(m)
				m.mockSite.EXPECT().Login(gomock.Any(), entity.PageHome).Return(assert.AnError).Times(1)
			},
			wantStage: entity.StageIdle,
			wantErr:   assert.AnError,
		},
		{
			name: "Should fail idle when entries cannot be listed",
			buildMock: func(m allMocks) {
				expectSession(m)
				expectPlanningPage(m)
				m.mockSite.EXPECT().ListEntries(gomock.Any()).Return(nil, assert.AnError).Times(1)
			},
			wantStage: entity.StageIdle,
			wantErr:   assert.AnError,
		},
		{
			name:      "Should fail at entry located when the editor does not open",
			buildMock: func(m allMocks) { expectUntil(m, "open") },
			wantStage: entity.StageEntryLocated,
			wantErr:   assert.AnError,
		},
		{
			name:      "Should fail at modal open when the status select never appears",
			buildMock: func(m allMocks) { expectUntil(m, "status") },
			wantStage: entity.StageModalOpen,
			wantErr:   assert.AnError,
		},
		{
			name:      "Should fail at status set when save cannot be clicked",
			buildMock: func(m allMocks) { expectUntil(m, "save") },
			wantStage: entity.StageStatusSet,
			wantErr:   assert.AnError,
		},
		{
			name:      "Should fail at save clicked when the confirm dialog never appears",
			buildMock: func(m allMocks) { expectUntil(m, "confirm") },
			wantStage: entity.StageSaveClicked,
			wantErr:   assert.AnError,
		},
		{
			name:      "Should fail at confirm clicked when the fields cannot be read",
			buildMock: func(m allMocks) { expectUntil(m, "read") },
			wantStage: entity.StageConfirmClicked,
			wantErr:   assert.AnError,
		},
		{
			name:      "Should fail at read back when the fields are empty",
			buildMock: func(m allMocks) { expectUntil(m, "empty") },
			wantStage: entity.StageReadBack,
			wantErr:   errEmptyReadBack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			got, err := newTestScrum(m).Approve(context.Background(), "U123456789")
			assert.Equal(t, tt.want, got)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "01-06-2018 (09:00 - 17:00)", got.String())
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, got.IsZero())

			var stageErr *domain.StageError
			if errors.As(err, &stageErr) {
				assert.Equal(t, tt.wantStage, stageErr.Stage)
			} else {
				assert.ErrorIs(t, err, domain.ErrNoOpenEntries)
			}
		})
	}
}

func Test_scrumService_SprintPlanning(t *testing.T) {
	const path = "screenshots/U123456789-1528243200123.png"

	tests := []struct {
		name      string
		req       entity.PlanningRequest
		buildMock func(m allMocks)
		wantErr   error
	}{
		{
			name: "Should capture the current week",
			req:  entity.PlanningRequest{View: entity.ViewWeek},
			buildMock: func(m allMocks) {
				m.mockArtifacts.EXPECT().NewPath("U123456789").Return(path, nil).Times(1)
				expectSession(m)
				gomock.InOrder(
					m.mockSite.EXPECT().Login(gomock.Any(), entity.PagePlanningEnglish).Return(nil),
					m.mockSite.EXPECT().Settle(gomock.Any()).Return(nil),
					m.mockSite.EXPECT().SwitchView(gomock.Any(), entity.ViewWeek).Return(nil),
					m.mockSite.EXPECT().Watermark(gomock.Any(), domain.WatermarkText).Return(nil),
					m.mockSite.EXPECT().Screenshot(gomock.Any(), path).Return(nil),
				)
			},
		},
		{
			name: "Should page back for negative amounts",
			req:  entity.PlanningRequest{View: entity.ViewMonth, Amount: -2},
			buildMock: func(m allMocks) {
				m.mockArtifacts.EXPECT().NewPath("U123456789").Return(path, nil).Times(1)
				expectSession(m)
				m.mockSite.EXPECT().Login(gomock.Any(), entity.PagePlanningEnglish).Return(nil).Times(1)
				m.mockSite.EXPECT().Settle(gomock.Any()).Return(nil).Times(1)
				m.mockSite.EXPECT().SwitchView(gomock.Any(), entity.ViewMonth).Return(nil).Times(1)
				m.mockSite.EXPECT().RewindWeek(gomock.Any()).Return(nil).Times(2)
				m.mockSite.EXPECT().AdvanceWeek(gomock.Any()).Times(0)
				m.mockSite.EXPECT().Watermark(gomock.Any(), domain.WatermarkText).Return(nil).Times(1)
				m.mockSite.EXPECT().Screenshot(gomock.Any(), path).Return(nil).Times(1)
			},
		},
		{
			name: "Should page forward for positive amounts",
			req:  entity.PlanningRequest{View: entity.ViewDay, Amount: 9},
			buildMock: func(m allMocks) {
				m.mockArtifacts.EXPECT().NewPath("U123456789").Return(path, nil).Times(1)
				expectSession(m)
				m.mockSite.EXPECT().Login(gomock.Any(), entity.PagePlanningEnglish).Return(nil).Times(1)
				m.mockSite.EXPECT().Settle(gomock.Any()).Return(nil).Times(1)
				m.mockSite.EXPECT().SwitchView(gomock.Any(), entity.ViewDay).Return(nil).Times(1)
				m.mockSite.EXPECT().AdvanceWeek(gomock.Any()).Return(nil).Times(9)
				m.mockSite.EXPECT().Watermark(gomock.Any(), domain.WatermarkText).Return(nil).Times(1)
				m.mockSite.EXPECT().Screenshot(gomock.Any(), path).Return(nil).Times(1)
			},
		},
		{
			name:      "Should reject amount 10 before any browser action",
			req:       entity.PlanningRequest{View: entity.ViewWeek, Amount: 10},
			buildMock: func(m allMocks) {},
			wantErr:   domain.ErrPlanningAmountOutOfRange,
		},
		{
			name:      "Should reject unknown views before any browser action",
			req:       entity.PlanningRequest{View: "year"},
			buildMock: func(m allMocks) {},
			wantErr:   domain.ErrInvalidPlanningOption,
		},
		{
			name: "Should fail and close when paging fails",
			req:  entity.PlanningRequest{View: entity.ViewWeek, Amount: 1},
			buildMock: func(m allMocks) {
				m.mockArtifacts.EXPECT().NewPath("U123456789").Return(path, nil).Times(1)
				expectSession(m)
				m.mockSite.EXPECT().Login(gomock.Any(), entity.PagePlanningEnglish).Return(nil).Times(1)
				m.mockSite.EXPECT().Settle(gomock.Any()).Return(nil).Times(1)
				m.mockSite.EXPECT().SwitchView(gomock.Any(), entity.ViewWeek).Return(nil).Times(1)
				m.mockSite.EXPECT().AdvanceWeek(gomock.Any()).Return(assert.AnError).Times(1)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			got, err := newTestScrum(m).SprintPlanning(context.Background(), "U123456789", tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, path, got)
		})
	}
}

func Test_scrumService_Screenshots(t *testing.T) {
	const path = "screenshots/U123456789-1528243200123.png"

	t.Run("Should capture the full dashboard for the overview", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockArtifacts.EXPECT().NewPath("U123456789").Return(path, nil).Times(1)
		expectSession(m)
		m.mockSite.EXPECT().Login(gomock.Any(), entity.PageHome).Return(nil).Times(1)
		m.mockSite.EXPECT().Screenshot(gomock.Any(), path).Return(nil).Times(1)

		got, err := newTestScrum(m).Overview(context.Background(), "U123456789")
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("Should crop the sprint hours panel", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockArtifacts.EXPECT().NewPath("U123456789").Return(path, nil).Times(1)
		expectSession(m)
		m.mockSite.EXPECT().Login(gomock.Any(), entity.PageDashboard).Return(nil).Times(1)
		m.mockSite.EXPECT().CaptureElement(gomock.Any(), entity.ElementSprintHours, path, float64(0)).Return(nil).Times(1)

		got, err := newTestScrum(m).SprintHours(context.Background(), "U123456789")
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("Should not open a browser when no path can be prepared", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockArtifacts.EXPECT().NewPath("U123456789").Return("", assert.AnError).Times(1)

		got, err := newTestScrum(m).Overview(context.Background(), "U123456789")
		assert.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, got)
	})

	t.Run("Should return no path when the capture fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockArtifacts.EXPECT().NewPath("U123456789").Return(path, nil).Times(1)
		expectSession(m)
		m.mockSite.EXPECT().Login(gomock.Any(), entity.PageDashboard).Return(nil).Times(1)
		m.mockSite.EXPECT().CaptureElement(gomock.Any(), entity.ElementSprintHours, path, float64(0)).Return(assert.AnError).Times(1)

		got, err := newTestScrum(m).SprintHours(context.Background(), "U123456789")
		assert.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, got)
	})
}

func Test_scrumService_withSession(t *testing.T) {
	t.Run("Should close the session when the operation panics", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		expectSession(m)
		m.mockSite.EXPECT().ListEntries(gomock.Any()).DoAndReturn(func(context.Context) ([]entity.WorkEntry, error) {
			panic("page crashed")
		}).Times(1)

		s := newTestScrum(m)
		assert.Panics(t, func() {
			_ = s.withSession(context.Background(), "panic", func(ctx context.Context, site contract.RemoteCalendarSite) error {
				_, err := site.ListEntries(ctx)
				return err
			})
		})
	})

	t.Run("Should keep the operation error when close fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockOpener.EXPECT().Open(gomock.Any()).Return(m.mockSite, nil).Times(1)
		m.mockSite.EXPECT().Close().Return(errors.New("browser already gone")).Times(1)

		err := newTestScrum(m).withSession(context.Background(), "close", func(context.Context, contract.RemoteCalendarSite) error {
			return assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Should bound the operation with the configured timeout", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		expectSession(m)

		s := newScrum(m.mockOpener, m.mockArtifacts, entity.DefaultPalette, time.Minute, discardLogger())
		err := s.withSession(context.Background(), "timeout", func(ctx context.Context, _ contract.RemoteCalendarSite) error {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return nil
		})
		assert.NoError(t, err)
	})
}

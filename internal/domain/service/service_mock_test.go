package service

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/diegoclair/myscrumteam-bot/internal/config"
	"github.com/diegoclair/myscrumteam-bot/internal/domain/entity"
	"github.com/diegoclair/myscrumteam-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockOpener      *mocks.MockSiteOpener
	mockSite        *mocks.MockRemoteCalendarSite
	mockArtifacts   *mocks.MockArtifactStore
	mockSlackClient *mocks.MockSlackClient
	mockScrum       *mocks.MockScrumService
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockOpener:      mocks.NewMockSiteOpener(ctrl),
		mockSite:        mocks.NewMockRemoteCalendarSite(ctrl),
		mockArtifacts:   mocks.NewMockArtifactStore(ctrl),
		mockSlackClient: mocks.NewMockSlackClient(ctrl),
		mockScrum:       mocks.NewMockScrumService(ctrl),
	}

	// validate service creation
	scrumService := newTestScrum(m)
	require.NotNil(t, scrumService)

	return
}

func newTestScrum(m allMocks) *scrumService {
	return newScrum(m.mockOpener, m.mockArtifacts, entity.DefaultPalette, 0, discardLogger())
}

func testConfig() *config.Config {
	return &config.Config{
		AuthorizedUserID:      "U123456789",
		OperationTimeout:      2 * time.Minute,
		WeeklyUpdateSchedule:  "0 18 * * 6",
		WeeklyCleanupSchedule: "0 22 * * 0",
		Location:              time.UTC,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectSession expects exactly one Open and exactly one Close.
func expectSession(m allMocks) {
	m.mockOpener.EXPECT().Open(gomock.Any()).Return(m.mockSite, nil).Times(1)
	m.mockSite.EXPECT().Close().Return(nil).Times(1)
}

// expectPlanningPage expects the login followed by the planning overview.
func expectPlanningPage(m allMocks) {
	gomock.InOrder(
		m.mockSite.EXPECT().Login(gomock.Any(), entity.PageHome).Return(nil).Times(1),
		m.mockSite.EXPECT().Navigate(gomock.Any(), entity.PagePlanning).Return(nil).Times(1),
	)
}

func entries(colors ...string) []entity.WorkEntry {
	out := make([]entity.WorkEntry, 0, len(colors))
	for i, c := range colors {
		out = append(out, entity.WorkEntry{Index: i, Color: c})
	}
	return out
}

const (
	green  = "rgb(88, 168, 61)"
	orange = "rgb(230, 145, 56)"
	blue   = "rgb(58, 135, 173)"
)

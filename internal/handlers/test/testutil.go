package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/myscrumteam-bot/internal/handlers"
	"github.com/diegoclair/myscrumteam-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	SigningSecret    = "test-signing-secret"
	AuthorizedUserID = "U123456789"
	ChannelID        = "D123456789"
)

type ServiceMocks struct {
	ScrumServiceMock *mocks.MockScrumService
	SlackClientMock  *mocks.MockSlackClient
}

// GetHandlerTest builds a handler that runs the browser work inline, so the
// mocks are satisfied before the response is returned.
func GetHandlerTest(t *testing.T, opts ...handlers.Option) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		ScrumServiceMock: mocks.NewMockScrumService(ctrl),
		SlackClientMock:  mocks.NewMockSlackClient(ctrl),
	}

	opts = append([]handlers.Option{
		handlers.WithRunner(func(task func()) { task() }),
		handlers.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}, opts...)
	handler = handlers.New(m.SlackClientMock, m.ScrumServiceMock, SigningSecret, AuthorizedUserID, opts...)

	return
}

// CreateScreenshot writes a small file that stands in for a captured PNG.
func CreateScreenshot(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), AuthorizedUserID+"-1528243200123.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG"), 0o644))
	return path
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, userID, userName, signingSecret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"directmessage"},
		"user_id":      {userID},
		"user_name":    {userName},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	// Set content type
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
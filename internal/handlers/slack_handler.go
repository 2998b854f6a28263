package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/diegoclair/myscrumteam-bot/internal/domain"
	"github.com/diegoclair/myscrumteam-bot/internal/domain/contract"
	"github.com/diegoclair/myscrumteam-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/myscrumteam-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	slackClient      contract.SlackClient
	scrumService     contract.ScrumService
	signingSecret    string
	authorizedUserID string
	debugMode        bool
	logger           *slog.Logger

	// run executes the browser work once the slash command got its ack.
	run func(task func())
}

type Option func(*SlackHandler)

// WithDebugMode echoes the sender of every command back.
func WithDebugMode(enabled bool) Option {
	return func(h *SlackHandler) { h.debugMode = enabled }
}

// WithRunner replaces the goroutine that runs the browser work.
func WithRunner(run func(task func())) Option {
	return func(h *SlackHandler) { h.run = run }
}

func WithLogger(logger *slog.Logger) Option {
	return func(h *SlackHandler) { h.logger = logger }
}

func New(slackClient contract.SlackClient, scrumService contract.ScrumService, signingSecret, authorizedUserID string, opts ...Option) *SlackHandler {
	h := &SlackHandler{
		slackClient:      slackClient,
		scrumService:     scrumService,
		signingSecret:    signingSecret,
		authorizedUserID: authorizedUserID,
		logger:           slog.Default(),
		run:              func(task func()) { go task() },
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.logger.Warn("rejected unsigned slash command", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.logger.Info("slash command received",
		"command", s.Command,
		"text", s.Text,
		"user_id", s.UserID,
		"channel_id", s.ChannelID,
	)

	var response *slack.Msg
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		response = h.createErrorResponse(slackcmd.UnsupportedParameterText(s.Text, "Type `/scrum help` to see the available commands."))
	} else {
		// Slack drops the request after 3 seconds, the browser work outlives it.
		response = h.handleCommand(context.WithoutCancel(r.Context()), cmd, &s)
	}

	if h.debugMode {
		response.Text = slackcmd.DebugText(s.UserID, s.UserName) + "\n" + response.Text
	}

	h.respond(w, response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdStart:
		return h.ephemeral(slackcmd.WelcomeText())
	case slackcmd.CmdHelp:
		return h.handleHelp()
	}

	if slashCmd.UserID != h.authorizedUserID {
		h.logger.Warn("unauthorized command", "command", string(cmd.Type), "user_id", slashCmd.UserID)
		return h.createErrorResponse(slackcmd.NotAuthorizedText(slashCmd.UserName))
	}

	var task func(ctx context.Context, slashCmd *slack.SlashCommand)

	switch cmd.Type {
	case slackcmd.CmdOverview:
		task = h.handleOverview
	case slackcmd.CmdSprint:
		task = h.handleSprintHours
	case slackcmd.CmdCheck:
		task = h.handleCheck
	case slackcmd.CmdApprove:
		task = h.handleApprove
	case slackcmd.CmdPlan:
		date, err := domain.ParseDate(cmd.Arg(0))
		if err != nil {
			return h.createErrorResponse(slackcmd.UnsupportedParameterText(cmd.Arg(0), "Use a date like `/scrum plan 2018-06-01`."))
		}
		task = func(ctx context.Context, slashCmd *slack.SlashCommand) {
			h.handlePlan(ctx, slashCmd, date)
		}
	case slackcmd.CmdPlanning:
		req, msg := parsePlanningArgs(cmd)
		if msg != nil {
			return msg
		}
		task = func(ctx context.Context, slashCmd *slack.SlashCommand) {
			h.handleSprintPlanning(ctx, slashCmd, req)
		}
	default:
		return h.createErrorResponse("Unknown command")
	}

	h.run(func() {
		defer h.recoverTask(cmd.Type, slashCmd.ChannelID)
		task(ctx, slashCmd)
	})

	return h.ephemeral(slackcmd.WorkingText(cmd.Type))
}

// recoverTask keeps a panicking browser task from taking the process down
// and tells the user the command failed.
func (h *SlackHandler) recoverTask(cmd slackcmd.CommandType, channelID string) {
	r := recover()
	if r == nil {
		return
	}
	h.logger.Error("command panicked",
		"command", string(cmd),
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
	h.postText(channelID, slackcmd.OperationFailedText(fmt.Sprintf("finish `%s`", cmd)))
}

func parsePlanningArgs(cmd *slackcmd.Command) (entity.PlanningRequest, *slack.Msg) {
	option := cmd.Arg(0)

	amount := 0
	if raw := cmd.Arg(1); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return entity.PlanningRequest{}, errorMsg(slackcmd.UnsupportedParameterText(raw, "The amount must be a number between -9 and 9."))
		}
		amount = n
	}

	req, err := domain.ParsePlanningRequest(option, amount)
	switch {
	case errors.Is(err, domain.ErrInvalidPlanningOption):
		return req, errorMsg(slackcmd.UnsupportedParameterText(option, "Use `day`, `week` or `month`."))
	case errors.Is(err, domain.ErrPlanningAmountOutOfRange):
		return req, errorMsg(slackcmd.UnsupportedParameterText(cmd.Arg(1), "The amount must be a number between -9 and 9."))
	case err != nil:
		return req, errorMsg(err.Error())
	}
	return req, nil
}

func (h *SlackHandler) handleOverview(ctx context.Context, slashCmd *slack.SlashCommand) {
	path, err := h.scrumService.Overview(ctx, slashCmd.UserID)
	if err != nil {
		h.postText(slashCmd.ChannelID, slackcmd.OperationFailedText("take a screenshot of your dashboard"))
		return
	}
	h.uploadScreenshot(ctx, slashCmd.ChannelID, path, "MyScrumTeam overview")
}

func (h *SlackHandler) handleSprintHours(ctx context.Context, slashCmd *slack.SlashCommand) {
	path, err := h.scrumService.SprintHours(ctx, slashCmd.UserID)
	if err != nil {
		h.postText(slashCmd.ChannelID, slackcmd.OperationFailedText("take a screenshot of the sprint hours"))
		return
	}
	h.uploadScreenshot(ctx, slashCmd.ChannelID, path, "Sprint hours")
}

func (h *SlackHandler) handleSprintPlanning(ctx context.Context, slashCmd *slack.SlashCommand, req entity.PlanningRequest) {
	path, err := h.scrumService.SprintPlanning(ctx, slashCmd.UserID, req)
	if err != nil {
		h.postText(slashCmd.ChannelID, slackcmd.OperationFailedText("take a screenshot of the sprint planning"))
		return
	}
	h.uploadScreenshot(ctx, slashCmd.ChannelID, path, fmt.Sprintf("Sprint planning (%s %+d)", req.View, req.Amount))
}

func (h *SlackHandler) handleCheck(ctx context.Context, slashCmd *slack.SlashCommand) {
	count, err := h.scrumService.CheckOpenHours(ctx)
	if err != nil {
		h.postText(slashCmd.ChannelID, slackcmd.OperationFailedText("check your open workdays"))
		return
	}
	h.postText(slashCmd.ChannelID, slackcmd.OpenHoursText(count))
}

func (h *SlackHandler) handleApprove(ctx context.Context, slashCmd *slack.SlashCommand) {
	count, err := h.scrumService.CheckOpenHours(ctx)
	if err != nil {
		h.postText(slashCmd.ChannelID, slackcmd.OperationFailedText("check your open workdays"))
		return
	}
	if count == 0 {
		h.postText(slashCmd.ChannelID, slackcmd.NothingToApproveText())
		return
	}

	approval, err := h.scrumService.Approve(ctx, slashCmd.UserID)
	switch {
	case errors.Is(err, domain.ErrNoOpenEntries):
		h.postText(slashCmd.ChannelID, slackcmd.NothingToApproveText())
	case err != nil:
		var stageErr *domain.StageError
		if errors.As(err, &stageErr) {
			h.logger.Warn("approval stopped", "stage", stageErr.Stage.String(), "error", stageErr.Err)
		}
		h.postText(slashCmd.ChannelID, slackcmd.ApproveFailedText())
	default:
		h.postText(slashCmd.ChannelID, slackcmd.ApprovedText(approval))
	}
}

func (h *SlackHandler) handlePlan(ctx context.Context, slashCmd *slack.SlashCommand, date string) {
	status, err := h.scrumService.IsAlreadyPlanned(ctx, date)
	switch {
	case errors.Is(err, domain.ErrDateNotFound):
		h.postText(slashCmd.ChannelID, slackcmd.DateNotFoundText(date))
		return
	case err != nil:
		h.postText(slashCmd.ChannelID, slackcmd.OperationFailedText("check your planning"))
		return
	case status == entity.PlannedYes:
		h.postText(slashCmd.ChannelID, slackcmd.AlreadyPlannedText())
		return
	}

	outcome, err := h.scrumService.Plan(ctx, slashCmd.UserID, date)
	switch {
	case errors.Is(err, domain.ErrAlreadyPlanned):
		h.postText(slashCmd.ChannelID, slackcmd.AlreadyPlannedText())
	case errors.Is(err, domain.ErrDateNotFound):
		h.postText(slashCmd.ChannelID, slackcmd.DateNotFoundText(date))
	case err != nil:
		h.postText(slashCmd.ChannelID, slackcmd.OperationFailedText("plan your working day"))
	default:
		h.postText(slashCmd.ChannelID, slackcmd.PlannedText(outcome))
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return h.ephemeral(slackcmd.GetHelpText())
}

func (h *SlackHandler) postText(channelID, text string) {
	_, _, err := h.slackClient.PostMessage(
		channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		h.logger.Error("failed to send Slack message", "channel_id", channelID, "error", err)
	}
}

func (h *SlackHandler) uploadScreenshot(ctx context.Context, channelID, path, title string) {
	info, err := os.Stat(path)
	if err != nil {
		h.logger.Error("screenshot missing", "path", path, "error", err)
		h.postText(channelID, slackcmd.OperationFailedText("send the screenshot"))
		return
	}

	uploadCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	_, err = h.slackClient.UploadFileV2Context(uploadCtx, slack.UploadFileV2Parameters{
		Channel:  channelID,
		File:     path,
		FileSize: int(info.Size()),
		Filename: filepath.Base(path),
		Title:    title,
	})
	if err != nil {
		h.logger.Error("failed to upload screenshot", "path", path, "error", err)
		h.postText(channelID, slackcmd.OperationFailedText("send the screenshot"))
	}
}

func (h *SlackHandler) ephemeral(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return errorMsg(message)
}

func errorMsg(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         message,
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, response *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

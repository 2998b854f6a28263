package slack

import (
	"fmt"

	"github.com/diegoclair/myscrumteam-bot/internal/domain/entity"
)

const (
	iconInfo  = "ℹ️"
	iconError = "⛔"
	iconMoney = "💰"
	iconHelp  = "❓"
	iconWait  = "⏳"
)

func WelcomeText() string {
	return fmt.Sprintf("Welcome! Enjoy your usage of ScrumBuddy.\nNeed help%s Try `/scrum help`.", iconHelp)
}

func WorkingText(cmd CommandType) string {
	return fmt.Sprintf("%s Working on `%s`, this takes a few seconds...", iconWait, cmd)
}

func OpenHoursText(count int) string {
	switch {
	case count == 1:
		return fmt.Sprintf("%s You have 1 open workday in MyScrumTeam for this week.", iconInfo)
	case count > 1:
		return fmt.Sprintf("%s You have %d open workdays in MyScrumTeam for this week.", iconInfo, count)
	default:
		return fmt.Sprintf("%s You have no open workdays in MyScrumTeam for this week.", iconInfo)
	}
}

func WeeklyUpdateText(count int) string {
	if count <= 0 {
		return OpenHoursText(count)
	}
	return OpenHoursText(count) + " Type `/scrum approve` to confirm your hours."
}

func WeeklyUpdateFailedText() string {
	return fmt.Sprintf("%s Unable to check your open workdays in MyScrumTeam this week. Try `/scrum check` later.", iconError)
}

func NothingToApproveText() string {
	return fmt.Sprintf("%s You have no open workdays to approve!", iconInfo)
}

func ApprovedText(approval entity.Approval) string {
	return fmt.Sprintf("%s Your workday on %s was successfully marked as worked!", iconMoney, approval)
}

func ApproveFailedText() string {
	return fmt.Sprintf("%s Unable to mark working day as worked, please try again.", iconInfo)
}

func AlreadyPlannedText() string {
	return fmt.Sprintf("%s You already planned a working day on this date, please try another date.", iconError)
}

func PlannedText(outcome entity.PlanOutcome) string {
	if outcome == entity.PlanConfirmed {
		return fmt.Sprintf("%s Working day planned!", iconInfo)
	}
	return fmt.Sprintf("%s Clicked the day in MyScrumTeam, but no planned entry showed up. Check `/scrum planning` before trying again.", iconInfo)
}

func DateNotFoundText(date string) string {
	return fmt.Sprintf("%s Could not find %s in the next weeks of your planning. Try again later or pick a closer date.", iconInfo, date)
}

func UnsupportedParameterText(parameter, suggestion string) string {
	message := fmt.Sprintf("%s Unsupported parameter: *%s*", iconError, parameter)
	if suggestion != "" {
		message += "\n" + suggestion
	}
	return message
}

func NotAuthorizedText(name string) string {
	return fmt.Sprintf("%s %s, I am not your master. You are not allowed to execute this command.", iconError, name)
}

func OperationFailedText(what string) string {
	return fmt.Sprintf("%s Unable to %s right now, MyScrumTeam did not respond as expected. Please try again.", iconError, what)
}

func DebugText(userID, userName string) string {
	return fmt.Sprintf("Received your message: user_id=%s user_name=%s", userID, userName)
}

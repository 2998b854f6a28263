package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdStart    CommandType = "start"
	CmdOverview CommandType = "overview"
	CmdCheck    CommandType = "check"
	CmdApprove  CommandType = "approve"
	CmdPlan     CommandType = "plan"
	CmdSprint   CommandType = "sprint"
	CmdPlanning CommandType = "planning"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// Arg returns the i-th argument or an empty string.
func (c *Command) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(strings.TrimPrefix(parts[0], "/")) {
	case "start":
		cmd.Type = CmdStart
	case "overview", "dashboard":
		cmd.Type = CmdOverview
	case "check":
		cmd.Type = CmdCheck
	case "approve":
		cmd.Type = CmdApprove
	case "plan":
		cmd.Type = CmdPlan
	case "sprint":
		cmd.Type = CmdSprint
	case "planning":
		cmd.Type = CmdPlanning
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*MyScrumTeam:*
• ` + "`/scrum overview`" + ` - Screenshot of your dashboard
• ` + "`/scrum sprint`" + ` - Screenshot of the sprint hours of your team
• ` + "`/scrum planning [day|week|month] [-9..9]`" + ` - Screenshot of the sprint planning (ex: ` + "`/scrum planning week 1`" + `)

*Hours:*
• ` + "`/scrum check`" + ` - Count your open workdays of this week
• ` + "`/scrum approve`" + ` - Mark your next open workday as worked
• ` + "`/scrum plan YYYY-MM-DD`" + ` - Plan a working day (ex: 2018-06-01)`
}

package entity

import "fmt"

// ApprovalStage tracks how far the "mark as worked" flow got.
type ApprovalStage int

const (
	StageIdle ApprovalStage = iota
	StageEntryLocated
	StageModalOpen
	StageStatusSet
	StageSaveClicked
	StageConfirmClicked
	StageReadBack
	StageDone
	StageFailed
)

var approvalStageNames = map[ApprovalStage]string{
	StageIdle:           "idle",
	StageEntryLocated:   "entry located",
	StageModalOpen:      "modal open",
	StageStatusSet:      "status set",
	StageSaveClicked:    "save clicked",
	StageConfirmClicked: "confirm clicked",
	StageReadBack:       "read back",
	StageDone:           "done",
	StageFailed:         "failed",
}

func (s ApprovalStage) String() string {
	if name, ok := approvalStageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Approval is the work day that got marked as worked, as read back from the editor.
type Approval struct {
	Date string
	From string
	To   string
}

func (a Approval) String() string {
	return fmt.Sprintf("%s (%s - %s)", a.Date, a.From, a.To)
}

// IsZero reports whether nothing was read back.
func (a Approval) IsZero() bool {
	return a == Approval{}
}

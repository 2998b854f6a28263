package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/myscrumteam-bot/internal/domain/entity"
)

var (
	ErrDateNotFound             = errors.New("date not found in the reachable weeks")
	ErrNoOpenEntries            = errors.New("no unapproved entries")
	ErrAlreadyPlanned           = errors.New("day already holds a worked or planned entry")
	ErrInvalidPlanningOption    = errors.New("unsupported planning option")
	ErrPlanningAmountOutOfRange = fmt.Errorf("planning amount must be between %d and %d", MinPlanningAmount, MaxPlanningAmount)
	ErrInvalidDate              = errors.New("date must look like 2018-06-01")
)

// StageError reports the approval stage at which the flow broke off.
type StageError struct {
	Stage entity.ApprovalStage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("approval failed at %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// ParsePlanningRequest validates the planning option and amount coming from chat.
func ParsePlanningRequest(option string, amount int) (entity.PlanningRequest, error) {
	view, ok := PlanningViews[option]
	if !ok {
		return entity.PlanningRequest{}, fmt.Errorf("%w: %q", ErrInvalidPlanningOption, option)
	}
	if amount < MinPlanningAmount || amount > MaxPlanningAmount {
		return entity.PlanningRequest{}, fmt.Errorf("%w: got %d", ErrPlanningAmountOutOfRange, amount)
	}
	return entity.PlanningRequest{View: view, Amount: amount}, nil
}

// ValidatePlanningRequest re-checks a request built outside ParsePlanningRequest.
func ValidatePlanningRequest(req entity.PlanningRequest) error {
	switch req.View {
	case entity.ViewDay, entity.ViewWeek, entity.ViewMonth:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPlanningOption, req.View)
	}
	if req.Amount < MinPlanningAmount || req.Amount > MaxPlanningAmount {
		return fmt.Errorf("%w: got %d", ErrPlanningAmountOutOfRange, req.Amount)
	}
	return nil
}

// ParseDate checks that value is an ISO calendar date and returns it normalized.
func ParseDate(value string) (string, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t.Format(DateLayout), nil
}

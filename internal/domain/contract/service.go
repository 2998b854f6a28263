package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/diegoclair/myscrumteam-bot/internal/domain/entity"
)

// ScrumService is everything the chat layer may ask of MyScrumTeam. Only
// primitive values and file paths cross this boundary.
type ScrumService interface {
	Overview(ctx context.Context, requesterID string) (string, error)
	CheckOpenHours(ctx context.Context) (int, error)
	Approve(ctx context.Context, requesterID string) (entity.Approval, error)
	Plan(ctx context.Context, requesterID, date string) (entity.PlanOutcome, error)
	IsAlreadyPlanned(ctx context.Context, date string) (entity.PlannedStatus, error)
	SprintHours(ctx context.Context, requesterID string) (string, error)
	SprintPlanning(ctx context.Context, requesterID string, req entity.PlanningRequest) (string, error)
}

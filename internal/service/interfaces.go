package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// DepthChartServiceInterface defines the interface for depth chart service
type DepthChartServiceInterface interface {
	AddPlayer(ctx context.Context, teamID uuid.UUID, req *AddPlayerRequest) error
	RemovePlayer(ctx context.Context, teamID uuid.UUID, req *RemovePlayerRequest) ([]PlayerResponse, error)
	GetBackups(ctx context.Context, teamID uuid.UUID, position, name string, number int) ([]PlayerResponse, error)
	GetFullChart(ctx context.Context, teamID uuid.UUID) (map[string][]PlayerResponse, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TeamResponse, error)
	List(ctx context.Context) ([]TeamResponse, error)
}

package repository

import (
	"context"

	"depthchart-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// DepthChartRepositoryInterface defines the persistence contract for
// ordered depth chart sequences. SavePosition always receives the full
// desired order for a position; the store owns reconciling it against
// durable player records.
type DepthChartRepositoryInterface interface {
	GetTeam(ctx context.Context, teamID uuid.UUID) (*models.Team, error)
	GetPosition(ctx context.Context, teamID uuid.UUID, position string) ([]PlayerRef, error)
	SavePosition(ctx context.Context, teamID uuid.UUID, position string, ordered []PlayerRef) error
	GetFullChart(ctx context.Context, teamID uuid.UUID) (map[string][]PlayerRef, error)
}

// TeamRepositoryInterface defines database operations for teams
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetByName(ctx context.Context, name string) (*models.Team, error)
	List(ctx context.Context) ([]models.Team, error)
}

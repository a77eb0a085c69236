package service

import (
	"context"
	"errors"
	"fmt"

	"depthchart-backend/internal/database/models"
	apperrors "depthchart-backend/internal/errors"
	"depthchart-backend/internal/repository"
	"depthchart-backend/internal/sports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Sport string `json:"sport" validate:"required,min=1,max=20"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Sport     string    `json:"sport"`
	CreatedAt string    `json:"created_at"`
}

// Create creates a new team
func (s *TeamService) Create(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if sports.Positions(req.Sport) == nil {
		return nil, apperrors.NewValidationError("sport", fmt.Sprintf("unknown sport %s", req.Sport))
	}

	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing team by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTeamExists
	}

	team := &models.Team{
		Name:  req.Name,
		Sport: req.Sport,
	}
	if err := s.repo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return toTeamResponse(team), nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(ctx context.Context, id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return toTeamResponse(team), nil
}

// List retrieves all teams
func (s *TeamService) List(ctx context.Context) ([]TeamResponse, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *toTeamResponse(&teams[i]))
	}
	return responses, nil
}

func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		Sport:     team.Sport,
		CreatedAt: team.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

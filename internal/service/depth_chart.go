package service

import (
	"context"
	"errors"
	"fmt"

	"depthchart-backend/internal/database/models"
	apperrors "depthchart-backend/internal/errors"
	"depthchart-backend/internal/logger"
	"depthchart-backend/internal/repository"
	"depthchart-backend/internal/sports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepthChartService handles business logic for depth chart operations.
// It owns ordering decisions (insert depth, removal, backups) and treats
// the repository as the single reader and writer of durable state.
type DepthChartService struct {
	repo      repository.DepthChartRepositoryInterface
	validator *validator.Validate
}

// NewDepthChartService creates a new depth chart service
func NewDepthChartService(repo repository.DepthChartRepositoryInterface, validator *validator.Validate) *DepthChartService {
	return &DepthChartService{
		repo:      repo,
		validator: validator,
	}
}

// AddPlayerRequest represents the request to add a player to a position
type AddPlayerRequest struct {
	Position      string `json:"position" validate:"required,min=1,max=10"`
	Name          string `json:"name" validate:"required,min=1,max=100"`
	Number        int    `json:"number" validate:"required,gt=0"`
	PositionDepth *int   `json:"position_depth,omitempty" validate:"omitempty,gte=0"`
}

// RemovePlayerRequest represents the request to remove a player from a position
type RemovePlayerRequest struct {
	Position string `json:"position" validate:"required,min=1,max=10"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Number   int    `json:"number" validate:"required,gt=0"`
}

// PlayerResponse represents a player in API responses
type PlayerResponse struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
}

// AddPlayer places a player into a position's ordered sequence. With no
// depth, or a depth at or past the end, the player is appended; a depth
// inside the sequence inserts and shifts the tail back. Depths must be
// filled contiguously from 0, so a depth beyond the current length is a
// conflict.
func (s *DepthChartService) AddPlayer(ctx context.Context, teamID uuid.UUID, req *AddPlayerRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}

	team, err := s.lookupTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if !sports.IsValidPosition(team.Sport, req.Position) {
		return apperrors.NewValidationError("position",
			fmt.Sprintf("%s is not valid for %s", req.Position, team.Sport))
	}

	players, err := s.repo.GetPosition(ctx, teamID, req.Position)
	if err != nil {
		logger.WithContext(ctx).WithField("team_id", teamID).Errorf("failed to load position %s: %v", req.Position, err)
		return fmt.Errorf("failed to load position: %w", err)
	}

	incoming := repository.PlayerRef{Name: req.Name, Number: req.Number}
	for _, existing := range players {
		if existing.Matches(incoming) {
			return apperrors.ErrPlayerAlreadyAtDepth
		}
	}

	if req.PositionDepth != nil && *req.PositionDepth > len(players) {
		return apperrors.NewConflictError(
			"cannot add %s #%d at depth %d because depth %d must be filled first",
			req.Name, req.Number, *req.PositionDepth, len(players))
	}

	if req.PositionDepth == nil || *req.PositionDepth >= len(players) {
		players = append(players, incoming)
	} else {
		depth := *req.PositionDepth
		players = append(players[:depth], append([]repository.PlayerRef{incoming}, players[depth:]...)...)
	}

	if err := s.repo.SavePosition(ctx, teamID, req.Position, players); err != nil {
		logger.WithContext(ctx).WithField("team_id", teamID).Errorf("failed to save position %s: %v", req.Position, err)
		return fmt.Errorf("failed to save position: %w", err)
	}
	return nil
}

// RemovePlayer removes a player from a position's sequence by identity.
// The removed player is echoed back with the caller's spelling, not the
// stored one. An absent player is a normal empty result, not an error,
// and leaves the stored sequence untouched.
func (s *DepthChartService) RemovePlayer(ctx context.Context, teamID uuid.UUID, req *RemovePlayerRequest) ([]PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	team, err := s.lookupTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !sports.IsValidPosition(team.Sport, req.Position) {
		return nil, apperrors.NewValidationError("position",
			fmt.Sprintf("%s is not valid for %s", req.Position, team.Sport))
	}

	players, err := s.repo.GetPosition(ctx, teamID, req.Position)
	if err != nil {
		logger.WithContext(ctx).WithField("team_id", teamID).Errorf("failed to load position %s: %v", req.Position, err)
		return nil, fmt.Errorf("failed to load position: %w", err)
	}

	target := repository.PlayerRef{Name: req.Name, Number: req.Number}
	remaining := make([]repository.PlayerRef, 0, len(players))
	for _, player := range players {
		if player.Matches(target) {
			continue
		}
		remaining = append(remaining, player)
	}
	if len(remaining) == len(players) {
		return []PlayerResponse{}, nil
	}

	if err := s.repo.SavePosition(ctx, teamID, req.Position, remaining); err != nil {
		logger.WithContext(ctx).WithField("team_id", teamID).Errorf("failed to save position %s: %v", req.Position, err)
		return nil, fmt.Errorf("failed to save position: %w", err)
	}
	return []PlayerResponse{{Name: req.Name, Number: req.Number}}, nil
}

// GetBackups returns the players ranked strictly after the given player
// at a position. This is a lookup-only path: unknown teams, positions,
// or players all yield an empty result.
func (s *DepthChartService) GetBackups(ctx context.Context, teamID uuid.UUID, position, name string, number int) ([]PlayerResponse, error) {
	players, err := s.repo.GetPosition(ctx, teamID, position)
	if err != nil {
		logger.WithContext(ctx).WithField("team_id", teamID).Errorf("failed to load position %s: %v", position, err)
		return nil, fmt.Errorf("failed to load position: %w", err)
	}

	target := repository.PlayerRef{Name: name, Number: number}
	idx := -1
	for i, player := range players {
		if player.Matches(target) {
			idx = i
			break
		}
	}
	if idx < 0 || idx >= len(players)-1 {
		return []PlayerResponse{}, nil
	}

	backups := make([]PlayerResponse, 0, len(players)-idx-1)
	for _, player := range players[idx+1:] {
		backups = append(backups, PlayerResponse{Name: player.Name, Number: player.Number})
	}
	return backups, nil
}

// GetFullChart returns every position's ordered sequence for a team. A
// team with no chart yields an empty map.
func (s *DepthChartService) GetFullChart(ctx context.Context, teamID uuid.UUID) (map[string][]PlayerResponse, error) {
	chart, err := s.repo.GetFullChart(ctx, teamID)
	if err != nil {
		logger.WithContext(ctx).WithField("team_id", teamID).Errorf("failed to load full chart: %v", err)
		return nil, fmt.Errorf("failed to load full chart: %w", err)
	}

	result := make(map[string][]PlayerResponse, len(chart))
	for code, players := range chart {
		list := make([]PlayerResponse, 0, len(players))
		for _, player := range players {
			list = append(list, PlayerResponse{Name: player.Name, Number: player.Number})
		}
		result[code] = list
	}
	return result, nil
}

func (s *DepthChartService) lookupTeam(ctx context.Context, teamID uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		logger.WithContext(ctx).WithField("team_id", teamID).Errorf("failed to load team: %v", err)
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	return team, nil
}

package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"depthchart-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerRef is a player value identified by name and jersey number.
// Names compare case-insensitively, numbers exactly; two refs with the
// same identity refer to the same durable player record.
type PlayerRef struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
}

// Matches reports whether other has the same player identity.
func (p PlayerRef) Matches(other PlayerRef) bool {
	return strings.EqualFold(p.Name, other.Name) && p.Number == other.Number
}

// DepthChartRepository persists ordered depth chart sequences per
// (team, position). Writes are full replacements of a position's
// entries inside one transaction; there is no version token, so two
// concurrent writers to the same position race and the last commit
// wins at position granularity.
type DepthChartRepository struct {
	db *gorm.DB
}

// NewDepthChartRepository creates a new depth chart repository
func NewDepthChartRepository(db *gorm.DB) *DepthChartRepository {
	return &DepthChartRepository{db: db}
}

// normalizeCode canonicalizes a position code for storage and lookup.
func normalizeCode(position string) string {
	return strings.ToUpper(strings.TrimSpace(position))
}

// GetTeam retrieves a team by ID
func (r *DepthChartRepository) GetTeam(ctx context.Context, teamID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "id = ?", teamID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetPosition reconstructs the ordered player sequence for a
// (team, position) pair. A team without a chart, or a chart without the
// position, yields an empty sequence rather than an error.
func (r *DepthChartRepository) GetPosition(ctx context.Context, teamID uuid.UUID, position string) ([]PlayerRef, error) {
	db := r.db.WithContext(ctx)

	var chart models.DepthChart
	if err := db.First(&chart, "team_id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []PlayerRef{}, nil
		}
		return nil, err
	}

	var pos models.DepthChartPosition
	err := db.First(&pos, "depth_chart_id = ? AND position_code = ?", chart.ID, normalizeCode(position)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []PlayerRef{}, nil
		}
		return nil, err
	}

	var entries []models.DepthChartEntry
	if err := db.Where("position_id = ?", pos.ID).Order("depth asc").Find(&entries).Error; err != nil {
		return nil, err
	}

	return r.resolveEntries(ctx, entries)
}

// SavePosition reconciles the caller's authoritative ordered list
// against durable storage. Chart and position rows are created lazily,
// players are resolved or created by identity, and the position's
// entries are fully replaced with dense depth ordinals 0..N-1. The whole
// reconciliation commits atomically or not at all.
func (r *DepthChartRepository) SavePosition(ctx context.Context, teamID uuid.UUID, position string, ordered []PlayerRef) error {
	code := normalizeCode(position)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Load or create the team's chart, stamping the update time
		var chart models.DepthChart
		err := tx.First(&chart, "team_id = ?", teamID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			chart = models.DepthChart{TeamID: teamID, UpdatedAt: time.Now().UTC()}
			if err := tx.Create(&chart).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&chart).Update("updated_at", time.Now().UTC()).Error; err != nil {
				return err
			}
		}

		// Load or create the position row
		var pos models.DepthChartPosition
		err = tx.First(&pos, "depth_chart_id = ? AND position_code = ?", chart.ID, code).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			pos = models.DepthChartPosition{DepthChartID: chart.ID, PositionCode: code}
			if err := tx.Create(&pos).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		}

		// Resolve each player to a durable record by identity,
		// creating records for identities seen for the first time
		playerIDs := make([]uuid.UUID, 0, len(ordered))
		for _, ref := range ordered {
			id, err := resolvePlayer(tx, ref)
			if err != nil {
				return err
			}
			playerIDs = append(playerIDs, id)
		}

		// Full replace: drop all entries for the position and recreate
		// them from the incoming order with dense depth ordinals
		if err := tx.Where("position_id = ?", pos.ID).Delete(&models.DepthChartEntry{}).Error; err != nil {
			return err
		}
		if len(playerIDs) == 0 {
			return nil
		}
		entries := make([]models.DepthChartEntry, 0, len(playerIDs))
		for depth, playerID := range playerIDs {
			entries = append(entries, models.DepthChartEntry{
				PositionID: pos.ID,
				PlayerID:   playerID,
				Depth:      depth,
			})
		}
		return tx.Create(&entries).Error
	})
}

// resolvePlayer finds the durable player record matching ref's identity,
// creating one when no match exists. Repeated saves of the same
// (name, number) always resolve to the same record; the unique index on
// (name_key, number) backs this at the storage level.
func resolvePlayer(tx *gorm.DB, ref PlayerRef) (uuid.UUID, error) {
	var player models.Player
	err := tx.First(&player, "name_key = ? AND number = ?", strings.ToLower(ref.Name), ref.Number).Error
	if err == nil {
		return player.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}

	player = models.Player{Name: ref.Name, Number: ref.Number}
	if err := tx.Create(&player).Error; err != nil {
		return uuid.Nil, err
	}
	return player.ID, nil
}

// GetFullChart reconstructs every position's ordered sequence for a team
// in one batched pass, keyed by position code and sorted reads by code.
// A team without a chart yields an empty map.
func (r *DepthChartRepository) GetFullChart(ctx context.Context, teamID uuid.UUID) (map[string][]PlayerRef, error) {
	db := r.db.WithContext(ctx)
	result := make(map[string][]PlayerRef)

	var chart models.DepthChart
	if err := db.First(&chart, "team_id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result, nil
		}
		return nil, err
	}

	var positions []models.DepthChartPosition
	if err := db.Where("depth_chart_id = ?", chart.ID).Order("position_code asc").Find(&positions).Error; err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return result, nil
	}

	posIDs := make([]uuid.UUID, 0, len(positions))
	for _, pos := range positions {
		posIDs = append(posIDs, pos.ID)
	}

	var entries []models.DepthChartEntry
	if err := db.Where("position_id IN ?", posIDs).Order("depth asc").Find(&entries).Error; err != nil {
		return nil, err
	}

	byPosition := make(map[uuid.UUID][]models.DepthChartEntry, len(positions))
	for _, entry := range entries {
		byPosition[entry.PositionID] = append(byPosition[entry.PositionID], entry)
	}

	for _, pos := range positions {
		refs, err := r.resolveEntries(ctx, byPosition[pos.ID])
		if err != nil {
			return nil, err
		}
		result[pos.PositionCode] = refs
	}

	return result, nil
}

// resolveEntries maps depth-ordered entries to player values. Entries
// whose player record is missing are skipped so a dangling reference
// cannot break the read path.
func (r *DepthChartRepository) resolveEntries(ctx context.Context, entries []models.DepthChartEntry) ([]PlayerRef, error) {
	refs := make([]PlayerRef, 0, len(entries))
	if len(entries) == 0 {
		return refs, nil
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.PlayerID)
	}

	var players []models.Player
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&players).Error; err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]models.Player, len(players))
	for _, player := range players {
		byID[player.ID] = player
	}

	for _, entry := range entries {
		player, ok := byID[entry.PlayerID]
		if !ok {
			continue
		}
		refs = append(refs, PlayerRef{Name: player.Name, Number: player.Number})
	}
	return refs, nil
}

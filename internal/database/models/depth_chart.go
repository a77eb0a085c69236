package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepthChart is the per-team root of the chart graph. One row per team,
// created lazily on the first write for that team.
type DepthChart struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex"`
	UpdatedAt time.Time `json:"updated_at"`

	Positions []DepthChartPosition `json:"positions,omitempty" gorm:"foreignKey:DepthChartID"`
}

// TableName returns the table name for DepthChart
func (DepthChart) TableName() string {
	return "depth_charts"
}

// BeforeCreate sets the UUID if not already set
func (dc *DepthChart) BeforeCreate(tx *gorm.DB) error {
	if dc.ID == uuid.Nil {
		dc.ID = uuid.New()
	}
	return nil
}

// DepthChartPosition is one position code within a chart, created lazily
// the first time a player is saved at that position.
type DepthChartPosition struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	DepthChartID uuid.UUID `json:"depth_chart_id" gorm:"type:uuid;not null;uniqueIndex:idx_chart_position"`
	PositionCode string    `json:"position_code" gorm:"size:10;not null;uniqueIndex:idx_chart_position"`

	Entries []DepthChartEntry `json:"entries,omitempty" gorm:"foreignKey:PositionID"`
}

// TableName returns the table name for DepthChartPosition
func (DepthChartPosition) TableName() string {
	return "depth_chart_positions"
}

// BeforeCreate sets the UUID if not already set
func (p *DepthChartPosition) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DepthChartEntry ties a player record to a position at a depth ordinal.
// Depth 0 is the starter; ordinals are dense 0..N-1 after every write.
type DepthChartEntry struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	PositionID uuid.UUID `json:"position_id" gorm:"type:uuid;not null;uniqueIndex:idx_position_depth"`
	PlayerID   uuid.UUID `json:"player_id" gorm:"type:uuid;not null"`
	Depth      int       `json:"depth" gorm:"not null;uniqueIndex:idx_position_depth"`
}

// TableName returns the table name for DepthChartEntry
func (DepthChartEntry) TableName() string {
	return "depth_chart_entries"
}

// BeforeCreate sets the UUID if not already set
func (e *DepthChartEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

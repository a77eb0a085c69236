package models

import (
	"strings"

	"gorm.io/gorm"
)

// Player is the durable record for a player identity. Identity is
// (name case-insensitive, number); NameKey stores the lowercased name so
// the database can enforce at-most-one record per identity.
type Player struct {
	BaseModel
	Name    string `json:"name" gorm:"size:100;not null"`
	NameKey string `json:"-" gorm:"size:100;not null;uniqueIndex:idx_players_identity"`
	Number  int    `json:"number" gorm:"not null;uniqueIndex:idx_players_identity"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}

// BeforeSave keeps NameKey in sync with Name
func (p *Player) BeforeSave(tx *gorm.DB) error {
	p.NameKey = strings.ToLower(p.Name)
	return nil
}

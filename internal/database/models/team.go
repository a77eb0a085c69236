package models

// Team represents a sports team that owns a depth chart
type Team struct {
	BaseModel
	Name  string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Sport string `json:"sport" gorm:"size:20;not null" validate:"required,min=1,max=20"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

package testutils

import (
	"fmt"
	"time"

	"depthchart-backend/internal/database/models"
	"depthchart-backend/internal/repository"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:  fmt.Sprintf("Test Team %s", uuid.New().String()[:8]),
		Sport: "NFL",
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithSport sets a custom sport for the team
func (f *TeamFactory) WithSport(sport string) *models.Team {
	team := f.Create()
	team.Sport = sport
	return team
}

// PlayerFactory provides methods to create player values for tests
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Ref creates a player value with the given identity
func (f *PlayerFactory) Ref(name string, number int) repository.PlayerRef {
	return repository.PlayerRef{Name: name, Number: number}
}

// QBDepth returns the canonical three-deep quarterback sequence used
// across ordering tests.
func (f *PlayerFactory) QBDepth() []repository.PlayerRef {
	return []repository.PlayerRef{
		{Name: "Tom Brady", Number: 12},
		{Name: "Jimmy Garoppolo", Number: 10},
		{Name: "Blaine Gabbert", Number: 11},
	}
}

// FactorySet bundles all factories for convenience
type FactorySet struct {
	Team   *TeamFactory
	Player *PlayerFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:   NewTeamFactory(),
		Player: NewPlayerFactory(),
	}
}

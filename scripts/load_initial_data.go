package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"depthchart-backend/internal/config"
	"depthchart-backend/internal/database"
	"depthchart-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TeamData matches the seed file schema
type TeamData struct {
	Name  string `yaml:"name"`
	Sport string `yaml:"sport"`
}

// SeedFile is the top-level seed document
type SeedFile struct {
	Teams []TeamData `yaml:"teams"`
}

// defaultTeams is used when no seed file is present
var defaultTeams = []TeamData{
	{Name: "Tampa Bay Buccaneers", Sport: "NFL"},
	{Name: "New England Patriots", Sport: "NFL"},
	{Name: "Kansas City Chiefs", Sport: "NFL"},
	{Name: "San Francisco 49ers", Sport: "NFL"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel: gormlogger.Warn,
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	teams := loadSeedTeams()

	created := 0
	for _, data := range teams {
		team, err := upsertTeam(db, data)
		if err != nil {
			log.Fatalf("Failed to seed team %q: %v", data.Name, err)
		}
		if team != nil {
			created++
			fmt.Printf("Created team %q (%s) with id %s\n", team.Name, team.Sport, team.ID)
		}
	}

	fmt.Printf("Seeding complete: %d new team(s), %d total in seed set\n", created, len(teams))
}

// loadSeedTeams reads seed/teams.yaml (or the file given as the first
// argument), falling back to the built-in defaults when absent.
func loadSeedTeams() []TeamData {
	path := "seed/teams.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("No seed file at %s, using built-in defaults", path)
		return defaultTeams
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("Failed to parse seed file %s: %v", path, err)
	}
	return seed.Teams
}

// upsertTeam creates the team unless one with the same name exists.
// Returns nil when the team was already present.
func upsertTeam(db *gorm.DB, data TeamData) (*models.Team, error) {
	var existing models.Team
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return nil, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	team := &models.Team{
		Name:  data.Name,
		Sport: data.Sport,
	}
	if err := db.Create(team).Error; err != nil {
		return nil, err
	}
	return team, nil
}

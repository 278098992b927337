package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"wordle-league/internal/database"
	"wordle-league/internal/league"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":           "wordle.db",
		"MIGRATIONS_DIR":    "./migrations",
		"TURSO_PRIMARY_URL": "",
		"TURSO_AUTH_TOKEN":  "",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

type seedPlayer struct {
	name        string
	nickname    string
	identifiers []string
}

type seedLeague struct {
	name      string
	threadKey string
	players   []seedPlayer
}

func main() {
	log.Info("Starting league seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := league.New(db)

	seeds := []seedLeague{
		{
			name:      "Main League",
			threadKey: "chat-main-league",
			players: []seedPlayer{
				{name: "Ada Lovelace", nickname: "Ada", identifiers: []string{"+1 (555) 210-3001"}},
				{name: "Grace Hopper", nickname: "Amazing Grace", identifiers: []string{"555-210-3002"}},
				{name: "Alan Turing", identifiers: []string{"15552103003", "turing@example.com"}},
				{name: "Katherine Johnson", identifiers: []string{"(555) 210-3004"}},
			},
		},
		{
			name:      "Family League",
			threadKey: "chat-family-league",
			players: []seedPlayer{
				{name: "Margaret Hamilton", nickname: "Margo", identifiers: []string{"555-210-3101"}},
				{name: "Edsger Dijkstra", identifiers: []string{"555-210-3102"}},
			},
		},
	}

	for _, seed := range seeds {
		lg := league.League{Name: seed.name, ThreadKey: seed.threadKey}
		if err := store.UpsertLeague(lg); err != nil {
			log.Fatalf("Failed to upsert league %s: %s", seed.name, err)
		}
		stored, err := store.GetLeagueByThreadKey(seed.threadKey)
		if err != nil || stored == nil {
			log.Fatalf("Failed to look up seeded league %s: %s", seed.name, err)
		}

		for _, p := range seed.players {
			player := league.Player{
				ID:          uuid.NewString(),
				LeagueID:    stored.ID,
				Name:        p.name,
				Nickname:    p.nickname,
				Identifiers: p.identifiers,
			}
			if err := store.AddPlayer(player); err != nil {
				log.Fatalf("Failed to add player %s: %s", p.name, err)
			}
		}
		log.Info("Seeded league", "name", seed.name, "players", len(seed.players))
	}

	log.Info("Seeder finished.")
}

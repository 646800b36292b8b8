package main

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sparkmeet/sparkmeet-backend/internal/config"
	"github.com/sparkmeet/sparkmeet-backend/internal/domain"
	"github.com/sparkmeet/sparkmeet-backend/internal/migration"
)

// Seeds a handful of demo members for local development.
// With SEED_SQLITE set a local file database is used instead of MySQL.
func main() {
	config.LoadDotEnv()

	var db *gorm.DB
	var err error
	if path := os.Getenv("SEED_SQLITE"); path != "" {
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	} else {
		cfg, cfgErr := config.Load("configs/config.local.yaml")
		if cfgErr != nil {
			log.Fatalf("Failed to load config: %v", cfgErr)
		}
		db, err = gorm.Open(mysql.Open(cfg.Database.GetDSN()), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Pa$$w0rd"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	members := []domain.Member{
		{Username: "lisa", KnownAs: "Lisa", Gender: "female", City: "Lisbon", Country: "Portugal",
			DateOfBirth: time.Date(1994, 5, 12, 0, 0, 0, 0, time.UTC)},
		{Username: "todd", KnownAs: "Todd", Gender: "male", City: "Porto", Country: "Portugal",
			DateOfBirth: time.Date(1990, 11, 3, 0, 0, 0, 0, time.UTC)},
		{Username: "karen", KnownAs: "Karen", Gender: "female", City: "Madrid", Country: "Spain",
			DateOfBirth: time.Date(1988, 2, 27, 0, 0, 0, 0, time.UTC)},
		{Username: "dave", KnownAs: "Dave", Gender: "male", City: "Seville", Country: "Spain",
			DateOfBirth: time.Date(1996, 8, 19, 0, 0, 0, 0, time.UTC)},
	}

	now := time.Now()
	for i := range members {
		members[i].PasswordHash = string(hash)
		members[i].CreatedAt = now
		members[i].LastActive = now
		if err := db.Where("username = ?", members[i].Username).
			FirstOrCreate(&members[i]).Error; err != nil {
			log.Fatalf("Failed to seed member %s: %v", members[i].Username, err)
		}
	}

	log.Printf("Seeded %d members (password: Pa$$w0rd)", len(members))
}

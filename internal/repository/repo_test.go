package repository

import (
	"testing"
	"time"

	"github.com/sparkmeet/sparkmeet-backend/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Member{}, &domain.Like{}, &domain.Message{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func seedMember(t *testing.T, db *gorm.DB, username string) *domain.Member {
	t.Helper()
	member := &domain.Member{
		Username:    username,
		KnownAs:     username,
		DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		City:        "Lisbon",
		CreatedAt:   time.Now(),
		LastActive:  time.Now(),
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to seed member %s: %v", username, err)
	}
	return member
}

func seedMessage(t *testing.T, db *gorm.DB, sender, recipient *domain.Member, content string, sentAt time.Time) *domain.Message {
	t.Helper()
	msg := &domain.Message{
		SenderID:          sender.ID,
		SenderUsername:    sender.Username,
		RecipientID:       recipient.ID,
		RecipientUsername: recipient.Username,
		Content:           content,
		SentAt:            sentAt,
	}
	if err := db.Create(msg).Error; err != nil {
		t.Fatalf("failed to seed message: %v", err)
	}
	return msg
}

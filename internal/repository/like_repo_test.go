package repository

import (
	"fmt"
	"testing"

	"github.com/sparkmeet/sparkmeet-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLikeRepository_ExistsAndCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)

	alice := seedMember(t, db, "alice")
	bob := seedMember(t, db, "bob")

	exists, err := repo.Exists(alice.ID, bob.ID)
	assert.NoError(t, err)
	assert.False(t, exists)

	err = repo.Create(&domain.Like{SourceUserID: alice.ID, LikedUserID: bob.ID})
	assert.NoError(t, err)

	exists, err = repo.Exists(alice.ID, bob.ID)
	assert.NoError(t, err)
	assert.True(t, exists)

	// Reverse direction is a distinct relation
	exists, err = repo.Exists(bob.ID, alice.ID)
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestLikeRepository_UniqueIndexRejectsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)

	alice := seedMember(t, db, "alice")
	bob := seedMember(t, db, "bob")

	assert.NoError(t, repo.Create(&domain.Like{SourceUserID: alice.ID, LikedUserID: bob.ID}))
	err := repo.Create(&domain.Like{SourceUserID: alice.ID, LikedUserID: bob.ID})
	assert.Error(t, err)

	var count int64
	db.Model(&domain.Like{}).
		Where("source_user_id = ? AND liked_user_id = ?", alice.ID, bob.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLikeRepository_FindSummaries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)

	alice := seedMember(t, db, "alice")
	bob := seedMember(t, db, "bob")
	karen := seedMember(t, db, "karen")

	assert.NoError(t, repo.Create(&domain.Like{SourceUserID: alice.ID, LikedUserID: bob.ID}))
	assert.NoError(t, repo.Create(&domain.Like{SourceUserID: alice.ID, LikedUserID: karen.ID}))
	assert.NoError(t, repo.Create(&domain.Like{SourceUserID: bob.ID, LikedUserID: alice.ID}))

	liked, total, err := repo.FindSummaries(alice.ID, domain.LikePredicateLiked, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, liked, 2)
	for _, s := range liked {
		assert.NotEmpty(t, s.Username)
		assert.Greater(t, s.Age, 0)
	}

	likedBy, total, err := repo.FindSummaries(alice.ID, domain.LikePredicateLikedBy, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, likedBy, 1)
	assert.Equal(t, "bob", likedBy[0].Username)
}

func TestLikeRepository_FindSummariesPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)

	alice := seedMember(t, db, "alice")
	for i := 0; i < 25; i++ {
		target := seedMember(t, db, fmt.Sprintf("member%02d", i))
		assert.NoError(t, repo.Create(&domain.Like{SourceUserID: alice.ID, LikedUserID: target.ID}))
	}

	page3, total, err := repo.FindSummaries(alice.ID, domain.LikePredicateLiked, 3, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, page3, 5)
}

package repository

import (
	"time"

	"github.com/sparkmeet/sparkmeet-backend/internal/domain"
	"gorm.io/gorm"
)

// LikeRepository like relation access interface
type LikeRepository interface {
	Exists(sourceUserID, likedUserID int) (bool, error)
	Create(like *domain.Like) error
	FindSummaries(userID int, predicate string, page, limit int) ([]*domain.MemberSummary, int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Exists checks whether a like relation already exists for the ordered pair
func (r *likeRepository) Exists(sourceUserID, likedUserID int) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Like{}).
		Where("source_user_id = ? AND liked_user_id = ?", sourceUserID, likedUserID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a like relation. The composite unique index on
// (source_user_id, liked_user_id) rejects concurrent duplicates.
func (r *likeRepository) Create(like *domain.Like) error {
	like.CreatedAt = time.Now()
	return r.db.Create(like).Error
}

// FindSummaries returns one page of member summaries related to userID by
// the given predicate direction ("liked": users this member liked,
// "likedBy": users who liked this member).
func (r *likeRepository) FindSummaries(userID int, predicate string, page, limit int) ([]*domain.MemberSummary, int64, error) {
	joinColumn := "l.liked_user_id"
	whereColumn := "l.source_user_id"
	if predicate == domain.LikePredicateLikedBy {
		joinColumn = "l.source_user_id"
		whereColumn = "l.liked_user_id"
	}

	base := r.db.Table("likes AS l").
		Joins("JOIN members AS m ON m.id = "+joinColumn).
		Where(whereColumn+" = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []struct {
		ID          int       `gorm:"column:id"`
		Username    string    `gorm:"column:username"`
		KnownAs     string    `gorm:"column:known_as"`
		DateOfBirth time.Time `gorm:"column:date_of_birth"`
		PhotoURL    string    `gorm:"column:photo_url"`
		City        string    `gorm:"column:city"`
	}

	offset := (page - 1) * limit
	err := r.db.Table("likes AS l").
		Joins("JOIN members AS m ON m.id = "+joinColumn).
		Where(whereColumn+" = ?", userID).
		Select("m.id, m.username, m.known_as, m.date_of_birth, m.photo_url, m.city").
		Order("l.created_at DESC").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]*domain.MemberSummary, len(rows))
	for i, row := range rows {
		member := domain.Member{DateOfBirth: row.DateOfBirth}
		summaries[i] = &domain.MemberSummary{
			ID:       row.ID,
			Username: row.Username,
			KnownAs:  row.KnownAs,
			Age:      member.Age(),
			PhotoURL: row.PhotoURL,
			City:     row.City,
		}
	}

	return summaries, total, nil
}

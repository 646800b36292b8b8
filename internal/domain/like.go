package domain

import "time"

// Like predicate directions for listing
const (
	LikePredicateLiked   = "liked"
	LikePredicateLikedBy = "likedBy"
)

// Like represents a directed like relation between two members
type Like struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	SourceUserID int       `gorm:"uniqueIndex:idx_source_liked;index" json:"sourceUserId"`
	LikedUserID  int       `gorm:"uniqueIndex:idx_source_liked;index" json:"likedUserId"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}

// LikeParams holds query parameters for like listings
type LikeParams struct {
	PageNumber int
	PageSize   int
	Predicate  string
}

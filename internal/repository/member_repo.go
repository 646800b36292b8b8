package repository

import (
	"time"

	"github.com/sparkmeet/sparkmeet-backend/internal/domain"
	"gorm.io/gorm"
)

// MemberRepository member directory access interface
type MemberRepository interface {
	FindByID(id int) (*domain.Member, error)
	FindByUsername(username string) (*domain.Member, error)
	ExistsByUsername(username string) (bool, error)
	Create(member *domain.Member) error
	UpdateLastActive(id int) error
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// FindByID finds member by ID
func (r *memberRepository) FindByID(id int) (*domain.Member, error) {
	var member domain.Member
	err := r.db.Where("id = ?", id).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByUsername finds member by username (stored lowercase)
func (r *memberRepository) FindByUsername(username string) (*domain.Member, error) {
	var member domain.Member
	err := r.db.Where("username = ?", username).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ExistsByUsername checks if username exists
func (r *memberRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Member{}).
		Where("username = ?", username).
		Count(&count).Error
	return count > 0, err
}

// Create creates a new member
func (r *memberRepository) Create(member *domain.Member) error {
	now := time.Now()
	member.CreatedAt = now
	member.LastActive = now
	return r.db.Create(member).Error
}

// UpdateLastActive updates the last activity timestamp
func (r *memberRepository) UpdateLastActive(id int) error {
	return r.db.Model(&domain.Member{}).
		Where("id = ?", id).
		Update("last_active", time.Now()).Error
}

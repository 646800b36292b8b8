package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sparkmeet/sparkmeet-backend/internal/common"
	"github.com/sparkmeet/sparkmeet-backend/internal/domain"
	"github.com/sparkmeet/sparkmeet-backend/internal/repository"
	"gorm.io/gorm"
)

// LikeService business logic for like relations
type LikeService interface {
	AddLike(callerID int, callerUsername, targetUsername string) error
	GetLikes(callerID int, params *domain.LikeParams) ([]*domain.MemberSummary, *common.Pagination, error)
}

type likeService struct {
	likeRepo   repository.LikeRepository
	memberRepo repository.MemberRepository
}

// NewLikeService creates a new LikeService
func NewLikeService(likeRepo repository.LikeRepository, memberRepo repository.MemberRepository) LikeService {
	return &likeService{
		likeRepo:   likeRepo,
		memberRepo: memberRepo,
	}
}

// AddLike records that the caller likes the target member.
// Self-like is rejected by comparing usernames, matching the account rule
// that usernames are stored case-normalized. All checks run before any
// write; the composite unique index backs up the duplicate check under
// concurrent requests.
func (s *likeService) AddLike(callerID int, callerUsername, targetUsername string) error {
	target, err := s.memberRepo.FindByUsername(strings.ToLower(targetUsername))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrMemberNotFound
		}
		return fmt.Errorf("failed to resolve %s: %w", targetUsername, err)
	}

	if strings.EqualFold(callerUsername, targetUsername) {
		return common.ErrSelfLike
	}

	exists, err := s.likeRepo.Exists(callerID, target.ID)
	if err != nil {
		return fmt.Errorf("failed to check existing like: %w", err)
	}
	if exists {
		return common.ErrAlreadyLiked
	}

	like := &domain.Like{
		SourceUserID: callerID,
		LikedUserID:  target.ID,
	}
	if err := s.likeRepo.Create(like); err != nil {
		return common.ErrSaveFailed
	}
	return nil
}

// GetLikes returns one page of member summaries related to the caller by the
// requested predicate direction, with pagination metadata.
func (s *likeService) GetLikes(callerID int, params *domain.LikeParams) ([]*domain.MemberSummary, *common.Pagination, error) {
	page := common.PageParams{PageNumber: params.PageNumber, PageSize: params.PageSize}
	page.Normalize()

	predicate := params.Predicate
	if predicate != domain.LikePredicateLikedBy {
		predicate = domain.LikePredicateLiked
	}

	summaries, total, err := s.likeRepo.FindSummaries(callerID, predicate, page.PageNumber, page.PageSize)
	if err != nil {
		return nil, nil, err
	}

	return summaries, common.NewPagination(page.PageNumber, page.PageSize, total), nil
}

package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sparkmeet/sparkmeet-backend/internal/common"
	"github.com/sparkmeet/sparkmeet-backend/internal/domain"
	"github.com/sparkmeet/sparkmeet-backend/internal/repository"
	"github.com/sparkmeet/sparkmeet-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService account registration and login
type AuthService interface {
	Register(req *domain.RegisterRequest) (*domain.AuthResponse, error)
	Login(req *domain.LoginRequest) (*domain.AuthResponse, error)
}

type authService struct {
	memberRepo repository.MemberRepository
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(memberRepo repository.MemberRepository, jwtManager *jwt.Manager) AuthService {
	return &authService{
		memberRepo: memberRepo,
		jwtManager: jwtManager,
	}
}

// Register creates a member account. Usernames are stored lowercase so the
// username comparisons in the like and message rules behave consistently.
func (s *authService) Register(req *domain.RegisterRequest) (*domain.AuthResponse, error) {
	username := strings.ToLower(req.Username)

	exists, err := s.memberRepo.ExistsByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, common.ErrUsernameTaken
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, common.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	member := &domain.Member{
		Username:     username,
		PasswordHash: string(hash),
		KnownAs:      req.KnownAs,
		DateOfBirth:  dob,
		Gender:       req.Gender,
		City:         req.City,
		Country:      req.Country,
	}
	if err := s.memberRepo.Create(member); err != nil {
		return nil, common.ErrSaveFailed
	}

	token, err := s.jwtManager.GenerateToken(member.ID, member.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &domain.AuthResponse{
		Username: member.Username,
		KnownAs:  member.KnownAs,
		Token:    token,
	}, nil
}

// Login verifies credentials and issues a token
func (s *authService) Login(req *domain.LoginRequest) (*domain.AuthResponse, error) {
	member, err := s.memberRepo.FindByUsername(strings.ToLower(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load member: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(req.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if err := s.memberRepo.UpdateLastActive(member.ID); err != nil {
		return nil, fmt.Errorf("failed to update last active: %w", err)
	}

	token, err := s.jwtManager.GenerateToken(member.ID, member.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &domain.AuthResponse{
		Username: member.Username,
		KnownAs:  member.KnownAs,
		Token:    token,
		PhotoURL: member.PhotoURL,
	}, nil
}

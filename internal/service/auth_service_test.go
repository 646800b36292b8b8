package service

import (
	"testing"

	"github.com/sparkmeet/sparkmeet-backend/internal/common"
	"github.com/sparkmeet/sparkmeet-backend/internal/domain"
	"github.com/sparkmeet/sparkmeet-backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthTestService(memberRepo *MockMemberRepository) AuthService {
	return NewAuthService(memberRepo, jwt.NewManager("test-secret", 900, 86400))
}

func validRegisterRequest() *domain.RegisterRequest {
	return &domain.RegisterRequest{
		Username:    "Alice",
		Password:    "Pa$$w0rdPa$$",
		KnownAs:     "Alice",
		DateOfBirth: "1992-03-14",
		Gender:      "female",
		City:        "Lisbon",
		Country:     "Portugal",
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	svc := newAuthTestService(memberRepo)

	memberRepo.On("ExistsByUsername", "alice").Return(true, nil)

	_, err := svc.Register(validRegisterRequest())
	assert.ErrorIs(t, err, common.ErrUsernameTaken)
	memberRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegister_BadDateOfBirth(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	svc := newAuthTestService(memberRepo)

	memberRepo.On("ExistsByUsername", "alice").Return(false, nil)

	req := validRegisterRequest()
	req.DateOfBirth = "14/03/1992"
	_, err := svc.Register(req)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestRegister_StoresLowercaseUsername(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	svc := newAuthTestService(memberRepo)

	memberRepo.On("ExistsByUsername", "alice").Return(false, nil)
	memberRepo.On("Create", mock.MatchedBy(func(m *domain.Member) bool {
		return m.Username == "alice" && m.PasswordHash != "" && m.PasswordHash != "Pa$$w0rdPa$$"
	})).Return(nil)

	result, err := svc.Register(validRegisterRequest())
	assert.NoError(t, err)
	assert.Equal(t, "alice", result.Username)
	assert.NotEmpty(t, result.Token)
	memberRepo.AssertExpectations(t)
}

func TestLogin_UnknownUser(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	svc := newAuthTestService(memberRepo)

	memberRepo.On("FindByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(&domain.LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	svc := newAuthTestService(memberRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	member := testMember(1, "alice")
	member.PasswordHash = string(hash)
	memberRepo.On("FindByUsername", "alice").Return(member, nil)

	_, err := svc.Login(&domain.LoginRequest{Username: "alice", Password: "wrong-password"})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	svc := newAuthTestService(memberRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	member := testMember(1, "alice")
	member.PasswordHash = string(hash)
	memberRepo.On("FindByUsername", "alice").Return(member, nil)
	memberRepo.On("UpdateLastActive", 1).Return(nil)

	result, err := svc.Login(&domain.LoginRequest{Username: "Alice", Password: "right-password"})
	assert.NoError(t, err)
	assert.Equal(t, "alice", result.Username)
	assert.NotEmpty(t, result.Token)
}

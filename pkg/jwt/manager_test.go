package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	m := NewManager("test-secret", 900, 86400)

	token, err := m.GenerateToken(42, "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestVerifyToken_WrongKey(t *testing.T) {
	m := NewManager("test-secret", 900, 86400)
	other := NewManager("other-secret", 900, 86400)

	token, err := m.GenerateToken(1, "alice")
	assert.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Expired(t *testing.T) {
	m := NewManager("test-secret", -1, 86400)

	token, err := m.GenerateToken(1, "alice")
	assert.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = m.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyToken_Garbage(t *testing.T) {
	m := NewManager("test-secret", 900, 86400)

	_, err := m.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

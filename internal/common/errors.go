package common

import "errors"

// Business logic errors
var (
	// Directory errors
	ErrMemberNotFound = errors.New("member not found")

	// Like errors
	ErrSelfLike     = errors.New("you can not like yourself")
	ErrAlreadyLiked = errors.New("you already liked this user")

	// Message errors
	ErrMessageNotFound = errors.New("message not found")
	ErrSelfMessage     = errors.New("you can not send a message to yourself")
	ErrNotParticipant  = errors.New("not a participant of this message")
	ErrEmptyContent    = errors.New("message content must not be empty")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username is already taken")

	// Persistence errors
	ErrSaveFailed = errors.New("failed to save changes")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)

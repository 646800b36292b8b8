package domain

import "time"

// Member represents a registered user profile
type Member struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"size:30;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	KnownAs      string    `gorm:"size:50" json:"knownAs"`
	DateOfBirth  time.Time `json:"-"`
	Gender       string    `gorm:"size:10" json:"gender"`
	City         string    `gorm:"size:50" json:"city"`
	Country      string    `gorm:"size:50" json:"country"`
	Introduction string    `gorm:"type:text" json:"introduction,omitempty"`
	PhotoURL     string    `gorm:"size:255" json:"photoUrl,omitempty"`
	CreatedAt    time.Time `json:"created"`
	LastActive   time.Time `json:"lastActive"`
}

func (Member) TableName() string {
	return "members"
}

// Age returns the member's age in full years
func (m *Member) Age() int {
	now := time.Now()
	age := now.Year() - m.DateOfBirth.Year()
	if now.YearDay() < m.DateOfBirth.YearDay() {
		age--
	}
	return age
}

// MemberSummary is the compact member view returned by like listings
type MemberSummary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	KnownAs  string `json:"knownAs"`
	Age      int    `json:"age"`
	PhotoURL string `json:"photoUrl,omitempty"`
	City     string `json:"city"`
}

// ToSummary converts Member to MemberSummary
func (m *Member) ToSummary() *MemberSummary {
	return &MemberSummary{
		ID:       m.ID,
		Username: m.Username,
		KnownAs:  m.KnownAs,
		Age:      m.Age(),
		PhotoURL: m.PhotoURL,
		City:     m.City,
	}
}

// RegisterRequest represents an account registration request
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	KnownAs     string `json:"knownAs" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"` // YYYY-MM-DD
	Gender      string `json:"gender" binding:"required"`
	City        string `json:"city" binding:"required"`
	Country     string `json:"country" binding:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents a successful login/registration
type AuthResponse struct {
	Username string `json:"username"`
	KnownAs  string `json:"knownAs"`
	Token    string `json:"token"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

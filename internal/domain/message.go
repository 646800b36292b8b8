package domain

import "time"

// Message containers for inbox listings
const (
	ContainerInbox  = "Inbox"
	ContainerOutbox = "Outbox"
	ContainerUnread = "Unread"
)

// Message represents a direct message with per-side soft-delete flags.
// A message stays readable for one party after the other deletes it;
// once both flags are set the row is removed for good.
type Message struct {
	ID                int        `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID          int        `gorm:"index" json:"senderId"`
	SenderUsername    string     `gorm:"size:30;index" json:"senderUsername"`
	RecipientID       int        `gorm:"index" json:"recipientId"`
	RecipientUsername string     `gorm:"size:30;index" json:"recipientUsername"`
	Content           string     `gorm:"type:text" json:"content"`
	SentAt            time.Time  `json:"sentAt"`
	ReadAt            *time.Time `json:"readAt,omitempty"`
	SenderDeleted     bool       `json:"-"`
	RecipientDeleted  bool       `json:"-"`
}

func (Message) TableName() string {
	return "messages"
}

// SendMessageRequest represents a send message request
type SendMessageRequest struct {
	ReceiverUsername string `json:"receiverUsername" binding:"required"`
	Content          string `json:"content" binding:"required"`
}

// MessageResponse represents a message in API responses
type MessageResponse struct {
	ID                int    `json:"id"`
	SenderUsername    string `json:"senderUsername"`
	RecipientUsername string `json:"recipientUsername"`
	Content           string `json:"content"`
	SentAt            string `json:"sentAt"`
	ReadAt            string `json:"readAt,omitempty"`
	IsRead            bool   `json:"isRead"`
}

// ToResponse converts Message to MessageResponse
func (m *Message) ToResponse() *MessageResponse {
	resp := &MessageResponse{
		ID:                m.ID,
		SenderUsername:    m.SenderUsername,
		RecipientUsername: m.RecipientUsername,
		Content:           m.Content,
		SentAt:            m.SentAt.Format(time.RFC3339),
		IsRead:            m.ReadAt != nil,
	}
	if m.ReadAt != nil {
		resp.ReadAt = m.ReadAt.Format(time.RFC3339)
	}
	return resp
}

// MessageParams holds query parameters for message listings
type MessageParams struct {
	PageNumber int
	PageSize   int
	Container  string
}

package repository

import (
	"time"

	"github.com/sparkmeet/sparkmeet-backend/internal/domain"
	"gorm.io/gorm"
)

// MessageRepository message data access interface
type MessageRepository interface {
	Create(msg *domain.Message) error
	FindByID(id int) (*domain.Message, error)
	FindForUser(username, container string, page, limit int) ([]*domain.Message, int64, error)
	FindThread(currentUsername, otherUsername string) ([]*domain.Message, error)
	MarkThreadRead(recipientUsername, senderUsername string) error
	UpdateDeleteFlags(msg *domain.Message) error
	Purge(id int) error
	CountUnread(username string) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts a new message
func (r *messageRepository) Create(msg *domain.Message) error {
	return r.db.Create(msg).Error
}

// FindByID finds a message by ID
func (r *messageRepository) FindByID(id int) (*domain.Message, error) {
	var msg domain.Message
	err := r.db.Where("id = ?", id).First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// containerScope builds the WHERE clause for one listing container,
// excluding messages the caller has soft-deleted.
func containerScope(db *gorm.DB, username, container string) *gorm.DB {
	switch container {
	case domain.ContainerInbox:
		return db.Where("recipient_username = ? AND recipient_deleted = ?", username, false)
	case domain.ContainerOutbox:
		return db.Where("sender_username = ? AND sender_deleted = ?", username, false)
	default: // Unread
		return db.Where("recipient_username = ? AND recipient_deleted = ? AND read_at IS NULL", username, false)
	}
}

// FindForUser returns one page of a user's messages for the given container,
// newest first.
func (r *messageRepository) FindForUser(username, container string, page, limit int) ([]*domain.Message, int64, error) {
	var total int64
	if err := containerScope(r.db.Model(&domain.Message{}), username, container).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []*domain.Message
	offset := (page - 1) * limit
	err := containerScope(r.db, username, container).
		Order("sent_at DESC").
		Offset(offset).Limit(limit).
		Find(&messages).Error
	return messages, total, err
}

// FindThread returns all messages between two usernames in either direction,
// oldest first, excluding messages the current user has soft-deleted.
func (r *messageRepository) FindThread(currentUsername, otherUsername string) ([]*domain.Message, error) {
	var messages []*domain.Message
	err := r.db.
		Where("recipient_username = ? AND sender_username = ? AND recipient_deleted = ?",
			currentUsername, otherUsername, false).
		Or("recipient_username = ? AND sender_username = ? AND sender_deleted = ?",
			otherUsername, currentUsername, false).
		Order("sent_at ASC").
		Find(&messages).Error
	return messages, err
}

// MarkThreadRead marks all unread messages from sender to recipient as read
func (r *messageRepository) MarkThreadRead(recipientUsername, senderUsername string) error {
	return r.db.Model(&domain.Message{}).
		Where("recipient_username = ? AND sender_username = ? AND read_at IS NULL",
			recipientUsername, senderUsername).
		Update("read_at", time.Now()).Error
}

// UpdateDeleteFlags persists the soft-delete flags of a message
func (r *messageRepository) UpdateDeleteFlags(msg *domain.Message) error {
	result := r.db.Model(&domain.Message{}).
		Where("id = ?", msg.ID).
		Updates(map[string]interface{}{
			"sender_deleted":    msg.SenderDeleted,
			"recipient_deleted": msg.RecipientDeleted,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Purge permanently removes a message
func (r *messageRepository) Purge(id int) error {
	result := r.db.Where("id = ?", id).Delete(&domain.Message{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountUnread returns the number of unread, undeleted messages for a recipient
func (r *messageRepository) CountUnread(username string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Message{}).
		Where("recipient_username = ? AND recipient_deleted = ? AND read_at IS NULL", username, false).
		Count(&count).Error
	return count, err
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sparkmeet/sparkmeet-backend/internal/cache"
	"github.com/sparkmeet/sparkmeet-backend/internal/common"
	"github.com/sparkmeet/sparkmeet-backend/internal/domain"
	"github.com/sparkmeet/sparkmeet-backend/internal/repository"
	"gorm.io/gorm"
)

// MessageService business logic for direct messages
type MessageService interface {
	SendMessage(callerUsername string, req *domain.SendMessageRequest) (*domain.MessageResponse, error)
	GetMessagesForUser(callerUsername string, params *domain.MessageParams) ([]*domain.MessageResponse, *common.Pagination, error)
	GetMessageThread(callerUsername, otherUsername string) ([]*domain.MessageResponse, error)
	DeleteMessage(callerUsername string, id int) error
	GetUnreadCount(ctx context.Context, callerUsername string) (int64, error)
}

type messageService struct {
	repo       repository.MessageRepository
	memberRepo repository.MemberRepository
	unread     cache.UnreadCounter
}

// NewMessageService creates a new MessageService
func NewMessageService(repo repository.MessageRepository, memberRepo repository.MemberRepository, unread cache.UnreadCounter) MessageService {
	return &messageService{
		repo:       repo,
		memberRepo: memberRepo,
		unread:     unread,
	}
}

// SendMessage creates a message from the caller to the named recipient.
// Self-messaging is rejected here at the service layer by username
// comparison; the data layer does not enforce it.
func (s *messageService) SendMessage(callerUsername string, req *domain.SendMessageRequest) (*domain.MessageResponse, error) {
	if strings.EqualFold(callerUsername, req.ReceiverUsername) {
		return nil, common.ErrSelfMessage
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, common.ErrEmptyContent
	}

	sender, err := s.memberRepo.FindByUsername(callerUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve sender: %w", err)
	}
	receiver, err := s.memberRepo.FindByUsername(strings.ToLower(req.ReceiverUsername))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to resolve receiver: %w", err)
	}

	msg := &domain.Message{
		SenderID:          sender.ID,
		SenderUsername:    sender.Username,
		RecipientID:       receiver.ID,
		RecipientUsername: receiver.Username,
		Content:           req.Content,
		SentAt:            time.Now(),
	}
	if err := s.repo.Create(msg); err != nil {
		return nil, common.ErrSaveFailed
	}

	s.unread.Invalidate(context.Background(), receiver.Username)

	return msg.ToResponse(), nil
}

// GetMessagesForUser returns one page of the caller's messages for the
// requested container, newest first.
func (s *messageService) GetMessagesForUser(callerUsername string, params *domain.MessageParams) ([]*domain.MessageResponse, *common.Pagination, error) {
	page := common.PageParams{PageNumber: params.PageNumber, PageSize: params.PageSize}
	page.Normalize()

	container := params.Container
	if container != domain.ContainerInbox && container != domain.ContainerOutbox {
		container = domain.ContainerUnread
	}

	messages, total, err := s.repo.FindForUser(callerUsername, container, page.PageNumber, page.PageSize)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*domain.MessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = m.ToResponse()
	}

	return responses, common.NewPagination(page.PageNumber, page.PageSize, total), nil
}

// GetMessageThread returns the full conversation between the caller and the
// other username, oldest first, hiding messages the caller deleted. Unread
// messages addressed to the caller are marked read at retrieval.
func (s *messageService) GetMessageThread(callerUsername, otherUsername string) ([]*domain.MessageResponse, error) {
	other := strings.ToLower(otherUsername)
	messages, err := s.repo.FindThread(callerUsername, other)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	markRead := false
	for _, m := range messages {
		if m.RecipientUsername == callerUsername && m.ReadAt == nil {
			m.ReadAt = &now
			markRead = true
		}
	}
	if markRead {
		if err := s.repo.MarkThreadRead(callerUsername, other); err != nil {
			return nil, common.ErrSaveFailed
		}
		s.unread.Invalidate(context.Background(), callerUsername)
	}

	responses := make([]*domain.MessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = m.ToResponse()
	}
	return responses, nil
}

// DeleteMessage flags the caller's side of a message as deleted and purges
// the row once both sides have deleted it. Flags only ever move from false
// to true; after the purge the id resolves to nothing and a repeat delete
// reports not found.
func (s *messageService) DeleteMessage(callerUsername string, id int) error {
	msg, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrMessageNotFound
		}
		return fmt.Errorf("failed to load message %d: %w", id, err)
	}

	if msg.SenderUsername != callerUsername && msg.RecipientUsername != callerUsername {
		return common.ErrNotParticipant
	}

	if msg.SenderUsername == callerUsername {
		msg.SenderDeleted = true
	}
	if msg.RecipientUsername == callerUsername {
		msg.RecipientDeleted = true
	}

	if msg.SenderDeleted && msg.RecipientDeleted {
		if err := s.repo.Purge(msg.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrMessageNotFound
			}
			return common.ErrSaveFailed
		}
	} else {
		if err := s.repo.UpdateDeleteFlags(msg); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrMessageNotFound
			}
			return common.ErrSaveFailed
		}
	}

	if msg.RecipientDeleted {
		s.unread.Invalidate(context.Background(), msg.RecipientUsername)
	}
	return nil
}

// GetUnreadCount returns the caller's unread message count, served from the
// Redis counter when warm.
func (s *messageService) GetUnreadCount(ctx context.Context, callerUsername string) (int64, error) {
	if count, ok := s.unread.Get(ctx, callerUsername); ok {
		return count, nil
	}
	count, err := s.repo.CountUnread(callerUsername)
	if err != nil {
		return 0, err
	}
	s.unread.Set(ctx, callerUsername, count)
	return count, nil
}

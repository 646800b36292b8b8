package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sparkmeet/sparkmeet-backend/internal/common"
	"github.com/sparkmeet/sparkmeet-backend/internal/domain"
	"github.com/sparkmeet/sparkmeet-backend/internal/middleware"
	"github.com/sparkmeet/sparkmeet-backend/internal/service"
)

// MessageHandler handles direct message HTTP requests
type MessageHandler struct {
	service service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(service service.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// SendMessage handles POST /api/message
func (h *MessageHandler) SendMessage(c *gin.Context) {
	callerUsername := middleware.GetUsername(c)

	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.SendMessage(callerUsername, &req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrMemberNotFound):
			common.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, common.ErrSelfMessage), errors.Is(err, common.ErrEmptyContent),
			errors.Is(err, common.ErrSaveFailed):
			common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to send message")
		}
		return
	}

	common.SuccessResponse(c, result)
}

// GetMessagesForUser handles GET /api/message
func (h *MessageHandler) GetMessagesForUser(c *gin.Context) {
	callerUsername := middleware.GetUsername(c)
	page := common.ParsePageParams(c)

	params := &domain.MessageParams{
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		Container:  c.Query("container"),
	}

	messages, pagination, err := h.service.GetMessagesForUser(callerUsername, params)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load messages")
		return
	}

	common.AddPaginationHeader(c, pagination)
	common.SuccessResponse(c, messages)
}

// GetMessageThread handles GET /api/message/thread/:username
func (h *MessageHandler) GetMessageThread(c *gin.Context) {
	callerUsername := middleware.GetUsername(c)
	otherUsername := c.Param("username")

	messages, err := h.service.GetMessageThread(callerUsername, otherUsername)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load message thread")
		return
	}

	common.SuccessResponse(c, messages)
}

// DeleteMessage handles DELETE /api/message?id=
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	callerUsername := middleware.GetUsername(c)

	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid message id")
		return
	}

	if err := h.service.DeleteMessage(callerUsername, id); err != nil {
		switch {
		case errors.Is(err, common.ErrMessageNotFound):
			common.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, common.ErrNotParticipant):
			common.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		case errors.Is(err, common.ErrSaveFailed):
			common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete message")
		}
		return
	}

	common.SuccessResponse(c, gin.H{"message": "message deleted"})
}

// GetUnreadCount handles GET /api/message/unread-count
func (h *MessageHandler) GetUnreadCount(c *gin.Context) {
	callerUsername := middleware.GetUsername(c)

	count, err := h.service.GetUnreadCount(c.Request.Context(), callerUsername)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load unread count")
		return
	}

	common.SuccessResponse(c, gin.H{"unreadCount": count})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sparkmeet/sparkmeet-backend/internal/common"
	"github.com/sparkmeet/sparkmeet-backend/internal/domain"
	"github.com/sparkmeet/sparkmeet-backend/internal/middleware"
	"github.com/sparkmeet/sparkmeet-backend/internal/service"
)

// LikeHandler handles like relation HTTP requests
type LikeHandler struct {
	service service.LikeService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(service service.LikeService) *LikeHandler {
	return &LikeHandler{service: service}
}

// AddLike handles POST /api/likes/:username
func (h *LikeHandler) AddLike(c *gin.Context) {
	callerID := middleware.GetUserID(c)
	callerUsername := middleware.GetUsername(c)
	targetUsername := c.Param("username")

	err := h.service.AddLike(callerID, callerUsername, targetUsername)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrMemberNotFound):
			common.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, common.ErrSelfLike), errors.Is(err, common.ErrAlreadyLiked),
			errors.Is(err, common.ErrSaveFailed):
			common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to like "+targetUsername)
		}
		return
	}

	common.SuccessResponse(c, gin.H{"message": "liked " + targetUsername})
}

// GetLikes handles GET /api/likes
func (h *LikeHandler) GetLikes(c *gin.Context) {
	callerID := middleware.GetUserID(c)
	page := common.ParsePageParams(c)

	params := &domain.LikeParams{
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		Predicate:  c.Query("predicate"),
	}

	summaries, pagination, err := h.service.GetLikes(callerID, params)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load likes")
		return
	}

	common.AddPaginationHeader(c, pagination)
	common.SuccessResponse(c, summaries)
}

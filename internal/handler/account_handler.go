package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sparkmeet/sparkmeet-backend/internal/common"
	"github.com/sparkmeet/sparkmeet-backend/internal/domain"
	"github.com/sparkmeet/sparkmeet-backend/internal/service"
)

// AccountHandler handles registration and login HTTP requests
type AccountHandler struct {
	service service.AuthService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(service service.AuthService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Register handles POST /api/account/register
func (h *AccountHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUsernameTaken), errors.Is(err, common.ErrInvalidInput):
			common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	common.SuccessResponse(c, result)
}

// Login handles POST /api/account/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Login(&req)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			common.ErrorResponse(c, http.StatusUnauthorized, err.Error())
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Login failed")
		return
	}

	common.SuccessResponse(c, result)
}

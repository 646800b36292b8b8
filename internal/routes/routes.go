package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sparkmeet/sparkmeet-backend/internal/handler"
	"github.com/sparkmeet/sparkmeet-backend/internal/middleware"
	"github.com/sparkmeet/sparkmeet-backend/pkg/jwt"
)

// SetupAccount configures registration and login routes
func SetupAccount(router *gin.Engine, h *handler.AccountHandler) {
	account := router.Group("/api/account")
	account.POST("/register", h.Register)
	account.POST("/login", h.Login)
}

// SetupLikes configures like relation routes
func SetupLikes(router *gin.Engine, h *handler.LikeHandler, jwtManager *jwt.Manager) {
	likes := router.Group("/api/likes")
	likes.Use(middleware.JWTAuth(jwtManager))
	likes.POST("/:username", h.AddLike)
	likes.GET("", h.GetLikes)
}

// SetupMessages configures direct message routes
func SetupMessages(router *gin.Engine, h *handler.MessageHandler, jwtManager *jwt.Manager) {
	messages := router.Group("/api/message")
	messages.Use(middleware.JWTAuth(jwtManager))
	messages.POST("", h.SendMessage)
	messages.GET("", h.GetMessagesForUser)
	messages.GET("/thread/:username", h.GetMessageThread)
	messages.GET("/unread-count", h.GetUnreadCount)
	messages.DELETE("", h.DeleteMessage)
}

package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods under /api/chat.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("", h.Chat)
	rg.POST("/", h.Chat)
	rg.GET("/sessions", h.ListSessions)
	rg.DELETE("/session/:user_id", h.ClearSession)
	rg.GET("/history/:user_id", h.History)
	rg.GET("/lead/:user_id", h.Lead)
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "lead-intake-agent/internal/chat/delivery/http"
)

// setupChatDomain wires the chat handler and registers /api/chat routes.
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api.Group("/chat"), h)

	srv.l.Infof(ctx, "Chat domain registered at /api/chat")
}

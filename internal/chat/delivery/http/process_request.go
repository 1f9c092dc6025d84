package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"lead-intake-agent/internal/chat"
)

// processChatReq binds the chat request body. A missing message is valid and
// handled by the use case.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", chat.ErrInvalidRequest, err)
	}
	return req, nil
}

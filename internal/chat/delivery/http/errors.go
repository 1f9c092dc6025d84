package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lead-intake-agent/internal/chat"
	"lead-intake-agent/pkg/response"
)

// writeError translates use-case errors into HTTP responses.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, chat.ErrInvalidRequest):
		response.Detail(c, http.StatusBadRequest, err.Error())
	default:
		response.InternalError(c, err)
	}
}

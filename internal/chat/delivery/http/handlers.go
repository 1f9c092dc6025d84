package http

import (
	"github.com/gin-gonic/gin"

	"lead-intake-agent/pkg/response"
)

// Chat godoc
// @Summary     Send an applicant message
// @Description Extracts lead fields from the message, then either asks for the next missing field or submits the completed lead.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and optional user_id"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.ErrorResp "Bad Request"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /api/chat/ [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// ListSessions godoc
// @Summary     List active sessions
// @Tags        Chat
// @Produce     json
// @Success     200 {object} sessionsResp
// @Router      /api/chat/sessions [GET]
func (h *handler) ListSessions(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListSessions(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListSessions: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newSessionsResp(output))
}

// ClearSession godoc
// @Summary     Clear a session
// @Description Removes the conversation and collected lead for user_id. Unknown ids succeed.
// @Tags        Chat
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} messageResp
// @Router      /api/chat/session/{user_id} [DELETE]
func (h *handler) ClearSession(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ClearSession(ctx, c.Param("user_id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ClearSession: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, messageResp{Message: output.Message})
}

// History godoc
// @Summary     Conversation history
// @Tags        Chat
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/chat/history/{user_id} [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.History(ctx, c.Param("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// Lead godoc
// @Summary     Collected lead fields
// @Description Read-only view of the fields collected so far. Never creates a session.
// @Tags        Chat
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} leadResp
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/chat/lead/{user_id} [GET]
func (h *handler) Lead(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Lead(ctx, c.Param("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newLeadResp(output))
}

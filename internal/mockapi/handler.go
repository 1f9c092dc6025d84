package mockapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgLog "lead-intake-agent/pkg/log"
	"lead-intake-agent/pkg/response"
)

// Handler serves the mock lead-management API.
type Handler struct {
	l     pkgLog.Logger
	store *Store
}

func NewHandler(l pkgLog.Logger, store *Store) *Handler {
	return &Handler{l: l, store: store}
}

// RegisterRoutes mounts every mock endpoint on r.
func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.GET("/", h.Root)
	r.POST("/admin/message", h.CreateMessage)
	r.POST("/api/admin/lead", h.CreateLead)
	r.GET("/admin/leads", h.ListLeads)
}

func (h *Handler) Root(c *gin.Context) {
	response.Message(c, RootMessage)
}

// CreateMessage accepts the record the chat service submits and answers
// 201 with a public-id header.
func (h *Handler) CreateMessage(c *gin.Context) {
	h.create(c, messageFields, true)
}

// CreateLead is the older name/email/phone/leadSource contract.
func (h *Handler) CreateLead(c *gin.Context) {
	h.create(c, legacyFields, false)
}

func (h *Handler) ListLeads(c *gin.Context) {
	leads := h.store.All()
	response.OK(c, leadsResp{Leads: leads, Count: len(leads)})
}

func (h *Handler) create(c *gin.Context, required []string, withHeader bool) {
	ctx := c.Request.Context()

	var rec map[string]any
	if err := c.ShouldBindJSON(&rec); err != nil {
		response.Error(c, fmt.Errorf("invalid JSON body: %w", err))
		return
	}

	if missing := missingFields(rec, required); len(missing) > 0 {
		response.Detail(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	id := h.store.Create(rec)
	h.logCreated(ctx, id, rec)

	if withHeader {
		c.Header(PublicIDHeader, id)
		response.Created(c, createdResp{LeadID: id, Message: CreatedMessage})
		return
	}
	response.OK(c, createdResp{LeadID: id, Message: CreatedMessage})
}

func (h *Handler) logCreated(ctx context.Context, id string, rec map[string]any) {
	h.l.Infof(ctx, "internal.mockapi.create: created lead %s: %v", id, rec)
}

// missingFields lists required keys that are absent, non-string or blank.
func missingFields(rec map[string]any, required []string) []string {
	var missing []string
	for _, key := range required {
		s, ok := rec[key].(string)
		if !ok || strings.TrimSpace(s) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgLog "lead-intake-agent/pkg/log"
)

func newRouter() (*gin.Engine, *Store) {
	gin.SetMode(gin.TestMode)
	store := NewStore()
	r := gin.New()
	RegisterRoutes(r, NewHandler(pkgLog.NewNop(), store))
	return r, store
}

func post(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRoot(t *testing.T) {
	r, _ := newRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Mock Lead API is running"}`, rec.Body.String())
}

func TestCreateMessage(t *testing.T) {
	full := map[string]any{
		"firstName":  "Jane",
		"lastName":   "Doe",
		"email":      "jane@x.io",
		"phone":      "555-123-4567",
		"leadSource": "a friend",
	}

	t.Run("created with public id", func(t *testing.T) {
		r, store := newRouter()
		rec := post(r, "/admin/message", full)

		require.Equal(t, http.StatusCreated, rec.Code)
		id := rec.Header().Get(PublicIDHeader)
		require.NotEmpty(t, id)

		var body createdResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, id, body.LeadID)
		assert.Equal(t, CreatedMessage, body.Message)
		assert.Contains(t, store.All(), id)
	})

	t.Run("missing fields", func(t *testing.T) {
		r, store := newRouter()
		rec := post(r, "/admin/message", map[string]any{"firstName": "Jane", "email": "jane@x.io", "phone": " "})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"detail":"Missing required fields: lastName, phone, leadSource"}`, rec.Body.String())
		assert.Empty(t, store.All())
	})

	t.Run("malformed body", func(t *testing.T) {
		r, _ := newRouter()
		req := httptest.NewRequest(http.MethodPost, "/admin/message", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateLead_Legacy(t *testing.T) {
	r, _ := newRouter()

	rec := post(r, "/api/admin/lead", map[string]any{
		"name": "Jane Doe", "email": "jane@x.io", "phone": "555", "leadSource": "web",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(PublicIDHeader))

	rec = post(r, "/api/admin/lead", map[string]any{"name": "Jane Doe"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email, phone, leadSource")
}

func TestListLeads(t *testing.T) {
	r, store := newRouter()
	store.Create(map[string]any{"firstName": "A"})
	store.Create(map[string]any{"firstName": "B"})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/leads", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body leadsResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	assert.Len(t, body.Leads, 2)
}

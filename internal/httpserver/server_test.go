package httpserver

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lead-intake-agent/internal/chat"
	"lead-intake-agent/internal/observability/metrics"
	pkgLog "lead-intake-agent/pkg/log"
)

type stubUseCase struct{}

func (stubUseCase) Chat(ctx context.Context, in chat.ChatInput) (chat.ChatOutput, error) {
	return chat.ChatOutput{Response: "echo: " + in.Message, UserID: "u-1"}, nil
}

func (stubUseCase) ListSessions(ctx context.Context) (chat.SessionsOutput, error) {
	return chat.SessionsOutput{ActiveSessions: []string{"u-1"}, Count: 1}, nil
}

func (stubUseCase) ClearSession(ctx context.Context, userID string) (chat.ClearOutput, error) {
	return chat.ClearOutput{Message: "cleared"}, nil
}

func (stubUseCase) History(ctx context.Context, userID string) (chat.HistoryOutput, error) {
	return chat.HistoryOutput{}, chat.ErrSessionNotFound
}

func (stubUseCase) Lead(ctx context.Context, userID string) (chat.LeadOutput, error) {
	return chat.LeadOutput{}, chat.ErrSessionNotFound
}

func newTestServer(t *testing.T) (*HTTPServer, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	srv, err := New(pkgLog.NewNop(), Config{
		Host:        "127.0.0.1",
		Port:        8000,
		Mode:        gin.TestMode,
		Environment: "test",
		Gatherer:    reg,
		ChatUseCase: stubUseCase{},
	})
	require.NoError(t, err)
	return srv, reg
}

func serve(srv *HTTPServer, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNew_Validate(t *testing.T) {
	l := pkgLog.NewNop()
	tests := []struct {
		name string
		l    pkgLog.Logger
		cfg  Config
	}{
		{"missing logger", nil, Config{Mode: gin.TestMode, Port: 8000, ChatUseCase: stubUseCase{}}},
		{"missing mode", l, Config{Port: 8000, ChatUseCase: stubUseCase{}}},
		{"missing port", l, Config{Mode: gin.TestMode, ChatUseCase: stubUseCase{}}},
		{"missing use case", l, Config{Mode: gin.TestMode, Port: 8000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.l, tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestRoot_Welcome(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, WelcomeMessage, body["message"])
}

func TestHealthRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	for path, status := range map[string]string{"/health": "healthy", "/ready": "ready", "/live": "alive"} {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, status, body["status"])
		assert.Equal(t, ServiceName, body["service"])
		assert.Equal(t, "test", body["environment"])
	}
}

func TestMetricsRoute(t *testing.T) {
	srv, reg := newTestServer(t)
	m := metrics.NewLeadMetrics(reg)
	m.ObserveTurn("asked")

	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lead_intake_chat_turns_total")
}

func TestChatRoutesMounted(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat/", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := serve(srv, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "echo: hi")

	rec = serve(srv, httptest.NewRequest(http.MethodGet, "/api/chat/history/nobody", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORS(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/chat/", nil)
		req.Header.Set("Origin", "http://frontend.local")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")

		rec := serve(srv, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("actual request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/chat/sessions", nil)
		req.Header.Set("Origin", "http://frontend.local")

		rec := serve(srv, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRun_StopsOnCancel(t *testing.T) {
	reg := prometheus.NewRegistry()
	srv, err := New(pkgLog.NewNop(), Config{
		Host:        "127.0.0.1",
		Port:        freePort(t),
		Mode:        gin.TestMode,
		Gatherer:    reg,
		ChatUseCase: stubUseCase{},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, srv.Run(ctx))
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

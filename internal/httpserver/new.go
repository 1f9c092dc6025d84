package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"lead-intake-agent/internal/chat"
	"lead-intake-agent/pkg/log"
)

const (
	defaultShutdownTimeout = 30 * time.Second
	// Covers an extraction, a follow-up and the 50s downstream submission.
	defaultWriteTimeout = 3 * time.Minute
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	host           string
	port           int
	mode           string
	environment    string
	allowedOrigins []string
	gatherer       prometheus.Gatherer

	// Chat domain
	chatUC chat.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Host           string
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string

	// Gatherer backs GET /metrics. Defaults to the global registry.
	Gatherer prometheus.Gatherer

	// Chat domain
	ChatUseCase chat.UseCase
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		host:           cfg.Host,
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		allowedOrigins: cfg.AllowedOrigins,
		gatherer:       cfg.Gatherer,
		chatUC:         cfg.ChatUseCase,
	}
	if srv.gatherer == nil {
		srv.gatherer = prometheus.DefaultGatherer
	}
	if len(srv.allowedOrigins) == 0 {
		srv.allowedOrigins = []string{"*"}
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	return nil
}

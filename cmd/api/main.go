package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"lead-intake-agent/config"
	_ "lead-intake-agent/docs" // Swagger docs
	chatUsecase "lead-intake-agent/internal/chat/usecase"
	"lead-intake-agent/internal/extractor"
	"lead-intake-agent/internal/httpserver"
	"lead-intake-agent/internal/lead"
	"lead-intake-agent/internal/lead/repository/leadapi"
	"lead-intake-agent/internal/observability/metrics"
	"lead-intake-agent/internal/session"
	"lead-intake-agent/pkg/llmprovider"
	"lead-intake-agent/pkg/log"
)

// @title       Lead Intake Agent API
// @description Conversational lead capture: Gemini-backed field extraction with submission to the lead-management API.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 0. .env is optional; real environment variables win.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Lead Intake Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Lead API: %s", cfg.LeadAPI.BaseURL)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	defer closeProviders(ctx, logger, providers)

	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled:   cfg.LLM.FallbackEnabled,
		RetryAttempts:     cfg.LLM.RetryAttempts,
		RetryDelay:        parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout:   parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
		RequestsPerMinute: cfg.LLM.RequestsPerMinute,
	}, logger)
	logger.Infof(ctx, "✅ LLM providers: %v", llm.Providers())

	// 4. Lead domain
	var submitter lead.Submitter
	if cfg.LeadAPI.BaseURL != "" {
		submitter = leadapi.NewClient(cfg.LeadAPI.BaseURL, cfg.LeadAPI.Timeout, logger)
	} else {
		logger.Warn(ctx, "BASE_API is not set: completed leads will not be submitted")
	}

	leadMetrics := metrics.NewLeadMetrics(nil)

	sessions := session.NewStore(func() *lead.Collector {
		return lead.NewCollector(submitter, logger)
	}, logger)

	ex := extractor.New(logger, llm, leadMetrics, extractor.Options{
		CacheSize: cfg.Extraction.CacheSize,
		CacheTTL:  cfg.Extraction.CacheTTL,
	})

	chatUC := chatUsecase.New(logger, sessions, ex, leadMetrics, cfg.Chat.HistoryWindow)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:           cfg.API.Host,
		Port:           cfg.API.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		ChatUseCase:    chatUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func closeProviders(ctx context.Context, logger log.Logger, providers []llmprovider.Provider) {
	for _, p := range providers {
		if c, ok := p.(io.Closer); ok {
			if err := c.Close(); err != nil {
				logger.Warnf(ctx, "Failed to close provider %s: %v", p.Name(), err)
			}
		}
	}
}

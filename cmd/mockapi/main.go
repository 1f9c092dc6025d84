package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"lead-intake-agent/internal/mockapi"
	"lead-intake-agent/pkg/log"
	"lead-intake-agent/pkg/response"
)

// Stand-in for the lead-management API, for local runs against BASE_API=http://localhost:8001.
func main() {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("mock_api.host", "0.0.0.0")
	v.SetDefault("mock_api.port", 8001)
	_ = v.BindEnv("mock_api.host", "MOCK_API_HOST")
	_ = v.BindEnv("mock_api.port", "MOCK_API_PORT")

	logger := log.Init(log.ZapConfig{Level: "info", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(response.Recovery(), gin.Logger())
	mockapi.RegisterRoutes(r, mockapi.NewHandler(logger, mockapi.NewStore()))

	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%d", v.GetString("mock_api.host"), v.GetInt("mock_api.port")),
		Handler: cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			ExposedHeaders:   []string{mockapi.PublicIDHeader},
			AllowCredentials: true,
		})(r),
		ReadHeaderTimeout: 15 * time.Second,
	}

	go func() {
		logger.Infof(ctx, "Mock Lead API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "Mock Lead API failed: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "Mock Lead API shutdown: %v", err)
	}
}

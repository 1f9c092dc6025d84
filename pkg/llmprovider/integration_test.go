package llmprovider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lead-intake-agent/config"
	"lead-intake-agent/pkg/llmprovider"
	"lead-intake-agent/pkg/log"
)

// TestIntegration_ConfigToManagerFlow drives config -> factory -> manager
// against a fake Gemini endpoint.
func TestIntegration_ConfigToManagerFlow(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"email\":\"jane@x.io\"}"}]},"finishReason":"STOP"}],
			"usageMetadata":{"promptTokenCount":3,"candidatesTokenCount":4,"totalTokenCount":7}}`))
	}))
	defer ts.Close()

	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{
				Name:     "gemini",
				Enabled:  true,
				Priority: 1,
				APIKey:   "test-gemini-key",
				Model:    "gemini-1.5-flash",
				BaseURL:  ts.URL,
				Timeout:  "5s",
			},
			{
				Name:     "genai",
				Enabled:  true,
				Priority: 2,
				APIKey:   "test-genai-key",
				Model:    "gemini-1.5-flash",
			},
		},
		FallbackEnabled: true,
		RetryAttempts:   1,
		RetryDelay:      "10ms",
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, log.NewNop())
	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, "gemini", providers[0].Name())
	assert.Equal(t, "genai", providers[1].Name())

	retryDelay, _ := time.ParseDuration(cfg.RetryDelay)
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
	}, log.NewNop())

	resp, err := manager.GenerateContent(context.Background(), &llmprovider.Request{
		Messages:         []llmprovider.Message{llmprovider.UserMessage("jane@x.io")},
		ResponseMIMEType: "application/json",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"email":"jane@x.io"}`, resp.Text())
	assert.Equal(t, "gemini", resp.ProviderName)
	assert.Equal(t, llmprovider.RoleAssistant, resp.Content.Role)
	assert.Equal(t, 7, resp.Usage.TotalTokens)
}

// TestIntegration_ConfigValidation verifies that invalid configurations
// are caught during initialization
func TestIntegration_ConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "gemini-1.5-flash"},
				},
			},
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: true,
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{},
			wantErr: true,
		},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "gemini", Enabled: false, Priority: 1, APIKey: "k", Model: "gemini-1.5-flash"},
				},
			},
			wantErr: true,
		},
		{
			name: "missing API key",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-1.5-flash"},
				},
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "bard", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
				},
			},
			wantErr: true,
		},
		{
			name: "one bad provider is skipped",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "bard", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
					{Name: "genai", Enabled: true, Priority: 2, APIKey: "k", Model: "gemini-1.5-flash"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := llmprovider.InitializeProviders(context.Background(), tt.cfg, log.NewNop())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestIntegration_ProviderPriorityOrdering verifies that providers
// are ordered correctly by priority
func TestIntegration_ProviderPriorityOrdering(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 10, APIKey: "k1", Model: "gemini-1.5-flash"},
			{Name: "genai", Enabled: true, Priority: 1, APIKey: "k2", Model: "gemini-1.5-pro"},
		},
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, log.NewNop())
	require.NoError(t, err)
	require.Len(t, providers, 2)

	assert.Equal(t, "genai", providers[0].Name())
	assert.Equal(t, "gemini-1.5-pro", providers[0].Model())
	assert.Equal(t, "gemini", providers[1].Name())
}

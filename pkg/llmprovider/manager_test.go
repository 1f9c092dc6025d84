package llmprovider

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	mu         sync.Mutex
	name       string
	model      string
	failTimes  int // fail this many calls before succeeding; -1 fails forever
	failErr    error
	response   *Response
	callCount  int
	lastReqLen int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	m.lastReqLen = len(req.Messages)
	if m.failTimes < 0 || m.callCount <= m.failTimes {
		if m.failErr != nil {
			return nil, m.failErr
		}
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.model }

func (m *mockProvider) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	mu           sync.Mutex
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) record(dst *[]string, arg []any) {
	if len(arg) == 0 {
		return
	}
	if msg, ok := arg[0].(string); ok {
		m.mu.Lock()
		*dst = append(*dst, msg)
		m.mu.Unlock()
	}
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     { m.record(&m.infoMessages, arg) }
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     { m.record(&m.warnMessages, arg) }
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func okResponse(text string) *Response {
	return &Response{
		Content: Message{Role: RoleAssistant, Parts: []Part{{Text: text}}},
		Usage:   &Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}
}

func helloRequest() *Request {
	return &Request{Messages: []Message{UserMessage("Hello")}}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", response: okResponse("hi")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      10 * time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	require.NoError(t, err)

	assert.Equal(t, "primary", resp.ProviderName, "provider name is filled in when the adapter leaves it empty")
	assert.Equal(t, "hi", resp.Text())
	assert.Equal(t, 1, primary.calls())
	assert.Len(t, logger.infoMessages, 1)
	assert.Empty(t, logger.warnMessages)
}

func TestGenerateContent_RetryThenSucceed(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", failTimes: 2, response: okResponse("third time")}

	manager := NewManager([]Provider{primary}, &Config{
		RetryAttempts: 3,
		RetryDelay:    time.Millisecond,
	}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	require.NoError(t, err)
	assert.Equal(t, "third time", resp.Text())
	assert.Equal(t, 3, primary.calls())
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", failTimes: -1}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: okResponse("from secondary")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	require.NoError(t, err)

	assert.Equal(t, "secondary", resp.ProviderName)
	assert.Equal(t, 2, primary.calls(), "primary is retried RetryAttempts times")
	assert.Equal(t, 1, secondary.calls())
	assert.Len(t, logger.infoMessages, 1)
	assert.Len(t, logger.warnMessages, 1)
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", failTimes: -1}
	secondary := &mockProvider{name: "secondary", model: "m", failTimes: -1}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrAllProvidersFailed)
	assert.Contains(t, err.Error(), "provider secondary")

	assert.Equal(t, 2, primary.calls())
	assert.Equal(t, 2, secondary.calls())
	assert.Len(t, logger.warnMessages, 2)
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", failTimes: -1}
	secondary := &mockProvider{name: "secondary", model: "m", response: okResponse("unused")}

	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: false,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, 2, primary.calls())
	assert.Zero(t, secondary.calls(), "secondary must not be called when fallback is disabled")
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, nil, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNoProvidersConfigured)
}

func TestGenerateContent_EmptyRequest(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", response: okResponse("x")}
	manager := NewManager([]Provider{primary}, nil, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Zero(t, primary.calls())
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", failTimes: -1}

	manager := NewManager([]Provider{primary}, &Config{
		RetryAttempts:   5,
		RetryDelay:      200 * time.Millisecond,
		MaxTotalTimeout: 50 * time.Millisecond,
	}, &mockLogger{})

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), helloRequest())
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 1, primary.calls(), "retry delay is cut short by the global timeout")
	assert.ErrorIs(t, err, ErrProviderTimeout)
}

func TestGenerateContent_PermanentErrorSkipsRetries(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", failTimes: -1, failErr: permanent(errors.New("API key not valid"))}
	secondary := &mockProvider{name: "secondary", model: "m", response: okResponse("from secondary")}

	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      time.Millisecond,
	}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	require.NoError(t, err)
	assert.Equal(t, "secondary", resp.ProviderName)
	assert.Equal(t, 1, primary.calls())
}

func TestProviderError(t *testing.T) {
	inner := errors.New("boom")

	single := &ProviderError{Provider: "gemini", Attempts: 1, Err: inner}
	assert.Equal(t, "provider gemini: boom", single.Error())
	assert.ErrorIs(t, single, inner)

	multi := &ProviderError{Provider: "gemini", Attempts: 3, Err: inner}
	assert.Equal(t, "provider gemini (3 attempts): boom", multi.Error())
}

func TestGenerateContent_RequestsPerMinuteThrottle(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", response: okResponse("ok")}

	// 60 rpm = one token per second, burst 1: the second call cannot get a
	// token before the 100ms deadline.
	manager := NewManager([]Provider{primary}, &Config{
		RequestsPerMinute: 60,
	}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), helloRequest())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err = manager.GenerateContent(ctx, helloRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderRateLimited)
	assert.Equal(t, 1, primary.calls())
}

func TestManager_Providers(t *testing.T) {
	manager := NewManager([]Provider{
		&mockProvider{name: "gemini"},
		&mockProvider{name: "genai"},
	}, nil, &mockLogger{})

	assert.Equal(t, []string{"gemini", "genai"}, manager.Providers())
}

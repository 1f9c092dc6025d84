package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GenAIAdapter serves requests through the official Go SDK.
// The SDK client is created on first use so constructing the adapter never dials.
type GenAIAdapter struct {
	apiKey string
	model  string

	mu        sync.Mutex
	client    *genai.Client
	newClient func(ctx context.Context) (*genai.Client, error)
}

// NewGenAIAdapter creates a new SDK-backed adapter.
func NewGenAIAdapter(apiKey, model string) *GenAIAdapter {
	a := &GenAIAdapter{apiKey: apiKey, model: model}
	a.newClient = func(ctx context.Context) (*genai.Client, error) {
		return genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	}
	return a
}

// Name returns provider name
func (a *GenAIAdapter) Name() string {
	return ProviderGenAI
}

// Model returns model name
func (a *GenAIAdapter) Model() string {
	return a.model
}

// Close releases the SDK client, if one was created.
func (a *GenAIAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client == nil {
		return nil
	}
	err := a.client.Close()
	a.client = nil
	return err
}

// getClient returns the shared SDK client, creating it if needed. The client
// outlives any single request, so it is built with a background context, and
// a failed attempt is retried on the next call.
func (a *GenAIAdapter) getClient() (*genai.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}
	c, err := a.newClient(context.Background())
	if err != nil {
		return nil, err
	}
	a.client = c
	return c, nil
}

// GenerateContent implements Provider interface
func (a *GenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}
	client, err := a.getClient()
	if err != nil {
		return nil, fmt.Errorf("genai: failed to create client: %w", err)
	}

	model := client.GenerativeModel(a.model)
	model.SetTemperature(float32(req.Temperature))
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	if req.SystemInstruction != nil {
		if text := joinText(req.SystemInstruction.Parts); text != "" {
			model.SystemInstruction = genai.NewUserContent(genai.Text(text))
		}
	}
	if req.ResponseMIMEType != "" {
		model.ResponseMIMEType = req.ResponseMIMEType
		model.ResponseSchema = toGenAISchema(req.ResponseSchema)
	}

	cs := model.StartChat()
	for _, msg := range req.Messages[:len(req.Messages)-1] {
		text := strings.TrimSpace(joinText(msg.Parts))
		if text == "" || msg.Role == RoleSystem {
			continue
		}
		role := "user"
		if msg.Role == RoleAssistant {
			role = "model"
		}
		cs.History = append(cs.History, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(text)}})
	}

	last := req.Messages[len(req.Messages)-1]
	resp, err := cs.SendMessage(ctx, genai.Text(joinText(last.Parts)))
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			return nil, permanent(fmt.Errorf("genai: %w", err))
		}
		return nil, fmt.Errorf("genai: completion failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("genai: no candidates returned")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	usage := &Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		usage.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: sb.String()}}},
		ProviderName: ProviderGenAI,
		ModelName:    a.model,
		Usage:        usage,
	}, nil
}

func joinText(parts []Part) string {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// toGenAISchema converts the OpenAPI-style map used by Request into the SDK schema.
func toGenAISchema(m map[string]interface{}) *genai.Schema {
	if len(m) == 0 {
		return nil
	}

	s := &genai.Schema{}
	if t, ok := m["type"].(string); ok {
		s.Type = toGenAIType(t)
	}
	if d, ok := m["description"].(string); ok {
		s.Description = d
	}
	if n, ok := m["nullable"].(bool); ok {
		s.Nullable = n
	}
	if props, ok := m["properties"].(map[string]interface{}); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, raw := range props {
			if sub, ok := raw.(map[string]interface{}); ok {
				s.Properties[name] = toGenAISchema(sub)
			}
		}
	}
	if items, ok := m["items"].(map[string]interface{}); ok {
		s.Items = toGenAISchema(items)
	}
	switch req := m["required"].(type) {
	case []string:
		s.Required = req
	case []interface{}:
		for _, r := range req {
			if str, ok := r.(string); ok {
				s.Required = append(s.Required, str)
			}
		}
	}
	return s
}

func toGenAIType(t string) genai.Type {
	switch strings.ToUpper(t) {
	case "STRING":
		return genai.TypeString
	case "NUMBER":
		return genai.TypeNumber
	case "INTEGER":
		return genai.TypeInteger
	case "BOOLEAN":
		return genai.TypeBoolean
	case "ARRAY":
		return genai.TypeArray
	case "OBJECT":
		return genai.TypeObject
	default:
		return genai.TypeUnspecified
	}
}

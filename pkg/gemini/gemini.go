package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type geminiImpl struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// New validates cfg and creates a REST client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     cfg.APIURL,
		httpClient: cfg.HTTPClient,
	}, nil
}

func (g *geminiImpl) Model() string {
	return g.model
}

func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrEmptyRequest
	}

	wire, err := g.call(ctx, buildRequest(req))
	if err != nil {
		return nil, err
	}
	return parseResponse(wire)
}

func (g *geminiImpl) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.apiURL, url.PathEscape(g.model), url.QueryEscape(g.apiKey))
}

func (g *geminiImpl) call(ctx context.Context, req generateRequest) (*generateResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}
	return &out, nil
}

func buildRequest(req *Request) generateRequest {
	out := generateRequest{
		Contents: make([]wireContent, 0, len(req.Messages)),
		GenerationConfig: &generationConfig{
			Temperature:      req.Temperature,
			MaxOutputTokens:  req.MaxTokens,
			ResponseMIMEType: req.ResponseMIMEType,
			ResponseSchema:   req.ResponseSchema,
		},
	}

	if req.SystemInstruction != nil {
		out.SystemInstruction = &wireContent{Parts: toWireParts(req.SystemInstruction.Parts)}
	}
	for _, msg := range req.Messages {
		out.Contents = append(out.Contents, wireContent{
			Role:  toWireRole(msg.Role),
			Parts: toWireParts(msg.Parts),
		})
	}
	return out
}

// The API only knows "user" and "model".
func toWireRole(role string) string {
	switch role {
	case "assistant", roleModel:
		return roleModel
	case "":
		return ""
	default:
		return roleUser
	}
}

func toWireParts(parts []Part) []wirePart {
	out := make([]wirePart, len(parts))
	for i, p := range parts {
		out[i] = wirePart{Text: p.Text}
	}
	return out
}

func parseResponse(resp *generateResponse) (*Response, error) {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return nil, fmt.Errorf("%w: %s", ErrBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return nil, ErrNoCandidates
	}

	usage := &Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = resp.UsageMetadata.PromptTokenCount
		usage.OutputTokens = resp.UsageMetadata.CandidatesTokenCount
		usage.TotalTokens = resp.UsageMetadata.TotalTokenCount
	}

	cand := resp.Candidates[0]
	parts := make([]Part, len(cand.Content.Parts))
	for i, p := range cand.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}

	return &Response{
		Content:      Content{Role: cand.Content.Role, Parts: parts},
		FinishReason: cand.FinishReason,
		Usage:        usage,
	}, nil
}

package llmprovider

import (
	"context"
	"errors"

	"lead-intake-agent/pkg/gemini"
)

// GeminiAdapter serves requests through the REST client in pkg/gemini.
type GeminiAdapter struct {
	client gemini.IGemini
}

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: toGeminiContent(req.SystemInstruction),
		Messages:          toGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		ResponseMIMEType:  req.ResponseMIMEType,
		ResponseSchema:    req.ResponseSchema,
	})
	if err != nil {
		return nil, classifyGeminiError(err)
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Content:      fromGeminiContent(resp.Content),
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// classifyGeminiError marks 4xx replies other than 429, and blocked
// prompts, as permanent.
func classifyGeminiError(err error) error {
	var apiErr *gemini.APIError
	if errors.As(err, &apiErr) && !apiErr.Retryable() {
		return permanent(err)
	}
	if errors.Is(err, gemini.ErrBlocked) || errors.Is(err, gemini.ErrEmptyRequest) {
		return permanent(err)
	}
	return err
}

func toGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func toGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, 0, len(msgs))
	for i := range msgs {
		if msgs[i].Role == RoleSystem {
			continue
		}
		contents = append(contents, *toGeminiContent(&msgs[i]))
	}
	return contents
}

func fromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: RoleAssistant, Parts: parts}
}

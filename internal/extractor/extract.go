package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"lead-intake-agent/internal/lead"
	"lead-intake-agent/pkg/llmprovider"
)

// leadSchema constrains JSON-mode output to the Lead Record shape.
var leadSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		string(lead.FieldFirstName):  nullableString("Applicant's first name"),
		string(lead.FieldLastName):   nullableString("Applicant's last name, null for a single name"),
		string(lead.FieldEmail):      nullableString("Email address exactly as written"),
		string(lead.FieldPhone):      nullableString("Phone number exactly as written"),
		string(lead.FieldLeadSource): nullableString("How the applicant heard about us"),
	},
}

func nullableString(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "STRING",
		"nullable":    true,
		"description": description,
	}
}

func (e *implExtractor) Extract(ctx context.Context, utterance string) (lead.Fragment, error) {
	key := cacheKey(utterance)
	if e.cache != nil {
		if frag, ok := e.cache.Get(key); ok {
			e.metrics.ObserveExtraction(ResultCacheHit)
			return copyFragment(frag), nil
		}
	}

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  llmprovider.RoleSystem,
			Parts: []llmprovider.Part{{Text: SystemPromptExtract}},
		},
		Messages:         []llmprovider.Message{llmprovider.UserMessage(fmt.Sprintf(extractUserTemplate, utterance))},
		Temperature:      0,
		ResponseMIMEType: "application/json",
		ResponseSchema:   leadSchema,
	}

	start := time.Now()
	resp, err := e.llm.GenerateContent(ctx, req)
	e.metrics.ObserveLLMLatency(OperationExtract, time.Since(start).Seconds())
	if err != nil {
		e.metrics.ObserveExtraction(ResultError)
		e.l.Errorf(ctx, "%s: LLM call failed: %v", LogPrefixExtract, err)
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		e.metrics.ObserveExtraction(ResultError)
		return nil, fmt.Errorf("%w: %w", ErrExtraction, ErrEmptyResponse)
	}

	cleaned := sanitizeJSONResponse(text)
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		e.metrics.ObserveExtraction(ResultError)
		e.l.Errorf(ctx, "%s: failed to parse LLM response. Raw=%q Cleaned=%q", LogPrefixExtract, text, cleaned)
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrExtraction, err)
	}

	frag := normalizeFragment(raw, utterance)
	e.l.Debugf(ctx, "%s: extracted %d field(s) via %s", LogPrefixExtract, len(frag), resp.ProviderName)

	if e.cache != nil {
		e.cache.Add(key, copyFragment(frag))
	}
	e.metrics.ObserveExtraction(ResultOK)
	return frag, nil
}

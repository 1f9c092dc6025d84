package extractor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lead-intake-agent/internal/lead"
	"lead-intake-agent/pkg/llmprovider"
)

func (e *implExtractor) Ask(ctx context.Context, input AskInput) (string, error) {
	if len(input.Missing) == 0 {
		return "", ErrNothingToAsk
	}

	prompt := fmt.Sprintf(askUserTemplate,
		formatHistory(input.History),
		input.Message,
		formatKnown(input.Known),
		lead.JoinFields(input.Missing),
	)

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  llmprovider.RoleSystem,
			Parts: []llmprovider.Part{{Text: SystemPromptAsk}},
		},
		Messages:    []llmprovider.Message{llmprovider.UserMessage(prompt)},
		Temperature: 0,
	}

	start := time.Now()
	resp, err := e.llm.GenerateContent(ctx, req)
	e.metrics.ObserveLLMLatency(OperationAsk, time.Since(start).Seconds())
	if err != nil {
		e.l.Errorf(ctx, "%s: LLM call failed: %v", LogPrefixAsk, err)
		return "", fmt.Errorf("ask for %s: %w", input.Missing[0], err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

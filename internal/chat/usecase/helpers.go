package usecase

import (
	"github.com/google/uuid"

	"lead-intake-agent/internal/lead"
)

func newUserID() string {
	return uuid.NewString()
}

func fallbackQuestion(missing []lead.Field) string {
	if len(missing) == 0 {
		return defaultFallbackQuestion
	}
	if q, ok := fallbackQuestions[missing[0]]; ok {
		return q
	}
	return defaultFallbackQuestion
}

func fieldNames(fields []lead.Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = string(f)
	}
	return out
}

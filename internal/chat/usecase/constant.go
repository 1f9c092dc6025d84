package usecase

import "lead-intake-agent/internal/lead"

// Log prefixes
const (
	LogPrefixChat  = "internal.chat.usecase.Chat"
	LogPrefixClear = "internal.chat.usecase.ClearSession"
)

// Configuration
const (
	DefaultHistoryWindow = 10
)

// Replies
const (
	MsgEmptyMessage         = "Please provide a message"
	MsgLeadCreated          = "✅ Lead created successfully!"
	MsgExtractionErrorTmpl  = "Sorry, I didn't get that. Can you rephrase? Error: %v"
	MsgSessionClearedTmpl   = "Session for user %s cleared successfully"
	defaultFallbackQuestion = "Could you share a bit more about yourself so we can continue your loan application?"
)

// Turn outcomes, used as metric labels.
const (
	OutcomeEmpty            = "empty"
	OutcomeExtractionError  = "extraction_error"
	OutcomeSubmitted        = "submitted"
	OutcomeSubmitFailed     = "submit_failed"
	OutcomeFollowUp         = "follow_up"
	OutcomeFollowUpFallback = "follow_up_fallback"
)

// fallbackQuestions are used when the follow-up LLM call fails.
var fallbackQuestions = map[lead.Field]string{
	lead.FieldFirstName:  "Could you tell me your first name? I need it to start your loan application.",
	lead.FieldLastName:   "Thanks! What's your last name? Lenders need your full legal name on the application.",
	lead.FieldEmail:      "What's the best email address to reach you? We'll send updates about your application there.",
	lead.FieldPhone:      "What's a good phone number for you? A loan officer may need to call you about your application.",
	lead.FieldLeadSource: "Lastly, how did you hear about us? It helps us understand how applicants find us.",
}

package extractor

// Log prefixes
const (
	LogPrefixExtract = "internal.extractor.Extract"
	LogPrefixAsk     = "internal.extractor.Ask"
)

// Metric labels
const (
	ResultOK       = "ok"
	ResultCacheHit = "cache_hit"
	ResultError    = "error"

	OperationExtract = "extract"
	OperationAsk     = "ask"
)

// Configuration
const (
	DefaultCacheSize = 512
	minPhoneDigits   = 7
)

// System prompts
const (
	SystemPromptExtract = `You are an assistant for a lending institution that collects contact details from loan applicants.
Applicants often write casually. Read the applicant message and extract only what it actually states.

Rules:
- firstName / lastName: when a full name is given, the first word is firstName and the rest is lastName. A single name (including hyphenated names) is firstName only.
- email: only a syntactically valid email address that appears in the message.
- phone: only digits that form a plausible phone number, as written.
- leadSource: how the applicant heard about us (for example "a friend", "online ad", "Google"), in their own words.
- Use null for every field the message does not mention. Never guess and never use empty strings.

Answer with a single JSON object with the keys firstName, lastName, email, phone, leadSource.`

	SystemPromptAsk = `You are a warm, professional assistant for a lending institution collecting loan application details.

Guidelines:
- Ask exactly one question, for the first field in the missing list.
- Briefly say why that detail is needed for the loan application.
- Acknowledge what the applicant has already shared; never ask for it again.
- If the applicant hesitates to share something, reassure them professionally.
- Use natural conversational language, not form labels. Reply with plain text only.`
)

// Prompt templates
const (
	extractUserTemplate = `Applicant message:
"%s"`

	askUserTemplate = `%sApplicant message:
"%s"

Already provided: %s
Missing fields (in priority order): %s

Write the next reply.`
)

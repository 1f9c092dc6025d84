package gemini

import "time"

const (
	DefaultModel   = "gemini-1.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	// MIMETypeJSON asks the model to answer with a JSON document only.
	MIMETypeJSON = "application/json"

	roleUser  = "user"
	roleModel = "model"

	maxErrorBody = 2048
)

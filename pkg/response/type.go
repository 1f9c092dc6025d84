package response

// ErrorResp is the JSON body returned for every non-2xx response.
type ErrorResp struct {
	Detail string `json:"detail"`
}

// MessageResp is a bare confirmation body.
type MessageResp struct {
	Message string `json:"message"`
}

const (
	DefaultErrorMessage  = "internal server error"
	DefaultNotFoundError = "not found"
)

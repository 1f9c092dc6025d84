package mockapi

const (
	RootMessage    = "Mock Lead API is running"
	CreatedMessage = "Lead created successfully"
	PublicIDHeader = "public-id"
)

var (
	// messageFields are the fields POST /admin/message requires.
	messageFields = []string{"firstName", "lastName", "email", "phone", "leadSource"}
	// legacyFields are the fields POST /api/admin/lead requires.
	legacyFields = []string{"name", "email", "phone", "leadSource"}
)

type createdResp struct {
	LeadID  string `json:"leadId"`
	Message string `json:"message"`
}

type leadsResp struct {
	Leads map[string]map[string]any `json:"leads"`
	Count int                       `json:"count"`
}

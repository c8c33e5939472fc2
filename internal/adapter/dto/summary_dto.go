package dto

// SummarizeRequest is the body of POST /summarize
type SummarizeRequest struct {
	Transcript   string `json:"transcript"`
	CustomPrompt string `json:"customPrompt,omitempty"`
}

// SummarizeResponse is the success body of POST /summarize
type SummarizeResponse struct {
	Success        bool   `json:"success"`
	Summary        string `json:"summary"`
	OriginalPrompt string `json:"originalPrompt"`
}

// ShareRequest is the body of POST /share
type ShareRequest struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject,omitempty"`
	Summary    string   `json:"summary"`
	SenderName string   `json:"senderName,omitempty"`
}

// ShareResponse is the success body of POST /share
type ShareResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Recipients int    `json:"recipients"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

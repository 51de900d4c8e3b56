package api

type IngestResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	Path         string `json:"path"`
	MessageID    string `json:"message_id"`
	OriginalName string `json:"original_name"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
	Error  string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

package handlers

// ErrorResponse is the proxy's own error body. Upstream error envelopes are
// relayed as received and never wrapped in this type.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

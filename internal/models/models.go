package models

// ===== Execute Models =====

// ExecuteRequest represents the inbound query payload
type ExecuteRequest struct {
	Query string `json:"query"`
}

// ExecuteResponse represents a successful model invocation
type ExecuteResponse struct {
	Success bool   `json:"success"`
	Result  string `json:"result"`
}

// ErrorResponse represents any failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// ===== Health Models =====

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status  string `json:"status"` // "ok" or "error"
	Message string `json:"message"`
	Model   string `json:"model"`
}

package dto

// ErrorResponse represents a standardized JSON error body
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the body of the liveness check
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

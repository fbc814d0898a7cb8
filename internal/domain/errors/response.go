package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "CATEGORY_UNKNOWN"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the envelope used when the error middleware writes an error
// directly, mirroring the delivery layer's response shape.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

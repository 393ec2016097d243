package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "CART_EMPTY"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the unified envelope for error payloads produced by the HTTP
// error handler. It mirrors the success envelope in delivery/http/response.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

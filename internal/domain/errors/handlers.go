package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "VENDOR_CONFLICT"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// ErrorResponse is the JSON body written by the mock backend for failed requests
type ErrorResponse struct {
	Success   bool       `json:"success"`
	Code      int        `json:"code"`
	Message   string     `json:"message"`
	Error     *ErrorInfo `json:"error"`
	RequestID string     `json:"request_id,omitempty"`
}

// NewErrorResponse builds the response body for an AppError
func NewErrorResponse(appErr AppError, requestID string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Code:    appErr.HTTPCode(),
		Message: appErr.Message(),
		Error: &ErrorInfo{
			Code:    appErr.ErrorCode(),
			Details: appErr.Details(),
		},
		RequestID: requestID,
	}
}

package normalizer

import "time"

// Well-known error codes used by classification and the possible-causes table.
const (
	CodeInternalError       = "INTERNAL_ERROR"
	CodeValidationError     = "VALIDATION_ERROR"
	CodeUnknownError        = "UNKNOWN_ERROR"
	CodeAuthenticationError = "AUTHENTICATION_ERROR"
	CodeNotFound            = "NOT_FOUND"
)

// Metadata describes a response: when it was produced, for which request, by
// which build. ProcessingTime (milliseconds) is present only when metadata
// inclusion is enabled and the request start time is known; Server and
// Runtime only in the detailed format.
type Metadata struct {
	Timestamp      time.Time `json:"timestamp"`
	RequestID      string    `json:"requestId"`
	Version        string    `json:"version"`
	ProcessingTime *int64    `json:"processingTime,omitempty"`
	Server         string    `json:"server,omitempty"`
	Runtime        string    `json:"runtime,omitempty"`
}

// SuccessResponse is the uniform envelope for handler output.
type SuccessResponse struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data"`
	Metadata   *Metadata   `json:"metadata,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ErrorDetail is the structured error object inside an ErrorResponse.
type ErrorDetail struct {
	Code           string    `json:"code"`
	Message        string    `json:"message"`
	Details        any       `json:"details,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	RequestID      string    `json:"requestId"`
	Stack          string    `json:"stack,omitempty"`
	HelpURL        string    `json:"helpUrl,omitempty"`
	PossibleCauses []string  `json:"possibleCauses,omitempty"`
}

// ErrorResponse is the uniform envelope for failures.
type ErrorResponse struct {
	Success  bool        `json:"success"`
	Error    ErrorDetail `json:"error"`
	Metadata *Metadata   `json:"metadata,omitempty"`
}

// IsNormalized reports whether v already carries the envelope shape: a
// success flag plus metadata with a request ID. Values that pass are returned
// unchanged by the normalization boundary instead of being double-wrapped.
func IsNormalized(v any) bool {
	switch resp := v.(type) {
	case SuccessResponse:
		return resp.Metadata != nil && resp.Metadata.RequestID != ""
	case *SuccessResponse:
		return resp != nil && resp.Metadata != nil && resp.Metadata.RequestID != ""
	case ErrorResponse:
		return resp.Metadata != nil && resp.Metadata.RequestID != ""
	case *ErrorResponse:
		return resp != nil && resp.Metadata != nil && resp.Metadata.RequestID != ""
	case map[string]any:
		if _, ok := resp["success"]; !ok {
			return false
		}
		md, ok := resp["metadata"].(map[string]any)
		if !ok {
			return false
		}
		id, ok := md["requestId"].(string)
		return ok && id != ""
	default:
		return false
	}
}

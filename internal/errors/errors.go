package errors

import "errors"

// Machine-readable error codes surfaced through GraphQL error extensions.
const (
	CodeBadUserInput = "BAD_USER_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_SERVER_ERROR"
)

// FieldError describes a validation failure for a single input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is the error type exposed to GraphQL clients. The Extensions
// method feeds the graphql-go error extensions channel, so the code and
// field errors end up in the response next to the message.
type APIError struct {
	Message     string
	Code        string
	FieldErrors []FieldError
}

func (e *APIError) Error() string {
	return e.Message
}

// Extensions implements the extension hook of graphql-go query errors.
func (e *APIError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	if len(e.FieldErrors) > 0 {
		fields := make([]map[string]interface{}, 0, len(e.FieldErrors))
		for _, fe := range e.FieldErrors {
			fields = append(fields, map[string]interface{}{
				"field":   fe.Field,
				"message": fe.Message,
			})
		}
		ext["fieldErrors"] = fields
	}
	return ext
}

// BadUserInput builds a validation error, optionally with field details.
func BadUserInput(message string, fields ...FieldError) *APIError {
	return &APIError{Message: message, Code: CodeBadUserInput, FieldErrors: fields}
}

// Unauthorized builds an authorization error. Missing identity and
// insufficient role are deliberately indistinguishable to the client.
func Unauthorized(message string, fields ...FieldError) *APIError {
	return &APIError{Message: message, Code: CodeUnauthorized, FieldErrors: fields}
}

// NotFound builds a missing-entity error.
func NotFound(message string) *APIError {
	return &APIError{Message: message, Code: CodeNotFound}
}

// Conflict builds a uniqueness-violation error.
func Conflict(message string, fields ...FieldError) *APIError {
	return &APIError{Message: message, Code: CodeConflict, FieldErrors: fields}
}

// Internal builds the generic error returned when something unexpected
// failed. Internal detail stays in the logs, never in the message.
func Internal() *APIError {
	return &APIError{Message: "Internal server error", Code: CodeInternal}
}

// AsAPIError unwraps err to an *APIError if there is one in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

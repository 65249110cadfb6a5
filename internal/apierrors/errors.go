package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned to API clients
const (
	CodeNotFound               = "NOT_FOUND"
	CodeInvalidInput           = "INVALID_INPUT"
	CodeEmailExists            = "EMAIL_EXISTS"
	CodeEmailNotFound          = "EMAIL_NOT_FOUND"
	CodeUserNotFound           = "USER_NOT_FOUND"
	CodeLinkNotFound           = "LINK_NOT_FOUND"
	CodeLinkExists             = "LINK_EXISTS"
	CodeProgramNotFound        = "PROGRAM_NOT_FOUND"
	CodeInvalidProgram         = "INVALID_PROGRAM"
	CodeOrderNotFound          = "ORDER_NOT_FOUND"
	CodeRewardNotFound         = "REWARD_NOT_FOUND"
	CodePayoutNotFound         = "PAYOUT_NOT_FOUND"
	CodeAttributionNotFound    = "ATTRIBUTION_NOT_FOUND"
	CodeInsufficientFunds      = "INSUFFICIENT_FUNDS"
	CodeBelowMinimumPayout     = "BELOW_MINIMUM_PAYOUT"
	CodeInvalidPayoutMethod    = "INVALID_PAYOUT_METHOD"
	CodeInvalidStateTransition = "INVALID_STATE_TRANSITION"
	CodeInvalidOrderStatus     = "INVALID_ORDER_STATUS"
	CodePermissionDenied       = "PERMISSION_DENIED"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeEmailServiceError      = "EMAIL_SERVICE_ERROR"
	CodeInternalError          = "INTERNAL_ERROR"
)

// APIError is a transport-level error carrying an HTTP status, a
// machine-readable code, and a user-facing message.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"error"`
	internal   error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.internal != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped internal error for errors.Is/As
func (e *APIError) Unwrap() error {
	return e.internal
}

// NotFound builds a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// BadRequest builds a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Unauthorized builds a 401 error
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden builds a 403 error
func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodePermissionDenied, Message: message}
}

// Conflict builds a 409 error
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// ServiceUnavailable builds a 503 error wrapping the internal cause
func ServiceUnavailable(code, message string, internal error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, internal: internal}
}

// InternalError builds a sanitized 500 error - never exposes internal details
func InternalError(internal error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		internal:   internal,
	}
}

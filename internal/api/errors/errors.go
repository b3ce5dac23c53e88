package errors

import (
	"errors"
	"net/http"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindBadRequest ErrorKind = "bad_request"
	KindNotFound   ErrorKind = "not_found"
	KindInternal   ErrorKind = "internal"
)

// Messages shared by handlers and services.
const (
	MsgInternal           = "Internal server error"
	MsgNoAudio            = "No audio file provided"
	MsgLabelsRequired     = "Persona and agent are required"
	MsgProcessingFailed   = "Failed to process audio"
	MsgUnsupportedAudio   = "Unsupported audio type"
	MsgInvalidRequestBody = "Invalid request body"
	MsgNotFound           = "Not found"
)

// APIError is the JSON error body. Field names the first input field that
// failed validation.
type APIError struct {
	Kind      ErrorKind `json:"-"`
	Message   string    `json:"message"`
	Field     string    `json:"field,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error for one field
func NewValidationError(field, message string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Field:   field,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(message string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: message,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	if message == "" {
		message = MsgInternal
	}
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// As reports whether err is or wraps an APIError and returns it.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

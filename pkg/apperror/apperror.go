package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrPermission           = errors.New("permission denied")
	ErrInvalidInput         = errors.New("invalid input")
	ErrConflict             = errors.New("conflict")
	ErrInternal             = errors.New("internal server error")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrPersistence          = errors.New("persistence failure")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrUnavailable          = errors.New("service unavailable")
)

type AppError struct {
	BaseError error
	Message   string
	Details   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

func NewAppError(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

func NewNotFound(resource, identifier string) *AppError {
	msg := fmt.Sprintf("%s not found", resource)
	details := fmt.Sprintf("%s with identifier '%s' was not found", resource, identifier)
	return NewAppError(ErrNotFound, msg, details, nil)
}

func NewInvalidInput(details string, err error) *AppError {
	return NewAppError(ErrInvalidInput, "Invalid input provided", details, err)
}

// NewMissingFields is the required-field flavour of NewInvalidInput; the
// message is meant to be shown to the admin as-is.
func NewMissingFields(fields ...string) *AppError {
	details := fmt.Sprintf("missing required fields: %v", fields)
	return NewAppError(ErrInvalidInput, "Please fill in all required fields", details, nil)
}

func NewConflict(resource, field, value string) *AppError {
	msg := fmt.Sprintf("%s conflict", resource)
	details := fmt.Sprintf("%s with %s '%s' already exists", resource, field, value)
	return NewAppError(ErrConflict, msg, details, nil)
}

func NewInternal(details string, err error) *AppError {
	return NewAppError(ErrInternal, "An internal server error occurred", details, err)
}

func NewUnauthorized(details string, err error) *AppError {
	return NewAppError(ErrUnauthorized, "Invalid credentials", details, err)
}

func NewPermissionDenied(details string) *AppError {
	return NewAppError(ErrPermission, "Permission denied", details, nil)
}

// NewPersistence reports a write that did not reach the store. The change
// was not applied.
func NewPersistence(key string, err error) *AppError {
	details := fmt.Sprintf("document '%s' could not be written", key)
	return NewAppError(ErrPersistence, "Your changes could not be saved", details, err)
}

func NewConfirmationRequired(resource, identifier string) *AppError {
	msg := fmt.Sprintf("Deleting this %s requires confirmation", resource)
	details := fmt.Sprintf("repeat the request with confirm=true to delete %s '%s'", resource, identifier)
	return NewAppError(ErrConfirmationRequired, msg, details, nil)
}

func NewUnavailable(details string) *AppError {
	return NewAppError(ErrUnavailable, "Service unavailable", details, nil)
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrPermission):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrConfirmationRequired):
		return http.StatusPreconditionRequired
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (e *AppError) ToJSON() gin.H {
	return gin.H{
		"error":   e.BaseError.Error(),
		"message": e.Message,
	}
}

package models

import "fmt"

// Error codes used across the stores.
const (
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeValidation      = "VALIDATION_ERROR"
	CodeDevice          = "DEVICE_ERROR"
	CodeExternalService = "EXTERNAL_SERVICE_ERROR"
)

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewUnauthenticatedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthenticated,
		Message: message,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewDeviceError(message string, err error) *AppError {
	return &AppError{
		Code:    CodeDevice,
		Message: message,
		Err:     err,
	}
}

func NewExternalServiceError(message string, err error) *AppError {
	return &AppError{
		Code:    CodeExternalService,
		Message: message,
		Err:     err,
	}
}

func hasCode(err error, code string) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}

// IsNotFound reports whether err is an AppError with code NOT_FOUND.
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsUnauthenticated reports whether err is an AppError with code UNAUTHENTICATED.
func IsUnauthenticated(err error) bool { return hasCode(err, CodeUnauthenticated) }

// IsValidation reports whether err is an AppError with code VALIDATION_ERROR.
func IsValidation(err error) bool { return hasCode(err, CodeValidation) }

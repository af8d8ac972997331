package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an AppError.
type ErrorCode string

// AppError is the application-wide error carrier.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap chains an underlying error.
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors.
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Users
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already exists", http.StatusConflict)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 8 characters", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)

	// Reports and rescue lifecycle
	ErrReportNotFound     = New(CodeReportNotFound, "Report not found", http.StatusNotFound)
	ErrInvalidCoordinates = New(CodeInvalidCoordinates, "Latitude and longitude are required", http.StatusBadRequest)
	// No approved shelter with coordinates exists; retrying cannot help
	// until a shelter is registered, so this is a validation-class failure.
	ErrNoShelterAvailable = New(CodeNoShelterAvailable, "No shelter available for assignment", http.StatusUnprocessableEntity)
	ErrInvalidStatus      = New(CodeInvalidStatus, "Status value is not valid for this report kind", http.StatusBadRequest)
	ErrInvalidTransition  = New(CodeInvalidTransition, "Status transition is not allowed", http.StatusConflict)

	// Shelters
	ErrShelterNotFound      = New(CodeShelterNotFound, "Shelter not found", http.StatusNotFound)
	ErrShelterNotApproved   = New(CodeShelterNotApproved, "Shelter is not approved", http.StatusForbidden)
	ErrShelterAlreadyExists = New(CodeShelterAlreadyExists, "A shelter request already exists for this user", http.StatusConflict)

	// Animals and adoptions
	ErrAnimalNotFound   = New(CodeAnimalNotFound, "Animal not found", http.StatusNotFound)
	ErrAnimalNotActive  = New(CodeAnimalNotActive, "Animal listing is not active", http.StatusBadRequest)
	ErrAdoptionNotFound = New(CodeAdoptionNotFound, "Adoption request not found", http.StatusNotFound)

	// Notifications
	ErrNotificationNotFound = New(CodeNotificationNotFound, "Notification not found", http.StatusNotFound)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

// DatabaseError marks transient infrastructure failures: the data was fine,
// the backend call was not, so callers may retry.
func DatabaseError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "Database operation failed", http.StatusServiceUnavailable)
}

// EmailDeliveryError classifies a failed advisory send. The outbox worker
// records it on the parked row; it never reaches an HTTP response.
func EmailDeliveryError(err error) *AppError {
	return Wrap(err, CodeEmailDeliveryError, "Email delivery failed", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeReportNotFound, message, http.StatusNotFound)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewConflictError(message string) *AppError {
	return New(CodeEmailAlreadyExists, message, http.StatusConflict)
}

func NewInternalError(message string) *AppError {
	return New(CodeInternalError, message, http.StatusInternalServerError)
}

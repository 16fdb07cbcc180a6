package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidFormData is returned when signup/login input fails validation.
	ErrInvalidFormData = errors.New("invalid form data")
	// ErrInvalidPetData is returned when pet input fails validation.
	ErrInvalidPetData = errors.New("invalid pet data")
	// ErrPetNotFound is returned when the referenced pet does not exist.
	ErrPetNotFound = errors.New("pet not found")
	// ErrNotOwner is returned when the pet exists but belongs to another user.
	ErrNotOwner = errors.New("unauthorized")
	// ErrEmailTaken is returned when signup hits the unique email constraint.
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ErrorResponse is the flat failure body every action returns. Internal
// detail (driver errors, provider codes) never reaches it.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything that is not a
// known domain condition collapses to a 500 with the caller's generic
// fallback message, e.g. "could not add pet.".
func MapErrorToHTTP(err error, fallback string) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidFormData):
		return NewHTTPError(http.StatusBadRequest, "Invalid form data.")
	case errors.Is(err, ErrInvalidPetData):
		return NewHTTPError(http.StatusBadRequest, "Invalid pet data.")
	case errors.Is(err, ErrPetNotFound):
		return NewHTTPError(http.StatusNotFound, "Pet not found.")
	case errors.Is(err, ErrNotOwner):
		return NewHTTPError(http.StatusForbidden, "Unauthorized.")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, "Email already exists.")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, "Invalid credentials.")
	default:
		return NewHTTPError(http.StatusInternalServerError, fallback)
	}
}

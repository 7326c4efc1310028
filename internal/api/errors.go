package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/emphasis-trainer/internal/api/shared"
	"github.com/phrazzld/emphasis-trainer/internal/service/stats"
	"github.com/phrazzld/emphasis-trainer/internal/service/trainer"
)

var (
	// ErrWordNotFound is returned for an id outside the catalog.
	ErrWordNotFound = errors.New("word not found")

	// ErrInvalidWordID is returned for an id that is not a non-negative
	// integer.
	ErrInvalidWordID = errors.New("invalid word id")

	// ErrInvalidEmphasis is returned when the chosen position is not one of
	// the word's variants.
	ErrInvalidEmphasis = errors.New("emphasis is not a variant of the word")
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, ErrWordNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidWordID),
		errors.Is(err, ErrInvalidEmphasis),
		errors.Is(err, shared.ErrInvalidBody),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.Is(err, trainer.ErrNoWords):
		return http.StatusNoContent
	case errors.Is(err, stats.ErrStorage):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err.
func GetSafeErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	switch {
	case err == nil:
		return "An unexpected error occurred"
	case errors.Is(err, ErrWordNotFound):
		return "Word not found"
	case errors.Is(err, ErrInvalidWordID):
		return "Invalid word id"
	case errors.Is(err, ErrInvalidEmphasis):
		return "Emphasis must be one of the word's variants"
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"
	case errors.Is(err, shared.ErrInvalidBody):
		return "Invalid request format"
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)
	case errors.Is(err, trainer.ErrNoWords):
		return "No words to practice"
	case errors.Is(err, stats.ErrStorage):
		return "Progress could not be saved"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError describes the first failed field without exposing
// struct names.
func SanitizeValidationError(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Validation error"
	}
	fe := errs[0]
	return "Invalid " + strings.ToLower(fe.Field()) + ": " + getValidationTagMessage(fe.Tag())
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too small"
	case "max":
		return "too large"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the response for err. Messages come from
// GetSafeErrorMessage unless defaultMsg is set; the redacted error is logged.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	msg := defaultMsg
	if msg == "" {
		msg = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, msg, err)
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/alphanet-products/leonardo-backend/pkg/apperrors"
)

// EnvelopeTime renders as "yyyy-MM-dd HH:mm:ss" in server-local time.
type EnvelopeTime time.Time

func (t EnvelopeTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format("2006-01-02 15:04:05") + `"`), nil
}

func (t *EnvelopeTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local)
	if err != nil {
		return err
	}
	*t = EnvelopeTime(parsed)
	return nil
}

// ErrorEnvelope is the uniform error response body.
type ErrorEnvelope struct {
	Status           int                  `json:"status"`
	Message          string               `json:"message"`
	Details          string               `json:"details"`
	Path             string               `json:"path"`
	Timestamp        EnvelopeTime         `json:"timestamp"`
	ValidationErrors []ValidationErrorDTO `json:"validationErrors,omitempty"`
}

// ValidationErrorDTO is one rejected field in an error envelope.
type ValidationErrorDTO struct {
	Field         string `json:"field"`
	Message       string `json:"message"`
	RejectedValue any    `json:"rejectedValue"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// WriteErrorEnvelope writes an error envelope with the given fields.
func WriteErrorEnvelope(w http.ResponseWriter, r *http.Request, status int, message, details string, validationErrors []ValidationErrorDTO) {
	WriteJSON(w, status, ErrorEnvelope{
		Status:           status,
		Message:          message,
		Details:          details,
		Path:             r.URL.Path,
		Timestamp:        EnvelopeTime(time.Now()),
		ValidationErrors: validationErrors,
	})
}

func fieldErrors(errs []apperrors.ValidationError) []ValidationErrorDTO {
	out := make([]ValidationErrorDTO, 0, len(errs))
	for _, e := range errs {
		out = append(out, ValidationErrorDTO{Field: e.Field, Message: e.Message, RejectedValue: e.RejectedValue})
	}
	return out
}

// WriteError maps an error to its envelope. Storage failures get a generic
// details string so driver internals never reach clients; other error kinds
// carry their own message through.
func WriteError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	var (
		metricsErr    *apperrors.MetricsError
		validationErr *apperrors.RequestValidationError
		constraintErr *apperrors.ConstraintViolationError
		paramErr      *apperrors.ParameterTypeError
	)

	switch {
	case errors.As(err, &metricsErr):
		logger.Error("Metrics processing error", zap.String("path", r.URL.Path), zap.Error(err))
		WriteErrorEnvelope(w, r, http.StatusInternalServerError,
			"Error processing metrics request", metricsErr.Error(), nil)

	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Requested data not found", zap.String("path", r.URL.Path), zap.Error(err))
		WriteErrorEnvelope(w, r, http.StatusNotFound,
			"Requested data not found", err.Error(), nil)

	case errors.Is(err, apperrors.ErrDatabase):
		logger.Error("Database operation failed", zap.String("path", r.URL.Path), zap.Error(err))
		WriteErrorEnvelope(w, r, http.StatusInternalServerError,
			"Database operation failed", "Unable to access or modify data in the database", nil)

	case errors.As(err, &validationErr):
		logger.Warn("Request validation failed", zap.String("path", r.URL.Path), zap.Error(err))
		WriteErrorEnvelope(w, r, http.StatusBadRequest,
			"Validation failed", "Request contains invalid data", fieldErrors(validationErr.Errors))

	case errors.As(err, &constraintErr):
		logger.Warn("Constraint validation failed", zap.String("path", r.URL.Path), zap.Error(err))
		WriteErrorEnvelope(w, r, http.StatusBadRequest,
			"Constraint validation failed", "Request violates business rules", fieldErrors(constraintErr.Errors))

	case errors.As(err, &paramErr):
		logger.Warn("Invalid parameter type", zap.String("path", r.URL.Path), zap.Error(err))
		WriteErrorEnvelope(w, r, http.StatusBadRequest,
			"Invalid parameter type",
			fmt.Sprintf("Parameter '%s' should be of type %s", paramErr.Parameter, paramErr.ExpectedType), nil)

	default:
		logger.Error("Unexpected error", zap.String("path", r.URL.Path), zap.Error(err))
		WriteErrorEnvelope(w, r, http.StatusInternalServerError,
			"Internal server error", "An unexpected error occurred while processing your request", nil)
	}
}

package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sagarc03/driverelay"
)

// ErrorResponse is the relay's normalized JSON error envelope.
type ErrorResponse struct {
	Error   string                   `json:"error"`
	Details []driverelay.ErrorDetail `json:"details"`
}

// WriteError writes a JSON error envelope. A nil detail list is encoded as
// an empty array, never null.
func WriteError(w http.ResponseWriter, code int, summary string, details []driverelay.ErrorDetail) {
	if details == nil {
		details = []driverelay.ErrorDetail{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   summary,
		Details: details,
	}); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// HandleError converts an error from the taxonomy into (status, envelope).
// This is the single place errors cross the HTTP boundary; nothing
// propagates past it and nothing is retried.
func HandleError(w http.ResponseWriter, err error) {
	slog.Error("request error", "error", err)

	var authErr *driverelay.AuthError
	if errors.As(err, &authErr) {
		WriteError(w, http.StatusUnauthorized, "Invalid Credentials", authErr.Details)
		return
	}

	var valErr *driverelay.ValidationError
	if errors.As(err, &valErr) {
		WriteError(w, http.StatusBadRequest, "Bad Request", []driverelay.ErrorDetail{
			{Message: "Missing required field: " + valErr.Field, Reason: "required", Location: valErr.Field, LocationType: "parameter"},
		})
		return
	}

	var nfErr *driverelay.NotFoundError
	if errors.As(err, &nfErr) {
		WriteError(w, http.StatusNotFound, "File Not Found", []driverelay.ErrorDetail{
			{Message: "File not found: " + nfErr.Path, Reason: "notFound", Location: "filePath", LocationType: "parameter"},
		})
		return
	}

	var provErr *driverelay.ProviderError
	if errors.As(err, &provErr) {
		WriteError(w, provErr.Status, provErr.Message, provErr.Details)
		return
	}

	// Everything else is internal: local I/O faults, transport failures.
	message := "An unexpected error occurred"
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	WriteError(w, http.StatusInternalServerError, "Internal Server Error", []driverelay.ErrorDetail{
		{Message: message},
	})
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, code int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(data)
}

package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/nightowldevx/lakbayregion8/internal/domain"
)

// errorResponse is the JSON error envelope of every /api failure.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// notFoundBody returns an errorResponse for a missing resource.
// The caller supplies the message because the handler is the layer that
// knows what was being looked up.
func notFoundBody(message string) errorResponse {
	return errorResponse{Error: errorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an errorResponse for a domain validation failure.
func validationBody(err error) errorResponse {
	return errorResponse{Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

func internalBody() errorResponse {
	return errorResponse{Error: errorDetail{Code: "internal_error", Message: "something went wrong"}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "validation error: province must be one of: ..." → "province must be one of: ..."
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if !errors.Is(err, domain.ErrValidation) {
		return msg
	}
	prefix := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return msg
}

// writeJSON encodes v with goccy/go-json. Encoding errors after the header
// is written can only be dropped.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

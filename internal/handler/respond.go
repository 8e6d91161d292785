package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/testnotes/testnotes-go/internal/model"
	"github.com/testnotes/testnotes-go/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) model.MessageResponse {
	return model.MessageResponse{Success: false, Message: msg}
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrUsernameRequired) ||
		errors.Is(err, service.ErrUsernameTooShort) ||
		errors.Is(err, service.ErrEmailRequired) ||
		errors.Is(err, service.ErrPasswordRequired) ||
		errors.Is(err, service.ErrNotesTooShort)
}

// Conflicts respond 400 like validation failures; the message carries the
// distinction for the client.
func isConflictError(err error) bool {
	return errors.Is(err, service.ErrUsernameTaken) ||
		errors.Is(err, service.ErrEmailTaken)
}

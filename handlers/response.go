package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"portfolio-api/models"
)

const (
	msgServerError     = "Server error"
	msgInvalidBody     = "Invalid request body"
	msgTodoNotFound    = "Todo not found"
	msgProjectNotFound = "Project not found"
)

var errInvalidBody = models.NewValidationError(msgInvalidBody)

func writeJSON(w http.ResponseWriter, logger *log.Logger, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Println("Error encoding response:", err)
	}
}

func writeMessage(w http.ResponseWriter, logger *log.Logger, status int, msg string) {
	writeJSON(w, logger, status, models.MessageResponse{Message: msg})
}

// writeError maps the error taxonomy onto status codes. Anything that is not a
// validation or not-found error is logged and reported as a server error.
func writeError(w http.ResponseWriter, r *http.Request, logger *log.Logger, op string, err error, notFound string) {
	var validation *models.ValidationError
	switch {
	case errors.As(err, &validation):
		writeMessage(w, logger, http.StatusBadRequest, validation.Message)
	case errors.Is(err, models.ErrNotFound):
		writeMessage(w, logger, http.StatusNotFound, notFound)
	default:
		logger.Printf("[%s] Error %s: %v", RequestIDFromContext(r.Context()), op, err)
		writeMessage(w, logger, http.StatusInternalServerError, msgServerError)
	}
}

// decodeBody reads a JSON body into v. An empty body leaves v zeroed so the
// request schema's own validation reports the missing fields.
func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return errInvalidBody
	}
	return nil
}

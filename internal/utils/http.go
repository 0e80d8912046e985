package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header. A value that cannot be encoded
// produces a 500 response and a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, resp, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ErrorBody is the JSON error envelope returned by the sync API.
type ErrorBody struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WriteError writes an [ErrorBody] for statusCode with the given message.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	_, _ = WriteJSON(w, ErrorBody{
		Status:  statusCode,
		Error:   http.StatusText(statusCode),
		Message: message,
	}, statusCode)
}

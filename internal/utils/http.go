package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data and writes it as the body of a local API
// response. Every JSON-producing endpoint (queued transactions, sync status
// and results, queue exports, purge counts) replies through this helper so
// the Content-Type header is always set before the status code is written.
//
// Marshaling is done up front: if it fails the response becomes a plain 500
// and a wrapped error is returned, instead of a half-written body.
//
// Example usage:
//
//	WriteJSON(w, queuedTransaction, http.StatusAccepted)
//	WriteJSON(w, map[string]int64{"removed": removed}, http.StatusOK)
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

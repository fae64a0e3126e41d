package downloader

import (
	"encoding/json"
	"errors"
	"net/http"
)

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorFrom(w http.ResponseWriter, err error) {
	writeError(w, statusFor(err), err.Error())
}

// statusFor maps an error to the HTTP status it should surface with. URL and
// availability problems are the caller's fault; everything else is upstream.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidURL),
		errors.Is(err, ErrNoSuitableFormat),
		errors.Is(err, ErrVideoUnavailable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

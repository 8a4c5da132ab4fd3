package utils

import (
	"encoding/json"
	"net/http"
)

func ResponseWithJson(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func ResponseWithError(w http.ResponseWriter, code int, message string) {
	ResponseWithJson(w, code, map[string]string{"message": message})
}

// ResponseWithErrorDetail includes the underlying error text alongside the
// message, matching the shape used for store failures.
func ResponseWithErrorDetail(w http.ResponseWriter, code int, message string, err error) {
	ResponseWithJson(w, code, map[string]string{"message": message, "error": err.Error()})
}

// Package handler maps HTTP requests onto the user and group services and
// serializes the results as JSON.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/studyhall/studyhall/internal/service"
)

// Problem is an RFC 9457 style problem document returned on every failure.
// Field-level failures (validation, subject conflict) carry an errors list.
type Problem struct {
	Title  string               `json:"title"`
	Status int                  `json:"status"`
	Detail string               `json:"detail,omitempty"`
	Errors []service.FieldError `json:"errors,omitempty"`
}

// IDResponse carries a newly assigned entity id.
type IDResponse struct {
	ID int64 `json:"id"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteProblem writes a problem document with its status code.
func WriteProblem(w http.ResponseWriter, p Problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// DecodeJSON decodes a JSON request body into the given struct.
func DecodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

package server

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/resumekit/pkg/requestid"
)

// problem is the JSON body of every error response.
type problem struct {
	Stage     string `json:"stage,omitempty"`
	Field     string `json:"field,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func writeProblem(w http.ResponseWriter, r *http.Request, status int, p problem) {
	p.RequestID = requestid.FromContext(r.Context())
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(p)
}

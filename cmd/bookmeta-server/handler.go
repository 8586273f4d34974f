package main

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/booklab-kr/bookmeta/pkg/batch"
)

// resolveRequest is the inbound JSON body.
type resolveRequest struct {
	ISBNs       []string `json:"isbns"`
	Concurrency int      `json:"concurrency"`
}

// resolveResponse is the success envelope.
type resolveResponse struct {
	OK      bool          `json:"ok"`
	Results []batch.Row   `json:"results"`
	Summary batch.Summary `json:"summary"`
}

// errorResponse is the failure envelope.
type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// resolveHandler serves POST /api/v1/resolve. Method checks, request
// shape validation, and the envelope happen here; a malformed request is
// rejected before any row processing begins.
func resolveHandler(service *batch.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applyCORS(w)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req resolveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "request body must be JSON")
			return
		}
		if len(req.ISBNs) == 0 {
			writeError(w, http.StatusBadRequest, "isbns must be a non-empty array")
			return
		}

		result := service.ResolveBatch(r.Context(), req.ISBNs, req.Concurrency)

		writeJSON(w, http.StatusOK, resolveResponse{
			OK:      true,
			Results: result.Rows,
			Summary: result.Summary,
		})
	}
}

// applyCORS sets permissive CORS headers uniformly on every response,
// including preflight.
func applyCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{OK: false, Error: message})
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/universal-workshop/syncagent/internal/logger"
	"github.com/universal-workshop/syncagent/models"
)

func (h *Handler) recordEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RPCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.recordEvent").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record, err := h.services.Records.RecordEvent(r.Context(), req.Method, req.Arguments)
	if err != nil {
		log.Err(err).Str("func", "*Handler.recordEvent").Msg("error capturing event")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

func (h *Handler) recordStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	record, err := h.services.Records.GetStatus(r.Context(), id)
	if err != nil {
		log.Err(err).Str("record_id", id).Str("func", "*Handler.recordStatus").Msg("error getting record status")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/universal-workshop/syncagent/internal/logger"
)

func (h *Handler) deadLetters(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	records, err := h.services.Records.DeadLetters(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.deadLetters").Msg("error listing dead-lettered records")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) requeueDeadLetter(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	if err := h.services.Records.RequeueDeadLetter(r.Context(), id); err != nil {
		log.Err(err).Str("record_id", id).Str("func", "*Handler.requeueDeadLetter").Msg("error requeueing record")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

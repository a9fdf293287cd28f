package http

import (
	"net/http"

	"github.com/universal-workshop/syncagent/internal/logger"
)

func (h *Handler) queueStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	stats, err := h.services.Records.Stats(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.queueStats").Msg("error counting queue records")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) syncNow(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	result, err := h.services.Records.ForceSync(r.Context())
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.syncNow").Msg("forced sync did not run")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

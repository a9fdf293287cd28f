package http

import (
	"encoding/json"
	"net/http"

	"github.com/universal-workshop/syncagent/internal/logger"
)

// connectivitySignal is the body of POST /api/connectivity: the host shell
// pushing its network events (browser online/offline, NetworkManager, etc).
type connectivitySignal struct {
	Online bool `json:"online"`
}

func (h *Handler) connectivityState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.monitor.State())
}

func (h *Handler) setConnectivity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var signal connectivitySignal
	if err := json.NewDecoder(r.Body).Decode(&signal); err != nil {
		log.Err(err).Str("func", "*Handler.setConnectivity").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	h.monitor.SetOnline(signal.Online)

	writeJSON(w, http.StatusOK, h.monitor.State())
}

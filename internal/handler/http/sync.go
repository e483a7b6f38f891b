package http

import (
	"net/http"

	"github.com/MKhiriev/go-till-keeper/internal/logger"
	"github.com/MKhiriev/go-till-keeper/internal/utils"
)

// syncStatus reports a point-in-time snapshot of queue health: connectivity,
// pending count, storage footprint, last sync time and the last pass result.
func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	status, err := h.services.SyncService.Status(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncStatus").Msg("error assembling sync status")
		http.Error(w, "error assembling sync status", statusFromError(err))
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

// triggerSync runs a manual sync pass. Responds 409 when a pass is already in
// flight and 503 when the remote store is offline; neither touches the queue.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	result, err := h.services.SyncService.Sync(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.triggerSync").Msg("sync pass rejected")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-till-keeper/internal/logger"
	"github.com/MKhiriev/go-till-keeper/internal/utils"
	"github.com/MKhiriev/go-till-keeper/models"
)

func (h *Handler) exportQueue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	export, err := h.services.SyncService.Export(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportQueue").Msg("error exporting queue")
		http.Error(w, "error exporting queue", statusFromError(err))
		return
	}

	utils.WriteJSON(w, export, http.StatusOK)
}

func (h *Handler) importQueue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var export models.QueueExport
	if err := json.NewDecoder(r.Body).Decode(&export); err != nil {
		log.Err(err).Str("func", "*Handler.importQueue").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.SyncService.Import(ctx, &export); err != nil {
		log.Err(err).Str("func", "*Handler.importQueue").Msg("error importing queue")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) purgeQueue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	removed, err := h.services.SyncService.Purge(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.purgeQueue").Msg("error purging synced transactions")
		http.Error(w, "error purging synced transactions", statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]int64{"removed": removed}, http.StatusOK)
}

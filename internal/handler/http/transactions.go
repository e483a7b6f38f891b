package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-till-keeper/internal/logger"
	"github.com/MKhiriev/go-till-keeper/internal/utils"
	"github.com/MKhiriev/go-till-keeper/models"
)

// enqueueTransaction records a new offline transaction. The transaction is
// accepted as soon as it is durably queued; reconciliation happens later,
// hence 202 rather than 201.
func (h *Handler) enqueueTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var txn models.OfflineTransaction
	if err := json.NewDecoder(r.Body).Decode(&txn); err != nil {
		log.Err(err).Str("func", "*Handler.enqueueTransaction").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	queued, err := h.services.SyncService.Enqueue(ctx, &txn)
	if err != nil {
		log.Err(err).Str("func", "*Handler.enqueueTransaction").Msg("error queueing transaction")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, queued, http.StatusAccepted)
}

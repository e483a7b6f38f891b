package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-till-keeper/internal/service"
	"github.com/MKhiriev/go-till-keeper/internal/store"
	"github.com/MKhiriev/go-till-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrOffline:        http.StatusServiceUnavailable,
	service.ErrSyncInFlight:   http.StatusConflict,
	service.ErrNilTransaction: http.StatusBadRequest,

	models.ErrEmptyTransactionID:   http.StatusBadRequest,
	models.ErrUnknownType:          http.StatusBadRequest,
	models.ErrInvalidStatus:        http.StatusBadRequest,
	models.ErrPayloadTypeMismatch:  http.StatusBadRequest,
	models.ErrNegativeRetryCount:   http.StatusBadRequest,
	models.ErrZeroCreatedTimestamp: http.StatusBadRequest,
	models.ErrEmptySaleID:          http.StatusBadRequest,
	models.ErrNoSaleItems:          http.StatusBadRequest,
	models.ErrBadItemQty:           http.StatusBadRequest,
	models.ErrEmptyProductID:       http.StatusBadRequest,

	store.ErrTransactionNotFound:      http.StatusNotFound,
	store.ErrIllegalStatusTransition:  http.StatusConflict,
	store.ErrCorruptExport:            http.StatusBadRequest,
	store.ErrUnsupportedExportVersion: http.StatusBadRequest,
	store.ErrTransactionNotSaved:      http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

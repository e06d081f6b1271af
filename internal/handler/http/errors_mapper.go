package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/exercise-tracker/internal/app"
	"github.com/MKhiriev/exercise-tracker/internal/logger"
	"github.com/MKhiriev/exercise-tracker/internal/service"
	"github.com/MKhiriev/exercise-tracker/internal/store"
	"github.com/MKhiriev/exercise-tracker/internal/utils"
	"github.com/MKhiriev/exercise-tracker/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	ErrInvalidRequestBody:          http.StatusBadRequest,

	store.ErrUserNotFound: http.StatusNotFound,

	store.ErrStoreUnavailable: http.StatusServiceUnavailable,
	context.DeadlineExceeded:  http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrEncodingLog:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage returns the text exposed to clients. Validation failures are
// explained; internal details are not.
func errorMessage(err error, status int) string {
	switch status {
	case http.StatusBadRequest:
		return err.Error()
	case http.StatusNotFound:
		return app.MsgUserNotFound
	case http.StatusServiceUnavailable:
		return app.MsgStoreUnavailable
	default:
		return app.MsgInternalServerError
	}
}

// writeError logs the failure once and writes the error body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status := statusFromError(err)

	logger.FromRequest(r).Err(err).
		Str("func", fn).
		Int("status", status).
		Msg("request failed")

	if h.legacyErrors {
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgDatabaseError}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: errorMessage(err, status)}, status)
}

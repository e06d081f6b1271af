package http

import (
	"net/http"

	"github.com/MKhiriev/exercise-tracker/internal/app"
	"github.com/MKhiriev/exercise-tracker/internal/logger"
	"github.com/MKhiriev/exercise-tracker/internal/utils"
)

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.services.AdminService.Reset(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.reset")
		return
	}

	logger.FromRequest(r).Info().Int64("deleted", deleted).Msg("reset done")
	utils.WriteText(w, app.MsgDatabaseCleared, http.StatusOK)
}

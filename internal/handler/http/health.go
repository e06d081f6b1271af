package http

import (
	"net/http"

	"github.com/MKhiriev/exercise-tracker/internal/app"
	"github.com/MKhiriev/exercise-tracker/internal/logger"
	"github.com/MKhiriev/exercise-tracker/internal/utils"
	"github.com/MKhiriev/exercise-tracker/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	version := h.services.AppInfoService.GetAppVersion(ctx)

	if err := h.services.AppInfoService.CheckHealth(ctx); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("store is not reachable")
		utils.WriteJSON(w, models.HealthResponse{Status: app.MsgStatusUnavailable, Version: version}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: app.MsgStatusOK, Version: version}, http.StatusOK)
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/exercise-tracker/internal/utils"
	"github.com/MKhiriev/exercise-tracker/models"
)

// userIDParam is the path parameter naming the user. The id is never read
// from the body.
const userIDParam = "_id"

func (h *Handler) addExercise(w http.ResponseWriter, r *http.Request) {
	values, err := requestValues(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.addExercise")
		return
	}

	record, err := h.services.ExerciseService.AddExercise(r.Context(), models.AddExerciseRequest{
		UserID:      chi.URLParam(r, userIDParam),
		Description: values["description"],
		Duration:    values["duration"],
		Date:        values["date"],
	})
	if err != nil {
		h.writeError(w, r, err, "*Handler.addExercise")
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) getLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	exerciseLog, err := h.services.ExerciseService.GetLog(r.Context(), models.LogRequest{
		UserID: chi.URLParam(r, userIDParam),
		From:   query.Get("from"),
		To:     query.Get("to"),
		Limit:  query.Get("limit"),
	})
	if err != nil {
		h.writeError(w, r, err, "*Handler.getLogs")
		return
	}

	if exerciseLog.Log == nil {
		exerciseLog.Log = []models.Exercise{}
	}

	utils.WriteJSON(w, exerciseLog, http.StatusOK)
}

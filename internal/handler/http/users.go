package http

import (
	"net/http"

	"github.com/MKhiriev/exercise-tracker/internal/utils"
	"github.com/MKhiriev/exercise-tracker/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	values, err := requestValues(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createUser")
		return
	}

	user, err := h.services.UserService.CreateOrFetchUser(r.Context(), models.CreateUserRequest{
		Username: values["username"],
	})
	if err != nil {
		h.writeError(w, r, err, "*Handler.createUser")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.listUsers")
		return
	}

	if users == nil {
		users = []models.UserSummary{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

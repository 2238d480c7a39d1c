package handler

import (
	"errors"
	"net/http"

	"github.com/msomdec/little-lemon/internal/domain"
	"github.com/msomdec/little-lemon/internal/service"
)

// ProfileHandler handles onboarding, profile and logout requests.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// HandleRegister stores the onboarding form. Any missing field is rejected
// with the registration failure message and nothing is written.
func (h *ProfileHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, service.MsgRegistrationFailed)
		return
	}

	profile, err := h.profiles.Register(r.Context(), req.FirstName, req.LastName, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, service.MsgRegistrationFailed)
			return
		}
		writeServiceError(w, r, "register", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": service.MsgRegistrationSucceeded,
		"profile": toProfileDTO(profile),
	})
}

// HandleProfile returns the stored profile.
func (h *ProfileHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.Profile(r.Context())
	if err != nil {
		writeServiceError(w, r, "load profile", err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// HandleLogout clears the stored profile.
func (h *ProfileHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.profiles.Logout(r.Context()); err != nil {
		writeServiceError(w, r, "logout", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleStart tells the client which screen to open first.
func (h *ProfileHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	dest, err := h.profiles.StartDestination(r.Context())
	if err != nil {
		writeServiceError(w, r, "start destination", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"destination": dest})
}

package http

import (
	"net/http"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		writeServiceError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		writeServiceError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	log.Info().Int64("user_id", registeredUser.ID).Msg("user registered")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: registeredUser}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeServiceError(w, r, err, app.MsgLoginFailed)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeServiceError(w, r, err, app.MsgLoginFailed)
		return
	}

	log.Debug().Int64("user_id", foundUser.ID).Msg("user successfully logged in")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: foundUser}, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.Profile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, app.MsgFailedToGetProfile)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

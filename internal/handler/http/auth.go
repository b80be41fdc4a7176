// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/utils"
	"github.com/MKhiriev/go-sweet-shop/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := decodeBody(r, &credentials); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.writeAuthResponse(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := decodeBody(r, &credentials); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", user.UserID).Msg("user successfully logged in")
	h.writeAuthResponse(w, r, user, http.StatusOK)
}

// me returns the account the bearer token belongs to.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// writeAuthResponse issues a token for user and sends it both in the body
// and in the Authorization header.
func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Authorization", utils.BearerHeader(token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{
		Token: token.SignedString,
		User:  user,
	}, status)
}

package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/service"
)

const authCookieName = "authToken"

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Register(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, user, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, accessToken, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    accessToken,
		Path:     "/",
		Expires:  time.Now().Add(h.Cfg.AccessTokenDuration),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	WriteSuccess(w, map[string]interface{}{
		"user":        user,
		"accessToken": accessToken,
	}, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	WriteSuccess(w, map[string]string{"message": "Logged out"}, http.StatusOK)
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userUUID, ok := r.Context().Value("userUUID").(string)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	user, err := h.UserRepo.GetUserByUUID(r.Context(), userUUID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, user, http.StatusOK)
}

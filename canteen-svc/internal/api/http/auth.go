package httpapi

import (
	"net/http"

	"canteen/canteen-svc/internal/domain"
	"canteen/canteen-svc/internal/service"
	"canteen/httpx"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	user, err := h.Auth.Register(r.Context(), in)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, user)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	var in service.RegisterInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	user, err := h.Auth.CreateAccount(r.Context(), in)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, user)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if err := httpx.DecodeJSON(r, &creds); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	session, err := h.Auth.SignIn(r.Context(), creds)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, session)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	if err := h.Auth.SignOut(r.Context(), bearerToken(r)); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request, user *domain.User) {
	httpx.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var in service.ProfileInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	updated, err := h.Auth.UpdateProfile(r.Context(), user.ID, in)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	users, err := h.Auth.ListUsers(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

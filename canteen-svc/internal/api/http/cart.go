package httpapi

import (
	"net/http"

	"canteen/canteen-svc/internal/domain"
	"canteen/httpx"

	"github.com/gorilla/mux"
)

type cartLine struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request, user *domain.User) {
	cart, err := h.Carts.View(r.Context(), user.ID)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cart)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var line cartLine
	if err := httpx.DecodeJSON(r, &line); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	if line.Quantity == 0 {
		line.Quantity = 1
	}
	cart, err := h.Carts.AddItem(r.Context(), user.ID, line.MenuItemID, line.Quantity)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cart)
}

func (h *Handler) setCartItem(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var line cartLine
	if err := httpx.DecodeJSON(r, &line); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	cart, err := h.Carts.SetQuantity(r.Context(), user.ID, mux.Vars(r)["menuItemId"], line.Quantity)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cart)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request, user *domain.User) {
	cart, err := h.Carts.RemoveItem(r.Context(), user.ID, mux.Vars(r)["menuItemId"])
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request, user *domain.User) {
	if err := h.Carts.Clear(r.Context(), user.ID); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

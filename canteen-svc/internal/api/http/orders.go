package httpapi

import (
	"net/http"

	"canteen/apperr"
	"canteen/canteen-svc/internal/domain"
	"canteen/canteen-svc/internal/service"
	"canteen/httpx"

	"github.com/gorilla/mux"
)

var errOrderHidden = apperr.NotFoundErr("Order not found.")

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var in service.CheckoutInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	result, err := h.Orders.Checkout(r.Context(), user.ID, in)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, result)
}

// orderFilter scopes order lists: staff see every order, others only their own.
func orderFilter(r *http.Request, user *domain.User) domain.OrderFilter {
	filter := domain.OrderFilter{Status: r.URL.Query().Get("status")}
	if user.IsStaff() {
		filter.UserID = r.URL.Query().Get("userId")
	} else {
		filter.UserID = user.ID
	}
	return filter
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request, user *domain.User) {
	orders, err := h.Orders.List(r.Context(), orderFilter(r, user))
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, orders)
}

// visibleOrder loads an order the user may read. Other users' orders look missing.
func (h *Handler) visibleOrder(r *http.Request, user *domain.User, orderID string) (*domain.Order, error) {
	order, err := h.Orders.Get(r.Context(), orderID)
	if err != nil {
		return nil, err
	}
	if !canSee(user, order.UserID) {
		return nil, errOrderHidden
	}
	return order, nil
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request, user *domain.User) {
	order, err := h.visibleOrder(r, user, mux.Vars(r)["id"])
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	var body struct {
		Status string `json:"status"`
	}
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	order, err := h.Orders.UpdateStatus(r.Context(), mux.Vars(r)["id"], body.Status)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, order)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	if err := h.Orders.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request, user *domain.User) {
	orderID := mux.Vars(r)["id"]
	if _, err := h.visibleOrder(r, user, orderID); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}

	qr, err := h.Orders.GetQRCode(r.Context(), orderID)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) getOrderReceipt(w http.ResponseWriter, r *http.Request, user *domain.User) {
	orderID := mux.Vars(r)["id"]
	if _, err := h.visibleOrder(r, user, orderID); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	receipt, err := h.Receipts.GetByOrder(r.Context(), orderID)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, receipt)
}

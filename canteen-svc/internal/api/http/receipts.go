package httpapi

import (
	"net/http"

	"canteen/canteen-svc/internal/domain"
	"canteen/canteen-svc/internal/service"
	"canteen/httpx"

	"github.com/gorilla/mux"
)

func (h *Handler) getReceipts(w http.ResponseWriter, r *http.Request, user *domain.User) {
	receipts, err := h.Receipts.ListForUser(r.Context(), user.ID)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, receipts)
}

// visibleReceipt loads receipt details after checking the underlying order.
func (h *Handler) visibleReceipt(r *http.Request, user *domain.User, receiptID string) (*domain.ReceiptDetails, error) {
	details, err := h.Receipts.Details(r.Context(), receiptID)
	if err != nil {
		return nil, err
	}
	if _, err := h.visibleOrder(r, user, details.Receipt.OrderID); err != nil {
		return nil, err
	}
	return details, nil
}

func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request, user *domain.User) {
	details, err := h.visibleReceipt(r, user, mux.Vars(r)["id"])
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) requestRefund(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var in service.RefundInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	refund, err := h.Refunds.Request(r.Context(), user.ID, in)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, refund)
}

func (h *Handler) getRefunds(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	refunds, err := h.Refunds.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, refunds)
}

func (h *Handler) getRefund(w http.ResponseWriter, r *http.Request, user *domain.User) {
	refund, err := h.Refunds.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	if _, err := h.visibleOrder(r, user, refund.OrderID); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, refund)
}

func (h *Handler) reviewRefund(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var decision service.Decision
	if err := httpx.DecodeJSON(r, &decision); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	refund, err := h.Refunds.Review(r.Context(), mux.Vars(r)["id"], user.ID, decision)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, refund)
}

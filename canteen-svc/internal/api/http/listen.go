package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"canteen/apperr"
	"canteen/canteen-svc/internal/domain"
	"canteen/httpx"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// ChangeSubscriber delivers change notifications until ctx is done.
type ChangeSubscriber interface {
	Subscribe(ctx context.Context, channels ...string) (<-chan domain.Change, func() error, error)
}

type snapshotFunc func(ctx context.Context) (interface{}, error)

// stream serves a snapshot listener over server-sent events. The first event is
// the current snapshot; every matching change re-reads and re-sends it. The
// stream ends when the client goes away or the snapshot is gone.
func (h *Handler) stream(w http.ResponseWriter, r *http.Request, channels []string, match func(domain.Change) bool, snapshot snapshotFunc) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		httpx.WriteError(w, r, h.Log, fmt.Errorf("streaming unsupported by %T", w))
		return
	}

	ctx := r.Context()
	// Subscribe before the first read so no change falls between the two.
	changes, closeSub, err := h.Changes.Subscribe(ctx, channels...)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	defer closeSub()

	first, err := snapshot(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	logger := h.Log.WithFields(logrus.Fields{"request_id": httpx.RequestIDFrom(ctx), "path": r.URL.Path})
	if err := writeEvent(w, "snapshot", first); err != nil {
		logger.WithError(err).Warn("failed to write snapshot")
		return
	}
	flusher.Flush()

	keepAlive := h.KeepAlive
	if keepAlive <= 0 {
		keepAlive = 25 * time.Second
	}
	ticker := time.NewTicker(keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		case change, ok := <-changes:
			if !ok {
				return
			}
			if !match(change) {
				continue
			}
			next, err := snapshot(ctx)
			if err != nil {
				writeEvent(w, "error", httpx.ErrorBody{Error: apperr.PublicMessage(err)})
				flusher.Flush()
				if apperr.KindOf(err) == apperr.NotFound {
					return
				}
				logger.WithError(err).Warn("failed to refresh snapshot")
				continue
			}
			if err := writeEvent(w, "snapshot", next); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, event string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}

func (h *Handler) listenOrder(w http.ResponseWriter, r *http.Request, user *domain.User) {
	orderID := mux.Vars(r)["id"]
	h.stream(w, r,
		[]string{domain.ChannelOrders},
		func(c domain.Change) bool { return c.ID == orderID },
		func(ctx context.Context) (interface{}, error) {
			return h.visibleOrder(r.WithContext(ctx), user, orderID)
		},
	)
}

func (h *Handler) listenOrders(w http.ResponseWriter, r *http.Request, user *domain.User) {
	filter := orderFilter(r, user)
	h.stream(w, r,
		[]string{domain.ChannelOrders},
		func(domain.Change) bool { return true },
		func(ctx context.Context) (interface{}, error) {
			return h.Orders.List(ctx, filter)
		},
	)
}

// listenReceipt joins a receipt with its refund and re-sends on a change to either.
func (h *Handler) listenReceipt(w http.ResponseWriter, r *http.Request, user *domain.User) {
	receiptID := mux.Vars(r)["id"]
	var orderID, refundID string

	h.stream(w, r,
		[]string{domain.ChannelOrders, domain.ChannelRefunds},
		func(c domain.Change) bool {
			switch c.Channel {
			case domain.ChannelOrders:
				return c.ID == orderID
			case domain.ChannelRefunds:
				return refundID != "" && c.ID == refundID
			}
			return false
		},
		func(ctx context.Context) (interface{}, error) {
			details, err := h.visibleReceipt(r.WithContext(ctx), user, receiptID)
			if err != nil {
				return nil, err
			}
			orderID = details.Receipt.OrderID
			refundID = details.Receipt.RefundID
			return details, nil
		},
	)
}

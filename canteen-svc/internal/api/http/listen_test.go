package httpapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"canteen/canteen-svc/internal/domain"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakeSubscriber struct {
	changes  chan domain.Change
	channels []string
	closed   bool
}

func (f *fakeSubscriber) Subscribe(_ context.Context, channels ...string) (<-chan domain.Change, func() error, error) {
	f.channels = channels
	return f.changes, func() error {
		f.closed = true
		return nil
	}, nil
}

// startStream runs a listener request in the background; the returned func
// cancels it and waits for the handler to return.
func startStream(t *testing.T, router http.Handler, path, token string) (*httptest.ResponseRecorder, func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	req := request("GET", path, token, "").WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		router.ServeHTTP(w, req)
		close(done)
	}()

	return w, func() {
		cancel()
		<-done
	}
}

func TestListenOrderStreamsSnapshots(t *testing.T) {
	sub := &fakeSubscriber{changes: make(chan domain.Change)}
	h, m := newTestHandler(t, sub)
	m.orders.On("Get", mock.Anything, "o1").
		Return(&domain.Order{OrderID: "o1", UserID: "u1", Status: domain.StatusPending}, nil).Once()
	m.orders.On("Get", mock.Anything, "o1").
		Return(&domain.Order{OrderID: "o1", UserID: "u1", Status: domain.StatusReadyToPickup}, nil).Once()

	router := mux.NewRouter()
	h.RegisterRoutes(router)
	w, stop := startStream(t, router, "/api/orders/o1/listen", "customer-token")

	sub.changes <- domain.Change{Channel: domain.ChannelOrders, ID: "other"}
	sub.changes <- domain.Change{Channel: domain.ChannelOrders, ID: "o1"}
	// the next receive only happens once the previous change was handled
	sub.changes <- domain.Change{Channel: domain.ChannelOrders, ID: "other"}
	stop()

	body := w.Body.String()
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, 2, strings.Count(body, "event: snapshot"))
	assert.Contains(t, body, domain.StatusReadyToPickup)
	assert.Equal(t, []string{domain.ChannelOrders}, sub.channels)
	assert.True(t, sub.closed)
}

func TestListenOrderHiddenFromOtherUsers(t *testing.T) {
	sub := &fakeSubscriber{changes: make(chan domain.Change)}
	h, m := newTestHandler(t, sub)
	m.orders.On("Get", mock.Anything, "o1").Return(&domain.Order{OrderID: "o1", UserID: "u1"}, nil).Once()

	w := serve(h, request("GET", "/api/orders/o1/listen", "stranger-token", ""))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, sub.closed)
}

func TestListenReceiptJoinsRefund(t *testing.T) {
	sub := &fakeSubscriber{changes: make(chan domain.Change)}
	h, m := newTestHandler(t, sub)

	plain := &domain.ReceiptDetails{Receipt: domain.Receipt{ReceiptID: "rc1", OrderID: "o1"}}
	requested := &domain.ReceiptDetails{
		Receipt: domain.Receipt{ReceiptID: "rc1", OrderID: "o1", RefundID: "r1"},
		Refund:  &domain.RefundRequest{RefundID: "r1", Status: domain.RefundPending},
	}
	approved := &domain.ReceiptDetails{
		Receipt: domain.Receipt{ReceiptID: "rc1", OrderID: "o1", RefundID: "r1"},
		Refund:  &domain.RefundRequest{RefundID: "r1", Status: domain.RefundApproved},
	}
	m.receipts.On("Details", mock.Anything, "rc1").Return(plain, nil).Once()
	m.receipts.On("Details", mock.Anything, "rc1").Return(requested, nil).Once()
	m.receipts.On("Details", mock.Anything, "rc1").Return(approved, nil).Once()
	m.orders.On("Get", mock.Anything, "o1").Return(&domain.Order{OrderID: "o1", UserID: "u1"}, nil).Times(3)

	router := mux.NewRouter()
	h.RegisterRoutes(router)
	w, stop := startStream(t, router, "/api/receipts/rc1/listen?token=customer-token", "")

	sub.changes <- domain.Change{Channel: domain.ChannelRefunds, ID: "r1"} // not linked yet
	sub.changes <- domain.Change{Channel: domain.ChannelOrders, ID: "o1"}
	sub.changes <- domain.Change{Channel: domain.ChannelRefunds, ID: "r1"}
	sub.changes <- domain.Change{Channel: domain.ChannelOrders, ID: "o2"}
	stop()

	body := w.Body.String()
	assert.Equal(t, 3, strings.Count(body, "event: snapshot"))
	assert.Contains(t, body, `"status":"approved"`)
	assert.ElementsMatch(t, []string{domain.ChannelOrders, domain.ChannelRefunds}, sub.channels)
}

func TestListenOrdersBoardForStaff(t *testing.T) {
	sub := &fakeSubscriber{changes: make(chan domain.Change)}
	h, m := newTestHandler(t, sub)
	filter := domain.OrderFilter{Status: domain.StatusPending}
	m.orders.On("List", mock.Anything, filter).Return([]domain.Order{{OrderID: "o1"}}, nil).Once()
	m.orders.On("List", mock.Anything, filter).Return([]domain.Order{{OrderID: "o1"}, {OrderID: "o2"}}, nil).Once()

	router := mux.NewRouter()
	h.RegisterRoutes(router)
	w, stop := startStream(t, router, "/api/orders/listen?status=PENDING", "staff-token")

	sub.changes <- domain.Change{Channel: domain.ChannelOrders, ID: "o2"}
	sub.changes <- domain.Change{Channel: domain.ChannelOrders, ID: "o2"}
	stop()

	// the second change may or may not have been handled before cancel
	assert.GreaterOrEqual(t, strings.Count(w.Body.String(), "event: snapshot"), 2)
}

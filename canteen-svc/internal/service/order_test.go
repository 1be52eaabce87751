package service_test

import (
	"context"
	"fmt"
	"testing"

	"canteen/apperr"
	"canteen/canteen-svc/internal/domain"
	"canteen/canteen-svc/internal/mocks"
	"canteen/canteen-svc/internal/service"
	"canteen/events"
	"canteen/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderMocks struct {
	repo     *mocks.OrderRepository
	menu     *mocks.MenuRepository
	carts    *mocks.CartStore
	qr       *mocks.QRGenerator
	events   *mocks.EventPublisher
	notifier *mocks.ChangeNotifier
}

func newOrderService(t *testing.T) (*service.OrderService, orderMocks) {
	m := orderMocks{
		repo:     mocks.NewOrderRepository(t),
		menu:     mocks.NewMenuRepository(t),
		carts:    mocks.NewCartStore(t),
		qr:       mocks.NewQRGenerator(t),
		events:   mocks.NewEventPublisher(t),
		notifier: mocks.NewChangeNotifier(t),
	}
	svc := service.NewOrderService(m.repo, m.menu, m.carts, m.qr, m.events, m.notifier, logger.Discard())
	return svc, m
}

var checkoutMenu = map[string]domain.MenuItem{
	"tea":  {ID: "tea", Name: "Tea", Price: 1.10, RemainQuantity: 10},
	"rice": {ID: "rice", Name: "Rice", Price: 4.50, RemainQuantity: 1},
}

func TestOrderService_CheckoutFromCart(t *testing.T) {
	ctx := context.Background()
	svc, m := newOrderService(t)

	m.carts.On("Items", ctx, "u1").Return(map[string]int{"tea": 3, "rice": 1}, nil).Once()
	m.menu.On("GetMenuItems", ctx, []string{"rice", "tea"}).Return(checkoutMenu, nil).Once()
	m.repo.On("CreateOrder", ctx,
		mock.MatchedBy(func(o *domain.Order) bool {
			return o.UserID == "u1" && o.Status == domain.StatusPending && o.TotalAmount == 7.80 && len(o.Items) == 2
		}),
		mock.MatchedBy(func(r *domain.Receipt) bool {
			return r.PaymentMethod == domain.PaymentCash && r.PayAmount == 7.80 && r.ReceiptID != ""
		}),
	).Return(nil).Once()
	m.carts.On("Clear", ctx, "u1").Return(nil).Once()
	m.qr.On("Generate", mock.AnythingOfType("string")).Return([]byte("png"), nil).Once()
	m.repo.On("SaveQRCode", ctx, mock.AnythingOfType("string"), []byte("png")).Return(nil).Once()
	m.events.On("PublishOrderEvent", ctx, mock.MatchedBy(func(msg events.OrderMessage) bool {
		return msg.Type == events.OrderCreated && len(msg.Items) == 2 && msg.TotalAmount == 7.80
	})).Return(nil).Once()
	m.notifier.On("Publish", ctx, domain.ChannelOrders, mock.AnythingOfType("string")).Return(nil).Once()

	result, err := svc.Checkout(ctx, "u1", service.CheckoutInput{PaymentMethod: domain.PaymentCash})

	require.NoError(t, err)
	assert.Equal(t, result.Order.OrderID, result.Receipt.OrderID)
	assert.Equal(t, fmt.Sprintf("/api/orders/%s/qrcode", result.Order.OrderID), result.Order.QRCode)
	assert.Equal(t, "Rice", result.Order.Items[0].Name)
}

func TestOrderService_CheckoutExplicitItemsKeepsCart(t *testing.T) {
	ctx := context.Background()
	svc, m := newOrderService(t)

	m.menu.On("GetMenuItems", ctx, []string{"tea"}).Return(checkoutMenu, nil).Once()
	m.repo.On("CreateOrder", ctx, mock.MatchedBy(func(o *domain.Order) bool {
		return o.Items[0].Quantity == 3 && o.TotalAmount == 3.30
	}), mock.Anything).Return(nil).Once()
	m.qr.On("Generate", mock.Anything).Return(nil, assert.AnError).Once()
	m.events.On("PublishOrderEvent", ctx, mock.Anything).Return(assert.AnError).Once()
	m.notifier.On("Publish", ctx, domain.ChannelOrders, mock.Anything).Return(assert.AnError).Once()

	input := service.CheckoutInput{
		PaymentMethod: domain.PaymentCard,
		Card:          &service.CardDetails{Number: "4111111111111111", Expiry: "12/99", CVV: "123"},
		Items:         []service.CheckoutLine{{MenuItemID: "tea", Quantity: 1}, {MenuItemID: "tea", Quantity: 2}},
	}
	result, err := svc.Checkout(ctx, "u1", input)

	require.NoError(t, err, "side-effect failures must not fail checkout")
	assert.Equal(t, 3.30, result.Receipt.PayAmount)
}

func TestOrderService_CheckoutRejects(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		input      service.CheckoutInput
		setup      func(m orderMocks)
		wantKind   apperr.Kind
		wantErr    error
		wantFields []string
	}{
		{
			name:       "unknown payment method",
			input:      service.CheckoutInput{PaymentMethod: "cheque"},
			setup:      func(orderMocks) {},
			wantKind:   apperr.Invalid,
			wantFields: []string{"paymentMethod"},
		},
		{
			name:       "card without details",
			input:      service.CheckoutInput{PaymentMethod: domain.PaymentCard},
			setup:      func(orderMocks) {},
			wantKind:   apperr.Invalid,
			wantFields: []string{"card"},
		},
		{
			name: "bad card details",
			input: service.CheckoutInput{
				PaymentMethod: domain.PaymentCard,
				Card:          &service.CardDetails{Number: "4111111111111112", Expiry: "01/20", CVV: "12"},
			},
			setup:      func(orderMocks) {},
			wantKind:   apperr.Invalid,
			wantFields: []string{"card.number", "card.expiry", "card.cvv"},
		},
		{
			name:  "empty cart",
			input: service.CheckoutInput{PaymentMethod: domain.PaymentEWallet},
			setup: func(m orderMocks) {
				m.carts.On("Items", ctx, "u1").Return(map[string]int{}, nil).Once()
			},
			wantKind: apperr.Invalid,
			wantErr:  service.ErrEmptyCart,
		},
		{
			name:  "unknown item",
			input: service.CheckoutInput{PaymentMethod: domain.PaymentCash, Items: []service.CheckoutLine{{MenuItemID: "ghost", Quantity: 1}}},
			setup: func(m orderMocks) {
				m.menu.On("GetMenuItems", ctx, []string{"ghost"}).Return(map[string]domain.MenuItem{}, nil).Once()
			},
			wantKind: apperr.Invalid,
			wantErr:  service.ErrUnknownMenuItem,
		},
		{
			name:  "not enough stock",
			input: service.CheckoutInput{PaymentMethod: domain.PaymentCash, Items: []service.CheckoutLine{{MenuItemID: "rice", Quantity: 2}}},
			setup: func(m orderMocks) {
				m.menu.On("GetMenuItems", ctx, []string{"rice"}).Return(checkoutMenu, nil).Once()
			},
			wantKind: apperr.Conflict,
			wantErr:  domain.ErrInsufficientStock,
		},
		{
			name:  "stock taken during write",
			input: service.CheckoutInput{PaymentMethod: domain.PaymentCash, Items: []service.CheckoutLine{{MenuItemID: "rice", Quantity: 1}}},
			setup: func(m orderMocks) {
				m.menu.On("GetMenuItems", ctx, []string{"rice"}).Return(checkoutMenu, nil).Once()
				m.repo.On("CreateOrder", ctx, mock.Anything, mock.Anything).
					Return(fmt.Errorf("%w: rice", domain.ErrInsufficientStock)).Once()
			},
			wantKind: apperr.Conflict,
			wantErr:  domain.ErrInsufficientStock,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			testCase.setup(m)

			result, err := svc.Checkout(ctx, "u1", testCase.input)

			assert.Nil(t, result)
			assert.Equal(t, testCase.wantKind, apperr.KindOf(err))
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			}
			if len(testCase.wantFields) > 0 {
				ae, _ := apperr.As(err)
				for _, field := range testCase.wantFields {
					assert.Contains(t, ae.Fields, field)
				}
			}
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown status", func(t *testing.T) {
		svc, _ := newOrderService(t)

		_, err := svc.UpdateStatus(ctx, "o1", "SHIPPED")

		assert.Equal(t, apperr.Invalid, apperr.KindOf(err))
	})

	t.Run("missing order", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repo.On("UpdateOrderStatus", ctx, "o1", domain.StatusCompleted).Return(domain.ErrNotFound).Once()

		_, err := svc.UpdateStatus(ctx, "o1", domain.StatusCompleted)

		assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	})

	t.Run("any known status may follow any other", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repo.On("UpdateOrderStatus", ctx, "o1", domain.StatusPending).Return(nil).Once()
		m.repo.On("GetOrder", ctx, "o1").
			Return(&domain.Order{OrderID: "o1", UserID: "u1", Status: domain.StatusPending, TotalAmount: 9}, nil).Once()
		m.events.On("PublishOrderEvent", ctx, mock.MatchedBy(func(msg events.OrderMessage) bool {
			return msg.Type == events.OrderStatusChanged && msg.Status == domain.StatusPending && msg.Items == nil
		})).Return(nil).Once()
		m.notifier.On("Publish", ctx, domain.ChannelOrders, "o1").Return(nil).Once()

		order, err := svc.UpdateStatus(ctx, "o1", domain.StatusPending)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, order.Status)
	})
}

func TestOrderService_GetQRCode(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		stored     []byte
		repoErr    error
		regenerate bool
		want       []byte
		wantKind   apperr.Kind
	}{
		{name: "stored code", stored: []byte("stored"), want: []byte("stored")},
		{name: "regenerates missing code", stored: nil, regenerate: true, want: []byte("fresh")},
		{name: "order not found", repoErr: domain.ErrNotFound, wantKind: apperr.NotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			m.repo.On("GetQRCode", ctx, "o1").Return(testCase.stored, testCase.repoErr).Once()
			if testCase.regenerate {
				m.qr.On("Generate", "o1").Return([]byte("fresh"), nil).Once()
				m.repo.On("SaveQRCode", ctx, "o1", []byte("fresh")).Return(nil).Once()
			}

			qr, err := svc.GetQRCode(ctx, "o1")

			if testCase.wantKind != "" {
				assert.Equal(t, testCase.wantKind, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, qr)
		})
	}
}

func TestOrderService_ListRejectsUnknownStatus(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.List(context.Background(), domain.OrderFilter{Status: "LOST"})

	assert.Equal(t, apperr.Invalid, apperr.KindOf(err))
}

func TestOrderService_QRLink(t *testing.T) {
	svc, _ := newOrderService(t)
	assert.Equal(t, "/api/orders/abc/qrcode", svc.QRLink("abc"))
}

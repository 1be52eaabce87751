package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"canteen/apperr"
	"canteen/canteen-svc/internal/domain"
	"canteen/events"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type CheckoutLine struct {
	MenuItemID string `json:"menuItemId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"min=1"`
}

type CardDetails struct {
	Holder string `json:"holder"`
	Number string `json:"number" validate:"required,luhn"`
	Expiry string `json:"expiry" validate:"required,expiry"`
	CVV    string `json:"cvv" validate:"required,numeric,min=3,max=4"`
}

// CheckoutInput pays for the listed items, or for the whole cart when Items is empty.
type CheckoutInput struct {
	PaymentMethod string         `json:"paymentMethod" validate:"required,oneof=cash card ewallet"`
	Card          *CardDetails   `json:"card" validate:"required_if=PaymentMethod card"`
	Items         []CheckoutLine `json:"items" validate:"dive"`
}

type OrderService struct {
	repo      OrderRepository
	menu      MenuRepository
	carts     CartStore
	qrEncoder QRGenerator
	events    EventPublisher
	notifier  ChangeNotifier
	log       *logrus.Entry
}

func NewOrderService(repo OrderRepository, menu MenuRepository, carts CartStore, qr QRGenerator,
	pub EventPublisher, notifier ChangeNotifier, log *logrus.Entry) *OrderService {
	return &OrderService{
		repo:      repo,
		menu:      menu,
		carts:     carts,
		qrEncoder: qr,
		events:    pub,
		notifier:  notifier,
		log:       log,
	}
}

func (s *OrderService) Checkout(ctx context.Context, userID string, in CheckoutInput) (*domain.CheckoutResult, error) {
	if in.PaymentMethod != domain.PaymentCard {
		in.Card = nil
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	fromCart := len(in.Items) == 0
	quantities, err := s.checkoutQuantities(ctx, userID, in.Items)
	if err != nil {
		return nil, err
	}
	if len(quantities) == 0 {
		return nil, apperr.InvalidErr("Your cart is empty.", nil).With(ErrEmptyCart)
	}

	order, err := s.priceOrder(ctx, userID, quantities)
	if err != nil {
		return nil, err
	}

	receipt := &domain.Receipt{
		ReceiptID:     uuid.NewString(),
		OrderID:       order.OrderID,
		PaymentDate:   time.Now().UTC(),
		PaymentMethod: in.PaymentMethod,
		PayAmount:     order.TotalAmount,
	}

	if err := s.repo.CreateOrder(ctx, order, receipt); err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			return nil, apperr.ConflictErr("Some items just sold out. Please review your order.").With(err)
		}
		return nil, apperr.Wrap(err)
	}

	logger := s.log.WithFields(logrus.Fields{"order_id": order.OrderID, "user_id": userID})
	if fromCart {
		if err := s.carts.Clear(ctx, userID); err != nil {
			logger.WithError(err).Warn("failed to clear cart after checkout")
		}
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.OrderID); err == nil {
			if err := s.repo.SaveQRCode(ctx, order.OrderID, qr); err != nil {
				logger.WithError(err).Warn("failed to store pickup QR code")
			}
		} else {
			logger.WithError(err).Warn("failed to generate pickup QR code")
		}
	}
	order.QRCode = s.QRLink(order.OrderID)

	publishEvent(ctx, s.events, logger, orderMessage(events.OrderCreated, order, order.CreatedAt))
	notifyChange(ctx, s.notifier, logger, domain.ChannelOrders, order.OrderID)

	logger.WithFields(logrus.Fields{"total": order.TotalAmount, "method": in.PaymentMethod}).Info("order placed")
	return &domain.CheckoutResult{Order: order, Receipt: receipt}, nil
}

func (s *OrderService) checkoutQuantities(ctx context.Context, userID string, lines []CheckoutLine) (map[string]int, error) {
	if len(lines) == 0 {
		quantities, err := s.carts.Items(ctx, userID)
		if err != nil {
			return nil, apperr.Wrap(err)
		}
		return quantities, nil
	}

	quantities := make(map[string]int, len(lines))
	for _, line := range lines {
		quantities[line.MenuItemID] += line.Quantity
	}
	return quantities, nil
}

// priceOrder snapshots names and prices and checks stock before the write.
func (s *OrderService) priceOrder(ctx context.Context, userID string, quantities map[string]int) (*domain.Order, error) {
	ids := make([]string, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	menu, err := s.menu.GetMenuItems(ctx, ids)
	if err != nil {
		return nil, apperr.Wrap(err)
	}

	order := &domain.Order{
		OrderID: uuid.NewString(),
		UserID:  userID,
		Status:  domain.StatusPending,
		Items:   make([]domain.OrderItem, 0, len(ids)),
	}
	total := decimal.Zero
	for _, id := range ids {
		item, ok := menu[id]
		if !ok {
			return nil, apperr.InvalidErr("An item in your order is no longer on the menu.",
				map[string]string{id: "Unknown menu item."}).With(ErrUnknownMenuItem)
		}
		qty := quantities[id]
		if item.RemainQuantity < qty {
			return nil, apperr.ConflictErr(fmt.Sprintf("Only %d left of %s.", item.RemainQuantity, item.Name)).
				With(domain.ErrInsufficientStock)
		}
		total = total.Add(domain.LineTotal(item.Price, qty))
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID: id,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   qty,
		})
	}
	order.TotalAmount = total.Round(2).InexactFloat64()
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, repoErr(err, "Order")
	}
	order.QRCode = s.QRLink(order.OrderID)
	return order, nil
}

func (s *OrderService) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	if filter.Status != "" && !domain.ValidOrderStatus(filter.Status) {
		return nil, apperr.InvalidErr("Unknown order status.", map[string]string{"status": "Unknown status."})
	}
	orders, err := s.repo.ListOrders(ctx, filter)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	for i := range orders {
		orders[i].QRCode = s.QRLink(orders[i].OrderID)
	}
	return orders, nil
}

// UpdateStatus overwrites the status. Any known status may follow any other.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, apperr.InvalidErr("Unknown order status.", map[string]string{"status": "Unknown status."})
	}
	if err := s.repo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return nil, repoErr(err, "Order")
	}

	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	logger := s.log.WithFields(logrus.Fields{"order_id": orderID, "status": status})
	publishEvent(ctx, s.events, logger, orderMessage(events.OrderStatusChanged, order, time.Now().UTC()))
	notifyChange(ctx, s.notifier, logger, domain.ChannelOrders, orderID)
	logger.Info("order status updated")
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	if err := s.repo.DeleteOrder(ctx, orderID); err != nil {
		return repoErr(err, "Order")
	}
	notifyChange(ctx, s.notifier, s.log, domain.ChannelOrders, orderID)
	return nil
}

func (s *OrderService) GetQRCode(ctx context.Context, orderID string) ([]byte, error) {
	qr, err := s.repo.GetQRCode(ctx, orderID)
	if err != nil {
		return nil, repoErr(err, "Order")
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			if err := s.repo.SaveQRCode(ctx, orderID, regenerated); err != nil {
				s.log.WithError(err).WithField("order_id", orderID).Warn("failed to cache regenerated QR code")
			}
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID string) string {
	return fmt.Sprintf("/api/orders/%s/qrcode", orderID)
}

func orderMessage(kind string, order *domain.Order, at time.Time) events.OrderMessage {
	msg := events.OrderMessage{
		Type:        kind,
		OrderID:     order.OrderID,
		UserID:      order.UserID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Timestamp:   at,
	}
	if kind == events.OrderCreated {
		for _, item := range order.Items {
			msg.Items = append(msg.Items, events.OrderLine{
				MenuItemID: item.MenuItemID,
				Name:       item.Name,
				Quantity:   item.Quantity,
				Price:      item.Price,
			})
		}
	}
	return msg
}

var _ OrderServiceInterface = (*OrderService)(nil)

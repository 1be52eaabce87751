package service

import (
	"context"
	"sort"

	"canteen/apperr"
	"canteen/canteen-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type CartService struct {
	carts CartStore
	menu  MenuRepository
}

func NewCartService(carts CartStore, menu MenuRepository) *CartService {
	return &CartService{carts: carts, menu: menu}
}

// View joins the stored quantities with current menu data. Lines whose menu
// item no longer exists are left out.
func (s *CartService) View(ctx context.Context, userID string) (*domain.Cart, error) {
	quantities, err := s.carts.Items(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return s.build(ctx, userID, quantities)
}

func (s *CartService) AddItem(ctx context.Context, userID, menuItemID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, apperr.InvalidErr("Quantity must be at least 1.", map[string]string{"quantity": "Must be at least 1."})
	}
	if _, err := s.menu.GetMenuItem(ctx, menuItemID); err != nil {
		return nil, repoErr(err, "Menu item")
	}
	if _, err := s.carts.Add(ctx, userID, menuItemID, quantity); err != nil {
		return nil, apperr.Wrap(err)
	}
	return s.View(ctx, userID)
}

// SetQuantity overwrites a line; zero removes it.
func (s *CartService) SetQuantity(ctx context.Context, userID, menuItemID string, quantity int) (*domain.Cart, error) {
	if quantity < 0 {
		return nil, apperr.InvalidErr("Quantity cannot be negative.", map[string]string{"quantity": "Must be 0 or more."})
	}
	if quantity > 0 {
		if _, err := s.menu.GetMenuItem(ctx, menuItemID); err != nil {
			return nil, repoErr(err, "Menu item")
		}
	}
	if err := s.carts.Set(ctx, userID, menuItemID, quantity); err != nil {
		return nil, apperr.Wrap(err)
	}
	return s.View(ctx, userID)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, menuItemID string) (*domain.Cart, error) {
	if err := s.carts.Remove(ctx, userID, menuItemID); err != nil {
		return nil, apperr.Wrap(err)
	}
	return s.View(ctx, userID)
}

func (s *CartService) Clear(ctx context.Context, userID string) error {
	return apperr.Wrap(s.carts.Clear(ctx, userID))
}

func (s *CartService) build(ctx context.Context, userID string, quantities map[string]int) (*domain.Cart, error) {
	cart := &domain.Cart{UserID: userID, Items: []domain.CartItem{}}
	if len(quantities) == 0 {
		return cart, nil
	}

	ids := make([]string, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	items, err := s.menu.GetMenuItems(ctx, ids)
	if err != nil {
		return nil, apperr.Wrap(err)
	}

	total := decimal.Zero
	for _, id := range ids {
		item, ok := items[id]
		if !ok {
			continue
		}
		line := domain.LineTotal(item.Price, quantities[id])
		total = total.Add(line)
		cart.Items = append(cart.Items, domain.CartItem{
			MenuItem:   item,
			Quantity:   quantities[id],
			TotalPrice: line.InexactFloat64(),
		})
	}
	cart.TotalAmount = total.Round(2).InexactFloat64()
	return cart, nil
}

var _ CartServiceInterface = (*CartService)(nil)

package service_test

import (
	"context"
	"testing"

	"canteen/apperr"
	"canteen/canteen-svc/internal/domain"
	"canteen/canteen-svc/internal/mocks"
	"canteen/canteen-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_View(t *testing.T) {
	ctx := context.Background()
	carts := mocks.NewCartStore(t)
	menu := mocks.NewMenuRepository(t)
	svc := service.NewCartService(carts, menu)

	carts.On("Items", ctx, "u1").Return(map[string]int{"a": 3, "b": 1, "gone": 2}, nil).Once()
	menu.On("GetMenuItems", ctx, []string{"a", "b", "gone"}).Return(map[string]domain.MenuItem{
		"a": {ID: "a", Name: "Tea", Price: 1.10},
		"b": {ID: "b", Name: "Rice", Price: 2.20},
	}, nil).Once()

	cart, err := svc.View(ctx, "u1")

	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, "a", cart.Items[0].MenuItem.ID)
	assert.Equal(t, 3.30, cart.Items[0].TotalPrice)
	assert.Equal(t, 2.20, cart.Items[1].TotalPrice)
	assert.Equal(t, 5.50, cart.TotalAmount)
}

func TestCartService_ViewEmpty(t *testing.T) {
	ctx := context.Background()
	carts := mocks.NewCartStore(t)
	svc := service.NewCartService(carts, mocks.NewMenuRepository(t))

	carts.On("Items", ctx, "u1").Return(map[string]int{}, nil).Once()

	cart, err := svc.View(ctx, "u1")

	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalAmount)
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		quantity int
		menuErr  error
		wantKind apperr.Kind
	}{
		{name: "adds", quantity: 2},
		{name: "zero quantity", quantity: 0, wantKind: apperr.Invalid},
		{name: "unknown item", quantity: 1, menuErr: domain.ErrNotFound, wantKind: apperr.NotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			carts := mocks.NewCartStore(t)
			menu := mocks.NewMenuRepository(t)
			svc := service.NewCartService(carts, menu)

			if testCase.quantity > 0 {
				if testCase.menuErr != nil {
					menu.On("GetMenuItem", ctx, "a").Return(nil, testCase.menuErr).Once()
				} else {
					menu.On("GetMenuItem", ctx, "a").Return(&domain.MenuItem{ID: "a", Price: 4}, nil).Once()
					carts.On("Add", ctx, "u1", "a", testCase.quantity).Return(testCase.quantity, nil).Once()
					carts.On("Items", ctx, "u1").Return(map[string]int{"a": testCase.quantity}, nil).Once()
					menu.On("GetMenuItems", ctx, []string{"a"}).
						Return(map[string]domain.MenuItem{"a": {ID: "a", Price: 4}}, nil).Once()
				}
			}

			cart, err := svc.AddItem(ctx, "u1", "a", testCase.quantity)

			if testCase.wantKind != "" {
				assert.Nil(t, cart)
				assert.Equal(t, testCase.wantKind, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 8.0, cart.TotalAmount)
		})
	}
}

func TestCartService_SetQuantityZeroRemoves(t *testing.T) {
	ctx := context.Background()
	carts := mocks.NewCartStore(t)
	svc := service.NewCartService(carts, mocks.NewMenuRepository(t))

	carts.On("Set", ctx, "u1", "a", 0).Return(nil).Once()
	carts.On("Items", ctx, "u1").Return(map[string]int{}, nil).Once()

	cart, err := svc.SetQuantity(ctx, "u1", "a", 0)

	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

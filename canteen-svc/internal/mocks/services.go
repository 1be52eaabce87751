package mocks

import (
	"context"
	"io"

	"canteen/canteen-svc/internal/domain"
	"canteen/canteen-svc/internal/service"

	"github.com/stretchr/testify/mock"
)

// AuthServiceInterface is a testify mock for AuthServiceInterface.
type AuthServiceInterface struct {
	mock.Mock
}

func (_m *AuthServiceInterface) Register(ctx context.Context, in service.RegisterInput) (*domain.User, error) {
	ret := _m.Called(ctx, in)

	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}

	return r0, ret.Error(1)
}

func (_m *AuthServiceInterface) CreateAccount(ctx context.Context, in service.RegisterInput) (*domain.User, error) {
	ret := _m.Called(ctx, in)

	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}

	return r0, ret.Error(1)
}

func (_m *AuthServiceInterface) SignIn(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	ret := _m.Called(ctx, creds)

	var r0 *domain.Session
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Session)
	}

	return r0, ret.Error(1)
}

func (_m *AuthServiceInterface) SignOut(ctx context.Context, token string) error {
	ret := _m.Called(ctx, token)
	return ret.Error(0)
}

func (_m *AuthServiceInterface) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	ret := _m.Called(ctx, token)

	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}

	return r0, ret.Error(1)
}

func (_m *AuthServiceInterface) GetUser(ctx context.Context, id string) (*domain.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}

	return r0, ret.Error(1)
}

func (_m *AuthServiceInterface) UpdateProfile(ctx context.Context, userID string, in service.ProfileInput) (*domain.User, error) {
	ret := _m.Called(ctx, userID, in)

	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}

	return r0, ret.Error(1)
}

func (_m *AuthServiceInterface) ListUsers(ctx context.Context) ([]domain.User, error) {
	ret := _m.Called(ctx)

	var r0 []domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.User)
	}

	return r0, ret.Error(1)
}

// NewAuthServiceInterface registers AssertExpectations on test cleanup.
func NewAuthServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthServiceInterface {
	m := &AuthServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// CategoryServiceInterface is a testify mock for CategoryServiceInterface.
type CategoryServiceInterface struct {
	mock.Mock
}

func (_m *CategoryServiceInterface) Create(ctx context.Context, c *domain.Category) error {
	ret := _m.Called(ctx, c)
	return ret.Error(0)
}

func (_m *CategoryServiceInterface) List(ctx context.Context) ([]domain.Category, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Category
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Category)
	}

	return r0, ret.Error(1)
}

func (_m *CategoryServiceInterface) Get(ctx context.Context, id string) (*domain.Category, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Category
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Category)
	}

	return r0, ret.Error(1)
}

func (_m *CategoryServiceInterface) Update(ctx context.Context, c *domain.Category) error {
	ret := _m.Called(ctx, c)
	return ret.Error(0)
}

func (_m *CategoryServiceInterface) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewCategoryServiceInterface registers AssertExpectations on test cleanup.
func NewCategoryServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *CategoryServiceInterface {
	m := &CategoryServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MenuServiceInterface is a testify mock for MenuServiceInterface.
type MenuServiceInterface struct {
	mock.Mock
}

func (_m *MenuServiceInterface) Create(ctx context.Context, m *domain.MenuItem) error {
	ret := _m.Called(ctx, m)
	return ret.Error(0)
}

func (_m *MenuServiceInterface) List(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.MenuItem)
	}

	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.MenuItem)
	}

	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) Update(ctx context.Context, m *domain.MenuItem) error {
	ret := _m.Called(ctx, m)
	return ret.Error(0)
}

func (_m *MenuServiceInterface) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *MenuServiceInterface) SetRemainQuantity(ctx context.Context, id string, quantity int) error {
	ret := _m.Called(ctx, id, quantity)
	return ret.Error(0)
}

func (_m *MenuServiceInterface) UploadImage(ctx context.Context, id string, r io.Reader, filename string) (string, error) {
	ret := _m.Called(ctx, id, r, filename)

	var r0 string
	if v := ret.Get(0); v != nil {
		r0 = v.(string)
	}

	return r0, ret.Error(1)
}

// NewMenuServiceInterface registers AssertExpectations on test cleanup.
func NewMenuServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// CartServiceInterface is a testify mock for CartServiceInterface.
type CartServiceInterface struct {
	mock.Mock
}

func (_m *CartServiceInterface) View(ctx context.Context, userID string) (*domain.Cart, error) {
	ret := _m.Called(ctx, userID)

	var r0 *domain.Cart
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Cart)
	}

	return r0, ret.Error(1)
}

func (_m *CartServiceInterface) AddItem(ctx context.Context, userID string, menuItemID string, quantity int) (*domain.Cart, error) {
	ret := _m.Called(ctx, userID, menuItemID, quantity)

	var r0 *domain.Cart
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Cart)
	}

	return r0, ret.Error(1)
}

func (_m *CartServiceInterface) SetQuantity(ctx context.Context, userID string, menuItemID string, quantity int) (*domain.Cart, error) {
	ret := _m.Called(ctx, userID, menuItemID, quantity)

	var r0 *domain.Cart
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Cart)
	}

	return r0, ret.Error(1)
}

func (_m *CartServiceInterface) RemoveItem(ctx context.Context, userID string, menuItemID string) (*domain.Cart, error) {
	ret := _m.Called(ctx, userID, menuItemID)

	var r0 *domain.Cart
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Cart)
	}

	return r0, ret.Error(1)
}

func (_m *CartServiceInterface) Clear(ctx context.Context, userID string) error {
	ret := _m.Called(ctx, userID)
	return ret.Error(0)
}

// NewCartServiceInterface registers AssertExpectations on test cleanup.
func NewCartServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *CartServiceInterface {
	m := &CartServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// OrderServiceInterface is a testify mock for OrderServiceInterface.
type OrderServiceInterface struct {
	mock.Mock
}

func (_m *OrderServiceInterface) Checkout(ctx context.Context, userID string, in service.CheckoutInput) (*domain.CheckoutResult, error) {
	ret := _m.Called(ctx, userID, in)

	var r0 *domain.CheckoutResult
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.CheckoutResult)
	}

	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID)

	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) UpdateStatus(ctx context.Context, orderID string, status string) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID, status)

	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) Delete(ctx context.Context, orderID string) error {
	ret := _m.Called(ctx, orderID)
	return ret.Error(0)
}

func (_m *OrderServiceInterface) GetQRCode(ctx context.Context, orderID string) ([]byte, error) {
	ret := _m.Called(ctx, orderID)

	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}

	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) QRLink(orderID string) string {
	ret := _m.Called(orderID)

	var r0 string
	if v := ret.Get(0); v != nil {
		r0 = v.(string)
	}

	return r0
}

// NewOrderServiceInterface registers AssertExpectations on test cleanup.
func NewOrderServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// ReceiptServiceInterface is a testify mock for ReceiptServiceInterface.
type ReceiptServiceInterface struct {
	mock.Mock
}

func (_m *ReceiptServiceInterface) Get(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	ret := _m.Called(ctx, receiptID)

	var r0 *domain.Receipt
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Receipt)
	}

	return r0, ret.Error(1)
}

func (_m *ReceiptServiceInterface) GetByOrder(ctx context.Context, orderID string) (*domain.Receipt, error) {
	ret := _m.Called(ctx, orderID)

	var r0 *domain.Receipt
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Receipt)
	}

	return r0, ret.Error(1)
}

func (_m *ReceiptServiceInterface) ListForUser(ctx context.Context, userID string) ([]domain.Receipt, error) {
	ret := _m.Called(ctx, userID)

	var r0 []domain.Receipt
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Receipt)
	}

	return r0, ret.Error(1)
}

func (_m *ReceiptServiceInterface) Details(ctx context.Context, receiptID string) (*domain.ReceiptDetails, error) {
	ret := _m.Called(ctx, receiptID)

	var r0 *domain.ReceiptDetails
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.ReceiptDetails)
	}

	return r0, ret.Error(1)
}

// NewReceiptServiceInterface registers AssertExpectations on test cleanup.
func NewReceiptServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReceiptServiceInterface {
	m := &ReceiptServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// RefundServiceInterface is a testify mock for RefundServiceInterface.
type RefundServiceInterface struct {
	mock.Mock
}

func (_m *RefundServiceInterface) Request(ctx context.Context, userID string, in service.RefundInput) (*domain.RefundRequest, error) {
	ret := _m.Called(ctx, userID, in)

	var r0 *domain.RefundRequest
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.RefundRequest)
	}

	return r0, ret.Error(1)
}

func (_m *RefundServiceInterface) Get(ctx context.Context, refundID string) (*domain.RefundRequest, error) {
	ret := _m.Called(ctx, refundID)

	var r0 *domain.RefundRequest
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.RefundRequest)
	}

	return r0, ret.Error(1)
}

func (_m *RefundServiceInterface) List(ctx context.Context, status string) ([]domain.RefundRequest, error) {
	ret := _m.Called(ctx, status)

	var r0 []domain.RefundRequest
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.RefundRequest)
	}

	return r0, ret.Error(1)
}

func (_m *RefundServiceInterface) Review(ctx context.Context, refundID string, staffID string, decision service.Decision) (*domain.RefundRequest, error) {
	ret := _m.Called(ctx, refundID, staffID, decision)

	var r0 *domain.RefundRequest
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.RefundRequest)
	}

	return r0, ret.Error(1)
}

// NewRefundServiceInterface registers AssertExpectations on test cleanup.
func NewRefundServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *RefundServiceInterface {
	m := &RefundServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

package mocks

import (
	"context"
	"io"
	"time"

	"canteen/canteen-svc/internal/domain"
	"canteen/events"

	"github.com/stretchr/testify/mock"
)

// UserRepository is a testify mock for UserRepository.
type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}

func (_m *UserRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}

	return r0, ret.Error(1)
}

func (_m *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	ret := _m.Called(ctx, email)

	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}

	return r0, ret.Error(1)
}

func (_m *UserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}

func (_m *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	ret := _m.Called(ctx)

	var r0 []domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.User)
	}

	return r0, ret.Error(1)
}

// NewUserRepository registers AssertExpectations on test cleanup.
func NewUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// IdentityProvider is a testify mock for IdentityProvider.
type IdentityProvider struct {
	mock.Mock
}

func (_m *IdentityProvider) CreateIdentity(ctx context.Context, email string, password string, displayName string) (string, error) {
	ret := _m.Called(ctx, email, password, displayName)

	var r0 string
	if v := ret.Get(0); v != nil {
		r0 = v.(string)
	}

	return r0, ret.Error(1)
}

func (_m *IdentityProvider) VerifyCredentials(ctx context.Context, creds domain.Credentials) (string, error) {
	ret := _m.Called(ctx, creds)

	var r0 string
	if v := ret.Get(0); v != nil {
		r0 = v.(string)
	}

	return r0, ret.Error(1)
}

func (_m *IdentityProvider) DeleteIdentity(ctx context.Context, uid string) error {
	ret := _m.Called(ctx, uid)
	return ret.Error(0)
}

// NewIdentityProvider registers AssertExpectations on test cleanup.
func NewIdentityProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *IdentityProvider {
	m := &IdentityProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// SessionStore is a testify mock for SessionStore.
type SessionStore struct {
	mock.Mock
}

func (_m *SessionStore) Save(ctx context.Context, token string, userID string, ttl time.Duration) error {
	ret := _m.Called(ctx, token, userID, ttl)
	return ret.Error(0)
}

func (_m *SessionStore) Lookup(ctx context.Context, token string) (string, error) {
	ret := _m.Called(ctx, token)

	var r0 string
	if v := ret.Get(0); v != nil {
		r0 = v.(string)
	}

	return r0, ret.Error(1)
}

func (_m *SessionStore) Delete(ctx context.Context, token string) error {
	ret := _m.Called(ctx, token)
	return ret.Error(0)
}

// NewSessionStore registers AssertExpectations on test cleanup.
func NewSessionStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionStore {
	m := &SessionStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// CategoryRepository is a testify mock for CategoryRepository.
type CategoryRepository struct {
	mock.Mock
}

func (_m *CategoryRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	ret := _m.Called(ctx, c)
	return ret.Error(0)
}

func (_m *CategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Category
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Category)
	}

	return r0, ret.Error(1)
}

func (_m *CategoryRepository) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Category
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Category)
	}

	return r0, ret.Error(1)
}

func (_m *CategoryRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	ret := _m.Called(ctx, c)
	return ret.Error(0)
}

func (_m *CategoryRepository) DeleteCategory(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewCategoryRepository registers AssertExpectations on test cleanup.
func NewCategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CategoryRepository {
	m := &CategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MenuRepository is a testify mock for MenuRepository.
type MenuRepository struct {
	mock.Mock
}

func (_m *MenuRepository) CreateMenuItem(ctx context.Context, m *domain.MenuItem) error {
	ret := _m.Called(ctx, m)
	return ret.Error(0)
}

func (_m *MenuRepository) ListMenuItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.MenuItem)
	}

	return r0, ret.Error(1)
}

func (_m *MenuRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.MenuItem)
	}

	return r0, ret.Error(1)
}

func (_m *MenuRepository) GetMenuItems(ctx context.Context, ids []string) (map[string]domain.MenuItem, error) {
	ret := _m.Called(ctx, ids)

	var r0 map[string]domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.(map[string]domain.MenuItem)
	}

	return r0, ret.Error(1)
}

func (_m *MenuRepository) UpdateMenuItem(ctx context.Context, m *domain.MenuItem) error {
	ret := _m.Called(ctx, m)
	return ret.Error(0)
}

func (_m *MenuRepository) DeleteMenuItem(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *MenuRepository) SetRemainQuantity(ctx context.Context, id string, quantity int) error {
	ret := _m.Called(ctx, id, quantity)
	return ret.Error(0)
}

func (_m *MenuRepository) UpdateMenuItemImage(ctx context.Context, id string, imageURL string) error {
	ret := _m.Called(ctx, id, imageURL)
	return ret.Error(0)
}

// NewMenuRepository registers AssertExpectations on test cleanup.
func NewMenuRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// CartStore is a testify mock for CartStore.
type CartStore struct {
	mock.Mock
}

func (_m *CartStore) Add(ctx context.Context, userID string, menuItemID string, quantity int) (int, error) {
	ret := _m.Called(ctx, userID, menuItemID, quantity)

	var r0 int
	if v := ret.Get(0); v != nil {
		r0 = v.(int)
	}

	return r0, ret.Error(1)
}

func (_m *CartStore) Set(ctx context.Context, userID string, menuItemID string, quantity int) error {
	ret := _m.Called(ctx, userID, menuItemID, quantity)
	return ret.Error(0)
}

func (_m *CartStore) Remove(ctx context.Context, userID string, menuItemID string) error {
	ret := _m.Called(ctx, userID, menuItemID)
	return ret.Error(0)
}

func (_m *CartStore) Clear(ctx context.Context, userID string) error {
	ret := _m.Called(ctx, userID)
	return ret.Error(0)
}

func (_m *CartStore) Items(ctx context.Context, userID string) (map[string]int, error) {
	ret := _m.Called(ctx, userID)

	var r0 map[string]int
	if v := ret.Get(0); v != nil {
		r0 = v.(map[string]int)
	}

	return r0, ret.Error(1)
}

// NewCartStore registers AssertExpectations on test cleanup.
func NewCartStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *CartStore {
	m := &CartStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// OrderRepository is a testify mock for OrderRepository.
type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order, receipt *domain.Receipt) error {
	ret := _m.Called(ctx, order, receipt)
	return ret.Error(0)
}

func (_m *OrderRepository) SaveQRCode(ctx context.Context, orderID string, qr []byte) error {
	ret := _m.Called(ctx, orderID, qr)
	return ret.Error(0)
}

func (_m *OrderRepository) GetQRCode(ctx context.Context, orderID string) ([]byte, error) {
	ret := _m.Called(ctx, orderID)

	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}

	return r0, ret.Error(1)
}

func (_m *OrderRepository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID)

	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status string) error {
	ret := _m.Called(ctx, orderID, status)
	return ret.Error(0)
}

func (_m *OrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	ret := _m.Called(ctx, orderID)
	return ret.Error(0)
}

// NewOrderRepository registers AssertExpectations on test cleanup.
func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// ReceiptRepository is a testify mock for ReceiptRepository.
type ReceiptRepository struct {
	mock.Mock
}

func (_m *ReceiptRepository) GetReceipt(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	ret := _m.Called(ctx, receiptID)

	var r0 *domain.Receipt
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Receipt)
	}

	return r0, ret.Error(1)
}

func (_m *ReceiptRepository) GetReceiptByOrder(ctx context.Context, orderID string) (*domain.Receipt, error) {
	ret := _m.Called(ctx, orderID)

	var r0 *domain.Receipt
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Receipt)
	}

	return r0, ret.Error(1)
}

func (_m *ReceiptRepository) ListReceiptsForUser(ctx context.Context, userID string) ([]domain.Receipt, error) {
	ret := _m.Called(ctx, userID)

	var r0 []domain.Receipt
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Receipt)
	}

	return r0, ret.Error(1)
}

// NewReceiptRepository registers AssertExpectations on test cleanup.
func NewReceiptRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReceiptRepository {
	m := &ReceiptRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// RefundRepository is a testify mock for RefundRepository.
type RefundRepository struct {
	mock.Mock
}

func (_m *RefundRepository) CreateRefund(ctx context.Context, refund *domain.RefundRequest) error {
	ret := _m.Called(ctx, refund)
	return ret.Error(0)
}

func (_m *RefundRepository) GetRefund(ctx context.Context, refundID string) (*domain.RefundRequest, error) {
	ret := _m.Called(ctx, refundID)

	var r0 *domain.RefundRequest
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.RefundRequest)
	}

	return r0, ret.Error(1)
}

func (_m *RefundRepository) ListRefunds(ctx context.Context, status string) ([]domain.RefundRequest, error) {
	ret := _m.Called(ctx, status)

	var r0 []domain.RefundRequest
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.RefundRequest)
	}

	return r0, ret.Error(1)
}

func (_m *RefundRepository) ActiveRefundForOrder(ctx context.Context, orderID string) (*domain.RefundRequest, error) {
	ret := _m.Called(ctx, orderID)

	var r0 *domain.RefundRequest
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.RefundRequest)
	}

	return r0, ret.Error(1)
}

func (_m *RefundRepository) ReviewRefund(ctx context.Context, refund *domain.RefundRequest, orderStatus string) error {
	ret := _m.Called(ctx, refund, orderStatus)
	return ret.Error(0)
}

// NewRefundRepository registers AssertExpectations on test cleanup.
func NewRefundRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RefundRepository {
	m := &RefundRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// EventPublisher is a testify mock for EventPublisher.
type EventPublisher struct {
	mock.Mock
}

func (_m *EventPublisher) PublishOrderEvent(ctx context.Context, msg events.OrderMessage) error {
	ret := _m.Called(ctx, msg)
	return ret.Error(0)
}

// NewEventPublisher registers AssertExpectations on test cleanup.
func NewEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// ChangeNotifier is a testify mock for ChangeNotifier.
type ChangeNotifier struct {
	mock.Mock
}

func (_m *ChangeNotifier) Publish(ctx context.Context, channel string, id string) error {
	ret := _m.Called(ctx, channel, id)
	return ret.Error(0)
}

// NewChangeNotifier registers AssertExpectations on test cleanup.
func NewChangeNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *ChangeNotifier {
	m := &ChangeNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// ImageStore is a testify mock for ImageStore.
type ImageStore struct {
	mock.Mock
}

func (_m *ImageStore) Put(ctx context.Context, r io.Reader, in domain.Upload) (domain.StoredObject, error) {
	ret := _m.Called(ctx, r, in)

	var r0 domain.StoredObject
	if v := ret.Get(0); v != nil {
		r0 = v.(domain.StoredObject)
	}

	return r0, ret.Error(1)
}

func (_m *ImageStore) KeyOf(url string) (string, bool) {
	ret := _m.Called(url)

	var r0 string
	if v := ret.Get(0); v != nil {
		r0 = v.(string)
	}

	return r0, ret.Bool(1)
}

func (_m *ImageStore) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)
	return ret.Error(0)
}

// NewImageStore registers AssertExpectations on test cleanup.
func NewImageStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ImageStore {
	m := &ImageStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// QRGenerator is a testify mock for QRGenerator.
type QRGenerator struct {
	mock.Mock
}

func (_m *QRGenerator) Generate(orderID string) ([]byte, error) {
	ret := _m.Called(orderID)

	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}

	return r0, ret.Error(1)
}

// NewQRGenerator registers AssertExpectations on test cleanup.
func NewQRGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

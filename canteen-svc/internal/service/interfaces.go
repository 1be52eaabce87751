package service

import (
	"context"
	"io"
	"time"

	"canteen/canteen-svc/internal/domain"
	"canteen/events"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type IdentityProvider interface {
	CreateIdentity(ctx context.Context, email, password, displayName string) (string, error)
	VerifyCredentials(ctx context.Context, creds domain.Credentials) (string, error)
	DeleteIdentity(ctx context.Context, uid string) error
}

type SessionStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	Lookup(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type CategoryRepository interface {
	CreateCategory(ctx context.Context, c *domain.Category) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, id string) error
}

type MenuRepository interface {
	CreateMenuItem(ctx context.Context, m *domain.MenuItem) error
	ListMenuItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	GetMenuItems(ctx context.Context, ids []string) (map[string]domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, m *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) error
	SetRemainQuantity(ctx context.Context, id string, quantity int) error
	UpdateMenuItemImage(ctx context.Context, id, imageURL string) error
}

type CartStore interface {
	Add(ctx context.Context, userID, menuItemID string, quantity int) (int, error)
	Set(ctx context.Context, userID, menuItemID string, quantity int) error
	Remove(ctx context.Context, userID, menuItemID string) error
	Clear(ctx context.Context, userID string) error
	Items(ctx context.Context, userID string) (map[string]int, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order, receipt *domain.Receipt) error
	SaveQRCode(ctx context.Context, orderID string, qr []byte) error
	GetQRCode(ctx context.Context, orderID string) ([]byte, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) error
	DeleteOrder(ctx context.Context, orderID string) error
}

type ReceiptRepository interface {
	GetReceipt(ctx context.Context, receiptID string) (*domain.Receipt, error)
	GetReceiptByOrder(ctx context.Context, orderID string) (*domain.Receipt, error)
	ListReceiptsForUser(ctx context.Context, userID string) ([]domain.Receipt, error)
}

type RefundRepository interface {
	CreateRefund(ctx context.Context, refund *domain.RefundRequest) error
	GetRefund(ctx context.Context, refundID string) (*domain.RefundRequest, error)
	ListRefunds(ctx context.Context, status string) ([]domain.RefundRequest, error)
	ActiveRefundForOrder(ctx context.Context, orderID string) (*domain.RefundRequest, error)
	ReviewRefund(ctx context.Context, refund *domain.RefundRequest, orderStatus string) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, msg events.OrderMessage) error
}

type ChangeNotifier interface {
	Publish(ctx context.Context, channel, id string) error
}

type ImageStore interface {
	Put(ctx context.Context, r io.Reader, in domain.Upload) (domain.StoredObject, error)
	// KeyOf maps a URL returned by Put back to its object key.
	KeyOf(url string) (string, bool)
	Delete(ctx context.Context, key string) error
}

type AuthServiceInterface interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	CreateAccount(ctx context.Context, in RegisterInput) (*domain.User, error)
	SignIn(ctx context.Context, creds domain.Credentials) (*domain.Session, error)
	SignOut(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type CategoryServiceInterface interface {
	Create(ctx context.Context, c *domain.Category) error
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
}

type MenuServiceInterface interface {
	Create(ctx context.Context, m *domain.MenuItem) error
	List(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	Update(ctx context.Context, m *domain.MenuItem) error
	Delete(ctx context.Context, id string) error
	SetRemainQuantity(ctx context.Context, id string, quantity int) error
	UploadImage(ctx context.Context, id string, r io.Reader, filename string) (string, error)
}

type CartServiceInterface interface {
	View(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, menuItemID string, quantity int) (*domain.Cart, error)
	SetQuantity(ctx context.Context, userID, menuItemID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, menuItemID string) (*domain.Cart, error)
	Clear(ctx context.Context, userID string) error
}

type OrderServiceInterface interface {
	Checkout(ctx context.Context, userID string, in CheckoutInput) (*domain.CheckoutResult, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error)
	Delete(ctx context.Context, orderID string) error
	GetQRCode(ctx context.Context, orderID string) ([]byte, error)
	QRLink(orderID string) string
}

type ReceiptServiceInterface interface {
	Get(ctx context.Context, receiptID string) (*domain.Receipt, error)
	GetByOrder(ctx context.Context, orderID string) (*domain.Receipt, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Receipt, error)
	Details(ctx context.Context, receiptID string) (*domain.ReceiptDetails, error)
}

type RefundServiceInterface interface {
	Request(ctx context.Context, userID string, in RefundInput) (*domain.RefundRequest, error)
	Get(ctx context.Context, refundID string) (*domain.RefundRequest, error)
	List(ctx context.Context, status string) ([]domain.RefundRequest, error)
	Review(ctx context.Context, refundID, staffID string, decision Decision) (*domain.RefundRequest, error)
}

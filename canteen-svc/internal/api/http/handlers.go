package httpapi

import (
	"net/http"
	"time"

	"canteen/canteen-svc/internal/service"
	"canteen/httpx"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Services struct {
	Auth       service.AuthServiceInterface
	Categories service.CategoryServiceInterface
	Menu       service.MenuServiceInterface
	Carts      service.CartServiceInterface
	Orders     service.OrderServiceInterface
	Receipts   service.ReceiptServiceInterface
	Refunds    service.RefundServiceInterface
}

type Handler struct {
	Services
	Changes ChangeSubscriber
	Log     *logrus.Entry
	// KeepAlive is the comment interval on listener streams.
	KeepAlive time.Duration
}

func NewHandler(svcs Services, changes ChangeSubscriber, log *logrus.Entry) *Handler {
	return &Handler{
		Services:  svcs,
		Changes:   changes,
		Log:       log,
		KeepAlive: 25 * time.Second,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/signin", h.signIn).Methods("POST")
	r.HandleFunc("/api/auth/signout", h.withUser(h.signOut)).Methods("POST")
	r.HandleFunc("/api/me", h.withUser(h.getMe)).Methods("GET")
	r.HandleFunc("/api/me", h.withUser(h.updateMe)).Methods("PUT")
	r.HandleFunc("/api/users", h.withStaff(h.listUsers)).Methods("GET")
	r.HandleFunc("/api/users", h.withStaff(h.createUser)).Methods("POST")

	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/categories", h.withStaff(h.createCategory)).Methods("POST")
	r.HandleFunc("/api/categories/{id}", h.getCategory).Methods("GET")
	r.HandleFunc("/api/categories/{id}", h.withStaff(h.updateCategory)).Methods("PUT")
	r.HandleFunc("/api/categories/{id}", h.withStaff(h.deleteCategory)).Methods("DELETE")

	r.HandleFunc("/api/menu-items", h.getMenuItems).Methods("GET")
	r.HandleFunc("/api/menu-items", h.withStaff(h.createMenuItem)).Methods("POST")
	r.HandleFunc("/api/menu-items/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu-items/{id}", h.withStaff(h.updateMenuItem)).Methods("PUT")
	r.HandleFunc("/api/menu-items/{id}", h.withStaff(h.deleteMenuItem)).Methods("DELETE")
	r.HandleFunc("/api/menu-items/{id}/quantity", h.withStaff(h.setRemainQuantity)).Methods("PUT")
	r.HandleFunc("/api/menu-items/{id}/image", h.withStaff(h.uploadMenuItemImage)).Methods("POST")

	r.HandleFunc("/api/cart", h.withUser(h.getCart)).Methods("GET")
	r.HandleFunc("/api/cart", h.withUser(h.clearCart)).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.withUser(h.addCartItem)).Methods("POST")
	r.HandleFunc("/api/cart/items/{menuItemId}", h.withUser(h.setCartItem)).Methods("PUT")
	r.HandleFunc("/api/cart/items/{menuItemId}", h.withUser(h.removeCartItem)).Methods("DELETE")

	r.HandleFunc("/api/checkout", h.withUser(h.checkout)).Methods("POST")

	r.HandleFunc("/api/orders", h.withUser(h.getOrders)).Methods("GET")
	r.HandleFunc("/api/orders/listen", h.withUser(h.listenOrders)).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.withUser(h.getOrder)).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.withStaff(h.deleteOrder)).Methods("DELETE")
	r.HandleFunc("/api/orders/{id}/status", h.withStaff(h.updateOrderStatus)).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/qrcode", h.withUser(h.getOrderQRCode)).Methods("GET")
	r.HandleFunc("/api/orders/{id}/receipt", h.withUser(h.getOrderReceipt)).Methods("GET")
	r.HandleFunc("/api/orders/{id}/listen", h.withUser(h.listenOrder)).Methods("GET")

	r.HandleFunc("/api/receipts", h.withUser(h.getReceipts)).Methods("GET")
	r.HandleFunc("/api/receipts/{id}", h.withUser(h.getReceipt)).Methods("GET")
	r.HandleFunc("/api/receipts/{id}/listen", h.withUser(h.listenReceipt)).Methods("GET")

	r.HandleFunc("/api/refunds", h.withUser(h.requestRefund)).Methods("POST")
	r.HandleFunc("/api/refunds", h.withStaff(h.getRefunds)).Methods("GET")
	r.HandleFunc("/api/refunds/{id}", h.withUser(h.getRefund)).Methods("GET")
	r.HandleFunc("/api/refunds/{id}/review", h.withStaff(h.reviewRefund)).Methods("PUT")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "canteen-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

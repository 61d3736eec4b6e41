package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sufra-pos/api/internal/model"
	"github.com/sufra-pos/api/internal/service"
)

// OrderPlacer is the slice of the order service the handlers need.
// Satisfied by *service.OrderService.
type OrderPlacer interface {
	CreateOrder(tableID int, items []service.CheckoutItem) (model.Order, error)
	MarkPaid(orderID int, paymentMethod string) (model.Order, error)
}

// OrderReader defines the repository reads needed by order handlers.
// Satisfied by *store.OrderStore.
type OrderReader interface {
	Pending() []model.Order
	Paid() []model.Order
	ByTable(tableID int) []model.Order
	ByID(orderID int) (model.Order, bool)
	Search(orderID *int, status string) []model.Order
}

// OrderHandler handles checkout for customers and settlement for the
// cashier screen.
type OrderHandler struct {
	service OrderPlacer
	orders  OrderReader
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(svc OrderPlacer, orders OrderReader) *OrderHandler {
	return &OrderHandler{service: svc, orders: orders}
}

// RegisterPublicRoutes registers the table-scoped customer endpoints.
// Expected to be mounted inside /tables/{tid}.
func (h *OrderHandler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/orders", h.Create)
	r.Get("/orders", h.ListByTable)
}

// RegisterCashierRoutes registers the cashier endpoints at /orders.
func (h *OrderHandler) RegisterCashierRoutes(r chi.Router) {
	r.Get("/", h.Search)
	r.Get("/pending", h.ListPending)
	r.Get("/paid", h.ListPaid)
	r.Get("/{id}", h.Get)
	r.Post("/{id}/pay", h.Pay)
}

// --- Request types ---

type checkoutItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type createOrderRequest struct {
	Items []checkoutItemRequest `json:"items"`
}

type payOrderRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// --- Handlers ---

// Create places an order for the table in the path.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	tableID, err := strconv.Atoi(chi.URLParam(r, "tid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid table ID")
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]service.CheckoutItem, len(req.Items))
	for i, line := range req.Items {
		items[i] = service.CheckoutItem{ItemID: line.ItemID, Quantity: line.Quantity}
	}

	order, err := h.service.CreateOrder(tableID, items)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// ListByTable returns the table's orders, newest state as stored.
func (h *OrderHandler) ListByTable(w http.ResponseWriter, r *http.Request) {
	tableID, err := strconv.Atoi(chi.URLParam(r, "tid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid table ID")
		return
	}
	writeJSON(w, http.StatusOK, h.orders.ByTable(tableID))
}

// Search filters orders by optional order_id and status query params.
func (h *OrderHandler) Search(w http.ResponseWriter, r *http.Request) {
	var orderID *int
	if raw := r.URL.Query().Get("order_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid order_id")
			return
		}
		orderID = &id
	}
	writeJSON(w, http.StatusOK, h.orders.Search(orderID, r.URL.Query().Get("status")))
}

// ListPending returns all unsettled orders.
func (h *OrderHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.orders.Pending())
}

// ListPaid returns all settled orders.
func (h *OrderHandler) ListPaid(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.orders.Paid())
}

// Get returns a single order by id.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID")
		return
	}
	order, ok := h.orders.ByID(orderID)
	if !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// Pay settles an order with the given payment method.
func (h *OrderHandler) Pay(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	var req payOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.service.MarkPaid(orderID, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, "order not found")
		case errors.Is(err, service.ErrInvalidPayment):
			writeError(w, http.StatusBadRequest, "payment_method must be Cash or Card")
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	writeJSON(w, http.StatusOK, order)
}

package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sufra-pos/api/internal/enum"
	"github.com/sufra-pos/api/internal/model"
	"github.com/sufra-pos/api/internal/ws"
)

// Errors returned by the order service.
var (
	ErrInvalidTable    = errors.New("table_id must be > 0")
	ErrEmptyItems      = errors.New("items are required")
	ErrInvalidQuantity = errors.New("quantity must be > 0")
	ErrItemNotFound    = errors.New("menu item not found")
	ErrItemUnavailable = errors.New("menu item is not available")
	ErrInvalidPayment  = errors.New("invalid payment_method")
	ErrOrderNotFound   = errors.New("order not found")
	ErrSaveFailed      = errors.New("could not persist order update")
)

// MenuGetter resolves item ids to current menu items.
// Satisfied by *store.MenuStore; narrow interface for testability.
type MenuGetter interface {
	GetItem(itemID string) (model.MenuItem, bool)
}

// OrderRepo defines the repository methods the service needs.
// Satisfied by *store.OrderStore.
type OrderRepo interface {
	Create(tableID int, items []model.OrderItem, total decimal.Decimal) model.Order
	UpdateStatus(orderID int, status, paymentMethod string) bool
	ByID(orderID int) (model.Order, bool)
}

// Notifier pushes order lifecycle events to connected screens.
// Satisfied by *ws.Hub.
type Notifier interface {
	Broadcast(eventType string, payload interface{})
}

// CheckoutItem is one cart line as submitted by a customer surface.
type CheckoutItem struct {
	ItemID   string
	Quantity int
}

// OrderService turns carts into orders and settles payments.
type OrderService struct {
	menu     MenuGetter
	orders   OrderRepo
	notifier Notifier
}

// NewOrderService creates a new OrderService. notifier may be nil.
func NewOrderService(menu MenuGetter, orders OrderRepo, notifier Notifier) *OrderService {
	return &OrderService{menu: menu, orders: orders, notifier: notifier}
}

// CreateOrder resolves each cart line against the current menu, snapshots
// prices and English display names, and records the order. Later menu
// edits never touch the recorded lines.
func (s *OrderService) CreateOrder(tableID int, items []CheckoutItem) (model.Order, error) {
	if tableID <= 0 {
		return model.Order{}, ErrInvalidTable
	}
	if len(items) == 0 {
		return model.Order{}, ErrEmptyItems
	}

	lines := make([]model.OrderItem, 0, len(items))
	for _, ci := range items {
		if ci.Quantity <= 0 {
			return model.Order{}, fmt.Errorf("%w: %s", ErrInvalidQuantity, ci.ItemID)
		}
		item, ok := s.menu.GetItem(ci.ItemID)
		if !ok {
			return model.Order{}, fmt.Errorf("%w: %s", ErrItemNotFound, ci.ItemID)
		}
		if !item.Available {
			return model.Order{}, fmt.Errorf("%w: %s", ErrItemUnavailable, ci.ItemID)
		}
		lines = append(lines, model.OrderItem{
			ItemID:   item.ItemID,
			Name:     item.Name.In(enum.LangEnglish),
			Price:    item.Price.Round(2),
			Quantity: ci.Quantity,
		})
	}

	return s.record(tableID, lines), nil
}

// CreateOrderFromLines records an order whose lines were already priced,
// such as a chat session cart. Prices are taken as supplied.
func (s *OrderService) CreateOrderFromLines(tableID int, lines []model.OrderItem) (model.Order, error) {
	if tableID <= 0 {
		return model.Order{}, ErrInvalidTable
	}
	if len(lines) == 0 {
		return model.Order{}, ErrEmptyItems
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return model.Order{}, fmt.Errorf("%w: %s", ErrInvalidQuantity, line.ItemID)
		}
	}
	return s.record(tableID, lines), nil
}

func (s *OrderService) record(tableID int, lines []model.OrderItem) model.Order {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	order := s.orders.Create(tableID, lines, total)
	if s.notifier != nil {
		s.notifier.Broadcast(ws.EventOrderCreated, order)
	}
	return order
}

// MarkPaid transitions an order to Paid with the given payment method and
// returns the updated order.
func (s *OrderService) MarkPaid(orderID int, paymentMethod string) (model.Order, error) {
	if !enum.IsValidPaymentMethod(paymentMethod) {
		return model.Order{}, fmt.Errorf("%w: %q", ErrInvalidPayment, paymentMethod)
	}
	if _, ok := s.orders.ByID(orderID); !ok {
		return model.Order{}, ErrOrderNotFound
	}
	if !s.orders.UpdateStatus(orderID, enum.OrderStatusPaid, paymentMethod) {
		return model.Order{}, ErrSaveFailed
	}

	order, ok := s.orders.ByID(orderID)
	if !ok {
		return model.Order{}, ErrOrderNotFound
	}
	if s.notifier != nil {
		s.notifier.Broadcast(ws.EventOrderPaid, order)
	}
	return order, nil
}

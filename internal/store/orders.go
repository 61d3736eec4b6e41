package store

import (
	"errors"
	"log"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sufra-pos/api/internal/enum"
	"github.com/sufra-pos/api/internal/model"
)

const ordersFile = "orders.json"

// Order ids are assigned monotonically starting here.
const firstOrderID = 1001

// timestampLayout matches the timestamps already present in order
// documents written by earlier versions of the system.
const timestampLayout = "2006-01-02T15:04:05.000000"

// OrderStore is the repository over the append-only order log.
type OrderStore struct {
	doc *Document[[]model.Order]
	now func() time.Time
}

// NewOrderStore creates an OrderStore backed by dataDir/orders.json.
func NewOrderStore(dataDir string) *OrderStore {
	return &OrderStore{
		doc: NewDocument[[]model.Order](filepath.Join(dataDir, ordersFile)),
		now: time.Now,
	}
}

// All returns every order in append order. A missing or unreadable
// document yields an empty list.
func (s *OrderStore) All() []model.Order {
	orders, err := s.doc.Load()
	if err != nil {
		if !errors.Is(err, ErrNotExist) {
			log.Printf("ERROR: load orders: %v", err)
		}
		return []model.Order{}
	}
	return orders
}

func (s *OrderStore) save(orders []model.Order) bool {
	if err := s.doc.Save(orders); err != nil {
		log.Printf("ERROR: save orders: %v", err)
		return false
	}
	return true
}

// NextID computes one past the highest existing order id, or 1001 for an
// empty store. The id comes from a snapshot: two concurrent creates can
// read the same maximum and collide, matching the documented
// whole-document race.
func (s *OrderStore) NextID() int {
	orders := s.All()
	if len(orders) == 0 {
		return firstOrderID
	}
	max := 0
	for _, o := range orders {
		id := o.OrderID
		if id == 0 {
			id = firstOrderID - 1
		}
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Create assigns the next id, stamps the creation time, and appends the
// order with status Pending. The total is rounded to two places; line
// items carry whatever prices the caller supplied.
func (s *OrderStore) Create(tableID int, items []model.OrderItem, total decimal.Decimal) model.Order {
	order := model.Order{
		OrderID:    s.NextID(),
		TableID:    tableID,
		Items:      items,
		TotalPrice: total.Round(2),
		Status:     enum.OrderStatusPending,
		Timestamp:  s.now().Format(timestampLayout),
	}

	orders := s.All()
	orders = append(orders, order)
	s.save(orders)
	return order
}

// UpdateStatus sets the status of one order, located by id. Transitioning
// to Paid also stamps the payment method and paid timestamp. An already
// Paid order is overwritten without complaint. Returns false if no order
// matches or the save fails.
func (s *OrderStore) UpdateStatus(orderID int, status, paymentMethod string) bool {
	orders := s.All()
	for i := range orders {
		if orders[i].OrderID == orderID {
			orders[i].Status = status
			if status == enum.OrderStatusPaid {
				method := paymentMethod
				ts := s.now().Format(timestampLayout)
				orders[i].PaymentMethod = &method
				orders[i].PaidTimestamp = &ts
			}
			return s.save(orders)
		}
	}
	return false
}

// Pending returns all orders awaiting payment.
func (s *OrderStore) Pending() []model.Order {
	return s.byStatus(enum.OrderStatusPending)
}

// Paid returns all settled orders.
func (s *OrderStore) Paid() []model.Order {
	return s.byStatus(enum.OrderStatusPaid)
}

func (s *OrderStore) byStatus(status string) []model.Order {
	var result []model.Order
	for _, o := range s.All() {
		if o.Status == status {
			result = append(result, o)
		}
	}
	return result
}

// ByTable returns every order placed from the given table.
func (s *OrderStore) ByTable(tableID int) []model.Order {
	var result []model.Order
	for _, o := range s.All() {
		if o.TableID == tableID {
			result = append(result, o)
		}
	}
	return result
}

// ByID returns the order with the given id, if present.
func (s *OrderStore) ByID(orderID int) (model.Order, bool) {
	for _, o := range s.All() {
		if o.OrderID == orderID {
			return o, true
		}
	}
	return model.Order{}, false
}

// Search filters orders by an optional id and an optional status. A nil
// id and empty status return the full log.
func (s *OrderStore) Search(orderID *int, status string) []model.Order {
	results := s.All()
	if orderID != nil {
		var filtered []model.Order
		for _, o := range results {
			if o.OrderID == *orderID {
				filtered = append(filtered, o)
			}
		}
		results = filtered
	}
	if status != "" {
		var filtered []model.Order
		for _, o := range results {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		results = filtered
	}
	return results
}

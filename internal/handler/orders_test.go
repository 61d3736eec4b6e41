package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sufra-pos/api/internal/enum"
	"github.com/sufra-pos/api/internal/handler"
	"github.com/sufra-pos/api/internal/model"
	"github.com/sufra-pos/api/internal/service"
)

// mockOrderBackend backs both the order service and the read-side
// handler interface with one in-memory slice.
type mockOrderBackend struct {
	orders []model.Order
	nextID int
}

func newMockOrderBackend() *mockOrderBackend {
	return &mockOrderBackend{nextID: 1001}
}

func (m *mockOrderBackend) Create(tableID int, items []model.OrderItem, total decimal.Decimal) model.Order {
	order := model.Order{
		OrderID:    m.nextID,
		TableID:    tableID,
		Items:      items,
		TotalPrice: total.Round(2),
		Status:     enum.OrderStatusPending,
		Timestamp:  time.Now().Format("2006-01-02T15:04:05.000000"),
	}
	m.nextID++
	m.orders = append(m.orders, order)
	return order
}

func (m *mockOrderBackend) UpdateStatus(orderID int, status, paymentMethod string) bool {
	for i := range m.orders {
		if m.orders[i].OrderID == orderID {
			m.orders[i].Status = status
			if status == enum.OrderStatusPaid {
				m.orders[i].PaymentMethod = &paymentMethod
				ts := time.Now().Format("2006-01-02T15:04:05.000000")
				m.orders[i].PaidTimestamp = &ts
			}
			return true
		}
	}
	return false
}

func (m *mockOrderBackend) ByID(orderID int) (model.Order, bool) {
	for _, o := range m.orders {
		if o.OrderID == orderID {
			return o, true
		}
	}
	return model.Order{}, false
}

func (m *mockOrderBackend) byStatus(status string) []model.Order {
	var result []model.Order
	for _, o := range m.orders {
		if o.Status == status {
			result = append(result, o)
		}
	}
	return result
}

func (m *mockOrderBackend) Pending() []model.Order { return m.byStatus(enum.OrderStatusPending) }
func (m *mockOrderBackend) Paid() []model.Order    { return m.byStatus(enum.OrderStatusPaid) }

func (m *mockOrderBackend) ByTable(tableID int) []model.Order {
	var result []model.Order
	for _, o := range m.orders {
		if o.TableID == tableID {
			result = append(result, o)
		}
	}
	return result
}

func (m *mockOrderBackend) Search(orderID *int, status string) []model.Order {
	var result []model.Order
	for _, o := range m.orders {
		if orderID != nil && o.OrderID != *orderID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		result = append(result, o)
	}
	return result
}

func setupOrderRouter(backend *mockOrderBackend) *chi.Mux {
	menu := newMockMenuStore()
	menu.AddItem("Fast Food", model.MenuItem{
		ItemID:    "b01",
		Name:      model.LocalizedText{"en": "Zinger Burger"},
		Price:     decimal.RequireFromString("8.50"),
		Available: true,
	})
	svc := service.NewOrderService(menu, backend, nil)
	h := handler.NewOrderHandler(svc, backend)

	r := chi.NewRouter()
	r.Route("/tables/{tid}", h.RegisterPublicRoutes)
	r.Route("/orders", h.RegisterCashierRoutes)
	return r
}

func TestOrderCreate(t *testing.T) {
	backend := newMockOrderBackend()
	router := setupOrderRouter(backend)

	body := map[string]interface{}{
		"items": []map[string]interface{}{{"item_id": "b01", "quantity": 2}},
	}
	rr := doRequest(t, router, "POST", "/tables/5/orders", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	resp := decodeObject(t, rr)
	if resp["order_id"] != float64(1001) {
		t.Errorf("order_id = %v, want 1001", resp["order_id"])
	}
	if resp["total_price"] != float64(17) {
		t.Errorf("total_price = %v, want 17", resp["total_price"])
	}
	if resp["status"] != enum.OrderStatusPending {
		t.Errorf("status = %v", resp["status"])
	}
}

func TestOrderCreate_Validation(t *testing.T) {
	router := setupOrderRouter(newMockOrderBackend())

	tests := []struct {
		name string
		path string
		body map[string]interface{}
	}{
		{"empty items", "/tables/5/orders", map[string]interface{}{"items": []map[string]interface{}{}}},
		{"unknown item", "/tables/5/orders", map[string]interface{}{
			"items": []map[string]interface{}{{"item_id": "nope", "quantity": 1}},
		}},
		{"zero quantity", "/tables/5/orders", map[string]interface{}{
			"items": []map[string]interface{}{{"item_id": "b01", "quantity": 0}},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := doRequest(t, router, "POST", tc.path, tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rr.Code)
			}
		})
	}
}

func TestOrderPay(t *testing.T) {
	backend := newMockOrderBackend()
	backend.Create(3, []model.OrderItem{{ItemID: "b01", Price: dec(t, "8.50"), Quantity: 1}}, dec(t, "8.50"))
	router := setupOrderRouter(backend)

	rr := doRequest(t, router, "POST", "/orders/1001/pay", map[string]string{"payment_method": "Cash"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	resp := decodeObject(t, rr)
	if resp["status"] != enum.OrderStatusPaid {
		t.Errorf("status = %v, want Paid", resp["status"])
	}
	if resp["payment_method"] != "Cash" {
		t.Errorf("payment_method = %v", resp["payment_method"])
	}
	if resp["paid_timestamp"] == nil {
		t.Error("paid_timestamp should be set")
	}
}

func TestOrderPay_Errors(t *testing.T) {
	backend := newMockOrderBackend()
	backend.Create(3, nil, decimal.Zero)
	router := setupOrderRouter(backend)

	rr := doRequest(t, router, "POST", "/orders/9999/pay", map[string]string{"payment_method": "Cash"})
	if rr.Code != http.StatusNotFound {
		t.Errorf("unknown order status = %d, want 404", rr.Code)
	}

	rr = doRequest(t, router, "POST", "/orders/1001/pay", map[string]string{"payment_method": "Crypto"})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad method status = %d, want 400", rr.Code)
	}
}

func TestOrderSearchAndLists(t *testing.T) {
	backend := newMockOrderBackend()
	backend.Create(1, nil, decimal.Zero)
	backend.Create(2, nil, decimal.Zero)
	backend.UpdateStatus(1001, enum.OrderStatusPaid, "Card")
	router := setupOrderRouter(backend)

	rr := doRequest(t, router, "GET", "/orders/pending", nil)
	if got := decodeList(t, rr); len(got) != 1 || got[0]["order_id"] != float64(1002) {
		t.Errorf("pending = %v", got)
	}

	rr = doRequest(t, router, "GET", "/orders/paid", nil)
	if got := decodeList(t, rr); len(got) != 1 || got[0]["order_id"] != float64(1001) {
		t.Errorf("paid = %v", got)
	}

	rr = doRequest(t, router, "GET", "/orders?order_id=1002&status=Pending", nil)
	if got := decodeList(t, rr); len(got) != 1 || got[0]["order_id"] != float64(1002) {
		t.Errorf("search = %v", got)
	}

	rr = doRequest(t, router, "GET", "/orders?order_id=abc", nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad order_id status = %d, want 400", rr.Code)
	}

	rr = doRequest(t, router, "GET", "/tables/2/orders", nil)
	if got := decodeList(t, rr); len(got) != 1 || got[0]["table_id"] != float64(2) {
		t.Errorf("by table = %v", got)
	}
}

package handler_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/sufra-pos/api/internal/enum"
	"github.com/sufra-pos/api/internal/handler"
	"github.com/sufra-pos/api/internal/model"
)

func strPtr(s string) *string { return &s }

func setupReportsRouter(t *testing.T, orders []model.Order, menu model.Menu) *chi.Mux {
	t.Helper()
	h := handler.NewReportsHandler(paidOnly(orders), &mockMenuStore{menu: menu})
	r := chi.NewRouter()
	r.Route("/reports", h.RegisterRoutes)
	return r
}

type paidOnly []model.Order

func (p paidOnly) Paid() []model.Order {
	var result []model.Order
	for _, o := range p {
		if o.Status == enum.OrderStatusPaid {
			result = append(result, o)
		}
	}
	return result
}

func reportOrders(t *testing.T) []model.Order {
	t.Helper()
	return []model.Order{
		{
			OrderID: 1001, Status: enum.OrderStatusPaid, PaymentMethod: strPtr("Cash"),
			Timestamp: "2026-08-29T12:00:00.000000", TotalPrice: dec(t, "20.00"),
			Items: []model.OrderItem{{ItemID: "b01", Name: "Zinger Burger", Price: dec(t, "10.00"), Quantity: 2}},
		},
		{
			OrderID: 1002, Status: enum.OrderStatusPaid, PaymentMethod: strPtr("Card"),
			Timestamp: "2026-08-30T13:00:00.000000", TotalPrice: dec(t, "10.00"),
			Items: []model.OrderItem{{ItemID: "p01", Name: "Margherita", Price: dec(t, "10.00"), Quantity: 1}},
		},
		{
			OrderID: 1003, Status: enum.OrderStatusPending,
			Timestamp: "2026-08-30T14:00:00.000000", TotalPrice: dec(t, "99.00"),
			Items: []model.OrderItem{{ItemID: "b01", Name: "Zinger Burger", Price: dec(t, "99.00"), Quantity: 9}},
		},
	}
}

func reportMenu(t *testing.T) model.Menu {
	t.Helper()
	return model.Menu{
		"Fast Food": {{ItemID: "b01", Name: model.LocalizedText{"en": "Zinger Burger"}, Price: dec(t, "10.00"), Available: true}},
		"Pizza":     {{ItemID: "p01", Name: model.LocalizedText{"en": "Margherita"}, Price: dec(t, "10.00"), Available: true}},
	}
}

func TestReportsSummary_PaidOnly(t *testing.T) {
	router := setupReportsRouter(t, reportOrders(t), reportMenu(t))

	rr := doRequest(t, router, "GET", "/reports/summary", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	resp := decodeObject(t, rr)
	if resp["order_count"] != float64(2) {
		t.Errorf("order_count = %v, want 2 (pending excluded)", resp["order_count"])
	}
	if resp["total_revenue"] != float64(30) {
		t.Errorf("total_revenue = %v, want 30", resp["total_revenue"])
	}
	if resp["average_order"] != float64(15) {
		t.Errorf("average_order = %v, want 15", resp["average_order"])
	}
}

func TestReportsSummary_Empty(t *testing.T) {
	router := setupReportsRouter(t, nil, model.Menu{})
	resp := decodeObject(t, doRequest(t, router, "GET", "/reports/summary", nil))
	if resp["order_count"] != float64(0) || resp["average_order"] != float64(0) {
		t.Errorf("empty summary = %v", resp)
	}
}

func TestReportsTopItems(t *testing.T) {
	router := setupReportsRouter(t, reportOrders(t), reportMenu(t))

	rr := doRequest(t, router, "GET", "/reports/top-items", nil)
	resp := decodeList(t, rr)
	if len(resp) != 2 {
		t.Fatalf("top items = %v", resp)
	}
	if resp[0]["item_id"] != "b01" || resp[0]["quantity_sold"] != float64(2) {
		t.Errorf("top item = %v, pending order quantities must not count", resp[0])
	}
	if resp[0]["category"] != "Fast Food" {
		t.Errorf("category = %v", resp[0]["category"])
	}

	rr = doRequest(t, router, "GET", "/reports/top-items?category=Pizza", nil)
	resp = decodeList(t, rr)
	if len(resp) != 1 || resp[0]["item_id"] != "p01" {
		t.Errorf("pizza top items = %v", resp)
	}

	rr = doRequest(t, router, "GET", "/reports/top-items?limit=0", nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("limit=0 status = %d, want 400", rr.Code)
	}
}

func TestReportsPaymentSummary(t *testing.T) {
	router := setupReportsRouter(t, reportOrders(t), reportMenu(t))

	resp := decodeList(t, doRequest(t, router, "GET", "/reports/payment-summary", nil))
	if len(resp) != 2 {
		t.Fatalf("payment summary = %v", resp)
	}
	// Sorted by method name: Card then Cash.
	if resp[0]["payment_method"] != "Card" || resp[0]["total_amount"] != float64(10) {
		t.Errorf("card row = %v", resp[0])
	}
	if resp[1]["payment_method"] != "Cash" || resp[1]["total_amount"] != float64(20) {
		t.Errorf("cash row = %v", resp[1])
	}
}

func TestReportsDailySales(t *testing.T) {
	router := setupReportsRouter(t, reportOrders(t), reportMenu(t))

	resp := decodeList(t, doRequest(t, router, "GET", "/reports/daily-sales", nil))
	if len(resp) != 2 {
		t.Fatalf("daily sales = %v", resp)
	}
	if resp[0]["date"] != "2026-08-29" || resp[0]["total_revenue"] != float64(20) {
		t.Errorf("first day = %v", resp[0])
	}
	if resp[1]["date"] != "2026-08-30" || resp[1]["order_count"] != float64(1) {
		t.Errorf("second day = %v, pending order must not count", resp[1])
	}
}

package handler

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sufra-pos/api/internal/model"
)

// ReportsStore defines the reads needed by report handlers.
// Satisfied by *store.OrderStore.
type ReportsStore interface {
	Paid() []model.Order
}

// ReportsMenu maps items to categories for the top-items breakdown.
// Satisfied by *store.MenuStore.
type ReportsMenu interface {
	GetAll() model.Menu
}

// ReportsHandler computes sales analytics for the admin panel. All
// numbers come from Paid orders only; pending orders are not revenue.
type ReportsHandler struct {
	orders ReportsStore
	menu   ReportsMenu
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(orders ReportsStore, menu ReportsMenu) *ReportsHandler {
	return &ReportsHandler{orders: orders, menu: menu}
}

// RegisterRoutes registers report endpoints. Expected to be mounted
// behind the admin auth middleware at /reports.
func (h *ReportsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/summary", h.Summary)
	r.Get("/top-items", h.TopItems)
	r.Get("/payment-summary", h.PaymentSummary)
	r.Get("/daily-sales", h.DailySales)
}

// --- Response types ---

type summaryResponse struct {
	OrderCount   int             `json:"order_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	AverageOrder decimal.Decimal `json:"average_order"`
}

type topItemResponse struct {
	ItemID       string          `json:"item_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	QuantitySold int             `json:"quantity_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type paymentSummaryResponse struct {
	PaymentMethod string          `json:"payment_method"`
	OrderCount    int             `json:"order_count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

type dailySalesResponse struct {
	Date         string          `json:"date"`
	OrderCount   int             `json:"order_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// --- Handlers ---

// Summary returns the overall revenue figures.
func (h *ReportsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	paid := h.orders.Paid()

	total := decimal.Zero
	for _, order := range paid {
		total = total.Add(order.TotalPrice)
	}

	resp := summaryResponse{OrderCount: len(paid), TotalRevenue: total}
	if len(paid) > 0 {
		resp.AverageOrder = total.Div(decimal.NewFromInt(int64(len(paid)))).Round(2)
	}
	writeJSON(w, http.StatusOK, resp)
}

// TopItems returns items ranked by quantity sold. The category query
// parameter narrows the ranking to one category, and limit caps the
// result (default 10).
func (h *ReportsHandler) TopItems(w http.ResponseWriter, r *http.Request) {
	categoryFilter := r.URL.Query().Get("category")
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	categoryOf := make(map[string]string)
	for category, items := range h.menu.GetAll() {
		for _, item := range items {
			categoryOf[item.ItemID] = category
		}
	}

	byItem := make(map[string]*topItemResponse)
	for _, order := range h.orders.Paid() {
		for _, line := range order.Items {
			category := categoryOf[line.ItemID]
			if categoryFilter != "" && category != categoryFilter {
				continue
			}
			entry, ok := byItem[line.ItemID]
			if !ok {
				entry = &topItemResponse{ItemID: line.ItemID, Name: line.Name, Category: category}
				byItem[line.ItemID] = entry
			}
			entry.QuantitySold += line.Quantity
			entry.TotalRevenue = entry.TotalRevenue.Add(
				line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
	}

	ranked := make([]topItemResponse, 0, len(byItem))
	for _, entry := range byItem {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].QuantitySold != ranked[j].QuantitySold {
			return ranked[i].QuantitySold > ranked[j].QuantitySold
		}
		return ranked[i].ItemID < ranked[j].ItemID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	writeJSON(w, http.StatusOK, ranked)
}

// PaymentSummary returns settled totals grouped by payment method.
func (h *ReportsHandler) PaymentSummary(w http.ResponseWriter, r *http.Request) {
	byMethod := make(map[string]*paymentSummaryResponse)
	for _, order := range h.orders.Paid() {
		method := ""
		if order.PaymentMethod != nil {
			method = *order.PaymentMethod
		}
		entry, ok := byMethod[method]
		if !ok {
			entry = &paymentSummaryResponse{PaymentMethod: method}
			byMethod[method] = entry
		}
		entry.OrderCount++
		entry.TotalAmount = entry.TotalAmount.Add(order.TotalPrice)
	}

	resp := make([]paymentSummaryResponse, 0, len(byMethod))
	for _, entry := range byMethod {
		resp = append(resp, *entry)
	}
	sort.Slice(resp, func(i, j int) bool { return resp[i].PaymentMethod < resp[j].PaymentMethod })
	writeJSON(w, http.StatusOK, resp)
}

// DailySales returns per-day order counts and revenue, oldest first.
// Orders are bucketed by the date prefix of their creation timestamp.
func (h *ReportsHandler) DailySales(w http.ResponseWriter, r *http.Request) {
	byDate := make(map[string]*dailySalesResponse)
	for _, order := range h.orders.Paid() {
		if len(order.Timestamp) < 10 {
			continue
		}
		date := order.Timestamp[:10]
		entry, ok := byDate[date]
		if !ok {
			entry = &dailySalesResponse{Date: date}
			byDate[date] = entry
		}
		entry.OrderCount++
		entry.TotalRevenue = entry.TotalRevenue.Add(order.TotalPrice)
	}

	resp := make([]dailySalesResponse, 0, len(byDate))
	for _, entry := range byDate {
		resp = append(resp, *entry)
	}
	sort.Slice(resp, func(i, j int) bool { return resp[i].Date < resp[j].Date })
	writeJSON(w, http.StatusOK, resp)
}

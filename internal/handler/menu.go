package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sufra-pos/api/internal/model"
)

// MenuStore defines the repository methods needed by menu handlers.
// Satisfied by *store.MenuStore; narrow interface for testability.
type MenuStore interface {
	GetAll() model.Menu
	GetItem(itemID string) (model.MenuItem, bool)
	GetAvailable(category string) model.Menu
	AddItem(category string, item model.MenuItem) bool
	UpdateItem(itemID string, updated model.MenuItem) bool
	DeleteItem(itemID string) bool
}

// MenuHandler handles the customer-facing menu reads and the admin CRUD.
type MenuHandler struct {
	store MenuStore
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(store MenuStore) *MenuHandler {
	return &MenuHandler{store: store}
}

// RegisterPublicRoutes registers the read-only customer endpoints.
func (h *MenuHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/menu", h.Available)
	r.Get("/menu/full", h.Full)
}

// RegisterAdminRoutes registers the menu CRUD endpoints.
// Expected to be mounted behind the admin auth middleware.
func (h *MenuHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/menu", h.Full)
	r.Post("/menu/items", h.CreateItem)
	r.Get("/menu/items/{id}", h.GetItem)
	r.Put("/menu/items/{id}", h.UpdateItem)
	r.Delete("/menu/items/{id}", h.DeleteItem)
}

// --- Request types ---

type menuItemRequest struct {
	ItemID      string              `json:"item_id"`
	Category    string              `json:"category"`
	Name        model.LocalizedText `json:"name"`
	Price       decimal.Decimal     `json:"price"`
	Description model.LocalizedText `json:"description"`
	Image       string              `json:"image"`
	Available   bool                `json:"available"`
}

func (req *menuItemRequest) toItem() model.MenuItem {
	return model.MenuItem{
		ItemID:      req.ItemID,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Available:   req.Available,
	}
}

// --- Handlers ---

// Available returns available items, grouped by category. The category
// query parameter narrows the result to one category.
func (h *MenuHandler) Available(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.GetAvailable(r.URL.Query().Get("category")))
}

// Full returns the whole menu document, unavailable items included.
func (h *MenuHandler) Full(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.GetAll())
}

// GetItem returns a single item by id.
func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.store.GetItem(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// CreateItem adds a new item to its category, creating the category key
// when it does not exist yet.
func (h *MenuHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "item_id is required")
		return
	}
	if req.Category == "" {
		writeError(w, http.StatusBadRequest, "category is required")
		return
	}
	if req.Name["en"] == "" {
		writeError(w, http.StatusBadRequest, "name.en is required")
		return
	}
	if req.Price.IsNegative() {
		writeError(w, http.StatusBadRequest, "price must be >= 0")
		return
	}
	if _, exists := h.store.GetItem(req.ItemID); exists {
		writeError(w, http.StatusConflict, "item_id already exists")
		return
	}

	item := req.toItem()
	if !h.store.AddItem(req.Category, item) {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// UpdateItem replaces an item in place, whatever category it lives in.
func (h *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Price.IsNegative() {
		writeError(w, http.StatusBadRequest, "price must be >= 0")
		return
	}

	item := req.toItem()
	item.ItemID = chi.URLParam(r, "id")
	if !h.store.UpdateItem(item.ItemID, item) {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DeleteItem removes an item from the menu.
func (h *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if !h.store.DeleteItem(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

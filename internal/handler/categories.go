package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sufra-pos/api/internal/model"
)

// CategoryStore defines the repository methods needed by category
// handlers. Satisfied by *store.CategoryStore.
type CategoryStore interface {
	All() []model.Category
	ActiveSorted() []model.Category
	Add(category model.Category) bool
	Update(categoryID string, updated model.Category) bool
	Delete(categoryID string) bool
	NextOrder() int
}

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	store CategoryStore
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(store CategoryStore) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// RegisterPublicRoutes registers the customer-facing category listing.
func (h *CategoryHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/categories", h.ListActive)
}

// RegisterAdminRoutes registers category CRUD endpoints.
func (h *CategoryHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/categories", h.ListAll)
	r.Post("/categories", h.Create)
	r.Put("/categories/{id}", h.Update)
	r.Delete("/categories/{id}", h.Delete)
}

type categoryRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	Active      bool    `json:"active"`
	SortOrder   *int    `json:"order"`
}

func (req *categoryRequest) toCategory() model.Category {
	return model.Category{
		ID:          req.ID,
		Name:        req.Name,
		Icon:        req.Icon,
		Description: req.Description,
		Image:       req.Image,
		Active:      req.Active,
		SortOrder:   req.SortOrder,
	}
}

// ListActive returns active categories in display order.
func (h *CategoryHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ActiveSorted())
}

// ListAll returns every category, inactive ones included.
func (h *CategoryHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.All())
}

// Create adds a category. A missing order slots it after the current
// highest.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	for _, existing := range h.store.All() {
		if existing.ID == req.ID {
			writeError(w, http.StatusConflict, "id already exists")
			return
		}
	}

	category := req.toCategory()
	if category.SortOrder == nil {
		next := h.store.NextOrder()
		category.SortOrder = &next
	}
	if !h.store.Add(category) {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

// Update replaces a category by id.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category := req.toCategory()
	category.ID = chi.URLParam(r, "id")
	if !h.store.Update(category.ID, category) {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// Delete removes a category. Menu items filed under it are left alone;
// they keep showing under their category name in the menu document.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.store.Delete(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

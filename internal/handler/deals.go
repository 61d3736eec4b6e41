package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sufra-pos/api/internal/model"
)

// DealStore defines the repository methods needed by deal handlers.
// Satisfied by *store.DealStore.
type DealStore interface {
	All() []model.Deal
	Active() []model.Deal
	Add(deal model.Deal) bool
	Update(dealID string, updated model.Deal) bool
	Delete(dealID string) bool
	NextID() string
}

// DealHandler handles deal endpoints.
type DealHandler struct {
	store DealStore
}

// NewDealHandler creates a new DealHandler.
func NewDealHandler(store DealStore) *DealHandler {
	return &DealHandler{store: store}
}

// RegisterPublicRoutes registers the customer-facing deal listing.
func (h *DealHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/deals", h.ListActive)
}

// RegisterAdminRoutes registers deal CRUD endpoints.
func (h *DealHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/deals", h.ListAll)
	r.Post("/deals", h.Create)
	r.Put("/deals/{id}", h.Update)
	r.Delete("/deals/{id}", h.Delete)
}

type dealRequest struct {
	Name            model.LocalizedText `json:"name"`
	Description     model.LocalizedText `json:"description"`
	DiscountPercent int                 `json:"discount_percent"`
	ApplicableItems []string            `json:"applicable_items"`
	MinItems        int                 `json:"min_items"`
	Image           *string             `json:"image"`
	Active          bool                `json:"active"`
}

func (req *dealRequest) toDeal() model.Deal {
	return model.Deal{
		Name:            req.Name,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		ApplicableItems: req.ApplicableItems,
		MinItems:        req.MinItems,
		Image:           req.Image,
		Active:          req.Active,
	}
}

func validDiscount(percent int) bool {
	return percent >= 0 && percent <= 100
}

// ListActive returns the deals shown to customers.
func (h *DealHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Active())
}

// ListAll returns every deal, inactive ones included.
func (h *DealHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.All())
}

// Create adds a deal. The id is assigned by the store ("d01", "d02", ...).
func (h *DealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name["en"] == "" {
		writeError(w, http.StatusBadRequest, "name.en is required")
		return
	}
	if !validDiscount(req.DiscountPercent) {
		writeError(w, http.StatusBadRequest, "discount_percent must be between 0 and 100")
		return
	}

	deal := req.toDeal()
	deal.DealID = h.store.NextID()
	if !h.store.Add(deal) {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, deal)
}

// Update replaces a deal by id.
func (h *DealHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validDiscount(req.DiscountPercent) {
		writeError(w, http.StatusBadRequest, "discount_percent must be between 0 and 100")
		return
	}

	deal := req.toDeal()
	deal.DealID = chi.URLParam(r, "id")
	if !h.store.Update(deal.DealID, deal) {
		writeError(w, http.StatusNotFound, "deal not found")
		return
	}
	writeJSON(w, http.StatusOK, deal)
}

// Delete removes a deal.
func (h *DealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.store.Delete(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "deal not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

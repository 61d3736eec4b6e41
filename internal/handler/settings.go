package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sufra-pos/api/internal/model"
)

// SettingsStore defines the repository methods needed by settings
// handlers. Satisfied by *store.SettingsStore.
type SettingsStore interface {
	Get() model.Settings
	Save(settings model.Settings) bool
}

// SettingsHandler serves the branding configuration. Reads are public so
// the customer surfaces can theme themselves; writes are admin-only.
type SettingsHandler struct {
	store SettingsStore
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(store SettingsStore) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// RegisterPublicRoutes registers the settings read endpoint.
func (h *SettingsHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/settings", h.Get)
}

// RegisterAdminRoutes registers the settings write endpoint.
func (h *SettingsHandler) RegisterAdminRoutes(r chi.Router) {
	r.Put("/settings", h.Update)
}

// Get returns the current settings, defaults when nothing is stored.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Get())
}

// Update replaces the settings document.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var settings model.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if settings.RestaurantName == "" {
		writeError(w, http.StatusBadRequest, "restaurant_name is required")
		return
	}
	if !h.store.Save(settings) {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

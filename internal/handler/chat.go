package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sufra-pos/api/internal/chat"
	"github.com/sufra-pos/api/internal/model"
)

// ChatSessions is the slice of the session manager the handlers need.
// Satisfied by *chat.SessionManager.
type ChatSessions interface {
	Start(ctx context.Context, tableID int, menu model.Menu, deals []model.Deal) (*chat.Session, string, error)
	Get(sessionID string) (*chat.Session, bool)
	End(sessionID string)
	Send(ctx context.Context, sessionID, userMessage string) (chat.SendResult, bool, error)
	Cart(sessionID string) ([]model.OrderItem, bool)
	ClearCart(sessionID string)
}

// ChatMenu provides the available menu for the assistant's prompt.
// Satisfied by *store.MenuStore.
type ChatMenu interface {
	GetAvailable(category string) model.Menu
}

// ChatDeals provides the active deals for the assistant's prompt.
// Satisfied by *store.DealStore.
type ChatDeals interface {
	Active() []model.Deal
}

// ChatCheckout turns a session cart into an order.
// Satisfied by *service.OrderService.
type ChatCheckout interface {
	CreateOrderFromLines(tableID int, lines []model.OrderItem) (model.Order, error)
}

// ChatHandler exposes the conversational ordering flow.
type ChatHandler struct {
	sessions ChatSessions
	menu     ChatMenu
	deals    ChatDeals
	checkout ChatCheckout
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(sessions ChatSessions, menu ChatMenu, deals ChatDeals, checkout ChatCheckout) *ChatHandler {
	return &ChatHandler{sessions: sessions, menu: menu, deals: deals, checkout: checkout}
}

// RegisterTableRoutes registers session creation inside /tables/{tid}.
func (h *ChatHandler) RegisterTableRoutes(r chi.Router) {
	r.Post("/chat/sessions", h.StartSession)
}

// RegisterSessionRoutes registers session-scoped endpoints at
// /chat/sessions.
func (h *ChatHandler) RegisterSessionRoutes(r chi.Router) {
	r.Post("/{sid}/messages", h.SendMessage)
	r.Get("/{sid}/cart", h.GetCart)
	r.Delete("/{sid}/cart", h.ClearCart)
	r.Post("/{sid}/checkout", h.Checkout)
	r.Delete("/{sid}", h.EndSession)
}

// --- Request / Response types ---

type startSessionResponse struct {
	SessionID string `json:"session_id"`
	TableID   int    `json:"table_id"`
	Greeting  string `json:"greeting"`
}

type sendMessageRequest struct {
	Message string `json:"message"`
}

type sendMessageResponse struct {
	Reply string            `json:"reply"`
	Added []model.OrderItem `json:"added"`
	Cart  []model.OrderItem `json:"cart"`
}

// --- Handlers ---

// StartSession opens a conversation for the table in the path. The
// assistant sees the menu and deals as they are at this moment.
func (h *ChatHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	tableID, err := strconv.Atoi(chi.URLParam(r, "tid"))
	if err != nil || tableID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid table ID")
		return
	}

	session, greeting, err := h.sessions.Start(r.Context(), tableID, h.menu.GetAvailable(""), h.deals.Active())
	if err != nil {
		log.Printf("ERROR: start chat session: %v", err)
		writeError(w, http.StatusBadGateway, "assistant unavailable")
		return
	}
	writeJSON(w, http.StatusCreated, startSessionResponse{
		SessionID: session.ID,
		TableID:   session.TableID,
		Greeting:  greeting,
	})
}

// SendMessage runs one conversation turn.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	result, found, err := h.sessions.Send(r.Context(), chi.URLParam(r, "sid"), req.Message)
	if !found {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		log.Printf("ERROR: chat send: %v", err)
		writeError(w, http.StatusBadGateway, "assistant unavailable")
		return
	}
	writeJSON(w, http.StatusOK, sendMessageResponse{
		Reply: result.Reply,
		Added: result.Added,
		Cart:  result.Cart,
	})
}

// GetCart returns the session's cart lines.
func (h *ChatHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.sessions.Cart(chi.URLParam(r, "sid"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// ClearCart empties the session's cart.
func (h *ChatHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sid := chi.URLParam(r, "sid")
	if _, ok := h.sessions.Get(sid); !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	h.sessions.ClearCart(sid)
	w.WriteHeader(http.StatusNoContent)
}

// Checkout places an order from the session cart and clears the cart.
// Cart lines keep the prices they were added at.
func (h *ChatHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sid := chi.URLParam(r, "sid")
	session, ok := h.sessions.Get(sid)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	cart, _ := h.sessions.Cart(sid)
	order, err := h.checkout.CreateOrderFromLines(session.TableID, cart)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.sessions.ClearCart(sid)
	writeJSON(w, http.StatusCreated, order)
}

// EndSession closes the conversation and drops its cart.
func (h *ChatHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	sid := chi.URLParam(r, "sid")
	if _, ok := h.sessions.Get(sid); !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	h.sessions.End(sid)
	w.WriteHeader(http.StatusNoContent)
}

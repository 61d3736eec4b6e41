package chat

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/sufra-pos/api/internal/enum"
	"github.com/sufra-pos/api/internal/model"
)

// MenuGetter resolves a directive's item id to the current menu item.
// Satisfied by *store.MenuStore.
type MenuGetter interface {
	GetItem(itemID string) (model.MenuItem, bool)
}

// AssistantFactory builds an assistant for one table's conversation.
// The server wires the Gemini client here when an API key is configured
// and the offline fallback otherwise.
type AssistantFactory func(tableID int, menu model.Menu, deals []model.Deal) Assistant

// Session is one customer conversation at one table. All access goes
// through the SessionManager, which holds the lock.
type Session struct {
	ID        string
	TableID   int
	assistant Assistant
	history   []Message
	cart      []model.OrderItem
}

// SendResult is what one conversation turn produced.
type SendResult struct {
	Reply string            // visible text, directives stripped
	Added []model.OrderItem // lines added to the cart by this turn
	Cart  []model.OrderItem // full cart after this turn
}

// SessionManager owns the live chat sessions. Sessions exist only in
// memory; a restart drops them, which matches the cart being a draft
// until checkout.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	menu       MenuGetter
	newSession AssistantFactory
}

// NewSessionManager creates a manager that resolves directives against
// menu and builds assistants with factory.
func NewSessionManager(menu MenuGetter, factory AssistantFactory) *SessionManager {
	return &SessionManager{
		sessions:   make(map[string]*Session),
		menu:       menu,
		newSession: factory,
	}
}

// Start opens a session for a table and returns it with the assistant's
// greeting already appended to the history.
func (m *SessionManager) Start(ctx context.Context, tableID int, menu model.Menu, deals []model.Deal) (*Session, string, error) {
	session := &Session{
		ID:        uuid.NewString(),
		TableID:   tableID,
		assistant: m.newSession(tableID, menu, deals),
	}

	greeting, err := session.assistant.Greet(ctx)
	if err != nil {
		return nil, "", err
	}
	session.history = append(session.history, Message{Role: RoleAssistant, Content: greeting})

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	return session, greeting, nil
}

// Get returns the session with the given id, if it exists.
func (m *SessionManager) Get(sessionID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[sessionID]
	return session, ok
}

// End removes a session. Ending an unknown session is a no-op.
func (m *SessionManager) End(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// Send runs one conversation turn: the user message goes to the
// assistant, order directives in the reply are resolved against the
// current menu and merged into the session cart, and the stripped reply
// comes back. Directives naming unknown or unavailable items are
// dropped silently; the assistant was told the available menu.
func (m *SessionManager) Send(ctx context.Context, sessionID, userMessage string) (SendResult, bool, error) {
	m.mu.Lock()
	session, ok := m.sessions[sessionID]
	if !ok {
		m.mu.Unlock()
		return SendResult{}, false, nil
	}
	history := make([]Message, len(session.history))
	copy(history, session.history)
	m.mu.Unlock()

	reply, err := session.assistant.Send(ctx, history, userMessage)
	if err != nil {
		return SendResult{}, true, err
	}

	var added []model.OrderItem
	for _, d := range ParseDirectives(reply) {
		item, found := m.menu.GetItem(d.ItemID)
		if !found || !item.Available {
			continue
		}
		added = append(added, model.OrderItem{
			ItemID:   item.ItemID,
			Name:     item.Name.In(enum.LangEnglish),
			Price:    item.Price.Round(2),
			Quantity: d.Quantity,
		})
	}

	visible := StripDirectives(reply)

	m.mu.Lock()
	session.history = append(session.history,
		Message{Role: RoleUser, Content: userMessage},
		Message{Role: RoleAssistant, Content: reply},
	)
	for _, line := range added {
		session.addLine(line)
	}
	cart := session.cartCopy()
	m.mu.Unlock()

	return SendResult{Reply: visible, Added: added, Cart: cart}, true, nil
}

// Cart returns a copy of the session's cart lines.
func (m *SessionManager) Cart(sessionID string) ([]model.OrderItem, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, false
	}
	return session.cartCopy(), true
}

// ClearCart empties the session's cart, typically after checkout.
func (m *SessionManager) ClearCart(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if session, ok := m.sessions[sessionID]; ok {
		session.cart = nil
	}
}

// addLine merges a line into the cart, summing quantities when the item
// is already present.
func (s *Session) addLine(line model.OrderItem) {
	for i := range s.cart {
		if s.cart[i].ItemID == line.ItemID {
			s.cart[i].Quantity += line.Quantity
			return
		}
	}
	s.cart = append(s.cart, line)
}

func (s *Session) cartCopy() []model.OrderItem {
	cart := make([]model.OrderItem, len(s.cart))
	copy(cart, s.cart)
	return cart
}

package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/sufra-pos/api/internal/enum"
	"github.com/sufra-pos/api/internal/model"
)

// FallbackAssistant answers without the external API. It cannot take
// orders conversationally, so it never emits order directives; it points
// the customer at the menu instead.
type FallbackAssistant struct {
	tableID int
	menu    model.Menu
	deals   []model.Deal
}

// NewFallbackAssistant creates the offline assistant for one table.
func NewFallbackAssistant(tableID int, menu model.Menu, deals []model.Deal) *FallbackAssistant {
	return &FallbackAssistant{tableID: tableID, menu: menu, deals: deals}
}

func (a *FallbackAssistant) Greet(ctx context.Context) (string, error) {
	return fmt.Sprintf("Welcome! You are at table %d. Our categories: %s. Ask about the menu or deals, or order from the menu directly.",
		a.tableID, strings.Join(sortedCategories(a.menu), ", ")), nil
}

func (a *FallbackAssistant) Send(ctx context.Context, history []Message, userMessage string) (string, error) {
	lower := strings.ToLower(userMessage)

	switch {
	case containsAny(lower, "deal", "offer", "discount", "combo"):
		if len(a.deals) == 0 {
			return "There are no active deals right now.", nil
		}
		var b strings.Builder
		b.WriteString("Current deals:\n")
		for _, deal := range a.deals {
			fmt.Fprintf(&b, "- %s (%d%% off)\n", deal.Name.In(enum.LangEnglish), deal.DiscountPercent)
		}
		return b.String(), nil

	case containsAny(lower, "menu", "food", "order", "eat", "hungry"):
		var b strings.Builder
		b.WriteString("Menu:\n")
		for _, category := range sortedCategories(a.menu) {
			fmt.Fprintf(&b, "## %s\n", category)
			for _, item := range a.menu[category] {
				fmt.Fprintf(&b, "- %s - %s\n", item.Name.In(enum.LangEnglish), item.Price.StringFixed(2))
			}
		}
		return b.String(), nil

	default:
		return fmt.Sprintf("You are at table %d. I'm in offline mode; browse the menu to place your order, or ask about the menu or deals.", a.tableID), nil
	}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

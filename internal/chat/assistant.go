package chat

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sufra-pos/api/internal/enum"
	"github.com/sufra-pos/api/internal/model"
)

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Assistant produces replies for a table-scoped ordering conversation.
// Replies may contain order directives; the caller extracts and strips
// them.
type Assistant interface {
	Greet(ctx context.Context) (string, error)
	Send(ctx context.Context, history []Message, userMessage string) (string, error)
}

// systemPrompt describes the menu and the directive contract to the
// model. The tag format here must stay in sync with ParseDirectives.
func systemPrompt(tableID int, menu model.Menu, deals []model.Deal) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are the ordering assistant for table %d of a restaurant.\n", tableID)
	b.WriteString("Detect the customer's language (English, Urdu or Arabic) and reply in it.\n")
	b.WriteString("When the customer confirms items, append one hidden tag per item in the exact form [ORDER: item_id, quantity]. Never show item ids in the visible text.\n")

	b.WriteString("\nMenu:\n")
	for _, category := range sortedCategories(menu) {
		fmt.Fprintf(&b, "## %s\n", category)
		for _, item := range menu[category] {
			if !item.Available {
				continue
			}
			fmt.Fprintf(&b, "- %s (ID: %s) - %s", item.Name.In(enum.LangEnglish), item.ItemID, item.Price.StringFixed(2))
			if desc := item.Description.In(enum.LangEnglish); desc != "" {
				fmt.Fprintf(&b, " - %s", desc)
			}
			b.WriteString("\n")
		}
	}

	if len(deals) > 0 {
		b.WriteString("\nActive deals:\n")
		for _, deal := range deals {
			fmt.Fprintf(&b, "- %s (%d%% off): %s\n",
				deal.Name.In(enum.LangEnglish), deal.DiscountPercent, deal.Description.In(enum.LangEnglish))
		}
	}

	return b.String()
}

func sortedCategories(menu model.Menu) []string {
	categories := make([]string, 0, len(menu))
	for category := range menu {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Package model defines the document schemas persisted by the store.
// Field tags match the on-disk JSON produced by earlier versions of the
// system, so existing data files load unchanged.
package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/sufra-pos/api/internal/enum"
)

func init() {
	// Prices and totals are stored as plain JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// LocalizedText maps a language code ("en", "ur", "ar") to display text.
type LocalizedText map[string]string

// In returns the text for the given language, falling back to English.
func (t LocalizedText) In(lang string) string {
	if s, ok := t[lang]; ok && s != "" {
		return s
	}
	return t[enum.LangEnglish]
}

// MenuItem is one dish. Items live inside their category's list in the
// menu document; there is no separate item collection.
type MenuItem struct {
	ItemID      string          `json:"item_id"`
	Name        LocalizedText   `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description LocalizedText   `json:"description"`
	Image       string          `json:"image"`
	Available   bool            `json:"available"`
}

// UnmarshalJSON defaults a missing "available" key to true. Documents
// written by earlier versions of the system omit the flag for items
// that were never hidden.
func (m *MenuItem) UnmarshalJSON(data []byte) error {
	type alias MenuItem
	aux := struct {
		Available *bool `json:"available"`
		*alias
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.Available = aux.Available == nil || *aux.Available
	return nil
}

// Menu maps a category display name to its ordered list of items.
type Menu map[string][]MenuItem

// Category is a display shelf for menu items. SortOrder is a pointer so a
// category written without the field can be told apart from order 0.
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	Active      bool    `json:"active"`
	SortOrder   *int    `json:"order,omitempty"`
}

// UnmarshalJSON defaults a missing "active" key to true, matching the
// menu item flag. Deals are the opposite: a deal without "active" stays
// inactive, so Deal carries no such default.
func (c *Category) UnmarshalJSON(data []byte) error {
	type alias Category
	aux := struct {
		Active *bool `json:"active"`
		*alias
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.Active = aux.Active == nil || *aux.Active
	return nil
}

// Deal is a promotional discount over a set of menu items.
type Deal struct {
	DealID          string        `json:"deal_id"`
	Name            LocalizedText `json:"name"`
	Description     LocalizedText `json:"description"`
	DiscountPercent int           `json:"discount_percent"`
	ApplicableItems []string      `json:"applicable_items"`
	MinItems        int           `json:"min_items"`
	Image           *string       `json:"image"`
	Active          bool          `json:"active"`
}

// OrderItem is one line of an order. Name and Price are snapshots taken
// when the cart was built; menu edits never change recorded lines.
type OrderItem struct {
	ItemID   string          `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Order is a customer order for one table. PaymentMethod and
// PaidTimestamp stay nil until the order transitions to Paid.
type Order struct {
	OrderID       int             `json:"order_id"`
	TableID       int             `json:"table_id"`
	Items         []OrderItem     `json:"items"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        string          `json:"status"`
	PaymentMethod *string         `json:"payment_method"`
	Timestamp     string          `json:"timestamp"`
	PaidTimestamp *string         `json:"paid_timestamp"`
}

// Settings holds the admin-editable branding configuration.
type Settings struct {
	Logo           *string `json:"logo"`
	RestaurantName string  `json:"restaurant_name"`
	Theme          string  `json:"theme"`
}

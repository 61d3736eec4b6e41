package store

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sufra-pos/api/internal/model"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func testItem(t *testing.T, id, name, price string) model.MenuItem {
	t.Helper()
	return model.MenuItem{
		ItemID:      id,
		Name:        model.LocalizedText{"en": name},
		Price:       dec(t, price),
		Description: model.LocalizedText{"en": ""},
		Image:       "img/" + id + ".jpg",
		Available:   true,
	}
}

func intPtr(n int) *int {
	return &n
}

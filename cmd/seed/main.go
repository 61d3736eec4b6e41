package main

import (
	"flag"
	"log"

	"github.com/shopspring/decimal"

	"github.com/sufra-pos/api/internal/model"
	"github.com/sufra-pos/api/internal/store"
)

func main() {
	dataDir := flag.String("data", "data", "Data directory to seed")
	name := flag.String("name", "Sufra", "Restaurant display name")
	flag.Parse()

	st, err := store.Open(*dataDir)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	seedCategories(st)
	seedMenu(st)
	seedDeals(st)

	st.Settings.Save(model.Settings{
		RestaurantName: *name,
		Theme:          "dark_luxury",
	})

	log.Printf("Seeded sample data into %s", *dataDir)
}

func intPtr(n int) *int { return &n }

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedCategories(st *store.Store) {
	categories := []model.Category{
		{ID: "fastfood", Name: "Fast Food", Icon: "🍔", Active: true, SortOrder: intPtr(1)},
		{ID: "pizza", Name: "Pizza", Icon: "🍕", Active: true, SortOrder: intPtr(2)},
		{ID: "bbq", Name: "Meat & BBQ", Icon: "🍖", Active: true, SortOrder: intPtr(3)},
		{ID: "tea", Name: "Tea", Icon: "🍵", Active: true, SortOrder: intPtr(4)},
		{ID: "icecream", Name: "Ice Cream", Icon: "🍦", Active: true, SortOrder: intPtr(5)},
	}
	for _, c := range categories {
		if !st.Categories.Add(c) {
			log.Fatalf("seed category %s failed", c.ID)
		}
	}
}

func seedMenu(st *store.Store) {
	items := []struct {
		category string
		item     model.MenuItem
	}{
		{"Fast Food", model.MenuItem{
			ItemID:      "b01",
			Name:        model.LocalizedText{"en": "Zinger Burger", "ur": "زنگر برگر", "ar": "برجر زنجر"},
			Price:       price("8.50"),
			Description: model.LocalizedText{"en": "Crispy fried chicken fillet with mayo"},
			Available:   true,
		}},
		{"Fast Food", model.MenuItem{
			ItemID:    "b02",
			Name:      model.LocalizedText{"en": "Chicken Shawarma", "ur": "چکن شوارما", "ar": "شاورما دجاج"},
			Price:     price("5.00"),
			Available: true,
		}},
		{"Pizza", model.MenuItem{
			ItemID:      "p01",
			Name:        model.LocalizedText{"en": "Margherita", "ar": "مارغريتا"},
			Price:       price("12.00"),
			Description: model.LocalizedText{"en": "Tomato, mozzarella, basil"},
			Available:   true,
		}},
		{"Pizza", model.MenuItem{
			ItemID:    "p02",
			Name:      model.LocalizedText{"en": "Chicken Tikka Pizza", "ur": "چکن تکہ پیزا"},
			Price:     price("14.50"),
			Available: true,
		}},
		{"Meat & BBQ", model.MenuItem{
			ItemID:      "m01",
			Name:        model.LocalizedText{"en": "Seekh Kebab", "ur": "سیخ کباب", "ar": "كباب سيخ"},
			Price:       price("10.00"),
			Description: model.LocalizedText{"en": "Charcoal-grilled minced lamb skewers"},
			Available:   true,
		}},
		{"Tea", model.MenuItem{
			ItemID:    "t01",
			Name:      model.LocalizedText{"en": "Doodh Patti", "ur": "دودھ پتی"},
			Price:     price("2.00"),
			Available: true,
		}},
		{"Tea", model.MenuItem{
			ItemID:    "t02",
			Name:      model.LocalizedText{"en": "Karak Chai", "ar": "شاي كرك"},
			Price:     price("2.50"),
			Available: true,
		}},
		{"Ice Cream", model.MenuItem{
			ItemID:    "i01",
			Name:      model.LocalizedText{"en": "Kulfi", "ur": "قلفی"},
			Price:     price("4.00"),
			Available: true,
		}},
	}
	for _, entry := range items {
		if !st.Menu.AddItem(entry.category, entry.item) {
			log.Fatalf("seed item %s failed", entry.item.ItemID)
		}
	}
}

func seedDeals(st *store.Store) {
	deals := []model.Deal{
		{
			Name:            model.LocalizedText{"en": "Family Feast", "ur": "فیملی فیسٹ"},
			Description:     model.LocalizedText{"en": "15% off when ordering 3 or more BBQ items"},
			DiscountPercent: 15,
			ApplicableItems: []string{"m01"},
			MinItems:        3,
			Active:          true,
		},
		{
			Name:            model.LocalizedText{"en": "Pizza Tuesday", "ar": "ثلاثاء البيتزا"},
			Description:     model.LocalizedText{"en": "10% off all pizzas"},
			DiscountPercent: 10,
			ApplicableItems: []string{"p01", "p02"},
			MinItems:        1,
			Active:          true,
		},
	}
	for _, d := range deals {
		d.DealID = st.Deals.NextID()
		if !st.Deals.Add(d) {
			log.Fatalf("seed deal %s failed", d.DealID)
		}
	}
}

package store

import (
	"errors"
	"log"
	"path/filepath"

	"github.com/sufra-pos/api/internal/model"
)

const menuFile = "menu.json"

// MenuStore is the repository over the menu document: a mapping from
// category display name to an ordered list of items.
type MenuStore struct {
	doc *Document[model.Menu]
}

// NewMenuStore creates a MenuStore backed by dataDir/menu.json.
func NewMenuStore(dataDir string) *MenuStore {
	return &MenuStore{doc: NewDocument[model.Menu](filepath.Join(dataDir, menuFile))}
}

// GetAll returns the full menu. A missing or unreadable document yields
// an empty menu; callers cannot tell the two apart.
func (s *MenuStore) GetAll() model.Menu {
	menu, err := s.doc.Load()
	if err != nil {
		if !errors.Is(err, ErrNotExist) {
			log.Printf("ERROR: load menu: %v", err)
		}
		return model.Menu{}
	}
	if menu == nil {
		menu = model.Menu{}
	}
	return menu
}

func (s *MenuStore) save(menu model.Menu) bool {
	if err := s.doc.Save(menu); err != nil {
		log.Printf("ERROR: save menu: %v", err)
		return false
	}
	return true
}

// GetItem scans all categories for the first item with the given id.
// Item ids are assumed globally unique; the first match wins.
func (s *MenuStore) GetItem(itemID string) (model.MenuItem, bool) {
	for _, items := range s.GetAll() {
		for _, item := range items {
			if item.ItemID == itemID {
				return item, true
			}
		}
	}
	return model.MenuItem{}, false
}

// AddItem appends the item to the category's list, creating the category
// key if it does not exist yet.
func (s *MenuStore) AddItem(category string, item model.MenuItem) bool {
	menu := s.GetAll()
	menu[category] = append(menu[category], item)
	return s.save(menu)
}

// UpdateItem replaces the first item whose id matches, in place, in
// whichever category currently holds it. Returns false if no item
// matches.
func (s *MenuStore) UpdateItem(itemID string, updated model.MenuItem) bool {
	menu := s.GetAll()
	for category, items := range menu {
		for i, item := range items {
			if item.ItemID == itemID {
				menu[category][i] = updated
				return s.save(menu)
			}
		}
	}
	return false
}

// DeleteItem removes the first item whose id matches. The category key
// stays in the document even when its list becomes empty.
func (s *MenuStore) DeleteItem(itemID string) bool {
	menu := s.GetAll()
	for category, items := range menu {
		for i, item := range items {
			if item.ItemID == itemID {
				menu[category] = append(items[:i], items[i+1:]...)
				return s.save(menu)
			}
		}
	}
	return false
}

// GetAvailable returns only available items, optionally restricted to a
// single category. Categories left empty after filtering are omitted.
func (s *MenuStore) GetAvailable(category string) model.Menu {
	result := model.Menu{}
	for cat, items := range s.GetAll() {
		if category != "" && cat != category {
			continue
		}
		var available []model.MenuItem
		for _, item := range items {
			if item.Available {
				available = append(available, item)
			}
		}
		if len(available) > 0 {
			result[cat] = available
		}
	}
	return result
}

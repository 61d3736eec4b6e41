package store

import (
	"errors"
	"log"
	"path/filepath"
	"sort"

	"github.com/sufra-pos/api/internal/model"
)

const categoriesFile = "categories.json"

// Categories written without a sort order sort after everything else.
const missingOrderSentinel = 999

// CategoryStore is the repository over the categories document.
type CategoryStore struct {
	doc *Document[[]model.Category]
}

// NewCategoryStore creates a CategoryStore backed by
// dataDir/categories.json.
func NewCategoryStore(dataDir string) *CategoryStore {
	return &CategoryStore{doc: NewDocument[[]model.Category](filepath.Join(dataDir, categoriesFile))}
}

// All returns every category. A missing or unreadable document yields an
// empty list.
func (s *CategoryStore) All() []model.Category {
	categories, err := s.doc.Load()
	if err != nil {
		if !errors.Is(err, ErrNotExist) {
			log.Printf("ERROR: load categories: %v", err)
		}
		return []model.Category{}
	}
	return categories
}

func (s *CategoryStore) save(categories []model.Category) bool {
	if err := s.doc.Save(categories); err != nil {
		log.Printf("ERROR: save categories: %v", err)
		return false
	}
	return true
}

// ActiveSorted returns active categories sorted ascending by sort order.
// Categories missing the field sort last.
func (s *CategoryStore) ActiveSorted() []model.Category {
	var active []model.Category
	for _, c := range s.All() {
		if c.Active {
			active = append(active, c)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return sortOrderOf(active[i]) < sortOrderOf(active[j])
	})
	return active
}

func sortOrderOf(c model.Category) int {
	if c.SortOrder == nil {
		return missingOrderSentinel
	}
	return *c.SortOrder
}

// Add appends a category and persists.
func (s *CategoryStore) Add(category model.Category) bool {
	categories := s.All()
	categories = append(categories, category)
	return s.save(categories)
}

// Update replaces the first category whose id matches. Returns false if
// no category matches.
func (s *CategoryStore) Update(categoryID string, updated model.Category) bool {
	categories := s.All()
	for i, c := range categories {
		if c.ID == categoryID {
			categories[i] = updated
			return s.save(categories)
		}
	}
	return false
}

// Delete removes the first category whose id matches. Items filed under
// the category are left in the menu document untouched. Returns false if
// no category matches.
func (s *CategoryStore) Delete(categoryID string) bool {
	categories := s.All()
	for i, c := range categories {
		if c.ID == categoryID {
			categories = append(categories[:i], categories[i+1:]...)
			return s.save(categories)
		}
	}
	return false
}

// NextOrder returns one more than the current maximum sort order, or 1
// when no categories exist. Categories missing the field count as 0.
func (s *CategoryStore) NextOrder() int {
	categories := s.All()
	if len(categories) == 0 {
		return 1
	}
	max := 0
	for _, c := range categories {
		if c.SortOrder != nil && *c.SortOrder > max {
			max = *c.SortOrder
		}
	}
	return max + 1
}

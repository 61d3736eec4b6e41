package store

import (
	"fmt"
	"os"
)

// Store bundles the per-document repositories over one data directory.
// Each repository owns its own document and lock; there is no
// cross-document coordination.
type Store struct {
	Menu       *MenuStore
	Orders     *OrderStore
	Deals      *DealStore
	Categories *CategoryStore
	Settings   *SettingsStore
}

// Open creates the data directory if needed and returns the repositories.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}
	return &Store{
		Menu:       NewMenuStore(dataDir),
		Orders:     NewOrderStore(dataDir),
		Deals:      NewDealStore(dataDir),
		Categories: NewCategoryStore(dataDir),
		Settings:   NewSettingsStore(dataDir),
	}, nil
}

package store

import (
	"errors"
	"log"
	"path/filepath"

	"github.com/sufra-pos/api/internal/model"
)

const settingsFile = "settings.json"

// SettingsStore is the repository over the settings document, read and
// written by the admin surface only.
type SettingsStore struct {
	doc *Document[model.Settings]
}

// NewSettingsStore creates a SettingsStore backed by
// dataDir/settings.json.
func NewSettingsStore(dataDir string) *SettingsStore {
	return &SettingsStore{doc: NewDocument[model.Settings](filepath.Join(dataDir, settingsFile))}
}

// DefaultSettings is what Get returns before anything has been saved.
func DefaultSettings() model.Settings {
	return model.Settings{
		RestaurantName: "Restaurant",
		Theme:          "dark_luxury",
	}
}

// Get returns the settings, or the defaults when the document is missing
// or unreadable.
func (s *SettingsStore) Get() model.Settings {
	settings, err := s.doc.Load()
	if err != nil {
		if !errors.Is(err, ErrNotExist) {
			log.Printf("ERROR: load settings: %v", err)
		}
		return DefaultSettings()
	}
	return settings
}

// Save overwrites the settings document.
func (s *SettingsStore) Save(settings model.Settings) bool {
	if err := s.doc.Save(settings); err != nil {
		log.Printf("ERROR: save settings: %v", err)
		return false
	}
	return true
}

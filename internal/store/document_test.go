package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sufra-pos/api/internal/model"
)

func TestDocumentLoadMissingFile(t *testing.T) {
	doc := NewDocument[model.Menu](filepath.Join(t.TempDir(), "menu.json"))

	_, err := doc.Load()
	if !errors.Is(err, ErrNotExist) {
		t.Fatalf("load missing file: got %v, want ErrNotExist", err)
	}
}

func TestDocumentLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc := NewDocument[model.Menu](path)
	_, err := doc.Load()
	if err == nil {
		t.Fatal("expected parse error for malformed document")
	}
	if errors.Is(err, ErrNotExist) {
		t.Fatal("parse error must not be ErrNotExist")
	}
}

func TestDocumentRoundTripIsByteIdentical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	doc := NewDocument[model.Menu](path)

	menu := model.Menu{
		"Tea": {
			{
				ItemID:      "t01",
				Name:        model.LocalizedText{"en": "Karak Chai", "ur": "کڑک چائے", "ar": "شاي كرك"},
				Price:       dec(t, "5.5"),
				Description: model.LocalizedText{"en": "Strong milk tea"},
				Image:       "img/t01.jpg",
				Available:   true,
			},
		},
	}
	if err := doc.Save(menu); err != nil {
		t.Fatalf("save: %v", err)
	}

	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := doc.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := doc.Save(loaded); err != nil {
		t.Fatalf("save after load: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Errorf("save(load()) changed the document:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

func TestDocumentSavePreservesNonASCII(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	doc := NewDocument[model.Settings](path)

	if err := doc.Save(model.Settings{RestaurantName: "مطعم السفرة", Theme: "dark_luxury"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "مطعم السفرة"; !strings.Contains(string(data), want) {
		t.Errorf("non-ASCII text was escaped; document:\n%s", data)
	}
}

func TestDocumentWritesLockArtifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deals.json")
	doc := NewDocument[[]model.Deal](path)

	if err := doc.Save([]model.Deal{}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := os.Stat(path + ".lock"); err != nil {
		t.Errorf("lock artifact missing: %v", err)
	}
}

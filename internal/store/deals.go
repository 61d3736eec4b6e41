package store

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sufra-pos/api/internal/model"
)

const dealsFile = "deals.json"

// DealStore is the repository over the deals document.
type DealStore struct {
	doc *Document[[]model.Deal]
}

// NewDealStore creates a DealStore backed by dataDir/deals.json.
func NewDealStore(dataDir string) *DealStore {
	return &DealStore{doc: NewDocument[[]model.Deal](filepath.Join(dataDir, dealsFile))}
}

// All returns every deal. A missing or unreadable document yields an
// empty list.
func (s *DealStore) All() []model.Deal {
	deals, err := s.doc.Load()
	if err != nil {
		if !errors.Is(err, ErrNotExist) {
			log.Printf("ERROR: load deals: %v", err)
		}
		return []model.Deal{}
	}
	return deals
}

func (s *DealStore) save(deals []model.Deal) bool {
	if err := s.doc.Save(deals); err != nil {
		log.Printf("ERROR: save deals: %v", err)
		return false
	}
	return true
}

// Active returns deals whose active flag is set.
func (s *DealStore) Active() []model.Deal {
	var result []model.Deal
	for _, d := range s.All() {
		if d.Active {
			result = append(result, d)
		}
	}
	return result
}

// Add appends a deal and persists.
func (s *DealStore) Add(deal model.Deal) bool {
	deals := s.All()
	deals = append(deals, deal)
	return s.save(deals)
}

// Update replaces the first deal whose id matches. Returns false if no
// deal matches.
func (s *DealStore) Update(dealID string, updated model.Deal) bool {
	deals := s.All()
	for i, d := range deals {
		if d.DealID == dealID {
			deals[i] = updated
			return s.save(deals)
		}
	}
	return false
}

// Delete removes the first deal whose id matches. Returns false if no
// deal matches.
func (s *DealStore) Delete(dealID string) bool {
	deals := s.All()
	for i, d := range deals {
		if d.DealID == dealID {
			deals = append(deals[:i], deals[i+1:]...)
			return s.save(deals)
		}
	}
	return false
}

// NextID generates the next deal identifier: "d" plus the highest numeric
// suffix seen so far plus one, zero-padded to two digits. Identifiers not
// matching "d" + digits are skipped. An empty store yields "d01".
func (s *DealStore) NextID() string {
	deals := s.All()
	if len(deals) == 0 {
		return "d01"
	}
	max := 0
	for _, d := range deals {
		suffix, ok := strings.CutPrefix(d.DealID, "d")
		if !ok || !allDigits(suffix) {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("d%02d", max+1)
}

// allDigits reports whether s is a non-empty run of ASCII digits. Atoi
// alone would also accept a sign, which the id grammar does not.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

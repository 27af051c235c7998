// Package market provides the mandi price store with filter-and-sort queries.
package market

import (
	"slices"
	"strings"

	"github.com/aumai/kisanmitra/internal/models"
)

// Store defines the price store operations.
// Consumers should depend on this interface rather than a concrete type so
// the in-memory and SQLite-backed implementations stay interchangeable.
type Store interface {
	// Add appends a record. No validation happens here; callers validate at
	// the construction boundary (models.PriceRecord.Validate).
	Add(rec models.PriceRecord) error
	// Query returns records for a commodity, optionally narrowed to a state
	// (empty state means no state filter). Matching is case-insensitive
	// exact; results are sorted by date descending, insertion order on ties.
	Query(commodity, state string) ([]models.PriceRecord, error)
	// Trend returns records for a commodity at one market, sorted by date
	// ascending, insertion order on ties.
	Trend(commodity, market string) ([]models.PriceRecord, error)
	// All returns every record in insertion order.
	All() ([]models.PriceRecord, error)
	Close() error
}

// Verify both implementations satisfy Store at compile time.
var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*SQLiteStore)(nil)
)

// MemoryStore is the append-only in-memory price store.
//
// Reads are safe for concurrent use only while no Add is in flight; Add
// requires external synchronization (a mutex or a single-writer discipline
// such as the feed loader finishing before the API serves).
type MemoryStore struct {
	records []models.PriceRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Add appends the record. It never fails.
func (s *MemoryStore) Add(rec models.PriceRecord) error {
	s.records = append(s.records, rec)
	return nil
}

// Query returns commodity records, newest date first. The error is always nil.
func (s *MemoryStore) Query(commodity, state string) ([]models.PriceRecord, error) {
	out := make([]models.PriceRecord, 0)
	for _, r := range s.records {
		if !strings.EqualFold(r.Commodity, commodity) {
			continue
		}
		if state != "" && !strings.EqualFold(r.State, state) {
			continue
		}
		out = append(out, r)
	}
	// Stable sort keeps insertion order within a date.
	slices.SortStableFunc(out, func(a, b models.PriceRecord) int {
		return strings.Compare(b.Date, a.Date)
	})
	return out, nil
}

// Trend returns records for a commodity at a market in chronological order.
// The error is always nil.
func (s *MemoryStore) Trend(commodity, market string) ([]models.PriceRecord, error) {
	out := make([]models.PriceRecord, 0)
	for _, r := range s.records {
		if strings.EqualFold(r.Commodity, commodity) && strings.EqualFold(r.Market, market) {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b models.PriceRecord) int {
		return strings.Compare(a.Date, b.Date)
	})
	return out, nil
}

// All returns a copy of every record in insertion order.
func (s *MemoryStore) All() ([]models.PriceRecord, error) {
	out := make([]models.PriceRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

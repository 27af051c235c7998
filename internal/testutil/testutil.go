// Package testutil provides shared test helpers for stores and feed files.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aumai/kisanmitra/internal/market"
	"github.com/aumai/kisanmitra/internal/models"
)

// SQLiteStore creates a temporary SQLite price store that is automatically
// cleaned up.
func SQLiteStore(t *testing.T) *market.SQLiteStore {
	t.Helper()
	dbFile, err := os.CreateTemp("", "kisanmitra-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	store, err := market.OpenSQLite(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// SampleRecords returns a small fixed set of price records spanning two
// commodities, three states, and two dates.
func SampleRecords() []models.PriceRecord {
	return []models.PriceRecord{
		{Commodity: "rice", Market: "Azadpur", State: "Delhi", MinPrice: 1800, MaxPrice: 2200, ModalPrice: 2000, Date: "2026-02-27"},
		{Commodity: "rice", Market: "Lucknow", State: "UP", MinPrice: 1750, MaxPrice: 2100, ModalPrice: 1950, Date: "2026-02-26"},
		{Commodity: "wheat", Market: "Azadpur", State: "Delhi", MinPrice: 2000, MaxPrice: 2350, ModalPrice: 2150, Date: "2026-02-26"},
		{Commodity: "rice", Market: "Patna", State: "Bihar", MinPrice: 1700, MaxPrice: 2050, ModalPrice: 1900, Date: "2026-02-26"},
	}
}

// Seed adds all records to the store, failing the test on error.
func Seed(t *testing.T, store market.Store, records []models.PriceRecord) {
	t.Helper()
	for _, rec := range records {
		if err := store.Add(rec); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

// WriteFeedFile writes a feed CSV into dir and returns its path.
func WriteFeedFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// Package feed ingests mandi price CSV drops into a market store.
//
// Feed files carry one record per row in the column order
// commodity,market,state,min_price,max_price,modal_price,date with a header
// row. Each record is validated at this boundary before it reaches the
// store; invalid rows are logged and skipped so one bad row cannot block a
// daily drop.
package feed

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/aumai/kisanmitra/internal/apperr"
	"github.com/aumai/kisanmitra/internal/market"
	"github.com/aumai/kisanmitra/internal/models"
)

const columns = 7

// Loader reads price feed files into a store. It remembers the checksum of
// every file it has loaded, so re-delivered or rescanned files are skipped
// unless their content changed. All loads are serialized through one mutex,
// which is the single-writer discipline the store's Add requires.
type Loader struct {
	store  market.Store
	logger *slog.Logger

	mu     sync.Mutex
	loaded map[string]string // file path -> content checksum
}

// NewLoader creates a Loader writing into store.
func NewLoader(store market.Store, logger *slog.Logger) *Loader {
	return &Loader{
		store:  store,
		logger: logger,
		loaded: make(map[string]string),
	}
}

// LoadDir walks dir and loads every .csv file, returning the total number
// of records added.
func (l *Loader) LoadDir(dir string) (int, error) {
	total := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".csv") {
			return nil
		}
		n, loadErr := l.LoadFile(path)
		if loadErr != nil {
			l.logger.Warn("feed: load failed", slog.String("file", path), slog.String("error", loadErr.Error()))
			return nil
		}
		total += n
		return nil
	})
	if err != nil {
		return total, fmt.Errorf("feed: walk %s: %w", dir, err)
	}
	return total, nil
}

// LoadFile loads one feed file and returns the number of records added.
// A file whose content has already been loaded is skipped (returns 0).
func (l *Loader) LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("feed: read %s: %w", path, err)
	}

	sum := sha256.Sum256(data)
	checksum := hex.EncodeToString(sum[:])

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded[path] == checksum {
		return 0, nil
	}

	records, skipped, err := parse(data)
	if err != nil {
		return 0, fmt.Errorf("feed: parse %s: %w", path, err)
	}

	added := 0
	for _, rec := range records {
		if err := l.store.Add(rec); err != nil {
			return added, fmt.Errorf("feed: add record: %w", err)
		}
		added++
	}

	l.loaded[path] = checksum
	l.logger.Info("feed: loaded",
		slog.String("file", path),
		slog.Int("added", added),
		slog.Int("skipped", skipped))
	return added, nil
}

// parse decodes feed rows, returning valid records and the count of rows
// dropped at the validation boundary.
func parse(data []byte) ([]models.PriceRecord, int, error) {
	r := csv.NewReader(strings.NewReader(string(data)))
	r.TrimLeadingSpace = true
	// Field counts are checked per row so one malformed row is skipped
	// instead of failing the whole file.
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, 0, err
	}
	if len(rows) == 0 {
		return nil, 0, nil
	}

	// Drop the header row when present.
	if strings.EqualFold(strings.TrimSpace(rows[0][0]), "commodity") {
		rows = rows[1:]
	}

	records := make([]models.PriceRecord, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		rec, err := parseRow(row)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}

func parseRow(row []string) (models.PriceRecord, error) {
	if len(row) != columns {
		return models.PriceRecord{}, fmt.Errorf("%w: want %d columns, got %d", apperr.ErrInvalidRecord, columns, len(row))
	}

	prices := make([]float64, 3)
	for i, field := range row[3:6] {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return models.PriceRecord{}, fmt.Errorf("%w: bad price %q", apperr.ErrInvalidRecord, field)
		}
		prices[i] = v
	}

	rec := models.PriceRecord{
		Commodity:  strings.TrimSpace(row[0]),
		Market:     strings.TrimSpace(row[1]),
		State:      strings.TrimSpace(row[2]),
		MinPrice:   prices[0],
		MaxPrice:   prices[1],
		ModalPrice: prices[2],
		Date:       strings.TrimSpace(row[6]),
	}
	if err := rec.Validate(); err != nil {
		return models.PriceRecord{}, fmt.Errorf("%w: %v", apperr.ErrInvalidRecord, err)
	}
	return rec, nil
}

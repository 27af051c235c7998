package market

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aumai/kisanmitra/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS prices (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	commodity   TEXT NOT NULL,
	market      TEXT NOT NULL,
	state       TEXT NOT NULL,
	min_price   REAL NOT NULL DEFAULT 0,
	max_price   REAL NOT NULL DEFAULT 0,
	modal_price REAL NOT NULL DEFAULT 0,
	date        TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_prices_commodity ON prices(commodity COLLATE NOCASE);
CREATE INDEX IF NOT EXISTS idx_prices_date ON prices(date);
`

// SQLiteStore implements Store on a SQLite database, giving the host durable
// prices across restarts. The rowid preserves insertion order, so tie-breaks
// on equal dates match the in-memory store.
type SQLiteStore struct {
	conn *sql.DB
}

// OpenSQLite opens (or creates) the SQLite price database and applies the schema.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("market: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("market: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("market: apply schema: %w", err)
	}
	return &SQLiteStore{conn: conn}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// Add inserts the record.
func (s *SQLiteStore) Add(rec models.PriceRecord) error {
	_, err := s.conn.Exec(`
		INSERT INTO prices (commodity, market, state, min_price, max_price, modal_price, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.Commodity, rec.Market, rec.State, rec.MinPrice, rec.MaxPrice, rec.ModalPrice, rec.Date)
	if err != nil {
		return fmt.Errorf("market: insert price: %w", err)
	}
	return nil
}

// Query returns commodity records, newest date first, rowid order on ties.
func (s *SQLiteStore) Query(commodity, state string) ([]models.PriceRecord, error) {
	q := `SELECT commodity, market, state, min_price, max_price, modal_price, date
		FROM prices WHERE commodity = ? COLLATE NOCASE`
	args := []any{commodity}
	if state != "" {
		q += ` AND state = ? COLLATE NOCASE`
		args = append(args, state)
	}
	q += ` ORDER BY date DESC, id ASC`
	return s.scan(q, args...)
}

// Trend returns records for a commodity at a market in chronological order.
func (s *SQLiteStore) Trend(commodity, market string) ([]models.PriceRecord, error) {
	return s.scan(`SELECT commodity, market, state, min_price, max_price, modal_price, date
		FROM prices
		WHERE commodity = ? COLLATE NOCASE AND market = ? COLLATE NOCASE
		ORDER BY date ASC, id ASC`, commodity, market)
}

// All returns every record in insertion order.
func (s *SQLiteStore) All() ([]models.PriceRecord, error) {
	return s.scan(`SELECT commodity, market, state, min_price, max_price, modal_price, date
		FROM prices ORDER BY id ASC`)
}

func (s *SQLiteStore) scan(query string, args ...any) ([]models.PriceRecord, error) {
	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("market: query prices: %w", err)
	}
	defer rows.Close()

	out := make([]models.PriceRecord, 0)
	for rows.Next() {
		var r models.PriceRecord
		if err := rows.Scan(&r.Commodity, &r.Market, &r.State, &r.MinPrice, &r.MaxPrice, &r.ModalPrice, &r.Date); err != nil {
			return nil, fmt.Errorf("market: scan price: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

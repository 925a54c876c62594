// Package archive persists completed quotes to sqlite so past sessions can
// be listed and exported after their form store has been cleared.
package archive

import (
	"database/sql"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Record is one archived quote.
type Record struct {
	ID        string    `csv:"id"`
	QuoteType string    `csv:"quote_type"`
	Premium   float64   `csv:"annual_premium"`
	TermStart string    `csv:"term_start"`
	TermEnd   string    `csv:"term_end"`
	CreatedAt time.Time `csv:"created_at"`
}

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func Migrate(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS quotes (
  id TEXT PRIMARY KEY,
  quote_type TEXT NOT NULL,
  premium INTEGER NOT NULL,
  term_start TEXT NOT NULL,
  term_end TEXT NOT NULL,
  created_ts TEXT NOT NULL
);
`)
	return err
}

// Insert archives one quote and returns its generated id.
func Insert(db *sql.DB, quoteType string, premium float64, termStart, termEnd time.Time) (string, error) {
	id := uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO quotes (id, quote_type, premium, term_start, term_end, created_ts) VALUES (?, ?, ?, ?, ?, ?)`,
		id, quoteType, int64(math.Round(premium)),
		termStart.Format("2006-01-02"), termEnd.Format("2006-01-02"),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// List returns archived quotes, newest first.
func List(db *sql.DB) ([]Record, error) {
	rows, err := db.Query(`SELECT id, quote_type, premium, term_start, term_end, created_ts FROM quotes ORDER BY created_ts DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var created string
		if err := rows.Scan(&r.ID, &r.QuoteType, &r.Premium, &r.TermStart, &r.TermEnd, &created); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			r.CreatedAt = t
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

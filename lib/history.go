package lib

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const historySchema = `
CREATE TABLE IF NOT EXISTS history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	expression TEXT NOT NULL,
	result REAL NOT NULL,
	evaluated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// History is a persistent log of evaluated expressions, backed by a local
// sqlite file. A nil *History is a valid no-op sink so callers can disable
// recording without branching.
type History struct {
	db *sql.DB
}

type HistoryEntry struct {
	Expression  string
	Result      float64
	EvaluatedAt time.Time
}

// OpenHistory opens (creating if needed) the history database at path and
// makes sure the schema exists.
func OpenHistory(path string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("Cannot create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open history database: %w", err)
	}

	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("Cannot initialize history schema: %w", err)
	}

	return &History{db: db}, nil
}

func (h *History) Record(expr string, result float64) error {
	if h == nil {
		return nil
	}
	_, err := h.db.Exec(`
		INSERT INTO history (expression, result, evaluated_at)
		VALUES (?, ?, ?)
	`, expr, result, time.Now())
	return err
}

// Recent returns up to limit entries, newest first.
func (h *History) Recent(limit int) ([]HistoryEntry, error) {
	if h == nil {
		return nil, nil
	}

	rows, err := h.db.Query(`
		SELECT expression, result, evaluated_at
		FROM history
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []HistoryEntry{}
	for rows.Next() {
		var entry HistoryEntry
		if err := rows.Scan(&entry.Expression, &entry.Result, &entry.EvaluatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (h *History) Clear() error {
	if h == nil {
		return nil
	}
	_, err := h.db.Exec(`DELETE FROM history`)
	return err
}

func (h *History) Close() error {
	if h == nil {
		return nil
	}
	return h.db.Close()
}

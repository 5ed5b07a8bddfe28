package rowlog

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// currentSchemaVersion is the latest schema version.
// Bump this when adding migrations.
const currentSchemaVersion = 1

// SQLiteLog is a Log backed by a single-table SQLite database. Rows keep the
// same stringly-typed column contract as the CSV log; SQLite contributes
// durability and atomic appends, not a richer schema.
type SQLiteLog struct {
	db *sql.DB
}

// OpenSQLite opens the SQLite row log at path, creating and migrating the
// schema as needed.
func OpenSQLite(path string) (*SQLiteLog, error) {
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("rowlog: open database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteLog{db: db}, nil
}

// migrate applies schema migrations based on user_version.
func migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version;").Scan(&version); err != nil {
		return fmt.Errorf("rowlog: get user_version: %w", err)
	}

	// Migration 0 -> 1: initial schema. seq preserves insertion order.
	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS observations (
		  seq               INTEGER PRIMARY KEY AUTOINCREMENT,
		  id                TEXT NOT NULL,
		  location_name     TEXT NOT NULL,
		  latitude          TEXT NOT NULL,
		  longitude         TEXT NOT NULL,
		  hard_authenticity TEXT NOT NULL,
		  hard_emotion      TEXT NOT NULL,
		  soft_authenticity TEXT NOT NULL,
		  soft_emotion      TEXT NOT NULL,
		  timestamp         TEXT NOT NULL,
		  photo_reference   TEXT,
		  note              TEXT
		);
		`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("rowlog: migration 1 failed: %w", err)
		}
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version=%d", currentSchemaVersion)); err != nil {
			return fmt.Errorf("rowlog: set user_version: %w", err)
		}
	}

	return nil
}

// AppendRow inserts one row; the INSERT either commits or leaves no trace.
func (l *SQLiteLog) AppendRow(row []string) error {
	if len(row) != len(Columns) {
		return fmt.Errorf("rowlog: row has %d fields, want %d", len(row), len(Columns))
	}

	args := make([]any, len(row))
	for i, v := range row {
		args[i] = v
	}

	_, err := l.db.Exec(`
		INSERT INTO observations (
		  id, location_name, latitude, longitude,
		  hard_authenticity, hard_emotion, soft_authenticity, soft_emotion,
		  timestamp, photo_reference, note
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
	return err
}

// ReadAllRows returns every row ordered by insertion sequence.
func (l *SQLiteLog) ReadAllRows() ([][]string, error) {
	rows, err := l.db.Query(`
		SELECT id, location_name, latitude, longitude,
		       hard_authenticity, hard_emotion, soft_authenticity, soft_emotion,
		       timestamp, photo_reference, note
		FROM observations ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result [][]string
	for rows.Next() {
		row := make([]string, len(Columns))
		dests := make([]any, len(row))
		for i := range row {
			dests[i] = &row[i]
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// Close closes the underlying database handle.
func (l *SQLiteLog) Close() error {
	return l.db.Close()
}

package directory

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/xid"
	_ "modernc.org/sqlite"
)

// SQLiteSource serves the directory from a local SQLite file. It is used for
// offline work against a snapshot of the user table.
type SQLiteSource struct {
	conn *sql.DB
	path string
}

// OpenSQLite opens (and migrates) the database at path.
func OpenSQLite(path string) (*SQLiteSource, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}
	s := &SQLiteSource{conn: conn, path: path}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}
	return s, nil
}

// Close closes the underlying connection pool.
func (s *SQLiteSource) Close() error {
	return s.conn.Close()
}

func (s *SQLiteSource) migrate() error {
	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			seq             INTEGER PRIMARY KEY AUTOINCREMENT,
			id              TEXT NOT NULL UNIQUE,
			username        TEXT NOT NULL,
			email           TEXT NOT NULL DEFAULT '',
			profile_picture TEXT NOT NULL DEFAULT ''
		);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}
	return nil
}

// FetchAllUsers implements Source. Rows come back in insertion order.
func (s *SQLiteSource) FetchAllUsers(ctx context.Context) ([]UserRecord, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, username, email, profile_picture FROM users ORDER BY seq`)
	if err != nil {
		return nil, &FetchError{Source: s.path, Err: err}
	}
	defer rows.Close()

	var records []UserRecord
	for rows.Next() {
		var u UserRecord
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.ProfilePictureURL); err != nil {
			return nil, &FetchError{Source: s.path, Err: fmt.Errorf("scanning user: %w", err)}
		}
		records = append(records, u)
	}
	if err := rows.Err(); err != nil {
		return nil, &FetchError{Source: s.path, Err: err}
	}
	return records, nil
}

// Import upserts records, generating an id for entries that lack one.
// It returns the number of rows written.
func (s *SQLiteSource) Import(ctx context.Context, records []UserRecord) (int, error) {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sqlite: begin import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO users (id, username, email, profile_picture)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			username = excluded.username,
			email = excluded.email,
			profile_picture = excluded.profile_picture`)
	if err != nil {
		return 0, fmt.Errorf("sqlite: prepare import: %w", err)
	}
	defer stmt.Close()

	for _, u := range records {
		id := u.ID
		if id == "" {
			id = xid.New().String()
		}
		if _, err := stmt.ExecContext(ctx, id, u.Username, u.Email, u.ProfilePictureURL); err != nil {
			return 0, fmt.Errorf("sqlite: importing user %q: %w", u.Username, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("sqlite: commit import: %w", err)
	}
	return len(records), nil
}

// ImportFile loads a JSON seed file (array or {"data": [...]}) into the store.
func (s *SQLiteSource) ImportFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}
	records, err := decodeRecords(data)
	if err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return 0, fmt.Errorf("seed file %s: offset %d: %w", path, syntaxErr.Offset, err)
		}
		return 0, fmt.Errorf("seed file %s: %w", path, err)
	}
	return s.Import(ctx, records)
}

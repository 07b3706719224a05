package client

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteCache persists the last-seen copy of every collection so reads
// survive proxy outages across process restarts.
type SQLiteCache struct {
	db *sql.DB
}

func NewSQLiteCache(path string) (*SQLiteCache, error) {
	if err := migrateCache(path); err != nil {
		return nil, fmt.Errorf("migrate document cache: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open document cache: %w", err)
	}

	return &SQLiteCache{db: db}, nil
}

func migrateCache(path string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite3://"+path)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *SQLiteCache) Get(filename string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(
		"SELECT payload FROM documents WHERE filename = ?", filename,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("document not cached: %s", filename)
	}
	if err != nil {
		return nil, fmt.Errorf("read cached document: %w", err)
	}
	return payload, nil
}

func (s *SQLiteCache) Put(filename string, payload []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO documents (filename, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(filename) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, filename, payload, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("cache document: %w", err)
	}
	return nil
}

func (s *SQLiteCache) Delete(filename string) error {
	if _, err := s.db.Exec("DELETE FROM documents WHERE filename = ?", filename); err != nil {
		return fmt.Errorf("evict cached document: %w", err)
	}
	return nil
}

func (s *SQLiteCache) Close() error {
	return s.db.Close()
}

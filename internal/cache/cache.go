package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const DefaultMaxEntries = 512

// Store memoizes rendered palette payloads per source content hash and
// extraction options fingerprint, so unchanged inputs skip decode and
// quantization entirely.
type Store struct {
	db         *sql.DB
	maxEntries int
}

func Open(dbPath string, maxEntries int) (*Store, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	database, err := openDatabase(dbPath)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(database); err != nil {
		database.Close()
		return nil, err
	}

	return &Store{db: database, maxEntries: maxEntries}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Lookup(contentHash string, optionsKey string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRow(
		"SELECT payload FROM palettes WHERE content_hash = ? AND options_key = ?",
		contentHash,
		optionsKey,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("lookup palette: %w", err)
	}

	return payload, true, nil
}

func (s *Store) Store(contentHash string, optionsKey string, payload []byte) error {
	if _, err := s.db.Exec(
		"INSERT OR REPLACE INTO palettes(content_hash, options_key, payload, created_at) VALUES (?, ?, ?, ?)",
		contentHash,
		optionsKey,
		payload,
		time.Now().UTC().Format("2006-01-02T15:04:05.000000000Z07:00"),
	); err != nil {
		return fmt.Errorf("store palette: %w", err)
	}

	return s.evictOldest()
}

func (s *Store) evictOldest() error {
	var total int
	if err := s.db.QueryRow("SELECT COUNT(1) FROM palettes").Scan(&total); err != nil {
		return fmt.Errorf("count palettes: %w", err)
	}
	if total <= s.maxEntries {
		return nil
	}

	if _, err := s.db.Exec(`
		DELETE FROM palettes WHERE rowid IN (
			SELECT rowid FROM palettes ORDER BY created_at ASC, rowid ASC LIMIT ?
		);
	`, total-s.maxEntries); err != nil {
		return fmt.Errorf("evict palettes: %w", err)
	}

	return nil
}

func openDatabase(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	database, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
	}

	for _, pragma := range pragmas {
		if _, err := database.Exec(pragma); err != nil {
			database.Close()
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", pragma, err)
		}
	}

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return database, nil
}

// HashFile is the content identity used for cache keys, a 64-character hex
// sha256 of the file bytes.
func HashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open for hashing: %w", err)
	}
	defer file.Close()

	digest := sha256.New()
	if _, err := io.Copy(digest, file); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}

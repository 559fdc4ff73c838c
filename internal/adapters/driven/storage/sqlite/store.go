package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/wordbook/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/wordbook/internal/core/domain"
	"github.com/custodia-labs/wordbook/internal/core/ports/driven"
)

// Store is a SQLite-backed storage that provides the WordStore
// interface through a wrapper type.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.wordbook/data/wordbook.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".wordbook", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "wordbook.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// WordStore returns a WordStore interface backed by this store.
func (s *Store) WordStore() driven.WordStore {
	return &wordStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Word Store ====================

// wordStore implements driven.WordStore.
type wordStore struct {
	store *Store
}

var _ driven.WordStore = (*wordStore)(nil)

// SaveWord stores or updates a word. Updates keep the original rowid,
// so enumeration order stays creation order.
func (s *wordStore) SaveWord(ctx context.Context, word *domain.Word) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO words (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			updated_at = excluded.updated_at
	`, word.ID, word.Name, word.CreatedAt, word.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving word: %w", err)
	}
	return nil
}

// GetWord retrieves a word by ID.
func (s *wordStore) GetWord(ctx context.Context, id string) (*domain.Word, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM words WHERE id = ?
	`, id)

	return scanWord(row)
}

// FindByName performs a case-sensitive exact lookup.
// SQLite TEXT comparison with = is case-sensitive by default, which is
// exactly the semantics the resolver relies on. With duplicate names
// the lowest rowid (earliest created) wins.
func (s *wordStore) FindByName(ctx context.Context, name string) (*domain.Word, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM words WHERE name = ?
		ORDER BY rowid LIMIT 1
	`, name)

	return scanWord(row)
}

// ListWords returns all words in creation order.
func (s *wordStore) ListWords(ctx context.Context) ([]domain.Word, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM words ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying words: %w", err)
	}
	defer rows.Close()

	var words []domain.Word //nolint:prealloc // size unknown from query
	for rows.Next() {
		var word domain.Word
		if err := rows.Scan(&word.ID, &word.Name, &word.CreatedAt, &word.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning word: %w", err)
		}
		words = append(words, word)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating words: %w", err)
	}

	return words, nil
}

// DeleteWord removes a word. Absent IDs are not an error.
func (s *wordStore) DeleteWord(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM words WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting word: %w", err)
	}
	return nil
}

// scanWord scans a single word row, translating sql.ErrNoRows into the
// domain's not-found sentinel.
func scanWord(row *sql.Row) (*domain.Word, error) {
	var word domain.Word
	err := row.Scan(&word.ID, &word.Name, &word.CreatedAt, &word.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning word: %w", err)
	}

	// Timestamps round-trip as UTC.
	word.CreatedAt = word.CreatedAt.UTC()
	word.UpdatedAt = word.UpdatedAt.UTC()
	return &word, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/servico/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/servico/internal/core/domain"
	"github.com/custodia-labs/servico/internal/core/ports/driven"
)

// FileName is the database file created inside the data directory.
const FileName = "servico.db"

// Store is a SQLite-based storage that provides access to both
// collection stores through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in dataDir.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("%w: data directory is required", domain.ErrInvalidInput)
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, FileName)

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

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

// UserStore returns a UserStore interface backed by this store.
func (s *Store) UserStore() driven.UserStore {
	return &userStore{store: s}
}

// ServiceStore returns a ServiceStore interface backed by this store.
func (s *Store) ServiceStore() driven.ServiceStore {
	return &serviceStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// rewrite replaces every row of table inside one transaction. args
// returns the insert arguments for row i.
func (s *Store) rewrite(ctx context.Context, table, insertSQL string, n int, args func(i int) []any) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("clearing %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return fmt.Errorf("preparing insert into %s: %w", table, err)
	}
	defer stmt.Close()

	for i := range n {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			return fmt.Errorf("inserting into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s: %w", table, err)
	}
	return nil
}

// ==================== User Store ====================

// userStore implements driven.UserStore.
type userStore struct {
	store *Store
}

var _ driven.UserStore = (*userStore)(nil)

// Load returns every user ordered by insertion.
func (u *userStore) Load(ctx context.Context) ([]domain.User, error) {
	rows, err := u.store.db.QueryContext(ctx,
		"SELECT id, name, email, national_id FROM users ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.NationalID); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Save rewrites the users table.
func (u *userStore) Save(ctx context.Context, users []domain.User) error {
	return u.store.rewrite(ctx, "users",
		"INSERT INTO users (seq, id, name, email, national_id) VALUES (?, ?, ?, ?, ?)",
		len(users),
		func(i int) []any {
			user := users[i]
			return []any{i, user.ID, user.Name, user.Email, user.NationalID}
		})
}

// ==================== Service Store ====================

// serviceStore implements driven.ServiceStore.
type serviceStore struct {
	store *Store
}

var _ driven.ServiceStore = (*serviceStore)(nil)

// Load returns every service record ordered by insertion.
func (r *serviceStore) Load(ctx context.Context) ([]domain.ServiceRecord, error) {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT id, user_id, start_date, end_date, price, category, status
		FROM services ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying services: %w", err)
	}
	defer rows.Close()

	records := []domain.ServiceRecord{}
	for rows.Next() {
		var (
			rec   domain.ServiceRecord
			price string
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.StartDate, &rec.EndDate,
			&price, &rec.Category, &rec.Status); err != nil {
			return nil, fmt.Errorf("scanning service: %w", err)
		}
		if rec.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("parsing price of service %d: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Save rewrites the services table.
func (r *serviceStore) Save(ctx context.Context, records []domain.ServiceRecord) error {
	return r.store.rewrite(ctx, "services", `
		INSERT INTO services (seq, id, user_id, start_date, end_date, price, category, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		len(records),
		func(i int) []any {
			rec := records[i]
			return []any{i, rec.ID, rec.UserID, rec.StartDate, rec.EndDate,
				rec.Price.String(), int(rec.Category), int(rec.Status)}
		})
}

// Package postgres stores both collections in PostgreSQL through a pgx
// connection pool. Saves rewrite a whole table in one transaction.
package postgres

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/servico/internal/adapters/driven/storage/postgres/migrations"
	"github.com/custodia-labs/servico/internal/core/domain"
	"github.com/custodia-labs/servico/internal/core/ports/driven"
)

const defaultMaxConns = 5

// Store wraps a pgx pool.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore connects to dsn and applies pending migrations.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("%w: postgres dsn is required", domain.ErrInvalidInput)
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing dsn: %w", err)
	}
	if cfg.MaxConns == 0 {
		cfg.MaxConns = defaultMaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx, migrations.FS); err != nil {
		pool.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the pool.
func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}

// UserStore returns a UserStore interface backed by this store.
func (s *Store) UserStore() driven.UserStore {
	return &userStore{store: s}
}

// ServiceStore returns a ServiceStore interface backed by this store.
func (s *Store) ServiceStore() driven.ServiceStore {
	return &serviceStore{store: s}
}

func (s *Store) migrate(ctx context.Context, fsys fs.FS) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var current int
	if err := s.pool.QueryRow(ctx,
		"SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&current); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}
	var upFiles []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".up.sql") {
			upFiles = append(upFiles, e.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil || version <= current {
			continue
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		err = pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(content)); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", version)
			return err
		})
		if err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
	}
	return nil
}

// rewrite replaces every row of table in one transaction using a batch of
// inserts.
func (s *Store) rewrite(ctx context.Context, table string, batch *pgx.Batch) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
		if batch.Len() == 0 {
			return nil
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("inserting into %s: %w", table, err)
		}
		return nil
	})
}

type userStore struct {
	store *Store
}

var _ driven.UserStore = (*userStore)(nil)

func (u *userStore) Load(ctx context.Context) ([]domain.User, error) {
	rows, err := u.store.pool.Query(ctx,
		"SELECT id, name, email, national_id FROM users ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		var user domain.User
		err := row.Scan(&user.ID, &user.Name, &user.Email, &user.NationalID)
		return user, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (u *userStore) Save(ctx context.Context, users []domain.User) error {
	batch := &pgx.Batch{}
	for i, user := range users {
		batch.Queue("INSERT INTO users (seq, id, name, email, national_id) VALUES ($1, $2, $3, $4, $5)",
			i, user.ID, user.Name, user.Email, user.NationalID)
	}
	return u.store.rewrite(ctx, "users", batch)
}

type serviceStore struct {
	store *Store
}

var _ driven.ServiceStore = (*serviceStore)(nil)

func (r *serviceStore) Load(ctx context.Context) ([]domain.ServiceRecord, error) {
	rows, err := r.store.pool.Query(ctx, `
		SELECT id, user_id, start_date, end_date, price::text, category, status
		FROM services ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying services: %w", err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ServiceRecord, error) {
		var (
			rec      domain.ServiceRecord
			price    string
			category int
			status   int
		)
		if err := row.Scan(&rec.ID, &rec.UserID, &rec.StartDate, &rec.EndDate,
			&price, &category, &status); err != nil {
			return rec, err
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return rec, fmt.Errorf("parsing price of service %d: %w", rec.ID, err)
		}
		rec.Price = d
		rec.Category = domain.Category(category)
		rec.Status = domain.Status(status)
		return rec, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning services: %w", err)
	}
	if records == nil {
		records = []domain.ServiceRecord{}
	}
	return records, nil
}

func (r *serviceStore) Save(ctx context.Context, records []domain.ServiceRecord) error {
	batch := &pgx.Batch{}
	for i, rec := range records {
		batch.Queue(`
			INSERT INTO services (seq, id, user_id, start_date, end_date, price, category, status)
			VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8)`,
			i, rec.ID, rec.UserID, rec.StartDate, rec.EndDate,
			rec.Price.String(), int(rec.Category), int(rec.Status))
	}
	return r.store.rewrite(ctx, "services", batch)
}

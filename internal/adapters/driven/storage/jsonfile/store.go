// Package jsonfile stores the user and service collections as JSON arrays,
// one file per collection, rewritten whole on every save.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/custodia-labs/servico/internal/core/domain"
	"github.com/custodia-labs/servico/internal/core/ports/driven"
)

// Naming selects file names and JSON field names.
type Naming string

// Namings.
const (
	// NamingEnglish uses users.json and services.json.
	NamingEnglish Naming = "en"

	// NamingPortuguese reads and writes the legacy usuarios.json and
	// servicos.json files.
	NamingPortuguese Naming = "pt"
)

// IsValid returns true if the naming is recognised.
func (n Naming) IsValid() bool {
	return n == NamingEnglish || n == NamingPortuguese
}

const filePerm fs.FileMode = 0600

// Store holds the data directory shared by both collections.
type Store struct {
	dir    string
	naming Naming
}

// NewStore creates a store in dataDir. An empty naming means NamingEnglish.
func NewStore(dataDir string, naming Naming) (*Store, error) {
	if naming == "" {
		naming = NamingEnglish
	}
	if !naming.IsValid() {
		return nil, fmt.Errorf("%w: unknown naming %q", domain.ErrInvalidInput, naming)
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dataDir, naming: naming}, nil
}

// UsersPath returns the path of the user collection file.
func (s *Store) UsersPath() string {
	if s.naming == NamingPortuguese {
		return filepath.Join(s.dir, "usuarios.json")
	}
	return filepath.Join(s.dir, "users.json")
}

// ServicesPath returns the path of the service collection file.
func (s *Store) ServicesPath() string {
	if s.naming == NamingPortuguese {
		return filepath.Join(s.dir, "servicos.json")
	}
	return filepath.Join(s.dir, "services.json")
}

// UserStore returns the user collection as a driven.UserStore.
func (s *Store) UserStore() *UserStore {
	return &UserStore{s}
}

// ServiceStore returns the service collection as a driven.ServiceStore.
func (s *Store) ServiceStore() *ServiceStore {
	return &ServiceStore{s}
}

// read returns nil data for a missing or blank file.
func read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	return data, nil
}

func write(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	return writeFileAtomic(path, data, filePerm)
}

// Ensure UserStore implements the interface.
var _ driven.UserStore = (*UserStore)(nil)

// UserStore reads and writes the user collection file.
type UserStore struct {
	s *Store
}

// Load returns every stored user. A missing file is an empty collection.
func (u *UserStore) Load(_ context.Context) ([]domain.User, error) {
	path := u.s.UsersPath()
	data, err := read(path)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []domain.User{}, nil
	}
	users, err := decodeUsers(u.s.naming, data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return users, nil
}

// Save rewrites the user collection file.
func (u *UserStore) Save(_ context.Context, users []domain.User) error {
	return write(u.s.UsersPath(), encodeUsers(u.s.naming, users))
}

// Ensure ServiceStore implements the interface.
var _ driven.ServiceStore = (*ServiceStore)(nil)

// ServiceStore reads and writes the service collection file.
type ServiceStore struct {
	s *Store
}

// Load returns every stored service record. A missing file is an empty
// collection.
func (r *ServiceStore) Load(_ context.Context) ([]domain.ServiceRecord, error) {
	path := r.s.ServicesPath()
	data, err := read(path)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []domain.ServiceRecord{}, nil
	}
	records, err := decodeServices(r.s.naming, data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return records, nil
}

// Save rewrites the service collection file.
func (r *ServiceStore) Save(_ context.Context, records []domain.ServiceRecord) error {
	return write(r.s.ServicesPath(), encodeServices(r.s.naming, records))
}

// Package memory is the local persistence provider used when no database is configured.
// Every table lives in memory and, when a data file is set, the whole state is written to
// that file as JSON after each committed write and loaded back on startup.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
)

// state is the persisted document. Rows keep insertion order.
type state struct {
	Greenhouses      []domain.Greenhouse           `json:"greenhouses"`
	Cycles           []domain.CropCycle            `json:"cropCycles"`
	Transactions     []domain.Transaction          `json:"transactions"`
	Farmers          []domain.Farmer               `json:"farmers"`
	Withdrawals      []domain.FarmerWithdrawal     `json:"farmerWithdrawals"`
	Suppliers        []domain.Supplier             `json:"suppliers"`
	SupplierPayments []domain.SupplierPayment      `json:"supplierPayments"`
	Persons          []domain.Person               `json:"persons"`
	Advances         []domain.Advance              `json:"advances"`
	Programs         []domain.FertilizationProgram `json:"fertilizationPrograms"`
	Settings         *domain.Settings              `json:"settings,omitempty"`
}

func (s state) clone() state {
	c := state{
		Greenhouses:      slices.Clone(s.Greenhouses),
		Cycles:           slices.Clone(s.Cycles),
		Transactions:     slices.Clone(s.Transactions),
		Farmers:          slices.Clone(s.Farmers),
		Withdrawals:      slices.Clone(s.Withdrawals),
		Suppliers:        slices.Clone(s.Suppliers),
		SupplierPayments: slices.Clone(s.SupplierPayments),
		Persons:          slices.Clone(s.Persons),
		Advances:         slices.Clone(s.Advances),
		Programs:         slices.Clone(s.Programs),
	}
	if s.Settings != nil {
		settings := *s.Settings
		settings.ExpenseCategories = slices.Clone(s.Settings.ExpenseCategories)
		c.Settings = &settings
	}
	return c
}

type txCtxKey struct{}

// unitOfWork marks a context as running inside a unit of work of store.
type unitOfWork struct {
	store    *Store
	readOnly bool
}

// errReadOnly is returned by a write attempted inside WithinReadTx.
var errReadOnly = errors.New("write attempted in a read-only unit of work")

// Store holds the tables. A unit of work started by WithinTx or WithinReadTx owns the lock until
// it returns; repository calls made with its context run against the same state without locking
// again.
type Store struct {
	mu    sync.RWMutex
	state state
	path  string
}

var _ portsrepo.TxRunner = (*Store)(nil)

// NewStore creates an empty store. A non-empty path enables persistence to that file.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Open creates a store backed by path and loads it when the file exists.
func Open(path string) (*Store, error) {
	s := NewStore(path)
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.state); err != nil {
		return nil, fmt.Errorf("failed to decode data file %s: %w", path, err)
	}
	return s, nil
}

func (s *Store) unit(ctx context.Context) (unitOfWork, bool) {
	u, ok := ctx.Value(txCtxKey{}).(unitOfWork)
	return u, ok && u.store == s
}

func (s *Store) inTx(ctx context.Context) bool {
	_, ok := s.unit(ctx)
	return ok
}

// WithinTx runs fn with exclusive access to the store. When fn fails every change it made is
// discarded; otherwise the state is persisted once at the end.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if u, ok := s.unit(ctx); ok {
		if u.readOnly {
			return errReadOnly
		}
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	backup := s.state.clone()
	if err := fn(context.WithValue(ctx, txCtxKey{}, unitOfWork{store: s})); err != nil {
		s.state = backup
		return err
	}
	if err := s.persist(); err != nil {
		s.state = backup
		return err
	}
	return nil
}

// WithinReadTx runs fn under the shared lock. Reads inside fn see one consistent state and the
// data file is left alone.
func (s *Store) WithinReadTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(context.WithValue(ctx, txCtxKey{}, unitOfWork{store: s, readOnly: true}))
}

func (s *Store) read(ctx context.Context, fn func(st *state) error) error {
	if !s.inTx(ctx) {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	return fn(&s.state)
}

func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if u, ok := s.unit(ctx); ok {
		if u.readOnly {
			return errReadOnly
		}
		return fn(&s.state)
	}
	return s.WithinTx(ctx, func(context.Context) error { return fn(&s.state) })
}

// persist writes the state atomically through a temp file. Callers hold the write lock.
func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write data file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace data file %s: %w", s.path, err)
	}
	return nil
}

// NewRepositoryProvider exposes the store through the repository ports.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Tx:                  s,
		GreenhouseRepo:      &greenhouseRepository{s},
		CropCycleRepo:       &cropCycleRepository{s},
		TransactionRepo:     &transactionRepository{s},
		FarmerRepo:          &farmerRepository{s},
		WithdrawalRepo:      &withdrawalRepository{s},
		SupplierRepo:        &supplierRepository{s},
		SupplierPaymentRepo: &supplierPaymentRepository{s},
		PersonRepo:          &personRepository{s},
		AdvanceRepo:         &advanceRepository{s},
		ProgramRepo:         &programRepository{s},
		SettingsRepo:        &settingsRepository{s},
	}
}

// Generic row helpers. key extracts the primary key of a row.

func find[T any](rows []T, key func(T) string, id string) (*T, error) {
	i := slices.IndexFunc(rows, func(r T) bool { return key(r) == id })
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}
	row := rows[i]
	return &row, nil
}

func insert[T any](rows *[]T, key func(T) string, row T, entity string) error {
	id := key(row)
	if slices.ContainsFunc(*rows, func(r T) bool { return key(r) == id }) {
		return fmt.Errorf("%w: %s with ID %s already exists", apperrors.ErrDuplicate, entity, id)
	}
	*rows = append(*rows, row)
	return nil
}

func replace[T any](rows []T, key func(T) string, row T) error {
	id := key(row)
	i := slices.IndexFunc(rows, func(r T) bool { return key(r) == id })
	if i < 0 {
		return apperrors.ErrNotFound
	}
	rows[i] = row
	return nil
}

func remove[T any](rows *[]T, key func(T) string, id string) error {
	i := slices.IndexFunc(*rows, func(r T) bool { return key(r) == id })
	if i < 0 {
		return apperrors.ErrNotFound
	}
	*rows = slices.Delete(*rows, i, i+1)
	return nil
}

func filter[T any](rows []T, keep func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func countWhere[T any](rows []T, match func(T) bool) int {
	n := 0
	for _, r := range rows {
		if match(r) {
			n++
		}
	}
	return n
}

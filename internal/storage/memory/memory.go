// Package memory provides an in-memory Store with real transaction
// semantics: a write unit works on a copy of the state and publishes it
// on Commit, so a Rollback (or a failure partway through an action)
// never leaves a half-applied mutation visible. Snapshots capture the
// published state pointer and therefore see one consistent cut.
//
// It backs the service and action tests and is usable as a throwaway
// local backend.
package memory

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/account"
	"github.com/carson-networks/budget-tracker/internal/storage/budget"
	"github.com/carson-networks/budget-tracker/internal/storage/category"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

// Store is an in-memory storage.Store.
type Store struct {
	mu    sync.RWMutex // guards state pointer
	wmu   sync.Mutex   // serializes write units
	state *state
}

var _ storage.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{state: newState()}
}

type state struct {
	accounts     map[uuid.UUID]account.Account
	categories   map[uuid.UUID]category.Category
	budgets      map[uuid.UUID]budget.Budget
	transactions map[uuid.UUID]transaction.Transaction
}

func newState() *state {
	return &state{
		accounts:     make(map[uuid.UUID]account.Account),
		categories:   make(map[uuid.UUID]category.Category),
		budgets:      make(map[uuid.UUID]budget.Budget),
		transactions: make(map[uuid.UUID]transaction.Transaction),
	}
}

// clone copies the maps; values are plain structs so entry copies are
// deep enough, updates always replace whole entries.
func (s *state) clone() *state {
	next := &state{
		accounts:     make(map[uuid.UUID]account.Account, len(s.accounts)),
		categories:   make(map[uuid.UUID]category.Category, len(s.categories)),
		budgets:      make(map[uuid.UUID]budget.Budget, len(s.budgets)),
		transactions: make(map[uuid.UUID]transaction.Transaction, len(s.transactions)),
	}
	for k, v := range s.accounts {
		next.accounts[k] = v
	}
	for k, v := range s.categories {
		next.categories[k] = v
	}
	for k, v := range s.budgets {
		next.budgets[k] = v
	}
	for k, v := range s.transactions {
		next.transactions[k] = v
	}
	return next
}

// Write opens a read-write unit of work. Writers are serialized; the
// unit must be finished with Commit or Rollback.
func (s *Store) Write(ctx context.Context) (*storage.Writer, error) {
	s.wmu.Lock()
	working := s.currentState().clone()
	tx := &writeTx{store: s, working: working}
	return storage.NewWriter(tx,
		&accounts{st: working},
		&categories{st: working},
		&budgets{st: working},
		&transactions{st: working},
	), nil
}

// Read opens a read-only snapshot of the currently committed state.
func (s *Store) Read(ctx context.Context) (*storage.Snapshot, error) {
	st := s.currentState()
	return storage.NewSnapshot(readTx{},
		&accounts{st: st},
		&categories{st: st},
		&budgets{st: st},
		&transactions{st: st},
	), nil
}

func (s *Store) currentState() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

type writeTx struct {
	store   *Store
	working *state
	done    bool
}

func (t *writeTx) Commit(ctx context.Context) error {
	if t.done {
		return errors.New("memory: transaction already finished")
	}
	t.done = true
	t.store.mu.Lock()
	t.store.state = t.working
	t.store.mu.Unlock()
	t.store.wmu.Unlock()
	return nil
}

func (t *writeTx) Rollback(ctx context.Context) error {
	if t.done {
		return errors.New("memory: transaction already finished")
	}
	t.done = true
	t.store.wmu.Unlock()
	return nil
}

// readTx is a no-op Tx; snapshots hold an immutable state pointer.
type readTx struct{}

func (readTx) Commit(ctx context.Context) error   { return nil }
func (readTx) Rollback(ctx context.Context) error { return nil }

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// idLess orders UUIDs bytewise, the deterministic identity order used
// for query tie-breaks.
func idLess(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

func now() time.Time {
	return time.Now().UTC()
}

package storage

import (
	"context"

	"github.com/carson-networks/budget-tracker/internal/storage/account"
	"github.com/carson-networks/budget-tracker/internal/storage/budget"
	"github.com/carson-networks/budget-tracker/internal/storage/category"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

// Store hands out units of work. Write opens a read-write unit that must
// be finished with Commit or Rollback; Read opens a read-only snapshot
// whose queries all see one consistent cut, finished with Close.
type Store interface {
	Write(ctx context.Context) (*Writer, error)
	Read(ctx context.Context) (*Snapshot, error)
}

// Tx is the commit/rollback surface of an underlying transaction.
// bob.Tx satisfies it.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer is a read-write unit of work. All writes through its entity
// writers are applied atomically on Commit and discarded on Rollback.
type Writer struct {
	tx           Tx
	Accounts     account.Writer
	Categories   category.Writer
	Budgets      budget.Writer
	Transactions transaction.Writer
}

// NewWriter binds entity writers to a transaction.
func NewWriter(tx Tx, accounts account.Writer, categories category.Writer, budgets budget.Writer, transactions transaction.Writer) *Writer {
	return &Writer{
		tx:           tx,
		Accounts:     accounts,
		Categories:   categories,
		Budgets:      budgets,
		Transactions: transactions,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}

// Snapshot is a read-only unit of work.
type Snapshot struct {
	tx           Tx
	Accounts     account.Reader
	Categories   category.Reader
	Budgets      budget.Reader
	Transactions transaction.Reader
}

// NewSnapshot binds entity readers to a transaction.
func NewSnapshot(tx Tx, accounts account.Reader, categories category.Reader, budgets budget.Reader, transactions transaction.Reader) *Snapshot {
	return &Snapshot{
		tx:           tx,
		Accounts:     accounts,
		Categories:   categories,
		Budgets:      budgets,
		Transactions: transactions,
	}
}

// Close releases the snapshot. Safe to defer.
func (s *Snapshot) Close() error {
	return s.tx.Rollback(context.Background())
}

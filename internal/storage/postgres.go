package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-tracker/internal/config"
	"github.com/carson-networks/budget-tracker/internal/storage/account"
	"github.com/carson-networks/budget-tracker/internal/storage/budget"
	"github.com/carson-networks/budget-tracker/internal/storage/category"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

// Postgres is the production Store backed by PostgreSQL through bob.
type Postgres struct {
	db bob.DB
}

var _ Store = (*Postgres)(nil)

// NewPostgres opens a connection pool from the environment config.
func NewPostgres(env *config.Config) (*Postgres, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}

	return &Postgres{db: bob.NewDB(db)}, nil
}

func (p *Postgres) Write(ctx context.Context) (*Writer, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx,
		account.NewSQLWriter(tx),
		category.NewSQLWriter(tx),
		budget.NewSQLWriter(tx),
		transaction.NewSQLWriter(tx),
	), nil
}

func (p *Postgres) Read(ctx context.Context) (*Snapshot, error) {
	tx, err := p.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, err
	}
	return NewSnapshot(tx,
		account.NewSQLReader(tx),
		category.NewSQLReader(tx),
		budget.NewSQLReader(tx),
		transaction.NewSQLReader(tx),
	), nil
}

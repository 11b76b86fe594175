package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// SQLWriter mutates account rows inside one transaction.
type SQLWriter struct {
	tx bob.Executor
	SQLReader
}

var _ Writer = (*SQLWriter)(nil)

func NewSQLWriter(tx bob.Executor) *SQLWriter {
	return &SQLWriter{
		tx:        tx,
		SQLReader: SQLReader{exec: tx},
	}
}

// FindByIDForUpdate locks the account row for the remainder of the
// transaction. Concurrent writers against the same account block here.
func (w *SQLWriter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[Account]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (w *SQLWriter) Insert(ctx context.Context, create *Create) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("accounts", "name", "type", "balance", "starting_balance"),
		im.Values(psql.Arg(create.Name, create.Type, create.StartingBalance, create.StartingBalance)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (w *SQLWriter) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").ToArg(balance),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

package transaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// SQLWriter mutates transaction rows inside one transaction.
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

// FindByIDForUpdate locks the transaction row for the remainder of the
// write transaction, so a concurrent update or delete of the same record
// re-reads the committed amount and type after the lock wait instead of
// deriving its balance delta from a stale row.
func (w *SQLWriter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[Transaction]())
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
		im.Into("transactions", "account_id", "category_id", "amount", "type", "transaction_date", "description"),
		im.Values(psql.Arg(create.AccountID, create.CategoryID, create.Amount, create.Type, create.Date, create.Description)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (w *SQLWriter) Update(ctx context.Context, id uuid.UUID, update *Update) error {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("account_id").ToArg(update.AccountID),
		um.SetCol("category_id").ToArg(update.CategoryID),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("type").ToArg(update.Type),
		um.SetCol("transaction_date").ToArg(update.Date),
		um.SetCol("description").ToArg(update.Description),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

func (w *SQLWriter) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

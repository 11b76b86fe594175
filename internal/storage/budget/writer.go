package budget

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// SQLWriter mutates budget rows inside one transaction.
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

func (w *SQLWriter) Insert(ctx context.Context, create *Create) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("budgets", "category_id", "month", "amount"),
		im.Values(psql.Arg(create.CategoryID, create.Month, create.Amount)),
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
		um.Table("budgets"),
		um.SetCol("category_id").ToArg(update.CategoryID),
		um.SetCol("month").ToArg(update.Month),
		um.SetCol("amount").ToArg(update.Amount),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

func (w *SQLWriter) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	q := psql.Delete(
		dm.From("budgets"),
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

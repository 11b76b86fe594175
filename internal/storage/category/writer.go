package category

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

// SQLWriter mutates category rows inside one transaction.
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
		im.Into("categories", "name", "type", "color"),
		im.Values(psql.Arg(create.Name, create.Type, create.Color)),
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
		um.Table("categories"),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("type").ToArg(update.Type),
		um.SetCol("color").ToArg(update.Color),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

func (w *SQLWriter) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	q := psql.Delete(
		dm.From("categories"),
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

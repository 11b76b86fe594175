package category

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var columns = []any{"id", "name", "type", "color", "created_at"}

// SQLReader reads category rows through the bob query builder.
type SQLReader struct {
	exec bob.Executor
}

var _ Reader = (*SQLReader)(nil)

func NewSQLReader(exec bob.Executor) *SQLReader {
	return &SQLReader{exec: exec}
}

func (r *SQLReader) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Category]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *SQLReader) NameExists(ctx context.Context, normalizedName string) (bool, error) {
	q := psql.Select(
		sm.Columns("id"),
		sm.From("categories"),
		sm.Where(psql.Raw("lower(name) = ?", normalizedName)),
		sm.Limit(1),
	)
	_, err := bob.One(ctx, r.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *SQLReader) List(ctx context.Context) ([]*Category, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("categories"),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	result := make([]*Category, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

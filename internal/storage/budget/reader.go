package budget

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var columns = []any{"id", "category_id", "month", "amount", "created_at"}

// SQLReader reads budget rows through the bob query builder.
type SQLReader struct {
	exec bob.Executor
}

var _ Reader = (*SQLReader)(nil)

func NewSQLReader(exec bob.Executor) *SQLReader {
	return &SQLReader{exec: exec}
}

func (r *SQLReader) FindByID(ctx context.Context, id uuid.UUID) (*Budget, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("budgets"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return one(ctx, r.exec, q)
}

func (r *SQLReader) FindByCategoryAndMonth(ctx context.Context, categoryID uuid.UUID, month time.Time) (*Budget, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("budgets"),
		sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
		sm.Where(psql.Quote("month").EQ(psql.Arg(month))),
	)
	return one(ctx, r.exec, q)
}

func (r *SQLReader) ListByMonth(ctx context.Context, month time.Time) ([]*Budget, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("budgets"),
		sm.Where(psql.Quote("month").EQ(psql.Arg(month))),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Budget]())
	if err != nil {
		return nil, err
	}
	result := make([]*Budget, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func one(ctx context.Context, exec bob.Executor, q bob.Query) (*Budget, error) {
	row, err := bob.One(ctx, exec, q, scan.StructMapper[Budget]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

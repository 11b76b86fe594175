package actions

import (
	"context"
	"errors"

	"github.com/lib/pq"

	"github.com/carson-networks/budget-tracker/internal/storage"
)

// IAction is one unit of work. Perform runs inside a single storage
// write transaction; returning an error rolls the whole unit back.
//
// Actions that target an existing record by ID report a missing record
// by setting their NotFound field and returning nil, so the caller can
// surface an absent result instead of an error.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// uniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505). The in-transaction uniqueness checks can
// race across workers; the database constraint is the backstop, and the
// loser's error still has to surface as a conflict.
func uniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

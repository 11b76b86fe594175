package service

import (
	"testing"

	"github.com/carson-networks/budget-tracker/internal/operator"
	"github.com/carson-networks/budget-tracker/internal/storage/memory"
)

// newTestService wires the full service stack over the in-memory store
// with one operator worker, so tests exercise the same commit/rollback
// path as production.
func newTestService(t *testing.T) *Service {
	t.Helper()

	store := memory.NewStore()
	op := operator.NewOperatorDelegator(store, 1)
	op.Start()
	t.Cleanup(op.Stop)

	return NewService(store, op)
}

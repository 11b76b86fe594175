package service

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/operator"
	"github.com/carson-networks/budget-tracker/internal/operator/actions"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

// CategoryService handles category business logic. Names are trimmed on
// the way in and must be unique ignoring case; see the uniqueness rule
// on category.Reader.NameExists.
type CategoryService struct {
	storage  storage.Store
	operator *operator.OperatorDelegator
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store storage.Store, op *operator.OperatorDelegator) *CategoryService {
	return &CategoryService{storage: store, operator: op}
}

// Create validates and persists a new category.
func (s *CategoryService) Create(ctx context.Context, name string, categoryType core.CategoryType, color string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, core.NewValidation("Name is required")
	}

	action := &actions.CreateCategory{
		Name:  name,
		Type:  categoryType,
		Color: color,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return categoryFromStorage(action.Result), nil
}

// Update replaces all fields of an existing category. A missing ID is
// reported as (nil, nil).
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, name string, categoryType core.CategoryType, color string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, core.NewValidation("Name is required")
	}

	action := &actions.UpdateCategory{
		ID:    id,
		Name:  name,
		Type:  categoryType,
		Color: color,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	if action.NotFound {
		return nil, nil
	}
	return categoryFromStorage(action.Result), nil
}

// Delete removes a category and reports whether it existed.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	action := &actions.DeleteCategory{ID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		return false, err
	}
	return action.Deleted, nil
}

// List returns all categories ordered by name.
func (s *CategoryService) List(ctx context.Context) ([]Category, error) {
	snap, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	defer snap.Close()

	rows, err := snap.Categories.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]Category, len(rows))
	for i, row := range rows {
		result[i] = *categoryFromStorage(row)
	}
	return result, nil
}

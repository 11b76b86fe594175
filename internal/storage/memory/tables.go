package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/storage/account"
	"github.com/carson-networks/budget-tracker/internal/storage/budget"
	"github.com/carson-networks/budget-tracker/internal/storage/category"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

// -- accounts --

type accounts struct {
	st *state
}

var _ account.Writer = (*accounts)(nil)

func (a *accounts) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	row, ok := a.st.accounts[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

// FindByIDForUpdate is a plain read: write units are already exclusive.
func (a *accounts) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return a.FindByID(ctx, id)
}

func (a *accounts) List(ctx context.Context) ([]*account.Account, error) {
	result := make([]*account.Account, 0, len(a.st.accounts))
	for _, row := range a.st.accounts {
		row := row
		result = append(result, &row)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return idLess(result[i].ID, result[j].ID)
	})
	return result, nil
}

func (a *accounts) Insert(ctx context.Context, create *account.Create) (uuid.UUID, error) {
	id := newID()
	a.st.accounts[id] = account.Account{
		ID:              id,
		Name:            create.Name,
		Type:            create.Type,
		Balance:         create.StartingBalance,
		StartingBalance: create.StartingBalance,
		CreatedAt:       now(),
	}
	return id, nil
}

func (a *accounts) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	row, ok := a.st.accounts[id]
	if !ok {
		return nil
	}
	row.Balance = balance
	a.st.accounts[id] = row
	return nil
}

// -- categories --

type categories struct {
	st *state
}

var _ category.Writer = (*categories)(nil)

func (c *categories) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	row, ok := c.st.categories[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (c *categories) NameExists(ctx context.Context, normalizedName string) (bool, error) {
	for _, row := range c.st.categories {
		if strings.ToLower(row.Name) == normalizedName {
			return true, nil
		}
	}
	return false, nil
}

func (c *categories) List(ctx context.Context) ([]*category.Category, error) {
	result := make([]*category.Category, 0, len(c.st.categories))
	for _, row := range c.st.categories {
		row := row
		result = append(result, &row)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return idLess(result[i].ID, result[j].ID)
	})
	return result, nil
}

func (c *categories) Insert(ctx context.Context, create *category.Create) (uuid.UUID, error) {
	id := newID()
	c.st.categories[id] = category.Category{
		ID:        id,
		Name:      create.Name,
		Type:      create.Type,
		Color:     create.Color,
		CreatedAt: now(),
	}
	return id, nil
}

func (c *categories) Update(ctx context.Context, id uuid.UUID, update *category.Update) error {
	row, ok := c.st.categories[id]
	if !ok {
		return nil
	}
	row.Name = update.Name
	row.Type = update.Type
	row.Color = update.Color
	c.st.categories[id] = row
	return nil
}

func (c *categories) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := c.st.categories[id]; !ok {
		return false, nil
	}
	delete(c.st.categories, id)
	return true, nil
}

// -- budgets --

type budgets struct {
	st *state
}

var _ budget.Writer = (*budgets)(nil)

func (b *budgets) FindByID(ctx context.Context, id uuid.UUID) (*budget.Budget, error) {
	row, ok := b.st.budgets[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (b *budgets) FindByCategoryAndMonth(ctx context.Context, categoryID uuid.UUID, month time.Time) (*budget.Budget, error) {
	for _, row := range b.st.budgets {
		if row.CategoryID == categoryID && row.Month.Equal(month) {
			row := row
			return &row, nil
		}
	}
	return nil, nil
}

func (b *budgets) ListByMonth(ctx context.Context, month time.Time) ([]*budget.Budget, error) {
	var result []*budget.Budget
	for _, row := range b.st.budgets {
		if row.Month.Equal(month) {
			row := row
			result = append(result, &row)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return idLess(result[i].ID, result[j].ID)
	})
	return result, nil
}

func (b *budgets) Insert(ctx context.Context, create *budget.Create) (uuid.UUID, error) {
	id := newID()
	b.st.budgets[id] = budget.Budget{
		ID:         id,
		CategoryID: create.CategoryID,
		Month:      create.Month,
		Amount:     create.Amount,
		CreatedAt:  now(),
	}
	return id, nil
}

func (b *budgets) Update(ctx context.Context, id uuid.UUID, update *budget.Update) error {
	row, ok := b.st.budgets[id]
	if !ok {
		return nil
	}
	row.CategoryID = update.CategoryID
	row.Month = update.Month
	row.Amount = update.Amount
	b.st.budgets[id] = row
	return nil
}

func (b *budgets) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := b.st.budgets[id]; !ok {
		return false, nil
	}
	delete(b.st.budgets, id)
	return true, nil
}

// -- transactions --

type transactions struct {
	st *state
}

var _ transaction.Writer = (*transactions)(nil)

func (t *transactions) FindByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	row, ok := t.st.transactions[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

// FindByIDForUpdate is a plain read: write units are already exclusive.
func (t *transactions) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	return t.FindByID(ctx, id)
}

func (t *transactions) Query(ctx context.Context, filter *transaction.Filter) ([]*transaction.Transaction, error) {
	var result []*transaction.Transaction
	for _, row := range t.st.transactions {
		if !matches(&row, filter) {
			continue
		}
		row := row
		result = append(result, &row)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return idLess(result[j].ID, result[i].ID)
	})
	if filter != nil {
		if filter.Offset > 0 {
			if filter.Offset >= len(result) {
				return nil, nil
			}
			result = result[filter.Offset:]
		}
		if filter.Limit > 0 && filter.Limit < len(result) {
			result = result[:filter.Limit]
		}
	}
	return result, nil
}

func matches(row *transaction.Transaction, filter *transaction.Filter) bool {
	if filter == nil {
		return true
	}
	if filter.StartDate != nil && row.Date.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && row.Date.After(*filter.EndDate) {
		return false
	}
	if filter.AccountID != nil && row.AccountID != *filter.AccountID {
		return false
	}
	if filter.CategoryID != nil && row.CategoryID != *filter.CategoryID {
		return false
	}
	if filter.Type != nil && row.Type != *filter.Type {
		return false
	}
	return true
}

func (t *transactions) Insert(ctx context.Context, create *transaction.Create) (uuid.UUID, error) {
	id := newID()
	t.st.transactions[id] = transaction.Transaction{
		ID:          id,
		AccountID:   create.AccountID,
		CategoryID:  create.CategoryID,
		Amount:      create.Amount,
		Type:        create.Type,
		Date:        create.Date,
		Description: create.Description,
		CreatedAt:   now(),
	}
	return id, nil
}

func (t *transactions) Update(ctx context.Context, id uuid.UUID, update *transaction.Update) error {
	row, ok := t.st.transactions[id]
	if !ok {
		return nil
	}
	row.AccountID = update.AccountID
	row.CategoryID = update.CategoryID
	row.Amount = update.Amount
	row.Type = update.Type
	row.Date = update.Date
	row.Description = update.Description
	t.st.transactions[id] = row
	return nil
}

func (t *transactions) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := t.st.transactions[id]; !ok {
		return false, nil
	}
	delete(t.st.transactions, id)
	return true, nil
}

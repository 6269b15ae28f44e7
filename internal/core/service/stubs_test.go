package service

import (
	"context"
	"sort"
	"time"

	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared across the service tests
// ---------------------------------------------------------------------------

type stubSplitRepo struct {
	byID      map[int]*domain.BillSplit
	nextID    int
	createErr error // if set, Create returns this error
}

func newStubSplitRepo() *stubSplitRepo {
	return &stubSplitRepo{byID: make(map[int]*domain.BillSplit), nextID: 1}
}

func (r *stubSplitRepo) ListByUser(_ context.Context, userID int) ([]*domain.BillSplit, error) {
	var out []*domain.BillSplit
	for _, b := range r.byID {
		if b.CreatorID == userID {
			clone := *b
			out = append(out, &clone)
			continue
		}
		for _, p := range b.Participants {
			if p == userID {
				clone := *b
				out = append(out, &clone)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *stubSplitRepo) Create(_ context.Context, b *domain.BillSplit) (*domain.BillSplit, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *b
	clone.ID = r.nextID
	clone.IsSettled = false
	clone.Date = time.Now()
	r.nextID++
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubSplitRepo) FindByID(_ context.Context, id int) (*domain.BillSplit, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBillSplitNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubSplitRepo) Settle(_ context.Context, userID, id int) error {
	b, ok := r.byID[id]
	if !ok {
		return domain.ErrBillSplitNotFound
	}
	member := b.CreatorID == userID
	for _, p := range b.Participants {
		if p == userID {
			member = true
		}
	}
	if !member {
		return domain.ErrBillSplitNotFound
	}
	b.IsSettled = true
	return nil
}

type stubActivityRepo struct {
	entries   []*domain.Activity
	nextID    int
	createErr error
}

func newStubActivityRepo() *stubActivityRepo {
	return &stubActivityRepo{nextID: 1}
}

func (r *stubActivityRepo) ListRecentByUser(_ context.Context, userID, limit int) ([]*domain.Activity, error) {
	var out []*domain.Activity
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if r.entries[i].UserID == userID {
			clone := *r.entries[i]
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubActivityRepo) Create(_ context.Context, a *domain.Activity) (*domain.Activity, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *a
	clone.ID = r.nextID
	clone.Date = time.Now()
	r.nextID++
	r.entries = append(r.entries, &clone)
	out := clone
	return &out, nil
}

type stubExpenseRepo struct {
	byID   map[int]*domain.Expense
	nextID int
}

func newStubExpenseRepo() *stubExpenseRepo {
	return &stubExpenseRepo{byID: make(map[int]*domain.Expense), nextID: 1}
}

func (r *stubExpenseRepo) ListByUser(_ context.Context, userID int) ([]*domain.Expense, error) {
	var out []*domain.Expense
	for _, e := range r.byID {
		if e.UserID == userID {
			clone := *e
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *stubExpenseRepo) Create(_ context.Context, e *domain.Expense) (*domain.Expense, error) {
	clone := *e
	clone.ID = r.nextID
	clone.Date = time.Now()
	r.nextID++
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubExpenseRepo) Update(_ context.Context, userID, id int, patch ports.ExpensePatch) (*domain.Expense, error) {
	e, ok := r.byID[id]
	if !ok || e.UserID != userID {
		return nil, domain.ErrExpenseNotFound
	}
	if patch.Amount != nil {
		e.Amount = *patch.Amount
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
	if patch.AllergyTags != nil {
		e.AllergyTags = *patch.AllergyTags
	}
	if patch.IsAllergySafe != nil {
		e.IsAllergySafe = *patch.IsAllergySafe
	}
	clone := *e
	return &clone, nil
}

func (r *stubExpenseRepo) Delete(_ context.Context, userID, id int) error {
	if e, ok := r.byID[id]; !ok || e.UserID != userID {
		return domain.ErrExpenseNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubExpenseRepo) MonthlyTotal(_ context.Context, userID int, now time.Time) (float64, error) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var total float64
	for _, e := range r.byID {
		if e.UserID == userID && !e.Date.Before(start) {
			total += e.Amount
		}
	}
	return total, nil
}

type stubUserRepo struct {
	byID       map[int]*domain.User
	byEmail    map[string]*domain.User
	byCustomer map[string]*domain.User
	nextID     int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:       make(map[int]*domain.User),
		byEmail:    make(map[string]*domain.User),
		byCustomer: make(map[string]*domain.User),
		nextID:     1,
	}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, domain.ErrUserExists
	}
	clone := *u
	clone.ID = r.nextID
	r.nextID++
	r.byID[clone.ID] = &clone
	r.byEmail[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByBillingCustomer(_ context.Context, customerID string) (*domain.User, error) {
	u, ok := r.byCustomer[customerID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	old, ok := r.byID[u.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byEmail, old.Email)
	if old.BillingCustomerID != "" {
		delete(r.byCustomer, old.BillingCustomerID)
	}
	clone := *u
	r.byID[clone.ID] = &clone
	r.byEmail[clone.Email] = &clone
	if clone.BillingCustomerID != "" {
		r.byCustomer[clone.BillingCustomerID] = &clone
	}
	return nil
}

type stubAllergyRepo struct {
	byID   map[int]*domain.Allergy
	nextID int
}

func newStubAllergyRepo() *stubAllergyRepo {
	return &stubAllergyRepo{byID: make(map[int]*domain.Allergy), nextID: 1}
}

func (r *stubAllergyRepo) ListByUser(_ context.Context, userID int) ([]*domain.Allergy, error) {
	var out []*domain.Allergy
	for _, a := range r.byID {
		if a.UserID == userID {
			clone := *a
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubAllergyRepo) Create(_ context.Context, a *domain.Allergy) (*domain.Allergy, error) {
	clone := *a
	clone.ID = r.nextID
	r.nextID++
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAllergyRepo) Update(_ context.Context, userID, id int, patch ports.AllergyPatch) (*domain.Allergy, error) {
	a, ok := r.byID[id]
	if !ok || a.UserID != userID {
		return nil, domain.ErrAllergyNotFound
	}
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.Severity != nil {
		a.Severity = *patch.Severity
	}
	if patch.RiskLevel != nil {
		a.RiskLevel = *patch.RiskLevel
	}
	clone := *a
	return &clone, nil
}

func (r *stubAllergyRepo) Delete(_ context.Context, userID, id int) error {
	if a, ok := r.byID[id]; !ok || a.UserID != userID {
		return domain.ErrAllergyNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubAccountRepo struct {
	byID   map[int]*domain.Account
	nextID int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byID: make(map[int]*domain.Account), nextID: 1}
}

func (r *stubAccountRepo) ListByUser(_ context.Context, userID int) ([]*domain.Account, error) {
	var out []*domain.Account
	for _, a := range r.byID {
		if a.UserID == userID {
			clone := *a
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	clone := *a
	clone.ID = r.nextID
	r.nextID++
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAccountRepo) Update(_ context.Context, userID, id int, patch ports.AccountPatch) (*domain.Account, error) {
	a, ok := r.byID[id]
	if !ok || a.UserID != userID {
		return nil, domain.ErrAccountNotFound
	}
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.Type != nil {
		a.Type = *patch.Type
	}
	if patch.Balance != nil {
		a.Balance = *patch.Balance
	}
	if patch.Color != nil {
		a.Color = *patch.Color
	}
	if patch.Icon != nil {
		a.Icon = *patch.Icon
	}
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) Delete(_ context.Context, userID, id int) error {
	if a, ok := r.byID[id]; !ok || a.UserID != userID {
		return domain.ErrAccountNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubAccountRepo) TotalBalance(_ context.Context, userID int) (float64, error) {
	var total float64
	for _, a := range r.byID {
		if a.UserID == userID {
			total += a.Balance
		}
	}
	return total, nil
}

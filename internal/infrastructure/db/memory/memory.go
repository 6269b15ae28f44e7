// Package memory provides the default storage backend: per-entity maps held
// in process memory. All data is lost on restart.
//
// A single RWMutex guards the whole store because the HTTP layer serves
// requests concurrently. One incrementing counter is shared across every
// entity type, so ids are unique store-wide, never reused, and allocation is
// a method on the store rather than ambient global state.
package memory

import (
	"sync"
	"time"

	"github.com/safespend/safespend-api/internal/core/domain"
)

type Store struct {
	mu sync.RWMutex

	users      map[int]*domain.User
	allergies  map[int]*domain.Allergy
	expenses   map[int]*domain.Expense
	accounts   map[int]*domain.Account
	roommates  map[int]*domain.Roommate
	splits     map[int]*domain.BillSplit
	activities map[int]*domain.Activity
	budgets    map[int]*domain.Budget

	nextID int

	// now is swappable in tests to pin creation timestamps.
	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:      make(map[int]*domain.User),
		allergies:  make(map[int]*domain.Allergy),
		expenses:   make(map[int]*domain.Expense),
		accounts:   make(map[int]*domain.Account),
		roommates:  make(map[int]*domain.Roommate),
		splits:     make(map[int]*domain.BillSplit),
		activities: make(map[int]*domain.Activity),
		budgets:    make(map[int]*domain.Budget),
		nextID:     1,
		now:        time.Now,
	}
}

// allocateID hands out the next store-wide id. Callers must hold mu.
func (s *Store) allocateID() int {
	id := s.nextID
	s.nextID++
	return id
}

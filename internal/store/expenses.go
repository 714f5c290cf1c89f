package store

import (
	"github.com/google/uuid"

	"billkaro/m/domain"
)

// Expenses returns a copy of the expense collection.
func (s *Store) Expenses() []domain.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Expense(nil), s.expenses...)
}

// AddExpense assigns an id and prepends the expense.
func (s *Store) AddExpense(e domain.Expense) domain.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = "e_" + uuid.NewString()
	s.expenses = append([]domain.Expense{e}, s.expenses...)
	s.persist(keyExpenses, s.expenses)
	return e
}

// DeleteExpense removes the expense permanently.
func (s *Store) DeleteExpense(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			s.persist(keyExpenses, s.expenses)
			return true
		}
	}
	return false
}

package store

import (
	"strings"

	"github.com/google/uuid"

	"billkaro/m/domain"
)

// Customers returns customers matching the query against name or phone.
// An empty query returns everyone.
func (s *Store) Customers(query string) []domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	query = strings.ToLower(strings.TrimSpace(query))
	var out []domain.Customer
	for _, c := range s.customers {
		if query == "" || strings.Contains(strings.ToLower(c.Name), query) || strings.Contains(c.Phone, query) {
			out = append(out, c)
		}
	}
	return out
}

// Customer looks a customer up by id.
func (s *Store) Customer(id string) (domain.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Customer{}, false
}

// AddCustomer assigns an id and prepends the customer to the list.
func (s *Store) AddCustomer(c domain.Customer) domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = "c_" + uuid.NewString()
	s.customers = append([]domain.Customer{c}, s.customers...)
	s.persist(keyCustomers, s.customers)
	return c
}

// UpdateCustomer replaces the stored record. Snapshots already embedded in
// invoices are independent copies and stay untouched.
func (s *Store) UpdateCustomer(id string, c domain.Customer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			c.ID = id
			s.customers[i] = c
			s.persist(keyCustomers, s.customers)
			return true
		}
	}
	return false
}

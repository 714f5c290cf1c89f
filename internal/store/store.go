// Package store owns every collection of the billing engine. All mutation
// goes through Store methods; each method updates the in-memory state and
// immediately writes the whole affected collection back to the key-value
// store. No other component writes a collection.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"billkaro/m/domain"
	"billkaro/m/internal/kvstore"
	"billkaro/m/internal/logger"
	"billkaro/m/internal/seed"
)

// Storage keys, one per collection.
const (
	keyLoggedIn  = "bk_loggedIn"
	keyProfile   = "bk_profile"
	keyInvoices  = "bk_invoices"
	keyExpenses  = "bk_expenses"
	keyInventory = "bk_inventory"
	keyCustomers = "bk_customers"
)

// Store is the single state container. The engine itself is single-writer,
// but the HTTP layer serves requests concurrently, so access is serialized
// with a mutex.
type Store struct {
	mu  sync.Mutex
	kv  *kvstore.KV
	log zerolog.Logger
	now func() time.Time

	loggedIn  bool
	profile   domain.BusinessProfile
	invoices  []domain.Invoice
	expenses  []domain.Expense
	inventory []domain.InventoryItem
	customers []domain.Customer
}

// Open loads every collection from the key-value store. An absent key or an
// undecodable snapshot falls back to the seed defaults; a storage failure is
// returned.
func Open(kv *kvstore.KV) (*Store, error) {
	s := &Store{
		kv:  kv,
		log: logger.WithComponent("store"),
		now: time.Now,
	}

	load := func(key string, dest any, fallback func()) error {
		found, err := kv.Get(key, dest)
		if err != nil {
			if strings.HasPrefix(err.Error(), "decode") {
				s.log.Warn().Str("key", key).Err(err).Msg("corrupt snapshot, using seed defaults")
				fallback()
				return nil
			}
			return err
		}
		if !found {
			fallback()
		}
		return nil
	}

	steps := []struct {
		key      string
		dest     any
		fallback func()
	}{
		{keyLoggedIn, &s.loggedIn, func() { s.loggedIn = false }},
		{keyProfile, &s.profile, func() { s.profile = seed.Profile() }},
		{keyInvoices, &s.invoices, func() { s.invoices = seed.Invoices() }},
		{keyExpenses, &s.expenses, func() { s.expenses = seed.Expenses() }},
		{keyInventory, &s.inventory, func() { s.inventory = seed.Inventory() }},
		{keyCustomers, &s.customers, func() { s.customers = seed.Customers() }},
	}
	for _, step := range steps {
		if err := load(step.key, step.dest, step.fallback); err != nil {
			return nil, fmt.Errorf("load state: %w", err)
		}
	}
	return s, nil
}

func (s *Store) persist(key string, v any) {
	if err := s.kv.Set(key, v); err != nil {
		s.log.Error().Str("key", key).Err(err).Msg("persist failed")
	}
}

// Login applies the stand-in credential rule: any non-empty email with a
// password of at least four characters is accepted. Not a security boundary.
func (s *Store) Login(email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if email == "" || len(password) < 4 {
		return false
	}
	s.loggedIn = true
	s.persist(keyLoggedIn, true)
	return true
}

// Logout clears the logged-in flag.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = false
	s.persist(keyLoggedIn, false)
}

// LoggedIn reports the persisted login flag.
func (s *Store) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

// Profile returns the business profile.
func (s *Store) Profile() domain.BusinessProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// SetProfile replaces the business profile wholesale.
func (s *Store) SetProfile(p domain.BusinessProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	s.persist(keyProfile, s.profile)
}

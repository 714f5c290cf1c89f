package store

import (
	"strings"

	"billkaro/m/domain"
	"billkaro/m/internal/billing"
)

// maximum attempts to draw a non-colliding invoice number before accepting
// the last draw.
const numberRetries = 20

// CreateInvoice validates and finalizes a draft, decrements stock for every
// inventory-linked line, prepends the invoice and persists both collections.
// On a validation error nothing is mutated.
func (s *Store) CreateInvoice(draft *billing.Draft, status string) (domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, err := draft.Build(status, s.now())
	if err != nil {
		return domain.Invoice{}, err
	}

	// The random 4-digit suffix is only probabilistically unique; redraw on
	// collision with an existing invoice.
	for attempt := 0; attempt < numberRetries && s.numberExistsLocked(inv.InvoiceNumber); attempt++ {
		inv.InvoiceNumber = billing.GenerateInvoiceNumber(s.now())
	}

	for _, li := range inv.Items {
		if li.ItemID != "" {
			s.updateStockLocked(li.ItemID, li.Quantity)
		}
	}

	s.invoices = append([]domain.Invoice{inv}, s.invoices...)
	s.persist(keyInventory, s.inventory)
	s.persist(keyInvoices, s.invoices)

	s.log.Info().
		Str("invoice", inv.InvoiceNumber).
		Str("status", inv.Status).
		Float64("grand_total", inv.GrandTotal).
		Msg("invoice created")
	return inv, nil
}

func (s *Store) numberExistsLocked(number string) bool {
	for _, inv := range s.invoices {
		if inv.InvoiceNumber == number {
			return true
		}
	}
	return false
}

// Invoices returns invoices matching a free-text search (invoice number or
// customer name), status filter and type filter; "all" or empty filters
// match everything. Sent invoices past their due date are surfaced as
// overdue; the stored record is not rewritten.
func (s *Store) Invoices(search, status, invoiceType string) []domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	search = strings.ToLower(strings.TrimSpace(search))
	today := s.now().Format("2006-01-02")

	var out []domain.Invoice
	for _, inv := range s.invoices {
		inv = withDerivedStatus(inv, today)
		if search != "" && !strings.Contains(strings.ToLower(inv.InvoiceNumber), search) &&
			!strings.Contains(strings.ToLower(inv.Customer.Name), search) {
			continue
		}
		if status != "" && status != "all" && inv.Status != status {
			continue
		}
		if invoiceType != "" && invoiceType != "all" && inv.Type != invoiceType {
			continue
		}
		out = append(out, inv)
	}
	return out
}

// AllInvoices returns a copy of the full collection with derived statuses,
// for the reporting layer.
func (s *Store) AllInvoices() []domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	today := s.now().Format("2006-01-02")
	out := make([]domain.Invoice, len(s.invoices))
	for i, inv := range s.invoices {
		out[i] = withDerivedStatus(inv, today)
	}
	return out
}

// withDerivedStatus maps a sent invoice past its due date to overdue.
// YYYY-MM-DD dates compare correctly as strings.
func withDerivedStatus(inv domain.Invoice, today string) domain.Invoice {
	if inv.Status == domain.StatusSent && inv.DueDate != "" && inv.DueDate < today {
		inv.Status = domain.StatusOverdue
	}
	return inv
}

// MarkInvoicePaid transitions the invoice to paid and stamps paidAt.
func (s *Store) MarkInvoicePaid(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			s.invoices[i].Status = domain.StatusPaid
			s.invoices[i].PaidAt = s.now().Format("2006-01-02")
			s.persist(keyInvoices, s.invoices)
			return true
		}
	}
	return false
}

// DeleteInvoice removes the invoice permanently. Stock is not restored.
func (s *Store) DeleteInvoice(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			s.persist(keyInvoices, s.invoices)
			return true
		}
	}
	return false
}

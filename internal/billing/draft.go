package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"billkaro/m/domain"
)

// Draft is an invoice under construction. Derived line-item fields and the
// totals are recomputed on every edit, so a draft is never stale.
type Draft struct {
	GST      bool
	Customer *domain.Customer
	Items    []domain.InvoiceLineItem
	Discount float64
	Notes    string
	DueDate  string
}

// NewDraft starts an empty draft. The due date defaults to 15 days out.
func NewDraft(gst bool, now time.Time) *Draft {
	return &Draft{
		GST:     gst,
		DueDate: now.AddDate(0, 0, 15).Format("2006-01-02"),
	}
}

// Totals are the aggregate figures over a draft's line items.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	TotalCGST  float64 `json:"totalCgst"`
	TotalSGST  float64 `json:"totalSgst"`
	TotalIGST  float64 `json:"totalIgst"`
	TotalTax   float64 `json:"totalTax"`
	GrandTotal float64 `json:"grandTotal"`
}

// SetCustomer attaches a snapshot of the customer to the draft.
func (d *Draft) SetCustomer(c domain.Customer) {
	snapshot := c
	d.Customer = &snapshot
}

// AddFromInventory adds a stocked product to the draft. If the product is
// already on the draft the existing row's quantity is incremented instead of
// a second row being added.
func (d *Draft) AddFromInventory(item domain.InventoryItem) *domain.InvoiceLineItem {
	for i := range d.Items {
		if d.Items[i].ItemID == item.ID {
			d.Items[i].Quantity++
			Recalculate(&d.Items[i], d.GST)
			return &d.Items[i]
		}
	}
	d.Items = append(d.Items, newInventoryLine(item, d.GST))
	return &d.Items[len(d.Items)-1]
}

// AddCustomItem appends an empty row. The row is invalid until the caller
// sets a name and a positive rate.
func (d *Draft) AddCustomItem() *domain.InvoiceLineItem {
	d.Items = append(d.Items, newCustomLine())
	return &d.Items[len(d.Items)-1]
}

// RemoveItem deletes the row with the given line id.
func (d *Draft) RemoveItem(id string) {
	for i := range d.Items {
		if d.Items[i].ID == id {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return
		}
	}
}

func (d *Draft) item(id string) *domain.InvoiceLineItem {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i]
		}
	}
	return nil
}

// SetItemQuantity updates a row's quantity and recomputes its projection.
func (d *Draft) SetItemQuantity(id string, quantity int) {
	if li := d.item(id); li != nil {
		li.Quantity = quantity
		Recalculate(li, d.GST)
	}
}

// SetItemRate updates a row's unit rate and recomputes its projection.
func (d *Draft) SetItemRate(id string, rate float64) {
	if li := d.item(id); li != nil {
		li.Rate = rate
		Recalculate(li, d.GST)
	}
}

// SetItemGSTRate updates a row's GST slab and recomputes its projection.
func (d *Draft) SetItemGSTRate(id string, gstRate float64) {
	if li := d.item(id); li != nil {
		li.GSTRate = gstRate
		Recalculate(li, d.GST)
	}
}

// SetItemName updates a row's display name.
func (d *Draft) SetItemName(id, name string) {
	if li := d.item(id); li != nil {
		li.Name = name
	}
}

// SetItemHSNCode updates a row's HSN classification code.
func (d *Draft) SetItemHSNCode(id, hsnCode string) {
	if li := d.item(id); li != nil {
		li.HSNCode = hsnCode
	}
}

// SetItemUnit updates a row's unit of measure.
func (d *Draft) SetItemUnit(id, unit string) {
	if li := d.item(id); li != nil {
		li.Unit = unit
	}
}

// Totals folds the current line items and discount into the aggregate
// figures. IGST is always zero in the single-state tax model.
func (d *Draft) Totals() Totals {
	var t Totals
	for _, li := range d.Items {
		t.Subtotal += li.Amount
		t.TotalCGST += li.CGST
		t.TotalSGST += li.SGST
	}
	t.TotalTax = t.TotalCGST + t.TotalSGST + t.TotalIGST
	t.GrandTotal = t.Subtotal + t.TotalTax - d.Discount
	return t
}

// Validate checks the draft is fit to save. It returns a *ValidationError
// wrapping one of the sentinel errors; nothing is mutated on failure.
func (d *Draft) Validate() error {
	if d.Customer == nil {
		return &ValidationError{Err: ErrNoCustomer}
	}
	if len(d.Items) == 0 {
		return &ValidationError{Err: ErrNoItems}
	}
	if d.Discount < 0 {
		return &ValidationError{Err: ErrNegativeDiscount}
	}
	for _, li := range d.Items {
		if li.Name == "" {
			return &ValidationError{Err: ErrInvalidItem, Details: "item name is required"}
		}
		if li.Rate <= 0 {
			return &ValidationError{Err: ErrInvalidItem, Details: fmt.Sprintf("%s: rate must be positive", li.Name)}
		}
		if li.Quantity <= 0 {
			return &ValidationError{Err: ErrInvalidItem, Details: fmt.Sprintf("%s: quantity must be positive", li.Name)}
		}
		if !domain.ValidGSTRate(li.GSTRate) {
			return &ValidationError{Err: ErrInvalidGSTRate, Details: fmt.Sprintf("%s: %.0f%%", li.Name, li.GSTRate)}
		}
	}
	return nil
}

// Build validates the draft and finalizes it into an invoice with a fresh id
// and invoice number, dated now. Status must be draft or sent; paid and
// overdue are lifecycle states an invoice reaches later.
func (d *Draft) Build(status string, now time.Time) (domain.Invoice, error) {
	if status != domain.StatusDraft && status != domain.StatusSent {
		return domain.Invoice{}, &ValidationError{Err: ErrInvalidStatus, Details: status}
	}
	if err := d.Validate(); err != nil {
		return domain.Invoice{}, err
	}

	invoiceType := domain.InvoiceTypeGST
	if !d.GST {
		invoiceType = domain.InvoiceTypeNonGST
	}

	totals := d.Totals()
	items := make([]domain.InvoiceLineItem, len(d.Items))
	copy(items, d.Items)

	return domain.Invoice{
		ID:            "inv_" + uuid.NewString(),
		InvoiceNumber: GenerateInvoiceNumber(now),
		Type:          invoiceType,
		Status:        status,
		Customer:      *d.Customer,
		Items:         items,
		Subtotal:      totals.Subtotal,
		TotalCGST:     totals.TotalCGST,
		TotalSGST:     totals.TotalSGST,
		TotalIGST:     totals.TotalIGST,
		TotalTax:      totals.TotalTax,
		GrandTotal:    totals.GrandTotal,
		Discount:      d.Discount,
		Notes:         d.Notes,
		CreatedAt:     now.Format("2006-01-02"),
		DueDate:       d.DueDate,
	}, nil
}

package domain

// Invoice types.
const (
	InvoiceTypeGST    = "gst"
	InvoiceTypeNonGST = "non-gst"
)

// Invoice statuses. Overdue is derived on read from sent invoices past
// their due date; it is never written back.
const (
	StatusDraft   = "draft"
	StatusSent    = "sent"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

// InvoiceLineItem is one row of an invoice. ItemID is a weak back-reference
// to the inventory item the row was picked from; custom rows leave it empty.
// Amount, CGST and SGST are projections of quantity, rate and GST rate and
// must never drift from the recompute formula.
type InvoiceLineItem struct {
	ID       string  `json:"id"`
	ItemID   string  `json:"itemId,omitempty"`
	Name     string  `json:"name"`
	HSNCode  string  `json:"hsnCode"`
	Quantity int     `json:"quantity"`
	Unit     string  `json:"unit"`
	Rate     float64 `json:"rate"`
	GSTRate  float64 `json:"gstRate"`
	Amount   float64 `json:"amount"`
	CGST     float64 `json:"cgst"`
	SGST     float64 `json:"sgst"`
	IGST     float64 `json:"igst"`
}

// Invoice is a finalized bill. Customer is an embedded snapshot, not a
// reference into the live customer list.
type Invoice struct {
	ID            string            `json:"id"`
	InvoiceNumber string            `json:"invoiceNumber"`
	Type          string            `json:"type"`
	Status        string            `json:"status"`
	Customer      Customer          `json:"customer"`
	Items         []InvoiceLineItem `json:"items"`
	Subtotal      float64           `json:"subtotal"`
	TotalCGST     float64           `json:"totalCgst"`
	TotalSGST     float64           `json:"totalSgst"`
	TotalIGST     float64           `json:"totalIgst"`
	TotalTax      float64           `json:"totalTax"`
	GrandTotal    float64           `json:"grandTotal"`
	Discount      float64           `json:"discount"`
	Notes         string            `json:"notes"`
	CreatedAt     string            `json:"createdAt"`
	DueDate       string            `json:"dueDate"`
	PaidAt        string            `json:"paidAt,omitempty"`
}

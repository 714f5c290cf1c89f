package billing

import (
	"github.com/google/uuid"

	"billkaro/m/domain"
)

// newLineID returns an identifier for a draft line item.
func newLineID() string {
	return "li_" + uuid.NewString()
}

// Recalculate overwrites the derived fields of a line item from its editable
// fields. Every mutation path goes through here so the projection can never
// drift. When gstMode is false the tax split is forced to zero regardless of
// the stored GST rate.
func Recalculate(li *domain.InvoiceLineItem, gstMode bool) {
	li.Amount = float64(li.Quantity) * li.Rate
	if gstMode {
		breakup := CalculateGST(li.Amount, li.GSTRate)
		li.CGST = breakup.CGST
		li.SGST = breakup.SGST
	} else {
		li.CGST = 0
		li.SGST = 0
	}
	li.IGST = 0
}

// newInventoryLine builds a line item from a stocked product, quantity 1.
func newInventoryLine(item domain.InventoryItem, gstMode bool) domain.InvoiceLineItem {
	gstRate := item.GSTRate
	if !gstMode {
		gstRate = 0
	}
	li := domain.InvoiceLineItem{
		ID:       newLineID(),
		ItemID:   item.ID,
		Name:     item.Name,
		HSNCode:  item.HSNCode,
		Quantity: 1,
		Unit:     item.Unit,
		Rate:     item.SellingPrice,
		GSTRate:  gstRate,
	}
	Recalculate(&li, gstMode)
	return li
}

// newCustomLine builds an empty row the user fills in before saving.
func newCustomLine() domain.InvoiceLineItem {
	return domain.InvoiceLineItem{
		ID:       newLineID(),
		Quantity: 1,
		Unit:     "Pcs",
	}
}

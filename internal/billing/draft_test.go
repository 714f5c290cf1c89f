package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"billkaro/m/domain"
)

var testNow = time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)

func galaxyA15() domain.InventoryItem {
	return domain.InventoryItem{
		ID: "i1", Name: "Samsung Galaxy A15", SKU: "EL-SAM-A15", HSNCode: "8517",
		Unit: "Pcs", SellingPrice: 13499, GSTRate: 18, Stock: 24, LowStockThreshold: 5,
	}
}

func usbCable() domain.InventoryItem {
	return domain.InventoryItem{
		ID: "i14", Name: "USB-C Cable 1m", SKU: "AC-USB-C1", HSNCode: "8544",
		Unit: "Pcs", SellingPrice: 99, GSTRate: 18, Stock: 200, LowStockThreshold: 40,
	}
}

func testCustomer() domain.Customer {
	return domain.Customer{ID: "c1", Name: "Rajesh Kumar", Phone: "9876543210", State: "Maharashtra"}
}

func TestAddFromInventoryMergesByItem(t *testing.T) {
	d := NewDraft(true, testNow)

	first := d.AddFromInventory(galaxyA15())
	require.Equal(t, 1, first.Quantity)

	// Picking the same product again increments the existing row.
	second := d.AddFromInventory(galaxyA15())
	require.Len(t, d.Items, 1)
	require.Equal(t, 2, second.Quantity)
	require.Equal(t, first.ID, second.ID)

	require.InDelta(t, 26998, d.Items[0].Amount, 1e-9)
	require.InDelta(t, 2429.82, d.Items[0].CGST, 1e-9)
	require.InDelta(t, 2429.82, d.Items[0].SGST, 1e-9)
	require.Zero(t, d.Items[0].IGST)

	// A different product gets its own row.
	d.AddFromInventory(usbCable())
	require.Len(t, d.Items, 2)
}

func TestLineItemNeverStale(t *testing.T) {
	d := NewDraft(true, testNow)
	line := d.AddFromInventory(galaxyA15())

	d.SetItemQuantity(line.ID, 3)
	require.InDelta(t, 3*13499, d.Items[0].Amount, 1e-9)
	require.InDelta(t, 3*13499*0.18/2, d.Items[0].CGST, 1e-6)

	d.SetItemRate(line.ID, 12999)
	require.InDelta(t, 3*12999, d.Items[0].Amount, 1e-9)

	d.SetItemGSTRate(line.ID, 12)
	require.InDelta(t, 3*12999*0.12/2, d.Items[0].CGST, 1e-6)
	require.InDelta(t, d.Items[0].CGST, d.Items[0].SGST, 1e-12)
}

func TestCustomItemStartsEmpty(t *testing.T) {
	d := NewDraft(true, testNow)
	line := d.AddCustomItem()

	require.Empty(t, line.ItemID)
	require.Equal(t, 1, line.Quantity)
	require.Zero(t, line.Rate)
	require.Zero(t, line.Amount)
	require.Zero(t, line.CGST)

	// Unedited custom rows are not valid for save.
	d.SetCustomer(testCustomer())
	err := d.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidItem)
}

func TestNonGSTInvoiceZeroesTax(t *testing.T) {
	d := NewDraft(false, testNow)
	d.SetCustomer(testCustomer())
	line := d.AddFromInventory(galaxyA15())
	d.SetItemQuantity(line.ID, 2)

	require.Zero(t, d.Items[0].CGST)
	require.Zero(t, d.Items[0].SGST)
	require.Zero(t, d.Items[0].IGST)

	inv, err := d.Build(domain.StatusSent, testNow)
	require.NoError(t, err)
	require.Equal(t, domain.InvoiceTypeNonGST, inv.Type)
	require.Zero(t, inv.TotalTax)
	require.InDelta(t, 26998, inv.GrandTotal, 1e-9)
}

func TestDraftTotals(t *testing.T) {
	d := NewDraft(true, testNow)
	d.SetCustomer(testCustomer())
	phone := d.AddFromInventory(galaxyA15())
	d.SetItemQuantity(phone.ID, 2)
	cable := d.AddFromInventory(usbCable())
	d.SetItemQuantity(cable.ID, 2)

	totals := d.Totals()
	require.InDelta(t, 27196, totals.Subtotal, 1e-9)
	require.InDelta(t, 2447.64, totals.TotalCGST, 1e-6)
	require.InDelta(t, 2447.64, totals.TotalSGST, 1e-6)
	require.Zero(t, totals.TotalIGST)
	require.InDelta(t, 4895.28, totals.TotalTax, 1e-6)
	require.InDelta(t, 32091.28, totals.GrandTotal, 1e-6)

	// grandTotal = subtotal + tax - discount
	d.Discount = 500
	totals = d.Totals()
	require.InDelta(t, 31591.28, totals.GrandTotal, 1e-6)
	require.InDelta(t, totals.Subtotal+totals.TotalTax-d.Discount, totals.GrandTotal, 1e-9)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Draft
		wantErr error
	}{
		{
			name: "no customer",
			build: func() *Draft {
				d := NewDraft(true, testNow)
				d.AddFromInventory(galaxyA15())
				return d
			},
			wantErr: ErrNoCustomer,
		},
		{
			name: "no items",
			build: func() *Draft {
				d := NewDraft(true, testNow)
				d.SetCustomer(testCustomer())
				return d
			},
			wantErr: ErrNoItems,
		},
		{
			name: "unnamed item",
			build: func() *Draft {
				d := NewDraft(true, testNow)
				d.SetCustomer(testCustomer())
				line := d.AddCustomItem()
				d.SetItemRate(line.ID, 100)
				return d
			},
			wantErr: ErrInvalidItem,
		},
		{
			name: "zero rate",
			build: func() *Draft {
				d := NewDraft(true, testNow)
				d.SetCustomer(testCustomer())
				line := d.AddCustomItem()
				d.SetItemName(line.ID, "Service charge")
				return d
			},
			wantErr: ErrInvalidItem,
		},
		{
			name: "zero quantity",
			build: func() *Draft {
				d := NewDraft(true, testNow)
				d.SetCustomer(testCustomer())
				line := d.AddFromInventory(galaxyA15())
				d.SetItemQuantity(line.ID, 0)
				return d
			},
			wantErr: ErrInvalidItem,
		},
		{
			name: "unknown gst slab",
			build: func() *Draft {
				d := NewDraft(true, testNow)
				d.SetCustomer(testCustomer())
				line := d.AddFromInventory(galaxyA15())
				d.SetItemGSTRate(line.ID, 7)
				return d
			},
			wantErr: ErrInvalidGSTRate,
		},
		{
			name: "negative discount",
			build: func() *Draft {
				d := NewDraft(true, testNow)
				d.SetCustomer(testCustomer())
				d.AddFromInventory(galaxyA15())
				d.Discount = -10
				return d
			},
			wantErr: ErrNegativeDiscount,
		},
		{
			name: "valid",
			build: func() *Draft {
				d := NewDraft(true, testNow)
				d.SetCustomer(testCustomer())
				d.AddFromInventory(galaxyA15())
				return d
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestBuild(t *testing.T) {
	d := NewDraft(true, testNow)
	d.SetCustomer(testCustomer())
	line := d.AddFromInventory(galaxyA15())
	d.SetItemQuantity(line.ID, 2)
	d.Notes = "July order"

	inv, err := d.Build(domain.StatusSent, testNow)
	require.NoError(t, err)
	require.NotEmpty(t, inv.ID)
	require.Regexp(t, `^INV-2507-\d{4}$`, inv.InvoiceNumber)
	require.Equal(t, domain.StatusSent, inv.Status)
	require.Equal(t, "2025-07-15", inv.CreatedAt)
	require.Equal(t, "2025-07-30", inv.DueDate, "due date defaults to 15 days out")
	require.Equal(t, "Rajesh Kumar", inv.Customer.Name)
	require.InDelta(t, inv.Subtotal+inv.TotalTax-inv.Discount, inv.GrandTotal, 1e-9)

	// Only draft and sent are valid save statuses.
	_, err = d.Build(domain.StatusPaid, testNow)
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = d.Build("shipped", testNow)
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestRemoveItem(t *testing.T) {
	d := NewDraft(true, testNow)
	phone := d.AddFromInventory(galaxyA15())
	d.AddFromInventory(usbCable())

	d.RemoveItem(phone.ID)
	require.Len(t, d.Items, 1)
	require.Equal(t, "USB-C Cable 1m", d.Items[0].Name)

	totals := d.Totals()
	require.InDelta(t, 99, totals.Subtotal, 1e-9)
}

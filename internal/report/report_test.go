package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"billkaro/m/domain"
)

func julyCollections() ([]domain.Invoice, []domain.Expense) {
	invoices := []domain.Invoice{
		{ID: "inv1", Type: domain.InvoiceTypeGST, Status: domain.StatusPaid, GrandTotal: 32091.28, TotalCGST: 2447.64, TotalSGST: 2447.64, TotalTax: 4895.28, CreatedAt: "2025-07-01"},
		{ID: "inv2", Type: domain.InvoiceTypeGST, Status: domain.StatusSent, GrandTotal: 12589.50, TotalCGST: 299.75, TotalSGST: 299.75, TotalTax: 599.50, CreatedAt: "2025-07-03"},
	}
	expenses := []domain.Expense{
		{ID: "e1", Category: "Rent", Amount: 25000, Date: "2025-07-01"},
		{ID: "e2", Category: "Electricity", Amount: 4200, Date: "2025-07-05"},
	}
	return invoices, expenses
}

func TestMonthlySeries(t *testing.T) {
	invoices, expenses := julyCollections()

	series := MonthlySeries(invoices, expenses)
	require.Len(t, series, 1)

	july := series[0]
	require.Equal(t, "2025-07", july.Month)
	require.InDelta(t, 44680.78, july.TotalIncome, 1e-6)
	require.InDelta(t, 29200, july.TotalExpenses, 1e-9)
	require.InDelta(t, 15480.78, july.Profit, 1e-6)
	require.Equal(t, 2, july.InvoiceCount)
	require.Equal(t, 1, july.PaidCount)
	require.Equal(t, 1, july.UnpaidCount)
}

func TestMonthlySeriesChronologicalOrder(t *testing.T) {
	invoices := []domain.Invoice{
		{ID: "a", Status: domain.StatusPaid, GrandTotal: 100, CreatedAt: "2025-07-10"},
		{ID: "b", Status: domain.StatusSent, GrandTotal: 200, CreatedAt: "2024-12-01"},
		{ID: "c", Status: domain.StatusPaid, GrandTotal: 300, CreatedAt: "2025-01-05"},
	}
	expenses := []domain.Expense{
		{ID: "e", Category: "Rent", Amount: 50, Date: "2024-11-20"},
	}

	series := MonthlySeries(invoices, expenses)
	require.Len(t, series, 4)
	require.Equal(t, "2024-11", series[0].Month)
	require.Equal(t, "2024-12", series[1].Month)
	require.Equal(t, "2025-01", series[2].Month)
	require.Equal(t, "2025-07", series[3].Month)

	// Expense-only buckets report a loss.
	require.InDelta(t, -50, series[0].Profit, 1e-9)
	require.Zero(t, series[0].InvoiceCount)
}

func TestMonthlySeriesIdempotent(t *testing.T) {
	invoices, expenses := julyCollections()
	first := MonthlySeries(invoices, expenses)
	second := MonthlySeries(invoices, expenses)
	require.Equal(t, first, second)
}

func TestCategoryBreakdown(t *testing.T) {
	expenses := []domain.Expense{
		{Category: "Rent", Amount: 25000, Date: "2025-07-01"},
		{Category: "Salary", Amount: 18000, Date: "2025-07-01"},
		{Category: "Salary", Amount: 15000, Date: "2025-07-01"},
		{Category: "Electricity", Amount: 4200, Date: "2025-07-05"},
		{Category: "Rent", Amount: 25000, Date: "2025-06-01"}, // other month, excluded
	}

	breakdown := CategoryBreakdown(expenses, "2025-07")
	require.Len(t, breakdown, 3)
	require.Equal(t, CategoryTotal{Category: "Salary", Amount: 33000}, breakdown[0])
	require.Equal(t, CategoryTotal{Category: "Rent", Amount: 25000}, breakdown[1])
	require.Equal(t, CategoryTotal{Category: "Electricity", Amount: 4200}, breakdown[2])
}

func TestGSTForMonth(t *testing.T) {
	invoices, _ := julyCollections()
	invoices = append(invoices, domain.Invoice{
		ID: "inv3", Type: domain.InvoiceTypeNonGST, Status: domain.StatusPaid,
		GrandTotal: 6500, CreatedAt: "2025-07-05",
	})

	summary := GSTForMonth(invoices, "2025-07")
	require.Equal(t, 2, summary.InvoiceCount, "non-gst invoices are excluded")
	require.InDelta(t, 2747.39, summary.TotalCGST, 1e-6)
	require.InDelta(t, 2747.39, summary.TotalSGST, 1e-6)
	require.InDelta(t, 5494.78, summary.TotalTax, 1e-6)

	empty := GSTForMonth(invoices, "2025-01")
	require.Zero(t, empty.InvoiceCount)
	require.Zero(t, empty.TotalTax)
}

func TestOverall(t *testing.T) {
	invoices, expenses := julyCollections()
	totals := Overall(invoices, expenses)
	require.InDelta(t, 44680.78, totals.TotalIncome, 1e-6)
	require.InDelta(t, 29200, totals.TotalExpenses, 1e-9)
	require.InDelta(t, 15480.78, totals.NetProfit, 1e-6)
}

func TestDashboard(t *testing.T) {
	invoices, expenses := julyCollections()
	inventory := []domain.InventoryItem{
		{ID: "i21", Name: "Borosil Lunch Box", Stock: 3, LowStockThreshold: 5},
		{ID: "i1", Name: "Samsung Galaxy A15", Stock: 24, LowStockThreshold: 5},
	}

	snap := Dashboard(invoices, expenses, inventory, "2025-07")
	require.InDelta(t, 44680.78, snap.Revenue, 1e-6)
	require.InDelta(t, 29200, snap.Expenses, 1e-9)
	require.InDelta(t, 15480.78, snap.Profit, 1e-6)
	require.Equal(t, 2, snap.InvoiceCount)
	require.Equal(t, 2, snap.ExpenseCount)
	require.Equal(t, 1, snap.PaidCount)
	require.InDelta(t, 12589.50, snap.PendingAmount, 1e-6, "unpaid invoices pend")
	require.Len(t, snap.LowStockItems, 1)
	require.Equal(t, "i21", snap.LowStockItems[0].ID)
	require.Len(t, snap.RecentInvoices, 2)
}

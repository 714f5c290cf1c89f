// Package report derives financial views from the invoice and expense
// collections. Every function is pure: same inputs, same output.
package report

import (
	"sort"

	"billkaro/m/domain"
)

// monthOf extracts the YYYY-MM bucket key from a YYYY-MM-DD date.
func monthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// MonthlySeries buckets invoices and expenses by calendar month and returns
// the income/expense/profit series in ascending month order. Fixed-width
// zero-padded keys make lexicographic order chronological.
func MonthlySeries(invoices []domain.Invoice, expenses []domain.Expense) []domain.MonthlyReport {
	buckets := make(map[string]*domain.MonthlyReport)

	bucket := func(month string) *domain.MonthlyReport {
		if b, ok := buckets[month]; ok {
			return b
		}
		b := &domain.MonthlyReport{Month: month}
		buckets[month] = b
		return b
	}

	for _, inv := range invoices {
		b := bucket(monthOf(inv.CreatedAt))
		b.TotalIncome += inv.GrandTotal
		b.InvoiceCount++
		if inv.Status == domain.StatusPaid {
			b.PaidCount++
		}
	}
	for _, exp := range expenses {
		bucket(monthOf(exp.Date)).TotalExpenses += exp.Amount
	}

	series := make([]domain.MonthlyReport, 0, len(buckets))
	for _, b := range buckets {
		b.Profit = b.TotalIncome - b.TotalExpenses
		b.UnpaidCount = b.InvoiceCount - b.PaidCount
		series = append(series, *b)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })
	return series
}

// CategoryTotal is one slice of a month's expense breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// CategoryBreakdown sums a month's expenses per category, sorted by amount
// descending. Ties break on category name so the output is deterministic.
func CategoryBreakdown(expenses []domain.Expense, month string) []CategoryTotal {
	sums := make(map[string]float64)
	for _, exp := range expenses {
		if monthOf(exp.Date) == month {
			sums[exp.Category] += exp.Amount
		}
	}
	breakdown := make([]CategoryTotal, 0, len(sums))
	for category, amount := range sums {
		breakdown = append(breakdown, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount != breakdown[j].Amount {
			return breakdown[i].Amount > breakdown[j].Amount
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// GSTSummary totals the tax collected on a month's GST invoices.
type GSTSummary struct {
	Month        string  `json:"month"`
	TotalCGST    float64 `json:"totalCgst"`
	TotalSGST    float64 `json:"totalSgst"`
	TotalTax     float64 `json:"totalTax"`
	InvoiceCount int     `json:"invoiceCount"`
}

// GSTForMonth sums CGST/SGST/tax over the month's gst-type invoices.
func GSTForMonth(invoices []domain.Invoice, month string) GSTSummary {
	summary := GSTSummary{Month: month}
	for _, inv := range invoices {
		if inv.Type != domain.InvoiceTypeGST || monthOf(inv.CreatedAt) != month {
			continue
		}
		summary.TotalCGST += inv.TotalCGST
		summary.TotalSGST += inv.TotalSGST
		summary.TotalTax += inv.TotalTax
		summary.InvoiceCount++
	}
	return summary
}

// OverallTotals are the lifetime figures across all months.
type OverallTotals struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetProfit     float64 `json:"netProfit"`
}

// Overall sums income and expenses over the full collections.
func Overall(invoices []domain.Invoice, expenses []domain.Expense) OverallTotals {
	var t OverallTotals
	for _, inv := range invoices {
		t.TotalIncome += inv.GrandTotal
	}
	for _, exp := range expenses {
		t.TotalExpenses += exp.Amount
	}
	t.NetProfit = t.TotalIncome - t.TotalExpenses
	return t
}

// DashboardSnapshot is the landing-page view for one month.
type DashboardSnapshot struct {
	Month          string                 `json:"month"`
	Revenue        float64                `json:"revenue"`
	Expenses       float64                `json:"expenses"`
	Profit         float64                `json:"profit"`
	InvoiceCount   int                    `json:"invoiceCount"`
	ExpenseCount   int                    `json:"expenseCount"`
	PaidCount      int                    `json:"paidCount"`
	PendingAmount  float64                `json:"pendingAmount"`
	LowStockItems  []domain.InventoryItem `json:"lowStockItems"`
	RecentInvoices []domain.Invoice       `json:"recentInvoices"`
}

// Dashboard assembles the month's headline figures plus low-stock alerts and
// the most recent invoices (up to five, in collection order).
func Dashboard(invoices []domain.Invoice, expenses []domain.Expense, inventory []domain.InventoryItem, month string) DashboardSnapshot {
	snap := DashboardSnapshot{Month: month}

	for _, inv := range invoices {
		if monthOf(inv.CreatedAt) != month {
			continue
		}
		snap.Revenue += inv.GrandTotal
		snap.InvoiceCount++
		if inv.Status == domain.StatusPaid {
			snap.PaidCount++
		} else {
			snap.PendingAmount += inv.GrandTotal
		}
	}
	for _, exp := range expenses {
		if monthOf(exp.Date) == month {
			snap.Expenses += exp.Amount
			snap.ExpenseCount++
		}
	}
	snap.Profit = snap.Revenue - snap.Expenses

	for _, item := range inventory {
		if item.LowStock() {
			snap.LowStockItems = append(snap.LowStockItems, item)
		}
	}

	recent := len(invoices)
	if recent > 5 {
		recent = 5
	}
	snap.RecentInvoices = append([]domain.Invoice(nil), invoices[:recent]...)
	return snap
}

package domain

// MonthlyReport is one bucket of the income/expense time series. Derived on
// demand from the invoice and expense collections, never persisted.
type MonthlyReport struct {
	Month         string  `json:"month"`
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	Profit        float64 `json:"profit"`
	InvoiceCount  int     `json:"invoiceCount"`
	PaidCount     int     `json:"paidCount"`
	UnpaidCount   int     `json:"unpaidCount"`
}

package domain

// Expense is a recorded outgoing. Created and deleted, never derived.
type Expense struct {
	ID            string  `json:"id"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	Vendor        string  `json:"vendor"`
	PaymentMethod string  `json:"paymentMethod"`
	Receipt       string  `json:"receipt,omitempty"`
}

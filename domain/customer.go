package domain

// Customer is a billable party. Invoices embed a full copy of the customer
// at creation time, so editing a customer never rewrites past invoices.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	GSTIN   string `json:"gstin,omitempty"`
	Address string `json:"address"`
	State   string `json:"state"`
}

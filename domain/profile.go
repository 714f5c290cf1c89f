package domain

// BusinessProfile is the shop owner's identity printed on invoices.
// There is exactly one profile; settings replace it wholesale.
type BusinessProfile struct {
	Name    string `json:"name"`
	GSTIN   string `json:"gstin"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	State   string `json:"state"`
}

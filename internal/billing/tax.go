package billing

// GSTBreakup is the tax split for a taxable amount. The engine models
// intra-state commerce only, so the tax divides evenly into CGST and SGST
// and IGST is always zero.
type GSTBreakup struct {
	CGST      float64 `json:"cgst"`
	SGST      float64 `json:"sgst"`
	IGST      float64 `json:"igst"`
	TaxAmount float64 `json:"taxAmount"`
	Total     float64 `json:"total"`
}

// CalculateGST splits amount at the given slab rate. No rounding is applied
// here; display rounding is a presentation concern.
func CalculateGST(amount, gstRate float64) GSTBreakup {
	tax := amount * gstRate / 100
	return GSTBreakup{
		CGST:      tax / 2,
		SGST:      tax / 2,
		IGST:      0,
		TaxAmount: tax,
		Total:     amount + tax,
	}
}

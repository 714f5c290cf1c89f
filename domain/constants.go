package domain

// GSTRates are the only tax slabs the engine accepts.
var GSTRates = []float64{0, 5, 12, 18, 28}

// ValidGSTRate reports whether rate is one of the fixed slabs.
func ValidGSTRate(rate float64) bool {
	for _, r := range GSTRates {
		if rate == r {
			return true
		}
	}
	return false
}

// Units sold by quantity.
var Units = []string{
	"Pcs", "Kg", "Ltr", "Mtr", "Box", "Dozen", "Pair", "Set", "Bag", "Bundle",
}

// ExpenseCategories is the fixed category set for expenses.
var ExpenseCategories = []string{
	"Rent", "Electricity", "Salary", "Transport", "Raw Material",
	"Packaging", "Marketing", "Office Supplies", "Maintenance",
	"Insurance", "Telephone", "Internet", "Miscellaneous",
}

// PaymentMethods accepted for expenses.
var PaymentMethods = []string{
	"Cash", "UPI", "Bank Transfer", "Cheque", "Credit Card", "Debit Card",
}

// ItemCategories for inventory classification.
var ItemCategories = []string{
	"Electronics", "Clothing", "Grocery", "Stationery", "Hardware",
	"Cosmetics", "Pharma", "Food & Beverages", "Accessories", "General",
}

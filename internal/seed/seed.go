// Package seed holds the built-in default collections. They are used when a
// storage key is absent on startup, and as the fail-closed fallback when a
// persisted snapshot cannot be decoded.
package seed

import "billkaro/m/domain"

// Profile is the default business profile.
func Profile() domain.BusinessProfile {
	return domain.BusinessProfile{
		Name:    "Sharma Electronics & General Store",
		GSTIN:   "27AAPFU0939F1ZV",
		Address: "Shop No. 12, Market Area, Pune - 411001",
		Phone:   "9876543200",
		Email:   "info@sharmastore.com",
		State:   "Maharashtra",
	}
}

// Customers returns the default customer list.
func Customers() []domain.Customer {
	return []domain.Customer{
		{ID: "c1", Name: "Rajesh Kumar", Phone: "9876543210", Email: "rajesh@example.com", GSTIN: "27AAPFU0939F1ZV", Address: "12, MG Road, Pune", State: "Maharashtra"},
		{ID: "c2", Name: "Priya Sharma", Phone: "9876543211", Email: "priya@example.com", Address: "45, Park Street, Kolkata", State: "West Bengal"},
		{ID: "c3", Name: "Amit Patel", Phone: "9876543212", Email: "amit@example.com", GSTIN: "24AADCB2230M1ZP", Address: "8, CG Road, Ahmedabad", State: "Gujarat"},
		{ID: "c4", Name: "Sunita Verma", Phone: "9876543213", Email: "sunita@example.com", Address: "23, Civil Lines, Jaipur", State: "Rajasthan"},
		{ID: "c5", Name: "Mohammed Irfan", Phone: "9876543214", Email: "irfan@example.com", GSTIN: "29ABCDE1234F1Z5", Address: "78, Brigade Road, Bangalore", State: "Karnataka"},
		{ID: "c6", Name: "Lakshmi Nair", Phone: "9876543215", Email: "lakshmi@example.com", Address: "34, Marine Drive, Kochi", State: "Kerala"},
		{ID: "c7", Name: "Deepak Gupta", Phone: "9876543216", Email: "deepak@example.com", GSTIN: "09AABCU9603R1ZM", Address: "56, Hazratganj, Lucknow", State: "Uttar Pradesh"},
		{ID: "c8", Name: "Ananya Das", Phone: "9876543217", Email: "ananya@example.com", Address: "12, Salt Lake, Kolkata", State: "West Bengal"},
	}
}

// Inventory returns the default stocked items.
func Inventory() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: "i1", Name: "Samsung Galaxy A15", SKU: "EL-SAM-A15", Category: "Electronics", HSNCode: "8517", Unit: "Pcs", PurchasePrice: 11000, SellingPrice: 13499, GSTRate: 18, Stock: 24, LowStockThreshold: 5, CreatedAt: "2025-01-10"},
		{ID: "i2", Name: "Realme Buds Air 5", SKU: "EL-RM-BA5", Category: "Electronics", HSNCode: "8518", Unit: "Pcs", PurchasePrice: 2200, SellingPrice: 2999, GSTRate: 18, Stock: 45, LowStockThreshold: 10, CreatedAt: "2025-01-12"},
		{ID: "i3", Name: "Boat Rockerz 450", SKU: "EL-BOAT-R450", Category: "Electronics", HSNCode: "8518", Unit: "Pcs", PurchasePrice: 1100, SellingPrice: 1499, GSTRate: 18, Stock: 32, LowStockThreshold: 8, CreatedAt: "2025-01-15"},
		{ID: "i4", Name: "Cotton Kurta Set", SKU: "CL-KRT-001", Category: "Clothing", HSNCode: "6204", Unit: "Set", PurchasePrice: 650, SellingPrice: 1199, GSTRate: 5, Stock: 60, LowStockThreshold: 15, CreatedAt: "2025-02-01"},
		{ID: "i5", Name: "Men's Denim Jeans", SKU: "CL-DNM-001", Category: "Clothing", HSNCode: "6203", Unit: "Pcs", PurchasePrice: 500, SellingPrice: 899, GSTRate: 12, Stock: 80, LowStockThreshold: 20, CreatedAt: "2025-02-03"},
		{ID: "i6", Name: "Tata Salt 1kg", SKU: "GR-SALT-1K", Category: "Grocery", HSNCode: "2501", Unit: "Pcs", PurchasePrice: 18, SellingPrice: 24, GSTRate: 0, Stock: 200, LowStockThreshold: 50, CreatedAt: "2025-02-10"},
		{ID: "i7", Name: "Ashirvaad Atta 5kg", SKU: "GR-ATTA-5K", Category: "Grocery", HSNCode: "1101", Unit: "Bag", PurchasePrice: 210, SellingPrice: 265, GSTRate: 0, Stock: 120, LowStockThreshold: 30, CreatedAt: "2025-02-12"},
		{ID: "i8", Name: "Classmate Notebook 200pg", SKU: "ST-NB-200", Category: "Stationery", HSNCode: "4820", Unit: "Pcs", PurchasePrice: 38, SellingPrice: 55, GSTRate: 12, Stock: 300, LowStockThreshold: 50, CreatedAt: "2025-02-15"},
		{ID: "i9", Name: "Parker Pen Blue", SKU: "ST-PEN-PB", Category: "Stationery", HSNCode: "9608", Unit: "Pcs", PurchasePrice: 150, SellingPrice: 220, GSTRate: 18, Stock: 75, LowStockThreshold: 15, CreatedAt: "2025-02-18"},
		{ID: "i10", Name: "Havells LED Bulb 9W", SKU: "HW-LED-9W", Category: "Hardware", HSNCode: "9405", Unit: "Pcs", PurchasePrice: 65, SellingPrice: 99, GSTRate: 18, Stock: 150, LowStockThreshold: 30, CreatedAt: "2025-03-01"},
		{ID: "i11", Name: "Anchor Switch Board 6-way", SKU: "HW-SWB-6", Category: "Hardware", HSNCode: "8536", Unit: "Pcs", PurchasePrice: 120, SellingPrice: 189, GSTRate: 28, Stock: 40, LowStockThreshold: 10, CreatedAt: "2025-03-05"},
		{ID: "i12", Name: "Lakme Foundation", SKU: "CS-LKM-FD", Category: "Cosmetics", HSNCode: "3304", Unit: "Pcs", PurchasePrice: 280, SellingPrice: 450, GSTRate: 28, Stock: 35, LowStockThreshold: 8, CreatedAt: "2025-03-10"},
		{ID: "i13", Name: "Himalaya Face Wash", SKU: "CS-HIM-FW", Category: "Cosmetics", HSNCode: "3304", Unit: "Pcs", PurchasePrice: 95, SellingPrice: 145, GSTRate: 18, Stock: 65, LowStockThreshold: 15, CreatedAt: "2025-03-12"},
		{ID: "i14", Name: "USB-C Cable 1m", SKU: "AC-USB-C1", Category: "Accessories", HSNCode: "8544", Unit: "Pcs", PurchasePrice: 45, SellingPrice: 99, GSTRate: 18, Stock: 200, LowStockThreshold: 40, CreatedAt: "2025-03-15"},
		{ID: "i15", Name: "Phone Tempered Glass", SKU: "AC-TG-001", Category: "Accessories", HSNCode: "7007", Unit: "Pcs", PurchasePrice: 20, SellingPrice: 79, GSTRate: 18, Stock: 350, LowStockThreshold: 60, CreatedAt: "2025-03-18"},
		{ID: "i16", Name: "Crocin Pain Relief", SKU: "PH-CRO-PR", Category: "Pharma", HSNCode: "3004", Unit: "Pcs", PurchasePrice: 22, SellingPrice: 30, GSTRate: 12, Stock: 180, LowStockThreshold: 40, CreatedAt: "2025-03-20"},
		{ID: "i17", Name: "Dabur Honey 500g", SKU: "FB-DHN-500", Category: "Food & Beverages", HSNCode: "0409", Unit: "Pcs", PurchasePrice: 180, SellingPrice: 235, GSTRate: 0, Stock: 55, LowStockThreshold: 12, CreatedAt: "2025-04-01"},
		{ID: "i18", Name: "Paper Cups 50pk", SKU: "GN-CUP-50", Category: "General", HSNCode: "4823", Unit: "Pcs", PurchasePrice: 35, SellingPrice: 60, GSTRate: 12, Stock: 90, LowStockThreshold: 20, CreatedAt: "2025-04-05"},
		{ID: "i19", Name: "Wireless Mouse Logitech", SKU: "EL-LGT-WM", Category: "Electronics", HSNCode: "8471", Unit: "Pcs", PurchasePrice: 500, SellingPrice: 749, GSTRate: 18, Stock: 28, LowStockThreshold: 8, CreatedAt: "2025-04-10"},
		{ID: "i20", Name: "Cotton Face Towel 6pk", SKU: "GN-TWL-6P", Category: "General", HSNCode: "6302", Unit: "Set", PurchasePrice: 120, SellingPrice: 199, GSTRate: 5, Stock: 70, LowStockThreshold: 15, CreatedAt: "2025-04-12"},
		{ID: "i21", Name: "Borosil Lunch Box", SKU: "GN-BLB-001", Category: "General", HSNCode: "7013", Unit: "Pcs", PurchasePrice: 350, SellingPrice: 549, GSTRate: 18, Stock: 3, LowStockThreshold: 5, CreatedAt: "2025-04-15"},
		{ID: "i22", Name: "Godrej Hair Colour", SKU: "CS-GHC-001", Category: "Cosmetics", HSNCode: "3305", Unit: "Pcs", PurchasePrice: 48, SellingPrice: 75, GSTRate: 28, Stock: 2, LowStockThreshold: 10, CreatedAt: "2025-04-18"},
	}
}

// Invoices returns the default invoice history.
func Invoices() []domain.Invoice {
	customers := Customers()
	return []domain.Invoice{
		{
			ID: "inv1", InvoiceNumber: "INV-2507-1001", Type: domain.InvoiceTypeGST, Status: domain.StatusPaid,
			Customer: customers[0],
			Items: []domain.InvoiceLineItem{
				{ID: "li1", ItemID: "i1", Name: "Samsung Galaxy A15", HSNCode: "8517", Quantity: 2, Unit: "Pcs", Rate: 13499, GSTRate: 18, Amount: 26998, CGST: 2429.82, SGST: 2429.82},
				{ID: "li2", ItemID: "i14", Name: "USB-C Cable 1m", HSNCode: "8544", Quantity: 2, Unit: "Pcs", Rate: 99, GSTRate: 18, Amount: 198, CGST: 17.82, SGST: 17.82},
			},
			Subtotal: 27196, TotalCGST: 2447.64, TotalSGST: 2447.64, TotalTax: 4895.28, GrandTotal: 32091.28,
			CreatedAt: "2025-07-01", DueDate: "2025-07-15", PaidAt: "2025-07-05",
		},
		{
			ID: "inv2", InvoiceNumber: "INV-2507-1002", Type: domain.InvoiceTypeGST, Status: domain.StatusSent,
			Customer: customers[2],
			Items: []domain.InvoiceLineItem{
				{ID: "li3", ItemID: "i4", Name: "Cotton Kurta Set", HSNCode: "6204", Quantity: 10, Unit: "Set", Rate: 1199, GSTRate: 5, Amount: 11990, CGST: 299.75, SGST: 299.75},
			},
			Subtotal: 11990, TotalCGST: 299.75, TotalSGST: 299.75, TotalTax: 599.50, GrandTotal: 12589.50,
			Notes: "Bulk order", CreatedAt: "2025-07-03", DueDate: "2025-07-18",
		},
		{
			ID: "inv3", InvoiceNumber: "INV-2507-1003", Type: domain.InvoiceTypeNonGST, Status: domain.StatusPaid,
			Customer: customers[1],
			Items: []domain.InvoiceLineItem{
				{ID: "li4", Name: "Tata Salt 1kg", HSNCode: "2501", Quantity: 50, Unit: "Pcs", Rate: 24, Amount: 1200},
				{ID: "li5", Name: "Ashirvaad Atta 5kg", HSNCode: "1101", Quantity: 20, Unit: "Bag", Rate: 265, Amount: 5300},
			},
			Subtotal: 6500, GrandTotal: 6500,
			CreatedAt: "2025-07-05", DueDate: "2025-07-20", PaidAt: "2025-07-05",
		},
		{
			ID: "inv4", InvoiceNumber: "INV-2507-1004", Type: domain.InvoiceTypeGST, Status: domain.StatusOverdue,
			Customer: customers[4],
			Items: []domain.InvoiceLineItem{
				{ID: "li6", ItemID: "i11", Name: "Anchor Switch Board 6-way", HSNCode: "8536", Quantity: 20, Unit: "Pcs", Rate: 189, GSTRate: 28, Amount: 3780, CGST: 529.2, SGST: 529.2},
				{ID: "li7", ItemID: "i10", Name: "Havells LED Bulb 9W", HSNCode: "9405", Quantity: 50, Unit: "Pcs", Rate: 99, GSTRate: 18, Amount: 4950, CGST: 445.5, SGST: 445.5},
			},
			Subtotal: 8730, TotalCGST: 974.7, TotalSGST: 974.7, TotalTax: 1949.4, GrandTotal: 10679.4,
			Notes: "Delivery pending", CreatedAt: "2025-06-10", DueDate: "2025-06-25",
		},
		{
			ID: "inv5", InvoiceNumber: "INV-2507-1005", Type: domain.InvoiceTypeGST, Status: domain.StatusPaid,
			Customer: customers[6],
			Items: []domain.InvoiceLineItem{
				{ID: "li8", ItemID: "i12", Name: "Lakme Foundation", HSNCode: "3304", Quantity: 5, Unit: "Pcs", Rate: 450, GSTRate: 28, Amount: 2250, CGST: 315, SGST: 315},
				{ID: "li9", ItemID: "i13", Name: "Himalaya Face Wash", HSNCode: "3304", Quantity: 10, Unit: "Pcs", Rate: 145, GSTRate: 18, Amount: 1450, CGST: 130.5, SGST: 130.5},
			},
			Subtotal: 3700, TotalCGST: 445.5, TotalSGST: 445.5, TotalTax: 891, GrandTotal: 4591,
			CreatedAt: "2025-07-08", DueDate: "2025-07-22", PaidAt: "2025-07-10",
		},
		{
			ID: "inv6", InvoiceNumber: "INV-2507-1006", Type: domain.InvoiceTypeNonGST, Status: domain.StatusDraft,
			Customer: customers[3],
			Items: []domain.InvoiceLineItem{
				{ID: "li10", Name: "Custom Embroidery Work", HSNCode: "5810", Quantity: 3, Unit: "Pcs", Rate: 2500, Amount: 7500},
			},
			Subtotal: 7500, GrandTotal: 7500,
			Notes: "Draft for review", CreatedAt: "2025-07-12", DueDate: "2025-07-27",
		},
		{
			ID: "inv7", InvoiceNumber: "INV-2506-0987", Type: domain.InvoiceTypeGST, Status: domain.StatusPaid,
			Customer: customers[5],
			Items: []domain.InvoiceLineItem{
				{ID: "li11", ItemID: "i8", Name: "Classmate Notebook 200pg", HSNCode: "4820", Quantity: 100, Unit: "Pcs", Rate: 55, GSTRate: 12, Amount: 5500, CGST: 330, SGST: 330},
				{ID: "li12", ItemID: "i9", Name: "Parker Pen Blue", HSNCode: "9608", Quantity: 25, Unit: "Pcs", Rate: 220, GSTRate: 18, Amount: 5500, CGST: 495, SGST: 495},
			},
			Subtotal: 11000, TotalCGST: 825, TotalSGST: 825, TotalTax: 1650, GrandTotal: 12650,
			Notes: "School supply order", CreatedAt: "2025-06-15", DueDate: "2025-06-30", PaidAt: "2025-06-28",
		},
		{
			ID: "inv8", InvoiceNumber: "INV-2506-0988", Type: domain.InvoiceTypeGST, Status: domain.StatusPaid,
			Customer: customers[7],
			Items: []domain.InvoiceLineItem{
				{ID: "li13", ItemID: "i2", Name: "Realme Buds Air 5", HSNCode: "8518", Quantity: 3, Unit: "Pcs", Rate: 2999, GSTRate: 18, Amount: 8997, CGST: 809.73, SGST: 809.73},
			},
			Subtotal: 8997, TotalCGST: 809.73, TotalSGST: 809.73, TotalTax: 1619.46, GrandTotal: 10616.46,
			CreatedAt: "2025-06-20", DueDate: "2025-07-05", PaidAt: "2025-06-25",
		},
	}
}

// Expenses returns the default expense history.
func Expenses() []domain.Expense {
	return []domain.Expense{
		{ID: "e1", Category: "Rent", Description: "Shop rent for July", Amount: 25000, Date: "2025-07-01", Vendor: "Ramesh Properties", PaymentMethod: "Bank Transfer"},
		{ID: "e2", Category: "Electricity", Description: "Electricity bill July", Amount: 4200, Date: "2025-07-05", Vendor: "MSEDCL", PaymentMethod: "UPI"},
		{ID: "e3", Category: "Salary", Description: "Staff salary - Suresh", Amount: 18000, Date: "2025-07-01", Vendor: "Suresh Kumar", PaymentMethod: "Bank Transfer"},
		{ID: "e4", Category: "Salary", Description: "Staff salary - Meena", Amount: 15000, Date: "2025-07-01", Vendor: "Meena Devi", PaymentMethod: "Bank Transfer"},
		{ID: "e5", Category: "Transport", Description: "Delivery charges", Amount: 3500, Date: "2025-07-08", Vendor: "Delhivery", PaymentMethod: "UPI"},
		{ID: "e6", Category: "Packaging", Description: "Bubble wrap & boxes", Amount: 2100, Date: "2025-07-10", Vendor: "Packwell", PaymentMethod: "Cash"},
		{ID: "e7", Category: "Marketing", Description: "Google Ads July", Amount: 5000, Date: "2025-07-12", Vendor: "Google", PaymentMethod: "Credit Card"},
		{ID: "e8", Category: "Internet", Description: "Jio Fiber monthly", Amount: 999, Date: "2025-07-01", Vendor: "Jio", PaymentMethod: "UPI"},
		{ID: "e9", Category: "Maintenance", Description: "AC repair shop", Amount: 1800, Date: "2025-07-06", Vendor: "Cool Services", PaymentMethod: "Cash"},
		{ID: "e10", Category: "Office Supplies", Description: "Printer ink & paper", Amount: 1200, Date: "2025-07-09", Vendor: "Staples", PaymentMethod: "UPI"},
		{ID: "e11", Category: "Telephone", Description: "Mobile recharge staff", Amount: 600, Date: "2025-07-05", Vendor: "Airtel", PaymentMethod: "UPI"},
		{ID: "e12", Category: "Miscellaneous", Description: "Tea & snacks", Amount: 900, Date: "2025-07-10", Vendor: "Local vendor", PaymentMethod: "Cash"},
		{ID: "e13", Category: "Rent", Description: "Shop rent for June", Amount: 25000, Date: "2025-06-01", Vendor: "Ramesh Properties", PaymentMethod: "Bank Transfer"},
		{ID: "e14", Category: "Electricity", Description: "Electricity bill June", Amount: 3800, Date: "2025-06-05", Vendor: "MSEDCL", PaymentMethod: "UPI"},
		{ID: "e15", Category: "Salary", Description: "Staff salary - Suresh June", Amount: 18000, Date: "2025-06-01", Vendor: "Suresh Kumar", PaymentMethod: "Bank Transfer"},
		{ID: "e16", Category: "Salary", Description: "Staff salary - Meena June", Amount: 15000, Date: "2025-06-01", Vendor: "Meena Devi", PaymentMethod: "Bank Transfer"},
		{ID: "e17", Category: "Transport", Description: "Courier charges June", Amount: 2800, Date: "2025-06-12", Vendor: "BlueDart", PaymentMethod: "UPI"},
		{ID: "e18", Category: "Marketing", Description: "Pamphlet printing", Amount: 3000, Date: "2025-06-15", Vendor: "Quick Print", PaymentMethod: "Cash"},
		{ID: "e19", Category: "Raw Material", Description: "Packaging material", Amount: 4500, Date: "2025-06-18", Vendor: "Packwell", PaymentMethod: "Cash"},
		{ID: "e20", Category: "Insurance", Description: "Shop insurance quarterly", Amount: 6000, Date: "2025-06-20", Vendor: "HDFC Ergo", PaymentMethod: "Bank Transfer"},
	}
}

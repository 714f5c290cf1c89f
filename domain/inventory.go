package domain

// InventoryItem is a stocked product. Stock never goes below zero.
type InventoryItem struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	SKU               string  `json:"sku"`
	Category          string  `json:"category"`
	HSNCode           string  `json:"hsnCode"`
	Unit              string  `json:"unit"`
	PurchasePrice     float64 `json:"purchasePrice"`
	SellingPrice      float64 `json:"sellingPrice"`
	GSTRate           float64 `json:"gstRate"`
	Stock             int     `json:"stock"`
	LowStockThreshold int     `json:"lowStockThreshold"`
	CreatedAt         string  `json:"createdAt"`
}

// LowStock reports whether the item is at or below its reorder threshold.
// Computed on read, never cached.
func (i InventoryItem) LowStock() bool {
	return i.Stock <= i.LowStockThreshold
}

package store

import (
	"strings"

	"github.com/google/uuid"

	"billkaro/m/domain"
)

// Inventory returns items matching a name/SKU query and category filter.
// Empty query and "all" (or empty) category return everything.
func (s *Store) Inventory(query, category string) []domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	query = strings.ToLower(strings.TrimSpace(query))
	var out []domain.InventoryItem
	for _, item := range s.inventory {
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.SKU), query) {
			continue
		}
		if category != "" && category != "all" && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out
}

// InventoryItem looks an item up by id.
func (s *Store) InventoryItem(id string) (domain.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.inventory {
		if item.ID == id {
			return item, true
		}
	}
	return domain.InventoryItem{}, false
}

// AddInventoryItem assigns an id and creation date and prepends the item.
func (s *Store) AddInventoryItem(item domain.InventoryItem) domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = "i_" + uuid.NewString()
	item.CreatedAt = s.now().Format("2006-01-02")
	if item.Stock < 0 {
		item.Stock = 0
	}
	s.inventory = append([]domain.InventoryItem{item}, s.inventory...)
	s.persist(keyInventory, s.inventory)
	return item
}

// UpdateInventoryItem replaces the stored item, keeping its id and creation
// date.
func (s *Store) UpdateInventoryItem(id string, item domain.InventoryItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			item.ID = id
			item.CreatedAt = s.inventory[i].CreatedAt
			if item.Stock < 0 {
				item.Stock = 0
			}
			s.inventory[i] = item
			s.persist(keyInventory, s.inventory)
			return true
		}
	}
	return false
}

// DeleteInventoryItem removes the item. Historical invoice lines referencing
// it keep their embedded snapshots; there is no cascade.
func (s *Store) DeleteInventoryItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			s.inventory = append(s.inventory[:i], s.inventory[i+1:]...)
			s.persist(keyInventory, s.inventory)
			return true
		}
	}
	return false
}

// UpdateStock decrements the item's stock by quantitySold, clamped at zero.
// Overselling is defined behavior, not a failure; a clamp is logged so it
// stays visible.
func (s *Store) UpdateStock(itemID string, quantitySold int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateStockLocked(itemID, quantitySold)
	s.persist(keyInventory, s.inventory)
}

func (s *Store) updateStockLocked(itemID string, quantitySold int) {
	for i := range s.inventory {
		if s.inventory[i].ID != itemID {
			continue
		}
		remaining := s.inventory[i].Stock - quantitySold
		if remaining < 0 {
			s.log.Warn().
				Str("item_id", itemID).
				Int("stock", s.inventory[i].Stock).
				Int("sold", quantitySold).
				Msg("stock decrement clamped to zero")
			remaining = 0
		}
		s.inventory[i].Stock = remaining
		return
	}
}

// InventorySummary holds the headline stock figures.
type InventorySummary struct {
	ItemCount     int     `json:"itemCount"`
	TotalValue    float64 `json:"totalValue"`
	LowStockCount int     `json:"lowStockCount"`
}

// Summary values the stock at selling price and counts low-stock items.
func (s *Store) Summary() InventorySummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	summary := InventorySummary{ItemCount: len(s.inventory)}
	for _, item := range s.inventory {
		summary.TotalValue += item.SellingPrice * float64(item.Stock)
		if item.LowStock() {
			summary.LowStockCount++
		}
	}
	return summary
}

// LowStockItems returns items at or below their reorder threshold.
func (s *Store) LowStockItems() []domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.InventoryItem
	for _, item := range s.inventory {
		if item.LowStock() {
			out = append(out, item)
		}
	}
	return out
}

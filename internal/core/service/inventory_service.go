package service

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rl1809/warehouse-cluster/internal/core/domain"
)

// InventoryService holds one node's items. A single mutex serializes every
// operation, reads included, so each node is linearizable on its own; there
// is no coordination across nodes.
type InventoryService struct {
	mu    sync.Mutex
	items map[string]domain.Item
}

func NewInventoryService() *InventoryService {
	return &InventoryService{
		items: make(map[string]domain.Item),
	}
}

// AddItem stores a new item under its trimmed SKU and returns the stored
// copy. The SKU must be non-empty after trimming and must not be present.
func (s *InventoryService) AddItem(item domain.Item) (domain.Item, error) {
	sku := strings.TrimSpace(item.SKU)
	if sku == "" {
		return domain.Item{}, domain.ErrEmptySKU
	}
	if item.Quantity < 0 {
		return domain.Item{}, domain.ErrNegativeQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[sku]; ok {
		return domain.Item{}, fmt.Errorf("item %s: %w", sku, domain.ErrItemExists)
	}

	item.SKU = sku
	s.items[sku] = item
	return item, nil
}

// UpdateItem overwrites the fields set in patch and leaves the rest alone.
// The patch is validated before anything is applied, so a rejected update
// changes nothing.
func (s *InventoryService) UpdateItem(sku string, patch domain.ItemPatch) (domain.Item, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return domain.Item{}, domain.ErrEmptySKU
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return domain.Item{}, domain.ErrNegativeQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[sku]
	if !ok {
		return domain.Item{}, fmt.Errorf("item %s: %w", sku, domain.ErrItemNotFound)
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}

	s.items[sku] = item
	return item, nil
}

// TakeItem decrements the item's quantity by amount, all or nothing: if the
// remaining quantity would go negative the item is left untouched.
func (s *InventoryService) TakeItem(sku string, amount int64) (domain.Item, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return domain.Item{}, domain.ErrEmptySKU
	}
	if amount <= 0 {
		return domain.Item{}, domain.ErrNonPositiveAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[sku]
	if !ok {
		return domain.Item{}, fmt.Errorf("item %s: %w", sku, domain.ErrItemNotFound)
	}
	if item.Quantity < amount {
		return domain.Item{}, fmt.Errorf("item %s: %w (%d < %d)",
			sku, domain.ErrInsufficientQuantity, item.Quantity, amount)
	}

	item.Quantity -= amount
	s.items[sku] = item
	return item, nil
}

// QueryItem returns a copy of the item stored under the trimmed SKU.
func (s *InventoryService) QueryItem(sku string) (domain.Item, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return domain.Item{}, domain.ErrEmptySKU
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[sku]
	if !ok {
		return domain.Item{}, fmt.Errorf("item %s: %w", sku, domain.ErrItemNotFound)
	}
	return item, nil
}

// Clear drops every item. It exists for test isolation and administrative
// resets; it is not reachable over the remote interface.
func (s *InventoryService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]domain.Item)
}

// Len reports the number of stored items.
func (s *InventoryService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

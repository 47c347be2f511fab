package service

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rl1809/warehouse-cluster/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func intPtr(n int64) *int64 { return &n }

func TestAddItem_ThenQuery(t *testing.T) {
	store := NewInventoryService()

	added, err := store.AddItem(domain.Item{
		SKU:         "SKU-1001",
		Name:        "Widget",
		Description: "A widget",
		Quantity:    250,
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	got, err := store.QueryItem("SKU-1001")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if got != added {
		t.Errorf("query returned %+v, want %+v", got, added)
	}
}

func TestAddItem_TrimsSKU(t *testing.T) {
	store := NewInventoryService()

	added, err := store.AddItem(domain.Item{SKU: "  SKU-PAD  ", Quantity: 1})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if added.SKU != "SKU-PAD" {
		t.Errorf("expected trimmed SKU, got %q", added.SKU)
	}

	if _, err := store.QueryItem("SKU-PAD"); err != nil {
		t.Errorf("query by trimmed SKU failed: %v", err)
	}
}

func TestAddItem_InvalidArgument(t *testing.T) {
	store := NewInventoryService()

	if _, err := store.AddItem(domain.Item{SKU: "   "}); !errors.Is(err, domain.ErrEmptySKU) {
		t.Errorf("expected ErrEmptySKU, got: %v", err)
	}

	if _, err := store.AddItem(domain.Item{SKU: "SKU-NEG", Quantity: -1}); !errors.Is(err, domain.ErrNegativeQuantity) {
		t.Errorf("expected ErrNegativeQuantity, got: %v", err)
	}
}

func TestAddItem_Duplicate(t *testing.T) {
	store := NewInventoryService()

	first := domain.Item{SKU: "SKU-DUP", Name: "First", Quantity: 10}
	if _, err := store.AddItem(first); err != nil {
		t.Fatalf("first add failed: %v", err)
	}

	_, err := store.AddItem(domain.Item{SKU: "SKU-DUP", Name: "Second", Quantity: 99})
	if !errors.Is(err, domain.ErrItemExists) {
		t.Fatalf("expected ErrItemExists, got: %v", err)
	}

	// The stored item must still be the first payload.
	got, err := store.QueryItem("SKU-DUP")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if got != first {
		t.Errorf("stored item changed after failed add: %+v", got)
	}
}

func TestUpdateItem_PartialMerge(t *testing.T) {
	store := NewInventoryService()
	store.AddItem(domain.Item{SKU: "SKU-UPD", Name: "Widget", Description: "Old", Quantity: 250})

	got, err := store.UpdateItem("SKU-UPD", domain.ItemPatch{
		Name:     strPtr("Widget Pro"),
		Quantity: intPtr(300),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if got.Name != "Widget Pro" {
		t.Errorf("expected name Widget Pro, got %q", got.Name)
	}
	if got.Description != "Old" {
		t.Errorf("omitted description was overwritten: %q", got.Description)
	}
	if got.Quantity != 300 {
		t.Errorf("expected quantity 300, got %d", got.Quantity)
	}
}

func TestUpdateItem_NotFound(t *testing.T) {
	store := NewInventoryService()

	_, err := store.UpdateItem("SKU-MISSING", domain.ItemPatch{Name: strPtr("x")})
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got: %v", err)
	}
}

func TestUpdateItem_InvalidQuantityMutatesNothing(t *testing.T) {
	store := NewInventoryService()
	store.AddItem(domain.Item{SKU: "SKU-ATOMIC", Name: "Widget", Quantity: 5})

	_, err := store.UpdateItem("SKU-ATOMIC", domain.ItemPatch{
		Name:     strPtr("Changed"),
		Quantity: intPtr(-1),
	})
	if !errors.Is(err, domain.ErrNegativeQuantity) {
		t.Fatalf("expected ErrNegativeQuantity, got: %v", err)
	}

	got, _ := store.QueryItem("SKU-ATOMIC")
	if got.Name != "Widget" || got.Quantity != 5 {
		t.Errorf("rejected update mutated the item: %+v", got)
	}
}

func TestUpdateItem_EmptySKU(t *testing.T) {
	store := NewInventoryService()

	_, err := store.UpdateItem("  ", domain.ItemPatch{})
	if !errors.Is(err, domain.ErrEmptySKU) {
		t.Errorf("expected ErrEmptySKU, got: %v", err)
	}
}

func TestTakeItem_Success(t *testing.T) {
	store := NewInventoryService()
	store.AddItem(domain.Item{SKU: "SKU-TAKE", Quantity: 250})

	got, err := store.TakeItem("SKU-TAKE", 120)
	if err != nil {
		t.Fatalf("take failed: %v", err)
	}
	if got.Quantity != 130 {
		t.Errorf("expected quantity 130, got %d", got.Quantity)
	}

	// Taking the exact remainder drains it to zero.
	got, err = store.TakeItem("SKU-TAKE", 130)
	if err != nil {
		t.Fatalf("take failed: %v", err)
	}
	if got.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", got.Quantity)
	}
}

func TestTakeItem_Insufficient(t *testing.T) {
	store := NewInventoryService()
	store.AddItem(domain.Item{SKU: "SKU-LIMIT", Quantity: 5})

	_, err := store.TakeItem("SKU-LIMIT", 10)
	if !errors.Is(err, domain.ErrInsufficientQuantity) {
		t.Fatalf("expected ErrInsufficientQuantity, got: %v", err)
	}

	// No partial decrement.
	got, _ := store.QueryItem("SKU-LIMIT")
	if got.Quantity != 5 {
		t.Errorf("expected quantity 5 after failed take, got %d", got.Quantity)
	}
}

func TestTakeItem_InvalidArgument(t *testing.T) {
	store := NewInventoryService()
	store.AddItem(domain.Item{SKU: "SKU-AMT", Quantity: 5})

	if _, err := store.TakeItem("", 1); !errors.Is(err, domain.ErrEmptySKU) {
		t.Errorf("expected ErrEmptySKU, got: %v", err)
	}
	if _, err := store.TakeItem("SKU-AMT", 0); !errors.Is(err, domain.ErrNonPositiveAmount) {
		t.Errorf("expected ErrNonPositiveAmount for 0, got: %v", err)
	}
	if _, err := store.TakeItem("SKU-AMT", -3); !errors.Is(err, domain.ErrNonPositiveAmount) {
		t.Errorf("expected ErrNonPositiveAmount for -3, got: %v", err)
	}
}

func TestTakeItem_NotFound(t *testing.T) {
	store := NewInventoryService()

	_, err := store.TakeItem("SKU-GHOST", 1)
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got: %v", err)
	}
}

func TestQueryItem_EmptySKU(t *testing.T) {
	store := NewInventoryService()

	_, err := store.QueryItem("")
	if !errors.Is(err, domain.ErrEmptySKU) {
		t.Errorf("expected ErrEmptySKU, got: %v", err)
	}
}

func TestClear(t *testing.T) {
	store := NewInventoryService()
	store.AddItem(domain.Item{SKU: "SKU-A", Quantity: 1})
	store.AddItem(domain.Item{SKU: "SKU-B", Quantity: 2})

	if store.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", store.Len())
	}

	store.Clear()

	if store.Len() != 0 {
		t.Errorf("expected empty store, got %d items", store.Len())
	}
	if _, err := store.QueryItem("SKU-A"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound after clear, got: %v", err)
	}
}

func TestTakeItem_Concurrent(t *testing.T) {
	initialStock := int64(20)
	totalRequests := 50

	store := NewInventoryService()
	store.AddItem(domain.Item{SKU: "SKU-RUSH", Quantity: initialStock})

	var successCount atomic.Int32
	var insufficientCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.TakeItem("SKU-RUSH", 1)
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, domain.ErrInsufficientQuantity):
				insufficientCount.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != int32(initialStock) {
		t.Errorf("expected %d successes, got %d", initialStock, successCount.Load())
	}
	if insufficientCount.Load() != int32(totalRequests)-int32(initialStock) {
		t.Errorf("expected %d failures, got %d", int32(totalRequests)-int32(initialStock), insufficientCount.Load())
	}

	got, _ := store.QueryItem("SKU-RUSH")
	if got.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", got.Quantity)
	}
}

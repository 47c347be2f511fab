package handler

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/rl1809/warehouse-cluster/internal/adapter/handler/pb"
	"github.com/rl1809/warehouse-cluster/internal/core/domain"
	"github.com/rl1809/warehouse-cluster/internal/core/service"
)

// Mock OperationReporter
type captureReporter struct {
	mu      sync.Mutex
	entries []domain.OperationLog
}

func (c *captureReporter) Report(entry domain.OperationLog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry)
}

func (c *captureReporter) Close() error { return nil }

func (c *captureReporter) last(t *testing.T) domain.OperationLog {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) == 0 {
		t.Fatal("no reported entries")
	}
	return c.entries[len(c.entries)-1]
}

func newTestHandler() (*GRPCHandler, *service.InventoryService, *captureReporter) {
	store := service.NewInventoryService()
	reporter := &captureReporter{}
	return NewGRPCHandler(store, reporter, zap.NewNop()), store, reporter
}

func addItemReq(sku string, quantity int64) *pb.AddItemRequest {
	return &pb.AddItemRequest{Item: &pb.Item{
		Sku:         sku,
		Name:        "Widget",
		Description: "A widget",
		Quantity:    quantity,
	}}
}

func TestHandlerAddItem_Success(t *testing.T) {
	h, _, reporter := newTestHandler()

	resp, err := h.AddItem(context.Background(), addItemReq("SKU-1001", 250))
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if resp.GetItem().GetSku() != "SKU-1001" || resp.GetItem().GetQuantity() != 250 {
		t.Errorf("unexpected response item: %+v", resp.GetItem())
	}

	entry := reporter.last(t)
	if !entry.Success || entry.Operation != "AddItem" || entry.ServiceName != "InventoryService" {
		t.Errorf("unexpected audit entry: %+v", entry)
	}
	if entry.RequestData == "" || entry.ResponseData == "" {
		t.Error("expected serialized request and response payloads")
	}
}

func TestHandlerAddItem_Duplicate(t *testing.T) {
	h, _, reporter := newTestHandler()
	ctx := context.Background()

	h.AddItem(ctx, addItemReq("SKU-DUP", 10))
	_, err := h.AddItem(ctx, addItemReq("SKU-DUP", 10))

	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists, got: %v", err)
	}

	entry := reporter.last(t)
	if entry.Success || entry.ErrorMessage == "" {
		t.Errorf("expected failed audit entry with message, got: %+v", entry)
	}
	if entry.ResponseData != "" {
		t.Error("failed call must not carry a response payload")
	}
}

func TestHandlerAddItem_InvalidArgument(t *testing.T) {
	h, _, _ := newTestHandler()
	ctx := context.Background()

	if _, err := h.AddItem(ctx, addItemReq("   ", 1)); status.Code(err) != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument for empty sku, got: %v", err)
	}
	if _, err := h.AddItem(ctx, addItemReq("SKU-NEG", -5)); status.Code(err) != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument for negative quantity, got: %v", err)
	}
}

func TestHandlerUpdateItem_ZeroQuantityWithoutFlag(t *testing.T) {
	h, _, _ := newTestHandler()
	ctx := context.Background()

	h.AddItem(ctx, addItemReq("SKU-AMB", 42))

	// Quantity 0 without the forcing flag means "not provided".
	resp, err := h.UpdateItem(ctx, &pb.UpdateItemRequest{Sku: "SKU-AMB", Name: "Renamed", Quantity: 0})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if resp.GetItem().GetQuantity() != 42 {
		t.Errorf("quantity changed without the flag: %d", resp.GetItem().GetQuantity())
	}
	if resp.GetItem().GetName() != "Renamed" {
		t.Errorf("expected name Renamed, got %q", resp.GetItem().GetName())
	}
}

func TestHandlerUpdateItem_ZeroQuantityWithFlag(t *testing.T) {
	h, _, _ := newTestHandler()
	ctx := context.Background()

	h.AddItem(ctx, addItemReq("SKU-FORCE", 42))

	flagged := metadata.NewIncomingContext(ctx, metadata.Pairs(updateQuantityKey, "true"))
	resp, err := h.UpdateItem(flagged, &pb.UpdateItemRequest{Sku: "SKU-FORCE", Quantity: 0})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if resp.GetItem().GetQuantity() != 0 {
		t.Errorf("expected quantity forced to 0, got %d", resp.GetItem().GetQuantity())
	}
}

func TestHandlerUpdateItem_FlagValues(t *testing.T) {
	cases := []struct {
		value  string
		forced bool
	}{
		{"1", true},
		{"true", true},
		{"yes", true},
		{"TRUE", true},
		{"Yes", true},
		{"0", false},
		{"no", false},
		{"", false},
	}

	for _, tc := range cases {
		h, _, _ := newTestHandler()
		ctx := context.Background()
		h.AddItem(ctx, addItemReq("SKU-FLAG", 42))

		flagged := metadata.NewIncomingContext(ctx, metadata.Pairs(updateQuantityKey, tc.value))
		resp, err := h.UpdateItem(flagged, &pb.UpdateItemRequest{Sku: "SKU-FLAG", Quantity: 0})
		if err != nil {
			t.Fatalf("update with flag %q failed: %v", tc.value, err)
		}

		want := int64(42)
		if tc.forced {
			want = 0
		}
		if got := resp.GetItem().GetQuantity(); got != want {
			t.Errorf("flag %q: expected quantity %d, got %d", tc.value, want, got)
		}
	}
}

func TestHandlerUpdateItem_EmptyStringsNotProvided(t *testing.T) {
	h, _, _ := newTestHandler()
	ctx := context.Background()

	h.AddItem(ctx, addItemReq("SKU-KEEP", 10))

	resp, err := h.UpdateItem(ctx, &pb.UpdateItemRequest{Sku: "SKU-KEEP", Quantity: 99})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if resp.GetItem().GetName() != "Widget" || resp.GetItem().GetDescription() != "A widget" {
		t.Errorf("empty strings overwrote fields: %+v", resp.GetItem())
	}
	if resp.GetItem().GetQuantity() != 99 {
		t.Errorf("expected quantity 99, got %d", resp.GetItem().GetQuantity())
	}
}

func TestHandlerUpdateItem_NotFound(t *testing.T) {
	h, _, _ := newTestHandler()

	_, err := h.UpdateItem(context.Background(), &pb.UpdateItemRequest{Sku: "SKU-GHOST", Name: "x"})
	if status.Code(err) != codes.NotFound {
		t.Errorf("expected NotFound, got: %v", err)
	}
}

func TestHandlerTakeItem(t *testing.T) {
	h, _, reporter := newTestHandler()
	ctx := context.Background()

	h.AddItem(ctx, addItemReq("SKU-LIMIT", 5))

	_, err := h.TakeItem(ctx, &pb.TakeItemRequest{Sku: "SKU-LIMIT", Amount: 10})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got: %v", err)
	}
	if entry := reporter.last(t); entry.Success {
		t.Errorf("expected failed audit entry, got: %+v", entry)
	}

	resp, err := h.TakeItem(ctx, &pb.TakeItemRequest{Sku: "SKU-LIMIT", Amount: 5})
	if err != nil {
		t.Fatalf("take failed: %v", err)
	}
	if resp.GetItem().GetQuantity() != 0 {
		t.Errorf("expected quantity 0, got %d", resp.GetItem().GetQuantity())
	}

	if _, err := h.TakeItem(ctx, &pb.TakeItemRequest{Sku: "SKU-LIMIT", Amount: 0}); status.Code(err) != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument for amount 0, got: %v", err)
	}
}

func TestHandlerQueryItem(t *testing.T) {
	h, _, _ := newTestHandler()
	ctx := context.Background()

	if _, err := h.QueryItem(ctx, &pb.QueryItemRequest{Sku: ""}); status.Code(err) != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument, got: %v", err)
	}
	if _, err := h.QueryItem(ctx, &pb.QueryItemRequest{Sku: "SKU-GHOST"}); status.Code(err) != codes.NotFound {
		t.Errorf("expected NotFound, got: %v", err)
	}

	h.AddItem(ctx, addItemReq("SKU-Q", 7))
	resp, err := h.QueryItem(ctx, &pb.QueryItemRequest{Sku: "SKU-Q"})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if resp.GetItem().GetQuantity() != 7 {
		t.Errorf("expected quantity 7, got %d", resp.GetItem().GetQuantity())
	}
}

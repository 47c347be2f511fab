package cluster

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewRouter_RequiresEndpoints(t *testing.T) {
	if _, err := NewRouter(nil); !errors.Is(err, ErrNoEndpoints) {
		t.Errorf("expected ErrNoEndpoints, got: %v", err)
	}
}

func TestEndpointFor_Deterministic(t *testing.T) {
	router, err := NewRouter([]string{"node-a:50051", "node-b:50051", "node-c:50051"})
	if err != nil {
		t.Fatalf("new router failed: %v", err)
	}

	skus := []string{"SKU-1001", "SKU-LIMIT", "", "widget", "  padded  "}
	for _, sku := range skus {
		first := router.EndpointFor(sku)
		for i := 0; i < 10; i++ {
			if got := router.EndpointFor(sku); got != first {
				t.Errorf("EndpointFor(%q) not stable: %q then %q", sku, first, got)
			}
		}
	}
}

func TestEndpointFor_SameListSameMapping(t *testing.T) {
	endpoints := []string{"node-a:50051", "node-b:50051"}

	r1, _ := NewRouter(endpoints)
	r2, _ := NewRouter(endpoints)

	for i := 0; i < 32; i++ {
		sku := fmt.Sprintf("SKU-%04d", i)
		if r1.EndpointFor(sku) != r2.EndpointFor(sku) {
			t.Errorf("routers disagree on %q", sku)
		}
	}
}

func TestEndpointFor_CoversEndpointSet(t *testing.T) {
	endpoints := []string{"node-a:50051", "node-b:50051"}
	router, _ := NewRouter(endpoints)

	used := make(map[string]bool)
	for i := 0; i < 32; i++ {
		used[router.EndpointFor(fmt.Sprintf("SKU-%04d", i))] = true
	}

	// Every endpoint actually used must be a configured one.
	for endpoint := range used {
		found := false
		for _, e := range endpoints {
			if e == endpoint {
				found = true
			}
		}
		if !found {
			t.Errorf("unknown endpoint %q", endpoint)
		}
	}

	// With 32 distinct SKUs over 2 nodes, both sides of the split should
	// see traffic.
	if len(used) != len(endpoints) {
		t.Errorf("expected all %d endpoints used, got %d", len(endpoints), len(used))
	}
}

func TestNodeIndex_InRange(t *testing.T) {
	router, _ := NewRouter([]string{"a", "b", "c", "d", "e"})

	for i := 0; i < 100; i++ {
		idx := router.NodeIndex(fmt.Sprintf("SKU-%d", i))
		if idx < 0 || idx >= 5 {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestRouter_CopiesEndpointList(t *testing.T) {
	endpoints := []string{"node-a:50051", "node-b:50051"}
	router, _ := NewRouter(endpoints)

	endpoints[0] = "mutated"

	if got := router.Endpoints()[0]; got != "node-a:50051" {
		t.Errorf("router shares caller's slice: %q", got)
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/rl1809/warehouse-cluster/internal/cluster"
	"github.com/rl1809/warehouse-cluster/internal/config"
	"github.com/rl1809/warehouse-cluster/internal/core/domain"
)

const (
	initialStock  = 20
	totalRequests = 50
)

// Stress tool: hammers one SKU with concurrent takes and checks that the
// owning node hands out exactly the available stock, no more.
func main() {
	endpoints, err := config.EndpointsFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	client, err := cluster.New(endpoints)
	if err != nil {
		log.Fatalf("failed to create cluster client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	// Fresh SKU every run so reruns don't collide with earlier state.
	sku := "stress-" + uuid.New().String()

	if _, err := client.AddItem(ctx, domain.Item{
		SKU:      sku,
		Name:     "Stress Item",
		Quantity: initialStock,
	}); err != nil {
		log.Fatalf("failed to seed item: %v", err)
	}
	fmt.Printf("Seeded %s with stock %d on %s\n", sku, initialStock, client.EndpointFor(sku))

	var successCount atomic.Int32
	var failCount atomic.Int32

	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if _, err := client.TakeItem(ctx, sku, 1); err == nil {
				successCount.Add(1)
			} else {
				failCount.Add(1)
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	success := successCount.Load()
	fail := failCount.Load()

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Initial Stock:    %d\n", initialStock)
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Failed:           %d\n", fail)
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	if success == int32(initialStock) && fail == int32(totalRequests-initialStock) {
		fmt.Printf("PASS: Exactly %d takes succeeded, %d failed\n", initialStock, totalRequests-initialStock)
	} else {
		fmt.Printf("FAIL: Expected %d success/%d fail, got %d/%d\n",
			initialStock, totalRequests-initialStock, success, fail)
	}

	item, err := client.QueryItem(ctx, sku)
	if err != nil {
		log.Fatalf("final query failed: %v", err)
	}
	fmt.Printf("Final Quantity: %d\n", item.Quantity)

	if item.Quantity == 0 {
		fmt.Println("PASS: Stock depleted to 0")
	} else {
		fmt.Printf("FAIL: Expected quantity 0, got %d\n", item.Quantity)
	}
}

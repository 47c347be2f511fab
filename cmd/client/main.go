package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rl1809/warehouse-cluster/internal/cluster"
	"github.com/rl1809/warehouse-cluster/internal/config"
	"github.com/rl1809/warehouse-cluster/internal/core/domain"
)

// Demo client: runs a small inventory scenario against the cluster and
// then reads back the audit trail from the logger service.
func main() {
	endpoints, err := config.EndpointsFromEnv()
	if err != nil {
		log.Fatal(err)
	}
	loggerEndpoint := config.LoggerEndpointFromEnv()

	fmt.Println("Warehouse cluster demo client")
	fmt.Printf("Inventory endpoints: %v\n", endpoints)
	fmt.Printf("Logger endpoint:     %s\n", loggerEndpoint)

	client, err := cluster.New(endpoints)
	if err != nil {
		log.Fatalf("failed to create cluster client: %v", err)
	}
	defer client.Close()

	loggerClient, err := cluster.NewLoggerClient(loggerEndpoint)
	if err != nil {
		log.Fatalf("failed to create logger client: %v", err)
	}
	defer loggerClient.Close()

	ctx := context.Background()
	sku := "DEMO-001"

	fmt.Printf("\nAdding item %s (routed to %s)\n", sku, client.EndpointFor(sku))
	item, err := client.AddItem(ctx, domain.Item{
		SKU:         sku,
		Name:        "Demo Item",
		Description: "Seed item",
		Quantity:    500,
	})
	if err != nil {
		log.Fatalf("add failed: %v", err)
	}
	fmt.Printf("Added: quantity=%d\n", item.Quantity)

	item, err = client.UpdateItem(ctx, sku, cluster.WithQuantity(480))
	if err != nil {
		log.Fatalf("update failed: %v", err)
	}
	fmt.Printf("After update: quantity=%d\n", item.Quantity)

	item, err = client.TakeItem(ctx, sku, 30)
	if err != nil {
		log.Fatalf("take failed: %v", err)
	}
	fmt.Printf("After taking 30: quantity=%d\n", item.Quantity)

	item, err = client.QueryItem(ctx, sku)
	if err != nil {
		log.Fatalf("query failed: %v", err)
	}
	fmt.Printf("Final query: name=%q quantity=%d\n", item.Name, item.Quantity)

	// Audit delivery is asynchronous; give the reporters a moment.
	time.Sleep(500 * time.Millisecond)

	fmt.Println("\nRecent audit entries:")
	logs, err := loggerClient.QueryLogs(ctx, domain.LogFilter{Limit: 10})
	if err != nil {
		log.Fatalf("query logs failed: %v", err)
	}
	for _, entry := range logs {
		outcome := "SUCCESS"
		if !entry.Success {
			outcome = "FAILED"
		}
		fmt.Printf("  %s %s.%s from %s - %s\n",
			entry.Timestamp.Format("15:04:05.000"),
			entry.ServiceName, entry.Operation, entry.CallerAddr, outcome)
	}

	stats, err := loggerClient.GetStats(ctx)
	if err != nil {
		log.Fatalf("get stats failed: %v", err)
	}
	fmt.Printf("\nAudit stats: total=%d success=%d failed=%d rate=%.1f%%\n",
		stats.TotalOperations, stats.SuccessfulOperations,
		stats.FailedOperations, stats.SuccessRate)
	for _, op := range stats.OperationStats {
		fmt.Printf("  %-12s total=%d success=%d failed=%d\n",
			op.Operation, op.Total, op.Success, op.Failed)
	}
}

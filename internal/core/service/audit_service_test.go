package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rl1809/warehouse-cluster/internal/core/domain"
)

// Mock AuditRepository
type mockAuditRepo struct {
	logs      []domain.OperationLog
	appendErr error
	listErr   error
}

func (m *mockAuditRepo) Append(ctx context.Context, entry domain.OperationLog) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.logs = append(m.logs, entry)
	return nil
}

func (m *mockAuditRepo) List(ctx context.Context, filter domain.LogFilter) ([]domain.OperationLog, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}

	var matched []domain.OperationLog
	for _, entry := range m.logs {
		if filter.ServiceName != "" && entry.ServiceName != filter.ServiceName {
			continue
		}
		if filter.Operation != "" && entry.Operation != filter.Operation {
			continue
		}
		matched = append(matched, entry)
	}
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[len(matched)-filter.Limit:]
	}
	return matched, nil
}

func (m *mockAuditRepo) Clear(ctx context.Context) (int64, error) {
	count := int64(len(m.logs))
	m.logs = nil
	return count, nil
}

func entry(service, operation string, success bool) domain.OperationLog {
	return domain.OperationLog{
		ServiceName: service,
		Operation:   operation,
		Success:     success,
	}
}

func TestRecord_AssignsIDAndTimestamp(t *testing.T) {
	repo := &mockAuditRepo{}
	svc := NewAuditService(repo)

	got, err := svc.Record(context.Background(), entry("InventoryService", "AddItem", true))
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}

	if got.ID == "" {
		t.Error("expected non-empty ID")
	}
	if got.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
	if len(repo.logs) != 1 {
		t.Fatalf("expected 1 stored entry, got %d", len(repo.logs))
	}
	if repo.logs[0].ID != got.ID {
		t.Error("stored entry does not carry the assigned ID")
	}
}

func TestRecord_RepoFailure(t *testing.T) {
	repo := &mockAuditRepo{appendErr: errors.New("backend down")}
	svc := NewAuditService(repo)

	_, err := svc.Record(context.Background(), entry("InventoryService", "AddItem", true))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestQuery_Filters(t *testing.T) {
	repo := &mockAuditRepo{logs: []domain.OperationLog{
		entry("InventoryService", "AddItem", true),
		entry("InventoryService", "TakeItem", false),
		entry("LoggerService", "QueryLogs", true),
	}}
	svc := NewAuditService(repo)

	got, err := svc.Query(context.Background(), domain.LogFilter{ServiceName: "InventoryService"})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 entries, got %d", len(got))
	}

	got, err = svc.Query(context.Background(), domain.LogFilter{Operation: "QueryLogs"})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(got) != 1 || got[0].ServiceName != "LoggerService" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestStats_Aggregation(t *testing.T) {
	repo := &mockAuditRepo{logs: []domain.OperationLog{
		entry("InventoryService", "AddItem", true),
		entry("InventoryService", "AddItem", true),
		entry("InventoryService", "TakeItem", false),
		entry("LoggerService", "QueryLogs", true),
	}}
	svc := NewAuditService(repo)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	if stats.TotalOperations != 4 {
		t.Errorf("expected 4 total, got %d", stats.TotalOperations)
	}
	if stats.SuccessfulOperations != 3 || stats.FailedOperations != 1 {
		t.Errorf("expected 3/1 success/failed, got %d/%d",
			stats.SuccessfulOperations, stats.FailedOperations)
	}
	if stats.SuccessRate != 75.0 {
		t.Errorf("expected success rate 75, got %v", stats.SuccessRate)
	}

	// Breakdowns keep first-seen order.
	if len(stats.ServiceStats) != 2 ||
		stats.ServiceStats[0].ServiceName != "InventoryService" ||
		stats.ServiceStats[1].ServiceName != "LoggerService" {
		t.Errorf("unexpected service breakdown: %+v", stats.ServiceStats)
	}
	if stats.ServiceStats[0].Total != 3 || stats.ServiceStats[0].Failed != 1 {
		t.Errorf("unexpected InventoryService counts: %+v", stats.ServiceStats[0])
	}

	if len(stats.OperationStats) != 3 || stats.OperationStats[0].Operation != "AddItem" {
		t.Errorf("unexpected operation breakdown: %+v", stats.OperationStats)
	}
	if stats.OperationStats[0].SuccessRate != 100.0 {
		t.Errorf("expected AddItem rate 100, got %v", stats.OperationStats[0].SuccessRate)
	}
}

func TestStats_EmptyLog(t *testing.T) {
	svc := NewAuditService(&mockAuditRepo{})

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalOperations != 0 || stats.SuccessRate != 0.0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
}

func TestAuditClear(t *testing.T) {
	repo := &mockAuditRepo{logs: []domain.OperationLog{
		entry("InventoryService", "AddItem", true),
		entry("InventoryService", "AddItem", true),
	}}
	svc := NewAuditService(repo)

	count, err := svc.Clear(context.Background())
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected cleared count 2, got %d", count)
	}
	if len(repo.logs) != 0 {
		t.Errorf("expected empty repo, got %d entries", len(repo.logs))
	}
}

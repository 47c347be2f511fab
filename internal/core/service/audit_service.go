package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rl1809/warehouse-cluster/internal/core/domain"
	"github.com/rl1809/warehouse-cluster/internal/port"
)

// AuditService keeps the operation audit trail for the cluster. Entries
// come in over the logger RPC surface and land in whichever repository
// the daemon was configured with.
type AuditService struct {
	repo port.AuditRepository
}

func NewAuditService(repo port.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

// Record assigns the entry its ID and timestamp and appends it.
func (s *AuditService) Record(ctx context.Context, entry domain.OperationLog) (domain.OperationLog, error) {
	entry.ID = uuid.New().String()
	entry.Timestamp = time.Now().UTC()

	if err := s.repo.Append(ctx, entry); err != nil {
		return domain.OperationLog{}, fmt.Errorf("append log entry: %w", err)
	}
	return entry, nil
}

// Query returns entries matching the filter in chronological order.
func (s *AuditService) Query(ctx context.Context, filter domain.LogFilter) ([]domain.OperationLog, error) {
	logs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	return logs, nil
}

// Stats aggregates the whole log. Per-service and per-operation breakdowns
// keep the order in which each name first appeared.
func (s *AuditService) Stats(ctx context.Context) (domain.AuditStats, error) {
	logs, err := s.repo.List(ctx, domain.LogFilter{})
	if err != nil {
		return domain.AuditStats{}, fmt.Errorf("list log entries: %w", err)
	}

	stats := domain.AuditStats{TotalOperations: int64(len(logs))}
	serviceIdx := make(map[string]int)
	operationIdx := make(map[string]int)

	for _, entry := range logs {
		if entry.Success {
			stats.SuccessfulOperations++
		} else {
			stats.FailedOperations++
		}

		i, ok := serviceIdx[entry.ServiceName]
		if !ok {
			i = len(stats.ServiceStats)
			serviceIdx[entry.ServiceName] = i
			stats.ServiceStats = append(stats.ServiceStats, domain.ServiceStats{ServiceName: entry.ServiceName})
		}
		stats.ServiceStats[i].Total++
		if entry.Success {
			stats.ServiceStats[i].Success++
		} else {
			stats.ServiceStats[i].Failed++
		}

		j, ok := operationIdx[entry.Operation]
		if !ok {
			j = len(stats.OperationStats)
			operationIdx[entry.Operation] = j
			stats.OperationStats = append(stats.OperationStats, domain.OperationStats{Operation: entry.Operation})
		}
		stats.OperationStats[j].Total++
		if entry.Success {
			stats.OperationStats[j].Success++
		} else {
			stats.OperationStats[j].Failed++
		}
	}

	stats.SuccessRate = successRate(stats.SuccessfulOperations, stats.TotalOperations)
	for i := range stats.ServiceStats {
		stats.ServiceStats[i].SuccessRate = successRate(stats.ServiceStats[i].Success, stats.ServiceStats[i].Total)
	}
	for i := range stats.OperationStats {
		stats.OperationStats[i].SuccessRate = successRate(stats.OperationStats[i].Success, stats.OperationStats[i].Total)
	}

	return stats, nil
}

// Clear removes every entry and returns how many were removed.
func (s *AuditService) Clear(ctx context.Context) (int64, error) {
	count, err := s.repo.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear log entries: %w", err)
	}
	return count, nil
}

func successRate(success, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(success) / float64(total) * 100
}

package storage

import (
	"context"
	"sync"

	"github.com/rl1809/warehouse-cluster/internal/core/domain"
)

// MemoryAdapter keeps the audit log in process memory. It is the default
// backend for the logger daemon and the one tests run against.
type MemoryAdapter struct {
	mu   sync.Mutex
	logs []domain.OperationLog
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{}
}

func (m *MemoryAdapter) Append(ctx context.Context, entry domain.OperationLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, entry)
	return nil
}

func (m *MemoryAdapter) List(ctx context.Context, filter domain.LogFilter) ([]domain.OperationLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []domain.OperationLog
	for _, entry := range m.logs {
		if matchesFilter(entry, filter) {
			matched = append(matched, entry)
		}
	}
	return tailLimit(matched, filter.Limit), nil
}

func (m *MemoryAdapter) Clear(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := int64(len(m.logs))
	m.logs = nil
	return count, nil
}

func matchesFilter(entry domain.OperationLog, filter domain.LogFilter) bool {
	if filter.ServiceName != "" && entry.ServiceName != filter.ServiceName {
		return false
	}
	if filter.Operation != "" && entry.Operation != filter.Operation {
		return false
	}
	return true
}

// tailLimit keeps the last limit entries, preserving chronological order.
func tailLimit(logs []domain.OperationLog, limit int) []domain.OperationLog {
	if limit > 0 && len(logs) > limit {
		return logs[len(logs)-limit:]
	}
	return logs
}

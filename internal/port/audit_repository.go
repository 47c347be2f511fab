package port

import (
	"context"

	"github.com/rl1809/warehouse-cluster/internal/core/domain"
)

type AuditRepository interface {
	// Append persists one operation log entry
	Append(ctx context.Context, entry domain.OperationLog) error

	// List returns entries matching the filter in chronological order
	List(ctx context.Context, filter domain.LogFilter) ([]domain.OperationLog, error)

	// Clear removes all entries and returns how many were removed
	Clear(ctx context.Context) (int64, error)
}

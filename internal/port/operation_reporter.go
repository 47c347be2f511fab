package port

import "github.com/rl1809/warehouse-cluster/internal/core/domain"

type OperationReporter interface {
	// Report hands off an operation log for best-effort delivery; it never
	// blocks and never returns an error to the caller
	Report(entry domain.OperationLog)

	// Close flushes pending entries and releases the underlying connection
	Close() error
}

package audit

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rl1809/warehouse-cluster/internal/adapter/handler/pb"
	"github.com/rl1809/warehouse-cluster/internal/core/domain"
)

const deliveryTimeout = 5 * time.Second

// GRPCReporter ships operation logs to the logger service from a single
// background worker. Report never blocks the calling request: when the
// queue is full the entry is dropped, and delivery failures are logged
// locally and swallowed.
type GRPCReporter struct {
	stub   pb.LoggerServiceClient
	conn   io.Closer
	logger *zap.Logger

	queue chan domain.OperationLog
	done  chan struct{}

	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
	closeErr  error
}

func NewGRPCReporter(endpoint string, queueSize int, logger *zap.Logger) (*GRPCReporter, error) {
	conn, err := grpc.NewClient(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}
	return newGRPCReporter(pb.NewLoggerServiceClient(conn), conn, queueSize, logger), nil
}

// NewGRPCReporterWithClient wires the reporter onto an existing stub.
// Tests use it to capture deliveries in process.
func NewGRPCReporterWithClient(stub pb.LoggerServiceClient, queueSize int, logger *zap.Logger) *GRPCReporter {
	return newGRPCReporter(stub, nil, queueSize, logger)
}

func newGRPCReporter(stub pb.LoggerServiceClient, conn io.Closer, queueSize int, logger *zap.Logger) *GRPCReporter {
	r := &GRPCReporter{
		stub:   stub,
		conn:   conn,
		logger: logger,
		queue:  make(chan domain.OperationLog, queueSize),
		done:   make(chan struct{}),
	}
	go r.deliverLoop()
	return r
}

func (r *GRPCReporter) Report(entry domain.OperationLog) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return
	}

	select {
	case r.queue <- entry:
	default:
		r.logger.Warn("audit queue full, dropping entry",
			zap.String("operation", entry.Operation))
	}
}

func (r *GRPCReporter) deliverLoop() {
	defer close(r.done)

	for entry := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		resp, err := r.stub.LogOperation(ctx, &pb.LogRequest{
			ServiceName:  entry.ServiceName,
			Operation:    entry.Operation,
			ClientIp:     entry.CallerAddr,
			Success:      entry.Success,
			RequestData:  entry.RequestData,
			ResponseData: entry.ResponseData,
			ErrorMessage: entry.ErrorMessage,
		})
		cancel()

		switch {
		case err != nil:
			r.logger.Warn("audit delivery failed",
				zap.String("operation", entry.Operation), zap.Error(err))
		case !resp.GetSuccess():
			r.logger.Warn("audit entry rejected",
				zap.String("operation", entry.Operation),
				zap.String("message", resp.GetMessage()))
		}
	}
}

// Close drains the queue, stops the worker and releases the connection.
// Calling it again is a no-op.
func (r *GRPCReporter) Close() error {
	r.closeOnce.Do(func() {
		r.mu.Lock()
		r.closed = true
		close(r.queue)
		r.mu.Unlock()

		<-r.done
		if r.conn != nil {
			r.closeErr = r.conn.Close()
		}
	})
	return r.closeErr
}

// NopReporter discards every entry. Nodes run with it when no logger
// endpoint is configured.
type NopReporter struct{}

func (NopReporter) Report(domain.OperationLog) {}

func (NopReporter) Close() error { return nil }

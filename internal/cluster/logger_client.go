package cluster

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rl1809/warehouse-cluster/internal/adapter/handler/pb"
	"github.com/rl1809/warehouse-cluster/internal/core/domain"
)

// LoggerClient talks to the audit logger service. It is a thin wrapper
// used by the demo client and operational tooling.
type LoggerClient struct {
	conn    *grpc.ClientConn
	stub    pb.LoggerServiceClient
	timeout time.Duration

	closeOnce sync.Once
	closeErr  error
}

func NewLoggerClient(endpoint string) (*LoggerClient, error) {
	conn, err := grpc.NewClient(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}
	return &LoggerClient{
		conn:    conn,
		stub:    pb.NewLoggerServiceClient(conn),
		timeout: defaultTimeout,
	}, nil
}

// LogOperation submits one audit entry. A response with success=false is
// surfaced as an error.
func (c *LoggerClient) LogOperation(ctx context.Context, entry domain.OperationLog) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.stub.LogOperation(ctx, &pb.LogRequest{
		ServiceName:  entry.ServiceName,
		Operation:    entry.Operation,
		ClientIp:     entry.CallerAddr,
		Success:      entry.Success,
		RequestData:  entry.RequestData,
		ResponseData: entry.ResponseData,
		ErrorMessage: entry.ErrorMessage,
	})
	if err != nil {
		return err
	}
	if !resp.GetSuccess() {
		return errors.New(resp.GetMessage())
	}
	return nil
}

// QueryLogs returns matching audit entries in chronological order.
func (c *LoggerClient) QueryLogs(ctx context.Context, filter domain.LogFilter) ([]domain.OperationLog, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.stub.QueryLogs(ctx, &pb.QueryLogsRequest{
		ServiceName: filter.ServiceName,
		Operation:   filter.Operation,
		Limit:       int32(filter.Limit),
	})
	if err != nil {
		return nil, err
	}

	logs := make([]domain.OperationLog, 0, len(resp.GetLogs()))
	for _, entry := range resp.GetLogs() {
		ts, err := time.Parse(time.RFC3339Nano, entry.GetTimestamp())
		if err != nil {
			return nil, fmt.Errorf("parse log timestamp %q: %w", entry.GetTimestamp(), err)
		}
		logs = append(logs, domain.OperationLog{
			Timestamp:    ts,
			ServiceName:  entry.GetServiceName(),
			Operation:    entry.GetOperation(),
			CallerAddr:   entry.GetClientIp(),
			Success:      entry.GetSuccess(),
			RequestData:  entry.GetRequestData(),
			ResponseData: entry.GetResponseData(),
			ErrorMessage: entry.GetErrorMessage(),
		})
	}
	return logs, nil
}

// GetStats returns the aggregated audit statistics.
func (c *LoggerClient) GetStats(ctx context.Context) (domain.AuditStats, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.stub.GetStats(ctx, &pb.StatsRequest{})
	if err != nil {
		return domain.AuditStats{}, err
	}

	stats := domain.AuditStats{
		TotalOperations:      resp.GetTotalOperations(),
		SuccessfulOperations: resp.GetSuccessfulOperations(),
		FailedOperations:     resp.GetFailedOperations(),
		SuccessRate:          resp.GetSuccessRate(),
	}
	for _, s := range resp.GetServiceStats() {
		stats.ServiceStats = append(stats.ServiceStats, domain.ServiceStats{
			ServiceName: s.GetServiceName(),
			Total:       s.GetTotal(),
			Success:     s.GetSuccess(),
			Failed:      s.GetFailed(),
			SuccessRate: s.GetSuccessRate(),
		})
	}
	for _, o := range resp.GetOperationStats() {
		stats.OperationStats = append(stats.OperationStats, domain.OperationStats{
			Operation:   o.GetOperation(),
			Total:       o.GetTotal(),
			Success:     o.GetSuccess(),
			Failed:      o.GetFailed(),
			SuccessRate: o.GetSuccessRate(),
		})
	}
	return stats, nil
}

// ClearLogs removes every audit entry and returns how many were removed.
func (c *LoggerClient) ClearLogs(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.stub.ClearLogs(ctx, &pb.ClearLogsRequest{})
	if err != nil {
		return 0, err
	}
	if !resp.GetSuccess() {
		return 0, errors.New(resp.GetMessage())
	}
	return resp.GetClearedCount(), nil
}

// Close releases the connection. Calling it again is a no-op.
func (c *LoggerClient) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}

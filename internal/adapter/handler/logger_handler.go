package handler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rl1809/warehouse-cluster/internal/adapter/handler/pb"
	"github.com/rl1809/warehouse-cluster/internal/core/domain"
	"github.com/rl1809/warehouse-cluster/internal/core/service"
)

// LoggerHandler exposes the audit trail over gRPC. LogOperation and
// ClearLogs report repository failures inside the response body instead of
// failing the RPC; the audit sink must never break its callers.
type LoggerHandler struct {
	pb.UnimplementedLoggerServiceServer
	audit  *service.AuditService
	logger *zap.Logger
}

func NewLoggerHandler(audit *service.AuditService, logger *zap.Logger) *LoggerHandler {
	return &LoggerHandler{audit: audit, logger: logger}
}

func (h *LoggerHandler) LogOperation(ctx context.Context, req *pb.LogRequest) (*pb.LogResponse, error) {
	_, err := h.audit.Record(ctx, domain.OperationLog{
		ServiceName:  req.GetServiceName(),
		Operation:    req.GetOperation(),
		CallerAddr:   req.GetClientIp(),
		Success:      req.GetSuccess(),
		RequestData:  req.GetRequestData(),
		ResponseData: req.GetResponseData(),
		ErrorMessage: req.GetErrorMessage(),
	})
	if err != nil {
		h.logger.Error("failed to log operation", zap.Error(err))
		return &pb.LogResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to log operation: %v", err),
		}, nil
	}

	outcome := "SUCCESS"
	if !req.GetSuccess() {
		outcome = "FAILED"
	}
	h.logger.Info("operation logged",
		zap.String("service", req.GetServiceName()),
		zap.String("operation", req.GetOperation()),
		zap.String("caller", req.GetClientIp()),
		zap.String("outcome", outcome),
	)

	return &pb.LogResponse{
		Success: true,
		Message: "Operation logged successfully",
	}, nil
}

func (h *LoggerHandler) QueryLogs(ctx context.Context, req *pb.QueryLogsRequest) (*pb.QueryLogsResponse, error) {
	logs, err := h.audit.Query(ctx, domain.LogFilter{
		ServiceName: req.GetServiceName(),
		Operation:   req.GetOperation(),
		Limit:       int(req.GetLimit()),
	})
	if err != nil {
		h.logger.Error("failed to query logs", zap.Error(err))
		return &pb.QueryLogsResponse{}, nil
	}

	entries := make([]*pb.LogEntry, 0, len(logs))
	for _, entry := range logs {
		entries = append(entries, &pb.LogEntry{
			Timestamp:    entry.Timestamp.Format(time.RFC3339Nano),
			ServiceName:  entry.ServiceName,
			Operation:    entry.Operation,
			ClientIp:     entry.CallerAddr,
			Success:      entry.Success,
			RequestData:  entry.RequestData,
			ResponseData: entry.ResponseData,
			ErrorMessage: entry.ErrorMessage,
		})
	}

	return &pb.QueryLogsResponse{
		Logs:       entries,
		TotalCount: int32(len(entries)),
	}, nil
}

func (h *LoggerHandler) GetStats(ctx context.Context, req *pb.StatsRequest) (*pb.StatsResponse, error) {
	stats, err := h.audit.Stats(ctx)
	if err != nil {
		h.logger.Error("failed to get stats", zap.Error(err))
		return &pb.StatsResponse{}, nil
	}

	resp := &pb.StatsResponse{
		TotalOperations:      stats.TotalOperations,
		SuccessfulOperations: stats.SuccessfulOperations,
		FailedOperations:     stats.FailedOperations,
		SuccessRate:          stats.SuccessRate,
	}
	for _, s := range stats.ServiceStats {
		resp.ServiceStats = append(resp.ServiceStats, &pb.ServiceStats{
			ServiceName: s.ServiceName,
			Total:       s.Total,
			Success:     s.Success,
			Failed:      s.Failed,
			SuccessRate: s.SuccessRate,
		})
	}
	for _, o := range stats.OperationStats {
		resp.OperationStats = append(resp.OperationStats, &pb.OperationStats{
			Operation:   o.Operation,
			Total:       o.Total,
			Success:     o.Success,
			Failed:      o.Failed,
			SuccessRate: o.SuccessRate,
		})
	}

	return resp, nil
}

func (h *LoggerHandler) ClearLogs(ctx context.Context, req *pb.ClearLogsRequest) (*pb.ClearLogsResponse, error) {
	count, err := h.audit.Clear(ctx)
	if err != nil {
		h.logger.Error("failed to clear logs", zap.Error(err))
		return &pb.ClearLogsResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to clear logs: %v", err),
		}, nil
	}

	h.logger.Info("cleared log entries", zap.Int64("count", count))
	return &pb.ClearLogsResponse{
		Success:      true,
		Message:      fmt.Sprintf("Cleared %d log entries", count),
		ClearedCount: count,
	}, nil
}

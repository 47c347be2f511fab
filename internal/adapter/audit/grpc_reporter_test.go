package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/rl1809/warehouse-cluster/internal/adapter/handler/pb"
	"github.com/rl1809/warehouse-cluster/internal/core/domain"
)

// Mock LoggerServiceClient
type fakeLoggerStub struct {
	mu       sync.Mutex
	requests []*pb.LogRequest

	block chan struct{} // when set, LogOperation waits until closed
	err   error
	resp  *pb.LogResponse
}

func (f *fakeLoggerStub) LogOperation(ctx context.Context, in *pb.LogRequest, opts ...grpc.CallOption) (*pb.LogResponse, error) {
	if f.block != nil {
		<-f.block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, in)

	if f.err != nil {
		return nil, f.err
	}
	if f.resp != nil {
		return f.resp, nil
	}
	return &pb.LogResponse{Success: true}, nil
}

func (f *fakeLoggerStub) QueryLogs(ctx context.Context, in *pb.QueryLogsRequest, opts ...grpc.CallOption) (*pb.QueryLogsResponse, error) {
	return &pb.QueryLogsResponse{}, nil
}

func (f *fakeLoggerStub) GetStats(ctx context.Context, in *pb.StatsRequest, opts ...grpc.CallOption) (*pb.StatsResponse, error) {
	return &pb.StatsResponse{}, nil
}

func (f *fakeLoggerStub) ClearLogs(ctx context.Context, in *pb.ClearLogsRequest, opts ...grpc.CallOption) (*pb.ClearLogsResponse, error) {
	return &pb.ClearLogsResponse{}, nil
}

func (f *fakeLoggerStub) delivered() []*pb.LogRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*pb.LogRequest(nil), f.requests...)
}

func testEntry(operation string) domain.OperationLog {
	return domain.OperationLog{
		ServiceName: "InventoryService",
		Operation:   operation,
		CallerAddr:  "10.0.0.1:40000",
		Success:     true,
		RequestData: `{"sku":"SKU-1"}`,
	}
}

func TestReporter_Delivers(t *testing.T) {
	stub := &fakeLoggerStub{}
	reporter := NewGRPCReporterWithClient(stub, 16, zap.NewNop())

	reporter.Report(testEntry("AddItem"))
	reporter.Report(testEntry("TakeItem"))

	// Close drains the queue before returning.
	if err := reporter.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	got := stub.delivered()
	if len(got) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(got))
	}
	if got[0].GetOperation() != "AddItem" || got[0].GetServiceName() != "InventoryService" {
		t.Errorf("unexpected first delivery: %+v", got[0])
	}
	if got[0].GetClientIp() != "10.0.0.1:40000" || got[0].GetRequestData() == "" {
		t.Errorf("caller address or payload not forwarded: %+v", got[0])
	}
}

func TestReporter_DropsWhenFull(t *testing.T) {
	release := make(chan struct{})
	stub := &fakeLoggerStub{block: release}
	reporter := NewGRPCReporterWithClient(stub, 1, zap.NewNop())

	// First entry occupies the worker, second fills the queue, the rest
	// must be dropped without blocking this goroutine.
	for i := 0; i < 5; i++ {
		reporter.Report(testEntry("AddItem"))
	}

	close(release)
	reporter.Close()

	if got := len(stub.delivered()); got > 2 {
		t.Errorf("expected at most 2 deliveries, got %d", got)
	}
}

func TestReporter_DeliveryFailureSwallowed(t *testing.T) {
	stub := &fakeLoggerStub{err: errors.New("logger unreachable")}
	reporter := NewGRPCReporterWithClient(stub, 16, zap.NewNop())

	reporter.Report(testEntry("AddItem"))
	reporter.Report(testEntry("TakeItem"))

	if err := reporter.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	// Both were attempted despite the first failing.
	if got := len(stub.delivered()); got != 2 {
		t.Errorf("expected 2 attempts, got %d", got)
	}
}

func TestReporter_RejectionSwallowed(t *testing.T) {
	stub := &fakeLoggerStub{resp: &pb.LogResponse{Success: false, Message: "backend down"}}
	reporter := NewGRPCReporterWithClient(stub, 16, zap.NewNop())

	reporter.Report(testEntry("AddItem"))

	if err := reporter.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestReporter_ReportAfterClose(t *testing.T) {
	stub := &fakeLoggerStub{}
	reporter := NewGRPCReporterWithClient(stub, 16, zap.NewNop())

	reporter.Close()
	reporter.Report(testEntry("AddItem")) // must not panic

	if got := len(stub.delivered()); got != 0 {
		t.Errorf("expected no deliveries, got %d", got)
	}
}

func TestReporter_CloseIdempotent(t *testing.T) {
	stub := &fakeLoggerStub{}
	reporter := NewGRPCReporterWithClient(stub, 16, zap.NewNop())

	if err := reporter.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := reporter.Close(); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
}

func TestNopReporter(t *testing.T) {
	var reporter NopReporter
	reporter.Report(testEntry("AddItem"))
	if err := reporter.Close(); err != nil {
		t.Errorf("close failed: %v", err)
	}
}

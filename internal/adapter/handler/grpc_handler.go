package handler

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/rl1809/warehouse-cluster/internal/adapter/handler/pb"
	"github.com/rl1809/warehouse-cluster/internal/core/domain"
	"github.com/rl1809/warehouse-cluster/internal/core/service"
	"github.com/rl1809/warehouse-cluster/internal/port"
)

//go:generate protoc --proto_path=../../../proto --go_out=pb --go_opt=paths=source_relative --go-grpc_out=pb --go-grpc_opt=paths=source_relative warehouse.proto

const serviceName = "InventoryService"

// updateQuantityKey is the metadata flag that forces UpdateItem to treat
// quantity 0 as "set to zero" instead of "not provided".
const updateQuantityKey = "update-quantity"

type GRPCHandler struct {
	pb.UnimplementedInventoryServiceServer
	store    *service.InventoryService
	reporter port.OperationReporter
	logger   *zap.Logger
}

func NewGRPCHandler(store *service.InventoryService, reporter port.OperationReporter, logger *zap.Logger) *GRPCHandler {
	return &GRPCHandler{store: store, reporter: reporter, logger: logger}
}

func (h *GRPCHandler) AddItem(ctx context.Context, req *pb.AddItemRequest) (*pb.AddItemResponse, error) {
	item, err := h.store.AddItem(domain.Item{
		SKU:         req.GetItem().GetSku(),
		Name:        req.GetItem().GetName(),
		Description: req.GetItem().GetDescription(),
		Quantity:    req.GetItem().GetQuantity(),
	})
	if err != nil {
		h.report(ctx, "AddItem", req, nil, err)
		return nil, statusFromDomain(err)
	}

	resp := &pb.AddItemResponse{Item: itemToProto(item)}
	h.report(ctx, "AddItem", req, resp, nil)
	return resp, nil
}

func (h *GRPCHandler) UpdateItem(ctx context.Context, req *pb.UpdateItemRequest) (*pb.UpdateItemResponse, error) {
	var patch domain.ItemPatch
	if name := req.GetName(); name != "" {
		patch.Name = &name
	}
	if desc := req.GetDescription(); desc != "" {
		patch.Description = &desc
	}
	// Quantity 0 is ambiguous on the wire: without the forcing flag it
	// means "not provided".
	if qty := req.GetQuantity(); qty != 0 || forceQuantity(ctx) {
		patch.Quantity = &qty
	}

	item, err := h.store.UpdateItem(req.GetSku(), patch)
	if err != nil {
		h.report(ctx, "UpdateItem", req, nil, err)
		return nil, statusFromDomain(err)
	}

	resp := &pb.UpdateItemResponse{Item: itemToProto(item)}
	h.report(ctx, "UpdateItem", req, resp, nil)
	return resp, nil
}

func (h *GRPCHandler) TakeItem(ctx context.Context, req *pb.TakeItemRequest) (*pb.TakeItemResponse, error) {
	item, err := h.store.TakeItem(req.GetSku(), req.GetAmount())
	if err != nil {
		h.report(ctx, "TakeItem", req, nil, err)
		return nil, statusFromDomain(err)
	}

	resp := &pb.TakeItemResponse{Item: itemToProto(item)}
	h.report(ctx, "TakeItem", req, resp, nil)
	return resp, nil
}

func (h *GRPCHandler) QueryItem(ctx context.Context, req *pb.QueryItemRequest) (*pb.QueryItemResponse, error) {
	item, err := h.store.QueryItem(req.GetSku())
	if err != nil {
		h.report(ctx, "QueryItem", req, nil, err)
		return nil, statusFromDomain(err)
	}

	resp := &pb.QueryItemResponse{Item: itemToProto(item)}
	h.report(ctx, "QueryItem", req, resp, nil)
	return resp, nil
}

// report hands the call outcome to the operation reporter. Delivery is
// best-effort; nothing here can fail the call itself.
func (h *GRPCHandler) report(ctx context.Context, operation string, req, resp proto.Message, callErr error) {
	entry := domain.OperationLog{
		ServiceName: serviceName,
		Operation:   operation,
		Success:     callErr == nil,
	}
	if p, ok := peer.FromContext(ctx); ok {
		entry.CallerAddr = p.Addr.String()
	}
	if req != nil {
		entry.RequestData = h.marshalPayload(operation, req)
	}
	if resp != nil {
		entry.ResponseData = h.marshalPayload(operation, resp)
	}
	if callErr != nil {
		entry.ErrorMessage = callErr.Error()
	}
	h.reporter.Report(entry)
}

func (h *GRPCHandler) marshalPayload(operation string, msg proto.Message) string {
	data, err := protojson.Marshal(msg)
	if err != nil {
		h.logger.Warn("failed to serialize audit payload",
			zap.String("operation", operation), zap.Error(err))
		return ""
	}
	return string(data)
}

func forceQuantity(ctx context.Context) bool {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return false
	}
	values := md.Get(updateQuantityKey)
	if len(values) == 0 {
		return false
	}
	switch strings.ToLower(values[len(values)-1]) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func statusFromDomain(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptySKU),
		errors.Is(err, domain.ErrNegativeQuantity),
		errors.Is(err, domain.ErrNonPositiveAmount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrItemExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrItemNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func itemToProto(item domain.Item) *pb.Item {
	return &pb.Item{
		Sku:         item.SKU,
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
	}
}

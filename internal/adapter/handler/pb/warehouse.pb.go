// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: warehouse.proto

package pb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// Item is a single inventory record, keyed by SKU within one node.
type Item struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sku           string                 `protobuf:"bytes,1,opt,name=sku,proto3" json:"sku,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Quantity      int64                  `protobuf:"varint,4,opt,name=quantity,proto3" json:"quantity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Item) Reset() {
	*x = Item{}
	mi := &file_warehouse_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Item) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Item) ProtoMessage() {}

func (x *Item) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Item.ProtoReflect.Descriptor instead.
func (*Item) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{0}
}

func (x *Item) GetSku() string {
	if x != nil {
		return x.Sku
	}
	return ""
}

func (x *Item) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Item) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Item) GetQuantity() int64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

type AddItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *Item                  `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddItemRequest) Reset() {
	*x = AddItemRequest{}
	mi := &file_warehouse_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddItemRequest) ProtoMessage() {}

func (x *AddItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddItemRequest.ProtoReflect.Descriptor instead.
func (*AddItemRequest) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{1}
}

func (x *AddItemRequest) GetItem() *Item {
	if x != nil {
		return x.Item
	}
	return nil
}

type AddItemResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *Item                  `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddItemResponse) Reset() {
	*x = AddItemResponse{}
	mi := &file_warehouse_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddItemResponse) ProtoMessage() {}

func (x *AddItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddItemResponse.ProtoReflect.Descriptor instead.
func (*AddItemResponse) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{2}
}

func (x *AddItemResponse) GetItem() *Item {
	if x != nil {
		return x.Item
	}
	return nil
}

// UpdateItemRequest carries the full field set. Empty name/description mean
// "leave unchanged". Quantity 0 means "leave unchanged" unless the call
// carries the update-quantity metadata flag.
type UpdateItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sku           string                 `protobuf:"bytes,1,opt,name=sku,proto3" json:"sku,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Quantity      int64                  `protobuf:"varint,4,opt,name=quantity,proto3" json:"quantity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateItemRequest) Reset() {
	*x = UpdateItemRequest{}
	mi := &file_warehouse_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateItemRequest) ProtoMessage() {}

func (x *UpdateItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateItemRequest.ProtoReflect.Descriptor instead.
func (*UpdateItemRequest) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{3}
}

func (x *UpdateItemRequest) GetSku() string {
	if x != nil {
		return x.Sku
	}
	return ""
}

func (x *UpdateItemRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UpdateItemRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *UpdateItemRequest) GetQuantity() int64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

type UpdateItemResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *Item                  `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateItemResponse) Reset() {
	*x = UpdateItemResponse{}
	mi := &file_warehouse_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateItemResponse) ProtoMessage() {}

func (x *UpdateItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateItemResponse.ProtoReflect.Descriptor instead.
func (*UpdateItemResponse) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{4}
}

func (x *UpdateItemResponse) GetItem() *Item {
	if x != nil {
		return x.Item
	}
	return nil
}

type TakeItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sku           string                 `protobuf:"bytes,1,opt,name=sku,proto3" json:"sku,omitempty"`
	Amount        int64                  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TakeItemRequest) Reset() {
	*x = TakeItemRequest{}
	mi := &file_warehouse_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TakeItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TakeItemRequest) ProtoMessage() {}

func (x *TakeItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TakeItemRequest.ProtoReflect.Descriptor instead.
func (*TakeItemRequest) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{5}
}

func (x *TakeItemRequest) GetSku() string {
	if x != nil {
		return x.Sku
	}
	return ""
}

func (x *TakeItemRequest) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

type TakeItemResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *Item                  `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TakeItemResponse) Reset() {
	*x = TakeItemResponse{}
	mi := &file_warehouse_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TakeItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TakeItemResponse) ProtoMessage() {}

func (x *TakeItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TakeItemResponse.ProtoReflect.Descriptor instead.
func (*TakeItemResponse) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{6}
}

func (x *TakeItemResponse) GetItem() *Item {
	if x != nil {
		return x.Item
	}
	return nil
}

type QueryItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sku           string                 `protobuf:"bytes,1,opt,name=sku,proto3" json:"sku,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QueryItemRequest) Reset() {
	*x = QueryItemRequest{}
	mi := &file_warehouse_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QueryItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QueryItemRequest) ProtoMessage() {}

func (x *QueryItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QueryItemRequest.ProtoReflect.Descriptor instead.
func (*QueryItemRequest) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{7}
}

func (x *QueryItemRequest) GetSku() string {
	if x != nil {
		return x.Sku
	}
	return ""
}

type QueryItemResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *Item                  `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QueryItemResponse) Reset() {
	*x = QueryItemResponse{}
	mi := &file_warehouse_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QueryItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QueryItemResponse) ProtoMessage() {}

func (x *QueryItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QueryItemResponse.ProtoReflect.Descriptor instead.
func (*QueryItemResponse) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{8}
}

func (x *QueryItemResponse) GetItem() *Item {
	if x != nil {
		return x.Item
	}
	return nil
}

type LogRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ServiceName   string                 `protobuf:"bytes,1,opt,name=service_name,json=serviceName,proto3" json:"service_name,omitempty"`
	Operation     string                 `protobuf:"bytes,2,opt,name=operation,proto3" json:"operation,omitempty"`
	ClientIp      string                 `protobuf:"bytes,3,opt,name=client_ip,json=clientIp,proto3" json:"client_ip,omitempty"`
	Success       bool                   `protobuf:"varint,4,opt,name=success,proto3" json:"success,omitempty"`
	RequestData   string                 `protobuf:"bytes,5,opt,name=request_data,json=requestData,proto3" json:"request_data,omitempty"`
	ResponseData  string                 `protobuf:"bytes,6,opt,name=response_data,json=responseData,proto3" json:"response_data,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LogRequest) Reset() {
	*x = LogRequest{}
	mi := &file_warehouse_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LogRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LogRequest) ProtoMessage() {}

func (x *LogRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LogRequest.ProtoReflect.Descriptor instead.
func (*LogRequest) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{9}
}

func (x *LogRequest) GetServiceName() string {
	if x != nil {
		return x.ServiceName
	}
	return ""
}

func (x *LogRequest) GetOperation() string {
	if x != nil {
		return x.Operation
	}
	return ""
}

func (x *LogRequest) GetClientIp() string {
	if x != nil {
		return x.ClientIp
	}
	return ""
}

func (x *LogRequest) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *LogRequest) GetRequestData() string {
	if x != nil {
		return x.RequestData
	}
	return ""
}

func (x *LogRequest) GetResponseData() string {
	if x != nil {
		return x.ResponseData
	}
	return ""
}

func (x *LogRequest) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type LogResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LogResponse) Reset() {
	*x = LogResponse{}
	mi := &file_warehouse_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LogResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LogResponse) ProtoMessage() {}

func (x *LogResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LogResponse.ProtoReflect.Descriptor instead.
func (*LogResponse) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{10}
}

func (x *LogResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *LogResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type LogEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Timestamp     string                 `protobuf:"bytes,1,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	ServiceName   string                 `protobuf:"bytes,2,opt,name=service_name,json=serviceName,proto3" json:"service_name,omitempty"`
	Operation     string                 `protobuf:"bytes,3,opt,name=operation,proto3" json:"operation,omitempty"`
	ClientIp      string                 `protobuf:"bytes,4,opt,name=client_ip,json=clientIp,proto3" json:"client_ip,omitempty"`
	Success       bool                   `protobuf:"varint,5,opt,name=success,proto3" json:"success,omitempty"`
	RequestData   string                 `protobuf:"bytes,6,opt,name=request_data,json=requestData,proto3" json:"request_data,omitempty"`
	ResponseData  string                 `protobuf:"bytes,7,opt,name=response_data,json=responseData,proto3" json:"response_data,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,8,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LogEntry) Reset() {
	*x = LogEntry{}
	mi := &file_warehouse_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LogEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LogEntry) ProtoMessage() {}

func (x *LogEntry) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LogEntry.ProtoReflect.Descriptor instead.
func (*LogEntry) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{11}
}

func (x *LogEntry) GetTimestamp() string {
	if x != nil {
		return x.Timestamp
	}
	return ""
}

func (x *LogEntry) GetServiceName() string {
	if x != nil {
		return x.ServiceName
	}
	return ""
}

func (x *LogEntry) GetOperation() string {
	if x != nil {
		return x.Operation
	}
	return ""
}

func (x *LogEntry) GetClientIp() string {
	if x != nil {
		return x.ClientIp
	}
	return ""
}

func (x *LogEntry) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *LogEntry) GetRequestData() string {
	if x != nil {
		return x.RequestData
	}
	return ""
}

func (x *LogEntry) GetResponseData() string {
	if x != nil {
		return x.ResponseData
	}
	return ""
}

func (x *LogEntry) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type QueryLogsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ServiceName   string                 `protobuf:"bytes,1,opt,name=service_name,json=serviceName,proto3" json:"service_name,omitempty"`
	Operation     string                 `protobuf:"bytes,2,opt,name=operation,proto3" json:"operation,omitempty"`
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QueryLogsRequest) Reset() {
	*x = QueryLogsRequest{}
	mi := &file_warehouse_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QueryLogsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QueryLogsRequest) ProtoMessage() {}

func (x *QueryLogsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QueryLogsRequest.ProtoReflect.Descriptor instead.
func (*QueryLogsRequest) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{12}
}

func (x *QueryLogsRequest) GetServiceName() string {
	if x != nil {
		return x.ServiceName
	}
	return ""
}

func (x *QueryLogsRequest) GetOperation() string {
	if x != nil {
		return x.Operation
	}
	return ""
}

func (x *QueryLogsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type QueryLogsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Logs          []*LogEntry            `protobuf:"bytes,1,rep,name=logs,proto3" json:"logs,omitempty"`
	TotalCount    int32                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QueryLogsResponse) Reset() {
	*x = QueryLogsResponse{}
	mi := &file_warehouse_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QueryLogsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QueryLogsResponse) ProtoMessage() {}

func (x *QueryLogsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QueryLogsResponse.ProtoReflect.Descriptor instead.
func (*QueryLogsResponse) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{13}
}

func (x *QueryLogsResponse) GetLogs() []*LogEntry {
	if x != nil {
		return x.Logs
	}
	return nil
}

func (x *QueryLogsResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

type StatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StatsRequest) Reset() {
	*x = StatsRequest{}
	mi := &file_warehouse_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatsRequest) ProtoMessage() {}

func (x *StatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatsRequest.ProtoReflect.Descriptor instead.
func (*StatsRequest) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{14}
}

type ServiceStats struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ServiceName   string                 `protobuf:"bytes,1,opt,name=service_name,json=serviceName,proto3" json:"service_name,omitempty"`
	Total         int64                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	Success       int64                  `protobuf:"varint,3,opt,name=success,proto3" json:"success,omitempty"`
	Failed        int64                  `protobuf:"varint,4,opt,name=failed,proto3" json:"failed,omitempty"`
	SuccessRate   float64                `protobuf:"fixed64,5,opt,name=success_rate,json=successRate,proto3" json:"success_rate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ServiceStats) Reset() {
	*x = ServiceStats{}
	mi := &file_warehouse_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ServiceStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ServiceStats) ProtoMessage() {}

func (x *ServiceStats) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ServiceStats.ProtoReflect.Descriptor instead.
func (*ServiceStats) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{15}
}

func (x *ServiceStats) GetServiceName() string {
	if x != nil {
		return x.ServiceName
	}
	return ""
}

func (x *ServiceStats) GetTotal() int64 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *ServiceStats) GetSuccess() int64 {
	if x != nil {
		return x.Success
	}
	return 0
}

func (x *ServiceStats) GetFailed() int64 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *ServiceStats) GetSuccessRate() float64 {
	if x != nil {
		return x.SuccessRate
	}
	return 0
}

type OperationStats struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Operation     string                 `protobuf:"bytes,1,opt,name=operation,proto3" json:"operation,omitempty"`
	Total         int64                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	Success       int64                  `protobuf:"varint,3,opt,name=success,proto3" json:"success,omitempty"`
	Failed        int64                  `protobuf:"varint,4,opt,name=failed,proto3" json:"failed,omitempty"`
	SuccessRate   float64                `protobuf:"fixed64,5,opt,name=success_rate,json=successRate,proto3" json:"success_rate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OperationStats) Reset() {
	*x = OperationStats{}
	mi := &file_warehouse_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OperationStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OperationStats) ProtoMessage() {}

func (x *OperationStats) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OperationStats.ProtoReflect.Descriptor instead.
func (*OperationStats) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{16}
}

func (x *OperationStats) GetOperation() string {
	if x != nil {
		return x.Operation
	}
	return ""
}

func (x *OperationStats) GetTotal() int64 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *OperationStats) GetSuccess() int64 {
	if x != nil {
		return x.Success
	}
	return 0
}

func (x *OperationStats) GetFailed() int64 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *OperationStats) GetSuccessRate() float64 {
	if x != nil {
		return x.SuccessRate
	}
	return 0
}

type StatsResponse struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	TotalOperations      int64                  `protobuf:"varint,1,opt,name=total_operations,json=totalOperations,proto3" json:"total_operations,omitempty"`
	SuccessfulOperations int64                  `protobuf:"varint,2,opt,name=successful_operations,json=successfulOperations,proto3" json:"successful_operations,omitempty"`
	FailedOperations     int64                  `protobuf:"varint,3,opt,name=failed_operations,json=failedOperations,proto3" json:"failed_operations,omitempty"`
	SuccessRate          float64                `protobuf:"fixed64,4,opt,name=success_rate,json=successRate,proto3" json:"success_rate,omitempty"`
	ServiceStats         []*ServiceStats        `protobuf:"bytes,5,rep,name=service_stats,json=serviceStats,proto3" json:"service_stats,omitempty"`
	OperationStats       []*OperationStats      `protobuf:"bytes,6,rep,name=operation_stats,json=operationStats,proto3" json:"operation_stats,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *StatsResponse) Reset() {
	*x = StatsResponse{}
	mi := &file_warehouse_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatsResponse) ProtoMessage() {}

func (x *StatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatsResponse.ProtoReflect.Descriptor instead.
func (*StatsResponse) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{17}
}

func (x *StatsResponse) GetTotalOperations() int64 {
	if x != nil {
		return x.TotalOperations
	}
	return 0
}

func (x *StatsResponse) GetSuccessfulOperations() int64 {
	if x != nil {
		return x.SuccessfulOperations
	}
	return 0
}

func (x *StatsResponse) GetFailedOperations() int64 {
	if x != nil {
		return x.FailedOperations
	}
	return 0
}

func (x *StatsResponse) GetSuccessRate() float64 {
	if x != nil {
		return x.SuccessRate
	}
	return 0
}

func (x *StatsResponse) GetServiceStats() []*ServiceStats {
	if x != nil {
		return x.ServiceStats
	}
	return nil
}

func (x *StatsResponse) GetOperationStats() []*OperationStats {
	if x != nil {
		return x.OperationStats
	}
	return nil
}

type ClearLogsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearLogsRequest) Reset() {
	*x = ClearLogsRequest{}
	mi := &file_warehouse_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearLogsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearLogsRequest) ProtoMessage() {}

func (x *ClearLogsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearLogsRequest.ProtoReflect.Descriptor instead.
func (*ClearLogsRequest) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{18}
}

type ClearLogsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	ClearedCount  int64                  `protobuf:"varint,3,opt,name=cleared_count,json=clearedCount,proto3" json:"cleared_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearLogsResponse) Reset() {
	*x = ClearLogsResponse{}
	mi := &file_warehouse_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearLogsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearLogsResponse) ProtoMessage() {}

func (x *ClearLogsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warehouse_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearLogsResponse.ProtoReflect.Descriptor instead.
func (*ClearLogsResponse) Descriptor() ([]byte, []int) {
	return file_warehouse_proto_rawDescGZIP(), []int{19}
}

func (x *ClearLogsResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ClearLogsResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ClearLogsResponse) GetClearedCount() int64 {
	if x != nil {
		return x.ClearedCount
	}
	return 0
}

var File_warehouse_proto protoreflect.FileDescriptor

const file_warehouse_proto_rawDesc = "" +
	"\n" +
	"\x0fwarehouse.proto\x12\twarehouse\"j\n" +
	"\x04Item\x12\x10\n" +
	"\x03sku\x18\x01 \x01(\tR\x03sku\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x1a\n" +
	"\bquantity\x18\x04 \x01(\x03R\bquantity\"5\n" +
	"\x0eAddItemRequest\x12#\n" +
	"\x04item\x18\x01 \x01(\v2\x0f.warehouse.ItemR\x04item\"6\n" +
	"\x0fAddItemResponse\x12#\n" +
	"\x04item\x18\x01 \x01(\v2\x0f.warehouse.ItemR\x04item\"w\n" +
	"\x11UpdateItemRequest\x12\x10\n" +
	"\x03sku\x18\x01 \x01(\tR\x03sku\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x1a\n" +
	"\bquantity\x18\x04 \x01(\x03R\bquantity\"9\n" +
	"\x12UpdateItemResponse\x12#\n" +
	"\x04item\x18\x01 \x01(\v2\x0f.warehouse.ItemR\x04item\";\n" +
	"\x0fTakeItemRequest\x12\x10\n" +
	"\x03sku\x18\x01 \x01(\tR\x03sku\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\x03R\x06amount\"7\n" +
	"\x10TakeItemResponse\x12#\n" +
	"\x04item\x18\x01 \x01(\v2\x0f.warehouse.ItemR\x04item\"$\n" +
	"\x10QueryItemRequest\x12\x10\n" +
	"\x03sku\x18\x01 \x01(\tR\x03sku\"8\n" +
	"\x11QueryItemResponse\x12#\n" +
	"\x04item\x18\x01 \x01(\v2\x0f.warehouse.ItemR\x04item\"\xf1\x01\n" +
	"\n" +
	"LogRequest\x12!\n" +
	"\fservice_name\x18\x01 \x01(\tR\vserviceName\x12\x1c\n" +
	"\toperation\x18\x02 \x01(\tR\toperation\x12\x1b\n" +
	"\tclient_ip\x18\x03 \x01(\tR\bclientIp\x12\x18\n" +
	"\asuccess\x18\x04 \x01(\bR\asuccess\x12!\n" +
	"\frequest_data\x18\x05 \x01(\tR\vrequestData\x12#\n" +
	"\rresponse_data\x18\x06 \x01(\tR\fresponseData\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\"A\n" +
	"\vLogResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"\x8d\x02\n" +
	"\bLogEntry\x12\x1c\n" +
	"\ttimestamp\x18\x01 \x01(\tR\ttimestamp\x12!\n" +
	"\fservice_name\x18\x02 \x01(\tR\vserviceName\x12\x1c\n" +
	"\toperation\x18\x03 \x01(\tR\toperation\x12\x1b\n" +
	"\tclient_ip\x18\x04 \x01(\tR\bclientIp\x12\x18\n" +
	"\asuccess\x18\x05 \x01(\bR\asuccess\x12!\n" +
	"\frequest_data\x18\x06 \x01(\tR\vrequestData\x12#\n" +
	"\rresponse_data\x18\a \x01(\tR\fresponseData\x12#\n" +
	"\rerror_message\x18\b \x01(\tR\ferrorMessage\"i\n" +
	"\x10QueryLogsRequest\x12!\n" +
	"\fservice_name\x18\x01 \x01(\tR\vserviceName\x12\x1c\n" +
	"\toperation\x18\x02 \x01(\tR\toperation\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\"]\n" +
	"\x11QueryLogsResponse\x12'\n" +
	"\x04logs\x18\x01 \x03(\v2\x13.warehouse.LogEntryR\x04logs\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount\"\x0e\n" +
	"\fStatsRequest\"\x9c\x01\n" +
	"\fServiceStats\x12!\n" +
	"\fservice_name\x18\x01 \x01(\tR\vserviceName\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x03R\x05total\x12\x18\n" +
	"\asuccess\x18\x03 \x01(\x03R\asuccess\x12\x16\n" +
	"\x06failed\x18\x04 \x01(\x03R\x06failed\x12!\n" +
	"\fsuccess_rate\x18\x05 \x01(\x01R\vsuccessRate\"\x99\x01\n" +
	"\x0eOperationStats\x12\x1c\n" +
	"\toperation\x18\x01 \x01(\tR\toperation\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x03R\x05total\x12\x18\n" +
	"\asuccess\x18\x03 \x01(\x03R\asuccess\x12\x16\n" +
	"\x06failed\x18\x04 \x01(\x03R\x06failed\x12!\n" +
	"\fsuccess_rate\x18\x05 \x01(\x01R\vsuccessRate\"\xc1\x02\n" +
	"\rStatsResponse\x12)\n" +
	"\x10total_operations\x18\x01 \x01(\x03R\x0ftotalOperations\x123\n" +
	"\x15successful_operations\x18\x02 \x01(\x03R\x14successfulOperations\x12+\n" +
	"\x11failed_operations\x18\x03 \x01(\x03R\x10failedOperations\x12!\n" +
	"\fsuccess_rate\x18\x04 \x01(\x01R\vsuccessRate\x12<\n" +
	"\rservice_stats\x18\x05 \x03(\v2\x17.warehouse.ServiceStatsR\fserviceStats\x12B\n" +
	"\x0foperation_stats\x18\x06 \x03(\v2\x19.warehouse.OperationStatsR\x0eoperationStats\"\x12\n" +
	"\x10ClearLogsRequest\"l\n" +
	"\x11ClearLogsResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\x12#\n" +
	"\rcleared_count\x18\x03 \x01(\x03R\fclearedCount2\xac\x02\n" +
	"\x10InventoryService\x12@\n" +
	"\aAddItem\x12\x19.warehouse.AddItemRequest\x1a\x1a.warehouse.AddItemResponse\x12I\n" +
	"\n" +
	"UpdateItem\x12\x1c.warehouse.UpdateItemRequest\x1a\x1d.warehouse.UpdateItemResponse\x12C\n" +
	"\bTakeItem\x12\x1a.warehouse.TakeItemRequest\x1a\x1b.warehouse.TakeItemResponse\x12F\n" +
	"\tQueryItem\x12\x1b.warehouse.QueryItemRequest\x1a\x1c.warehouse.QueryItemResponse2\x9d\x02\n" +
	"\rLoggerService\x12=\n" +
	"\fLogOperation\x12\x15.warehouse.LogRequest\x1a\x16.warehouse.LogResponse\x12F\n" +
	"\tQueryLogs\x12\x1b.warehouse.QueryLogsRequest\x1a\x1c.warehouse.QueryLogsResponse\x12=\n" +
	"\bGetStats\x12\x17.warehouse.StatsRequest\x1a\x18.warehouse.StatsResponse\x12F\n" +
	"\tClearLogs\x12\x1b.warehouse.ClearLogsRequest\x1a\x1c.warehouse.ClearLogsResponseBAZ?github.com/rl1809/warehouse-cluster/internal/adapter/handler/pbb\x06proto3"

var (
	file_warehouse_proto_rawDescOnce sync.Once
	file_warehouse_proto_rawDescData []byte
)

func file_warehouse_proto_rawDescGZIP() []byte {
	file_warehouse_proto_rawDescOnce.Do(func() {
		file_warehouse_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_warehouse_proto_rawDesc), len(file_warehouse_proto_rawDesc)))
	})
	return file_warehouse_proto_rawDescData
}

var file_warehouse_proto_msgTypes = make([]protoimpl.MessageInfo, 20)
var file_warehouse_proto_goTypes = []any{
	(*Item)(nil),               // 0: warehouse.Item
	(*AddItemRequest)(nil),     // 1: warehouse.AddItemRequest
	(*AddItemResponse)(nil),    // 2: warehouse.AddItemResponse
	(*UpdateItemRequest)(nil),  // 3: warehouse.UpdateItemRequest
	(*UpdateItemResponse)(nil), // 4: warehouse.UpdateItemResponse
	(*TakeItemRequest)(nil),    // 5: warehouse.TakeItemRequest
	(*TakeItemResponse)(nil),   // 6: warehouse.TakeItemResponse
	(*QueryItemRequest)(nil),   // 7: warehouse.QueryItemRequest
	(*QueryItemResponse)(nil),  // 8: warehouse.QueryItemResponse
	(*LogRequest)(nil),         // 9: warehouse.LogRequest
	(*LogResponse)(nil),        // 10: warehouse.LogResponse
	(*LogEntry)(nil),           // 11: warehouse.LogEntry
	(*QueryLogsRequest)(nil),   // 12: warehouse.QueryLogsRequest
	(*QueryLogsResponse)(nil),  // 13: warehouse.QueryLogsResponse
	(*StatsRequest)(nil),       // 14: warehouse.StatsRequest
	(*ServiceStats)(nil),       // 15: warehouse.ServiceStats
	(*OperationStats)(nil),     // 16: warehouse.OperationStats
	(*StatsResponse)(nil),      // 17: warehouse.StatsResponse
	(*ClearLogsRequest)(nil),   // 18: warehouse.ClearLogsRequest
	(*ClearLogsResponse)(nil),  // 19: warehouse.ClearLogsResponse
}
var file_warehouse_proto_depIdxs = []int32{
	0,  // 0: warehouse.AddItemRequest.item:type_name -> warehouse.Item
	0,  // 1: warehouse.AddItemResponse.item:type_name -> warehouse.Item
	0,  // 2: warehouse.UpdateItemResponse.item:type_name -> warehouse.Item
	0,  // 3: warehouse.TakeItemResponse.item:type_name -> warehouse.Item
	0,  // 4: warehouse.QueryItemResponse.item:type_name -> warehouse.Item
	11, // 5: warehouse.QueryLogsResponse.logs:type_name -> warehouse.LogEntry
	15, // 6: warehouse.StatsResponse.service_stats:type_name -> warehouse.ServiceStats
	16, // 7: warehouse.StatsResponse.operation_stats:type_name -> warehouse.OperationStats
	1,  // 8: warehouse.InventoryService.AddItem:input_type -> warehouse.AddItemRequest
	3,  // 9: warehouse.InventoryService.UpdateItem:input_type -> warehouse.UpdateItemRequest
	5,  // 10: warehouse.InventoryService.TakeItem:input_type -> warehouse.TakeItemRequest
	7,  // 11: warehouse.InventoryService.QueryItem:input_type -> warehouse.QueryItemRequest
	9,  // 12: warehouse.LoggerService.LogOperation:input_type -> warehouse.LogRequest
	12, // 13: warehouse.LoggerService.QueryLogs:input_type -> warehouse.QueryLogsRequest
	14, // 14: warehouse.LoggerService.GetStats:input_type -> warehouse.StatsRequest
	18, // 15: warehouse.LoggerService.ClearLogs:input_type -> warehouse.ClearLogsRequest
	2,  // 16: warehouse.InventoryService.AddItem:output_type -> warehouse.AddItemResponse
	4,  // 17: warehouse.InventoryService.UpdateItem:output_type -> warehouse.UpdateItemResponse
	6,  // 18: warehouse.InventoryService.TakeItem:output_type -> warehouse.TakeItemResponse
	8,  // 19: warehouse.InventoryService.QueryItem:output_type -> warehouse.QueryItemResponse
	10, // 20: warehouse.LoggerService.LogOperation:output_type -> warehouse.LogResponse
	13, // 21: warehouse.LoggerService.QueryLogs:output_type -> warehouse.QueryLogsResponse
	17, // 22: warehouse.LoggerService.GetStats:output_type -> warehouse.StatsResponse
	19, // 23: warehouse.LoggerService.ClearLogs:output_type -> warehouse.ClearLogsResponse
	16, // [16:24] is the sub-list for method output_type
	8,  // [8:16] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_warehouse_proto_init() }
func file_warehouse_proto_init() {
	if File_warehouse_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_warehouse_proto_rawDesc), len(file_warehouse_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   20,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_warehouse_proto_goTypes,
		DependencyIndexes: file_warehouse_proto_depIdxs,
		MessageInfos:      file_warehouse_proto_msgTypes,
	}.Build()
	File_warehouse_proto = out.File
	file_warehouse_proto_goTypes = nil
	file_warehouse_proto_depIdxs = nil
}

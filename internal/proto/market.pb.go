// Package proto содержит типы сообщений и описание сервиса AdminService.
// Типы поддерживаются вручную в соответствии с market.proto и используют
// legacy-форму protobuf-сообщений (теги структур); держите файл в синхроне
// с market.proto при изменении контракта.
package proto

import "fmt"

type RebuildRequest struct {
	OwnerId string `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
}

func (x *RebuildRequest) Reset()         { *x = RebuildRequest{} }
func (x *RebuildRequest) String() string { return fmt.Sprintf("%+v", *x) }
func (*RebuildRequest) ProtoMessage()    {}

func (x *RebuildRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type RebuildResponse struct {
	Success     bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Processed   int64  `protobuf:"varint,2,opt,name=processed,proto3" json:"processed,omitempty"`
	Upserted    int64  `protobuf:"varint,3,opt,name=upserted,proto3" json:"upserted,omitempty"`
	Unpublished int64  `protobuf:"varint,4,opt,name=unpublished,proto3" json:"unpublished,omitempty"`
	Errors      int64  `protobuf:"varint,5,opt,name=errors,proto3" json:"errors,omitempty"`
	Message     string `protobuf:"bytes,6,opt,name=message,proto3" json:"message,omitempty"`
}

func (x *RebuildResponse) Reset()         { *x = RebuildResponse{} }
func (x *RebuildResponse) String() string { return fmt.Sprintf("%+v", *x) }
func (*RebuildResponse) ProtoMessage()    {}

type BulkSetStatusRequest struct {
	OwnerId string   `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	CarIds  []string `protobuf:"bytes,2,rep,name=car_ids,json=carIds,proto3" json:"car_ids,omitempty"`
	Status  string   `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
}

func (x *BulkSetStatusRequest) Reset()         { *x = BulkSetStatusRequest{} }
func (x *BulkSetStatusRequest) String() string { return fmt.Sprintf("%+v", *x) }
func (*BulkSetStatusRequest) ProtoMessage()    {}

func (x *BulkSetStatusRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *BulkSetStatusRequest) GetCarIds() []string {
	if x != nil {
		return x.CarIds
	}
	return nil
}

func (x *BulkSetStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type BulkSetStatusResponse struct {
	Total   int64 `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	Updated int64 `protobuf:"varint,2,opt,name=updated,proto3" json:"updated,omitempty"`
	Errors  int64 `protobuf:"varint,3,opt,name=errors,proto3" json:"errors,omitempty"`
}

func (x *BulkSetStatusResponse) Reset()         { *x = BulkSetStatusResponse{} }
func (x *BulkSetStatusResponse) String() string { return fmt.Sprintf("%+v", *x) }
func (*BulkSetStatusResponse) ProtoMessage()    {}

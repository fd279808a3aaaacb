package proto

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

func errUnimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

const (
	AdminService_Rebuild_FullMethodName       = "/automarket.v1.AdminService/Rebuild"
	AdminService_BulkSetStatus_FullMethodName = "/automarket.v1.AdminService/BulkSetStatus"
)

type AdminServiceClient interface {
	Rebuild(ctx context.Context, in *RebuildRequest, opts ...grpc.CallOption) (*RebuildResponse, error)
	BulkSetStatus(ctx context.Context, in *BulkSetStatusRequest, opts ...grpc.CallOption) (*BulkSetStatusResponse, error)
}

type adminServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAdminServiceClient(cc grpc.ClientConnInterface) AdminServiceClient {
	return &adminServiceClient{cc}
}

func (c *adminServiceClient) Rebuild(ctx context.Context, in *RebuildRequest, opts ...grpc.CallOption) (*RebuildResponse, error) {
	out := new(RebuildResponse)
	err := c.cc.Invoke(ctx, AdminService_Rebuild_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) BulkSetStatus(ctx context.Context, in *BulkSetStatusRequest, opts ...grpc.CallOption) (*BulkSetStatusResponse, error) {
	out := new(BulkSetStatusResponse)
	err := c.cc.Invoke(ctx, AdminService_BulkSetStatus_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type AdminServiceServer interface {
	Rebuild(context.Context, *RebuildRequest) (*RebuildResponse, error)
	BulkSetStatus(context.Context, *BulkSetStatusRequest) (*BulkSetStatusResponse, error)
	mustEmbedUnimplementedAdminServiceServer()
}

// UnimplementedAdminServiceServer обязан встраиваться в реализации сервиса
// для прямой совместимости при расширении контракта.
type UnimplementedAdminServiceServer struct{}

func (UnimplementedAdminServiceServer) Rebuild(context.Context, *RebuildRequest) (*RebuildResponse, error) {
	return nil, errUnimplemented("Rebuild")
}

func (UnimplementedAdminServiceServer) BulkSetStatus(context.Context, *BulkSetStatusRequest) (*BulkSetStatusResponse, error) {
	return nil, errUnimplemented("BulkSetStatus")
}

func (UnimplementedAdminServiceServer) mustEmbedUnimplementedAdminServiceServer() {}

func RegisterAdminServiceServer(s grpc.ServiceRegistrar, srv AdminServiceServer) {
	s.RegisterService(&AdminService_ServiceDesc, srv)
}

func _AdminService_Rebuild_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RebuildRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).Rebuild(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_Rebuild_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).Rebuild(ctx, req.(*RebuildRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_BulkSetStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BulkSetStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).BulkSetStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_BulkSetStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).BulkSetStatus(ctx, req.(*BulkSetStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var AdminService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "automarket.v1.AdminService",
	HandlerType: (*AdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Rebuild",
			Handler:    _AdminService_Rebuild_Handler,
		},
		{
			MethodName: "BulkSetStatus",
			Handler:    _AdminService_BulkSetStatus_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "market.proto",
}

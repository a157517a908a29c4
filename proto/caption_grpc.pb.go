// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: caption.proto

package captionv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	CaptionService_GenerateCaption_FullMethodName = "/caption.v1.CaptionService/GenerateCaption"
)

// CaptionServiceClient is the client API for CaptionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CaptionService is implemented by the Python captioning sidecar.
type CaptionServiceClient interface {
	GenerateCaption(ctx context.Context, in *CaptionRequest, opts ...grpc.CallOption) (*CaptionResponse, error)
}

type captionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCaptionServiceClient(cc grpc.ClientConnInterface) CaptionServiceClient {
	return &captionServiceClient{cc}
}

func (c *captionServiceClient) GenerateCaption(ctx context.Context, in *CaptionRequest, opts ...grpc.CallOption) (*CaptionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CaptionResponse)
	err := c.cc.Invoke(ctx, CaptionService_GenerateCaption_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CaptionServiceServer is the server API for CaptionService service.
// All implementations must embed UnimplementedCaptionServiceServer
// for forward compatibility.
//
// CaptionService is implemented by the Python captioning sidecar.
type CaptionServiceServer interface {
	GenerateCaption(context.Context, *CaptionRequest) (*CaptionResponse, error)
	mustEmbedUnimplementedCaptionServiceServer()
}

// UnimplementedCaptionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCaptionServiceServer struct{}

func (UnimplementedCaptionServiceServer) GenerateCaption(context.Context, *CaptionRequest) (*CaptionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateCaption not implemented")
}
func (UnimplementedCaptionServiceServer) mustEmbedUnimplementedCaptionServiceServer() {}
func (UnimplementedCaptionServiceServer) testEmbeddedByValue()                        {}

// UnsafeCaptionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CaptionServiceServer will
// result in compilation errors.
type UnsafeCaptionServiceServer interface {
	mustEmbedUnimplementedCaptionServiceServer()
}

func RegisterCaptionServiceServer(s grpc.ServiceRegistrar, srv CaptionServiceServer) {
	// If the following call panics, it indicates UnimplementedCaptionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CaptionService_ServiceDesc, srv)
}

func _CaptionService_GenerateCaption_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CaptionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaptionServiceServer).GenerateCaption(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaptionService_GenerateCaption_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaptionServiceServer).GenerateCaption(ctx, req.(*CaptionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CaptionService_ServiceDesc is the grpc.ServiceDesc for CaptionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CaptionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "caption.v1.CaptionService",
	HandlerType: (*CaptionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateCaption",
			Handler:    _CaptionService_GenerateCaption_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "caption.proto",
}

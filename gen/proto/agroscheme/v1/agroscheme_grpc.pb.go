// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: agroscheme/v1/agroscheme.proto

package agroschemepb

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
	FarmersService_CreateFarmer_FullMethodName         = "/agroscheme.v1.FarmersService/CreateFarmer"
	FarmersService_GetFarmer_FullMethodName            = "/agroscheme.v1.FarmersService/GetFarmer"
	FarmersService_ListFarmers_FullMethodName          = "/agroscheme.v1.FarmersService/ListFarmers"
	FarmersService_SetAutoApply_FullMethodName         = "/agroscheme.v1.FarmersService/SetAutoApply"
	FarmersService_ListNotifications_FullMethodName    = "/agroscheme.v1.FarmersService/ListNotifications"
	FarmersService_MarkNotificationRead_FullMethodName = "/agroscheme.v1.FarmersService/MarkNotificationRead"
)

// FarmersServiceClient is the client API for FarmersService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type FarmersServiceClient interface {
	CreateFarmer(ctx context.Context, in *CreateFarmerRequest, opts ...grpc.CallOption) (*CreateFarmerResponse, error)
	GetFarmer(ctx context.Context, in *GetFarmerRequest, opts ...grpc.CallOption) (*GetFarmerResponse, error)
	ListFarmers(ctx context.Context, in *ListFarmersRequest, opts ...grpc.CallOption) (*ListFarmersResponse, error)
	SetAutoApply(ctx context.Context, in *SetAutoApplyRequest, opts ...grpc.CallOption) (*SetAutoApplyResponse, error)
	ListNotifications(ctx context.Context, in *ListNotificationsRequest, opts ...grpc.CallOption) (*ListNotificationsResponse, error)
	MarkNotificationRead(ctx context.Context, in *MarkNotificationReadRequest, opts ...grpc.CallOption) (*MarkNotificationReadResponse, error)
}

type farmersServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFarmersServiceClient(cc grpc.ClientConnInterface) FarmersServiceClient {
	return &farmersServiceClient{cc}
}

func (c *farmersServiceClient) CreateFarmer(ctx context.Context, in *CreateFarmerRequest, opts ...grpc.CallOption) (*CreateFarmerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateFarmerResponse)
	err := c.cc.Invoke(ctx, FarmersService_CreateFarmer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *farmersServiceClient) GetFarmer(ctx context.Context, in *GetFarmerRequest, opts ...grpc.CallOption) (*GetFarmerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetFarmerResponse)
	err := c.cc.Invoke(ctx, FarmersService_GetFarmer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *farmersServiceClient) ListFarmers(ctx context.Context, in *ListFarmersRequest, opts ...grpc.CallOption) (*ListFarmersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListFarmersResponse)
	err := c.cc.Invoke(ctx, FarmersService_ListFarmers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *farmersServiceClient) SetAutoApply(ctx context.Context, in *SetAutoApplyRequest, opts ...grpc.CallOption) (*SetAutoApplyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetAutoApplyResponse)
	err := c.cc.Invoke(ctx, FarmersService_SetAutoApply_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *farmersServiceClient) ListNotifications(ctx context.Context, in *ListNotificationsRequest, opts ...grpc.CallOption) (*ListNotificationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListNotificationsResponse)
	err := c.cc.Invoke(ctx, FarmersService_ListNotifications_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *farmersServiceClient) MarkNotificationRead(ctx context.Context, in *MarkNotificationReadRequest, opts ...grpc.CallOption) (*MarkNotificationReadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MarkNotificationReadResponse)
	err := c.cc.Invoke(ctx, FarmersService_MarkNotificationRead_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FarmersServiceServer is the server API for FarmersService service.
// All implementations must embed UnimplementedFarmersServiceServer
// for forward compatibility.
type FarmersServiceServer interface {
	CreateFarmer(context.Context, *CreateFarmerRequest) (*CreateFarmerResponse, error)
	GetFarmer(context.Context, *GetFarmerRequest) (*GetFarmerResponse, error)
	ListFarmers(context.Context, *ListFarmersRequest) (*ListFarmersResponse, error)
	SetAutoApply(context.Context, *SetAutoApplyRequest) (*SetAutoApplyResponse, error)
	ListNotifications(context.Context, *ListNotificationsRequest) (*ListNotificationsResponse, error)
	MarkNotificationRead(context.Context, *MarkNotificationReadRequest) (*MarkNotificationReadResponse, error)
	mustEmbedUnimplementedFarmersServiceServer()
}

// UnimplementedFarmersServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedFarmersServiceServer struct{}

func (UnimplementedFarmersServiceServer) CreateFarmer(context.Context, *CreateFarmerRequest) (*CreateFarmerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateFarmer not implemented")
}
func (UnimplementedFarmersServiceServer) GetFarmer(context.Context, *GetFarmerRequest) (*GetFarmerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFarmer not implemented")
}
func (UnimplementedFarmersServiceServer) ListFarmers(context.Context, *ListFarmersRequest) (*ListFarmersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListFarmers not implemented")
}
func (UnimplementedFarmersServiceServer) SetAutoApply(context.Context, *SetAutoApplyRequest) (*SetAutoApplyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetAutoApply not implemented")
}
func (UnimplementedFarmersServiceServer) ListNotifications(context.Context, *ListNotificationsRequest) (*ListNotificationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListNotifications not implemented")
}
func (UnimplementedFarmersServiceServer) MarkNotificationRead(context.Context, *MarkNotificationReadRequest) (*MarkNotificationReadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MarkNotificationRead not implemented")
}
func (UnimplementedFarmersServiceServer) mustEmbedUnimplementedFarmersServiceServer() {}
func (UnimplementedFarmersServiceServer) testEmbeddedByValue()                        {}

// UnsafeFarmersServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to FarmersServiceServer will
// result in compilation errors.
type UnsafeFarmersServiceServer interface {
	mustEmbedUnimplementedFarmersServiceServer()
}

func RegisterFarmersServiceServer(s grpc.ServiceRegistrar, srv FarmersServiceServer) {
	// If the following call pancis, it indicates UnimplementedFarmersServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&FarmersService_ServiceDesc, srv)
}

func _FarmersService_CreateFarmer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateFarmerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FarmersServiceServer).CreateFarmer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FarmersService_CreateFarmer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FarmersServiceServer).CreateFarmer(ctx, req.(*CreateFarmerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FarmersService_GetFarmer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFarmerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FarmersServiceServer).GetFarmer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FarmersService_GetFarmer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FarmersServiceServer).GetFarmer(ctx, req.(*GetFarmerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FarmersService_ListFarmers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListFarmersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FarmersServiceServer).ListFarmers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FarmersService_ListFarmers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FarmersServiceServer).ListFarmers(ctx, req.(*ListFarmersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FarmersService_SetAutoApply_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetAutoApplyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FarmersServiceServer).SetAutoApply(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FarmersService_SetAutoApply_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FarmersServiceServer).SetAutoApply(ctx, req.(*SetAutoApplyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FarmersService_ListNotifications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListNotificationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FarmersServiceServer).ListNotifications(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FarmersService_ListNotifications_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FarmersServiceServer).ListNotifications(ctx, req.(*ListNotificationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FarmersService_MarkNotificationRead_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MarkNotificationReadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FarmersServiceServer).MarkNotificationRead(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FarmersService_MarkNotificationRead_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FarmersServiceServer).MarkNotificationRead(ctx, req.(*MarkNotificationReadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FarmersService_ServiceDesc is the grpc.ServiceDesc for FarmersService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var FarmersService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "agroscheme.v1.FarmersService",
	HandlerType: (*FarmersServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateFarmer",
			Handler:    _FarmersService_CreateFarmer_Handler,
		},
		{
			MethodName: "GetFarmer",
			Handler:    _FarmersService_GetFarmer_Handler,
		},
		{
			MethodName: "ListFarmers",
			Handler:    _FarmersService_ListFarmers_Handler,
		},
		{
			MethodName: "SetAutoApply",
			Handler:    _FarmersService_SetAutoApply_Handler,
		},
		{
			MethodName: "ListNotifications",
			Handler:    _FarmersService_ListNotifications_Handler,
		},
		{
			MethodName: "MarkNotificationRead",
			Handler:    _FarmersService_MarkNotificationRead_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "agroscheme/v1/agroscheme.proto",
}

const (
	SchemesService_CreateScheme_FullMethodName    = "/agroscheme.v1.SchemesService/CreateScheme"
	SchemesService_GetScheme_FullMethodName       = "/agroscheme.v1.SchemesService/GetScheme"
	SchemesService_ListSchemes_FullMethodName     = "/agroscheme.v1.SchemesService/ListSchemes"
	SchemesService_SetSchemeActive_FullMethodName = "/agroscheme.v1.SchemesService/SetSchemeActive"
)

// SchemesServiceClient is the client API for SchemesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type SchemesServiceClient interface {
	CreateScheme(ctx context.Context, in *CreateSchemeRequest, opts ...grpc.CallOption) (*CreateSchemeResponse, error)
	GetScheme(ctx context.Context, in *GetSchemeRequest, opts ...grpc.CallOption) (*GetSchemeResponse, error)
	ListSchemes(ctx context.Context, in *ListSchemesRequest, opts ...grpc.CallOption) (*ListSchemesResponse, error)
	SetSchemeActive(ctx context.Context, in *SetSchemeActiveRequest, opts ...grpc.CallOption) (*SetSchemeActiveResponse, error)
}

type schemesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSchemesServiceClient(cc grpc.ClientConnInterface) SchemesServiceClient {
	return &schemesServiceClient{cc}
}

func (c *schemesServiceClient) CreateScheme(ctx context.Context, in *CreateSchemeRequest, opts ...grpc.CallOption) (*CreateSchemeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateSchemeResponse)
	err := c.cc.Invoke(ctx, SchemesService_CreateScheme_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schemesServiceClient) GetScheme(ctx context.Context, in *GetSchemeRequest, opts ...grpc.CallOption) (*GetSchemeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetSchemeResponse)
	err := c.cc.Invoke(ctx, SchemesService_GetScheme_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schemesServiceClient) ListSchemes(ctx context.Context, in *ListSchemesRequest, opts ...grpc.CallOption) (*ListSchemesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSchemesResponse)
	err := c.cc.Invoke(ctx, SchemesService_ListSchemes_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schemesServiceClient) SetSchemeActive(ctx context.Context, in *SetSchemeActiveRequest, opts ...grpc.CallOption) (*SetSchemeActiveResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetSchemeActiveResponse)
	err := c.cc.Invoke(ctx, SchemesService_SetSchemeActive_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SchemesServiceServer is the server API for SchemesService service.
// All implementations must embed UnimplementedSchemesServiceServer
// for forward compatibility.
type SchemesServiceServer interface {
	CreateScheme(context.Context, *CreateSchemeRequest) (*CreateSchemeResponse, error)
	GetScheme(context.Context, *GetSchemeRequest) (*GetSchemeResponse, error)
	ListSchemes(context.Context, *ListSchemesRequest) (*ListSchemesResponse, error)
	SetSchemeActive(context.Context, *SetSchemeActiveRequest) (*SetSchemeActiveResponse, error)
	mustEmbedUnimplementedSchemesServiceServer()
}

// UnimplementedSchemesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSchemesServiceServer struct{}

func (UnimplementedSchemesServiceServer) CreateScheme(context.Context, *CreateSchemeRequest) (*CreateSchemeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateScheme not implemented")
}
func (UnimplementedSchemesServiceServer) GetScheme(context.Context, *GetSchemeRequest) (*GetSchemeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetScheme not implemented")
}
func (UnimplementedSchemesServiceServer) ListSchemes(context.Context, *ListSchemesRequest) (*ListSchemesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSchemes not implemented")
}
func (UnimplementedSchemesServiceServer) SetSchemeActive(context.Context, *SetSchemeActiveRequest) (*SetSchemeActiveResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetSchemeActive not implemented")
}
func (UnimplementedSchemesServiceServer) mustEmbedUnimplementedSchemesServiceServer() {}
func (UnimplementedSchemesServiceServer) testEmbeddedByValue()                        {}

// UnsafeSchemesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SchemesServiceServer will
// result in compilation errors.
type UnsafeSchemesServiceServer interface {
	mustEmbedUnimplementedSchemesServiceServer()
}

func RegisterSchemesServiceServer(s grpc.ServiceRegistrar, srv SchemesServiceServer) {
	// If the following call pancis, it indicates UnimplementedSchemesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SchemesService_ServiceDesc, srv)
}

func _SchemesService_CreateScheme_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateSchemeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchemesServiceServer).CreateScheme(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SchemesService_CreateScheme_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchemesServiceServer).CreateScheme(ctx, req.(*CreateSchemeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SchemesService_GetScheme_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSchemeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchemesServiceServer).GetScheme(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SchemesService_GetScheme_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchemesServiceServer).GetScheme(ctx, req.(*GetSchemeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SchemesService_ListSchemes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSchemesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchemesServiceServer).ListSchemes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SchemesService_ListSchemes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchemesServiceServer).ListSchemes(ctx, req.(*ListSchemesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SchemesService_SetSchemeActive_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetSchemeActiveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchemesServiceServer).SetSchemeActive(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SchemesService_SetSchemeActive_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchemesServiceServer).SetSchemeActive(ctx, req.(*SetSchemeActiveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SchemesService_ServiceDesc is the grpc.ServiceDesc for SchemesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SchemesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "agroscheme.v1.SchemesService",
	HandlerType: (*SchemesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateScheme",
			Handler:    _SchemesService_CreateScheme_Handler,
		},
		{
			MethodName: "GetScheme",
			Handler:    _SchemesService_GetScheme_Handler,
		},
		{
			MethodName: "ListSchemes",
			Handler:    _SchemesService_ListSchemes_Handler,
		},
		{
			MethodName: "SetSchemeActive",
			Handler:    _SchemesService_SetSchemeActive_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "agroscheme/v1/agroscheme.proto",
}

const (
	DocumentsService_SubmitDocument_FullMethodName = "/agroscheme.v1.DocumentsService/SubmitDocument"
	DocumentsService_ListDocuments_FullMethodName  = "/agroscheme.v1.DocumentsService/ListDocuments"
)

// DocumentsServiceClient is the client API for DocumentsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type DocumentsServiceClient interface {
	SubmitDocument(ctx context.Context, in *SubmitDocumentRequest, opts ...grpc.CallOption) (*SubmitDocumentResponse, error)
	ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error)
}

type documentsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDocumentsServiceClient(cc grpc.ClientConnInterface) DocumentsServiceClient {
	return &documentsServiceClient{cc}
}

func (c *documentsServiceClient) SubmitDocument(ctx context.Context, in *SubmitDocumentRequest, opts ...grpc.CallOption) (*SubmitDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_SubmitDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDocumentsResponse)
	err := c.cc.Invoke(ctx, DocumentsService_ListDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DocumentsServiceServer is the server API for DocumentsService service.
// All implementations must embed UnimplementedDocumentsServiceServer
// for forward compatibility.
type DocumentsServiceServer interface {
	SubmitDocument(context.Context, *SubmitDocumentRequest) (*SubmitDocumentResponse, error)
	ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error)
	mustEmbedUnimplementedDocumentsServiceServer()
}

// UnimplementedDocumentsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDocumentsServiceServer struct{}

func (UnimplementedDocumentsServiceServer) SubmitDocument(context.Context, *SubmitDocumentRequest) (*SubmitDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDocuments not implemented")
}
func (UnimplementedDocumentsServiceServer) mustEmbedUnimplementedDocumentsServiceServer() {}
func (UnimplementedDocumentsServiceServer) testEmbeddedByValue()                          {}

// UnsafeDocumentsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DocumentsServiceServer will
// result in compilation errors.
type UnsafeDocumentsServiceServer interface {
	mustEmbedUnimplementedDocumentsServiceServer()
}

func RegisterDocumentsServiceServer(s grpc.ServiceRegistrar, srv DocumentsServiceServer) {
	// If the following call pancis, it indicates UnimplementedDocumentsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DocumentsService_ServiceDesc, srv)
}

func _DocumentsService_SubmitDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).SubmitDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_SubmitDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).SubmitDocument(ctx, req.(*SubmitDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_ListDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).ListDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_ListDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).ListDocuments(ctx, req.(*ListDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DocumentsService_ServiceDesc is the grpc.ServiceDesc for DocumentsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DocumentsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "agroscheme.v1.DocumentsService",
	HandlerType: (*DocumentsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitDocument",
			Handler:    _DocumentsService_SubmitDocument_Handler,
		},
		{
			MethodName: "ListDocuments",
			Handler:    _DocumentsService_ListDocuments_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "agroscheme/v1/agroscheme.proto",
}

const (
	ApplicationsService_EvaluateEligibility_FullMethodName     = "/agroscheme.v1.ApplicationsService/EvaluateEligibility"
	ApplicationsService_ManualApply_FullMethodName             = "/agroscheme.v1.ApplicationsService/ManualApply"
	ApplicationsService_SweepScheme_FullMethodName             = "/agroscheme.v1.ApplicationsService/SweepScheme"
	ApplicationsService_UpdateApplicationStatus_FullMethodName = "/agroscheme.v1.ApplicationsService/UpdateApplicationStatus"
	ApplicationsService_ListApplications_FullMethodName        = "/agroscheme.v1.ApplicationsService/ListApplications"
	ApplicationsService_ExportApplications_FullMethodName      = "/agroscheme.v1.ApplicationsService/ExportApplications"
)

// ApplicationsServiceClient is the client API for ApplicationsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ApplicationsServiceClient interface {
	EvaluateEligibility(ctx context.Context, in *EvaluateEligibilityRequest, opts ...grpc.CallOption) (*EvaluateEligibilityResponse, error)
	ManualApply(ctx context.Context, in *ManualApplyRequest, opts ...grpc.CallOption) (*ManualApplyResponse, error)
	SweepScheme(ctx context.Context, in *SweepSchemeRequest, opts ...grpc.CallOption) (*SweepSchemeResponse, error)
	UpdateApplicationStatus(ctx context.Context, in *UpdateApplicationStatusRequest, opts ...grpc.CallOption) (*UpdateApplicationStatusResponse, error)
	ListApplications(ctx context.Context, in *ListApplicationsRequest, opts ...grpc.CallOption) (*ListApplicationsResponse, error)
	ExportApplications(ctx context.Context, in *ExportApplicationsRequest, opts ...grpc.CallOption) (*ExportApplicationsResponse, error)
}

type applicationsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewApplicationsServiceClient(cc grpc.ClientConnInterface) ApplicationsServiceClient {
	return &applicationsServiceClient{cc}
}

func (c *applicationsServiceClient) EvaluateEligibility(ctx context.Context, in *EvaluateEligibilityRequest, opts ...grpc.CallOption) (*EvaluateEligibilityResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EvaluateEligibilityResponse)
	err := c.cc.Invoke(ctx, ApplicationsService_EvaluateEligibility_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *applicationsServiceClient) ManualApply(ctx context.Context, in *ManualApplyRequest, opts ...grpc.CallOption) (*ManualApplyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ManualApplyResponse)
	err := c.cc.Invoke(ctx, ApplicationsService_ManualApply_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *applicationsServiceClient) SweepScheme(ctx context.Context, in *SweepSchemeRequest, opts ...grpc.CallOption) (*SweepSchemeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SweepSchemeResponse)
	err := c.cc.Invoke(ctx, ApplicationsService_SweepScheme_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *applicationsServiceClient) UpdateApplicationStatus(ctx context.Context, in *UpdateApplicationStatusRequest, opts ...grpc.CallOption) (*UpdateApplicationStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateApplicationStatusResponse)
	err := c.cc.Invoke(ctx, ApplicationsService_UpdateApplicationStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *applicationsServiceClient) ListApplications(ctx context.Context, in *ListApplicationsRequest, opts ...grpc.CallOption) (*ListApplicationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListApplicationsResponse)
	err := c.cc.Invoke(ctx, ApplicationsService_ListApplications_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *applicationsServiceClient) ExportApplications(ctx context.Context, in *ExportApplicationsRequest, opts ...grpc.CallOption) (*ExportApplicationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportApplicationsResponse)
	err := c.cc.Invoke(ctx, ApplicationsService_ExportApplications_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApplicationsServiceServer is the server API for ApplicationsService service.
// All implementations must embed UnimplementedApplicationsServiceServer
// for forward compatibility.
type ApplicationsServiceServer interface {
	EvaluateEligibility(context.Context, *EvaluateEligibilityRequest) (*EvaluateEligibilityResponse, error)
	ManualApply(context.Context, *ManualApplyRequest) (*ManualApplyResponse, error)
	SweepScheme(context.Context, *SweepSchemeRequest) (*SweepSchemeResponse, error)
	UpdateApplicationStatus(context.Context, *UpdateApplicationStatusRequest) (*UpdateApplicationStatusResponse, error)
	ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error)
	ExportApplications(context.Context, *ExportApplicationsRequest) (*ExportApplicationsResponse, error)
	mustEmbedUnimplementedApplicationsServiceServer()
}

// UnimplementedApplicationsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedApplicationsServiceServer struct{}

func (UnimplementedApplicationsServiceServer) EvaluateEligibility(context.Context, *EvaluateEligibilityRequest) (*EvaluateEligibilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EvaluateEligibility not implemented")
}
func (UnimplementedApplicationsServiceServer) ManualApply(context.Context, *ManualApplyRequest) (*ManualApplyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ManualApply not implemented")
}
func (UnimplementedApplicationsServiceServer) SweepScheme(context.Context, *SweepSchemeRequest) (*SweepSchemeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SweepScheme not implemented")
}
func (UnimplementedApplicationsServiceServer) UpdateApplicationStatus(context.Context, *UpdateApplicationStatusRequest) (*UpdateApplicationStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateApplicationStatus not implemented")
}
func (UnimplementedApplicationsServiceServer) ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListApplications not implemented")
}
func (UnimplementedApplicationsServiceServer) ExportApplications(context.Context, *ExportApplicationsRequest) (*ExportApplicationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportApplications not implemented")
}
func (UnimplementedApplicationsServiceServer) mustEmbedUnimplementedApplicationsServiceServer() {}
func (UnimplementedApplicationsServiceServer) testEmbeddedByValue()                             {}

// UnsafeApplicationsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ApplicationsServiceServer will
// result in compilation errors.
type UnsafeApplicationsServiceServer interface {
	mustEmbedUnimplementedApplicationsServiceServer()
}

func RegisterApplicationsServiceServer(s grpc.ServiceRegistrar, srv ApplicationsServiceServer) {
	// If the following call pancis, it indicates UnimplementedApplicationsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ApplicationsService_ServiceDesc, srv)
}

func _ApplicationsService_EvaluateEligibility_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateEligibilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApplicationsServiceServer).EvaluateEligibility(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ApplicationsService_EvaluateEligibility_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApplicationsServiceServer).EvaluateEligibility(ctx, req.(*EvaluateEligibilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ApplicationsService_ManualApply_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ManualApplyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApplicationsServiceServer).ManualApply(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ApplicationsService_ManualApply_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApplicationsServiceServer).ManualApply(ctx, req.(*ManualApplyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ApplicationsService_SweepScheme_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SweepSchemeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApplicationsServiceServer).SweepScheme(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ApplicationsService_SweepScheme_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApplicationsServiceServer).SweepScheme(ctx, req.(*SweepSchemeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ApplicationsService_UpdateApplicationStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateApplicationStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApplicationsServiceServer).UpdateApplicationStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ApplicationsService_UpdateApplicationStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApplicationsServiceServer).UpdateApplicationStatus(ctx, req.(*UpdateApplicationStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ApplicationsService_ListApplications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListApplicationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApplicationsServiceServer).ListApplications(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ApplicationsService_ListApplications_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApplicationsServiceServer).ListApplications(ctx, req.(*ListApplicationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ApplicationsService_ExportApplications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportApplicationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApplicationsServiceServer).ExportApplications(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ApplicationsService_ExportApplications_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApplicationsServiceServer).ExportApplications(ctx, req.(*ExportApplicationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ApplicationsService_ServiceDesc is the grpc.ServiceDesc for ApplicationsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ApplicationsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "agroscheme.v1.ApplicationsService",
	HandlerType: (*ApplicationsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "EvaluateEligibility",
			Handler:    _ApplicationsService_EvaluateEligibility_Handler,
		},
		{
			MethodName: "ManualApply",
			Handler:    _ApplicationsService_ManualApply_Handler,
		},
		{
			MethodName: "SweepScheme",
			Handler:    _ApplicationsService_SweepScheme_Handler,
		},
		{
			MethodName: "UpdateApplicationStatus",
			Handler:    _ApplicationsService_UpdateApplicationStatus_Handler,
		},
		{
			MethodName: "ListApplications",
			Handler:    _ApplicationsService_ListApplications_Handler,
		},
		{
			MethodName: "ExportApplications",
			Handler:    _ApplicationsService_ExportApplications_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "agroscheme/v1/agroscheme.proto",
}

package grpcapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service names.
const (
	UserServiceName    = "servico.v1.UserService"
	ServiceServiceName = "servico.v1.ServiceService"
)

// Full method names, as seen by interceptors.
const (
	MethodGetAllUsers    = "/" + UserServiceName + "/GetAllUsers"
	MethodGetUserByID    = "/" + UserServiceName + "/GetUserById"
	MethodCreateUser     = "/" + UserServiceName + "/CreateUser"
	MethodGetAllServices = "/" + ServiceServiceName + "/GetAllServices"
	MethodGetServiceByID = "/" + ServiceServiceName + "/GetServiceById"
	MethodCreateService  = "/" + ServiceServiceName + "/CreateService"
)

// UserServer is the server API for servico.v1.UserService.
type UserServer interface {
	GetAllUsers(context.Context, *Empty) (*UserList, error)
	GetUserById(context.Context, *IDRequest) (*User, error)
	CreateUser(context.Context, *CreateUserRequest) (*CreateUserResponse, error)
}

// ServiceServer is the server API for servico.v1.ServiceService.
type ServiceServer interface {
	GetAllServices(context.Context, *Empty) (*ServiceList, error)
	GetServiceById(context.Context, *IDRequest) (*Service, error)
	CreateService(context.Context, *CreateServiceRequest) (*CreateServiceResponse, error)
}

// unary adapts a typed server method to a grpc.MethodHandler.
func unary[S, Req, Resp any](
	fullMethod string,
	call func(S, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			// Undecodable payloads are client faults, not server ones.
			return nil, status.Error(codes.InvalidArgument, "invalid request: "+status.Convert(err).Message())
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		})
	}
}

// UserServiceDesc describes servico.v1.UserService.
var UserServiceDesc = grpc.ServiceDesc{
	ServiceName: UserServiceName,
	HandlerType: (*UserServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetAllUsers", Handler: unary(MethodGetAllUsers, UserServer.GetAllUsers)},
		{MethodName: "GetUserById", Handler: unary(MethodGetUserByID, UserServer.GetUserById)},
		{MethodName: "CreateUser", Handler: unary(MethodCreateUser, UserServer.CreateUser)},
	},
	Streams: []grpc.StreamDesc{},
}

// ServiceServiceDesc describes servico.v1.ServiceService.
var ServiceServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceServiceName,
	HandlerType: (*ServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetAllServices", Handler: unary(MethodGetAllServices, ServiceServer.GetAllServices)},
		{MethodName: "GetServiceById", Handler: unary(MethodGetServiceByID, ServiceServer.GetServiceById)},
		{MethodName: "CreateService", Handler: unary(MethodCreateService, ServiceServer.CreateService)},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterUserServer registers srv for servico.v1.UserService.
func RegisterUserServer(s grpc.ServiceRegistrar, srv UserServer) {
	s.RegisterService(&UserServiceDesc, srv)
}

// RegisterServiceServer registers srv for servico.v1.ServiceService.
func RegisterServiceServer(s grpc.ServiceRegistrar, srv ServiceServer) {
	s.RegisterService(&ServiceServiceDesc, srv)
}

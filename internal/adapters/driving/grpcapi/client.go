package grpcapi

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client calls both services over one connection.
type Client struct {
	conn *grpc.ClientConn
}

// NewClient creates a client for target. The connection is plaintext
// unless opts say otherwise; opts are applied after the defaults.
func NewClient(target string, opts ...grpc.DialOption) (*Client, error) {
	base := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(jsonCodec{})),
	}
	conn, err := grpc.NewClient(target, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", target, err)
	}
	return &Client{conn: conn}, nil
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// ListUsers calls GetAllUsers.
func (c *Client) ListUsers(ctx context.Context, opts ...grpc.CallOption) ([]User, error) {
	out := new(UserList)
	if err := c.conn.Invoke(ctx, MethodGetAllUsers, &Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// GetUser calls GetUserById.
func (c *Client) GetUser(ctx context.Context, id int64, opts ...grpc.CallOption) (*User, error) {
	out := new(User)
	if err := c.conn.Invoke(ctx, MethodGetUserByID, &IDRequest{ID: id}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser calls CreateUser.
func (c *Client) CreateUser(ctx context.Context, req *CreateUserRequest, opts ...grpc.CallOption) (*CreateUserResponse, error) {
	out := new(CreateUserResponse)
	if err := c.conn.Invoke(ctx, MethodCreateUser, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ListServices calls GetAllServices.
func (c *Client) ListServices(ctx context.Context, opts ...grpc.CallOption) ([]Service, error) {
	out := new(ServiceList)
	if err := c.conn.Invoke(ctx, MethodGetAllServices, &Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out.Services, nil
}

// GetService calls GetServiceById.
func (c *Client) GetService(ctx context.Context, id int64, opts ...grpc.CallOption) (*Service, error) {
	out := new(Service)
	if err := c.conn.Invoke(ctx, MethodGetServiceByID, &IDRequest{ID: id}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateService calls CreateService.
func (c *Client) CreateService(ctx context.Context, req *CreateServiceRequest, opts ...grpc.CallOption) (*CreateServiceResponse, error) {
	out := new(CreateServiceResponse)
	if err := c.conn.Invoke(ctx, MethodCreateService, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

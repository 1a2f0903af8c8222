package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/servico/internal/core/domain"
)

// uriScheme is the URI scheme of servico resources.
const uriScheme = "servico://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "users",
		Name:        "users",
		Description: "Every registered user",
		MIMEType:    "application/json",
	}, s.handleUsersResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "services",
		Name:        "services",
		Description: "Every service record with owner name and labels",
		MIMEType:    "application/json",
	}, s.handleServicesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "users/{userId}",
		Name:        "user",
		Description: "A single user",
		MIMEType:    "application/json",
	}, s.handleUserResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "services/{serviceId}",
		Name:        "service",
		Description: "A single service record",
		MIMEType:    "application/json",
	}, s.handleServiceResource)
}

func (s *Server) handleUsersResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	users, err := s.ports.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	out := make([]UserOutput, len(users))
	for i, u := range users {
		out[i] = userOutput(u)
	}
	return jsonResource(req.Params.URI, out)
}

func (s *Server) handleServicesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Services.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing services: %w", err)
	}
	out := make([]ServiceOutput, len(records))
	for i := range records {
		out[i] = serviceOutput(records[i])
	}
	return jsonResource(req.Params.URI, out)
}

func (s *Server) handleUserResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	id, ok := extractID(req.Params.URI, "users/")
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	u, err := s.ports.Users.Get(ctx, id)
	if domain.KindOf(err) == domain.KindNotFound {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return jsonResource(req.Params.URI, userOutput(u))
}

func (s *Server) handleServiceResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	id, ok := extractID(req.Params.URI, "services/")
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	v, err := s.ports.Services.Get(ctx, id)
	if domain.KindOf(err) == domain.KindNotFound {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting service: %w", err)
	}
	return jsonResource(req.Params.URI, serviceOutput(v))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractID parses the id from a URI like servico://users/{id}.
func extractID(uri, collection string) (int64, bool) {
	prefix := uriScheme + collection
	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(uri, prefix), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

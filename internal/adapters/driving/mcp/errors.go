// Package mcp exposes the user and service record operations as MCP
// (Model Context Protocol) tools and resources, so assistants can query and
// register records the same way gRPC clients do.
package mcp

import (
	"errors"

	"github.com/custodia-labs/servico/internal/core/domain"
)

// Errors returned by NewServer.
var (
	ErrMissingUserService    = errors.New("mcp: user service is required")
	ErrMissingServiceService = errors.New("mcp: service record service is required")
)

// toolError converts a domain error into the message shown to the model.
// Internal causes stay in the server log.
func toolError(err error) error {
	return errors.New(domain.MessageOf(err))
}

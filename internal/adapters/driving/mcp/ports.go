package mcp

import (
	"github.com/custodia-labs/servico/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server calls into.
type Ports struct {
	Users    driving.UserService
	Services driving.ServiceRecordService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Users == nil {
		return ErrMissingUserService
	}
	if p.Services == nil {
		return ErrMissingServiceService
	}
	return nil
}

// Package domain defines the core business entities for servico.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types and the rules that need no I/O:
//
//   - User: A registered customer, identified by a national ID (CPF)
//   - ServiceRecord: A maintenance/service job owned by a user
//   - Category, Status: Small integer codes with display labels
//   - Error: A failure carrying one of a fixed set of kinds
//
// Field validators and the national ID formatter live here as pure
// functions so every adapter applies exactly the same rules.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/shopspring/decimal (money values)
//   - Cannot Import: Any internal/ package, any other external dependency
package domain

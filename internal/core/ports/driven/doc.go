// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - UserStore: User collection persistence
//   - ServiceStore: Service record collection persistence
//
// # Optional Interfaces
//
// These can be nil - services fall back to a default:
//
//   - IDGenerator: Identifier policy. Defaults to sequential ids.
//
// UserDirectory is implemented by the user service itself so the service
// record service can check ownership without reaching into user storage.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Each service keeps its collection in memory behind its own lock. Reads
// share the lock; a create holds it exclusively from the uniqueness check
// through the store write, so ids and writes never interleave. The service
// record service reads users through UserDirectory while holding its own
// lock; the user service never calls back, so the lock order is fixed.
package services

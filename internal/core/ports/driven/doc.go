// Package driven defines interfaces that core services use to reach
// infrastructure. These are the "driven" ports in hexagonal architecture
// terminology - the application drives them.
//
// Implementations live in internal/adapters/driven.
package driven

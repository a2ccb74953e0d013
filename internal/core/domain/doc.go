// Package domain defines the core business entities for Seva.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ServiceRecord: One government service link in the catalogue
//   - State: A recognised Indian state or union territory
//   - Category: A label grouping services by purpose
//   - Selection: The optional state and category a user is browsing
//   - Helpline: A national quick-dial number
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

// Package static provides the compiled-in service catalogue.
//
// The catalogue is a literal table: there is no fetching, caching or
// persistence. Record IDs are name-based UUIDs so they stay stable across
// releases as long as a record's state and name do not change.
package static

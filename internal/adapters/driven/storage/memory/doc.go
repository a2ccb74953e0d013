// Package memory provides in-memory implementations of driven ports.
// They are used by tests and by commands that must not touch disk.
package memory

package driven

import "github.com/custodia-labs/seva-cli/internal/core/domain"

// CatalogSource supplies the fixed service catalogue.
// Implementations must return the same data on every call and must
// return slices the caller is free to modify.
type CatalogSource interface {
	// Services returns every record in insertion order.
	Services() []domain.ServiceRecord

	// States returns the recognised states offered to users.
	// This list is configured independently of the records.
	States() []domain.State

	// Helplines returns the national quick-dial numbers.
	Helplines() []domain.Helpline
}

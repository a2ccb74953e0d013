package driving

import (
	"context"

	"github.com/custodia-labs/seva-cli/internal/core/domain"
)

// CatalogService provides read access to the service catalogue.
type CatalogService interface {
	// List returns every record in catalogue order.
	List(ctx context.Context) []domain.ServiceRecord

	// Filter returns the records matching the selection, in catalogue order.
	// An empty result is not an error.
	Filter(ctx context.Context, sel domain.Selection) []domain.ServiceRecord

	// FilterByName parses state and category names before filtering.
	// Empty names apply no filter; unrecognised names return
	// domain.ErrUnknownState or domain.ErrUnknownCategory.
	FilterByName(ctx context.Context, state, category string) ([]domain.ServiceRecord, error)

	// Search filters by selection, then keeps records whose name or
	// description contains query, ignoring case.
	Search(ctx context.Context, query string, sel domain.Selection) []domain.ServiceRecord

	// Get returns the record with the given ID.
	Get(ctx context.Context, id string) (*domain.ServiceRecord, error)

	// States returns the recognised states.
	States(ctx context.Context) []domain.State

	// Categories returns all categories in display order.
	Categories(ctx context.Context) []domain.Category

	// Helplines returns the national quick-dial numbers.
	Helplines(ctx context.Context) []domain.Helpline
}

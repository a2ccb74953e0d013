package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/seva-cli/internal/core/domain"
	"github.com/custodia-labs/seva-cli/internal/core/ports/driven"
	"github.com/custodia-labs/seva-cli/internal/core/ports/driving"
	"github.com/custodia-labs/seva-cli/internal/logger"
)

// minIDPrefix is the shortest ID prefix Get will resolve.
const minIDPrefix = 8

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// Filter returns the records that pass sel, preserving their relative order.
// The input is never modified and the result never aliases it.
func Filter(records []domain.ServiceRecord, sel domain.Selection) []domain.ServiceRecord {
	out := make([]domain.ServiceRecord, 0, len(records))
	for i := range records {
		if sel.Matches(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}

// CatalogService answers queries over a fixed catalogue.
// The catalogue is read once at construction and never changes, so the
// service is safe for concurrent use.
type CatalogService struct {
	records   []domain.ServiceRecord
	states    []domain.State
	helplines []domain.Helpline
}

// NewCatalogService snapshots the catalogue from source.
func NewCatalogService(source driven.CatalogSource) *CatalogService {
	s := &CatalogService{
		records:   source.Services(),
		states:    source.States(),
		helplines: source.Helplines(),
	}
	logger.Debug("catalogue loaded: %d services, %d states", len(s.records), len(s.states))
	return s
}

// List returns every record in catalogue order.
func (s *CatalogService) List(_ context.Context) []domain.ServiceRecord {
	out := make([]domain.ServiceRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Filter returns the records matching sel.
func (s *CatalogService) Filter(_ context.Context, sel domain.Selection) []domain.ServiceRecord {
	results := Filter(s.records, sel)
	logger.Debug("filter state=%q category=%q: %d of %d", sel.State, sel.Category, len(results), len(s.records))
	return results
}

// FilterByName parses the names and filters.
func (s *CatalogService) FilterByName(ctx context.Context, state, category string) ([]domain.ServiceRecord, error) {
	sel, err := domain.ParseSelection(state, category)
	if err != nil {
		return nil, err
	}
	return s.Filter(ctx, sel), nil
}

// Search filters by sel, then matches query against name and description.
func (s *CatalogService) Search(ctx context.Context, query string, sel domain.Selection) []domain.ServiceRecord {
	filtered := s.Filter(ctx, sel)

	needle := s.fold(strings.TrimSpace(query))
	if needle == "" {
		return filtered
	}

	out := filtered[:0]
	for i := range filtered {
		if strings.Contains(s.fold(filtered[i].Name), needle) ||
			strings.Contains(s.fold(filtered[i].Description), needle) {
			out = append(out, filtered[i])
		}
	}
	logger.Debug("search %q: %d matches", query, len(out))
	return out
}

// Get returns the record with the given ID. A unique prefix of at least
// minIDPrefix characters is also accepted.
func (s *CatalogService) Get(_ context.Context, id string) (*domain.ServiceRecord, error) {
	var match *domain.ServiceRecord
	for i := range s.records {
		rec := s.records[i]
		if rec.ID == id {
			return &rec, nil
		}
		if len(id) >= minIDPrefix && strings.HasPrefix(rec.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("service id prefix %q is ambiguous: %w", id, domain.ErrInvalidInput)
			}
			match = &rec
		}
	}
	if match == nil {
		return nil, fmt.Errorf("service %q: %w", id, domain.ErrNotFound)
	}
	return match, nil
}

// States returns the recognised states.
func (s *CatalogService) States(_ context.Context) []domain.State {
	out := make([]domain.State, len(s.states))
	copy(out, s.states)
	return out
}

// Categories returns all categories in display order.
func (s *CatalogService) Categories(_ context.Context) []domain.Category {
	return domain.AllCategories()
}

// Helplines returns the national quick-dial numbers.
func (s *CatalogService) Helplines(_ context.Context) []domain.Helpline {
	out := make([]domain.Helpline, len(s.helplines))
	copy(out, s.helplines)
	return out
}

// fold normalises text for case-insensitive matching.
// Casers are stateful, so each call gets its own.
func (s *CatalogService) fold(text string) string {
	return cases.Fold().String(norm.NFC.String(text))
}

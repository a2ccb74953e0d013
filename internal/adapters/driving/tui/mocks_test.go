package tui

import (
	"context"
	"strings"

	"github.com/custodia-labs/seva-cli/internal/core/domain"
	"github.com/custodia-labs/seva-cli/internal/core/ports/driving"
)

var _ driving.CatalogService = (*mockCatalog)(nil)

type mockCatalog struct {
	records []domain.ServiceRecord
	states  []domain.State
}

func newMockCatalog() *mockCatalog {
	return &mockCatalog{
		records: []domain.ServiceRecord{
			{ID: "a1", Name: "Aaple Sarkar", Category: domain.CategoryDocuments, State: domain.StateMaharashtra,
				URL: "https://aaplesarkar.mahaonline.gov.in/", Description: "Certificates and services."},
			{ID: "b2", Name: "Sakala", Category: domain.CategoryDocuments, State: domain.StateKarnataka,
				URL: "https://sakala.kar.nic.in/", Description: "Guaranteed service delivery."},
			{ID: "c3", Name: "Delhi Emergency", Category: domain.CategoryEmergency, State: domain.StateDelhi,
				URL: "https://delhi.gov.in/"},
		},
		states: []domain.State{domain.StateMaharashtra, domain.StateKarnataka, domain.StateDelhi},
	}
}

func (m *mockCatalog) List(_ context.Context) []domain.ServiceRecord {
	return append([]domain.ServiceRecord(nil), m.records...)
}

func (m *mockCatalog) Filter(_ context.Context, sel domain.Selection) []domain.ServiceRecord {
	out := []domain.ServiceRecord{}
	for i := range m.records {
		if sel.Matches(&m.records[i]) {
			out = append(out, m.records[i])
		}
	}
	return out
}

func (m *mockCatalog) FilterByName(ctx context.Context, state, category string) ([]domain.ServiceRecord, error) {
	sel, err := domain.ParseSelection(state, category)
	if err != nil {
		return nil, err
	}
	return m.Filter(ctx, sel), nil
}

func (m *mockCatalog) Search(ctx context.Context, query string, sel domain.Selection) []domain.ServiceRecord {
	out := []domain.ServiceRecord{}
	for _, r := range m.Filter(ctx, sel) {
		if strings.Contains(strings.ToLower(r.Name), strings.ToLower(query)) {
			out = append(out, r)
		}
	}
	return out
}

func (m *mockCatalog) Get(_ context.Context, id string) (*domain.ServiceRecord, error) {
	for i := range m.records {
		if m.records[i].ID == id {
			r := m.records[i]
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCatalog) States(_ context.Context) []domain.State {
	return m.states
}

func (m *mockCatalog) Categories(_ context.Context) []domain.Category {
	return domain.AllCategories()
}

func (m *mockCatalog) Helplines(_ context.Context) []domain.Helpline {
	return nil
}

type mockActions struct {
	opened []domain.ServiceRecord
	err    error
}

func (m *mockActions) Open(_ context.Context, record *domain.ServiceRecord) error {
	if m.err != nil {
		return m.err
	}
	m.opened = append(m.opened, *record)
	return nil
}

type mockSettings struct {
	settings domain.AppSettings
	err      error
	gets     int
}

func (m *mockSettings) Get() (*domain.AppSettings, error) {
	m.gets++
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettings) Save(settings *domain.AppSettings) error {
	m.settings = *settings
	return nil
}

func (m *mockSettings) SetDefaultState(name string) error {
	state, err := domain.ParseState(name)
	if err != nil {
		return err
	}
	m.settings.DefaultState = state
	return nil
}

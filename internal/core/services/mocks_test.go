package services

import (
	"context"

	"github.com/custodia-labs/seva-cli/internal/core/domain"
)

// fakeCatalog is a fixed driven.CatalogSource.
type fakeCatalog struct {
	records   []domain.ServiceRecord
	states    []domain.State
	helplines []domain.Helpline
}

func (f *fakeCatalog) Services() []domain.ServiceRecord {
	out := make([]domain.ServiceRecord, len(f.records))
	copy(out, f.records)
	return out
}

func (f *fakeCatalog) States() []domain.State {
	return append([]domain.State(nil), f.states...)
}

func (f *fakeCatalog) Helplines() []domain.Helpline {
	return append([]domain.Helpline(nil), f.helplines...)
}

// mockOpener records opened URLs.
type mockOpener struct {
	opened []string
	err    error
}

func (m *mockOpener) Open(_ context.Context, url string) error {
	if m.err != nil {
		return m.err
	}
	m.opened = append(m.opened, url)
	return nil
}

// scenarioRecords are A, B, C from the filtering scenario.
func scenarioRecords() []domain.ServiceRecord {
	return []domain.ServiceRecord{
		{ID: "aaaaaaaa-0001", Name: "A", Category: domain.CategoryEmergency, State: domain.StateMaharashtra, URL: "https://a.gov.in/"},
		{ID: "bbbbbbbb-0002", Name: "B", Category: domain.CategoryEmergency, State: domain.StateKarnataka, URL: "https://b.gov.in/"},
		{ID: "cccccccc-0003", Name: "C", Category: domain.CategoryDocuments, State: domain.StateMaharashtra, URL: "https://c.gov.in/",
			Description: "Apply for certificates"},
	}
}

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{"nil ports", nil, ErrInvalidPorts},
		{"missing catalog", &Ports{Actions: &mockActions{}}, ErrMissingCatalogService},
		{"missing actions", &Ports{Catalog: newMockCatalog()}, ErrMissingActionService},
		{"settings optional", &Ports{Catalog: newMockCatalog(), Actions: &mockActions{}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

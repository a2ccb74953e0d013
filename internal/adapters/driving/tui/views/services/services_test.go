package services

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/seva-cli/internal/core/domain"
)

func newTestView() *View {
	catalog := newMockCatalog()
	v := NewView(nil, nil, catalog, catalog.states)
	v.SetDimensions(120, 60)
	return v
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func names(records []domain.ServiceRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestView_SetSelectionFilters(t *testing.T) {
	v := newTestView()

	v.SetSelection(domain.Selection{Category: domain.CategoryDocuments})
	assert.Equal(t, []string{"Aaple Sarkar", "Sakala"}, names(v.Records()))
	assert.Contains(t, v.View(), "Documents")

	v.SetSelection(domain.Selection{State: domain.StateKarnataka, Category: domain.CategoryDocuments})
	assert.Equal(t, []string{"Sakala"}, names(v.Records()))

	v.SetSelection(domain.Selection{})
	assert.Len(t, v.Records(), 3)
	assert.Contains(t, v.View(), allServicesTitle)
}

func TestView_EmptySelectionShowsMessage(t *testing.T) {
	v := newTestView()

	v.SetSelection(domain.Selection{State: domain.StateDelhi, Category: domain.CategoryDocuments})

	assert.Empty(t, v.Records())
	assert.Contains(t, v.View(), list.EmptyMessage)
}

func TestView_CycleStateRefilters(t *testing.T) {
	v := newTestView()
	v.SetSelection(domain.Selection{Category: domain.CategoryDocuments})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRight})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.StateChanged{State: domain.StateMaharashtra}, cmd())
	assert.Equal(t, domain.StateMaharashtra, v.Selection().State)
	assert.Equal(t, []string{"Aaple Sarkar"}, names(v.Records()))

	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyLeft})
	msg, ok := cmd().(messages.StateChanged)
	require.True(t, ok)
	assert.True(t, msg.State.IsZero())
	assert.Len(t, v.Records(), 2)
}

func TestView_Search(t *testing.T) {
	v := newTestView()
	v.SetSelection(domain.Selection{})

	v.Update(runes("/"))
	require.True(t, v.SearchFocused())

	v.Update(runes("sak"))
	assert.Equal(t, "sak", v.Query())
	assert.Equal(t, []string{"Sakala"}, names(v.Records()))

	// Typing "q" in the search box must not quit.
	_, cmd := v.Update(runes("q"))
	if cmd != nil {
		assert.NotEqual(t, tea.QuitMsg{}, cmd())
	}
	assert.Empty(t, v.Records())

	v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, v.SearchFocused())
	assert.Equal(t, "sakq", v.Query())
}

func TestView_OpenSelected(t *testing.T) {
	v := newTestView()
	v.SetSelection(domain.Selection{})

	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	req, ok := cmd().(messages.OpenRequested)
	require.True(t, ok)
	assert.Equal(t, "Sakala", req.Record.Name)
}

func TestView_OpenWithNothingSelected(t *testing.T) {
	v := newTestView()
	v.SetSelection(domain.Selection{State: domain.StateDelhi, Category: domain.CategoryDocuments})

	_, cmd := v.Update(runes("o"))

	assert.Nil(t, cmd)
}

func TestView_ServiceOpenedStatus(t *testing.T) {
	v := newTestView()
	v.SetSelection(domain.Selection{})
	rec := v.Records()[0]

	v.Update(messages.ServiceOpened{Record: rec})
	assert.Contains(t, v.View(), "Opened Aaple Sarkar")

	v.Update(messages.ServiceOpened{Record: rec, Err: errors.New("no browser")})
	assert.Contains(t, v.View(), "no browser")
}

func TestView_Back(t *testing.T) {
	v := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewHome}, cmd())
}

func TestView_NotReady(t *testing.T) {
	v := NewView(nil, nil, nil, nil)

	assert.Equal(t, "Initialising...", v.View())
	v.Refresh()
	assert.Empty(t, v.Records())
}

func TestView_RefreshWithoutCatalogResetsCount(t *testing.T) {
	v := newTestView()
	v.SetSelection(domain.Selection{})
	require.Equal(t, 3, v.statusbar.Count())

	v.catalog = nil
	v.Refresh()

	assert.Empty(t, v.Records())
	assert.Equal(t, 0, v.statusbar.Count())
	assert.Contains(t, v.View(), "0 services")
}

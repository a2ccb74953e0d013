// Package services provides the view listing services for the current selection.
package services

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/components/picker"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/seva-cli/internal/core/domain"
	"github.com/custodia-labs/seva-cli/internal/core/ports/driving"
)

// allServicesTitle is the heading when no category is selected.
const allServicesTitle = "All Services"

// headerLines is the space taken by title, picker, search box and status bar.
const headerLines = 8

// View represents the services list with state picker, search box and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	picker    *picker.StatePicker
	input     *input.SearchInput
	list      *list.ServiceList
	statusbar *status.Bar

	catalog driving.CatalogService
	ctx     context.Context

	selection domain.Selection
	width     int
	height    int
	ready     bool
}

// NewView creates a new services view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	catalog driving.CatalogService,
	states []domain.State,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		picker:    picker.NewStatePicker(s, states),
		input:     input.NewSearchInput(s),
		list:      list.NewServiceList(s),
		statusbar: status.NewBar(s, km, km.ServicesHelp()...),
		catalog:   catalog,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetSelection replaces the selection and reloads the list.
func (v *View) SetSelection(sel domain.Selection) {
	v.selection = sel
	v.picker.Set(sel.State)
	v.Refresh()
}

// Selection returns the selection the list is filtered by.
func (v *View) Selection() domain.Selection {
	return v.selection
}

// Refresh re-runs the catalogue query for the current selection and search text.
func (v *View) Refresh() {
	if v.catalog == nil {
		v.list.SetRecords(nil)
		v.statusbar.SetResultCount(0)
		return
	}
	records := v.catalog.Search(v.ctx, v.input.Value(), v.selection)
	v.list.SetRecords(records)
	v.statusbar.SetResultCount(len(records))
}

// FocusSearch focuses the search box.
func (v *View) FocusSearch() tea.Cmd {
	return v.input.Focus()
}

// Update handles messages for the services view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.input.Focused() {
			return v.handleSearchKey(msg)
		}
		return v.handleListKey(msg)

	case messages.ServiceOpened:
		if msg.Err != nil {
			v.statusbar.SetError(msg.Err)
		} else {
			v.statusbar.SetOpened(fmt.Sprintf("Opened %s", msg.Record.Name))
		}
		return v, nil

	case messages.ErrorOccurred:
		v.statusbar.SetError(msg.Err)
		return v, nil
	}

	return v, nil
}

// handleSearchKey processes keys while typing in the search box.
func (v *View) handleSearchKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		v.input.Blur()
		return v, nil
	case tea.KeyUp, tea.KeyDown:
		v.input.Blur()
		return v.handleListKey(msg)
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() != before {
		v.Refresh()
	}
	return v, cmd
}

// handleListKey processes keys while navigating the list.
func (v *View) handleListKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHome}
		}

	case keymap.Matches(k, v.keymap.Quit):
		return v, tea.Quit

	case keymap.Matches(k, v.keymap.Help):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}

	case keymap.Matches(k, v.keymap.Search):
		return v, v.input.Focus()

	case keymap.Matches(k, v.keymap.PrevState):
		return v, v.changeState(v.picker.Prev())

	case keymap.Matches(k, v.keymap.NextState):
		return v, v.changeState(v.picker.Next())

	case keymap.Matches(k, v.keymap.Open):
		record := v.list.SelectedRecord()
		if record == nil {
			return v, nil
		}
		r := *record
		return v, func() tea.Msg {
			return messages.OpenRequested{Record: r}
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *View) changeState(state domain.State) tea.Cmd {
	v.selection.State = state
	v.Refresh()
	return func() tea.Msg {
		return messages.StateChanged{State: state}
	}
}

// View renders the services screen.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	heading := allServicesTitle
	if !v.selection.Category.IsZero() {
		heading = v.selection.Category.String()
	}
	b.WriteString(v.styles.Title.Render(heading))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Viewing services for ") + v.picker.View())
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n\n")
	b.WriteString(v.list.View())
	b.WriteString("\n\n")
	b.WriteString(v.statusbar.View())

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
	listHeight := height - headerLines
	if listHeight < 4 {
		listHeight = 4
	}
	v.list.SetDimensions(width, listHeight)
}

// Records returns the records currently listed.
func (v *View) Records() []domain.ServiceRecord {
	return v.list.Records()
}

// Query returns the search text.
func (v *View) Query() string {
	return v.input.Value()
}

// SearchFocused reports whether the search box has focus.
func (v *View) SearchFocused() bool {
	return v.input.Focused()
}

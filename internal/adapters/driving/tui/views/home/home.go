// Package home provides the landing view: state picker, category tiles and helplines.
package home

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/components/picker"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/seva-cli/internal/core/domain"
)

// View represents the home screen.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	picker    *picker.StatePicker
	tiles     []domain.Category
	helplines []domain.Helpline
	selected  int
	width     int
	height    int
	ready     bool
}

// NewView creates a new home view over the recognised states, category
// tiles and helplines.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	states []domain.State,
	tiles []domain.Category,
	helplines []domain.Helpline,
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
		tiles:     tiles,
		helplines: helplines,
		width:     80,
		height:    24,
	}
}

// Init initialises the home view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the home view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Quit):
		return v, tea.Quit

	case keymap.Matches(k, v.keymap.PrevState):
		return v, stateChanged(v.picker.Prev())

	case keymap.Matches(k, v.keymap.NextState):
		return v, stateChanged(v.picker.Next())

	case keymap.Matches(k, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case keymap.Matches(k, v.keymap.Down):
		if v.selected < len(v.tiles)-1 {
			v.selected++
		}
		return v, nil

	case keymap.Matches(k, v.keymap.Select):
		if len(v.tiles) == 0 {
			return v, nil
		}
		category := v.tiles[v.selected]
		return v, func() tea.Msg {
			return messages.CategorySelected{Category: category}
		}

	case keymap.Matches(k, v.keymap.Search):
		return v, func() tea.Msg { return messages.SearchRequested{} }

	case keymap.Matches(k, v.keymap.AllCategories):
		return v, viewChanged(messages.ViewCategories)

	case keymap.Matches(k, v.keymap.Help):
		return v, viewChanged(messages.ViewHelp)
	}

	return v, nil
}

func stateChanged(state domain.State) tea.Cmd {
	return func() tea.Msg {
		return messages.StateChanged{State: state}
	}
}

func viewChanged(view messages.ViewType) tea.Cmd {
	return func() tea.Msg {
		return messages.ViewChanged{View: view}
	}
}

// View renders the home screen.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Welcome to Seva"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Empowering Citizens"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render("Select Your State"))
	b.WriteString("\n")
	b.WriteString(v.picker.View())
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render("Categories"))
	b.WriteString("\n")
	for i, c := range v.tiles {
		style := v.styles.Tile
		cursor := "  "
		if i == v.selected {
			style = v.styles.SelectedTile
			cursor = "> "
		}
		b.WriteString(cursor + style.Render(c.Heading()))
		b.WriteString(" " + v.styles.Muted.Render(c.Description()))
		b.WriteString("\n")
	}

	if len(v.helplines) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Helplines"))
		b.WriteString("\n")
		parts := make([]string, 0, len(v.helplines))
		for _, h := range v.helplines {
			parts = append(parts, fmt.Sprintf("%s %s", h.Name, v.styles.Accent.Render(h.Number)))
		}
		b.WriteString(v.styles.Normal.Render(strings.Join(parts, "  ·  ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(
		"[←/→] State  [j/k] Navigate  [Enter] Browse  [/] Search  [c] Categories  [?] Help  [q] Quit"))

	return b.String()
}

// SetState moves the picker to state without emitting a message.
func (v *View) SetState(state domain.State) {
	v.picker.Set(state)
}

// State returns the state shown in the picker.
func (v *View) State() domain.State {
	return v.picker.Current()
}

// Selected returns the highlighted tile index.
func (v *View) Selected() int {
	return v.selected
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

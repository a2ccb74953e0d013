// Package categories provides the view listing every service category.
package categories

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/seva-cli/internal/core/domain"
)

// View represents the categories screen.
type View struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	categories []domain.Category
	selected   int
	width      int
	height     int
	ready      bool
}

// NewView creates a new categories view.
func NewView(s *styles.Styles, km *keymap.KeyMap, categories []domain.Category) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		categories: categories,
		width:      80,
		height:     24,
	}
}

// Init initialises the categories view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the categories view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewHome}
			}
		case keymap.Matches(k, v.keymap.Quit):
			return v, tea.Quit
		case keymap.Matches(k, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
		case keymap.Matches(k, v.keymap.Down):
			if v.selected < len(v.categories)-1 {
				v.selected++
			}
		case keymap.Matches(k, v.keymap.Select):
			if len(v.categories) == 0 {
				return v, nil
			}
			category := v.categories[v.selected]
			return v, func() tea.Msg {
				return messages.CategorySelected{Category: category}
			}
		}
	}

	return v, nil
}

// View renders the categories list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Categories"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Browse services by category to find what you need quickly."))
	b.WriteString("\n\n")

	for i, c := range v.categories {
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + c.Heading()))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + c.Heading()))
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("    " + c.Description()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("[j/k] Navigate  [Enter] Browse  [Esc] Back  [q] Quit"))

	return b.String()
}

// Selected returns the highlighted index.
func (v *View) Selected() int {
	return v.selected
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

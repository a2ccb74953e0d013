// Package onboarding provides the welcome view shown on first start.
package onboarding

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/styles"
)

const (
	title   = "Seva"
	tagline = "Empowering Citizens, Simplifying Access."
	blurb   = "Find official government services for your state in one place."
	button  = "Get Started"
)

// View represents the onboarding screen.
type View struct {
	styles *styles.Styles
	width  int
	height int
	ready  bool
}

// NewView creates a new onboarding view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// Init initialises the onboarding view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the onboarding view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewHome}
			}
		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the onboarding screen centred in the terminal.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Subtitle.Render(tagline))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render(blurb))
	b.WriteString("\n\n")
	b.WriteString(v.styles.SelectedTile.Render(button))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("[Enter] Get Started  [q] Quit"))

	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, b.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

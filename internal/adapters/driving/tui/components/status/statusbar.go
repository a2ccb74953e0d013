// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/styles"
)

// State represents what the status bar reports.
type State string

const (
	StateReady   State = "ready"
	StateResults State = "results"
	StateOpened  State = "opened"
	StateError   State = "error"
)

// Bar displays status and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	bindings []key.Binding
	state    State
	message  string
	count    int
	width    int
}

// NewBar creates a new status bar showing the given hints.
// With no bindings the keymap's short help is used.
func NewBar(s *styles.Styles, km *keymap.KeyMap, bindings ...key.Binding) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if len(bindings) == 0 {
		bindings = km.ShortHelp()
	}

	return &Bar{
		styles:   s,
		bindings: bindings,
		state:    StateReady,
		width:    80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateOpened:
		return s.styles.Success.Render(s.message)
	case StateResults:
		if s.count == 1 {
			return s.styles.Normal.Render("1 service")
		}
		return s.styles.Normal.Render(fmt.Sprintf("%d services", s.count))
	case StateReady:
	}
	return s.styles.Muted.Render("Ready")
}

func (s *Bar) renderRight() string {
	hints := make([]string, 0, len(s.bindings))
	for _, b := range s.bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetError shows an error message.
func (s *Bar) SetError(err error) {
	s.state = StateError
	s.message = err.Error()
}

// SetOpened confirms a website was opened.
func (s *Bar) SetOpened(message string) {
	s.state = StateOpened
	s.message = message
}

// SetResultCount shows how many services are listed.
func (s *Bar) SetResultCount(count int) {
	s.state = StateResults
	s.message = ""
	s.count = count
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// Count returns the last result count shown.
func (s *Bar) Count() int {
	return s.count
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.count = 0
}

// Package picker provides the state selector used by several views.
package picker

import (
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/seva-cli/internal/core/domain"
)

// AllStatesLabel is shown when no state is selected.
const AllStatesLabel = "All states"

// StatePicker cycles through "all states" followed by the recognised states.
type StatePicker struct {
	options []domain.State
	index   int
	styles  *styles.Styles
}

// NewStatePicker creates a picker over the given states.
// Index 0 is always the zero State.
func NewStatePicker(s *styles.Styles, states []domain.State) *StatePicker {
	if s == nil {
		s = styles.DefaultStyles()
	}
	options := make([]domain.State, 0, len(states)+1)
	options = append(options, "")
	options = append(options, states...)
	return &StatePicker{options: options, styles: s}
}

// Current returns the selected state; the zero State means all.
func (p *StatePicker) Current() domain.State {
	return p.options[p.index]
}

// Set selects state. States not offered by the picker select "all".
func (p *StatePicker) Set(state domain.State) {
	for i, s := range p.options {
		if s == state {
			p.index = i
			return
		}
	}
	p.index = 0
}

// Next advances to the following option, wrapping around.
func (p *StatePicker) Next() domain.State {
	p.index = (p.index + 1) % len(p.options)
	return p.Current()
}

// Prev moves to the previous option, wrapping around.
func (p *StatePicker) Prev() domain.State {
	p.index = (p.index - 1 + len(p.options)) % len(p.options)
	return p.Current()
}

// Label returns the display text for the current option.
func (p *StatePicker) Label() string {
	if p.Current().IsZero() {
		return AllStatesLabel
	}
	return p.Current().String()
}

// View renders the picker as "◀ State ▶".
func (p *StatePicker) View() string {
	label := p.styles.Muted.Render(p.Label())
	if !p.Current().IsZero() {
		label = p.styles.Subtitle.Render(p.Label())
	}
	return p.styles.Muted.Render("◀ ") + label + p.styles.Muted.Render(" ▶")
}

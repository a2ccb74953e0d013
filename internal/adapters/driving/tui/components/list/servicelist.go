// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/seva-cli/internal/core/domain"
)

// EmptyMessage is shown when the selection matches nothing.
const EmptyMessage = "No services found for this selection."

// linesPerItem is the height of one rendered service card.
const linesPerItem = 4

// ServiceList displays service records in a navigable list.
type ServiceList struct {
	records  []domain.ServiceRecord
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewServiceList creates a new service list component.
func NewServiceList(s *styles.Styles) *ServiceList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ServiceList{
		styles: s,
		width:  80,
		height: 20,
	}
}

// Update handles list navigation messages.
func (l *ServiceList) Update(msg tea.Msg) (*ServiceList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the visible window of records.
func (l *ServiceList) View() string {
	if len(l.records) == 0 {
		return l.styles.Muted.Render(EmptyMessage)
	}

	visible := l.height / linesPerItem
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.records) {
		end = len(l.records)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderRecord(i, &l.records[i]))
	}
	return strings.Join(lines, "\n")
}

// renderRecord formats one service as a small card.
func (l *ServiceList) renderRecord(index int, r *domain.ServiceRecord) string {
	indicator := "  "
	name := l.truncate(r.Name, l.width-24)
	var title string
	if index == l.selected {
		indicator = "> "
		title = l.styles.Selected.Render(indicator + name)
	} else {
		title = l.styles.Normal.Render(indicator + name)
	}
	title += " " + l.styles.Badge.Render(r.State.String())

	category := "    " + l.styles.Accent.Render(r.Category.String())

	desc := ""
	if r.Description != "" {
		desc = l.truncate(r.Description, l.width-6)
	}
	descLine := l.styles.Muted.Render("    " + desc)

	link := l.styles.Muted.Render(fmt.Sprintf("    %s", l.truncate(r.URL, l.width-6)))

	return title + "\n" + category + "\n" + descLine + "\n" + link
}

func (l *ServiceList) truncate(s string, limit int) string {
	if limit < 10 {
		limit = 10
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// SetRecords replaces the list and resets the selection.
func (l *ServiceList) SetRecords(records []domain.ServiceRecord) {
	l.records = records
	l.selected = 0
}

// Records returns the current records.
func (l *ServiceList) Records() []domain.ServiceRecord {
	return l.records
}

// Selected returns the index of the selected record.
func (l *ServiceList) Selected() int {
	return l.selected
}

// SelectedRecord returns the currently selected record, or nil if none.
func (l *ServiceList) SelectedRecord() *domain.ServiceRecord {
	if l.selected < 0 || l.selected >= len(l.records) {
		return nil
	}
	return &l.records[l.selected]
}

// MoveUp moves selection up.
func (l *ServiceList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *ServiceList) MoveDown() {
	if l.selected < len(l.records)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *ServiceList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of records.
func (l *ServiceList) Count() int {
	return len(l.records)
}

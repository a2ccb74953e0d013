package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/views/categories"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/views/home"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/views/onboarding"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui/views/services"
	"github.com/custodia-labs/seva-cli/internal/core/domain"
	"github.com/custodia-labs/seva-cli/internal/logger"
)

// Session is the browsing state shared by all views.
// The zero value means all states and all categories.
type Session struct {
	State    domain.State
	Category domain.Category
}

// Selection returns the filter the session describes.
func (s Session) Selection() domain.Selection {
	return domain.Selection{State: s.State, Category: s.Category}
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	onboardingView *onboarding.View
	homeView       *home.View
	categoriesView *categories.View
	servicesView   *services.View

	// session holds the selected state and category.
	session Session

	// currentView tracks which view is active; previousView is restored
	// when leaving help.
	currentView  messages.ViewType
	previousView messages.ViewType

	// settingsApplied is set once the first settings load has been handled.
	settingsApplied bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	ctx := context.Background()
	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	states := ports.Catalog.States(ctx)
	cats := ports.Catalog.Categories(ctx)

	return &App{
		ports:          ports,
		ctx:            ctx,
		styles:         s,
		onboardingView: onboarding.NewView(s),
		homeView:       home.NewView(s, km, states, cats, ports.Catalog.Helplines(ctx)),
		categoriesView: categories.NewView(s, km, cats),
		servicesView:   services.NewView(s, km, ports.Catalog, states),
		currentView:    messages.ViewOnboarding,
		previousView:   messages.ViewHome,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.servicesView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("seva - Government Services"),
		a.loadSettings(),
	)
}

// loadSettings reads settings through the optional settings port.
func (a *App) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if a.ports.Settings == nil {
			defaults := domain.DefaultAppSettings()
			return messages.SettingsLoaded{Settings: &defaults}
		}
		settings, err := a.ports.Settings.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// openService opens the record's website through the action port.
func (a *App) openService(record domain.ServiceRecord) tea.Cmd {
	return func() tea.Msg {
		err := a.ports.Actions.Open(a.ctx, &record)
		return messages.ServiceOpened{Record: record, Err: err}
	}
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.forwardKey(msg)

	case messages.SettingsLoaded:
		a.applySettings(msg)
		return a, nil

	case messages.ConfigChanged:
		logger.Debug("config changed, reloading settings")
		return a, a.loadSettings()

	case messages.ViewChanged:
		a.switchTo(msg.View)
		return a, nil

	case messages.StateChanged:
		a.session.State = msg.State
		a.homeView.SetState(msg.State)
		a.servicesView.SetSelection(a.session.Selection())
		return a, nil

	case messages.CategorySelected:
		a.session.Category = msg.Category
		a.servicesView.SetSelection(a.session.Selection())
		a.switchTo(messages.ViewServices)
		return a, nil

	case messages.SearchRequested:
		a.session.Category = ""
		a.servicesView.SetSelection(a.session.Selection())
		a.switchTo(messages.ViewServices)
		return a, a.servicesView.FocusSearch()

	case messages.OpenRequested:
		return a, a.openService(msg.Record)

	case messages.ServiceOpened:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.servicesView, cmd = a.servicesView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewServices {
			a.servicesView, cmd = a.servicesView.Update(msg)
		}
		return a, cmd
	}

	return a, nil
}

// forwardKey sends a key press to the active view.
func (a *App) forwardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewOnboarding:
		a.onboardingView, cmd = a.onboardingView.Update(msg)
	case messages.ViewHome:
		a.homeView, cmd = a.homeView.Update(msg)
	case messages.ViewCategories:
		a.categoriesView, cmd = a.categoriesView.Update(msg)
	case messages.ViewServices:
		a.servicesView, cmd = a.servicesView.Update(msg)
	case messages.ViewHelp:
		switch msg.String() {
		case "esc", "?":
			a.currentView = a.previousView
		case "q":
			return a, tea.Quit
		}
	}

	return a, cmd
}

// switchTo activates view, remembering where help was opened from.
func (a *App) switchTo(view messages.ViewType) {
	if view == messages.ViewHelp && a.currentView != messages.ViewHelp {
		a.previousView = a.currentView
	}
	a.currentView = view
}

// applySettings preselects the default state. The first load also honours
// SkipOnboarding; later loads come from config edits and only move the
// state picker.
func (a *App) applySettings(msg messages.SettingsLoaded) {
	if msg.Err != nil {
		a.err = msg.Err
		logger.Warn("loading settings: %v", msg.Err)
	}
	if msg.Settings == nil {
		return
	}

	// States the picker does not offer fall back to "All states"; the
	// session follows whatever the picker shows.
	a.homeView.SetState(msg.Settings.DefaultState)
	a.session.State = a.homeView.State()
	a.servicesView.SetSelection(a.session.Selection())

	if !a.settingsApplied {
		a.settingsApplied = true
		if msg.Settings.SkipOnboarding && a.currentView == messages.ViewOnboarding {
			a.currentView = messages.ViewHome
		}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewOnboarding:
		return a.onboardingView.View()
	case messages.ViewHome:
		return a.homeView.View()
	case messages.ViewCategories:
		return a.categoriesView.View()
	case messages.ViewServices:
		return a.servicesView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.homeView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Home:
  ←/→, h/l    Change state
  j/k, ↑/↓    Navigate categories
  enter       Browse category
  /           Search all services
  c           All categories

Services:
  ←/→, h/l    Change state
  j/k, ↑/↓    Navigate services
  enter, o    Open official website
  /           Search (esc to finish)
  esc         Back to home

Global:
  ?           Toggle help
  ctrl+c      Quit

[esc] back`
}

// Run starts the TUI application. When the ports carry a config watcher
// it runs alongside the program until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.WithContext(ctx)

	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(ctx))

	if a.ports.Watcher != nil {
		go func() {
			err := a.ports.Watcher.Watch(ctx, func() {
				p.Send(messages.ConfigChanged{})
			})
			if err != nil {
				logger.Warn("config watcher stopped: %v", err)
			}
		}()
	}

	_, err := p.Run()
	return err
}

// Session returns the current browsing state.
func (a *App) Session() Session {
	return a.session
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.onboardingView.SetDimensions(width, height)
	a.homeView.SetDimensions(width, height)
	a.categoriesView.SetDimensions(width, height)
	a.servicesView.SetDimensions(width, height)
}

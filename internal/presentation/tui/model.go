package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/statusview/internal/application/settings"
	"github.com/tesso57/statusview/internal/domain/status"
	"github.com/tesso57/statusview/internal/presentation/tui/element"
	"github.com/tesso57/statusview/internal/presentation/tui/intent"
	"github.com/tesso57/statusview/internal/presentation/tui/presenter"
	"github.com/tesso57/statusview/internal/presentation/tui/state"
	"github.com/tesso57/statusview/internal/presentation/tui/statuslayout"
	"github.com/tesso57/statusview/internal/presentation/tui/surface"
	"github.com/tesso57/statusview/internal/presentation/tui/template"
	"github.com/tesso57/statusview/internal/presentation/tui/update"
	"github.com/tesso57/statusview/internal/presentation/tui/view"
	listview "github.com/tesso57/statusview/internal/presentation/tui/view/list"
	"go.uber.org/zap"
)

// OtherTemplate is the template of the caller-defined status.
const OtherTemplate template.ID = "demo.other"

// OtherButton is the child of OtherTemplate that triggers a reload.
const OtherButton = "btn_test"

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	loader   update.Loader
	logger   *zap.Logger
	state    *state.ModelState
}

// NewModel creates the application model around a status container whose
// content view is the article list.
func NewModel(cfg settings.Settings, loader update.Loader, factory *template.Factory, logger *zap.Logger) (*Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{
		settings: cfg,
		loader:   loader,
		logger:   logger,
	}

	layoutCfg, err := layoutConfig(cfg.Layout)
	if err != nil {
		return nil, err
	}

	keys := state.NewKeyMap(cfg.KeyMap)
	articles := newArticleList(cfg, keys)
	layout, err := statuslayout.New(
		surface.NewFrame(articles),
		factory,
		layoutCfg,
		statuslayout.WithLogger(logger.Named("layout")),
		statuslayout.WithListener(statuslayout.ListenerFunc(m.onStatusChange)),
	)
	if err != nil {
		return nil, err
	}

	m.state = &state.ModelState{
		Session:  state.MainView,
		Layout:   layout,
		Articles: articles,
		Help:     help.New(),
		Keys:     keys,
		FeedURL:  cfg.Feed,
	}

	layout.SetRetryHandler(m.reload)
	if err := m.registerOther(factory); err != nil {
		return nil, err
	}
	return m, nil
}

func layoutConfig(cfg settings.LayoutConfig) (statuslayout.Config, error) {
	def, err := cfg.Default()
	if err != nil {
		return statuslayout.Config{}, err
	}
	return statuslayout.Config{
		ContentTemplate:   template.ID(cfg.ContentTemplate),
		LoadingTemplate:   template.ID(cfg.LoadingTemplate),
		EmptyTemplate:     template.ID(cfg.EmptyTemplate),
		ErrorTemplate:     template.ID(cfg.ErrorTemplate),
		NoNetworkTemplate: template.ID(cfg.NoNetworkTemplate),
		DefaultStatus:     def,
	}, nil
}

// registerOther installs the view of the caller-defined status. A
// template with the same id loaded from the templates directory wins.
func (m *Model) registerOther(factory *template.Factory) error {
	reg := factory.Registry()
	if _, ok := reg.Lookup(OtherTemplate); !ok {
		err := reg.Register(template.Template{
			ID:      OtherTemplate,
			Title:   "Custom status",
			Message: "Registered by the caller with SetView.",
			Icon:    "◆",
			Color:   m.settings.Theme.Accent,
			Buttons: []template.Button{{ID: OtherButton, Label: "Reload", Key: "t"}},
		})
		if err != nil {
			return err
		}
	}

	v, err := factory.Materialize(OtherTemplate)
	if err != nil {
		return err
	}
	if _, err := m.state.Layout.SetView(intent.OtherStatus, v); err != nil {
		return err
	}
	m.state.Layout.SetClickHandler(intent.OtherStatus, OtherButton, m.reload)
	return nil
}

func newArticleList(cfg settings.Settings, keys state.KeyMap) *element.Wrapped[list.Model] {
	l := list.New([]list.Item{}, listview.NewItemDelegate(lipgloss.Color(cfg.Theme.FeedName)), 0, 0)
	l.Title = "Articles"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.KeyMap.CursorUp.SetKeys(append([]string{"up"}, keys.Up.Keys()...)...)
	l.KeyMap.CursorDown.SetKeys(append([]string{"down"}, keys.Down.Keys()...)...)

	return element.Wrap(l, element.WithResize(func(m *list.Model, width, height int) {
		m.SetSize(width, height)
	}))
}

// Init mounts the container and starts the first fetch.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.state.Layout.Init(), update.Fetch(m.state, m.deps()))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps()); handled {
			update.UpdateSizes(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
		return m, nil
	case update.FeedLoadedMsg:
		return m, update.HandleFeedLoadedMsg(m.state, msg, m.deps())
	}

	return m, m.state.Layout.Update(msg)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) reload() tea.Cmd {
	return update.Reload(m.state, m.deps())
}

func (m *Model) onStatusChange(old status.ID, _ element.View, next status.ID, _ element.View) {
	m.logger.Info("status changed", zap.Stringer("from", old), zap.Stringer("to", next))
	if m.state == nil {
		return
	}
	m.state.Status = next
	m.state.RecordTransition(presenter.TransitionLine(old, next))
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Loader:      m.loader,
		OpenBrowser: openBrowser,
		Logger:      m.logger,
	}
}

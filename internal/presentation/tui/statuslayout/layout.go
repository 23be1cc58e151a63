// Package statuslayout implements a container that shows exactly one of
// several mutually exclusive status views (content, loading, empty,
// error, no-network or a caller-defined status) inside a host surface.
//
// The layout never decides when to transition. Callers request a status
// and the layout materializes, caches, attaches and hides views
// accordingly. All methods must be called from the bubbletea update loop.
package statuslayout

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/statusview/internal/domain/status"
	"github.com/tesso57/statusview/internal/presentation/tui/element"
	"github.com/tesso57/statusview/internal/presentation/tui/surface"
	"github.com/tesso57/statusview/internal/presentation/tui/template"
	"go.uber.org/zap"
)

// Factory materializes a view from a template id.
type Factory interface {
	Materialize(id template.ID) (element.View, error)
}

// Listener observes committed status transitions. old is status.None and
// oldView nil on the first transition.
type Listener interface {
	OnStatusChange(old status.ID, oldView element.View, next status.ID, nextView element.View)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(old status.ID, oldView element.View, next status.ID, nextView element.View)

// OnStatusChange implements Listener.
func (f ListenerFunc) OnStatusChange(old status.ID, oldView element.View, next status.ID, nextView element.View) {
	f(old, oldView, next, nextView)
}

// Config selects templates per reserved status and the status applied on
// mount. Empty template ids fall back to the built-in templates, except
// for content which then relies on the host's pre-existing child.
type Config struct {
	ContentTemplate   template.ID
	LoadingTemplate   template.ID
	EmptyTemplate     template.ID
	ErrorTemplate     template.ID
	NoNetworkTemplate template.ID
	DefaultStatus     status.ID
}

var builtinTemplates = map[status.Reserved]template.ID{
	status.Loading:   template.BuiltinLoading,
	status.Empty:     template.BuiltinEmpty,
	status.Error:     template.BuiltinError,
	status.NoNetwork: template.BuiltinNoNetwork,
}

// Option configures a Layout.
type Option func(*Layout)

// WithLogger sets the layout logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Layout) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithListener registers the status change listener.
func WithListener(listener Listener) Option {
	return func(l *Layout) { l.listener = listener }
}

// Layout is the status container.
type Layout struct {
	host          surface.Surface
	factory       Factory
	templates     map[status.Reserved]template.ID
	defaultStatus status.ID
	mounted       bool

	views    map[status.ID]element.View
	clicks   map[status.ID]map[string]element.ClickHandler
	current  status.ID
	retry    element.ClickHandler
	listener Listener
	logger   *zap.Logger
}

// New creates a layout over host. With no content template, a single
// pre-existing child of host becomes the content view; several children
// are a fatal *ConfigError. With a content template, pre-existing
// children are detached.
func New(host surface.Surface, factory Factory, cfg Config, opts ...Option) (*Layout, error) {
	l := &Layout{
		host:    host,
		factory: factory,
		templates: map[status.Reserved]template.ID{
			status.Content:   cfg.ContentTemplate,
			status.Loading:   cfg.LoadingTemplate,
			status.Empty:     cfg.EmptyTemplate,
			status.Error:     cfg.ErrorTemplate,
			status.NoNetwork: cfg.NoNetworkTemplate,
		},
		defaultStatus: cfg.DefaultStatus,
		views:         make(map[status.ID]element.View),
		clicks:        make(map[status.ID]map[string]element.ClickHandler),
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}

	children := host.Children()
	if cfg.ContentTemplate == "" {
		switch {
		case len(children) > 1:
			return nil, &ConfigError{Children: len(children), Err: ErrAmbiguousContent}
		case len(children) == 1:
			l.views[status.Of(status.Content)] = children[0]
		}
	} else {
		for _, c := range children {
			host.Detach(c)
		}
	}
	return l, nil
}

// Mount signals that the layout became part of a visible tree. The
// configured default status is applied the first time only.
func (l *Layout) Mount() (tea.Cmd, error) {
	if l.mounted {
		return nil, nil
	}
	l.mounted = true
	if l.defaultStatus.IsNone() || !l.current.IsNone() {
		return nil, nil
	}
	return l.Show(l.defaultStatus)
}

// Init mounts the layout for bubbletea hosts.
func (l *Layout) Init() tea.Cmd {
	cmd, err := l.Mount()
	if err != nil {
		l.logger.Error("apply default status", zap.Stringer("status", l.defaultStatus), zap.Error(err))
	}
	return cmd
}

// Update forwards msg to the visible views of the host.
func (l *Layout) Update(msg tea.Msg) tea.Cmd {
	if v, ok := l.host.(element.View); ok {
		return v.Update(msg)
	}
	return nil
}

// View renders the host.
func (l *Layout) View() string {
	if v, ok := l.host.(element.View); ok {
		return v.View()
	}
	return ""
}

// SetSize resizes the host.
func (l *Layout) SetSize(width, height int) {
	if s, ok := l.host.(element.Sizer); ok {
		s.SetSize(width, height)
	}
}

// Current returns the visible status, or status.None before the first
// transition.
func (l *Layout) Current() status.ID {
	return l.current
}

// ViewFor returns the cached view for s, if it was materialized or set.
// The layout keeps ownership of the view.
func (l *Layout) ViewFor(s status.ID) (element.View, bool) {
	v, ok := l.views[s]
	return v, ok
}

// SetListener replaces the status change listener; nil removes it.
func (l *Layout) SetListener(listener Listener) {
	l.listener = listener
}

func (l *Layout) notify(old status.ID, oldView element.View, next status.ID, nextView element.View) {
	l.logger.Debug("status changed", zap.Stringer("from", old), zap.Stringer("to", next))
	if l.listener != nil {
		l.listener.OnStatusChange(old, oldView, next, nextView)
	}
}

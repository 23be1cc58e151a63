package statuslayout

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/statusview/internal/domain/status"
	"github.com/tesso57/statusview/internal/presentation/tui/element"
	"github.com/tesso57/statusview/internal/presentation/tui/surface"
	"github.com/tesso57/statusview/internal/presentation/tui/template"
	"go.uber.org/zap"
)

var contentID = status.Of(status.Content)

// Show makes target the visible status and returns the shown view's Init
// command. Showing the current status, status.None or a custom status
// that was never registered with SetView is a silent no-op. A template
// materialization failure is returned and leaves the layout unchanged.
func (l *Layout) Show(target status.ID) (tea.Cmd, error) {
	if target == l.current {
		return nil, nil
	}
	if target.IsNone() {
		return nil, nil
	}

	view, ok, err := l.resolve(target)
	if err != nil {
		return nil, err
	}
	if !ok {
		l.logger.Debug("ignore unregistered status", zap.Stringer("status", target))
		return nil, nil
	}

	old := l.current
	oldView := l.views[old]
	l.hide(old, target)

	if view != nil {
		if !l.host.Attached(view) {
			l.host.Attach(view, surface.FullBleed)
		}
		l.host.SetVisible(view, true)
	}
	l.applyClicks(target)
	l.current = target
	l.notify(old, oldView, target, view)

	if view == nil {
		return nil, nil
	}
	return view.Init(), nil
}

// ShowContent shows the content view.
func (l *Layout) ShowContent() (tea.Cmd, error) { return l.Show(contentID) }

// ShowLoading shows the loading view.
func (l *Layout) ShowLoading() (tea.Cmd, error) { return l.Show(status.Of(status.Loading)) }

// ShowEmpty shows the empty view.
func (l *Layout) ShowEmpty() (tea.Cmd, error) { return l.Show(status.Of(status.Empty)) }

// ShowError shows the error view.
func (l *Layout) ShowError() (tea.Cmd, error) { return l.Show(status.Of(status.Error)) }

// ShowNoNetwork shows the no-network view.
func (l *Layout) ShowNoNetwork() (tea.Cmd, error) { return l.Show(status.Of(status.NoNetwork)) }

// resolve returns the view for target, materializing reserved statuses on
// first use. ok is false for unregistered custom statuses. The content
// view may be nil when neither a child nor a template supplies it.
func (l *Layout) resolve(target status.ID) (view element.View, ok bool, err error) {
	if v, cached := l.views[target]; cached {
		return v, true, nil
	}
	r, reserved := target.Reserved()
	if !reserved {
		return nil, false, nil
	}

	id := l.templates[r]
	if r == status.Content {
		if id == "" {
			return nil, true, nil
		}
		v, err := l.materialize(target, id)
		if err != nil {
			return nil, false, err
		}
		l.host.Attach(v, surface.FullBleed)
		l.host.SetVisible(v, false)
		return v, true, nil
	}

	if id == "" {
		id = builtinTemplates[r]
	}
	v, err := l.materialize(target, id)
	if err != nil {
		return nil, false, err
	}
	if (r == status.Error || r == status.NoNetwork) && l.retry != nil {
		element.Bind(v, template.RetryControl, l.retry)
	}
	return v, true, nil
}

func (l *Layout) materialize(s status.ID, id template.ID) (element.View, error) {
	v, err := l.factory.Materialize(id)
	if err != nil {
		return nil, fmt.Errorf("materialize %s view: %w", s, err)
	}
	if v == nil {
		return nil, fmt.Errorf("materialize %s view from %q: %w", s, id, ErrNilView)
	}
	l.logger.Debug("materialized view", zap.Stringer("status", s), zap.String("template", string(id)))
	l.views[s] = v
	return v, nil
}

// hide takes the old status off screen before next is shown. The content
// view is only ever hidden; every other view is detached.
func (l *Layout) hide(old, next status.ID) {
	if content := l.views[contentID]; content != nil && next != contentID {
		l.host.SetVisible(content, false)
	}
	if old.IsNone() || old == contentID {
		return
	}
	if v := l.views[old]; v != nil {
		l.host.Detach(v)
	}
}

// SetView replaces the view for s. A content view is attached right away
// and kept hidden unless content is current. When s is current the new
// view is shown immediately and the listener is notified.
func (l *Layout) SetView(s status.ID, v element.View) (tea.Cmd, error) {
	if v == nil {
		return nil, ErrNilView
	}
	if s.IsNone() {
		return nil, ErrNoStatus
	}

	prev, had := l.views[s]
	l.views[s] = v
	if had && prev != nil && prev != v && (s == contentID || s == l.current) {
		l.host.Detach(prev)
	}
	if s == contentID {
		l.host.Attach(v, surface.FullBleed)
		l.host.SetVisible(v, s == l.current)
	}
	l.applyClicks(s)

	if s != l.current {
		return nil, nil
	}
	if !l.host.Attached(v) {
		l.host.Attach(v, surface.FullBleed)
	}
	l.host.SetVisible(v, true)
	l.notify(s, prev, s, v)
	return v.Init(), nil
}

// SetClickHandler binds h to the child childID of the view for s. The
// binding is applied now if the view exists, otherwise when it is
// materialized or shown.
func (l *Layout) SetClickHandler(s status.ID, childID string, h element.ClickHandler) {
	bindings := l.clicks[s]
	if bindings == nil {
		bindings = make(map[string]element.ClickHandler)
		l.clicks[s] = bindings
	}
	bindings[childID] = h
	if v := l.views[s]; v != nil {
		element.Bind(v, childID, h)
	}
}

// SetRetryHandler sets the handler of the retry control in the error and
// no-network views, rebinding already materialized views.
func (l *Layout) SetRetryHandler(h element.ClickHandler) {
	l.retry = h
	for _, r := range []status.Reserved{status.Error, status.NoNetwork} {
		if v := l.views[status.Of(r)]; v != nil {
			element.Bind(v, template.RetryControl, h)
		}
	}
}

func (l *Layout) applyClicks(s status.ID) {
	v := l.views[s]
	if v == nil {
		return
	}
	for childID, h := range l.clicks[s] {
		element.Bind(v, childID, h)
	}
}

package update

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/statusview/internal/application/settings"
	"github.com/tesso57/statusview/internal/application/usecase"
	"github.com/tesso57/statusview/internal/domain/status"
	"github.com/tesso57/statusview/internal/presentation/tui/element"
	"github.com/tesso57/statusview/internal/presentation/tui/state"
	"github.com/tesso57/statusview/internal/presentation/tui/statuslayout"
	"github.com/tesso57/statusview/internal/presentation/tui/surface"
	"github.com/tesso57/statusview/internal/presentation/tui/template"
)

type stubLoader struct {
	out   usecase.Outcome
	calls []string
}

func (l *stubLoader) Load(_ context.Context, url string) usecase.Outcome {
	l.calls = append(l.calls, url)
	return l.out
}

func defaultKeys() settings.KeyMapConfig {
	return settings.KeyMapConfig{
		Up: "k", Down: "j", Open: "enter",
		Content: "1", Loading: "2", Empty: "3", Error: "4", NoNetwork: "5", Other: "6",
		Reload: "ctrl+r", Help: "?", Quit: "q",
	}
}

// newTestState builds a state around a real layout whose content view is
// an article list.
func newTestState(t *testing.T) *state.ModelState {
	t.Helper()
	reg, err := template.NewRegistry()
	require.NoError(t, err)

	articles := element.Wrap(list.New(nil, list.NewDefaultDelegate(), 0, 0),
		element.WithResize(func(m *list.Model, width, height int) { m.SetSize(width, height) }))
	layout, err := statuslayout.New(surface.NewFrame(articles), template.NewFactory(reg), statuslayout.Config{})
	require.NoError(t, err)

	s := &state.ModelState{
		Session:  state.MainView,
		Layout:   layout,
		Articles: articles,
		Help:     help.New(),
		Keys:     state.NewKeyMap(defaultKeys()),
		FeedURL:  "https://example.com/rss",
	}
	layout.SetListener(statuslayout.ListenerFunc(func(_ status.ID, _ element.View, next status.ID, _ element.View) {
		s.Status = next
	}))
	return s
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

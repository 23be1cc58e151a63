package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/statusview/internal/application/settings"
	"github.com/tesso57/statusview/internal/application/usecase"
	"github.com/tesso57/statusview/internal/domain/reading"
	"github.com/tesso57/statusview/internal/presentation/tui/template"
	"github.com/tesso57/statusview/internal/presentation/tui/update"
)

const testFeedURL = "https://example.com/rss"

type stubFeedFetcher struct {
	mock.Mock
}

func (s *stubFeedFetcher) Fetch(ctx context.Context, url string) (*reading.Feed, error) {
	args := s.Called(ctx, url)
	feed, _ := args.Get(0).(*reading.Feed)
	return feed, args.Error(1)
}

func testSettings() settings.Settings {
	return settings.Settings{
		Feed:   testFeedURL,
		Layout: settings.LayoutConfig{DefaultStatus: "loading"},
		KeyMap: settings.KeyMapConfig{
			Up: "k", Down: "j", Open: "enter",
			Content: "1", Loading: "2", Empty: "3", Error: "4", NoNetwork: "5", Other: "6",
			Reload: "ctrl+r", Help: "?", Quit: "q",
		},
		Theme: settings.ThemeConfig{Accent: "205", Muted: "244", FeedName: "244"},
	}
}

func newTestRegistry(t *testing.T) *template.Registry {
	t.Helper()
	reg, err := template.NewRegistry()
	require.NoError(t, err)
	return reg
}

func newTestModel(t *testing.T, cfg settings.Settings, fetcher usecase.FeedFetcher) *Model {
	t.Helper()
	return newTestModelWithRegistry(t, cfg, fetcher, newTestRegistry(t))
}

func newTestModelWithRegistry(t *testing.T, cfg settings.Settings, fetcher usecase.FeedFetcher, reg *template.Registry) *Model {
	t.Helper()
	loader := usecase.NewLoadService(fetcher, nil, 0)
	m, err := NewModel(cfg, loader, template.NewFactory(reg), nil)
	require.NoError(t, err)

	tm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return tm.(*Model)
}

func press(m *Model, k string) (*Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch k {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+r":
		msg = tea.KeyMsg{Type: tea.KeyCtrlR}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	tm, cmd := m.Update(msg)
	return tm.(*Model), cmd
}

// settle runs the pending fetch synchronously and feeds its result back.
func settle(t *testing.T, m *Model) *Model {
	t.Helper()
	require.True(t, m.state.Fetching, "no fetch in flight")
	tm, _ := m.Update(update.FetchFeedCmd(m.loader, m.state.FeedURL)())
	return tm.(*Model)
}

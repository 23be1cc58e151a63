// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/statusview/internal/application/usecase"
	"github.com/tesso57/statusview/internal/domain/status"
	"github.com/tesso57/statusview/internal/presentation/tui/intent"
	"github.com/tesso57/statusview/internal/presentation/tui/presenter"
	"github.com/tesso57/statusview/internal/presentation/tui/state"
	"github.com/tesso57/statusview/internal/presentation/tui/textutil"
	"go.uber.org/zap"
)

// Loader runs one feed load and classifies the result.
type Loader interface {
	Load(ctx context.Context, url string) usecase.Outcome
}

// Deps groups external dependencies for updates.
type Deps struct {
	Loader      Loader
	OpenBrowser func(string) error
	Logger      *zap.Logger
	Now         func() time.Time
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// FeedLoadedMsg is emitted after a load finished, successfully or not.
type FeedLoadedMsg struct {
	URL     string
	Outcome usecase.Outcome
}

// FetchFeedCmd creates a command that loads url through the load service.
func FetchFeedCmd(loader Loader, url string) tea.Cmd {
	trimmed := strings.TrimSpace(url)
	return func() tea.Msg {
		return FeedLoadedMsg{URL: trimmed, Outcome: loader.Load(context.Background(), trimmed)}
	}
}

// Reload shows the loading status and starts a fetch unless one is
// already running.
func Reload(s *state.ModelState, deps Deps) tea.Cmd {
	s.Notice = ""
	return tea.Batch(ShowStatus(s, status.Of(status.Loading), deps), Fetch(s, deps))
}

// Fetch starts loading the feed without touching the visible status.
func Fetch(s *state.ModelState, deps Deps) tea.Cmd {
	if s.Fetching || deps.Loader == nil {
		return nil
	}
	s.Fetching = true
	deps.logger().Debug("fetch feed", zap.String("url", s.FeedURL))
	return FetchFeedCmd(deps.Loader, s.FeedURL)
}

// ShowStatus asks the container for id. Failures are logged and surfaced
// in the footer; the container keeps its previous status.
func ShowStatus(s *state.ModelState, id status.ID, deps Deps) tea.Cmd {
	cmd, err := s.Layout.Show(id)
	if err != nil {
		deps.logger().Error("show status", zap.Stringer("status", id), zap.Error(err))
		s.Notice = fmt.Sprintf("Cannot show %s: %v", id, err)
	}
	return cmd
}

// HandleKeyMsg processes key input. It reports false for keys that belong
// to the visible status view.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}
	if s.Help.ShowAll {
		return handleHelpView(s, msg)
	}
	if filtering(s) {
		return nil, false
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	switch parsed.Type {
	case intent.Quit:
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = true
		return nil, true
	case intent.Reload:
		return Reload(s, deps), true
	case intent.ShowStatus:
		return ShowStatus(s, parsed.Status, deps), true
	case intent.Open:
		return openSelected(s, deps)
	default:
		return nil, false
	}
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func handleHelpView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "esc" || intent.FromKeyMsg(msg, s.Keys).Type == intent.ToggleHelp {
		s.Help.ShowAll = false
	}
	return nil, true
}

func filtering(s *state.ModelState) bool {
	return s.Articles != nil &&
		s.Layout.Current().Is(status.Content) &&
		s.Articles.Model.FilterState() == list.Filtering
}

func openSelected(s *state.ModelState, deps Deps) (tea.Cmd, bool) {
	if !s.Layout.Current().Is(status.Content) || s.Articles == nil {
		return nil, false
	}
	item, ok := s.Articles.Model.SelectedItem().(*presenter.Item)
	if !ok || item.Link == "" || deps.OpenBrowser == nil {
		return nil, true
	}
	if err := deps.OpenBrowser(item.Link); err != nil {
		deps.logger().Warn("open browser", zap.String("link", item.Link), zap.Error(err))
		s.Notice = fmt.Sprintf("Cannot open link: %v", err)
	}
	return nil, true
}

// HandleWindowSize records the terminal size and lays the screen out.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateSizes(s)
}

// HandleFeedLoadedMsg applies a load outcome: the list is refreshed with
// the loaded feed and the container shows the classified status.
func HandleFeedLoadedMsg(s *state.ModelState, msg FeedLoadedMsg, deps Deps) tea.Cmd {
	s.Fetching = false
	out := msg.Outcome
	log := deps.logger().With(zap.String("url", msg.URL), zap.Stringer("status", out.Status))

	var cmds []tea.Cmd
	if out.Feed != nil {
		s.Feed = out.Feed
		if s.Articles != nil {
			cmds = append(cmds, presenter.ApplyFeed(&s.Articles.Model, out.Feed))
		}
	}
	if out.CacheErr != nil {
		log.Warn("feed cache", zap.Error(out.CacheErr))
	}
	if out.Err != nil {
		log.Warn("feed load failed", zap.Bool("from_cache", out.FromCache), zap.Error(out.Err))
	} else {
		log.Info("feed loaded", zap.Int("items", out.Feed.Len()))
	}

	s.Notice = outcomeNotice(out, deps.now())
	cmds = append(cmds, ShowStatus(s, out.Status, deps))
	UpdateSizes(s)
	return tea.Batch(cmds...)
}

func outcomeNotice(out usecase.Outcome, now time.Time) string {
	switch {
	case out.FromCache:
		notice := "Offline: showing the cached copy"
		if ago := textutil.Ago(out.Feed.FetchedAt, now); ago != "" {
			notice += " from " + ago
		}
		return notice
	case out.Status.Is(status.Error) && out.Err != nil:
		return "Error: " + out.Err.Error()
	default:
		return ""
	}
}

package intent

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/statusview/internal/application/settings"
	"github.com/tesso57/statusview/internal/domain/status"
	"github.com/tesso57/statusview/internal/presentation/tui/state"
)

func TestFromKeyMsg(t *testing.T) {
	keys := state.NewKeyMap(settings.KeyMapConfig{
		Open:      "enter",
		Content:   "1",
		Loading:   "2",
		Empty:     "3",
		Error:     "4",
		NoNetwork: "5",
		Other:     "6",
		Reload:    "ctrl+r",
		Help:      "?",
		Quit:      "q",
	})
	runes := func(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   Type
		status status.ID
	}{
		{name: "quit", msg: runes("q"), want: Quit},
		{name: "help", msg: runes("?"), want: ToggleHelp},
		{name: "reload", msg: tea.KeyMsg{Type: tea.KeyCtrlR}, want: Reload},
		{name: "open", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: Open},
		{name: "content", msg: runes("1"), want: ShowStatus, status: status.Of(status.Content)},
		{name: "loading", msg: runes("2"), want: ShowStatus, status: status.Of(status.Loading)},
		{name: "empty", msg: runes("3"), want: ShowStatus, status: status.Of(status.Empty)},
		{name: "error", msg: runes("4"), want: ShowStatus, status: status.Of(status.Error)},
		{name: "no network", msg: runes("5"), want: ShowStatus, status: status.Of(status.NoNetwork)},
		{name: "other", msg: runes("6"), want: ShowStatus, status: status.Custom(20)},
		{name: "retry key belongs to panels", msg: runes("r"), want: None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromKeyMsg(tt.msg, keys)
			if got.Type != tt.want || got.Status != tt.status {
				t.Fatalf("FromKeyMsg() = %+v, want type %v status %v", got, tt.want, tt.status)
			}
		})
	}
}

// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/statusview/internal/domain/status"
	"github.com/tesso57/statusview/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	Reload
	Open
	ShowStatus
)

// OtherStatus is the caller-defined status the demo registers.
var OtherStatus = status.Custom(20)

// Intent represents a parsed user intent. Status is set for ShowStatus.
type Intent struct {
	Type   Type
	Status status.ID
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Reload):
		return Intent{Type: Reload}
	case key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.Content):
		return show(status.Of(status.Content))
	case key.Matches(msg, keys.Loading):
		return show(status.Of(status.Loading))
	case key.Matches(msg, keys.Empty):
		return show(status.Of(status.Empty))
	case key.Matches(msg, keys.Error):
		return show(status.Of(status.Error))
	case key.Matches(msg, keys.NoNetwork):
		return show(status.Of(status.NoNetwork))
	case key.Matches(msg, keys.Other):
		return show(OtherStatus)
	default:
		return Intent{Type: None}
	}
}

func show(s status.ID) Intent {
	return Intent{Type: ShowStatus, Status: s}
}

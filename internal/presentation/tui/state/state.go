// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/statusview/internal/application/settings"
)

// Session represents the current view state.
type Session int

const (
	MainView Session = iota
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Content   key.Binding
	Loading   key.Binding
	Empty     key.Binding
	Error     key.Binding
	NoNetwork key.Binding
	Other     key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.Reload, k.Open}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.Content, k.Loading, k.Empty},
		{k.Error, k.NoNetwork, k.Other},
		{k.Reload, k.Help, k.Quit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up:        binding(cfg.Up, "up"),
		Down:      binding(cfg.Down, "down"),
		Open:      binding(cfg.Open, "open in browser"),
		Content:   binding(cfg.Content, "show content"),
		Loading:   binding(cfg.Loading, "show loading"),
		Empty:     binding(cfg.Empty, "show empty"),
		Error:     binding(cfg.Error, "show error"),
		NoNetwork: binding(cfg.NoNetwork, "show no network"),
		Other:     binding(cfg.Other, "show custom status"),
		Reload:    binding(cfg.Reload, "reload"),
		Help:      binding(cfg.Help, "toggle help"),
		Quit:      binding(cfg.Quit, "quit"),
	}
}

func binding(keys, help string) key.Binding {
	return key.NewBinding(
		key.WithKeys(splitKeys(keys)...),
		key.WithHelp(keys, help),
	)
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}

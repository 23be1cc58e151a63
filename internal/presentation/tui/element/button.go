package element

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Button is a clickable child element of a Panel.
type Button struct {
	ID      string
	Label   string
	Binding key.Binding
	onClick ClickHandler
}

// NewButton creates a button activated by the comma-separated keys.
func NewButton(id, label, keys string) *Button {
	b := &Button{ID: id, Label: label}
	if names := splitKeys(keys); len(names) > 0 {
		b.Binding = key.NewBinding(
			key.WithKeys(names...),
			key.WithHelp(names[0], strings.ToLower(label)),
		)
	}
	return b
}

// SetOnClick implements Clickable.
func (b *Button) SetOnClick(h ClickHandler) {
	b.onClick = h
}

// Click implements Clickable.
func (b *Button) Click() tea.Cmd {
	if b.onClick == nil {
		return nil
	}
	return b.onClick()
}

// Bound reports whether a click handler is set.
func (b *Button) Bound() bool {
	return b.onClick != nil
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}

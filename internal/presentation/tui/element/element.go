// Package element defines the view contract shared by the status layout,
// its host surface and the templates that materialize status views.
package element

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View is a materialized, renderable view instance.
//
// Views are compared by identity, so implementations should be pointers.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// Sizer is implemented by views that lay themselves out to a box.
type Sizer interface {
	SetSize(width, height int)
}

// Finder is implemented by views that expose addressable child elements.
type Finder interface {
	Child(id string) (Clickable, bool)
}

// ClickHandler runs when a clickable element is activated.
type ClickHandler func() tea.Cmd

// Clickable is a child element that can carry a click handler.
type Clickable interface {
	SetOnClick(h ClickHandler)
	Click() tea.Cmd
}

// FindChild looks up a clickable child of v by id.
func FindChild(v View, id string) (Clickable, bool) {
	if v == nil {
		return nil, false
	}
	f, ok := v.(Finder)
	if !ok {
		return nil, false
	}
	return f.Child(id)
}

// Bind sets h on the child id of v. It reports whether the child exists.
func Bind(v View, id string, h ClickHandler) bool {
	c, ok := FindChild(v, id)
	if !ok {
		return false
	}
	c.SetOnClick(h)
	return true
}

// Resize forwards a size to v when it supports it.
func Resize(v View, width, height int) {
	if s, ok := v.(Sizer); ok {
		s.SetSize(width, height)
	}
}

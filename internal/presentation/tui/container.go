// Package tui provides the main user interface model and view components.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/statusview/internal/domain/status"
	"github.com/tesso57/statusview/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/statusview/internal/presentation/tui/components/main"
	"github.com/tesso57/statusview/internal/presentation/tui/components/modal"
	"github.com/tesso57/statusview/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/statusview/internal/presentation/tui/intent"
	"github.com/tesso57/statusview/internal/presentation/tui/metrics"
	"github.com/tesso57/statusview/internal/presentation/tui/state"
	"github.com/tesso57/statusview/internal/presentation/tui/textutil"
	"github.com/tesso57/statusview/internal/presentation/tui/update"
	"github.com/tesso57/statusview/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Sidebar: m.buildSidebarProps(),
		Header:  m.buildHeaderProps(),
		Main:    m.buildMainProps(),
		Modal:   m.buildModalProps(),
		Footer:  m.buildFooterProps(),
	}
}

type legendEntry struct {
	binding key.Binding
	label   string
	status  status.ID
}

func (m *Model) legend() []legendEntry {
	k := m.state.Keys
	return []legendEntry{
		{binding: k.Content, label: "content", status: status.Of(status.Content)},
		{binding: k.Loading, label: "loading", status: status.Of(status.Loading)},
		{binding: k.Empty, label: "empty", status: status.Of(status.Empty)},
		{binding: k.Error, label: "error", status: status.Of(status.Error)},
		{binding: k.NoNetwork, label: "no network", status: status.Of(status.NoNetwork)},
		{binding: k.Other, label: intent.OtherStatus.String(), status: intent.OtherStatus},
	}
}

func (m *Model) buildSidebarProps() sidebar.Props {
	entries := make([]sidebar.Entry, 0, 6)
	for _, e := range m.legend() {
		entries = append(entries, sidebar.Entry{
			Key:    e.binding.Help().Key,
			Label:  e.label,
			Active: e.status == m.state.Status,
		})
	}
	ms := update.Measure(m.state)
	return sidebar.Props{
		Title:   "Statuses",
		Entries: entries,
		Log:     m.state.Transitions,
		Width:   ms.SidebarWidth,
		Height:  ms.Height,
		Accent:  lipgloss.Color(m.settings.Theme.Accent),
	}
}

func (m *Model) buildHeaderProps() header.Props {
	ms := update.Measure(m.state)
	width := ms.MainWidth

	name := m.state.Status.String()
	if m.state.Status.IsNone() {
		name = "starting"
	}

	var feedTitle, detail string
	if f := m.state.Feed; f != nil {
		feedTitle = textutil.Line(f.Title, width/2)
		if ago := textutil.Ago(f.FetchedAt, time.Now()); ago != "" {
			detail = "fetched " + ago
		}
	}
	if m.state.Fetching {
		detail = "fetching…"
	}

	return header.Props{
		Visible:   true,
		Status:    name,
		FeedTitle: feedTitle,
		Detail:    detail,
		Accent:    lipgloss.Color(m.settings.Theme.Accent),
	}
}

func (m *Model) buildMainProps() mainview.Props {
	ms := update.Measure(m.state)
	return mainview.Props{
		Width:  ms.MainWidth + metrics.MainLeftPadding,
		Height: ms.Height,
		Body:   m.state.Layout.View(),
	}
}

func (m *Model) buildModalProps() modal.Props {
	if m.state.Session == state.QuitView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Are you sure you want to quit?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.View(&m.state.Keys),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	return state.FooterText(m.state.Notice, m.state.Help.View(&m.state.Keys))
}

package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/statusview/internal/domain/reading"
	"github.com/tesso57/statusview/internal/domain/status"
	"github.com/tesso57/statusview/internal/presentation/tui/element"
	"github.com/tesso57/statusview/internal/presentation/tui/metrics"
	"github.com/tesso57/statusview/internal/presentation/tui/statuslayout"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session     Session
	Previous    Session
	Layout      *statuslayout.Layout
	Articles    *element.Wrapped[list.Model]
	Help        help.Model
	Keys        KeyMap
	Width       int
	Height      int
	FeedURL     string
	Feed        *reading.Feed
	Status      status.ID
	Transitions []string
	Notice      string
	Fetching    bool
}

// RecordTransition appends line to the transition log, keeping the most
// recent entries only.
func (s *ModelState) RecordTransition(line string) {
	s.Transitions = append(s.Transitions, line)
	if extra := len(s.Transitions) - metrics.TransitionLogSize; extra > 0 {
		s.Transitions = append([]string(nil), s.Transitions[extra:]...)
	}
}

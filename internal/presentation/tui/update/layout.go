package update

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/statusview/internal/presentation/tui/metrics"
	"github.com/tesso57/statusview/internal/presentation/tui/state"
)

// Metrics is the screen split computed from the terminal size.
type Metrics struct {
	SidebarWidth int
	MainWidth    int
	Height       int
	BodyHeight   int
}

// UpdateSizes resizes the status container to the main area.
func UpdateSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 || s.Layout == nil {
		return
	}
	m := Measure(s)
	s.Layout.SetSize(m.MainWidth, m.BodyHeight)
}

// Measure splits the screen into sidebar, header and container body.
func Measure(s *state.ModelState) Metrics {
	available := clampMin(s.Height-footerHeight(s), 1)
	sidebarWidth := metrics.SidebarWidth(s.Width)
	mainWidth := clampMin(s.Width-sidebarWidth-metrics.SidebarRightBorderWidth-metrics.MainLeftPadding, 1)

	return Metrics{
		SidebarWidth: sidebarWidth,
		MainWidth:    mainWidth,
		Height:       available,
		BodyHeight:   clampMin(available-metrics.HeaderLines, 1),
	}
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(state.FooterText(s.Notice, s.Help.View(&s.Keys)))
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}

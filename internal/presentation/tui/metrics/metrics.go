// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines             = 1
	SidebarMinWidth         = 24
	SidebarMaxWidth         = 32
	SidebarRightBorderWidth = 1
	MainLeftPadding         = 1
	TransitionLogSize       = 6

	ItemRightPadding  = 1
	ItemSafetyPadding = 1
)

// SidebarWidth returns the legend width for a screen of the given width.
func SidebarWidth(screen int) int {
	w := screen / 4
	if w < SidebarMinWidth {
		w = SidebarMinWidth
	}
	if w > SidebarMaxWidth {
		w = SidebarMaxWidth
	}
	if w > screen/2 {
		w = screen / 2
	}
	return w
}

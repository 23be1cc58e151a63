package view

import (
	"strings"
	"testing"

	"github.com/tesso57/statusview/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/statusview/internal/presentation/tui/components/main"
	"github.com/tesso57/statusview/internal/presentation/tui/components/modal"
	"github.com/tesso57/statusview/internal/presentation/tui/components/sidebar"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name      string
		props     Props
		wantParts []string
		skipParts []string
	}{
		{
			name: "Modal Overlay",
			props: Props{
				Modal: modal.Props{
					Visible: true,
					Kind:    modal.Help,
					Body:    "HELP_CONTENT",
					Width:   100,
					Height:  50,
				},
				Footer: "FOOTER_HELP",
			},
			wantParts: []string{"HELP_CONTENT"},
			skipParts: []string{"FOOTER_HELP"},
		},
		{
			name: "Standard Layout",
			props: Props{
				Sidebar: sidebar.Props{
					Title:   "STATUSES",
					Entries: []sidebar.Entry{{Key: "1", Label: "content", Active: true}},
					Width:   24,
					Height:  10,
				},
				Header: header.Props{
					Visible:   true,
					Status:    "content",
					FeedTitle: "FEED",
				},
				Main: mainview.Props{
					Width:  60,
					Height: 10,
					Body:   "MAIN_CONTENT",
				},
				Footer: "FOOTER_HELP",
			},
			wantParts: []string{
				"STATUSES",
				"CONTENT",
				"FEED",
				"MAIN_CONTENT",
				"FOOTER_HELP",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.props)
			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("Render() expected to contain %q", part)
				}
			}
			for _, part := range tt.skipParts {
				if strings.Contains(got, part) {
					t.Errorf("Render() should not contain %q", part)
				}
			}
		})
	}
}

package header

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name       string
		props      Props
		wantStatus string
		wantFeed   string
		wantVis    bool
	}{
		{
			name: "Visible",
			props: Props{
				Visible:   true,
				Status:    "loading",
				FeedTitle: "Example Feed",
				Detail:    "fetched 3m ago",
			},
			wantStatus: "LOADING",
			wantFeed:   "Example Feed",
			wantVis:    true,
		},
		{
			name: "Without feed",
			props: Props{
				Visible: true,
				Status:  "custom:20",
			},
			wantStatus: "CUSTOM:20",
			wantVis:    true,
		},
		{
			name: "Hidden",
			props: Props{
				Visible: false,
				Status:  "content",
			},
			wantVis: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.props)
			if !tt.wantVis {
				if got != "" {
					t.Errorf("Render() = %q, want empty string", got)
				}
				return
			}

			if !strings.Contains(got, tt.wantStatus) {
				t.Errorf("Render() = %q, want status %q", got, tt.wantStatus)
			}
			if !strings.Contains(got, tt.wantFeed) {
				t.Errorf("Render() = %q, want feed title %q", got, tt.wantFeed)
			}
			if tt.props.Detail != "" && !strings.Contains(got, tt.props.Detail) {
				t.Errorf("Render() = %q, want detail %q", got, tt.props.Detail)
			}
		})
	}
}

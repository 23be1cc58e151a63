package sidebar

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		props Props
		want  []string
		skip  []string
	}{
		{
			name: "Legend",
			props: Props{
				Title: "Statuses",
				Entries: []Entry{
					{Key: "1", Label: "content"},
					{Key: "2", Label: "loading", Active: true},
				},
				Width:  30,
				Height: 10,
			},
			want: []string{"Statuses", "content", "▸ 2", "loading"},
			skip: []string{"Transitions"},
		},
		{
			name: "With log",
			props: Props{
				Title:  "Statuses",
				Log:    []string{"none → loading"},
				Width:  30,
				Height: 10,
			},
			want: []string{"Transitions", "none → loading"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.props)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Render() = %q, want %q", got, w)
				}
			}
			for _, s := range tt.skip {
				if strings.Contains(got, s) {
					t.Errorf("Render() = %q, should not contain %q", got, s)
				}
			}
		})
	}
}

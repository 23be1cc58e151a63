package textutil

import (
	"testing"
	"time"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "collapse", text: " a \n b\tc ", width: 10, want: "a b c"},
		{name: "truncate", text: "abcdefghij", width: 6, want: "abc..."},
		{name: "zero width", text: "abc", width: 0, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Line(tt.text, tt.width); got != tt.want {
				t.Fatalf("Line(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestAgo(t *testing.T) {
	now := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		at   time.Time
		want string
	}{
		{at: time.Time{}, want: ""},
		{at: now.Add(-10 * time.Second), want: "just now"},
		{at: now.Add(-3 * time.Minute), want: "3m ago"},
		{at: now.Add(-5 * time.Hour), want: "5h ago"},
		{at: now.Add(-50 * time.Hour), want: "2d ago"},
	}
	for _, tt := range tests {
		if got := Ago(tt.at, now); got != tt.want {
			t.Errorf("Ago(%v) = %q, want %q", tt.at, got, tt.want)
		}
	}
}

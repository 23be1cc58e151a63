package settings

import (
	"testing"
	"time"

	"github.com/tesso57/statusview/internal/domain/status"
)

func TestLayoutConfig_Default(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    status.ID
		wantErr bool
	}{
		{name: "loading", value: "loading", want: status.Of(status.Loading)},
		{name: "no network", value: "no_network", want: status.Of(status.NoNetwork)},
		{name: "custom", value: "custom:20", want: status.Custom(20)},
		{name: "none", value: "", want: status.None},
		{name: "unknown", value: "sleeping", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LayoutConfig{DefaultStatus: tt.value}.Default()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Default() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("Default() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFetchConfig_Timeout(t *testing.T) {
	if got := (FetchConfig{TimeoutSeconds: 5}).Timeout(); got != 5*time.Second {
		t.Fatalf("Timeout() = %v, want 5s", got)
	}
	if got := (FetchConfig{TimeoutSeconds: -1}).Timeout(); got != 0 {
		t.Fatalf("Timeout() = %v, want 0", got)
	}
}

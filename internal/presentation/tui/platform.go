package tui

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnsupportedPlatform is returned when no browser launcher is known.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// OSOpenCmd builds the command opening url. Tests replace it.
var OSOpenCmd = func(url string) *exec.Cmd {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url) //nolint:gosec
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:gosec
	case "darwin":
		return exec.Command("open", url) //nolint:gosec
	default:
		return nil
	}
}

func openBrowser(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return errors.New("empty link")
	}
	cmd := OSOpenCmd(url)
	if cmd == nil {
		return ErrUnsupportedPlatform
	}
	return cmd.Start()
}

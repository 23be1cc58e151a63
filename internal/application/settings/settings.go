// Package settings defines application-level configuration data.
package settings

import (
	"time"

	"github.com/tesso57/statusview/internal/domain/status"
)

// LayoutConfig selects the templates of the status container and the
// status it shows when first mounted. Empty template ids use the built-ins.
type LayoutConfig struct {
	ContentTemplate   string `yaml:"content_template" kong:"help='Template id for the content view (empty keeps the list)'"`
	LoadingTemplate   string `yaml:"loading_template" kong:"help='Template id for the loading view'"`
	EmptyTemplate     string `yaml:"empty_template" kong:"help='Template id for the empty view'"`
	ErrorTemplate     string `yaml:"error_template" kong:"help='Template id for the error view'"`
	NoNetworkTemplate string `yaml:"no_network_template" kong:"help='Template id for the no-network view'"`
	DefaultStatus     string `yaml:"default_status" kong:"help='Status shown on start (content/loading/empty/error/no_network/custom:N/none)',default='loading'"`
}

// Default returns the parsed default status. Unknown names yield an error.
func (c LayoutConfig) Default() (status.ID, error) {
	return status.Parse(c.DefaultStatus)
}

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up        string `yaml:"up" kong:"help='Up key',default='k'"`
	Down      string `yaml:"down" kong:"help='Down key',default='j'"`
	Open      string `yaml:"open" kong:"help='Open selected item key',default='enter'"`
	Content   string `yaml:"content" kong:"help='Show content key',default='1'"`
	Loading   string `yaml:"loading" kong:"help='Show loading key',default='2'"`
	Empty     string `yaml:"empty" kong:"help='Show empty key',default='3'"`
	Error     string `yaml:"error" kong:"help='Show error key',default='4'"`
	NoNetwork string `yaml:"no_network" kong:"help='Show no-network key',default='5'"`
	Other     string `yaml:"other" kong:"help='Show custom status key',default='6'"`
	Reload    string `yaml:"reload" kong:"help='Reload key',default='ctrl+r'"`
	Help      string `yaml:"help" kong:"help='Toggle help key',default='?'"`
	Quit      string `yaml:"quit" kong:"help='Quit key',default='q'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent   string `yaml:"accent" kong:"help='Accent color',default='205'"`
	Muted    string `yaml:"muted" kong:"help='Muted text color',default='244'"`
	FeedName string `yaml:"feed_name" kong:"help='Feed name color',default='244'"`
}

// FetchConfig controls the demo data operation.
type FetchConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds" kong:"help='Fetch timeout in seconds',default='10'"`
}

// Timeout returns the fetch timeout. Non-positive values disable it.
func (c FetchConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogConfig defines the log sink.
type LogConfig struct {
	Level string `yaml:"level" kong:"help='Log level (debug/info/warn/error/off)',default='info'"`
	File  string `yaml:"file" kong:"help='Log file path'"`
}

// Settings represents the application configuration.
type Settings struct {
	Feed         string       `yaml:"feed" kong:"help='RSS/Atom feed URL',default='https://news.ycombinator.com/rss'"`
	Layout       LayoutConfig `yaml:"layout" kong:"embed,prefix='layout.'"`
	KeyMap       KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme        ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	Fetch        FetchConfig  `yaml:"fetch" kong:"embed,prefix='fetch.'"`
	Log          LogConfig    `yaml:"log" kong:"embed,prefix='log.'"`
	CacheFile    string       `yaml:"cache_file" kong:"help='Feed cache database path'"`
	TemplatesDir string       `yaml:"templates_dir" kong:"help='Directory of extra layout templates'"`
}

// Package settings defines application-level configuration data.
package settings

import "time"

// Failure policies for a poll cycle.
const (
	// PolicyBatch drops the whole cycle when any feed fails.
	PolicyBatch = "batch"
	// PolicyIsolated merges the feeds that succeeded.
	PolicyIsolated = "isolated"
)

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up           string `yaml:"up" kong:"help='Up key',default='k,up'"`
	Down         string `yaml:"down" kong:"help='Down key',default='j,down'"`
	Left         string `yaml:"left" kong:"help='Left/Back key',default='h,left'"`
	Right        string `yaml:"right" kong:"help='Right/Enter key',default='l,right'"`
	Open         string `yaml:"open" kong:"help='Preview post key',default='enter'"`
	OpenBrowser  string `yaml:"open_browser" kong:"help='Open post link in browser key',default='o'"`
	Back         string `yaml:"back" kong:"help='Back key',default='esc'"`
	Quit         string `yaml:"quit" kong:"help='Quit key',default='q'"`
	AddFeed      string `yaml:"add_feed" kong:"help='Add feed key',default='a'"`
	DismissError string `yaml:"dismiss_error" kong:"help='Dismiss error banner key',default='x'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	FeedName string `yaml:"feed_name" kong:"help='Feed name color',default='244'"`
	Invalid  string `yaml:"invalid" kong:"help='Invalid input color',default='196'"`
}

// PollConfig controls the background poll loop.
type PollConfig struct {
	Interval      time.Duration `yaml:"interval" kong:"help='Delay between poll cycles',default='10s'"`
	FailurePolicy string        `yaml:"failure_policy" kong:"help='Poll failure policy (batch/isolated)',default='batch',enum='batch,isolated'"`
	FetchTimeout  time.Duration `yaml:"fetch_timeout" kong:"help='Per-feed fetch timeout, 0 disables',default='0s'"`
}

// LogConfig controls log output.
type LogConfig struct {
	File  string `yaml:"file" kong:"help='Log file path'"`
	Level string `yaml:"level" kong:"help='Log level (trace/debug/info/warn/error)',default='info'"`
}

// Settings represents the application configuration.
type Settings struct {
	Feeds    []string     `yaml:"feeds" kong:"help='RSS/Atom feed URLs subscribed at startup'"`
	Language string       `yaml:"language" kong:"help='Message language',default='en'"`
	Poll     PollConfig   `yaml:"poll" kong:"embed,prefix='poll.'"`
	Log      LogConfig    `yaml:"log" kong:"embed,prefix='log.'"`
	KeyMap   KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme    ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
}

// PollInterval returns the configured interval, falling back to 10s.
func (s Settings) PollInterval() time.Duration {
	if s.Poll.Interval <= 0 {
		return 10 * time.Second
	}
	return s.Poll.Interval
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

var (
	cfgFile     = "icsterm/config.toml"
	logFile     = "icsterm/icsterm.log"
	chatLogFile = "icsterm/chat.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConsoleConfig controls how chat text is laid out.
type ConsoleConfig struct {
	TimestampFormat string `toml:"timestamp_format"` // Go time layout, empty disables timestamps
	MaxLines        int    `toml:"max_lines"`
	Prompt          string `toml:"prompt"` // prepended to outgoing text when prepend is on
}

// ConfigColors holds 256-color palette indices.
type ConfigColors struct {
	Text     int `toml:"text"`
	Link     int `toml:"link"`
	Tell     int `toml:"tell"`
	Internal int `toml:"internal"`
	Outbound int `toml:"outbound"`
	Toolbar  int `toml:"toolbar"`
}

// BughouseConfig holds settings for the bughouse games view.
type BughouseConfig struct {
	PollIntervalSeconds int `toml:"poll_interval_seconds"`
}

// SoundConfig selects the sound player.
type SoundConfig struct {
	ProcessName string `toml:"process_name"` // external player, overrides the platform default
	TellSound   string `toml:"tell_sound"`   // file played on personal and partner tells
}

// BrowserConfig selects how URLs are opened.
type BrowserConfig struct {
	Command string `toml:"command"` // empty uses the platform opener
}

// ServerConfig describes the chess server being used.
type ServerConfig struct {
	Kind string `toml:"kind"` // "fics" enables FICS-only actions
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	Path      string `toml:"path"`
}

// KeyBinding binds a key name such as "Ctrl-L" or "F5" to an action name.
type KeyBinding struct {
	Key    string `toml:"key"`
	Action string `toml:"action"`
}

type Config struct {
	Console  ConsoleConfig  `toml:"console"`
	Colors   ConfigColors   `toml:"colors"`
	Bughouse BughouseConfig `toml:"bughouse"`
	Sound    SoundConfig    `toml:"sound"`
	Browser  BrowserConfig  `toml:"browser"`
	Server   ServerConfig   `toml:"server"`
	Log      LogConfig      `toml:"log"`
	Keys     []KeyBinding   `toml:"keys"`
}

func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		// No config file yet, run on defaults.
		absPath = ""
	}
	return Load(absPath)
}

// Load reads the config file at path on top of the defaults. Key bindings in
// the file replace the default bindings.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	config.Keys = nil
	if path != "" {
		if err := readCfgFile(path, &config); err != nil {
			return nil, err
		}
	}
	if config.Keys == nil {
		config.Keys = append([]KeyBinding(nil), DefaultConfig.Keys...)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Bughouse.PollIntervalSeconds < 1 {
		return &InvalidConfig{"bughouse poll interval must be at least one second"}
	}
	if c.Console.MaxLines < 1 {
		return &InvalidConfig{"console max lines must be positive"}
	}
	for _, n := range []int{c.Colors.Text, c.Colors.Link, c.Colors.Tell, c.Colors.Internal, c.Colors.Outbound, c.Colors.Toolbar} {
		if n < 0 || n > 255 {
			return &InvalidConfig{fmt.Sprintf("color %d is outside the 256 color palette", n)}
		}
	}
	return nil
}

// PollInterval returns the bughouse refresh interval.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Bughouse.PollIntervalSeconds) * time.Second
}

// IsFics reports whether the configured server is FICS.
func (c *Config) IsFics() bool {
	return c.Server.Kind == "fics"
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

// LogFile returns the diagnostic log path, creating its directory.
func (c *Config) LogFile() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	return xdg.DataFile(logFile)
}

// ChatLogFile returns the chat history path, creating its directory.
func ChatLogFile() (string, error) {
	return xdg.DataFile(chatLogFile)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	data, err := toml.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(filePath, data, perm); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}

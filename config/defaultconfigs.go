package config

var DefaultConfig Config

func init() {
	DefaultConfig = Config{
		Console: ConsoleConfig{
			TimestampFormat: "[15:04] ",
			MaxLines:        5000,
			Prompt:          "tell partner ",
		},
		Colors: ConfigColors{
			Text:     252,
			Link:     75,
			Tell:     214,
			Internal: 245,
			Outbound: 109,
			Toolbar:  60,
		},
		Bughouse: BughouseConfig{
			PollIntervalSeconds: 5,
		},
		Server: ServerConfig{
			Kind: "fics",
		},
		Log: LogConfig{
			Verbosity: 1,
		},
		Keys: []KeyBinding{
			{Key: "Ctrl-L", Action: "Clear"},
			{Key: "F2", Action: "Auto Scroll"},
			{Key: "F3", Action: "Prepend"},
			{Key: "F4", Action: "Bughouse Games"},
			{Key: "Alt-s", Action: "Seek"},
		},
	}
}

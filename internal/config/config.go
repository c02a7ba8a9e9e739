// Package config loads the ambient runtime options. Gameplay constants
// (canvas size, tick rate, glyphs) are compiled in; only sound, logging and
// debug overlays are configurable.
package config

// Config holds the runtime options.
type Config struct {
	// Sound enables the speaker one-shots for apple and game-over events.
	Sound bool `yaml:"sound"`

	// ShowInputTrace draws the last observed input event on screen.
	ShowInputTrace bool `yaml:"show_input_trace"`

	Log LogConfig `yaml:"log"`
}

// LogConfig controls the session log. The terminal is owned by the game
// while it runs, so logs go to a file, never to stdout or stderr.
type LogConfig struct {
	// Path of the log file. Empty disables logging.
	Path string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Sound:          true,
		ShowInputTrace: false,
	}
}

package config

import "time"

// Theme modes accepted by Settings.Theme.Mode.
const (
	ModeLight  = "light"
	ModeDark   = "dark"
	ModeSystem = "system"
)

// Settings is the engine configuration read from an optional sdui.yaml.
type Settings struct {
	Theme    ThemeSettings    `yaml:"theme"`
	Render   RenderSettings   `yaml:"render"`
	Generate GenerateSettings `yaml:"generate"`
	Log      LogSettings      `yaml:"log"`
}

// ThemeSettings selects the active variant and optional token overrides.
type ThemeSettings struct {
	Mode   string `yaml:"mode" validate:"required,oneof=light dark system"`
	Tokens string `yaml:"tokens,omitempty"`
}

// RenderSettings bounds the dispatcher.
type RenderSettings struct {
	MaxDepth int `yaml:"maxDepth" validate:"min=1,max=256"`
	// Width is the paint width in cells. Zero means detect from the terminal.
	Width int `yaml:"width,omitempty" validate:"min=0,max=1000"`
}

// GenerateSettings configures the keyword generator.
type GenerateSettings struct {
	Latency time.Duration `yaml:"latency" validate:"min=0,max=1m"`
}

// LogSettings configures the zerolog-backed logger.
type LogSettings struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Human bool   `yaml:"human"`
}

// Default returns the settings used when no file is supplied.
func Default() Settings {
	return Settings{
		Theme:    ThemeSettings{Mode: ModeSystem},
		Render:   RenderSettings{MaxDepth: 64},
		Generate: GenerateSettings{Latency: 2 * time.Second},
		Log:      LogSettings{Level: "info", Human: true},
	}
}

// ResolveDark reports whether the dark variant should be selected. detect is
// consulted only in system mode and may be nil, in which case light wins.
func (s Settings) ResolveDark(detect func() bool) bool {
	switch s.Theme.Mode {
	case ModeDark:
		return true
	case ModeSystem:
		return detect != nil && detect()
	default:
		return false
	}
}

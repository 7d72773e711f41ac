package config

import "github.com/pthm/hxlink"

// LogFormat selects the log encoder.
type LogFormat string

const (
	LogJSON    LogFormat = "json"
	LogConsole LogFormat = "console"
)

// Config is the hxlink tool configuration, corresponding to hxlink.yml.
type Config struct {
	Addr      string    `yaml:"addr" koanf:"addr" validate:"required,listen_addr"`
	LogLevel  string    `yaml:"log_level" koanf:"log_level" validate:"required,oneof=trace debug info warn error"`
	LogFormat LogFormat `yaml:"log_format" koanf:"log_format" validate:"required,oneof=json console"`
	// Key signs attribute tokens. Empty means a random per-process key.
	Key      string    `yaml:"key,omitempty" koanf:"key" validate:"omitempty,min=16"`
	Styles   string    `yaml:"styles,omitempty" koanf:"styles"`
	IconDirs []string  `yaml:"icon_dirs,omitempty" koanf:"icon_dirs" validate:"dive,required"`
	Fixtures []Fixture `yaml:"fixtures,omitempty" koanf:"fixtures" validate:"unique=Name,dive"`
}

// Fixture is a named ods-hyperlink instance used by the render and serve
// commands.
type Fixture struct {
	Name        string `yaml:"name" koanf:"name" validate:"required,fixture_name"`
	Href        string `yaml:"href,omitempty" koanf:"href"`
	Role        string `yaml:"role,omitempty" koanf:"role"`
	Target      string `yaml:"target,omitempty" koanf:"target"`
	Rel         string `yaml:"rel,omitempty" koanf:"rel"`
	Download    bool   `yaml:"download,omitempty" koanf:"download"`
	Inline      bool   `yaml:"inline,omitempty" koanf:"inline"`
	DarkTheme   bool   `yaml:"darktheme,omitempty" koanf:"darktheme"`
	TabIsActive string `yaml:"tabisactive,omitempty" koanf:"tabisactive" validate:"omitempty,oneof=true false"`
	Label       string `yaml:"label,omitempty" koanf:"label"`
}

// Props converts the fixture to element attributes.
func (f Fixture) Props() hxlink.Props {
	return hxlink.Props{
		Href:      f.Href,
		Role:      hxlink.Role(f.Role),
		Target:    f.Target,
		Rel:       f.Rel,
		Download:  f.Download,
		Inline:    f.Inline,
		DarkTheme: f.DarkTheme,
		TabActive: hxlink.ParseTabState(f.TabIsActive),
		Label:     f.Label,
	}
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Addr:      ":8080",
		LogLevel:  "info",
		LogFormat: LogConsole,
		Fixtures: []Fixture{
			{Name: "external", Href: "https://example.com", Target: hxlink.TargetBlank, Label: "Example"},
			{Name: "button", Role: string(hxlink.RoleButton), Label: "Press me"},
			{Name: "tab", Role: string(hxlink.RoleTab), TabIsActive: "true", Label: "Overview"},
		},
	}
}

// LogOptions maps the logging settings onto hxlink.LogOptions.
func (c *Config) LogOptions() hxlink.LogOptions {
	return hxlink.LogOptions{
		Level:         c.LogLevel,
		HumanReadable: c.LogFormat == LogConsole,
	}
}

// Fixture returns the fixture called name.
func (c *Config) Fixture(name string) (Fixture, bool) {
	for _, f := range c.Fixtures {
		if f.Name == name {
			return f, true
		}
	}
	return Fixture{}, false
}

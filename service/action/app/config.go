package app

// Config represents app verb settings
type Config struct {
	Name       string   `yaml:"name,omitempty" json:"name,omitempty"`
	Version    string   `yaml:"version,omitempty" json:"version,omitempty"`
	Contact    string   `yaml:"contact,omitempty" json:"contact,omitempty"`
	Features   []string `yaml:"features,omitempty" json:"features,omitempty"`
	Themes     []string `yaml:"themes,omitempty" json:"themes,omitempty"`
	Effects    []string `yaml:"effects,omitempty" json:"effects,omitempty"`
	Wallpapers []string `yaml:"wallpapers,omitempty" json:"wallpapers,omitempty"`
	Games      []string `yaml:"games,omitempty" json:"games,omitempty"`
}

// DefaultConfig returns default app settings
func DefaultConfig() *Config {
	return &Config{
		Name:    "Pixel Pusher OS",
		Version: "2.0.0",
		Contact: "Questions or feedback? Reach the Pixel Pusher team at support@pixelpusher.local",
		Features: []string{
			"Professional desktop interface",
			"Built-in terminal with commands",
			"File explorer with media support",
			"Gaming center with arcade games",
			"Music player for audio files",
			"Customizable themes and settings",
			"System monitoring tools",
		},
		Themes:     []string{"default", "blue", "green", "red", "purple"},
		Effects:    []string{"matrix", "particles", "stars"},
		Wallpapers: []string{"default", "gradient", "mountains", "ocean", "space"},
		Games:      []string{"snake", "dino", "memory", "village"},
	}
}

// Merge fills empty fields from defaults
func (c *Config) Merge(defaults *Config) {
	if c.Name == "" {
		c.Name = defaults.Name
	}
	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Contact == "" {
		c.Contact = defaults.Contact
	}
	if len(c.Features) == 0 {
		c.Features = defaults.Features
	}
	if len(c.Themes) == 0 {
		c.Themes = defaults.Themes
	}
	if len(c.Effects) == 0 {
		c.Effects = defaults.Effects
	}
	if len(c.Wallpapers) == 0 {
		c.Wallpapers = defaults.Wallpapers
	}
	if len(c.Games) == 0 {
		c.Games = defaults.Games
	}
}

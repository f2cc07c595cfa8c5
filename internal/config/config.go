package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"radiorove/internal/domain"
	"radiorove/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int           `toml:"version"`
	UISettings UISettings    `toml:"ui"`
	Groups     []GroupConfig `toml:"groups"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Orientation    domain.Orientation   `toml:"orientation"`
	TextDirection  domain.TextDirection `toml:"text_direction"`
	SelectedMark   string               `toml:"selected_mark"`
	UnselectedMark string               `toml:"unselected_mark"`
	AutosaveOnExit bool                 `toml:"autosave_on_exit"`
}

// GroupConfig describes one radio group shown by the demo app
type GroupConfig struct {
	Name     string         `toml:"name"`
	Value    string         `toml:"value,omitempty"` // initially selected option ID
	ReadOnly bool           `toml:"read_only,omitempty"`
	Options  []OptionConfig `toml:"options"`
}

// OptionConfig describes one option within a group
type OptionConfig struct {
	ID       string `toml:"id"`
	Label    string `toml:"label"`
	Disabled bool   `toml:"disabled,omitempty"`
	ReadOnly bool   `toml:"read_only,omitempty"`
}

// ToOptions converts the configured options to domain options.
func (g GroupConfig) ToOptions() []domain.Option {
	opts := make([]domain.Option, len(g.Options))
	for i, o := range g.Options {
		label := o.Label
		if label == "" {
			label = o.ID
		}
		opts[i] = domain.Option{
			ID:       o.ID,
			Label:    label,
			Disabled: o.Disabled,
			ReadOnly: o.ReadOnly,
		}
	}
	return opts
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	// Create radiorove config directory
	appDir := filepath.Join(configDir, "radiorove")
	os.MkdirAll(appDir, 0755)

	return &configService{
		filePath: filepath.Join(appDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	// Return default config if file doesn't exist
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publishLoaded(cfg)
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Fill in anything the file left out
	applyDefaults(&cfg)

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus == nil {
		return
	}
	cs.bus.Publish(eventbus.ConfigLoadedEvent{
		Orientation:   cfg.UISettings.Orientation,
		TextDirection: cfg.UISettings.TextDirection,
		Groups:        len(cfg.Groups),
	})
}

func applyDefaults(cfg *Config) {
	if cfg.UISettings.Orientation == "" {
		cfg.UISettings.Orientation = domain.OrientationVertical
	}
	if cfg.UISettings.TextDirection == "" {
		cfg.UISettings.TextDirection = domain.TextDirectionLTR
	}
	if cfg.UISettings.SelectedMark == "" {
		cfg.UISettings.SelectedMark = "◉"
	}
	if cfg.UISettings.UnselectedMark == "" {
		cfg.UISettings.UnselectedMark = "○"
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			Orientation:    domain.OrientationVertical,
			TextDirection:  domain.TextDirectionLTR,
			SelectedMark:   "◉",
			UnselectedMark: "○",
			AutosaveOnExit: true,
		},
		Groups: []GroupConfig{
			{
				Name: "pets",
				Options: []OptionConfig{
					{ID: "dogs", Label: "Dogs"},
					{ID: "cats", Label: "Cats"},
					{ID: "dragons", Label: "Dragons"},
				},
			},
			{
				Name: "meal",
				Options: []OptionConfig{
					{ID: "breakfast", Label: "Breakfast"},
					{ID: "lunch", Label: "Lunch", Disabled: true},
					{ID: "dinner", Label: "Dinner"},
				},
			},
		},
	}
}

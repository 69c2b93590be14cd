package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config struct to hold the configuration settings
type Config struct {
	Service    ServiceConfig    `yaml:"service"`
	Log        LogConfig        `yaml:"log"`
	Scoreboard ScoreboardConfig `yaml:"scoreboard"`
	Inputs     []InputConfig    `yaml:"inputs"`
	Displays   []DisplayConfig  `yaml:"displays"`
	Heartbeat  HeartbeatConfig  `yaml:"heartbeat"`
	Health     HealthConfig     `yaml:"health"`
	Tracing    TracingConfig    `yaml:"tracing"`
}

// ServiceConfig holds general service configuration
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// LogConfig selects the slog handler and level.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file"`
}

// ScoreboardConfig holds the timing of the input pipeline.
type ScoreboardConfig struct {
	DebounceWindow time.Duration `yaml:"debounce_window"`
	PollInterval   time.Duration `yaml:"poll_interval"`
}

// InputConfig binds one physical button to a (player, delta) pair.
type InputConfig struct {
	Name   string `yaml:"name"`
	Pin    int    `yaml:"pin"`
	Key    string `yaml:"key"`
	Player int    `yaml:"player"`
	Delta  int    `yaml:"delta"`
}

// DisplayConfig describes one OLED and the bus it hangs off.
type DisplayConfig struct {
	Name    string `yaml:"name"`
	Label   string `yaml:"label"`
	Bus     int    `yaml:"bus"`
	Address uint16 `yaml:"address"`
	SDA     int    `yaml:"sda"`
	SCL     int    `yaml:"scl"`
	Width   int16  `yaml:"width"`
	Height  int16  `yaml:"height"`
}

// HeartbeatConfig holds the on-board LED blink timing.
type HeartbeatConfig struct {
	Pin int           `yaml:"pin"`
	On  time.Duration `yaml:"on"`
	Off time.Duration `yaml:"off"`
}

// HealthConfig holds the simulator's HTTP health address. Empty disables it.
type HealthConfig struct {
	Addr string `yaml:"addr"`
}

// TracingConfig controls the span logger. A zero sample rate means sample everything.
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate float64 `yaml:"sample_rate"`
}

const (
	DefaultDebounceWindow = 250 * time.Millisecond
	DefaultPollInterval   = 10 * time.Millisecond
	DefaultHeartbeatOn    = 250 * time.Millisecond
	DefaultHeartbeatOff   = 1500 * time.Millisecond

	DefaultDisplayAddress uint16 = 0x3C
	DefaultDisplayWidth   int16  = 128
	DefaultDisplayHeight  int16  = 64
)

// Default returns the wiring of the reference board: buttons on GP16-19,
// one SSD1306 per I2C controller, LED on GP25.
func Default() *Config {
	cfg := &Config{
		Service: ServiceConfig{Name: "pingpong-scoreboard", Version: "dev"},
		Log:     LogConfig{Level: "info", Format: "text"},
		Inputs: []InputConfig{
			{Name: "p1_sub", Pin: 16, Key: "a", Player: 1, Delta: -1},
			{Name: "p1_add", Pin: 17, Key: "s", Player: 1, Delta: 1},
			{Name: "p2_sub", Pin: 18, Key: "k", Player: 2, Delta: -1},
			{Name: "p2_add", Pin: 19, Key: "l", Player: 2, Delta: 1},
		},
		Displays: []DisplayConfig{
			{Name: "oled1", Label: "Player 1", Bus: 0, SDA: 0, SCL: 1},
			{Name: "oled2", Label: "Player 2", Bus: 1, SDA: 2, SCL: 3},
		},
		Heartbeat: HeartbeatConfig{Pin: 25},
		Tracing:   TracingConfig{SampleRate: 1},
	}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Failed to read config file: %v\n", err)
		fmt.Println("Falling back to built-in defaults and environment variables...")
		cfg := Default()
		if err := loadConfigFromEnv(cfg); err != nil {
			return nil, err
		}
		return cfg, cfg.Validate()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if len(cfg.Inputs) == 0 {
		cfg.Inputs = Default().Inputs
	}
	if len(cfg.Displays) == 0 {
		cfg.Displays = Default().Displays
	}
	if err := loadConfigFromEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadConfigFromEnv overrides file values with environment variables when set.
func loadConfigFromEnv(cfg *Config) error {
	if v := os.Getenv("SERVICE_NAME"); v != "" {
		cfg.Service.Name = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("HEALTH_ADDR"); v != "" {
		cfg.Health.Addr = v
	}
	if v := os.Getenv("TRACING_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid TRACING_ENABLED %q: %w", v, err)
		}
		cfg.Tracing.Enabled = enabled
	}
	if v := os.Getenv("TRACING_SAMPLE_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid TRACING_SAMPLE_RATE %q: %w", v, err)
		}
		cfg.Tracing.SampleRate = rate
	}
	if v := os.Getenv("SCOREBOARD_DEBOUNCE_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SCOREBOARD_DEBOUNCE_WINDOW %q: %w", v, err)
		}
		cfg.Scoreboard.DebounceWindow = d
	}
	if v := os.Getenv("SCOREBOARD_POLL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SCOREBOARD_POLL_INTERVAL %q: %w", v, err)
		}
		cfg.Scoreboard.PollInterval = d
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = "pingpong-scoreboard"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Scoreboard.DebounceWindow == 0 {
		c.Scoreboard.DebounceWindow = DefaultDebounceWindow
	}
	if c.Scoreboard.PollInterval == 0 {
		c.Scoreboard.PollInterval = DefaultPollInterval
	}
	if c.Heartbeat.On == 0 {
		c.Heartbeat.On = DefaultHeartbeatOn
	}
	if c.Heartbeat.Off == 0 {
		c.Heartbeat.Off = DefaultHeartbeatOff
	}
	if c.Tracing.SampleRate == 0 {
		c.Tracing.SampleRate = 1
	}
	for i := range c.Displays {
		d := &c.Displays[i]
		if d.Address == 0 {
			d.Address = DefaultDisplayAddress
		}
		if d.Width == 0 {
			d.Width = DefaultDisplayWidth
		}
		if d.Height == 0 {
			d.Height = DefaultDisplayHeight
		}
		if d.Name == "" {
			d.Name = fmt.Sprintf("display%d", i+1)
		}
	}
}

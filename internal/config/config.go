// Package config provides configuration types and defaults for valentine.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/valentine/internal/sequence"
)

// Config holds all configuration options for valentine.
type Config struct {
	Variant string        `mapstructure:"variant"`
	Debug   bool          `mapstructure:"debug"`
	LogFile string        `mapstructure:"log_file"`
	Script  ScriptConfig  `mapstructure:"script"`
	Timing  TimingConfig  `mapstructure:"timing"`
	Audio   AudioConfig   `mapstructure:"audio"`
	History HistoryConfig `mapstructure:"history"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Theme   ThemeConfig   `mapstructure:"theme"`
}

// ScriptConfig points at a custom greeting script.
type ScriptConfig struct {
	// Path to a YAML script. Empty uses the built-in greeting.
	Path string `mapstructure:"path"`
	// Watch reloads the script when the file changes.
	Watch bool `mapstructure:"watch"`
}

// TimingConfig holds every delay of the sequence.
type TimingConfig struct {
	EnterThoughts time.Duration `mapstructure:"enter_thoughts"`
	EnterGame     time.Duration `mapstructure:"enter_game"`
	EnterBridge   time.Duration `mapstructure:"enter_bridge"`
	EnterAsk      time.Duration `mapstructure:"enter_ask"`
	OverlayEnd    time.Duration `mapstructure:"overlay_end"`
	RevealMessage time.Duration `mapstructure:"reveal_message"`
	FadeStep      float64       `mapstructure:"fade_step"`
	FadeInterval  time.Duration `mapstructure:"fade_interval"`
	// Scale multiplies every delay. 1 keeps them as configured.
	Scale float64 `mapstructure:"scale"`
}

// TrackConfig selects the file behind one music track.
type TrackConfig struct {
	File string `mapstructure:"file"` // .mp3 or .wav; empty uses the built-in music
	Loop bool   `mapstructure:"loop"`
}

// AudioConfig holds playback options.
type AudioConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	SampleRate  int           `mapstructure:"sample_rate"`
	Buffer      time.Duration `mapstructure:"buffer"`
	IdleVolume  float64       `mapstructure:"idle_volume"`
	BloomVolume float64       `mapstructure:"bloom_volume"`
	Idle        TrackConfig   `mapstructure:"idle"`
	Bloom       TrackConfig   `mapstructure:"bloom"`
	SFX         bool          `mapstructure:"sfx"`
}

// HistoryConfig controls the viewing log.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DBPath  string `mapstructure:"db_path"` // empty uses ~/.config/valentine/valentine.db
}

// Tracing exporters.
const (
	ExporterFile = "file"
	ExporterOTLP = "otlp"
)

// TracingConfig controls OpenTelemetry export.
type TracingConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Exporter string `mapstructure:"exporter"` // "file" or "otlp"
	Endpoint string `mapstructure:"endpoint"` // otlp gRPC endpoint
	File     string `mapstructure:"file"`     // file exporter output
	Insecure bool   `mapstructure:"insecure"`
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "sunset", "midnight", "paper"
	Preset string `mapstructure:"preset"`

	// Colors allows overriding individual color tokens.
	// Keys use dot notation: "petal.fill", "text.primary", etc.
	Colors map[string]string `mapstructure:"colors"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	t := sequence.DefaultTimings()
	return Config{
		Variant: string(sequence.VariantFull),
		Timing: TimingConfig{
			EnterThoughts: t.EnterThoughts,
			EnterGame:     t.EnterGame,
			EnterBridge:   t.EnterBridge,
			EnterAsk:      t.EnterAsk,
			OverlayEnd:    t.OverlayEnd,
			RevealMessage: t.RevealMessage,
			FadeStep:      t.FadeStep,
			FadeInterval:  t.FadeInterval,
			Scale:         1,
		},
		Audio: AudioConfig{
			Enabled:     true,
			SampleRate:  44100,
			Buffer:      100 * time.Millisecond,
			IdleVolume:  t.IdleVolume,
			BloomVolume: t.BloomTarget,
			Idle:        TrackConfig{Loop: true},
			Bloom:       TrackConfig{Loop: false},
			SFX:         true,
		},
		History: HistoryConfig{Enabled: true},
		Tracing: TracingConfig{
			Exporter: ExporterFile,
			Endpoint: "localhost:4317",
			Insecure: true,
		},
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	var errs []error
	if _, ok := sequence.ParseVariant(c.Variant); !ok && c.Variant != "" {
		errs = append(errs, fmt.Errorf("variant: unknown variant %q", c.Variant))
	}
	for name, d := range map[string]time.Duration{
		"timing.enter_thoughts": c.Timing.EnterThoughts,
		"timing.enter_game":     c.Timing.EnterGame,
		"timing.enter_bridge":   c.Timing.EnterBridge,
		"timing.enter_ask":      c.Timing.EnterAsk,
		"timing.overlay_end":    c.Timing.OverlayEnd,
		"timing.reveal_message": c.Timing.RevealMessage,
	} {
		if d < 0 {
			errs = append(errs, fmt.Errorf("%s: must not be negative, got %s", name, d))
		}
	}
	if c.Timing.FadeStep < 0 || c.Timing.FadeStep > 1 {
		errs = append(errs, fmt.Errorf("timing.fade_step: must be in [0, 1], got %g", c.Timing.FadeStep))
	}
	if c.Timing.Scale < 0 {
		errs = append(errs, fmt.Errorf("timing.scale: must not be negative, got %g", c.Timing.Scale))
	}
	for name, v := range map[string]float64{
		"audio.idle_volume":  c.Audio.IdleVolume,
		"audio.bloom_volume": c.Audio.BloomVolume,
	} {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s: must be in [0, 1], got %g", name, v))
		}
	}
	if c.Audio.SampleRate < 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate: must not be negative, got %d", c.Audio.SampleRate))
	}
	if c.Tracing.Enabled {
		switch c.Tracing.Exporter {
		case ExporterFile, ExporterOTLP:
		default:
			errs = append(errs, fmt.Errorf("tracing.exporter: unknown exporter %q", c.Tracing.Exporter))
		}
		if c.Tracing.Exporter == ExporterOTLP && c.Tracing.Endpoint == "" {
			errs = append(errs, errors.New("tracing.endpoint: required for the otlp exporter"))
		}
	}
	return errors.Join(errs...)
}

// Timings converts the timing and audio sections to sequence timings.
// Zero values fall back to the defaults.
func (c Config) Timings() sequence.Timings {
	t := sequence.DefaultTimings()
	set := func(dst *time.Duration, v time.Duration) {
		if v > 0 {
			*dst = v
		}
	}
	set(&t.EnterThoughts, c.Timing.EnterThoughts)
	set(&t.EnterGame, c.Timing.EnterGame)
	set(&t.EnterBridge, c.Timing.EnterBridge)
	set(&t.EnterAsk, c.Timing.EnterAsk)
	set(&t.OverlayEnd, c.Timing.OverlayEnd)
	set(&t.RevealMessage, c.Timing.RevealMessage)
	set(&t.FadeInterval, c.Timing.FadeInterval)
	if c.Timing.FadeStep > 0 {
		t.FadeStep = c.Timing.FadeStep
	}
	if c.Audio.IdleVolume > 0 {
		t.IdleVolume = c.Audio.IdleVolume
	}
	if c.Audio.BloomVolume > 0 {
		t.BloomTarget = c.Audio.BloomVolume
	}
	if c.Timing.Scale > 0 && c.Timing.Scale != 1 {
		t = t.Scale(c.Timing.Scale)
	}
	return t
}

// DefaultDir is where config, history and logs live unless overridden.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".valentine"
	}
	return filepath.Join(home, ".config", "valentine")
}

// HistoryPath resolves the history database location.
func (c Config) HistoryPath() string {
	if c.History.DBPath != "" {
		return c.History.DBPath
	}
	return filepath.Join(DefaultDir(), "valentine.db")
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Valentine Configuration

# Which greeting to play: full, rose or garden
# (run 'valentine variants' to see them all)
variant: full

# Write a debug log (the terminal belongs to the greeting while it runs)
debug: false
# log_file: /tmp/valentine.log

# Greeting text. Leave path empty for the built-in script.
# Run 'valentine script' to preview the active one.
script:
  # path: ~/valentine.yaml
  watch: false  # Reload the script while the greeting is running

# Delays between scenes
timing:
  enter_thoughts: 1s
  enter_game: 1s
  enter_bridge: 1500ms
  enter_ask: 1500ms
  overlay_end: 3s
  reveal_message: 6s
  fade_step: 0.05
  fade_interval: 100ms
  scale: 1  # 0.25 plays everything four times faster

# Music and sound effects
audio:
  enabled: true
  sample_rate: 44100
  buffer: 100ms
  idle_volume: 0.3
  bloom_volume: 0.7
  idle:
    # file: ~/music/idle.mp3
    loop: true
  bloom:
    # file: ~/music/bloom.mp3
    loop: false
  sfx: true  # Pluck and chime effects

# Keep a log of every viewing ('valentine history' lists them)
history:
  enabled: true
  # db_path: ~/.config/valentine/valentine.db

# OpenTelemetry spans for each run and scene
tracing:
  enabled: false
  exporter: file  # file or otlp
  # file: /tmp/valentine-trace.json
  endpoint: localhost:4317
  insecure: true

# Theme configuration
theme:
  # Use a preset:
  # preset: sunset
  #
  # Available presets:
  #   default   - Rose petals on a dark sky
  #   sunset    - Warm oranges and pinks
  #   midnight  - Deep blues with silver text
  #   paper     - Light background, ink text
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   petal.fill: "#FF8FAB"
  #   text.primary: "#FFFFFF"
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

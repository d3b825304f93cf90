// Package cmd is the valentine command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/valentine/internal/app"
	"github.com/zjrosen/valentine/internal/audio"
	"github.com/zjrosen/valentine/internal/audio/engine"
	"github.com/zjrosen/valentine/internal/config"
	"github.com/zjrosen/valentine/internal/log"
	"github.com/zjrosen/valentine/internal/script"
	"github.com/zjrosen/valentine/internal/sequence"
	"github.com/zjrosen/valentine/internal/sound"
	"github.com/zjrosen/valentine/internal/tracing"
	"github.com/zjrosen/valentine/internal/ui/noscript"
	"github.com/zjrosen/valentine/internal/ui/styles"
)

// FastScale is the timing scale --fast applies.
const FastScale = 0.25

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
	flags   runFlags
)

// runFlags are the root command's flags that override the config file.
type runFlags struct {
	variant string
	script  string
	noAudio bool
	debug   bool
	fast    bool
}

// apply writes the flags that were given over cfg.
func (f runFlags) apply(c *config.Config) {
	if f.variant != "" {
		c.Variant = f.variant
	}
	if f.script != "" {
		c.Script.Path = f.script
	}
	if f.noAudio {
		c.Audio.Enabled = false
	}
	if f.debug {
		c.Debug = true
	}
	if f.fast {
		c.Timing.Scale = FastScale
	}
}

var rootCmd = &cobra.Command{
	Use:   "valentine",
	Short: "A valentine that plays in your terminal",
	Long: `Valentine plays a short interactive greeting: a few lines of text,
a daisy to pluck petal by petal, and a garden that blooms around the question.`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
	RunE:              runApp,
}

// SetVersion is called from main with the build version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default ./.valentine.yaml, then ~/.config/valentine/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "write a debug log")

	rootCmd.Flags().StringVar(&flags.variant, "variant", "", "greeting to play: full, rose or garden")
	rootCmd.Flags().StringVarP(&flags.script, "script", "s", "", "YAML script with your own words")
	rootCmd.Flags().BoolVar(&flags.noAudio, "no-audio", false, "play without sound")
	rootCmd.Flags().BoolVar(&flags.fast, "fast", false, "preview: shorten every delay and let tab skip waits")
}

func preRun(cmd *cobra.Command, _ []string) error {
	loaded, err := loadConfig(viper.New(), cfgFile)
	if err != nil {
		return err
	}
	flags.apply(&loaded)
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = loaded

	if cfg.Debug {
		path := cfg.LogFile
		if path == "" {
			path = filepath.Join(config.DefaultDir(), "debug.log")
		}
		if err := log.Init(expandHome(path), slog.LevelDebug); err != nil {
			return err
		}
		cobra.OnFinalize(func() { _ = log.Close() })
	}
	return nil
}

// resolveConfigPath returns the explicit file, else the first existing
// default location, else "".
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return expandHome(explicit)
	}
	for _, p := range []string{
		".valentine.yaml",
		filepath.Join(config.DefaultDir(), "config.yaml"),
	} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// loadConfig reads the config file (if any) and VALENTINE_* environment
// variables on top of the defaults.
func loadConfig(v *viper.Viper, explicit string) (config.Config, error) {
	setDefaults(v, config.Defaults())
	v.SetEnvPrefix("VALENTINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := resolveConfigPath(explicit); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		log.Debug(log.CatConfig, "Loaded config", "path", path)
	}

	var c config.Config
	if err := v.Unmarshal(&c); err != nil {
		return config.Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return c, nil
}

// setDefaults registers every key so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper, d config.Config) {
	v.SetDefault("variant", d.Variant)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("script.path", d.Script.Path)
	v.SetDefault("script.watch", d.Script.Watch)

	v.SetDefault("timing.enter_thoughts", d.Timing.EnterThoughts)
	v.SetDefault("timing.enter_game", d.Timing.EnterGame)
	v.SetDefault("timing.enter_bridge", d.Timing.EnterBridge)
	v.SetDefault("timing.enter_ask", d.Timing.EnterAsk)
	v.SetDefault("timing.overlay_end", d.Timing.OverlayEnd)
	v.SetDefault("timing.reveal_message", d.Timing.RevealMessage)
	v.SetDefault("timing.fade_step", d.Timing.FadeStep)
	v.SetDefault("timing.fade_interval", d.Timing.FadeInterval)
	v.SetDefault("timing.scale", d.Timing.Scale)

	v.SetDefault("audio.enabled", d.Audio.Enabled)
	v.SetDefault("audio.sample_rate", d.Audio.SampleRate)
	v.SetDefault("audio.buffer", d.Audio.Buffer)
	v.SetDefault("audio.idle_volume", d.Audio.IdleVolume)
	v.SetDefault("audio.bloom_volume", d.Audio.BloomVolume)
	v.SetDefault("audio.idle.file", d.Audio.Idle.File)
	v.SetDefault("audio.idle.loop", d.Audio.Idle.Loop)
	v.SetDefault("audio.bloom.file", d.Audio.Bloom.File)
	v.SetDefault("audio.bloom.loop", d.Audio.Bloom.Loop)
	v.SetDefault("audio.sfx", d.Audio.SFX)

	v.SetDefault("history.enabled", d.History.Enabled)
	v.SetDefault("history.db_path", d.History.DBPath)

	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.endpoint", d.Tracing.Endpoint)
	v.SetDefault("tracing.file", d.Tracing.File)
	v.SetDefault("tracing.insecure", d.Tracing.Insecure)

	v.SetDefault("theme.preset", d.Theme.Preset)
}

func runApp(cmd *cobra.Command, _ []string) error {
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
	if err := styles.ApplyTheme(styles.ThemeConfig{Preset: cfg.Theme.Preset, Colors: cfg.Theme.Colors}); err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	scriptPath := expandHome(cfg.Script.Path)
	sc, err := loadScript(scriptPath)
	if err != nil {
		log.ErrorErr(log.CatConfig, "Script failed to load", err, "path", scriptPath)
		_, runErr := tea.NewProgram(noscript.New(scriptPath, err), tea.WithAltScreen()).Run()
		return errors.Join(err, runErr)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	tp, err := tracing.Setup(ctx, cfg.Tracing, version)
	if err != nil {
		return err
	}
	defer func() {
		sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer scancel()
		if err := tp.Shutdown(sctx); err != nil {
			log.ErrorErr(log.CatTrace, "Tracing shutdown failed", err)
		}
	}()

	eng := engine.New(engine.Config{
		Enabled:    cfg.Audio.Enabled,
		SampleRate: cfg.Audio.SampleRate,
		Buffer:     cfg.Audio.Buffer,
		Idle:       engine.TrackConfig{File: expandHome(cfg.Audio.Idle.File), Loop: cfg.Audio.Idle.Loop},
		Bloom:      engine.TrackConfig{File: expandHome(cfg.Audio.Bloom.File), Loop: cfg.Audio.Bloom.Loop},
	})
	if err := eng.Start(cfg.Audio.Buffer); err != nil {
		return err
	}
	defer eng.Close()

	sfx, err := sound.New(eng, cfg.Audio.Enabled && cfg.Audio.SFX)
	if err != nil {
		return err
	}

	var reloads <-chan script.Reload
	if cfg.Script.Watch && scriptPath != "" {
		w, err := script.NewWatcher(scriptPath, 0)
		if err != nil {
			log.Warn(log.CatConfig, "Script watch unavailable", "error", err)
		} else {
			reloads = w.Reloads()
			log.SafeGo("script-watcher", func() { w.Run(ctx) })
		}
	}

	players := make(map[audio.Track]audio.Player, 2)
	for _, t := range audio.Tracks() {
		players[t] = eng.Player(t)
	}

	variant, _ := sequence.ParseVariant(cfg.Variant)
	model := app.New(app.Options{
		Variant:        variant,
		Script:         sc,
		Timings:        cfg.Timings(),
		Players:        players,
		Effects:        sfx,
		Tracer:         tp.Tracer(),
		Context:        ctx,
		Reloads:        reloads,
		Seed:           uint64(time.Now().UnixNano()), //nolint:gosec // seed only
		RevealInterval: app.DefaultRevealInterval,
		AllowSkip:      flags.fast,
	})

	final, err := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running greeting: %w", err)
	}

	if m, ok := final.(app.Model); ok && cfg.History.Enabled {
		if err := saveViewing(expandHome(cfg.HistoryPath()), m.Summary()); err != nil {
			log.ErrorErr(log.CatDB, "Failed to record viewing", err)
		}
	}
	return nil
}

// loadScript returns the built-in script for an empty path.
func loadScript(path string) (*script.Script, error) {
	if path == "" {
		return script.Default(), nil
	}
	return script.Load(path)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

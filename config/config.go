package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/SvenDH/go-card-hand/hand"
	"github.com/SvenDH/go-card-hand/ui"
)

type Config struct {
	Log    Log    `yaml:"log"`
	Layout Layout `yaml:"layout"`
	Hand   Hand   `yaml:"hand"`
	Store  Store  `yaml:"store"`
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
	// File receives log output instead of stderr when set.
	File string `yaml:"file"`
}

// Layout sizes are pixels for the window and cells for the terminal.
type Layout struct {
	Left        float64 `yaml:"left"`
	Top         float64 `yaml:"top"`
	CardWidth   float64 `yaml:"card_width"`
	CardHeight  float64 `yaml:"card_height"`
	Gap         float64 `yaml:"gap"`
	ToggleWidth float64 `yaml:"toggle_width"`
}

type Hand struct {
	ShowToggle  bool `yaml:"show_toggle"`
	TrackCursor bool `yaml:"track_cursor"`
}

type Store struct {
	Path string `yaml:"path"`
}

func Default() Config {
	return Config{
		Log: Log{Level: "info"},
		Layout: Layout{
			Left:        24,
			Top:         24,
			CardWidth:   320,
			CardHeight:  72,
			Gap:         8,
			ToggleWidth: 24,
		},
		Store: Store{Path: "catalog.db"},
	}
}

// TerminalLayout is the default layout in terminal cells.
func TerminalLayout() Layout {
	return Layout{
		Left:        1,
		Top:         1,
		CardWidth:   40,
		CardHeight:  3,
		Gap:         1,
		ToggleWidth: 4,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	l := c.Layout
	if l.CardWidth <= 0 || l.CardHeight <= 0 {
		return errors.New("layout: card_width and card_height must be positive")
	}
	if l.Gap < 0 || l.ToggleWidth < 0 || l.ToggleWidth > l.CardWidth {
		return errors.New("layout: gap and toggle_width must fit the card")
	}
	if c.Store.Path == "" {
		return errors.New("store.path is required")
	}
	return nil
}

func (l Layout) Geometry() ui.Geometry {
	return ui.Geometry{
		Layout:      hand.Layout{Top: l.Top, Height: l.CardHeight, Gap: l.Gap},
		Left:        l.Left,
		Width:       l.CardWidth,
		ToggleWidth: l.ToggleWidth,
	}
}

// NewLogger builds the application logger.
func NewLogger(c Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	// Terminal hosts own stdout.
	zc.OutputPaths = []string{"stderr"}
	if c.File != "" {
		zc.OutputPaths = []string{c.File}
	}
	return zc.Build()
}

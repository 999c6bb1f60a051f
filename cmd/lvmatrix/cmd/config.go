package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/render"
)

// envPrefix scopes environment overrides: LVMATRIX_LAYOUT, LVMATRIX_LOG_LEVEL, ...
const envPrefix = "LVMATRIX"

// Config keys, shared by flags, env and config files.
const (
	keyConfig     = "config"
	keyLogLevel   = "log-level"
	keyLayout     = "layout"
	keyPrecision  = "precision"
	keyFiniteOnly = "finite-only"
	keyRows       = "rows"
	keyCols       = "cols"
	keyBase       = "base"
	keyInc        = "inc"
)

// Supported storage layouts.
const (
	layoutDense = "dense"
	layoutGrid  = "grid"
)

var errUnknownLayout = errors.New("unknown layout")

// Config is the resolved CLI configuration (flags > env > file > defaults).
type Config struct {
	LogLevel   string  `mapstructure:"log-level"`
	Layout     string  `mapstructure:"layout"`
	Precision  int     `mapstructure:"precision"`
	FiniteOnly bool    `mapstructure:"finite-only"`
	Rows       int     `mapstructure:"rows"`
	Cols       int     `mapstructure:"cols"`
	Base       float64 `mapstructure:"base"`
	Inc        float64 `mapstructure:"inc"`
}

// setupViper wires env bindings and, when set, the config file.
func setupViper(v *viper.Viper) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path := v.GetString(keyConfig)
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %q: %w", path, err)
	}

	return nil
}

// loadConfig decodes and validates the configuration held by v.
func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Layout = strings.ToLower(strings.TrimSpace(cfg.Layout))
	switch cfg.Layout {
	case layoutDense, layoutGrid:
	default:
		return Config{}, fmt.Errorf("layout %q: %w", cfg.Layout, errUnknownLayout)
	}
	if cfg.Precision < render.DefaultPrecision {
		return Config{}, fmt.Errorf("precision %d: must be >= %d", cfg.Precision, render.DefaultPrecision)
	}

	return cfg, nil
}

// matrixOptions translates the numeric policy into matrix options.
func (c Config) matrixOptions() []matrix.Option {
	if c.FiniteOnly {
		return []matrix.Option{matrix.WithFiniteOnly()}
	}

	return nil
}

// newMatrix allocates a rows×cols matrix in the configured layout.
func (c Config) newMatrix(rows, cols int) (matrix.Matrix, error) {
	if c.Layout == layoutGrid {
		return matrix.NewGrid(rows, cols, c.matrixOptions()...)
	}

	return matrix.NewDense(rows, cols, c.matrixOptions()...)
}

// printer returns the render.Printer for the configured precision.
func (c Config) printer() *render.Printer {
	return render.New(render.WithPrecision(c.Precision))
}

// Package cmd holds the lvmatrix cobra commands.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries state shared by every subcommand of one root command.
type app struct {
	v   *viper.Viper
	cfg Config
	log *zap.Logger
}

// NewRootCmd builds the lvmatrix command tree with its own viper instance,
// so several trees (e.g. in tests) never share configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:          "lvmatrix",
		Short:        "fill, edit and print bounds-checked matrices",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(keyConfig, "", "path of a yaml/toml/json config file")
	flags.String(keyLogLevel, "info", "log level (debug, info, warn, error)")
	flags.String(keyLayout, layoutDense, "storage layout: dense or grid")
	flags.Int(keyPrecision, -1, "fixed decimals when printing (-1 = shortest)")
	flags.Bool(keyFiniteOnly, false, "reject NaN and Inf values")
	_ = a.v.BindPFlags(flags)

	rootCmd.AddCommand(newDemoCmd(a), newFillCmd(a))

	return rootCmd
}

// init resolves configuration and the logger once flags are parsed.
func (a *app) init() error {
	if err := setupViper(a.v); err != nil {
		return err
	}
	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.Debug("configuration loaded",
		zap.String("layout", cfg.Layout),
		zap.Int("precision", cfg.Precision),
		zap.Bool("finiteOnly", cfg.FiniteOnly),
		zap.String("configFile", a.v.ConfigFileUsed()))

	return nil
}

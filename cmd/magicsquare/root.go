// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/magicsquare/internal/config"
	"github.com/katalvlaran/magicsquare/internal/logging"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v       *viper.Viper
	cfgPath string
	cfg     *config.Config
	log     *logrus.Logger
	out     io.Writer
	errOut  io.Writer
}

// newRootCmd builds the command tree writing to out and logging to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: config.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "magicsquare",
		Short: "Generate N×N magic squares",
		Long: `Generate N×N magic squares for every order that has one:
odd orders with the Siamese method, orders divisible by 4 with the
complement pattern, and orders ≡ 2 (mod 4) with the Strachey method.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.bindFlags(cmd)
			return a.load()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	_ = a.v.BindPFlag(config.KeyLogLevel, root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		newGenerateCmd(a),
		newReplCmd(a),
		newBenchCmd(a),
		newConfigCmd(a),
	)

	return root
}

// flagKeys maps subcommand flag names onto configuration keys. Several
// subcommands share a flag name, so binding happens once the running
// command is known.
var flagKeys = map[string]string{
	"format":  config.KeyFormat,
	"heatmap": config.KeyHeatmapEnabled,
	"sizes":   config.KeyBenchSizes,
	"repeats": config.KeyBenchRepeats,
}

// bindFlags binds the running command's flags into viper.
func (a *app) bindFlags(cmd *cobra.Command) {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			_ = a.v.BindPFlag(key, f)
		}
	}
}

// load resolves configuration and the logger.
func (a *app) load() error {
	cfg, err := config.Load(a.v, a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(cfg.LogLevel, a.errOut)
	a.log.WithField("config", a.v.ConfigFileUsed()).Debug("configuration loaded")

	return nil
}

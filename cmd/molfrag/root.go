// SPDX-License-Identifier: MIT
//
// File: root.go
// Role: root command, global flags, configuration and logger setup.

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/molfrag/config"
	"github.com/katalvlaran/molfrag/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// app carries initialized dependencies through the command tree.
type app struct {
	v   *viper.Viper
	cfg *config.Config
	log logging.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: config.New(), log: logging.NewNop()}
	var cfgPath string

	cmd := &cobra.Command{
		Use:     "molfrag",
		Short:   "Rule-based molecular fragmentation",
		Long:    "molfrag splits molecules into ring, conjugated, multi-bond, chain and branch fragments\nunder a configurable policy.",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cfgPath)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&cfgPath, "config", "c", "", "YAML config file")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	bind(a.v, cmd, config.KeyLogLevel, "log-level")
	bind(a.v, cmd, config.KeyLogFormat, "log-format")

	cmd.AddCommand(newFragmentCommand(a), newSettingsCommand(a))

	return cmd
}

// init reads the optional config file, decodes flags, env and defaults,
// and builds the logger.
func (a *app) init(cfgPath string) error {
	if cfgPath != "" {
		a.v.SetConfigFile(cfgPath)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %q: %w", cfgPath, err)
		}
	}
	cfg, err := config.Decode(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.log = log.With(logging.String("run", uuid.NewString()))
	a.log.Debug("configuration loaded", logging.String("file", a.v.ConfigFileUsed()))

	return nil
}

// bind ties a flag of cmd (local or persistent) to a viper key.
func bind(v *viper.Viper, cmd *cobra.Command, key, flag string) {
	f := cmd.Flags().Lookup(flag)
	if f == nil {
		f = cmd.PersistentFlags().Lookup(flag)
	}
	if f == nil {
		panic("molfrag: unknown flag " + flag)
	}
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

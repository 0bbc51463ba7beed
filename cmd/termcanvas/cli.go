package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/termcanvas/config"
)

var (
	version = "v0.1.0"
	commit  = ""
	date    = ""
)

type rootOptions struct {
	configPath string
	color      string
	debug      bool
}

func execute() int {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "termcanvas",
		Short:         "Terminal canvas, diff renderer and sixel tools",
		SilenceErrors: false,
		SilenceUsage:  true,
		Version:       buildVersion(),
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Override config file path (default: OS user config dir)")
	cmd.PersistentFlags().StringVar(&opts.color, "color", "", "Color mode: auto, 256 or truecolor (overrides config)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Write a debug log")

	cmd.AddCommand(
		newDemoCmd(opts),
		newSixelCmd(opts),
		newResolveCmd(opts),
		newConfigCmd(opts),
	)

	return cmd
}

// load reads the config, applies flag overrides and starts logging
// The returned func closes the log file and must be called when the command ends
func (o *rootOptions) load() (config.Config, func(), error) {
	store, err := config.NewStore(o.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	cfg, err := store.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	if o.color != "" {
		cfg.Render.ColorMode = o.color
		if err := cfg.Validate(); err != nil {
			return config.Config{}, nil, fmt.Errorf("--color: %w", err)
		}
	}

	logFile := setupLogging(o.debug, cfg.Log)
	closeLog := func() {
		if logFile != nil {
			logFile.Close()
		}
	}
	return cfg, closeLog, nil
}

func buildVersion() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " " + date
	}
	return v
}

package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/termcanvas/config"
	"github.com/lixenwraith/termcanvas/layout"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the config file",
	}
	cmd.AddCommand(
		newConfigPathCmd(opts),
		newConfigShowCmd(opts),
		newConfigInitCmd(opts),
		newConfigSetCmd(opts),
	)
	return cmd
}

func newConfigPathCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := config.NewStore(opts.configPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), store.Path())
			return nil
		},
	}
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective config as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, closeLog, err := opts.load()
			if err != nil {
				return err
			}
			defer closeLog()
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
		},
	}
}

func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := config.NewStore(opts.configPath)
			if err != nil {
				return err
			}
			if _, err := os.Stat(store.Path()); err == nil && !force {
				return fmt.Errorf("%s exists (use --force to overwrite)", store.Path())
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := store.Save(config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", store.Path())
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

// configSetters maps settable keys to field updates
var configSetters = map[string]func(*config.Config, string) error{
	"render.color_mode": func(c *config.Config, v string) error {
		c.Render.ColorMode = v
		return nil
	},
	"render.cell_width": func(c *config.Config, v string) error {
		return setInt(&c.Render.CellWidth, v)
	},
	"render.cell_height": func(c *config.Config, v string) error {
		return setInt(&c.Render.CellHeight, v)
	},
	"sixel.alpha_threshold": func(c *config.Config, v string) error {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return err
		}
		c.Sixel.AlphaThreshold = uint8(n)
		return nil
	},
	"log.file": func(c *config.Config, v string) error {
		c.Log.File = v
		return nil
	},
	"log.level": func(c *config.Config, v string) error {
		c.Log.Level = v
		return nil
	},
	"demo.sidebar": func(c *config.Config, v string) error {
		return setDimension(&c.Demo.Sidebar, v)
	},
	"demo.footer": func(c *config.Config, v string) error {
		return setDimension(&c.Demo.Footer, v)
	},
}

func newConfigSetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one config value",
		Long:  "Change one config value. Keys: " + configKeys(),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, ok := configSetters[args[0]]
			if !ok {
				return fmt.Errorf("unknown key %q (known: %s)", args[0], configKeys())
			}
			store, err := config.NewStore(opts.configPath)
			if err != nil {
				return err
			}
			return store.Update(func(c *config.Config) error {
				if err := set(c, args[1]); err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
				return nil
			})
		},
	}
}

func configKeys() string {
	keys := make([]string, 0, len(configSetters))
	for k := range configSetters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}

func setInt(dst *int, v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func setDimension(dst *layout.Dimension, v string) error {
	d, err := layout.Parse(v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

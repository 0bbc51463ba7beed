package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/termcanvas/layout"
	"github.com/lixenwraith/termcanvas/terminal"
)

type resolveOptions struct {
	parent   int
	viewport string
}

func newResolveCmd(opts *rootOptions) *cobra.Command {
	r := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <dimension>...",
		Short: "Resolve dimensions such as 50%, 20vw or \"100% - 2ch\" to cells",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vp, err := r.viewportOf()
			if err != nil {
				return err
			}

			for _, arg := range args {
				d, err := layout.Parse(arg)
				if err != nil {
					return err
				}
				n, err := d.Resolve(r.parent, vp)
				if err != nil {
					return fmt.Errorf("resolve %s: %w", d, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", d, n)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&r.parent, "parent", 0, "Parent size in cells for percentages")
	cmd.Flags().StringVar(&r.viewport, "viewport", "", "Viewport as WxH (default: the terminal on stdout)")

	return cmd
}

// viewportOf parses --viewport or falls back to the live terminal
func (r *resolveOptions) viewportOf() (layout.Viewport, error) {
	if r.viewport == "" {
		return terminal.StdoutViewport(), nil
	}
	var w, h int
	if _, err := fmt.Sscanf(r.viewport, "%dx%d", &w, &h); err != nil || w < 0 || h < 0 {
		return nil, fmt.Errorf("--viewport: want WxH, got %q", r.viewport)
	}
	return terminal.FixedViewport{Width: w, Height: h}, nil
}

package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/termcanvas/render"
	"github.com/lixenwraith/termcanvas/sixel"
	"github.com/lixenwraith/termcanvas/terminal"
)

type sixelOptions struct {
	cols     int
	rows     int
	gradient bool
	alpha    int
}

func newSixelCmd(opts *rootOptions) *cobra.Command {
	s := &sixelOptions{alpha: -1}

	cmd := &cobra.Command{
		Use:   "sixel [image]",
		Short: "Encode an image as a sixel stream on stdout",
		Long: "Encode a png, jpeg, gif, bmp, tiff or webp image as sixel graphics.\n" +
			"With --cols/--rows the image is resampled to cover that many terminal cells.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closeLog, err := opts.load()
			if err != nil {
				return err
			}
			defer closeLog()

			var img sixel.Bitmap
			switch {
			case len(args) == 1:
				if img, err = loadImage(args[0]); err != nil {
					return err
				}
			case s.gradient:
				img = gradient(128, 64)
			default:
				return fmt.Errorf("an image path or --gradient is required")
			}

			if s.cols > 0 || s.rows > 0 {
				cw, ch := cellPixels(cfg.Render.CellWidth, cfg.Render.CellHeight)
				w, h := fitCells(img, s.cols, s.rows, cw, ch)
				img = render.Scale(img, w, h)
			}

			alpha := cfg.Sixel.AlphaThreshold
			if s.alpha >= 0 {
				alpha = uint8(min(s.alpha, 255))
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			if err := sixel.EncodeTo(out, img, alpha); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			out.WriteByte('\n')
			slog.Debug("sixel: encoded", "width", img.Width(), "height", img.Height(), "alpha", alpha)
			return out.Flush()
		},
	}

	cmd.Flags().IntVar(&s.cols, "cols", 0, "Scale to this many terminal columns")
	cmd.Flags().IntVar(&s.rows, "rows", 0, "Scale to this many terminal rows")
	cmd.Flags().BoolVar(&s.gradient, "gradient", false, "Encode a generated test gradient")
	cmd.Flags().IntVar(&s.alpha, "alpha", s.alpha, "Alpha threshold 0-255 (default: config sixel.alpha_threshold)")

	return cmd
}

// cellPixels returns the configured cell size, asking the terminal for missing values
func cellPixels(cfgW, cfgH int) (int, int) {
	w, h := render.DefaultCellWidth, render.DefaultCellHeight
	if ws, err := terminal.WindowSize(int(os.Stdout.Fd())); err == nil {
		if tw, th := ws.CellPixels(); tw > 0 && th > 0 {
			w, h = tw, th
		}
	}
	if cfgW > 0 {
		w = cfgW
	}
	if cfgH > 0 {
		h = cfgH
	}
	return w, h
}

// fitCells returns the pixel size covering cols x rows cells
// A zero cols or rows is derived from the other keeping the aspect ratio
func fitCells(img sixel.Bitmap, cols, rows, cellW, cellH int) (int, int) {
	w, h := cols*cellW, rows*cellH
	switch {
	case img.Width() <= 0 || img.Height() <= 0:
		return 0, 0
	case cols <= 0:
		w = h * img.Width() / img.Height()
	case rows <= 0:
		h = w * img.Height() / img.Width()
	}
	return w, h
}

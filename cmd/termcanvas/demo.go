package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/termcanvas/canvas"
	"github.com/lixenwraith/termcanvas/config"
	"github.com/lixenwraith/termcanvas/geom"
	"github.com/lixenwraith/termcanvas/render"
	"github.com/lixenwraith/termcanvas/sixel"
	"github.com/lixenwraith/termcanvas/terminal"
)

type demoOptions struct {
	duration time.Duration
	fps      int
	image    string
	noImage  bool
}

func newDemoCmd(opts *rootOptions) *cobra.Command {
	d := &demoOptions{fps: 10}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Draw an animated layout in the alternate screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.Context(), opts, d)
		},
	}

	cmd.Flags().DurationVar(&d.duration, "duration", 0, "Stop after this long (default: run until q or Ctrl-C)")
	cmd.Flags().IntVar(&d.fps, "fps", d.fps, "Animation frames per second")
	cmd.Flags().StringVar(&d.image, "image", "", "Show this image in the sidebar instead of a gradient")
	cmd.Flags().BoolVar(&d.noImage, "no-image", false, "Do not emit sixel images")

	return cmd
}

func runDemo(ctx context.Context, opts *rootOptions, d *demoOptions) error {
	if d.fps <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", d.fps)
	}
	cfg, closeLog, err := opts.load()
	if err != nil {
		return err
	}
	defer closeLog()

	var img sixel.Bitmap
	if !d.noImage {
		if d.image != "" {
			if img, err = loadImage(d.image); err != nil {
				return err
			}
		} else {
			img = gradient(96, 96)
		}
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if d.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.duration)
		defer cancel()
	}

	sess := terminal.NewSession(os.Stdin, os.Stdout)
	if err := sess.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer sess.Fini()
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			panic(r)
		}
	}()

	ctx, quit := context.WithCancel(ctx)
	defer quit()
	if terminal.IsTerminal(int(os.Stdin.Fd())) {
		go watchQuit(os.Stdin, quit)
	}

	ws := sess.Size()
	scr := render.NewScreen(ws.Cols, ws.Rows, sess.Out(), screenOptions(cfg, ws)...)
	sc := newScene(cfg.Demo, sess.Viewport())
	place := func(c *canvas.Canvas, r geom.Rect) {
		if img != nil {
			c.PlaceSixel(img, r.Min(), r.Size(), zImage)
		}
	}

	slog.Info("demo: start", "cols", ws.Cols, "rows", ws.Rows, "color", scr.ColorMode().String())
	return demoLoop(ctx, scr, sc, place, sess.ResizeChan(ctx), time.Second/time.Duration(d.fps))
}

// demoLoop paints once, then ticks until ctx ends, repainting on resize
func demoLoop(ctx context.Context, scr *render.Screen, sc *scene, place func(*canvas.Canvas, geom.Rect), resizeCh <-chan terminal.ResizeEvent, interval time.Duration) error {
	if err := sc.paint(scr.Canvas, place); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last render.FrameStats
	for {
		if err := sc.tick(scr.Canvas, last.String()); err != nil {
			return err
		}
		stats, err := scr.Render()
		if err != nil {
			slog.Warn("demo: render", "error", err)
		}
		last = stats

		select {
		case <-ctx.Done():
			slog.Info("demo: stop", "frames", sc.frame, "layout_hits", sc.stats.Hits(), "layout_misses", sc.stats.Misses())
			return nil
		case ev, ok := <-resizeCh:
			if !ok {
				resizeCh = nil
				continue
			}
			scr.Resize(ev.Width, ev.Height)
			sc.revalidate()
			if err := sc.paint(scr.Canvas, place); err != nil {
				return err
			}
			slog.Debug("demo: resize", "cols", ev.Width, "rows", ev.Height)
		case <-ticker.C:
		}
	}
}

// watchQuit cancels on q, Q, Ctrl-C or end of input
func watchQuit(in *os.File, quit context.CancelFunc) {
	buf := make([]byte, 64)
	for {
		n, err := in.Read(buf)
		if err != nil || n == 0 {
			quit()
			return
		}
		for _, b := range buf[:n] {
			if b == 'q' || b == 'Q' || b == 0x03 {
				quit()
				return
			}
		}
	}
}

// screenOptions maps config and terminal geometry to screen options
// Configured cell sizes win over what the terminal reports
func screenOptions(cfg config.Config, ws terminal.Winsize) []render.Option {
	opts := []render.Option{
		render.WithColorMode(cfg.Render.Mode()),
		render.WithLogger(slog.Default()),
		render.WithAlphaThreshold(cfg.Sixel.AlphaThreshold),
	}
	cw, ch := ws.CellPixels()
	if cfg.Render.CellWidth > 0 {
		cw = cfg.Render.CellWidth
	}
	if cfg.Render.CellHeight > 0 {
		ch = cfg.Render.CellHeight
	}
	return append(opts, render.WithCellPixels(cw, ch))
}

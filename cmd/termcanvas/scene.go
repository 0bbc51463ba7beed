package main

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/termcanvas/canvas"
	"github.com/lixenwraith/termcanvas/config"
	"github.com/lixenwraith/termcanvas/geom"
	"github.com/lixenwraith/termcanvas/layout"
	"github.com/lixenwraith/termcanvas/terminal"
)

// Panel order inside the cached children layout
const (
	panelSidebar = iota
	panelMain
	panelFooter
)

// Z layers of the demo
const (
	zBase  int32 = 0
	zFrame int32 = 1
	zText  int32 = 2
	zImage int32 = 3
)

var (
	styleFrame  = terminal.StyleInherit.Foreground(terminal.PaletteColor(6))
	styleTitle  = terminal.NewStyle(terminal.PaletteColor(15), terminal.ColorInherit, terminal.AttrBold)
	styleLabel  = terminal.NewStyle(terminal.PaletteColor(250), terminal.ColorDefault, terminal.AttrNone)
	colorFooter = terminal.PaletteColor(236)
	styleBar    = terminal.NewStyle(terminal.RGBColor(80, 200, 120), terminal.ColorDefault, terminal.AttrNone)
)

var spinner = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

// scene is the demo layout: an image sidebar, a main panel and a one-line footer
// paint draws everything; tick only rewrites the animated cells
type scene struct {
	cfg    config.DemoConfig
	vp     layout.Viewport
	panels *layout.ChildrenCache
	stats  layout.Stats

	frame int
}

func newScene(cfg config.DemoConfig, vp layout.Viewport) *scene {
	s := &scene{cfg: cfg, vp: vp}
	s.panels = layout.NewCache[layout.ChildrenLayout](layout.WithStats(&s.stats))
	s.revalidate()
	return s
}

// layout returns the panel rectangles for a canvas of size, recomputing on size or viewport change
func (s *scene) layout(size geom.Size) (layout.ChildrenLayout, error) {
	return s.panels.Lookup(layout.SlotRender, size, func(size geom.Size) (layout.ChildrenLayout, error) {
		root := geom.RectOf(geom.Point{}, size)

		footerH, err := s.cfg.Footer.Resolve(root.H, s.vp)
		if err != nil {
			return nil, fmt.Errorf("demo.footer: %w", err)
		}
		sidebarW, err := s.cfg.Sidebar.Resolve(root.W, s.vp)
		if err != nil {
			return nil, fmt.Errorf("demo.sidebar: %w", err)
		}

		body, footer := geom.SplitVFixed(root, root.H-footerH)
		sidebar, content := geom.SplitHFixed(body, sidebarW)
		return layout.ChildrenLayout{sidebar, content, footer}, nil
	})
}

// revalidate binds the layout to the current viewport size
func (s *scene) revalidate() {
	if s.vp == nil {
		return
	}
	w, h := s.vp.Size()
	s.panels.SetValidator(layout.SlotRender, func() bool {
		vw, vh := s.vp.Size()
		return vw == w && vh == h
	})
}

// paint clears c and draws the static parts of every panel
func (s *scene) paint(c *canvas.Canvas, place func(c *canvas.Canvas, r geom.Rect)) error {
	panels, err := s.layout(c.Size())
	if err != nil {
		return err
	}
	c.Clear()

	sidebar, content, footer := panels[panelSidebar], panels[panelMain], panels[panelFooter]

	c.DrawBox(sidebar, canvas.BoxRounded, styleFrame, zFrame)
	c.PlaceText(" image ", geom.Pt(sidebar.X+2, sidebar.Y), styleTitle, zText)
	if place != nil {
		place(c, sidebar.Inset(1))
	}

	c.DrawBox(content, canvas.BoxSingle, styleFrame, zFrame)
	c.PlaceText(" termcanvas ", geom.Pt(content.X+2, content.Y), styleTitle, zText)
	inner := content.Inset(1)
	lines := []string{
		fmt.Sprintf("canvas   %dx%d", c.Width(), c.Height()),
		fmt.Sprintf("sidebar  %s = %d cols", s.cfg.Sidebar, sidebar.W),
		fmt.Sprintf("footer   %s = %d rows", s.cfg.Footer, footer.H),
	}
	for i, line := range lines {
		if i >= inner.H {
			break
		}
		c.PlaceText(line, geom.Pt(inner.X+1, inner.Y+i), styleLabel, zText)
	}
	s.paintRamp(c, inner.Sub(1, len(lines)+1, inner.W-2, 2))

	c.StyleBackground(footer, colorFooter)
	c.PlaceAligned("q quits ", footer.Min(), footer.W, canvas.AlignRight, zText)
	return nil
}

// paintRamp fills r with background swatches stepping through the 6x6x6 cube
func (s *scene) paintRamp(c *canvas.Canvas, r geom.Rect) {
	if r.Empty() {
		return
	}
	for i := 0; i < r.W; i++ {
		idx := 16 + i*216/r.W
		cell := geom.R(r.X+i, r.Y, 1, r.H)
		c.FillStyled(cell, ' ', terminal.StyleDefault.Background(terminal.PaletteColor(uint8(idx))), zBase)
	}
}

// tick advances the animation and rewrites the spinner, the progress bar and the status text
func (s *scene) tick(c *canvas.Canvas, status string) error {
	panels, err := s.layout(c.Size())
	if err != nil {
		return err
	}
	s.frame++
	content, footer := panels[panelMain], panels[panelFooter]
	inner := content.Inset(1)

	if !inner.Empty() {
		c.PlaceText(string(spinner[s.frame%len(spinner)]), geom.Pt(inner.X+inner.W-2, inner.Y), styleBar, zText)
	}

	bar := inner.Sub(1, inner.H-1, inner.W-2, 1)
	if !bar.Empty() {
		filled := s.frame % (bar.W + 1)
		text := strings.Repeat("█", filled) + strings.Repeat("░", bar.W-filled)
		c.PlaceText(text, bar.Min(), styleBar, zText)
	}

	if !footer.Empty() {
		width := max(footer.W-10, 0)
		text := fmt.Sprintf(" %-*.*s", width, width, status)
		c.PlaceString(text, footer.Min(), zText)
	}
	return nil
}

package gameboy

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	profileWidth  = 1024
	profileHeight = 480
)

// ErrNoStats is returned when a profile is requested before any
// instruction has executed.
var ErrNoStats = errors.New("gameboy: no instructions executed")

// WriteProfile renders a bar chart of the top instructions by cycles
// spent, and writes it to w as a PNG.
func (g *GameBoy) WriteProfile(w io.Writer, top int) error {
	stats := g.Stats()
	if len(stats) == 0 {
		return ErrNoStats
	}
	if top > 0 && len(stats) > top {
		stats = stats[:top]
	}

	values := make(plotter.Values, len(stats))
	names := make([]string, len(stats))
	for i, s := range stats {
		values[i] = float64(s.Cycles)
		names[i] = s.Name
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Cycles per instruction (%d steps, %d cycles)", g.steps, g.cycles)
	p.Y.Label.Text = "T-cycles"

	bars, err := plotter.NewBarChart(values, vg.Points(16))
	if err != nil {
		return fmt.Errorf("gameboy: creating chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 1.2
	p.X.Tick.Label.XAlign = text.XRight

	img := image.NewRGBA(image.Rect(0, 0, profileWidth, profileHeight))
	c := vgimg.NewWith(vgimg.UseImage(img))
	p.Draw(draw.New(c))

	return png.Encode(w, c.Image())
}

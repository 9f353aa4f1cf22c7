package optics

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	Background  = color.RGBA{0, 0, 0, 255}
	RayColor    = color.RGBA{250, 250, 0, 255}
	MirrorColor = color.RGBA{120, 120, 120, 255}
	SourceColor = color.RGBA{255, 255, 255, 255}
	Highlight   = color.RGBA{255, 80, 80, 255}
)

// View draws a scene into an image of XSize by YSize pixels.
type View struct {
	Scene *Scene
	XSize int
	YSize int
	// Scale and translate the scene so its bounding box fills the image.
	// Otherwise scene coordinates are pixel coordinates.
	Fit       bool
	LineWidth float64
	Fade      Fade
	// These cache the values needed to scale and translate from the scene to the requested image size
	scale      float64
	xTranslate float64
	yTranslate float64
}

func (view *View) computeScaleAndTranslation() {
	if !view.Fit {
		view.scale = 1
		view.xTranslate = 0
		view.yTranslate = 0
		return
	}
	box := view.Scene.BoundingBox()
	view.xTranslate = -box.Min.X
	view.yTranslate = -box.Min.Y
	XScale := float64(view.XSize) / (box.Max.X - box.Min.X)
	YScale := float64(view.YSize) / (box.Max.Y - box.Min.Y)
	view.scale = math.Min(XScale, YScale)
	if math.IsInf(view.scale, 0) || math.IsNaN(view.scale) || view.scale == 0 {
		view.scale = 1
	}
}

func (view *View) getScale() float64 {
	if view.scale == 0 {
		view.computeScaleAndTranslation()
	}
	return view.scale
}

func (view *View) translateAndScale(p r2.Vec) r2.Vec {
	s := view.getScale()
	return r2.Scale(s, r2.Add(p, r2.Vec{X: view.xTranslate, Y: view.yTranslate}))
}

// Refit recomputes the scene to image transform from the scene's current
// bounding box. Render refits on every call.
func (view *View) Refit() {
	view.computeScaleAndTranslation()
}

// ToImage maps a scene point to image coordinates using the last fit.
func (view *View) ToImage(p r2.Vec) r2.Vec {
	return view.translateAndScale(p)
}

// FromImage maps image coordinates back to the scene.
func (view *View) FromImage(p r2.Vec) r2.Vec {
	s := view.getScale()
	return r2.Vec{X: p.X/s - view.xTranslate, Y: p.Y/s - view.yTranslate}
}

// StrokeWidth is LineWidth, or 1 when it is unset.
func (view *View) StrokeWidth() float64 {
	if view.LineWidth == 0 {
		return 1
	}
	return view.LineWidth
}

func setColor(c *gg.Context, col color.RGBA, alpha float64) {
	c.SetRGBA(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, alpha)
}

func (view *View) drawSegment(c *gg.Context, s Segment) {
	p1 := view.translateAndScale(s.Start)
	p2 := view.translateAndScale(s.End)
	c.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
	c.Stroke()
}

func (view *View) drawRay(c *gg.Context, ray *Ray, col color.RGBA, width float64) {
	c.SetLineWidth(width)
	for i, leg := range ray.Path() {
		setColor(c, col, view.Fade.Opacity(i))
		view.drawSegment(c, leg)
	}
}

// Render draws the current paths of every emitter, then the mirrors on top.
// A non-nil highlight is drawn last, twice as wide.
func (view *View) Render(highlight *Ray) image.Image {
	view.computeScaleAndTranslation()
	c := gg.NewContext(view.XSize, view.YSize)
	setColor(c, Background, 1)
	c.Clear()

	width := view.StrokeWidth()

	for _, e := range view.Scene.Emitters {
		for _, ray := range e.Rays() {
			view.drawRay(c, ray, RayColor, width)
		}
	}

	setColor(c, MirrorColor, 1)
	c.SetLineWidth(width)
	for _, m := range view.Scene.Mirrors {
		view.drawSegment(c, m.Segment())
	}

	setColor(c, SourceColor, 1)
	for _, e := range view.Scene.Emitters {
		pos := view.translateAndScale(e.Position())
		c.DrawCircle(pos.X, pos.Y, 3) // last arg is radius
		c.Fill()
	}

	if highlight != nil {
		view.drawRay(c, highlight, Highlight, 2*width)
	}
	return c.Image()
}

// SavePNG renders the scene and writes it to path.
func (view *View) SavePNG(path string, highlight *Ray) error {
	if err := gg.SavePNG(path, view.Render(highlight)); err != nil {
		return fmt.Errorf("saving png: %w", err)
	}
	return nil
}

// SaveBounceHistogram plots how many rays reflected each number of times.
func SaveBounceHistogram(path string, X, Y int, emitters []*Emitter) error {
	p := plot.New()
	p.Title.Text = "Bounces per ray"
	p.X.Label.Text = "Bounces"
	p.Y.Label.Text = "Rays"

	counts := plotter.Values{0}
	for _, e := range emitters {
		for _, ray := range e.Rays() {
			b := ray.Bounces()
			for len(counts) <= b {
				counts = append(counts, 0)
			}
			counts[b]++
		}
	}

	bars, err := plotter.NewBarChart(counts, vg.Points(3))
	if err != nil {
		return fmt.Errorf("building bar chart: %w", err)
	}
	p.Add(bars)
	if err := p.Save(font.Length(X), font.Length(Y), path); err != nil {
		return fmt.Errorf("saving histogram: %w", err)
	}
	return nil
}

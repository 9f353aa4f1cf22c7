package gui

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/jdginn/go-mirror-optics/optics"
)

// Session owns the window for as long as it is open. Moving the pointer
// moves the first emitter; every frame retraces and redraws the scene.
//
// The window draws through the same View as the PNG output, so fit, line
// width and fade apply here too. The fit is taken once when the session is
// created and held while the emitter moves.
type Session struct {
	view *optics.View

	cursorX, cursorY int
	tracking         bool
}

func NewSession(view *optics.View) *Session {
	view.Refit()
	return &Session{view: view}
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func (s *Session) Run(title string) error {
	ebiten.SetWindowSize(s.view.XSize, s.view.YSize)
	ebiten.SetWindowTitle(title)
	err := ebiten.RunGame(s)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (s *Session) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	s.pointerMoved(ebiten.CursorPosition())
	s.view.Scene.Calculate()
	return nil
}

// pointerMoved repositions the first emitter when the pointer position
// changed since the last frame. The first position seen is only recorded.
func (s *Session) pointerMoved(x, y int) {
	if !s.tracking {
		s.cursorX, s.cursorY = x, y
		s.tracking = true
		return
	}
	if x == s.cursorX && y == s.cursorY {
		return
	}
	s.cursorX, s.cursorY = x, y
	if emitters := s.view.Scene.Emitters; len(emitters) > 0 {
		emitters[0].SetSourcePosition(s.view.FromImage(optics.V(float64(x), float64(y))))
	}
}

// faded scales the alpha of c by opacity.
func faded(c color.RGBA, opacity float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * opacity)}
}

func (s *Session) strokeSegment(screen *ebiten.Image, seg optics.Segment, clr color.Color) {
	p1 := s.view.ToImage(seg.Start)
	p2 := s.view.ToImage(seg.End)
	vector.StrokeLine(screen,
		float32(p1.X), float32(p1.Y),
		float32(p2.X), float32(p2.Y),
		float32(s.view.StrokeWidth()), clr, true)
}

func (s *Session) Draw(screen *ebiten.Image) {
	screen.Fill(optics.Background)
	for _, e := range s.view.Scene.Emitters {
		for _, ray := range e.Rays() {
			for i, leg := range ray.Path() {
				s.strokeSegment(screen, leg, faded(optics.RayColor, s.view.Fade.Opacity(i)))
			}
		}
	}
	for _, m := range s.view.Scene.Mirrors {
		s.strokeSegment(screen, m.Segment(), optics.MirrorColor)
	}
}

func (s *Session) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.view.XSize, s.view.YSize
}

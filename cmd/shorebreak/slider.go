package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	trackColor  = color.RGBA{200, 200, 200, 255}
	fillColor   = color.RGBA{100, 150, 200, 255}
	handleColor = color.RGBA{50, 100, 150, 255}
)

const handleWidth = 12

// Slider is a horizontal drag control. OnChange fires on every value change
// while dragging.
type Slider struct {
	X, Y, W, H float64
	Min, Max   float64
	Value      float64
	Label      string
	OnChange   func(float64)

	dragging bool
}

func (s *Slider) Handle(mx, my float64, pressed, justPressed bool) {
	if justPressed && s.contains(mx, my) {
		s.dragging = true
	}
	if !pressed {
		s.dragging = false
	}
	if !s.dragging {
		return
	}

	t := (mx - s.X) / s.W
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	v := s.Min + t*(s.Max-s.Min)
	if v != s.Value {
		s.Value = v
		if s.OnChange != nil {
			s.OnChange(v)
		}
	}
}

func (s *Slider) contains(mx, my float64) bool {
	// a little slack above and below so the handle is easy to grab
	return mx >= s.X && mx <= s.X+s.W && my >= s.Y-4 && my <= s.Y+s.H+4
}

func (s *Slider) Draw(screen *ebiten.Image) {
	t := (s.Value - s.Min) / (s.Max - s.Min)

	vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), trackColor, false)
	vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(t*s.W), float32(s.H), fillColor, false)

	hx := s.X + t*(s.W-handleWidth)
	vector.DrawFilledRect(screen, float32(hx), float32(s.Y-2), handleWidth, float32(s.H+4), handleColor, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %.2f", s.Label, s.Value), int(s.X), int(s.Y)-18)
}

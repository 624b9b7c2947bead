package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/becomesaflame/shorebreak"
)

var (
	skyColor   = color.RGBA{135, 206, 235, 255}
	sandColor  = color.RGBA{238, 203, 173, 255}
	waterColor = color.RGBA{64, 164, 223, 255}
	wallColor  = color.RGBA{100, 100, 150, 255}
)

// maxFrameDt keeps a stalled frame (window drag, GC pause) from flooding the
// accumulator with catch-up steps.
const maxFrameDt = 1.0 / 30.0

type Game struct {
	sim     *shorebreak.Sim
	snap    shorebreak.Snapshot
	sliders []*Slider

	acc  float64
	last time.Time
}

func NewGame(sim *shorebreak.Sim) *Game {
	wave := sim.Wave()
	g := &Game{sim: sim, last: time.Now()}
	g.sliders = []*Slider{
		{
			X: 10, Y: 100, W: 150, H: 10,
			Min: shorebreak.MinFrequency, Max: shorebreak.MaxFrequency,
			Value: wave.Frequency(), Label: "Fast Wave Speed",
			OnChange: wave.SetFrequency,
		},
		{
			X: 10, Y: 150, W: 150, H: 10,
			Min: shorebreak.MinSlowPeriod, Max: shorebreak.MaxSlowPeriod,
			Value: wave.SlowPeriod(), Label: "Slow Wave Period (s)",
			OnChange: wave.SetSlowPeriod,
		},
		{
			X: 10, Y: 200, W: 150, H: 10,
			Min: shorebreak.MinFastAmplitude, Max: shorebreak.MaxFastAmplitude,
			Value: wave.FastAmplitude(), Label: "Fast Wave Amplitude",
			OnChange: wave.SetFastAmplitude,
		},
		{
			X: 10, Y: 250, W: 150, H: 10,
			Min: shorebreak.MinSlowAmplitude, Max: shorebreak.MaxSlowAmplitude,
			Value: wave.SlowAmplitude(), Label: "Slow Wave Amplitude",
			OnChange: wave.SetSlowAmplitude,
		},
	}
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
	}

	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	for _, s := range g.sliders {
		s.Handle(float64(mx), float64(my), pressed, justPressed)
	}

	// Fixed-timestep stepping behind an accumulator: the physics rate is
	// independent of the frame rate.
	now := time.Now()
	frame := now.Sub(g.last).Seconds()
	g.last = now
	if frame > maxFrameDt {
		frame = maxFrameDt
	}
	dt := g.sim.Config().Dt
	g.acc += frame
	for g.acc >= dt {
		g.sim.Step(dt)
		g.acc -= dt
	}

	g.sim.Snapshot(&g.snap)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	h := float32(g.sim.Config().FieldHeight)

	// wave wall
	wx := float32(g.snap.WallX)
	wt := float32(g.snap.WallThick)
	vector.DrawFilledRect(screen, wx-wt, 0, 2*wt, h, wallColor, false)

	for _, p := range g.snap.Particles {
		c := waterColor
		if p.Class == shorebreak.ClassSand {
			c = sandColor
		}
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), c, false)
	}

	for _, s := range g.sliders {
		s.Draw(screen)
	}

	msg := fmt.Sprintf("particles: %d  tps: %0.1f  fps: %0.1f  [R] reset",
		len(g.snap.Particles), ebiten.ActualTPS(), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, msg, 10, 10)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.sim.Config()
	return int(cfg.FieldWidth), int(cfg.FieldHeight)
}

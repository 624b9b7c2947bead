package shorebreak

import (
	"math"
	"sync/atomic"
)

// Runtime-settable wave parameter ranges. Setters clamp to these; values
// outside are never an error.
const (
	MinFrequency = 0.05
	MaxFrequency = 1.0

	MinSlowPeriod = 5.0
	MaxSlowPeriod = 60.0

	MinFastAmplitude = 10.0
	MaxFastAmplitude = 100.0

	MinSlowAmplitude = 0.0
	MaxSlowAmplitude = 200.0
)

// atomicFloat64 is a float64 with single-word atomic load/store. The input
// collaborator writes wave parameters from the UI goroutine between ticks;
// a torn read is the only hazard and this rules it out.
type atomicFloat64 struct {
	bits atomic.Uint64
}

func (f *atomicFloat64) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

func (f *atomicFloat64) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// WaveDriver prescribes the kinematic wall's motion: a fast sinusoid plus a
// slow swell, summed. It writes position and velocity into the wall boundary
// once per tick, before collision resolution.
type WaveDriver struct {
	wall  *Boundary
	baseX float64

	fastFreq   atomicFloat64
	fastAmp    atomicFloat64
	slowPeriod atomicFloat64
	slowAmp    atomicFloat64
}

func NewWaveDriver(cfg *Config, wall *Boundary) *WaveDriver {
	w := &WaveDriver{wall: wall, baseX: cfg.Wave.BaseX}
	w.fastFreq.Store(cfg.Wave.FastFrequency)
	w.fastAmp.Store(cfg.Wave.FastAmplitude)
	w.slowPeriod.Store(cfg.Wave.SlowPeriod)
	w.slowAmp.Store(cfg.Wave.SlowAmplitude)
	return w
}

func (w *WaveDriver) SetFrequency(f float64) {
	w.fastFreq.Store(Clamp(f, MinFrequency, MaxFrequency))
}

func (w *WaveDriver) Frequency() float64 {
	return w.fastFreq.Load()
}

func (w *WaveDriver) SetFastAmplitude(a float64) {
	w.fastAmp.Store(Clamp(a, MinFastAmplitude, MaxFastAmplitude))
}

func (w *WaveDriver) FastAmplitude() float64 {
	return w.fastAmp.Load()
}

func (w *WaveDriver) SetSlowPeriod(p float64) {
	w.slowPeriod.Store(Clamp(p, MinSlowPeriod, MaxSlowPeriod))
}

func (w *WaveDriver) SlowPeriod() float64 {
	return w.slowPeriod.Load()
}

func (w *WaveDriver) SetSlowAmplitude(a float64) {
	w.slowAmp.Store(Clamp(a, MinSlowAmplitude, MaxSlowAmplitude))
}

func (w *WaveDriver) SlowAmplitude() float64 {
	return w.slowAmp.Load()
}

func waveEval(t, base, fastFreq, fastAmp, slowPeriod, slowAmp float64) (pos, vel float64) {
	slowFreq := 1.0 / slowPeriod
	pos = base +
		fastAmp*math.Sin(2*math.Pi*fastFreq*t) +
		slowAmp*math.Sin(2*math.Pi*slowFreq*t)
	vel = fastAmp*2*math.Pi*fastFreq*math.Cos(2*math.Pi*fastFreq*t) +
		slowAmp*2*math.Pi*slowFreq*math.Cos(2*math.Pi*slowFreq*t)
	return pos, vel
}

// Position returns the wall's X at simulation time t.
func (w *WaveDriver) Position(t float64) float64 {
	pos, _ := waveEval(t, w.baseX, w.Frequency(), w.FastAmplitude(), w.SlowPeriod(), w.SlowAmplitude())
	return pos
}

// Velocity is the analytic time derivative of Position.
func (w *WaveDriver) Velocity(t float64) float64 {
	_, vel := waveEval(t, w.baseX, w.Frequency(), w.FastAmplitude(), w.SlowPeriod(), w.SlowAmplitude())
	return vel
}

// Update moves the wall to its prescribed state for time t. Each parameter is
// loaded exactly once per tick, so a write from the UI goroutine takes effect
// wholesale on the next tick.
func (w *WaveDriver) Update(t float64) {
	pos, vel := waveEval(t, w.baseX,
		w.fastFreq.Load(), w.fastAmp.Load(), w.slowPeriod.Load(), w.slowAmp.Load())
	w.wall.SetPositionX(pos)
	w.wall.Vel = Vector{vel, 0}
}

// Package palette runs the background color oscillator: a handful of HSL stops that each drift
// toward a random target over a random 9–15s interval, then pick a new target and start over.
// It knows nothing about the 3D scene and is ticked by its own frame subscription.
package palette

import (
	"math/rand/v2"

	"orbit-backdrop/internal/config"
	"orbit-backdrop/internal/ease"
)

// Stop is one gradient color in transition. Start and Duration are in milliseconds.
type Stop struct {
	Current  HSL
	Target   HSL
	Start    float64
	Duration float64
}

// Progress is the clamped fraction of the transition elapsed at now.
func (s Stop) Progress(now float64) float64 {
	if s.Duration <= 0 {
		return 1
	}
	return ease.Clamp01((now - s.Start) / s.Duration)
}

// Sample returns the eased color at now. Progress 0 gives Current exactly, 1 gives Target exactly.
func (s Stop) Sample(now float64) HSL {
	e := ease.CosInOut(s.Progress(now))
	switch e {
	case 0:
		return s.Current
	case 1:
		return s.Target
	}
	return Mix(s.Current, s.Target, e)
}

// Oscillator owns the stops and the RNG that feeds them.
type Oscillator struct {
	Stops        []Stop
	rng          *rand.Rand
	minDuration  float64
	maxDuration  float64
	synchronized bool
	transitions  uint64
}

// New creates an oscillator whose transitions start at now (ms). seed supplies starting colors
// by stop index; missing entries are random. Synchronized stops share one duration and restart together.
func New(cfg config.Palette, rng *rand.Rand, now float64, seed map[int]HSL) *Oscillator {
	o := &Oscillator{
		Stops:        make([]Stop, cfg.Stops),
		rng:          rng,
		minDuration:  cfg.MinDurationMs,
		maxDuration:  cfg.MaxDurationMs,
		synchronized: cfg.Synchronized,
	}
	for i := range o.Stops {
		cur, ok := seed[i]
		if !ok {
			cur = Random(rng)
		}
		o.Stops[i].Current = cur
	}
	for i := range o.Stops {
		o.Stops[i].Target = Random(rng)
	}
	o.restart(now, allStops(len(o.Stops)))
	return o
}

func allStops(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func (o *Oscillator) duration() float64 {
	return o.minDuration + o.rng.Float64()*(o.maxDuration-o.minDuration)
}

// restart stamps a new start and duration on the given stops.
func (o *Oscillator) restart(now float64, idx []int) {
	shared := o.duration()
	for _, i := range idx {
		d := shared
		if !o.synchronized {
			d = o.duration()
		}
		o.Stops[i].Start = now
		o.Stops[i].Duration = d
	}
}

// advance completes stop i's transition: the target becomes current and a new target is drawn.
func (o *Oscillator) advance(i int) {
	s := &o.Stops[i]
	s.Current = s.Target
	s.Target = Random(o.rng)
	o.transitions++
}

// Tick returns this frame's colors at now (ms). Stops whose transition finished are rolled over
// first, so a finished stop shows its new current color in the same frame.
func (o *Oscillator) Tick(now float64) []HSL {
	if o.synchronized {
		if len(o.Stops) > 0 && o.Stops[0].Progress(now) >= 1 {
			for i := range o.Stops {
				o.advance(i)
			}
			o.restart(now, allStops(len(o.Stops)))
		}
	} else {
		for i := range o.Stops {
			if o.Stops[i].Progress(now) >= 1 {
				o.advance(i)
				o.restart(now, []int{i})
			}
		}
	}
	out := make([]HSL, len(o.Stops))
	for i, s := range o.Stops {
		out[i] = s.Sample(now)
	}
	return out
}

// Transitions counts completed stop transitions.
func (o *Oscillator) Transitions() uint64 {
	return o.transitions
}

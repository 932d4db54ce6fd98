package anim

import (
	"github.com/chewxy/math32"
	"orbit-backdrop/internal/ease"
)

// keyframe is one stop of the flash pulse. At is a fraction of the cycle.
type keyframe struct {
	At      float32
	Opacity float32
	Scale   float32
}

// pulseKeys: fade in fast, decay to a glow, fade out. First and last stops match so the loop is closed.
var pulseKeys = [...]keyframe{
	{At: 0, Opacity: 0, Scale: 0.6},
	{At: 0.2, Opacity: 0.9, Scale: 1.1},
	{At: 0.5, Opacity: 0.4, Scale: 0.9},
	{At: 1, Opacity: 0, Scale: 0.6},
}

// Phase returns where time t falls in a cycle of length cycle for a marker delayed by delay.
// The result is always in [0, cycle), including for t < delay.
func Phase(t, delay, cycle float32) float32 {
	tau := math32.Mod(math32.Mod(t-delay, cycle)+cycle, cycle)
	if tau >= cycle {
		return 0
	}
	return tau
}

// Pulse evaluates the piecewise-linear flash curve at phase tau of a cycle of length cycle.
// With the default 3.6s cycle the segments break at 0.72s and 1.8s.
func Pulse(tau, cycle float32) (opacity, scale float32) {
	for i := 1; i < len(pulseKeys); i++ {
		prev, next := pulseKeys[i-1], pulseKeys[i]
		end := next.At * cycle
		if tau < end || i == len(pulseKeys)-1 {
			start := prev.At * cycle
			p := (tau - start) / (end - start)
			return ease.Lerp(prev.Opacity, next.Opacity, p), ease.Lerp(prev.Scale, next.Scale, p)
		}
	}
	return pulseKeys[0].Opacity, pulseKeys[0].Scale
}

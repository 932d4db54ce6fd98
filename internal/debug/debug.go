package debug

import (
	"fmt"

	"orbit-backdrop/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	logSize    = 10
	padding    = 12
	lineHeight = fontSize + 4

	// refresh text every N frames to keep Sprintf out of most frames
	updateInterval = 30
)

// Probe reports what the overlay shows besides FPS. Any field may be nil.
type Probe struct {
	Hovered      func() bool
	Transitions  func() uint64
	Frames       func() uint64
	HoverTests   func() uint64
	PointerMoves func() uint64
	LogLines     func() []string
}

// Overlay draws FPS, hover state and counters in the top-right corner, and the latest log
// line at the bottom-left. Everything is off unless enabled in config.
type Overlay struct {
	ShowFPS   bool
	ShowHover bool
	ShowStats bool
	probe     Probe

	frameCount uint32
	fpsText    string
	hoverText  string
	statsText  string
	logText    string
}

// New returns an overlay configured from cfg.
func New(cfg config.Debug, probe Probe) *Overlay {
	return &Overlay{ShowFPS: cfg.ShowFPS, ShowHover: cfg.ShowHover, ShowStats: cfg.ShowStats, probe: probe}
}

// Enabled reports whether Draw would draw anything.
func (o *Overlay) Enabled() bool {
	return o.ShowFPS || o.ShowHover || o.ShowStats
}

// Draw renders the enabled lines. Call last, after the 3D layer.
func (o *Overlay) Draw() {
	if !o.Enabled() {
		return
	}
	o.frameCount++
	if o.frameCount%updateInterval == 0 || o.frameCount == 1 {
		o.refresh()
	}

	y := int32(padding)
	if o.ShowFPS {
		drawRight(o.fpsText, y, rl.Green)
		y += lineHeight
	}
	// hover flips quickly, so it is not cached
	if o.ShowHover {
		col := rl.Gray
		if o.probe.Hovered != nil && o.probe.Hovered() {
			col = rl.Green
		}
		drawRight(o.hoverText, y, col)
		y += lineHeight
	}
	if o.ShowStats {
		drawRight(o.statsText, y, rl.Gray)
		if o.logText != "" {
			rl.DrawText(o.logText, padding, int32(rl.GetScreenHeight())-padding-logSize, logSize, rl.Gray)
		}
	}
}

func (o *Overlay) refresh() {
	o.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	o.hoverText = "hover"
	if o.probe.Transitions != nil {
		o.hoverText = fmt.Sprintf("hover | palette %d", o.probe.Transitions())
	}
	o.statsText = fmt.Sprintf("frames %d | rays %d | moves %d",
		count(o.probe.Frames), count(o.probe.HoverTests), count(o.probe.PointerMoves))
	o.logText = ""
	if o.probe.LogLines != nil {
		if lines := o.probe.LogLines(); len(lines) > 0 {
			o.logText = lines[len(lines)-1]
		}
	}
}

func count(fn func() uint64) uint64 {
	if fn == nil {
		return 0
	}
	return fn()
}

func drawRight(text string, y int32, col rl.Color) {
	if text == "" {
		return
	}
	x := int32(rl.GetScreenWidth()) - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, y, fontSize, col)
}

package graphics

import (
	"orbit-backdrop/internal/config"
	"orbit-backdrop/internal/frame"
	"orbit-backdrop/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Host owns the window and the main loop. Each frame it delivers resize and pointer-move
// notifications, runs the frame subscriptions (animation, palette, ...), then clears the screen
// and calls the draw layers in the order they were added.
type Host struct {
	cfg    config.Window
	log    *logger.Logger
	frames *frame.Scheduler

	onResize []func(width, height int)
	onMove   []func(x, y, width, height float32)
	layers   []func()
	closers  []func()

	width, height int
	mouse         rl.Vector2
	mouseSeen     bool
}

// NewHost returns a host for the given window settings. Nothing touches raylib until Run.
func NewHost(cfg config.Window, log *logger.Logger) *Host {
	return &Host{cfg: cfg, log: log, frames: frame.NewScheduler()}
}

// OnFrame subscribes fn to every frame with the time in seconds since the window opened.
// The returned func cancels only this subscription.
func (h *Host) OnFrame(fn frame.Callback) (cancel func()) {
	return h.frames.Subscribe(fn)
}

// OnResize registers fn for viewport size changes. It is also called once with the initial size.
func (h *Host) OnResize(fn func(width, height int)) {
	h.onResize = append(h.onResize, fn)
}

// OnPointerMove registers fn for mouse movement, in window pixels plus the current viewport size.
func (h *Host) OnPointerMove(fn func(x, y, width, height float32)) {
	h.onMove = append(h.onMove, fn)
}

// AddLayer appends a draw layer. Layers run between BeginDrawing and EndDrawing, first added first drawn.
func (h *Host) AddLayer(draw func()) {
	h.layers = append(h.layers, draw)
}

// Stop makes Run return after the current frame. Call it from the loop goroutine, e.g. from an OnFrame callback.
func (h *Host) Stop() {
	h.frames.Stop()
}

// Stopped reports whether Stop was called.
func (h *Host) Stopped() bool {
	return h.frames.Stopped()
}

// OnClose registers fn to run while the window and GL context still exist, e.g. to unload textures.
// Closers run in reverse registration order.
func (h *Host) OnClose(fn func()) {
	h.closers = append(h.closers, fn)
}

// Run opens the window and blocks until it is closed or Stop is called.
// Window is resizable; fullscreen uses the primary monitor's size. ESC closes the window.
func (h *Host) Run() {
	rl.SetTraceLogCallback(h.traceLog)
	rl.SetTraceLogLevel(rl.LogWarning)

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(h.cfg.Width), int32(h.cfg.Height), h.cfg.Title)
	defer rl.CloseWindow()
	defer func() {
		for i := len(h.closers) - 1; i >= 0; i-- {
			h.closers[i]()
		}
	}()

	if h.cfg.Fullscreen {
		m := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(m), rl.GetMonitorHeight(m))
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(int32(h.cfg.TargetFPS))
	h.log.Logf(logger.Info, "window %dx%d opened", rl.GetScreenWidth(), rl.GetScreenHeight())

	for !rl.WindowShouldClose() && !h.Stopped() {
		h.pollResize()
		h.pollPointer()
		h.frames.Dispatch(rl.GetTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		for _, draw := range h.layers {
			draw()
		}
		rl.EndDrawing()
	}
	h.log.Log("window closed")
}

// pollResize notifies listeners when the viewport size differs from the last one seen.
// Same-size frames do nothing, so listeners see each size once.
func (h *Host) pollResize() {
	w, ht := rl.GetScreenWidth(), rl.GetScreenHeight()
	if w == h.width && ht == h.height {
		return
	}
	h.width, h.height = w, ht
	for _, fn := range h.onResize {
		fn(w, ht)
	}
}

// pollPointer turns raylib's polled mouse position into move notifications.
func (h *Host) pollPointer() {
	m := rl.GetMousePosition()
	if h.mouseSeen && m == h.mouse {
		return
	}
	h.mouse, h.mouseSeen = m, true
	for _, fn := range h.onMove {
		fn(m.X, m.Y, float32(h.width), float32(h.height))
	}
}

// traceLog routes raylib's own log output into the backdrop log.
func (h *Host) traceLog(level int, text string) {
	switch {
	case level >= int(rl.LogError):
		h.log.Logf(logger.Error, "raylib: %s", text)
	case level >= int(rl.LogWarning):
		h.log.Logf(logger.Warn, "raylib: %s", text)
	default:
		h.log.Logf(logger.Info, "raylib: %s", text)
	}
}

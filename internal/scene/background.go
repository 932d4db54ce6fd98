package scene

import (
	"orbit-backdrop/internal/palette"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Background paints the window behind the 3D layer as a vertical gradient through the
// palette's stops. It is the on-screen consumer of the --gN style variables.
type Background struct {
	sheet  *palette.Sheet
	colors []rl.Color
}

// NewBackground returns a background that stays black until the first Apply.
func NewBackground() *Background {
	return &Background{sheet: palette.NewSheet()}
}

// Apply implements palette.Sink. Colors are read back from the formatted variables so the
// window shows exactly what a stylesheet consumer would.
func (b *Background) Apply(vars []palette.Var) error {
	if err := b.sheet.Apply(vars); err != nil {
		return err
	}
	hsl := b.sheet.Colors()
	b.colors = b.colors[:0]
	for _, c := range hsl {
		rgba := c.RGBA()
		b.colors = append(b.colors, rl.NewColor(rgba.R, rgba.G, rgba.B, rgba.A))
	}
	return nil
}

// Draw fills the screen. Call after ClearBackground and before the 3D layer.
func (b *Background) Draw() {
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	switch len(b.colors) {
	case 0:
		return
	case 1:
		rl.DrawRectangle(0, 0, w, h, b.colors[0])
		return
	}
	bands := int32(len(b.colors) - 1)
	y := int32(0)
	for i := int32(0); i < bands; i++ {
		next := h * (i + 1) / bands
		rl.DrawRectangleGradientV(0, y, w, next-y, b.colors[i], b.colors[i+1])
		y = next
	}
}

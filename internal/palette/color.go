package palette

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// HSL is hue in degrees, saturation and lightness in percent.
type HSL [3]float64

// Random ranges for generated stops.
const (
	hueRange  = 360
	satMin    = 50
	satSpan   = 30
	lightMin  = 35
	lightSpan = 20
)

// Random draws hue in [0,360), saturation in [50,80], lightness in [35,55].
func Random(rng *rand.Rand) HSL {
	return HSL{
		rng.Float64() * hueRange,
		satMin + rng.Float64()*satSpan,
		lightMin + rng.Float64()*lightSpan,
	}
}

// Mix interpolates each channel independently; hue is not wrapped.
func Mix(a, b HSL, e float64) HSL {
	return HSL{
		a[0] + (b[0]-a[0])*e,
		a[1] + (b[1]-a[1])*e,
		a[2] + (b[2]-a[2])*e,
	}
}

// roundHalfUp rounds like a browser's Math.round (halves go toward +Inf).
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Format renders c as "hsl(H S% L%)" with integer components.
func Format(c HSL) string {
	return fmt.Sprintf("hsl(%d %d%% %d%%)", roundHalfUp(c[0]), roundHalfUp(c[1]), roundHalfUp(c[2]))
}

// RGBA converts c to an opaque sRGB color.
func (c HSL) RGBA() color.RGBA {
	h := math.Mod(c[0], 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, c[1]/100, c[2]/100).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// ErrNotHSL is returned by ParseHSL for values that are not an hsl()/hsla() function.
var ErrNotHSL = errors.New("not an hsl() color")

// ParseHSL reads "hsl(H S% L%)" or the comma form "hsl(H, S%, L%)". A trailing alpha is ignored.
func ParseHSL(s string) (HSL, error) {
	l := css.NewLexer(parse.NewInputString(strings.TrimSpace(s)))
	var out HSL
	n := 0
	inside := false
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if l.Err() != io.EOF {
				return HSL{}, l.Err()
			}
			return HSL{}, fmt.Errorf("%w: %q unterminated", ErrNotHSL, s)
		case css.FunctionToken:
			name := strings.ToLower(strings.TrimSuffix(string(data), "("))
			if inside || (name != "hsl" && name != "hsla") {
				return HSL{}, fmt.Errorf("%w: %q", ErrNotHSL, s)
			}
			inside = true
		case css.NumberToken, css.PercentageToken, css.DimensionToken:
			if !inside {
				return HSL{}, fmt.Errorf("%w: %q", ErrNotHSL, s)
			}
			if n == 3 {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimRight(strings.ToLower(string(data)), "%degrad"), 64)
			if err != nil {
				return HSL{}, fmt.Errorf("%w: %q: %v", ErrNotHSL, s, err)
			}
			out[n] = v
			n++
		case css.RightParenthesisToken:
			if n < 3 {
				return HSL{}, fmt.Errorf("%w: %q has %d components", ErrNotHSL, s, n)
			}
			return out, nil
		case css.WhitespaceToken, css.CommaToken, css.DelimToken:
		default:
			return HSL{}, fmt.Errorf("%w: %q", ErrNotHSL, s)
		}
	}
}

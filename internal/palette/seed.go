package palette

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS collects --gN custom properties holding hsl() colors from a stylesheet.
// The result maps zero-based stop index to color; later declarations win.
// Other declarations, and --gN values that are not hsl(), are ignored.
func ParseCSS(r io.Reader) (map[int]HSL, error) {
	p := css.NewParser(parse.NewInput(r), false)
	out := make(map[int]HSL)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if p.Err() == io.EOF {
				return out, nil
			}
			return out, fmt.Errorf("parse css: %w", p.Err())
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			idx, ok := stopIndex(string(data))
			if !ok {
				continue
			}
			var val strings.Builder
			for _, tok := range p.Values() {
				val.Write(tok.Data)
			}
			c, err := ParseHSL(val.String())
			if err != nil {
				continue
			}
			out[idx] = c
		}
	}
}

// stopIndex maps "--g3" to 2.
func stopIndex(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.HasPrefix(name, "--g") {
		return 0, false
	}
	n, err := strconv.Atoi(name[3:])
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

// LoadCSS reads seed colors from a stylesheet file. An empty path yields no seed.
func LoadCSS(path string) (map[int]HSL, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed css: %w", err)
	}
	defer f.Close()
	return ParseCSS(f)
}

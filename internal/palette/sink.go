package palette

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Var is one style variable, e.g. {"--g1", "hsl(120 60% 40%)"}.
type Var struct {
	Name  string
	Value string
}

// VarName is the style variable for stop i (zero-based): --g1, --g2, ...
func VarName(i int) string {
	return fmt.Sprintf("--g%d", i+1)
}

// Vars formats colors as style variables in stop order.
func Vars(colors []HSL) []Var {
	out := make([]Var, len(colors))
	for i, c := range colors {
		out[i] = Var{Name: VarName(i), Value: Format(c)}
	}
	return out
}

// Sink is the presentation side of the oscillator: it receives every frame's variables.
type Sink interface {
	Apply(vars []Var) error
}

// Sinks fans variables out to several sinks; every sink is applied and the first error is returned.
type Sinks []Sink

// Apply implements Sink.
func (s Sinks) Apply(vars []Var) error {
	var first error
	for _, sink := range s {
		if err := sink.Apply(vars); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Sheet keeps the latest variables in memory, like a document root's inline style.
type Sheet struct {
	vars map[string]string
	keys []string
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{vars: make(map[string]string)}
}

// Apply implements Sink.
func (s *Sheet) Apply(vars []Var) error {
	for _, v := range vars {
		if _, ok := s.vars[v.Name]; !ok {
			s.keys = append(s.keys, v.Name)
		}
		s.vars[v.Name] = v.Value
	}
	return nil
}

// Colors parses the sheet's variables back into colors, in the order they were first set.
// Values that are not hsl() are skipped.
func (s *Sheet) Colors() []HSL {
	out := make([]HSL, 0, len(s.keys))
	for _, k := range s.keys {
		c, err := ParseHSL(s.vars[k])
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

// RenderRoot formats vars as a :root rule.
func RenderRoot(vars []Var) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, v := range vars {
		fmt.Fprintf(&b, "  %s: %s;\n", v.Name, v.Value)
	}
	b.WriteString("}\n")
	return b.String()
}

// CSSFile mirrors the variables into a stylesheet on disk. The file is rewritten only when the
// rendered text changes; since components are integers that happens a few times per second at most.
type CSSFile struct {
	Path   string
	last   string
	writes int
}

// NewCSSFile returns a sink writing to path.
func NewCSSFile(path string) *CSSFile {
	return &CSSFile{Path: path}
}

// Apply implements Sink. The file is replaced atomically via a temp file in the same directory.
func (f *CSSFile) Apply(vars []Var) error {
	text := RenderRoot(vars)
	if text == f.last {
		return nil
	}
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create style dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".backdrop-*.css")
	if err != nil {
		return fmt.Errorf("create style temp: %w", err)
	}
	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write style: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close style: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace style %s: %w", f.Path, err)
	}
	f.last = text
	f.writes++
	return nil
}

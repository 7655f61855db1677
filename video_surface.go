package main

import (
	"image/color"
	"math"
)

type surfaceOp struct {
	Kind   string
	Coords []float64
	Text   string
	Align  TextAlign
	Color  color.RGBA
}

// recordingSurface keeps every draw call. The headless backend renders into
// it, and tests inspect it.
type recordingSurface struct {
	w, h      float64
	charWidth float64
	lineH     float64
	ops       []surfaceOp
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{w: w, h: h, charWidth: 7, lineH: 13}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func (s *recordingSurface) record(kind string, c color.Color, coords ...float64) {
	s.ops = append(s.ops, surfaceOp{Kind: kind, Coords: coords, Color: toRGBA(c)})
}

func (s *recordingSurface) Size() (float64, float64) { return s.w, s.h }

func (s *recordingSurface) Clear(c color.Color) {
	s.ops = s.ops[:0]
	s.record("clear", c)
}

func (s *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.record("rect", c, x, y, w, h)
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, c color.Color) {
	s.record("circle", c, cx, cy, r)
}

func (s *recordingSurface) Line(x1, y1, x2, y2, width float64, c color.Color) {
	s.record("line", c, x1, y1, x2, y2, width)
}

func (s *recordingSurface) Arc(cx, cy, r, start, end, width float64, c color.Color) {
	s.record("arc", c, cx, cy, r, start, end, width)
}

func (s *recordingSurface) Text(str string, x, y float64, align TextAlign, c color.Color) {
	s.ops = append(s.ops, surfaceOp{Kind: "text", Coords: []float64{x, y}, Text: str, Align: align, Color: toRGBA(c)})
}

func (s *recordingSurface) TextWidth(str string) float64 {
	return float64(len([]rune(str))) * s.charWidth
}

func (s *recordingSurface) LineHeight() float64 { return s.lineH }

// arcPoints approximates an arc as a polyline, one vertex per π/32 of sweep.
func arcPoints(cx, cy, r, start, end float64) []Point {
	n := int(math.Ceil(math.Abs(end-start) / (math.Pi / 32)))
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		a := start + (end-start)*float64(i)/float64(n)
		pts[i] = Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return pts
}

package main

import "math"

// Point is a position in logical screen pixels.
type Point struct {
	X, Y float64
}

// Region is a named hit area tested by the input router.
type Region interface {
	Contains(p Point) bool
}

// Circle is a round hit area, used for pedal knobs and toggles.
type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) Contains(p Point) bool {
	return math.Hypot(p.X-c.Center.X, p.Y-c.Center.Y) < c.Radius
}

// KeyboardStrip is the bottom band of the screen split into equal key buckets.
type KeyboardStrip struct {
	Width       float64
	Height      float64 // full screen height
	StripHeight float64
	Keys        int
}

func (k KeyboardStrip) Contains(p Point) bool {
	return p.Y > k.Height-k.StripHeight
}

func (k KeyboardStrip) KeyWidth() float64 {
	if k.Keys <= 0 {
		return 0
	}
	return k.Width / float64(k.Keys)
}

// IndexAt returns the key bucket under p. Points outside the strip, or
// horizontally outside [0, Width), report false.
func (k KeyboardStrip) IndexAt(p Point) (int, bool) {
	if !k.Contains(p) {
		return 0, false
	}
	kw := k.KeyWidth()
	if kw <= 0 {
		return 0, false
	}
	idx := int(math.Floor(p.X / kw))
	if idx < 0 || idx >= k.Keys {
		return 0, false
	}
	return idx, true
}

// KeyRect returns the full bucket rectangle of key i.
func (k KeyboardStrip) KeyRect(i int) (x, y, w, h float64) {
	kw := k.KeyWidth()
	return float64(i) * kw, k.Height - k.StripHeight, kw, k.StripHeight
}

var (
	_ Region = Circle{}
	_ Region = KeyboardStrip{}
)

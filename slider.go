package main

import "math"

const SLIDER_GRAB_WIDTH = 16

// Slider is a vertical integer range control; values grow upward.
type Slider struct {
	min, max, step int
	value          int
	center         Point
	length         float64
	grabbed        bool
}

func NewSlider(min, max, value, step int, center Point, length float64) *Slider {
	if step <= 0 {
		step = 1
	}
	s := &Slider{
		min:    min,
		max:    max,
		step:   step,
		center: center,
		length: length,
	}
	s.SetValue(value)
	return s
}

func (s *Slider) Value() int { return s.value }

func (s *Slider) SetValue(v int) {
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	s.value = s.min + (v-s.min)/s.step*s.step
}

// Track returns the x position and the top/bottom ends of the track.
func (s *Slider) Track() (x, top, bottom float64) {
	return s.center.X, s.center.Y - s.length/2, s.center.Y + s.length/2
}

// ThumbY is the vertical position of the thumb for the current value.
func (s *Slider) ThumbY() float64 {
	_, top, bottom := s.Track()
	t := float64(s.value-s.min) / float64(s.max-s.min)
	return bottom - t*(bottom-top)
}

func (s *Slider) contains(p Point) bool {
	x, top, bottom := s.Track()
	return math.Abs(p.X-x) <= SLIDER_GRAB_WIDTH/2 && p.Y >= top-SLIDER_GRAB_WIDTH/2 && p.Y <= bottom+SLIDER_GRAB_WIDTH/2
}

func (s *Slider) valueAt(y float64) int {
	_, top, bottom := s.Track()
	t := (bottom - y) / (bottom - top)
	t = math.Max(0, math.Min(1, t))
	steps := math.Round(t * float64(s.max-s.min) / float64(s.step))
	return s.min + int(steps)*s.step
}

// Press grabs the slider when p lands on its track and jumps the value there.
func (s *Slider) Press(p Point) bool {
	if !s.contains(p) {
		return false
	}
	s.grabbed = true
	s.SetValue(s.valueAt(p.Y))
	return true
}

func (s *Slider) Drag(p Point) {
	if s.grabbed {
		s.SetValue(s.valueAt(p.Y))
	}
}

func (s *Slider) Release() { s.grabbed = false }

func (s *Slider) Grabbed() bool { return s.grabbed }

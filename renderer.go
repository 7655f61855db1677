// renderer.go - Frame renderer for the keyboard, pedals and waveform

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/PedalSynth
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/intuitionamiga/pedalsynth/synth"
)

var (
	colBlack    = color.RGBA{0, 0, 0, 255}
	colWhite    = color.RGBA{255, 255, 255, 255}
	colGold     = color.RGBA{255, 215, 0, 255}
	colSkyBlue  = color.RGBA{135, 206, 235, 255}
	colPlum     = color.RGBA{221, 160, 221, 255}
	colOrange   = color.RGBA{255, 165, 0, 255}
	colDarkRed  = color.RGBA{139, 0, 0, 255}
	colRed      = color.RGBA{255, 0, 0, 255}
	colGreen    = color.RGBA{0, 128, 0, 255}
	colKnobBase = color.RGBA{40, 40, 40, 255}
	colKnobFace = color.RGBA{20, 20, 20, 255}
	colSerrate  = color.RGBA{60, 60, 60, 255}
	colTrack    = color.RGBA{90, 90, 90, 255}
)

const (
	KNOB_BASE_RADIUS = 25
	KNOB_FACE_RADIUS = 20
	SERRATIONS       = 20
	PEDAL_TITLE_Y    = 50
	PEDAL_TEXT_TOP   = 40
	PEDAL_TEXT_W     = 100
	PEDAL_TEXT_H     = 150
	STATUS_X         = 10
	STATUS_Y         = 10
	STATUS_STEP      = 20
)

// Renderer paints the whole UI from AppState. It keeps no state of its own.
type Renderer struct{}

func (Renderer) Draw(s Surface, st *AppState, wave []float32) {
	s.Clear(colBlack)
	w, h := s.Size()
	if !st.Initialised {
		lw := s.LineHeight()
		s.Text(SPLASH_TEXT, w/2, h/2-lw/2, ALIGN_CENTER, colWhite)
		return
	}
	drawWaveform(s, wave, w, h)
	drawStatus(s, st)
	drawSostenuto(s, st)
	drawModulation(s, st)
	drawPitchShift(s, st)
	drawKeys(s, st.Layout.Keyboard)
}

func drawWaveform(s Surface, wave []float32, w, h float64) {
	for _, seg := range WaveformTrace(wave, w, h) {
		s.Line(seg.X1, seg.Y1, seg.X2, seg.Y2, 1, colWhite)
	}
}

// statusLines is the text block in the top-left corner.
func statusLines(st *AppState) []string {
	sustain := "OFF (Use spacebar to enable)"
	if st.Sustain {
		sustain = "ON"
	}
	return []string{
		fmt.Sprintf("Detune: %g", st.DetuneCents),
		fmt.Sprintf("Mod Depth: %d", st.Modulation.Depth()),
		"Sustain: " + sustain,
		"Sostenuto: " + st.Sostenuto.Mode().String(),
	}
}

func drawStatus(s Surface, st *AppState) {
	for i, line := range statusLines(st) {
		s.Text(line, STATUS_X, STATUS_Y+float64(i*STATUS_STEP), ALIGN_LEFT, colWhite)
	}
}

// wrapText breaks s into lines no wider than maxWidth.
func wrapText(s Surface, str string, maxWidth float64) []string {
	var lines []string
	var cur string
	for _, word := range strings.Fields(str) {
		next := word
		if cur != "" {
			next = cur + " " + word
		}
		if cur != "" && s.TextWidth(next) > maxWidth {
			lines = append(lines, cur)
			cur = word
			continue
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

func drawPedalBox(s Surface, b PedalBox, fill color.Color) {
	s.FillRect(b.X, b.Y, b.W, b.H, fill)
	lh := s.LineHeight()
	s.Text(b.Title, b.CenterX(), PEDAL_TITLE_Y-lh/2, ALIGN_CENTER, colBlack)

	lines := wrapText(s, b.Description, PEDAL_TEXT_W)
	y := PEDAL_TEXT_TOP + (PEDAL_TEXT_H-float64(len(lines))*lh)/2
	for _, line := range lines {
		s.Text(line, b.CenterX(), y, ALIGN_CENTER, colBlack)
		y += lh
	}
}

func drawSerrations(s Surface, c Point, rotation float64) {
	for i := 0; i < SERRATIONS; i++ {
		a := rotation + float64(i)*TWO_PI/SERRATIONS
		s.Line(c.X+28*math.Cos(a), c.Y+28*math.Sin(a), c.X+30*math.Cos(a), c.Y+30*math.Sin(a), 1, colSerrate)
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t)) }
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// sostenutoLamp is the toggle colour for the current mode. Holding pulses.
func sostenutoLamp(mode SostenutoMode, frame uint64) color.RGBA {
	switch mode {
	case SostenutoHolding:
		t := (math.Sin(float64(frame)*0.05) + 1) / 2
		return lerpRGBA(colDarkRed, colRed, t)
	case SostenutoBlocking:
		return colGreen
	default:
		return colKnobBase
	}
}

func drawSostenuto(s Surface, st *AppState) {
	b := st.Layout.Sostenuto
	drawPedalBox(s, b, colGold)
	s.FillCircle(b.Knob.X, b.Knob.Y, KNOB_BASE_RADIUS, sostenutoLamp(st.Sostenuto.Mode(), st.Frame))
	s.FillCircle(b.Knob.X, b.Knob.Y, KNOB_FACE_RADIUS, colKnobFace)
	drawSerrations(s, b.Knob, 0)
}

func drawModulation(s Surface, st *AppState) {
	b := st.Layout.Modulation
	c := b.Knob
	angle := st.Modulation.Angle()
	drawPedalBox(s, b, colSkyBlue)
	s.FillCircle(c.X, c.Y, KNOB_BASE_RADIUS, colKnobBase)
	s.FillCircle(c.X, c.Y, KNOB_FACE_RADIUS, colKnobFace)
	if angle > 0 {
		s.Arc(c.X, c.Y, KNOB_BASE_RADIUS, -math.Pi/2, -math.Pi/2+angle, 5, colOrange)
	}

	// Indicator points up at angle zero and turns clockwise.
	sin, cos := math.Sincos(angle)
	s.Line(c.X+25*sin, c.Y-25*cos, c.X+15*sin, c.Y-15*cos, 2, colWhite)
	drawSerrations(s, c, angle)

	s.Text(fmt.Sprint(st.Modulation.Depth()), c.X, c.Y+45-s.LineHeight(), ALIGN_CENTER, colBlack)
}

func drawPitchShift(s Surface, st *AppState) {
	b := st.Layout.PitchShift
	drawPedalBox(s, b, colPlum)

	x, top, bottom := st.Slider.Track()
	s.Line(x, top, x, bottom, 4, colTrack)
	s.FillCircle(x, st.Slider.ThumbY(), 7, colWhite)

	if hz, ok := st.PitchShift.DisplayFrequency(st.Slider.Value()); ok {
		s.Text(fmt.Sprint(int(math.Floor(hz))), b.Knob.X, b.Knob.Y+45, ALIGN_CENTER, colBlack)
	}
}

func drawKeys(s Surface, kb KeyboardStrip) {
	for i, note := range synth.Notes() {
		x, y, w, h := kb.KeyRect(i)
		if note.IsSharp() {
			s.FillRect(x, y, w, h, colBlack)
		} else {
			s.FillRect(x, y, w-5, h, colWhite)
		}
	}
}

package main

import "github.com/intuitionamiga/pedalsynth/synth"

const (
	KEYBOARD_HEIGHT = 100

	PEDAL_BOX_WIDTH  = 125
	PEDAL_BOX_HEIGHT = 250
	PEDAL_BOX_TOP    = 20
	PEDAL_SPACING    = 150
	PEDAL_KNOB_Y     = 210

	SOSTENUTO_TOGGLE_RADIUS = 25
	MODULATION_KNOB_RADIUS  = 40

	SLIDER_LENGTH = 80
)

// PedalBox is the panel of one effect pedal.
type PedalBox struct {
	X, Y, W, H  float64
	Title       string
	Description string
	Knob        Point
}

func (b PedalBox) CenterX() float64 { return b.X + b.W/2 }

// Layout holds every screen-space position derived from the window size.
type Layout struct {
	Width, Height float64

	Keyboard   KeyboardStrip
	Sostenuto  PedalBox
	Modulation PedalBox
	PitchShift PedalBox

	SostenutoToggle Circle
	ModulationKnob  Circle
}

func newPedalBox(x float64, title, desc string) PedalBox {
	return PedalBox{
		X:           x,
		Y:           PEDAL_BOX_TOP,
		W:           PEDAL_BOX_WIDTH,
		H:           PEDAL_BOX_HEIGHT,
		Title:       title,
		Description: desc,
		Knob:        Point{X: x + PEDAL_BOX_WIDTH/2.0, Y: PEDAL_KNOB_Y},
	}
}

// NewLayout places the sostenuto pedal at three quarters of the width with
// the modulation and pitch shift pedals stepping left from it.
func NewLayout(width, height float64) Layout {
	sx := width / 4 * 3
	l := Layout{
		Width:  width,
		Height: height,
		Keyboard: KeyboardStrip{
			Width:       width,
			Height:      height,
			StripHeight: KEYBOARD_HEIGHT,
			Keys:        synth.NoteCount(),
		},
		Sostenuto: newPedalBox(sx, "Sostenuto",
			"Holds notes already playing when pressed, but ignores new ones, allowing selective sustain without blurring the sound."),
		Modulation: newPedalBox(sx-PEDAL_SPACING, "Modulation",
			"Modulates the pitch or amplitude of the notes, creating vibrato or tremolo effects, adding richness and depth to the sound."),
		PitchShift: newPedalBox(sx-2*PEDAL_SPACING, "Pitch Shift",
			"Transposes notes up or down within one semitone without changing their duration or tempo."),
	}
	l.SostenutoToggle = Circle{Center: l.Sostenuto.Knob, Radius: SOSTENUTO_TOGGLE_RADIUS}
	l.ModulationKnob = Circle{Center: l.Modulation.Knob, Radius: MODULATION_KNOB_RADIUS}
	return l
}

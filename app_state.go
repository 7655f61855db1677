package main

const SPLASH_TEXT = "Press the spacebar to enter the sonic realm"

// AppState is the whole mutable UI state. It is owned by the game thread.
type AppState struct {
	Layout Layout

	Initialised bool
	Sustain     bool
	DetuneCents float64

	Sostenuto  SostenutoPedal
	Modulation *ModulationKnob
	PitchShift PitchShiftPedal
	Slider     *Slider

	// Active is the voice captured at pointer press, nil otherwise.
	Active NoteVoice

	Frame uint64
}

// NewAppState builds the layout and every widget up front.
func NewAppState(width, height, detuneCents float64) *AppState {
	l := NewLayout(width, height)
	sliderCenter := Point{X: l.PitchShift.Knob.X, Y: l.PitchShift.Knob.Y - 10}
	return &AppState{
		Layout:      l,
		DetuneCents: detuneCents,
		Modulation:  NewModulationKnob(l.ModulationKnob.Center),
		Slider: NewSlider(PITCH_SLIDER_MIN, PITCH_SLIDER_MAX, PITCH_SLIDER_DEFAULT, 1,
			sliderCenter, SLIDER_LENGTH),
	}
}

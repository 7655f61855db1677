package main

import "github.com/intuitionamiga/pedalsynth/synth"

const (
	PITCH_SLIDER_MIN     = 0
	PITCH_SLIDER_MAX     = 255
	PITCH_SLIDER_DEFAULT = 127
)

// PitchShiftPedal maps the slider into ±1 semitone around the last note pressed.
type PitchShiftPedal struct {
	played   bool
	lastFreq float64
	minFreq  float64
	maxFreq  float64
}

// NotePlayed fixes the bounds until the next note press.
func (p *PitchShiftPedal) NotePlayed(freq float64) {
	p.played = true
	p.lastFreq = freq
	p.minFreq = freq / synth.SemitoneRatio
	p.maxFreq = freq * synth.SemitoneRatio
}

// Bounds reports false until a note has been played.
func (p *PitchShiftPedal) Bounds() (min, max float64, ok bool) {
	return p.minFreq, p.maxFreq, p.played
}

func (p *PitchShiftPedal) LastPlayed() (float64, bool) {
	return p.lastFreq, p.played
}

// DisplayFrequency linearly interpolates a slider value into the current bounds.
func (p *PitchShiftPedal) DisplayFrequency(value int) (float64, bool) {
	if !p.played {
		return 0, false
	}
	t := float64(value-PITCH_SLIDER_MIN) / float64(PITCH_SLIDER_MAX-PITCH_SLIDER_MIN)
	return p.minFreq + (p.maxFreq-p.minFreq)*t, true
}

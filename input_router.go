// input_router.go - Pointer and keyboard routing for the pedals and keyboard

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

import "github.com/intuitionamiga/pedalsynth/synth"

const KEY_SPACE = 32

// NoteVoice is one polyphonic voice family bound to a note name.
type NoteVoice interface {
	TriggerAttack(freqs []float64)
	ReleaseAll()
}

// VoiceBank resolves note names to voices. Voice returns nil for unknown names.
type VoiceBank interface {
	Voice(name string) NoteVoice
	ReleaseAll()
}

// AudioStarter opens the audio path on the first space press.
type AudioStarter interface {
	Start()
}

// InputRouter turns pointer and key events into pedal changes and note triggers.
type InputRouter struct {
	state *AppState
	bank  VoiceBank
	audio AudioStarter
}

func NewInputRouter(state *AppState, bank VoiceBank, audio AudioStarter) *InputRouter {
	return &InputRouter{state: state, bank: bank, audio: audio}
}

// NoteAt maps a pointer position to the note under it.
func (r *InputRouter) NoteAt(p Point) (synth.NoteFrequency, bool) {
	idx, ok := r.state.Layout.Keyboard.IndexAt(p)
	if !ok {
		return synth.NoteFrequency{}, false
	}
	return synth.NoteAt(idx)
}

// PointerDown runs every hit check in order. Presses before the audio
// engine has started are ignored.
func (r *InputRouter) PointerDown(p Point) {
	st := r.state
	if !st.Initialised {
		return
	}

	if note, ok := r.NoteAt(p); ok {
		if v := r.bank.Voice(note.Name); v != nil {
			v.TriggerAttack(synth.ModulatedPair(note.Hz, st.Modulation.Depth()))
			st.Active = v
			st.PitchShift.NotePlayed(note.Hz)
			st.Sostenuto.NotePressed(note.Name)
		}
	}

	if st.Layout.SostenutoToggle.Contains(p) {
		st.Sostenuto.Toggle(r.bank)
	}

	if st.Layout.ModulationKnob.Contains(p) {
		st.Modulation.BeginDrag(p)
	}

	st.Slider.Press(p)
}

// PointerUp releases the captured voice. The suppression check looks at the
// note under the release point, not the one originally pressed.
func (r *InputRouter) PointerUp(p Point) {
	st := r.state
	if st.Active != nil {
		note, ok := r.NoteAt(p)
		held := st.Sustain || (ok && st.Sostenuto.Sustains(note.Name))
		if !held {
			st.Active.ReleaseAll()
		}
		st.Active = nil
	}
	st.Modulation.EndDrag()
	st.Slider.Release()
}

// PointerMove is called once per frame with the current cursor position.
func (r *InputRouter) PointerMove(p Point) {
	r.state.Modulation.Drag(p)
	r.state.Slider.Drag(p)
}

func (r *InputRouter) KeyDown(code int) {
	if code != KEY_SPACE {
		return
	}
	st := r.state
	if !st.Initialised {
		if r.audio != nil {
			r.audio.Start()
		}
		st.Initialised = true
		return
	}
	st.Sustain = !st.Sustain
}

func (r *InputRouter) KeyUp(code int) {
	if code != KEY_SPACE {
		return
	}
	r.bank.ReleaseAll()
}

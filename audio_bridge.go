package main

import "github.com/intuitionamiga/pedalsynth/synth"

// engineBank exposes the synth engine's per-note voices to the router.
type engineBank struct {
	engine *synth.Engine
}

func (b engineBank) Voice(name string) NoteVoice {
	v := b.engine.Voice(name)
	if v == nil {
		return nil
	}
	return v
}

func (b engineBank) ReleaseAll() { b.engine.ReleaseAll() }

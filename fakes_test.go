package main

import "github.com/intuitionamiga/pedalsynth/synth"

type fakeVoice struct {
	name     string
	triggers [][]float64
	releases int
}

func (v *fakeVoice) TriggerAttack(freqs []float64) {
	v.triggers = append(v.triggers, append([]float64(nil), freqs...))
}

func (v *fakeVoice) ReleaseAll() { v.releases++ }

type fakeBank struct {
	voices     map[string]*fakeVoice
	releaseAll int
	started    int
}

func newFakeBank() *fakeBank {
	b := &fakeBank{voices: make(map[string]*fakeVoice)}
	for _, name := range synth.NoteNames() {
		b.voices[name] = &fakeVoice{name: name}
	}
	return b
}

func (b *fakeBank) Voice(name string) NoteVoice {
	v, ok := b.voices[name]
	if !ok {
		return nil
	}
	return v
}

func (b *fakeBank) ReleaseAll() {
	b.releaseAll++
	for _, v := range b.voices {
		v.releases++
	}
}

func (b *fakeBank) Start() { b.started++ }

const (
	testWidth  = 1300 // 100 px per key
	testHeight = 600
)

// keyPoint is the centre of key i on the test layout.
func keyPoint(i int) Point {
	return Point{X: float64(i)*100 + 50, Y: testHeight - 50}
}

func noteIndex(name string) int {
	for i, n := range synth.NoteNames() {
		if n == name {
			return i
		}
	}
	return -1
}

func newTestRouter() (*InputRouter, *AppState, *fakeBank) {
	st := NewAppState(testWidth, testHeight, 0)
	bank := newFakeBank()
	return NewInputRouter(st, bank, bank), st, bank
}

// startedRouter has already seen the first space press.
func startedRouter() (*InputRouter, *AppState, *fakeBank) {
	r, st, bank := newTestRouter()
	r.KeyDown(KEY_SPACE)
	r.KeyUp(KEY_SPACE)
	bank.releaseAll = 0
	for _, v := range bank.voices {
		v.releases = 0
	}
	return r, st, bank
}

func click(r *InputRouter, p Point) {
	r.PointerDown(p)
	r.PointerUp(p)
}

// engine.go - Polyphonic FM engine with effect chain and waveform tap

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

package synth

import (
	"math"
	"sync"
)

const voiceMixLevel = 0.25

// SampleSink receives every block of master output, e.g. a WAV recorder.
type SampleSink interface {
	WriteSamples(samples []float32) error
}

// Engine mixes one PolySynth per note through the shared effect chain.
// Voice triggers come from the UI thread and Process runs on the audio
// device's goroutine, so all mutable state sits behind mu.
type Engine struct {
	mu         sync.Mutex
	sampleRate int
	params     Params
	synths     map[string]*PolySynth
	order      []string
	chorus     *Chorus
	reverb     *Reverb
	tremolo    *Tremolo
	masterDB   float64
	masterGain float64
	tap        *WaveformTap
	sink       SampleSink
	sinkErr    error
	started    bool
}

// NewEngine builds a PolySynth for every note in the table.
func NewEngine(sampleRate int, params Params) *Engine {
	if sampleRate <= 0 {
		sampleRate = SampleRate
	}
	fx := params.Effects
	e := &Engine{
		sampleRate: sampleRate,
		params:     params,
		synths:     make(map[string]*PolySynth, NoteCount()),
		chorus:     NewChorus(sampleRate, fx.ChorusFrequency, fx.ChorusDelayMs, fx.ChorusDepth),
		reverb:     NewReverb(sampleRate, fx.ReverbDecay, fx.ReverbMix),
		tremolo:    NewTremolo(sampleRate, fx.TremoloFrequency, fx.TremoloDepth),
		tap:        NewWaveformTap(WaveformSize),
	}
	for _, n := range Notes() {
		e.synths[n.Name] = NewPolySynth(sampleRate, params.Voice, params.Polyphony)
		e.order = append(e.order, n.Name)
	}
	e.setMasterVolumeLocked(params.MasterVolumeDB)
	return e
}

func (e *Engine) SampleRate() int { return e.sampleRate }

func (e *Engine) Params() Params { return e.params }

// Start opens the gate on the output. Before Start the engine renders silence.
func (e *Engine) Start() {
	e.mu.Lock()
	e.started = true
	e.mu.Unlock()
}

func (e *Engine) Started() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.started
}

func dbToGain(db float64) float64 {
	return math.Pow(10, db/20)
}

func (e *Engine) setMasterVolumeLocked(db float64) {
	e.masterDB = db
	e.masterGain = dbToGain(db)
}

// SetMasterVolume sets the output level in decibels.
func (e *Engine) SetMasterVolume(db float64) {
	e.mu.Lock()
	e.setMasterVolumeLocked(db)
	e.mu.Unlock()
}

func (e *Engine) MasterVolume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.masterDB
}

// SetSink attaches a recorder to the master output; nil detaches it.
func (e *Engine) SetSink(s SampleSink) {
	e.mu.Lock()
	e.sink = s
	e.sinkErr = nil
	e.mu.Unlock()
}

// SinkErr returns the first error reported by the sink, if any.
func (e *Engine) SinkErr() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sinkErr
}

// Voice returns the handle for a note name, or nil for an unknown name.
func (e *Engine) Voice(name string) *Voice {
	if _, ok := e.synths[name]; !ok {
		return nil
	}
	return &Voice{engine: e, name: name}
}

// NoteNames lists the note voices in keyboard order.
func (e *Engine) NoteNames() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// ReleaseAll releases every voice of every note.
func (e *Engine) ReleaseAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, name := range e.order {
		e.synths[name].ReleaseAll()
	}
}

// ActiveVoices counts sounding voices across all notes.
func (e *Engine) ActiveVoices() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, ps := range e.synths {
		n += ps.ActiveVoices()
	}
	return n
}

// Process renders len(dst) mono samples.
func (e *Engine) Process(dst []float32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		for i := range dst {
			dst[i] = 0
		}
		return
	}

	for i := range dst {
		var mix float64
		for _, name := range e.order {
			mix += e.synths[name].Sample()
		}
		mix *= voiceMixLevel

		mix = e.chorus.Process(mix)
		mix = e.reverb.Process(mix)
		mix = e.tremolo.Process(mix)

		s := float32(clamp(mix*e.masterGain, -1, 1))
		dst[i] = s
		e.tap.Push(s)
	}

	if e.sink != nil && e.sinkErr == nil {
		e.sinkErr = e.sink.WriteSamples(dst)
	}
}

// Waveform copies the most recent WaveformSize output samples into dst.
func (e *Engine) Waveform(dst []float32) []float32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tap.Snapshot(dst)
}

// Voice is the per-note handle handed to the input layer.
type Voice struct {
	engine *Engine
	name   string
}

func (v *Voice) Name() string { return v.name }

func (v *Voice) TriggerAttack(freqs []float64) {
	v.engine.mu.Lock()
	v.engine.synths[v.name].TriggerAttack(freqs)
	v.engine.mu.Unlock()
}

func (v *Voice) ReleaseAll() {
	v.engine.mu.Lock()
	v.engine.synths[v.name].ReleaseAll()
	v.engine.mu.Unlock()
}

package main

import (
	"fmt"
	"time"

	"github.com/intuitionamiga/pedalsynth/synth"
)

// RenderOptions describes one offline note.
type RenderOptions struct {
	Note   string
	Depth  int           // modulation depth 0..100
	Hold   time.Duration // time between attack and release
	Tail   time.Duration // time rendered after release
	Params synth.Params
}

type Renderer struct {
	opts   RenderOptions
	engine *synth.Engine
	note   synth.NoteFrequency
}

func NewRenderer(opts RenderOptions) (*Renderer, error) {
	note, ok := synth.LookupNote(opts.Note)
	if !ok {
		return nil, fmt.Errorf("unknown note %q (want one of %v)", opts.Note, synth.NoteNames())
	}
	if opts.Depth < 0 || opts.Depth > 100 {
		return nil, fmt.Errorf("modulation depth %d out of range 0..100", opts.Depth)
	}
	if opts.Hold < 0 || opts.Tail < 0 {
		return nil, fmt.Errorf("hold and tail must not be negative")
	}
	return &Renderer{
		opts:   opts,
		engine: synth.NewEngine(synth.SampleRate, opts.Params),
		note:   note,
	}, nil
}

func durationToSamples(d time.Duration) int {
	return int(d.Seconds() * synth.SampleRate)
}

// Frames is the total number of samples Render produces.
func (r *Renderer) Frames() int {
	return durationToSamples(r.opts.Hold) + durationToSamples(r.opts.Tail)
}

// Render plays the note through the engine and returns the mono output.
func (r *Renderer) Render() []float32 {
	hold := durationToSamples(r.opts.Hold)
	out := make([]float32, r.Frames())

	r.engine.Start()
	v := r.engine.Voice(r.note.Name)
	v.TriggerAttack(synth.ModulatedPair(r.note.Hz, r.opts.Depth))
	r.engine.Process(out[:hold])
	v.ReleaseAll()
	r.engine.Process(out[hold:])
	return out
}

// RenderToFile renders and writes a 16-bit mono WAV.
func (r *Renderer) RenderToFile(path string) (int, error) {
	rec := synth.NewWAVRecorder(path, synth.SampleRate)
	r.engine.SetSink(rec)
	r.Render()
	if err := r.engine.SinkErr(); err != nil {
		return 0, err
	}
	frames := rec.Frames()
	if err := rec.Close(); err != nil {
		return 0, err
	}
	return frames, nil
}

//go:build headless

package main

import "github.com/intuitionamiga/pedalsynth/synth"

// OtoPlayer without a device. Pull advances the engine in place of the
// audio callback so recordings still fill up.
type OtoPlayer struct {
	started bool
	engine  *synth.Engine
	buf     []float32
}

func NewOtoPlayer(sampleRate int) (*OtoPlayer, error) {
	return &OtoPlayer{}, nil
}

func (op *OtoPlayer) SetupPlayer(engine *synth.Engine) {
	op.engine = engine
}

func (op *OtoPlayer) Read(p []byte) (n int, err error) {
	clear(p)
	return len(p), nil
}

// Pull renders n samples when started.
func (op *OtoPlayer) Pull(n int) {
	if !op.started || op.engine == nil {
		return
	}
	if len(op.buf) < n {
		op.buf = make([]float32, n)
	}
	op.engine.Process(op.buf[:n])
}

func (op *OtoPlayer) Start() {
	op.started = true
}

func (op *OtoPlayer) Stop() {
	op.started = false
}

func (op *OtoPlayer) Close() {
	op.started = false
}

func (op *OtoPlayer) IsStarted() bool {
	return op.started
}

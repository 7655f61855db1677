//go:build headless

package main

import "github.com/intuitionamiga/pedalsynth/synth"

const HEADLESS_FPS = 60

// HeadlessVideoOutput runs a fixed number of frames into a recording surface.
type HeadlessVideoOutput struct {
	app        *App
	config     DisplayConfig
	started    bool
	frameCount uint64
	surface    *recordingSurface
}

func NewEbitenOutput(app *App, config DisplayConfig) (VideoOutput, error) {
	return &HeadlessVideoOutput{
		app:     app,
		config:  config,
		surface: newRecordingSurface(float64(config.Width), float64(config.Height)),
	}, nil
}

func (h *HeadlessVideoOutput) Start() error {
	h.started = true
	defer func() { h.started = false }()

	idle := Point{X: -1, Y: -1}
	for i := 0; i < h.config.Frames; i++ {
		h.app.Frame(idle)
		h.app.Player.Pull(synth.SampleRate / HEADLESS_FPS)
		h.app.Draw(h.surface)
		h.frameCount++
	}
	return nil
}

func (h *HeadlessVideoOutput) Close() error {
	h.started = false
	return nil
}

func (h *HeadlessVideoOutput) IsStarted() bool { return h.started }

func (h *HeadlessVideoOutput) GetDisplayConfig() DisplayConfig { return h.config }

func (h *HeadlessVideoOutput) GetFrameCount() uint64 { return h.frameCount }

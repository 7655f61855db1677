// app.go - Application wiring for PedalSynth

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

import (
	"errors"
	"fmt"
	"strings"

	"github.com/intuitionamiga/pedalsynth/synth"
)

type AppOptions struct {
	Width       int
	Height      int
	RecordPath  string
	MIDIOutPath string
}

// App ties the UI state, the synth engine and the audio device together.
type App struct {
	State    *AppState
	Router   *InputRouter
	Renderer Renderer

	Engine   *synth.Engine
	Player   *OtoPlayer
	Recorder *synth.WAVRecorder
	Session  *SessionLog

	midiOut string
	wave    []float32
}

func NewApp(opts AppOptions, params synth.Params) (*App, error) {
	engine := synth.NewEngine(synth.SampleRate, params)

	player, err := NewOtoPlayer(synth.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("audio output: %w", err)
	}
	player.SetupPlayer(engine)

	app := &App{
		Engine:  engine,
		Player:  player,
		midiOut: opts.MIDIOutPath,
		wave:    make([]float32, synth.WaveformSize),
	}

	var bank VoiceBank = engineBank{engine: engine}
	if opts.MIDIOutPath != "" {
		app.Session = NewSessionLog(bank)
		bank = app.Session
	}
	if opts.RecordPath != "" {
		app.Recorder = synth.NewWAVRecorder(opts.RecordPath, synth.SampleRate)
		engine.SetSink(app.Recorder)
	}

	app.State = NewAppState(float64(opts.Width), float64(opts.Height), params.Voice.DetuneCents)
	app.Router = NewInputRouter(app.State, bank, app)
	return app, nil
}

// Start opens the audio path. The router calls it on the first space press.
func (a *App) Start() {
	a.Engine.Start()
	a.Player.Start()
	fmt.Println("Audio started")
}

func (a *App) Waveform() []float32 {
	a.wave = a.Engine.Waveform(a.wave)
	return a.wave
}

// Frame advances the frame counter and follows the pointer.
func (a *App) Frame(cursor Point) {
	a.State.Frame++
	a.Router.PointerMove(cursor)
}

func (a *App) Draw(s Surface) {
	a.Renderer.Draw(s, a.State, a.Waveform())
}

// StatusText is the status block as plain text, one line per entry.
func (a *App) StatusText() string {
	return strings.Join(statusLines(a.State), "\n")
}

// Close stops audio and flushes the recording and the MIDI session.
func (a *App) Close() error {
	var errs []error
	if a.Player != nil {
		a.Player.Close()
	}
	if err := a.Engine.SinkErr(); err != nil {
		errs = append(errs, fmt.Errorf("recording: %w", err))
	}
	if a.Recorder != nil {
		if err := a.Recorder.Close(); err != nil {
			errs = append(errs, err)
		} else {
			fmt.Printf("Recorded %d samples\n", a.Recorder.Frames())
		}
	}
	if a.Session != nil {
		if err := a.Session.WriteFile(a.midiOut); err != nil {
			errs = append(errs, err)
		} else {
			fmt.Printf("Wrote %d MIDI events to %s\n", a.Session.Events(), a.midiOut)
		}
	}
	return errors.Join(errs...)
}

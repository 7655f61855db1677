// fm_voice.go - Two-operator FM voice

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

import "math"

const (
	WAVE_SINE = iota
	WAVE_SQUARE
)

const twoPi = 2 * math.Pi

// oscillator is a phase accumulator in [0, 2π).
type oscillator struct {
	waveType  int
	frequency float64
	phase     float64
}

func (o *oscillator) next(sampleRate int) float64 {
	var raw float64
	switch o.waveType {
	case WAVE_SQUARE:
		if o.phase < math.Pi {
			raw = 1.0
		} else {
			raw = -1.0
		}
	default:
		raw = math.Sin(o.phase)
	}
	o.phase += o.frequency * twoPi / float64(sampleRate)
	if o.phase >= twoPi {
		o.phase = math.Mod(o.phase, twoPi)
	}
	return raw
}

// FMVoice is a two-operator voice: a square modulator driving the phase of a sine carrier.
type FMVoice struct {
	sampleRate int
	params     VoiceParams
	carrier    oscillator
	modulator  oscillator
	env        *Envelope
	modEnv     *Envelope
	age        int // samples since the last trigger
}

func NewFMVoice(sampleRate int, params VoiceParams) *FMVoice {
	return &FMVoice{
		sampleRate: sampleRate,
		params:     params,
		carrier:    oscillator{waveType: WAVE_SINE},
		modulator:  oscillator{waveType: WAVE_SQUARE},
		env:        NewEnvelope(params.Envelope, sampleRate),
		modEnv:     NewEnvelope(params.ModulationEnvelope, sampleRate),
	}
}

func centsToRatio(cents float64) float64 {
	return math.Pow(2, cents/1200)
}

// Trigger starts the voice at freq Hz.
func (v *FMVoice) Trigger(freq float64) {
	f := freq * centsToRatio(v.params.DetuneCents)
	v.carrier.frequency = f
	v.modulator.frequency = f * v.params.Harmonicity
	if !v.env.Active() {
		v.carrier.phase = 0
		v.modulator.phase = 0
	}
	v.env.GateOn()
	v.modEnv.GateOn()
	v.age = 0
}

func (v *FMVoice) Release() {
	v.env.GateOff()
	v.modEnv.GateOff()
}

func (v *FMVoice) Active() bool { return v.env.Active() }

// Releasing reports whether the voice has been released but is still decaying.
func (v *FMVoice) Releasing() bool { return v.env.Phase() == ENV_RELEASE }

func (v *FMVoice) Frequency() float64 { return v.carrier.frequency }

func (v *FMVoice) Sample() float64 {
	if !v.env.Active() {
		return 0
	}
	amp := v.env.Next()
	modAmt := v.modEnv.Next() * v.params.ModulationIndex
	mod := v.modulator.next(v.sampleRate)

	out := math.Sin(v.carrier.phase + modAmt*mod)
	v.carrier.next(v.sampleRate)
	v.age++
	return out * amp
}

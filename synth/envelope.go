// envelope.go - Linear ADSR envelope generator

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

const (
	ENV_IDLE = iota
	ENV_ATTACK
	ENV_DECAY
	ENV_SUSTAIN
	ENV_RELEASE
)

// Envelope is a linear ADSR generator advanced one sample at a time.
type Envelope struct {
	level        float64
	releaseStart float64
	sustainLevel float64
	attackTime   int // samples
	decayTime    int
	releaseTime  int
	sample       int // position inside the current phase
	phase        int
}

func secondsToSamples(sec float64, sampleRate int) int {
	if sec <= 0 {
		return 0
	}
	return int(sec*float64(sampleRate) + 0.5)
}

// NewEnvelope converts p into sample counts at sampleRate.
func NewEnvelope(p EnvelopeParams, sampleRate int) *Envelope {
	return &Envelope{
		sustainLevel: clamp(p.Sustain, 0, 1),
		attackTime:   secondsToSamples(p.Attack, sampleRate),
		decayTime:    secondsToSamples(p.Decay, sampleRate),
		releaseTime:  secondsToSamples(p.Release, sampleRate),
		phase:        ENV_IDLE,
	}
}

// GateOn restarts the attack from the current level so retriggers do not click.
func (e *Envelope) GateOn() {
	e.phase = ENV_ATTACK
	e.sample = 0
}

// GateOff moves any sounding phase into release.
func (e *Envelope) GateOff() {
	if e.phase == ENV_IDLE || e.phase == ENV_RELEASE {
		return
	}
	e.phase = ENV_RELEASE
	e.releaseStart = e.level
	e.sample = 0
}

func (e *Envelope) Phase() int { return e.phase }

func (e *Envelope) Level() float64 { return e.level }

// Active reports whether the envelope still produces a non-zero level.
func (e *Envelope) Active() bool { return e.phase != ENV_IDLE }

// Next advances one sample and returns the new level.
func (e *Envelope) Next() float64 {
	switch e.phase {
	case ENV_ATTACK:
		if e.attackTime <= 0 {
			e.level = 1.0
			e.phase = ENV_DECAY
			e.sample = 0
			break
		}
		e.level += 1.0 / float64(e.attackTime)
		if e.level >= 1.0 {
			e.level = 1.0
			e.phase = ENV_DECAY
			e.sample = 0
		}

	case ENV_DECAY:
		if e.decayTime <= 0 {
			e.level = e.sustainLevel
			e.phase = ENV_SUSTAIN
			break
		}
		e.level = 1.0 - (1.0-e.sustainLevel)*float64(e.sample)/float64(e.decayTime)
		e.sample++
		if e.sample >= e.decayTime {
			e.level = e.sustainLevel
			e.phase = ENV_SUSTAIN
		}

	case ENV_SUSTAIN:
		e.level = e.sustainLevel

	case ENV_RELEASE:
		if e.releaseTime <= 0 {
			e.level = 0
			e.phase = ENV_IDLE
			break
		}
		e.level = e.releaseStart * (1.0 - float64(e.sample)/float64(e.releaseTime))
		e.sample++
		if e.sample >= e.releaseTime {
			e.level = 0
			e.phase = ENV_IDLE
		}
	}
	return e.level
}

// clamp also maps NaN to lo.
func clamp(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

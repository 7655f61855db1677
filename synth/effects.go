// effects.go - Chorus, reverb and tremolo

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

// Chorus mixes the input with a copy read from an LFO-swept delay line.
type Chorus struct {
	sampleRate int
	buffer     []float64
	pos        int
	baseDelay  float64 // samples
	sweep      float64 // samples
	lfoPhase   float64
	lfoInc     float64
	mix        float64
}

func NewChorus(sampleRate int, frequency, delayMs, depth float64) *Chorus {
	nyquist := float64(sampleRate) / 2
	base := clamp(delayMs*float64(sampleRate)/1000, 0, float64(sampleRate))
	sweep := base * clamp(depth, 0, 1)
	size := max(int(base+sweep)+4, 1)
	return &Chorus{
		sampleRate: sampleRate,
		buffer:     make([]float64, size),
		baseDelay:  base,
		sweep:      sweep,
		lfoInc:     clamp(frequency, 0, nyquist) * twoPi / float64(sampleRate),
		mix:        0.5,
	}
}

func (c *Chorus) Process(in float64) float64 {
	c.buffer[c.pos] = in

	delay := c.baseDelay + c.sweep*math.Sin(c.lfoPhase)
	c.lfoPhase += c.lfoInc
	if c.lfoPhase >= twoPi {
		c.lfoPhase -= twoPi
	}

	// Linear interpolation between the two taps around the fractional delay.
	read := float64(c.pos) - delay
	n := float64(len(c.buffer))
	for read < 0 {
		read += n
	}
	i0 := int(read)
	frac := read - float64(i0)
	i1 := (i0 + 1) % len(c.buffer)
	wet := c.buffer[i0]*(1-frac) + c.buffer[i1]*frac

	c.pos = (c.pos + 1) % len(c.buffer)
	return in*(1-c.mix) + wet*c.mix
}

type combFilter struct {
	buffer []float64
	decay  float64
	pos    int
}

const (
	PRE_DELAY_MS       = 8
	ALLPASS_COEF       = 0.5
	REVERB_ATTENUATION = 0.3
)

var (
	combDelays    = [4]int{1687, 1601, 2053, 2251}
	allpassDelays = [2]int{389, 307}
)

// Reverb is a Schroeder reverb: pre-delay, four parallel combs, two series allpasses.
type Reverb struct {
	preDelayBuf []float64
	preDelayPos int
	combs       [4]combFilter
	allpassBuf  [2][]float64
	allpassPos  [2]int
	mix         float64
}

// NewReverb sizes comb feedback so the tail falls 60 dB in decaySec seconds.
func NewReverb(sampleRate int, decaySec, mix float64) *Reverb {
	r := &Reverb{
		preDelayBuf: make([]float64, max(PRE_DELAY_MS*sampleRate/1000, 1)),
		mix:         clamp(mix, 0, 1),
	}
	if !(decaySec > 0) {
		decaySec = 0.01
	}
	for i := range r.combs {
		d := combDelays[i]
		r.combs[i] = combFilter{
			buffer: make([]float64, d),
			decay:  math.Pow(10, -3*float64(d)/(decaySec*float64(sampleRate))),
		}
	}
	for i := range r.allpassBuf {
		r.allpassBuf[i] = make([]float64, allpassDelays[i])
	}
	return r
}

func (r *Reverb) Process(in float64) float64 {
	delayed := r.preDelayBuf[r.preDelayPos]
	r.preDelayBuf[r.preDelayPos] = in
	r.preDelayPos = (r.preDelayPos + 1) % len(r.preDelayBuf)

	var out float64
	for i := range r.combs {
		comb := &r.combs[i]
		cDelay := comb.buffer[comb.pos]
		comb.buffer[comb.pos] = delayed + cDelay*comb.decay
		out += cDelay
		comb.pos = (comb.pos + 1) % len(comb.buffer)
	}

	for i := range r.allpassBuf {
		pos := r.allpassPos[i]
		buf := r.allpassBuf[i]
		aDelay := buf[pos]
		buf[pos] = out + aDelay*ALLPASS_COEF
		out = aDelay - out
		r.allpassPos[i] = (pos + 1) % len(buf)
	}

	wet := out * REVERB_ATTENUATION
	return in*(1-r.mix) + wet*r.mix
}

// Tremolo applies an LFO to the amplitude; depth 1 swings the gain fully to zero.
type Tremolo struct {
	phase float64
	inc   float64
	depth float64
}

func NewTremolo(sampleRate int, frequency, depth float64) *Tremolo {
	return &Tremolo{
		inc:   clamp(frequency, 0, float64(sampleRate)/2) * twoPi / float64(sampleRate),
		depth: clamp(depth, 0, 1),
	}
}

func (t *Tremolo) Process(in float64) float64 {
	gain := 1 - t.depth*(0.5+0.5*math.Sin(t.phase))
	t.phase += t.inc
	if t.phase >= twoPi {
		t.phase -= twoPi
	}
	return in * gain
}

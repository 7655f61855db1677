package synth

// PolySynth owns a fixed pool of FM voices for one note family.
type PolySynth struct {
	sampleRate int
	params     VoiceParams
	voices     []*FMVoice
}

func NewPolySynth(sampleRate int, params VoiceParams, polyphony int) *PolySynth {
	if polyphony <= 0 {
		polyphony = DefaultPolyphony
	}
	ps := &PolySynth{
		sampleRate: sampleRate,
		params:     params,
		voices:     make([]*FMVoice, polyphony),
	}
	for i := range ps.voices {
		ps.voices[i] = NewFMVoice(sampleRate, params)
	}
	return ps
}

// TriggerAttack starts one voice per frequency.
func (ps *PolySynth) TriggerAttack(freqs []float64) {
	for _, f := range freqs {
		if f <= 0 {
			continue
		}
		ps.allocate().Trigger(f)
	}
}

// ReleaseAll moves every sounding voice into its release phase.
func (ps *PolySynth) ReleaseAll() {
	for _, v := range ps.voices {
		v.Release()
	}
}

// allocate prefers an idle voice, then the oldest releasing one, then the oldest overall.
func (ps *PolySynth) allocate() *FMVoice {
	var oldestReleasing, oldest *FMVoice
	for _, v := range ps.voices {
		if !v.Active() {
			return v
		}
		if v.Releasing() && (oldestReleasing == nil || v.age > oldestReleasing.age) {
			oldestReleasing = v
		}
		if oldest == nil || v.age > oldest.age {
			oldest = v
		}
	}
	if oldestReleasing != nil {
		return oldestReleasing
	}
	return oldest
}

// ActiveVoices counts voices that still produce sound.
func (ps *PolySynth) ActiveVoices() int {
	n := 0
	for _, v := range ps.voices {
		if v.Active() {
			n++
		}
	}
	return n
}

func (ps *PolySynth) Sample() float64 {
	var sum float64
	for _, v := range ps.voices {
		if v.Active() {
			sum += v.Sample()
		}
	}
	return sum
}

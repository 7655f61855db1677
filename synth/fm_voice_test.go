package synth

import (
	"math"
	"testing"
)

func TestFMVoice_ModulationIndexIsPhaseDeviation(t *testing.T) {
	flat := EnvelopeParams{Sustain: 1}
	v := NewFMVoice(SampleRate, VoiceParams{
		Harmonicity:        1,
		ModulationIndex:    math.Pi / 2,
		Envelope:           flat,
		ModulationEnvelope: flat,
	})
	v.Trigger(440)

	// Carrier phase 0, square modulator at +1: output is sin(index).
	if got := v.Sample(); math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected first sample sin(pi/2) = 1, got %v", got)
	}
}

func TestFMVoice_ZeroIndexIsPureSine(t *testing.T) {
	flat := EnvelopeParams{Sustain: 1}
	v := NewFMVoice(SampleRate, VoiceParams{
		Harmonicity:        3,
		ModulationIndex:    0,
		Envelope:           flat,
		ModulationEnvelope: flat,
	})
	v.Trigger(441)
	step := twoPi * 441 / SampleRate
	for i := 0; i < 100; i++ {
		want := math.Sin(float64(i) * step)
		if got := v.Sample(); math.Abs(got-want) > 1e-9 {
			t.Fatalf("sample %d: expected %v, got %v", i, want, got)
		}
	}
}

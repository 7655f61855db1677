package synth

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

func shortParams() Params {
	p := DefaultParams()
	p.Voice.Envelope = EnvelopeParams{Attack: 0.001, Decay: 0.001, Sustain: 0.8, Release: 0.01}
	p.Voice.ModulationEnvelope = EnvelopeParams{Attack: 0.001, Sustain: 1, Release: 0.01}
	return p
}

func peak(buf []float32) float64 {
	var m float64
	for _, s := range buf {
		m = math.Max(m, math.Abs(float64(s)))
	}
	return m
}

func TestEngine_SilentBeforeStart(t *testing.T) {
	e := NewEngine(SampleRate, shortParams())
	e.Voice("a4").TriggerAttack([]float64{440})
	buf := make([]float32, 2048)
	e.Process(buf)
	if p := peak(buf); p != 0 {
		t.Fatalf("expected silence before Start, got peak %f", p)
	}
}

func TestEngine_TriggerProducesSound(t *testing.T) {
	e := NewEngine(SampleRate, shortParams())
	e.Start()
	e.Voice("a4").TriggerAttack([]float64{440, 440 * (1 + 50.0/7500)})
	buf := make([]float32, 4096)
	e.Process(buf)
	if p := peak(buf); p == 0 {
		t.Fatal("expected audible output after trigger")
	}
	if got := e.ActiveVoices(); got != 2 {
		t.Fatalf("expected 2 active voices, got %d", got)
	}
	for _, s := range buf {
		if s < -1 || s > 1 {
			t.Fatalf("sample out of range: %f", s)
		}
	}
}

func TestEngine_ReleaseAllDecaysToIdle(t *testing.T) {
	e := NewEngine(SampleRate, shortParams())
	e.Start()
	e.Voice("c4").TriggerAttack([]float64{261.63})
	e.Voice("e4").TriggerAttack([]float64{329.63})
	buf := make([]float32, 1024)
	e.Process(buf)
	e.ReleaseAll()
	for i := 0; i < 4; i++ {
		e.Process(buf)
	}
	if got := e.ActiveVoices(); got != 0 {
		t.Fatalf("expected all voices idle after release, got %d", got)
	}
}

func TestEngine_UnknownVoiceIsNil(t *testing.T) {
	e := NewEngine(SampleRate, shortParams())
	if v := e.Voice("h9"); v != nil {
		t.Fatalf("expected nil voice for unknown note, got %v", v.Name())
	}
}

func TestEngine_MasterVolume(t *testing.T) {
	e := NewEngine(SampleRate, DefaultParams())
	if got := e.MasterVolume(); got != DefaultMasterVolumeDB {
		t.Fatalf("expected default %v dB, got %v", DefaultMasterVolumeDB, got)
	}
	e.SetMasterVolume(-6)
	if got := e.MasterVolume(); got != -6 {
		t.Fatalf("expected -6 dB, got %v", got)
	}
	if g := dbToGain(-20); math.Abs(g-0.1) > 1e-9 {
		t.Fatalf("expected -20 dB gain 0.1, got %f", g)
	}
}

func TestEngine_WaveformTapHoldsLatestOutput(t *testing.T) {
	e := NewEngine(SampleRate, shortParams())
	e.Start()
	e.Voice("a4").TriggerAttack([]float64{440})
	buf := make([]float32, WaveformSize*2)
	e.Process(buf)
	snap := e.Waveform(nil)
	if len(snap) != WaveformSize {
		t.Fatalf("expected %d samples, got %d", WaveformSize, len(snap))
	}
	tail := buf[len(buf)-WaveformSize:]
	for i := range snap {
		if snap[i] != tail[i] {
			t.Fatalf("tap mismatch at %d: %f vs %f", i, snap[i], tail[i])
		}
	}
}

func TestWaveformTap_SnapshotOrder(t *testing.T) {
	w := NewWaveformTap(4)
	for _, s := range []float32{1, 2, 3, 4, 5, 6} {
		w.Push(s)
	}
	got := w.Snapshot(nil)
	want := []float32{3, 4, 5, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestPolySynth_StealsWhenFull(t *testing.T) {
	ps := NewPolySynth(SampleRate, shortParams().Voice, 2)
	ps.TriggerAttack([]float64{100, 200, 300})
	if got := ps.ActiveVoices(); got != 2 {
		t.Fatalf("expected polyphony cap of 2, got %d", got)
	}
}

func TestEngine_RecordsToWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "take.wav")
	rec := NewWAVRecorder(path, SampleRate)
	e := NewEngine(SampleRate, shortParams())
	e.SetSink(rec)
	e.Start()
	e.Voice("g4").TriggerAttack([]float64{392})
	buf := make([]float32, 512)
	for i := 0; i < 4; i++ {
		e.Process(buf)
	}
	if err := e.SinkErr(); err != nil {
		t.Fatalf("unexpected sink error: %v", err)
	}
	if rec.Frames() != 2048 {
		t.Fatalf("expected 2048 recorded frames, got %d", rec.Frames())
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		t.Fatal("expected a valid WAV file")
	}
	if dec.SampleRate != SampleRate || dec.NumChans != 1 {
		t.Fatalf("expected %d Hz mono, got %d Hz %d ch", SampleRate, dec.SampleRate, dec.NumChans)
	}
}

func TestNotes_Table(t *testing.T) {
	notes := Notes()
	if len(notes) != 13 {
		t.Fatalf("expected 13 notes, got %d", len(notes))
	}
	if notes[0].Name != "c4" || notes[12].Name != "c5" {
		t.Fatalf("expected c4..c5, got %s..%s", notes[0].Name, notes[12].Name)
	}
	a4, ok := LookupNote("a4")
	if !ok || a4.Hz != 440.00 || a4.Key != 69 {
		t.Fatalf("unexpected a4 entry %+v", a4)
	}
	if !notes[1].IsSharp() || notes[0].IsSharp() {
		t.Fatal("expected c#4 sharp and c4 natural")
	}
	if _, ok := NoteAt(13); ok {
		t.Fatal("expected index 13 to be out of range")
	}
}

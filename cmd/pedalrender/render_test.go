package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"
	"github.com/intuitionamiga/pedalsynth/synth"
)

func TestNewRenderer_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		opts RenderOptions
	}{
		{"unknown note", RenderOptions{Note: "h4"}},
		{"depth too high", RenderOptions{Note: "a4", Depth: 101}},
		{"negative depth", RenderOptions{Note: "a4", Depth: -1}},
		{"negative hold", RenderOptions{Note: "a4", Hold: -time.Second}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Params = synth.DefaultParams()
			if _, err := NewRenderer(tt.opts); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestRender_SoundsThenDecays(t *testing.T) {
	r, err := NewRenderer(RenderOptions{
		Note:   "a4",
		Depth:  50,
		Hold:   500 * time.Millisecond,
		Tail:   2500 * time.Millisecond,
		Params: synth.DefaultParams(),
	})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	out := r.Render()
	if len(out) != synth.SampleRate*3 {
		t.Fatalf("expected %d samples, got %d", synth.SampleRate*3, len(out))
	}

	peak := func(s []float32) float32 {
		var p float32
		for _, v := range s {
			if v < 0 {
				v = -v
			}
			if v > p {
				p = v
			}
		}
		return p
	}
	held := peak(out[synth.SampleRate/4 : synth.SampleRate/2])
	if held == 0 {
		t.Fatalf("expected sound while the key is held")
	}
	if held > 1 {
		t.Fatalf("expected output clamped to ±1, got %f", held)
	}
}

func TestRenderToFile_WritesRequestedFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c4.wav")
	r, err := NewRenderer(RenderOptions{
		Note:   "c4",
		Hold:   100 * time.Millisecond,
		Tail:   100 * time.Millisecond,
		Params: synth.DefaultParams(),
	})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	frames, err := r.RenderToFile(path)
	if err != nil {
		t.Fatalf("RenderToFile: %v", err)
	}
	if frames != r.Frames() {
		t.Fatalf("expected %d frames, got %d", r.Frames(), frames)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	buf, err := wav.NewDecoder(f).FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if buf.Format.SampleRate != synth.SampleRate {
		t.Fatalf("expected %d Hz, got %d", synth.SampleRate, buf.Format.SampleRate)
	}
	if len(buf.Data) != frames {
		t.Fatalf("expected %d decoded samples, got %d", frames, len(buf.Data))
	}
}

func TestOutputPath(t *testing.T) {
	opts.output = ""
	if got := outputPath("g#4"); got != "g#4.wav" {
		t.Fatalf("expected g#4.wav, got %s", got)
	}
	opts.output = "x.wav"
	defer func() { opts.output = "" }()
	if got := outputPath("g#4"); got != "x.wav" {
		t.Fatalf("expected x.wav, got %s", got)
	}
}

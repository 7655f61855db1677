package main

import (
	"math"
	"testing"
)

func sineBuffer(n int, phase float64) []float32 {
	buf := make([]float32, n)
	for i := range buf {
		buf[i] = float32(math.Sin(phase + float64(i)*2*math.Pi/64))
	}
	return buf
}

func TestRisingZeroCrossing(t *testing.T) {
	buf := []float32{0.5, 0.2, -0.1, -0.4, 0, 0.3}
	if got := RisingZeroCrossing(buf); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got := RisingZeroCrossing([]float32{0.1, 0.2, 0.3}); got != 0 {
		t.Fatalf("expected fallback 0, got %d", got)
	}
	if got := RisingZeroCrossing(nil); got != 0 {
		t.Fatalf("expected 0 for an empty buffer, got %d", got)
	}
}

func TestWaveformTrace_NoCrossingStillSpansHalfBuffer(t *testing.T) {
	buf := make([]float32, 1024)
	for i := range buf {
		buf[i] = 0.25
	}
	segs := WaveformTrace(buf, 800, 400)
	if len(segs) != 511 {
		t.Fatalf("expected 511 segments from index 0, got %d", len(segs))
	}
	if segs[0].X1 != 0 {
		t.Fatalf("expected trace to start at x=0, got %f", segs[0].X1)
	}
	last := segs[len(segs)-1]
	if want := 511.0 / 512 * 800; math.Abs(last.X2-want) > 1e-9 {
		t.Fatalf("expected trace to end at %f, got %f", want, last.X2)
	}
	if segs[0].Y1 != 250 {
		t.Fatalf("expected 0.25 to map to y=250, got %f", segs[0].Y1)
	}
}

func TestWaveformTrace_StartsAtCrossing(t *testing.T) {
	buf := sineBuffer(1024, math.Pi/2)
	start := RisingZeroCrossing(buf)
	if start == 0 {
		t.Fatalf("expected a crossing in a sine buffer")
	}
	if buf[start-1] >= 0 || buf[start] < 0 {
		t.Fatalf("expected a negative to non-negative step at %d", start)
	}
	segs := WaveformTrace(buf, 1024, 300)
	if len(segs) != 512 {
		t.Fatalf("expected half a buffer of segments, got %d", len(segs))
	}
	if segs[1].X1 != 0 {
		t.Fatalf("expected the crossing sample at x=0, got %f", segs[1].X1)
	}
}

func TestWaveformTrace_AmplitudeMapping(t *testing.T) {
	segs := WaveformTrace([]float32{-1, 1, -1, 1}, 100, 200)
	if len(segs) == 0 {
		t.Fatalf("expected segments")
	}
	for _, s := range segs {
		for _, y := range []float64{s.Y1, s.Y2} {
			if y != 0 && y != 200 {
				t.Fatalf("expected ±1 to map onto the edges, got %f", y)
			}
		}
	}
}

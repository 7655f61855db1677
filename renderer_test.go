package main

import (
	"image/color"
	"testing"
)

func renderState(st *AppState, wave []float32) *recordingSurface {
	s := newRecordingSurface(st.Layout.Width, st.Layout.Height)
	Renderer{}.Draw(s, st, wave)
	return s
}

func TestRenderer_SplashBeforeStart(t *testing.T) {
	st := NewAppState(testWidth, testHeight, 0)
	s := renderState(st, make([]float32, 1024))
	texts := s.texts()
	if len(texts) != 1 || texts[0] != SPLASH_TEXT {
		t.Fatalf("expected only the splash text, got %v", texts)
	}
	if s.count("rect") != 0 || s.count("line") != 0 {
		t.Fatalf("expected nothing else drawn before start")
	}
}

func TestRenderer_StatusLines(t *testing.T) {
	r, st, _ := startedRouter()
	s := renderState(st, nil)
	for _, want := range []string{
		"Detune: 0",
		"Mod Depth: 0",
		"Sustain: OFF (Use spacebar to enable)",
		"Sostenuto: OFF (Use pedal to enable)",
	} {
		if !s.hasText(want) {
			t.Fatalf("expected status %q, got %v", want, s.texts())
		}
	}

	r.KeyDown(KEY_SPACE)
	click(r, st.Layout.SostenutoToggle.Center)
	s = renderState(st, nil)
	if !s.hasText("Sustain: ON") || !s.hasText("Sostenuto: ON (Sustaining)") {
		t.Fatalf("expected updated status, got %v", s.texts())
	}
}

func TestRenderer_PedalsAndKeys(t *testing.T) {
	_, st, _ := startedRouter()
	s := renderState(st, nil)
	// Three pedal boxes plus thirteen key buckets.
	if n := s.count("rect"); n != 16 {
		t.Fatalf("expected 16 rects, got %d", n)
	}
	for _, title := range []string{"Sostenuto", "Modulation", "Pitch Shift"} {
		found := false
		for _, txt := range s.texts() {
			if txt == title {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected pedal title %q", title)
		}
	}
	if s.count("arc") != 0 {
		t.Fatalf("expected no depth arc at angle 0")
	}
}

func TestRenderer_PitchReadoutAfterNote(t *testing.T) {
	r, st, _ := startedRouter()
	before := renderState(st, nil)
	if before.hasText("440") {
		t.Fatalf("expected no pitch readout before a note")
	}
	click(r, keyPoint(noteIndex("a4")))
	after := renderState(st, nil)
	if !after.hasText("440") {
		t.Fatalf("expected pitch readout 440, got %v", after.texts())
	}
}

func TestRenderer_DescriptionsWrap(t *testing.T) {
	s := newRecordingSurface(testWidth, testHeight)
	lines := wrapText(s, NewLayout(testWidth, testHeight).Modulation.Description, PEDAL_TEXT_W)
	if len(lines) < 3 {
		t.Fatalf("expected the description to wrap, got %v", lines)
	}
	for _, l := range lines {
		if s.TextWidth(l) > PEDAL_TEXT_W {
			t.Fatalf("expected %q to fit in %d px", l, PEDAL_TEXT_W)
		}
	}
}

func TestSostenutoLamp(t *testing.T) {
	if c := sostenutoLamp(SostenutoOff, 0); c != colKnobBase {
		t.Fatalf("expected grey when off, got %v", c)
	}
	if c := sostenutoLamp(SostenutoBlocking, 0); c != colGreen {
		t.Fatalf("expected green when blocking, got %v", c)
	}
	a := sostenutoLamp(SostenutoHolding, 0)
	b := sostenutoLamp(SostenutoHolding, 31)
	if a == b {
		t.Fatalf("expected the holding lamp to pulse")
	}
	if a.G != 0 || a.R < colDarkRed.R {
		t.Fatalf("expected a red shade, got %v", a)
	}
}

func TestRecordingSurface_ClearResets(t *testing.T) {
	s := newRecordingSurface(10, 10)
	s.FillRect(0, 0, 1, 1, color.White)
	s.Clear(color.Black)
	if len(s.ops) != 1 || s.ops[0].Kind != "clear" {
		t.Fatalf("expected only the clear op, got %d ops", len(s.ops))
	}
}

func TestArcPoints(t *testing.T) {
	pts := arcPoints(0, 0, 10, 0, 3.14159265/2)
	if len(pts) < 3 {
		t.Fatalf("expected several vertices, got %d", len(pts))
	}
	if pts[0].X != 10 || pts[0].Y != 0 {
		t.Fatalf("expected start at (10,0), got %+v", pts[0])
	}
	end := pts[len(pts)-1]
	if end.X > 1e-3 || end.Y < 9.999 {
		t.Fatalf("expected end near (0,10), got %+v", end)
	}
}

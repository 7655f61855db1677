package main

import (
	"math"
	"testing"
)

func TestRouter_IgnoresPointerBeforeStart(t *testing.T) {
	r, st, bank := newTestRouter()
	r.PointerDown(keyPoint(noteIndex("a4")))
	if n := len(bank.voices["a4"].triggers); n != 0 {
		t.Fatalf("expected no trigger before start, got %d", n)
	}
	if st.Active != nil {
		t.Fatalf("expected no active voice before start")
	}
	r.PointerDown(st.Layout.SostenutoToggle.Center)
	if st.Sostenuto.Mode() != SostenutoOff {
		t.Fatalf("expected sostenuto untouched before start, got %v", st.Sostenuto.Mode())
	}
}

func TestRouter_FirstSpaceStartsAudio(t *testing.T) {
	r, st, bank := newTestRouter()
	r.KeyDown(KEY_SPACE)
	if !st.Initialised || bank.started != 1 {
		t.Fatalf("expected audio started once, got initialised=%v started=%d", st.Initialised, bank.started)
	}
	if st.Sustain {
		t.Fatalf("expected first space press not to toggle sustain")
	}
	r.KeyDown(KEY_SPACE)
	if !st.Sustain {
		t.Fatalf("expected second press to turn sustain on")
	}
	r.KeyDown(KEY_SPACE)
	if st.Sustain {
		t.Fatalf("expected third press to turn sustain off")
	}
	if bank.started != 1 {
		t.Fatalf("expected audio start to be one-time, got %d", bank.started)
	}
}

func TestRouter_OtherKeysIgnored(t *testing.T) {
	r, st, bank := newTestRouter()
	r.KeyDown(65)
	r.KeyUp(65)
	if st.Initialised || bank.started != 0 || bank.releaseAll != 0 {
		t.Fatalf("expected non-space keys to do nothing")
	}
}

func TestRouter_SpaceUpReleasesEveryVoice(t *testing.T) {
	r, _, bank := startedRouter()
	r.KeyUp(KEY_SPACE)
	if bank.releaseAll != 1 {
		t.Fatalf("expected one broadcast release, got %d", bank.releaseAll)
	}
	for name, v := range bank.voices {
		if v.releases != 1 {
			t.Fatalf("expected %s released once, got %d", name, v.releases)
		}
	}
}

func TestRouter_PressA4TriggersModulatedPair(t *testing.T) {
	r, st, bank := startedRouter()
	a4 := bank.voices["a4"]

	click(r, keyPoint(noteIndex("a4")))
	if len(a4.triggers) != 1 {
		t.Fatalf("expected one trigger, got %d", len(a4.triggers))
	}
	got := a4.triggers[0]
	if len(got) != 2 || got[0] != 440.00 || got[1] != 440.00 {
		t.Fatalf("expected [440 440] at depth 0, got %v", got)
	}
	if a4.releases != 1 {
		t.Fatalf("expected release on pointer up, got %d", a4.releases)
	}
	if st.Active != nil {
		t.Fatalf("expected active voice cleared after release")
	}

	// Turn the knob a quarter turn: grab at 3 o'clock, drag to 6 o'clock.
	c := st.Layout.ModulationKnob.Center
	r.PointerDown(Point{X: c.X + 10, Y: c.Y})
	r.PointerMove(Point{X: c.X, Y: c.Y + 30})
	r.PointerUp(Point{X: c.X, Y: c.Y + 30})
	depth := st.Modulation.Depth()
	if depth != 25 {
		t.Fatalf("expected depth 25 after a quarter turn, got %d", depth)
	}

	click(r, keyPoint(noteIndex("a4")))
	got = a4.triggers[1]
	want := 440.00 * (1 + 25.0/7500)
	if math.Abs(got[1]-want) > 1e-9 {
		t.Fatalf("expected modulated partner %f, got %f", want, got[1])
	}
}

func TestRouter_HoldingSustainsPressedNote(t *testing.T) {
	r, st, bank := startedRouter()
	click(r, st.Layout.SostenutoToggle.Center)
	if st.Sostenuto.Mode() != SostenutoHolding {
		t.Fatalf("expected Holding, got %v", st.Sostenuto.Mode())
	}

	click(r, keyPoint(noteIndex("c4")))
	if bank.voices["c4"].releases != 0 {
		t.Fatalf("expected c4 to keep sounding, got %d releases", bank.voices["c4"].releases)
	}
	if !st.Sostenuto.Sustains("c4") {
		t.Fatalf("expected c4 in the sustained set")
	}
}

func TestRouter_ReturningToOffReleasesSustainedOnce(t *testing.T) {
	r, st, bank := startedRouter()
	toggle := st.Layout.SostenutoToggle.Center
	click(r, toggle)
	click(r, keyPoint(noteIndex("c4")))

	click(r, toggle)
	if st.Sostenuto.Mode() != SostenutoBlocking {
		t.Fatalf("expected Blocking, got %v", st.Sostenuto.Mode())
	}
	if bank.voices["c4"].releases != 0 {
		t.Fatalf("expected Blocking to keep c4 held")
	}

	click(r, toggle)
	if st.Sostenuto.Mode() != SostenutoOff {
		t.Fatalf("expected Off, got %v", st.Sostenuto.Mode())
	}
	if n := bank.voices["c4"].releases; n != 1 {
		t.Fatalf("expected exactly one release for c4, got %d", n)
	}
	if n := st.Sostenuto.Sustained().Len(); n != 0 {
		t.Fatalf("expected empty sustained set, got %d", n)
	}
}

func TestRouter_BlockingDoesNotCaptureNewNotes(t *testing.T) {
	r, st, bank := startedRouter()
	toggle := st.Layout.SostenutoToggle.Center
	click(r, toggle)
	click(r, toggle)

	click(r, keyPoint(noteIndex("d4")))
	if bank.voices["d4"].releases != 1 {
		t.Fatalf("expected d4 released normally in Blocking")
	}
	if st.Sostenuto.Sustains("d4") {
		t.Fatalf("expected d4 not captured in Blocking")
	}
}

func TestRouter_SustainFlagSuppressesRelease(t *testing.T) {
	r, _, bank := startedRouter()
	r.KeyDown(KEY_SPACE)
	click(r, keyPoint(noteIndex("e4")))
	if bank.voices["e4"].releases != 0 {
		t.Fatalf("expected sustain flag to hold e4")
	}
}

func TestRouter_ReleaseChecksNoteUnderPointer(t *testing.T) {
	r, st, bank := startedRouter()
	toggle := st.Layout.SostenutoToggle.Center
	click(r, toggle)
	click(r, keyPoint(noteIndex("c4")))
	click(r, toggle) // Blocking keeps c4 held

	// d4 is not sustained, but the pointer lifts over c4 which is.
	r.PointerDown(keyPoint(noteIndex("d4")))
	r.PointerUp(keyPoint(noteIndex("c4")))
	if n := bank.voices["d4"].releases; n != 0 {
		t.Fatalf("expected release suppressed by the note under the pointer, got %d", n)
	}
	if n := bank.voices["c4"].releases; n != 0 {
		t.Fatalf("expected captured handle only, c4 got %d releases", n)
	}

	// Lifting off the keyboard releases the captured voice.
	r.PointerDown(keyPoint(noteIndex("e4")))
	r.PointerUp(Point{X: 10, Y: 10})
	if n := bank.voices["e4"].releases; n != 1 {
		t.Fatalf("expected e4 released, got %d", n)
	}
}

func TestRouter_KeyboardPartition(t *testing.T) {
	r, _, _ := newTestRouter()
	seen := make(map[string]bool)
	prev := -1
	for x := 0.0; x < testWidth; x += 0.5 {
		note, ok := r.NoteAt(Point{X: x, Y: testHeight - 1})
		if !ok {
			t.Fatalf("expected a note at x=%f", x)
		}
		idx := noteIndex(note.Name)
		if idx < prev {
			t.Fatalf("expected buckets in order, got %d after %d at x=%f", idx, prev, x)
		}
		prev = idx
		seen[note.Name] = true
	}
	if len(seen) != 13 {
		t.Fatalf("expected all 13 notes, got %d", len(seen))
	}

	for _, p := range []Point{
		{X: -1, Y: testHeight - 1},
		{X: testWidth, Y: testHeight - 1},
		{X: 50, Y: testHeight - KEYBOARD_HEIGHT},
	} {
		if _, ok := r.NoteAt(p); ok {
			t.Fatalf("expected no note at %+v", p)
		}
	}
}

func TestRouter_MissingVoiceIsNoop(t *testing.T) {
	r, st, bank := startedRouter()
	delete(bank.voices, "g4")
	click(r, keyPoint(noteIndex("g4")))
	if _, _, ok := st.PitchShift.Bounds(); ok {
		t.Fatalf("expected no pitch bounds when the voice is missing")
	}
}

func TestRouter_SliderFollowsDrag(t *testing.T) {
	r, st, _ := startedRouter()
	x, top, bottom := st.Slider.Track()

	r.PointerDown(Point{X: x, Y: top})
	if v := st.Slider.Value(); v != PITCH_SLIDER_MAX {
		t.Fatalf("expected %d at the top, got %d", PITCH_SLIDER_MAX, v)
	}
	r.PointerMove(Point{X: x + 200, Y: bottom + 50})
	if v := st.Slider.Value(); v != PITCH_SLIDER_MIN {
		t.Fatalf("expected %d below the track, got %d", PITCH_SLIDER_MIN, v)
	}
	r.PointerUp(Point{X: x, Y: bottom})
	r.PointerMove(Point{X: x, Y: top})
	if v := st.Slider.Value(); v != PITCH_SLIDER_MIN {
		t.Fatalf("expected slider released, got %d", v)
	}
}

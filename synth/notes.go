package synth

import (
	"math"
	"strings"
)

// NoteFrequency is one entry of the keyboard's note table.
type NoteFrequency struct {
	Name string
	Hz   float64
	Key  uint8 // MIDI key number
}

// SemitoneRatio is the twelfth root of two.
var SemitoneRatio = math.Pow(2, 1.0/12)

var noteTable = [...]NoteFrequency{
	{"c4", 261.63, 60},
	{"c#4", 277.18, 61},
	{"d4", 293.66, 62},
	{"d#4", 311.13, 63},
	{"e4", 329.63, 64},
	{"f4", 349.23, 65},
	{"f#4", 369.99, 66},
	{"g4", 392.00, 67},
	{"g#4", 415.30, 68},
	{"a4", 440.00, 69},
	{"a#4", 466.16, 70},
	{"b4", 493.88, 71},
	{"c5", 523.25, 72},
}

// Notes returns the ordered note table, lowest key first.
func Notes() []NoteFrequency {
	out := make([]NoteFrequency, len(noteTable))
	copy(out, noteTable[:])
	return out
}

// NoteCount is the number of keys on the keyboard.
func NoteCount() int {
	return len(noteTable)
}

// NoteAt returns the note at bucket index i.
func NoteAt(i int) (NoteFrequency, bool) {
	if i < 0 || i >= len(noteTable) {
		return NoteFrequency{}, false
	}
	return noteTable[i], true
}

// LookupNote finds a note by name.
func LookupNote(name string) (NoteFrequency, bool) {
	for _, n := range noteTable {
		if n.Name == name {
			return n, true
		}
	}
	return NoteFrequency{}, false
}

// NoteNames lists the note names in keyboard order.
func NoteNames() []string {
	names := make([]string, len(noteTable))
	for i, n := range noteTable {
		names[i] = n.Name
	}
	return names
}

// IsSharp reports whether the note is a black key.
func (n NoteFrequency) IsSharp() bool {
	return strings.ContainsRune(n.Name, '#')
}

// MODULATION_DIVISOR scales a 0..100 modulation depth into a frequency ratio.
const MODULATION_DIVISOR = 7500

// ModulatedPair returns freq and the detuned partner sounded with it.
func ModulatedPair(freq float64, depth int) []float64 {
	return []float64{freq, freq * (1 + float64(depth)/MODULATION_DIVISOR)}
}

// session_midi.go - Standard MIDI File session log

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

package main

import (
	"fmt"
	"time"

	"github.com/intuitionamiga/pedalsynth/synth"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	SESSION_TICKS    = 960
	SESSION_BPM      = 120
	SESSION_CHANNEL  = 0
	SESSION_VELOCITY = 100
)

type sessionEvent struct {
	at  time.Duration
	on  bool
	key uint8
}

// SessionLog wraps a VoiceBank and records every trigger and release as MIDI
// note events, so a played session can be saved as a Standard MIDI File.
type SessionLog struct {
	inner    VoiceBank
	now      func() time.Time
	start    time.Time
	events   []sessionEvent
	sounding map[uint8]bool
}

func NewSessionLog(inner VoiceBank) *SessionLog {
	s := &SessionLog{
		inner:    inner,
		now:      time.Now,
		sounding: make(map[uint8]bool),
	}
	s.start = s.now()
	return s
}

func (s *SessionLog) noteOn(key uint8) {
	if s.sounding[key] {
		s.noteOff(key)
	}
	s.sounding[key] = true
	s.events = append(s.events, sessionEvent{at: s.now().Sub(s.start), on: true, key: key})
}

func (s *SessionLog) noteOff(key uint8) {
	if !s.sounding[key] {
		return
	}
	delete(s.sounding, key)
	s.events = append(s.events, sessionEvent{at: s.now().Sub(s.start), key: key})
}

func (s *SessionLog) Voice(name string) NoteVoice {
	v := s.inner.Voice(name)
	if v == nil {
		return nil
	}
	note, ok := synth.LookupNote(name)
	if !ok {
		return v
	}
	return &loggedVoice{log: s, key: note.Key, inner: v}
}

func (s *SessionLog) ReleaseAll() {
	s.inner.ReleaseAll()
	for _, n := range synth.Notes() {
		s.noteOff(n.Key)
	}
}

// Events returns the number of logged note events.
func (s *SessionLog) Events() int { return len(s.events) }

func durationToTicks(d time.Duration) uint32 {
	ticksPerSecond := float64(SESSION_TICKS) * SESSION_BPM / 60
	return uint32(d.Seconds() * ticksPerSecond)
}

// SMF builds a single-track file of the session. Notes still sounding are
// closed at the current time.
func (s *SessionLog) SMF() (*smf.SMF, error) {
	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(SESSION_TICKS)

	var track smf.Track
	track.Add(0, smf.MetaTempo(SESSION_BPM))

	var last uint32
	add := func(at time.Duration, msg midi.Message) {
		ticks := durationToTicks(at)
		if ticks < last {
			ticks = last
		}
		track.Add(ticks-last, msg)
		last = ticks
	}
	for _, ev := range s.events {
		if ev.on {
			add(ev.at, midi.NoteOn(SESSION_CHANNEL, ev.key, SESSION_VELOCITY))
		} else {
			add(ev.at, midi.NoteOff(SESSION_CHANNEL, ev.key))
		}
	}
	end := s.now().Sub(s.start)
	for _, n := range synth.Notes() {
		if s.sounding[n.Key] {
			add(end, midi.NoteOff(SESSION_CHANNEL, n.Key))
		}
	}
	track.Close(0)

	if err := sm.Add(track); err != nil {
		return nil, fmt.Errorf("session track: %w", err)
	}
	return sm, nil
}

func (s *SessionLog) WriteFile(path string) error {
	sm, err := s.SMF()
	if err != nil {
		return err
	}
	if err := sm.WriteFile(path); err != nil {
		return fmt.Errorf("write MIDI session %s: %w", path, err)
	}
	return nil
}

type loggedVoice struct {
	log   *SessionLog
	key   uint8
	inner NoteVoice
}

func (v *loggedVoice) TriggerAttack(freqs []float64) {
	v.inner.TriggerAttack(freqs)
	v.log.noteOn(v.key)
}

func (v *loggedVoice) ReleaseAll() {
	v.inner.ReleaseAll()
	v.log.noteOff(v.key)
}

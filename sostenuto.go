// sostenuto.go - Three-way sostenuto pedal

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

// SostenutoMode is the three-way sostenuto pedal position.
type SostenutoMode int

const (
	SostenutoOff SostenutoMode = iota
	SostenutoHolding
	SostenutoBlocking
)

func (m SostenutoMode) String() string {
	switch m {
	case SostenutoHolding:
		return "ON (Sustaining)"
	case SostenutoBlocking:
		return "ON (Not sustaining new notes)"
	default:
		return "OFF (Use pedal to enable)"
	}
}

// SustainedNotes is an insertion-ordered set of note names held by the pedal.
type SustainedNotes struct {
	members map[string]struct{}
	order   []string
}

func (s *SustainedNotes) Add(name string) {
	if s.members == nil {
		s.members = make(map[string]struct{})
	}
	if _, ok := s.members[name]; ok {
		return
	}
	s.members[name] = struct{}{}
	s.order = append(s.order, name)
}

func (s *SustainedNotes) Has(name string) bool {
	_, ok := s.members[name]
	return ok
}

func (s *SustainedNotes) Len() int { return len(s.order) }

func (s *SustainedNotes) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// ReleaseAndClear releases every member exactly once, then empties the set.
func (s *SustainedNotes) ReleaseAndClear(bank VoiceBank) {
	for _, name := range s.order {
		if v := bank.Voice(name); v != nil {
			v.ReleaseAll()
		}
	}
	s.members = nil
	s.order = nil
}

// SostenutoPedal cycles Off -> Holding -> Blocking -> Off.
type SostenutoPedal struct {
	mode      SostenutoMode
	sustained SustainedNotes
}

func (p *SostenutoPedal) Mode() SostenutoMode { return p.mode }

func (p *SostenutoPedal) Sustained() *SustainedNotes { return &p.sustained }

// Toggle advances the pedal. Returning to Off force-releases the held notes.
func (p *SostenutoPedal) Toggle(bank VoiceBank) {
	p.mode = (p.mode + 1) % 3
	if p.mode == SostenutoOff {
		p.sustained.ReleaseAndClear(bank)
	}
}

// NotePressed records a freshly triggered note; only Holding captures it.
func (p *SostenutoPedal) NotePressed(name string) {
	if p.mode == SostenutoHolding {
		p.sustained.Add(name)
	}
}

func (p *SostenutoPedal) Sustains(name string) bool {
	return p.sustained.Has(name)
}

// lua.go - Lua synth presets

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

package preset

import (
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"

	"github.com/intuitionamiga/pedalsynth/synth"
)

// Error reports a preset that could not be loaded or has a badly typed field.
type Error struct {
	Path  string // file, or "<string>" for inline presets
	Field string // empty when the script itself failed
	Err   error
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("preset %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("preset %s: field %s: %v", e.Path, e.Field, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// LoadFile runs a Lua preset script and applies its globals on top of base.
//
// Recognised globals:
//
//	master_volume, harmonicity, modulation_index, detune, polyphony  (numbers)
//	envelope, modulation_envelope = { attack, decay, sustain, release }
//	chorus  = { frequency, delay, depth }
//	reverb  = { decay, mix }
//	tremolo = { frequency, depth }
//
// Globals that are absent leave the base value untouched.
func LoadFile(path string, base synth.Params) (synth.Params, error) {
	L, err := newState(path)
	if err != nil {
		return base, err
	}
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return base, &Error{Path: path, Err: err}
	}
	return apply(L, path, base)
}

// LoadString is LoadFile for an in-memory script.
func LoadString(src string, base synth.Params) (synth.Params, error) {
	L, err := newState("<string>")
	if err != nil {
		return base, err
	}
	defer L.Close()

	if err := L.DoString(src); err != nil {
		return base, &Error{Path: "<string>", Err: err}
	}
	return apply(L, "<string>", base)
}

type luaLib struct {
	name string
	open lua.LGFunction
}

// Presets see only the base and math libraries.
var presetLibs = []luaLib{
	{lua.BaseLibName, lua.OpenBase},
	{lua.MathLibName, lua.OpenMath},
}

func newState(path string) (*lua.LState, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range presetLibs {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			L.Close()
			return nil, &Error{Path: path, Err: fmt.Errorf("open %s library: %w", lib.name, err)}
		}
	}
	return L, nil
}

type reader struct {
	path string
	err  error
}

func (r *reader) number(v lua.LValue, field string, dst *float64) {
	if r.err != nil || v == lua.LNil {
		return
	}
	n, ok := v.(lua.LNumber)
	if !ok {
		r.err = &Error{Path: r.path, Field: field, Err: fmt.Errorf("expected number, got %s", v.Type())}
		return
	}
	*dst = float64(n)
}

// amount reads a number that must be finite and not negative.
func (r *reader) amount(v lua.LValue, field string, dst *float64) {
	if r.err != nil || v == lua.LNil {
		return
	}
	var f float64
	r.number(v, field, &f)
	if r.err != nil {
		return
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		r.err = &Error{Path: r.path, Field: field, Err: fmt.Errorf("must be a finite number >= 0, got %v", f)}
		return
	}
	*dst = f
}

func (r *reader) table(v lua.LValue, field string) *lua.LTable {
	if r.err != nil || v == lua.LNil {
		return nil
	}
	t, ok := v.(*lua.LTable)
	if !ok {
		r.err = &Error{Path: r.path, Field: field, Err: fmt.Errorf("expected table, got %s", v.Type())}
		return nil
	}
	return t
}

func (r *reader) envelope(v lua.LValue, field string, env *synth.EnvelopeParams) {
	t := r.table(v, field)
	if t == nil {
		return
	}
	r.amount(t.RawGetString("attack"), field+".attack", &env.Attack)
	r.amount(t.RawGetString("decay"), field+".decay", &env.Decay)
	r.amount(t.RawGetString("sustain"), field+".sustain", &env.Sustain)
	r.amount(t.RawGetString("release"), field+".release", &env.Release)
}

func apply(L *lua.LState, path string, p synth.Params) (synth.Params, error) {
	r := &reader{path: path}

	r.number(L.GetGlobal("master_volume"), "master_volume", &p.MasterVolumeDB)
	r.amount(L.GetGlobal("harmonicity"), "harmonicity", &p.Voice.Harmonicity)
	r.amount(L.GetGlobal("modulation_index"), "modulation_index", &p.Voice.ModulationIndex)
	r.number(L.GetGlobal("detune"), "detune", &p.Voice.DetuneCents)

	poly := float64(p.Polyphony)
	r.number(L.GetGlobal("polyphony"), "polyphony", &poly)
	if r.err == nil && !(poly >= 1) {
		r.err = &Error{Path: path, Field: "polyphony", Err: fmt.Errorf("must be at least 1, got %v", poly)}
	}
	p.Polyphony = int(poly)

	r.envelope(L.GetGlobal("envelope"), "envelope", &p.Voice.Envelope)
	r.envelope(L.GetGlobal("modulation_envelope"), "modulation_envelope", &p.Voice.ModulationEnvelope)

	if t := r.table(L.GetGlobal("chorus"), "chorus"); t != nil {
		r.amount(t.RawGetString("frequency"), "chorus.frequency", &p.Effects.ChorusFrequency)
		r.amount(t.RawGetString("delay"), "chorus.delay", &p.Effects.ChorusDelayMs)
		r.amount(t.RawGetString("depth"), "chorus.depth", &p.Effects.ChorusDepth)
	}
	if t := r.table(L.GetGlobal("reverb"), "reverb"); t != nil {
		r.amount(t.RawGetString("decay"), "reverb.decay", &p.Effects.ReverbDecay)
		r.amount(t.RawGetString("mix"), "reverb.mix", &p.Effects.ReverbMix)
	}
	if t := r.table(L.GetGlobal("tremolo"), "tremolo"); t != nil {
		r.amount(t.RawGetString("frequency"), "tremolo.frequency", &p.Effects.TremoloFrequency)
		r.amount(t.RawGetString("depth"), "tremolo.depth", &p.Effects.TremoloDepth)
	}

	if r.err != nil {
		return p, r.err
	}
	return p, nil
}

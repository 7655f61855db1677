// modulation.go - Rotary modulation knob

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

import "math"

const TWO_PI = 2 * math.Pi

// ModulationKnob is a rotary control driven by pointer drags around its centre.
type ModulationKnob struct {
	center      Point
	angle       float64
	offsetAngle float64
	dragging    bool
}

func NewModulationKnob(center Point) *ModulationKnob {
	return &ModulationKnob{center: center}
}

// wrapAngle folds a into [0, 2π).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, TWO_PI)
	if a < 0 {
		a += TWO_PI
	}
	if a >= TWO_PI {
		a = 0
	}
	return a
}

func (k *ModulationKnob) pointerAngle(p Point) float64 {
	return math.Atan2(p.Y-k.center.Y, p.X-k.center.X)
}

// BeginDrag remembers where on the knob the pointer grabbed it, so the
// rotation continues from there instead of jumping to the pointer.
func (k *ModulationKnob) BeginDrag(p Point) {
	k.dragging = true
	k.offsetAngle = k.pointerAngle(p) - k.angle
}

// Drag follows the pointer while a drag is active.
func (k *ModulationKnob) Drag(p Point) {
	if !k.dragging {
		return
	}
	k.angle = wrapAngle(k.pointerAngle(p) - k.offsetAngle)
}

func (k *ModulationKnob) EndDrag() { k.dragging = false }

func (k *ModulationKnob) Dragging() bool { return k.dragging }

func (k *ModulationKnob) Angle() float64 { return k.angle }

func (k *ModulationKnob) Center() Point { return k.center }

// Depth maps the angle onto 0..100.
func (k *ModulationKnob) Depth() int {
	return int(math.Floor(k.angle / TWO_PI * 100))
}

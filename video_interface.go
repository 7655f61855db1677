// video_interface.go - Display backend contract and drawing surface

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
	"image/color"
)

// VideoError provides detailed error context for video operations
type VideoError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *VideoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("video %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("video %s failed: %s", e.Operation, e.Details)
}

func (e *VideoError) Unwrap() error { return e.Err }

type DisplayConfig struct {
	Width      int
	Height     int
	Title      string
	Fullscreen bool
	Frames     int // headless builds stop after this many frames
}

func (c DisplayConfig) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return &VideoError{
			Operation: "configure",
			Details:   fmt.Sprintf("invalid window size %dx%d", c.Width, c.Height),
		}
	}
	if c.Height <= KEYBOARD_HEIGHT {
		return &VideoError{
			Operation: "configure",
			Details:   fmt.Sprintf("window height %d leaves no room above the keyboard", c.Height),
		}
	}
	return nil
}

// VideoOutput runs the frame loop for an App. Start blocks until the
// window closes (or the headless frame budget is spent).
type VideoOutput interface {
	Start() error
	Close() error
	IsStarted() bool
	GetDisplayConfig() DisplayConfig
	GetFrameCount() uint64
}

// NewVideoOutput creates the display backend selected at build time.
func NewVideoOutput(app *App, config DisplayConfig) (VideoOutput, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return NewEbitenOutput(app, config)
}

type TextAlign int

const (
	ALIGN_LEFT TextAlign = iota
	ALIGN_CENTER
)

// Surface is the immediate-mode 2D canvas the renderer paints each frame.
// Text y coordinates are the top of the line box.
type Surface interface {
	Size() (w, h float64)
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	Line(x1, y1, x2, y2, width float64, c color.Color)
	Arc(cx, cy, r, start, end, width float64, c color.Color)
	Text(s string, x, y float64, align TextAlign, c color.Color)
	TextWidth(s string) float64
	LineHeight() float64
}

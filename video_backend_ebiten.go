//go:build !headless

// video_backend_ebiten.go - Ebiten video backend for PedalSynth

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
	"math"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

type EbitenOutput struct {
	app        *App
	config     DisplayConfig
	running    bool
	fullscreen bool
	frameCount uint64
	surface    ebitenSurface

	touchActive bool
	touchID     ebiten.TouchID
	touchIDs    []ebiten.TouchID

	clipboardOnce sync.Once
	clipboardOK   bool
}

func NewEbitenOutput(app *App, config DisplayConfig) (VideoOutput, error) {
	return &EbitenOutput{
		app:        app,
		config:     config,
		fullscreen: config.Fullscreen,
		surface:    ebitenSurface{w: float64(config.Width), h: float64(config.Height)},
	}, nil
}

// Start runs the game loop on the calling goroutine until the window closes.
func (eo *EbitenOutput) Start() error {
	if eo.running {
		return nil
	}
	eo.running = true
	defer func() { eo.running = false }()

	ebiten.SetWindowSize(eo.config.Width, eo.config.Height)
	ebiten.SetWindowTitle(eo.config.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetVsyncEnabled(true)
	if eo.fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(eo); err != nil {
		return &VideoError{Operation: "run", Details: "ebiten game loop", Err: err}
	}
	return nil
}

func (eo *EbitenOutput) Close() error {
	eo.running = false
	return nil
}

func (eo *EbitenOutput) IsStarted() bool { return eo.running }

func (eo *EbitenOutput) GetDisplayConfig() DisplayConfig { return eo.config }

func (eo *EbitenOutput) GetFrameCount() uint64 { return eo.frameCount }

func (eo *EbitenOutput) Update() error {
	if ebiten.IsWindowBeingClosed() || !eo.running {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		eo.fullscreen = !eo.fullscreen
		ebiten.SetFullscreen(eo.fullscreen)
		if !eo.fullscreen {
			ebiten.SetWindowSize(eo.config.Width, eo.config.Height)
		}
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		eo.copyStatus()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		eo.app.Router.KeyDown(KEY_SPACE)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		eo.app.Router.KeyUp(KEY_SPACE)
	}

	eo.app.Frame(eo.handlePointer())
	return nil
}

// handlePointer feeds mouse and single-finger touch into the router and
// returns the position drags should follow this frame.
func (eo *EbitenOutput) handlePointer() Point {
	r := eo.app.Router
	mx, my := ebiten.CursorPosition()
	p := Point{X: float64(mx), Y: float64(my)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		r.PointerDown(p)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		r.PointerUp(p)
	}

	eo.touchIDs = inpututil.AppendJustPressedTouchIDs(eo.touchIDs[:0])
	for _, id := range eo.touchIDs {
		if eo.touchActive {
			break
		}
		x, y := ebiten.TouchPosition(id)
		eo.touchActive, eo.touchID = true, id
		r.PointerDown(Point{X: float64(x), Y: float64(y)})
	}
	if eo.touchActive {
		if inpututil.IsTouchJustReleased(eo.touchID) {
			x, y := inpututil.TouchPositionInPreviousTick(eo.touchID)
			p = Point{X: float64(x), Y: float64(y)}
			r.PointerUp(p)
			eo.touchActive = false
		} else {
			x, y := ebiten.TouchPosition(eo.touchID)
			p = Point{X: float64(x), Y: float64(y)}
		}
	}
	return p
}

func (eo *EbitenOutput) copyStatus() {
	eo.clipboardOnce.Do(func() {
		eo.clipboardOK = clipboard.Init() == nil
	})
	if !eo.clipboardOK {
		fmt.Fprintln(os.Stderr, "clipboard unavailable")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(eo.app.StatusText()))
}

func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	eo.surface.img = screen
	eo.app.Draw(&eo.surface)
	eo.frameCount++
}

func (eo *EbitenOutput) Layout(_, _ int) (int, int) {
	return eo.config.Width, eo.config.Height
}

// ebitenSurface draws on the current screen image with the vector package.
type ebitenSurface struct {
	img  *ebiten.Image
	w, h float64
}

func (s *ebitenSurface) Size() (float64, float64) { return s.w, s.h }

func (s *ebitenSurface) Clear(c color.Color) { s.img.Fill(c) }

func (s *ebitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, true)
}

func (s *ebitenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s *ebitenSurface) Line(x1, y1, x2, y2, width float64, c color.Color) {
	vector.StrokeLine(s.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

func (s *ebitenSurface) Arc(cx, cy, r, start, end, width float64, c color.Color) {
	pts := arcPoints(cx, cy, r, start, end)
	for i := 1; i < len(pts); i++ {
		s.Line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, width, c)
	}
}

func (s *ebitenSurface) Text(str string, x, y float64, align TextAlign, c color.Color) {
	face := basicfont.Face7x13
	if align == ALIGN_CENTER {
		x -= s.TextWidth(str) / 2
	}
	baseline := y + float64(face.Metrics().Ascent.Ceil())
	text.Draw(s.img, str, face, int(math.Round(x)), int(math.Round(baseline)), c)
}

func (s *ebitenSurface) TextWidth(str string) float64 {
	return float64(text.BoundString(basicfont.Face7x13, str).Dx())
}

func (s *ebitenSurface) LineHeight() float64 {
	return float64(basicfont.Face7x13.Metrics().Height.Ceil())
}

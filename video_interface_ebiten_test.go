//go:build !headless

package main

import "testing"

func TestEbitenOutput_Implements(t *testing.T) {
	var eo any = &EbitenOutput{}
	if _, ok := eo.(VideoOutput); !ok {
		t.Fatal("expected EbitenOutput to implement VideoOutput")
	}
	var s any = &ebitenSurface{}
	if _, ok := s.(Surface); !ok {
		t.Fatal("expected ebitenSurface to implement Surface")
	}
}

func TestEbitenOutput_LayoutIsFixed(t *testing.T) {
	eo := &EbitenOutput{config: DisplayConfig{Width: 1024, Height: 600}}
	w, h := eo.Layout(1920, 1080)
	if w != 1024 || h != 600 {
		t.Fatalf("expected (1024,600), got (%d,%d)", w, h)
	}
}

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/intuitionamiga/pedalsynth/preset"
	"github.com/intuitionamiga/pedalsynth/synth"
)

func TestDisplayConfig_ValidSize(t *testing.T) {
	if err := (DisplayConfig{Width: 800, Height: 600}).validate(); err != nil {
		t.Fatalf("expected 800x600 to be accepted, got %v", err)
	}
}

func TestDisplayConfig_ZeroWidth(t *testing.T) {
	if err := (DisplayConfig{Width: 0, Height: 600}).validate(); err == nil {
		t.Fatal("expected zero width to be rejected")
	}
}

func TestDisplayConfig_NoRoomAboveKeyboard(t *testing.T) {
	err := (DisplayConfig{Width: 800, Height: KEYBOARD_HEIGHT}).validate()
	if err == nil {
		t.Fatal("expected a window no taller than the keyboard to be rejected")
	}
	if !strings.Contains(err.Error(), "keyboard") {
		t.Fatalf("expected the error to mention the keyboard, got %q", err)
	}
}

func resetConfig(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		config.preset = ""
		config.volume = synth.DefaultMasterVolumeDB
		rootCmd.Flags().Lookup("volume").Changed = false
	})
}

func TestLoadParams_Defaults(t *testing.T) {
	resetConfig(t)
	p, err := loadParams(rootCmd)
	if err != nil {
		t.Fatalf("loadParams: %v", err)
	}
	if p != synth.DefaultParams() {
		t.Fatalf("expected default params, got %+v", p)
	}
}

func TestLoadParams_PresetThenVolumeFlag(t *testing.T) {
	resetConfig(t)
	path := filepath.Join(t.TempDir(), "bright.lua")
	if err := os.WriteFile(path, []byte("master_volume = -3\nharmonicity = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	config.preset = path

	p, err := loadParams(rootCmd)
	if err != nil {
		t.Fatalf("loadParams: %v", err)
	}
	if p.MasterVolumeDB != -3 || p.Voice.Harmonicity != 2 {
		t.Fatalf("expected preset values, got volume=%f harmonicity=%f", p.MasterVolumeDB, p.Voice.Harmonicity)
	}

	if err := rootCmd.Flags().Set("volume", "-9"); err != nil {
		t.Fatal(err)
	}
	p, err = loadParams(rootCmd)
	if err != nil {
		t.Fatalf("loadParams: %v", err)
	}
	if p.MasterVolumeDB != -9 {
		t.Fatalf("expected the flag to win over the preset, got %f", p.MasterVolumeDB)
	}
}

func TestLoadParams_BadPreset(t *testing.T) {
	resetConfig(t)
	path := filepath.Join(t.TempDir(), "bad.lua")
	if err := os.WriteFile(path, []byte("polyphony = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	config.preset = path
	_, err := loadParams(rootCmd)
	var perr *preset.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *preset.Error, got %v", err)
	}
	if perr.Field != "polyphony" {
		t.Fatalf("expected the polyphony field, got %q", perr.Field)
	}
}

func TestBoilerPlate_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	boilerPlate(&buf)
	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no escape codes when not writing to a terminal")
	}
	if !strings.Contains(out, "License: GPLv3 or later") {
		t.Fatalf("expected licence line, got %q", out)
	}
}

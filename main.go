// main.go - Main entry point for PedalSynth

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
	"os"

	"github.com/intuitionamiga/pedalsynth/preset"
	"github.com/intuitionamiga/pedalsynth/synth"
	"github.com/spf13/cobra"
)

const Version = "1.0.0"

var config struct {
	width      int
	height     int
	volume     float64
	preset     string
	record     string
	midiOut    string
	fullscreen bool
	frames     int
}

var rootCmd = &cobra.Command{
	Use:   "pedalsynth",
	Short: "A playable FM synth with sostenuto, modulation and pitch shift pedals",
	Long: `PedalSynth draws a one-octave keyboard, three effect pedals and a live
waveform. Press space to start the audio, click keys to play, and hold space
to sustain.

Controls:
• Space: start audio, then toggle sustain
• Sostenuto pedal: Off, Holding, Blocking
• Modulation knob: drag to set the FM depth
• F11: fullscreen, Ctrl+Shift+C: copy status`,
	Version:      Version,
	SilenceUsage: true,
	RunE:         runPedalSynth,
}

func init() {
	rootCmd.Flags().IntVar(&config.width, "width", 1024, "Window width in pixels")
	rootCmd.Flags().IntVar(&config.height, "height", 600, "Window height in pixels")
	rootCmd.Flags().Float64Var(&config.volume, "volume", synth.DefaultMasterVolumeDB,
		"Master volume in dB (overrides the preset)")
	rootCmd.Flags().StringVarP(&config.preset, "preset", "p", "",
		"Lua preset file with synth parameters")
	rootCmd.Flags().StringVarP(&config.record, "record", "r", "",
		"Record the master output to a WAV file")
	rootCmd.Flags().StringVarP(&config.midiOut, "midi-out", "m", "",
		"Log played notes to a Standard MIDI File")
	rootCmd.Flags().BoolVarP(&config.fullscreen, "fullscreen", "f", false,
		"Start in fullscreen")
	rootCmd.Flags().IntVar(&config.frames, "frames", 60,
		"Frames to run before exiting (headless builds only)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadParams(cmd *cobra.Command) (synth.Params, error) {
	params := synth.DefaultParams()
	if config.preset != "" {
		var err error
		params, err = preset.LoadFile(config.preset, params)
		if err != nil {
			return params, err
		}
		fmt.Printf("Loaded preset %s\n", config.preset)
	}
	if cmd.Flags().Changed("volume") {
		params.MasterVolumeDB = config.volume
	}
	return params, nil
}

func runPedalSynth(cmd *cobra.Command, args []string) (err error) {
	boilerPlate(os.Stdout)

	params, err := loadParams(cmd)
	if err != nil {
		return err
	}

	app, err := NewApp(AppOptions{
		Width:       config.width,
		Height:      config.height,
		RecordPath:  config.record,
		MIDIOutPath: config.midiOut,
	}, params)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	video, err := NewVideoOutput(app, DisplayConfig{
		Width:      config.width,
		Height:     config.height,
		Title:      "PedalSynth",
		Fullscreen: config.fullscreen,
		Frames:     config.frames,
	})
	if err != nil {
		return err
	}
	defer video.Close()

	fmt.Println(SPLASH_TEXT)
	return video.Start()
}

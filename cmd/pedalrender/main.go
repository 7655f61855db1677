// main.go - Offline note renderer

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
	"time"

	"github.com/intuitionamiga/pedalsynth/preset"
	"github.com/intuitionamiga/pedalsynth/synth"
	"github.com/spf13/cobra"
)

var opts struct {
	output string
	preset string
	depth  int
	hold   time.Duration
	tail   time.Duration
	volume float64
}

var rootCmd = &cobra.Command{
	Use:   "pedalrender [flags] note",
	Short: "Render one PedalSynth note to a WAV file",
	Long: `pedalrender plays a single note through the PedalSynth engine offline
and writes the result as 16-bit mono WAV.

Examples:
  pedalrender a4
  pedalrender -o c4.wav --depth 40 --hold 2s c4
  pedalrender --preset bright.lua g#4`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runRender,
}

func init() {
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: <note>.wav)")
	rootCmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "Lua preset file")
	rootCmd.Flags().IntVarP(&opts.depth, "depth", "d", 0, "Modulation depth 0..100")
	rootCmd.Flags().DurationVar(&opts.hold, "hold", time.Second, "Time the key is held")
	rootCmd.Flags().DurationVar(&opts.tail, "tail", 2*time.Second, "Time rendered after release")
	rootCmd.Flags().Float64Var(&opts.volume, "volume", synth.DefaultMasterVolumeDB, "Master volume in dB")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func outputPath(note string) string {
	if opts.output != "" {
		return opts.output
	}
	return note + ".wav"
}

func runRender(cmd *cobra.Command, args []string) error {
	params := synth.DefaultParams()
	if opts.preset != "" {
		var err error
		if params, err = preset.LoadFile(opts.preset, params); err != nil {
			return err
		}
	}
	if opts.preset == "" || cmd.Flags().Changed("volume") {
		params.MasterVolumeDB = opts.volume
	}

	r, err := NewRenderer(RenderOptions{
		Note:   args[0],
		Depth:  opts.depth,
		Hold:   opts.hold,
		Tail:   opts.tail,
		Params: params,
	})
	if err != nil {
		return err
	}

	path := outputPath(args[0])
	frames, err := r.RenderToFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("Rendered %s: %d samples (%.2fs) to %s\n", args[0], frames,
		float64(frames)/synth.SampleRate, path)
	return nil
}

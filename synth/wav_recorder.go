package synth

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// RECORDER_BLOCK is the number of samples held before they are encoded to disk.
const RECORDER_BLOCK = 4096

// WAVRecorder streams mono output to a 16-bit PCM WAV file in fixed blocks.
// The file is created on the first flush; Close writes the final header.
type WAVRecorder struct {
	path       string
	sampleRate int
	mu         sync.Mutex
	file       *os.File
	enc        *wav.Encoder
	pending    []int
	frames     int
	closed     bool
	err        error
}

func NewWAVRecorder(path string, sampleRate int) *WAVRecorder {
	return &WAVRecorder{
		path:       path,
		sampleRate: sampleRate,
		pending:    make([]int, 0, RECORDER_BLOCK),
	}
}

func (r *WAVRecorder) WriteSamples(samples []float32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return fmt.Errorf("wav recorder %s: write after close", r.path)
	}
	if r.err != nil {
		return r.err
	}
	for _, s := range samples {
		r.pending = append(r.pending, int(clamp(float64(s), -1, 1)*32767))
		if len(r.pending) >= RECORDER_BLOCK {
			if r.err = r.flush(); r.err != nil {
				return r.err
			}
		}
	}
	r.frames += len(samples)
	return nil
}

// Frames returns the number of samples captured so far.
func (r *WAVRecorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *WAVRecorder) open() error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", r.path, err)
	}
	r.file = f
	r.enc = wav.NewEncoder(f, r.sampleRate, 16, 1, 1)
	return nil
}

// flush encodes the pending block. Caller holds mu.
func (r *WAVRecorder) flush() error {
	if r.enc == nil {
		if err := r.open(); err != nil {
			return err
		}
	}
	// An empty write still emits the header on a fresh encoder.
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  r.sampleRate,
		},
		Data:           r.pending,
		SourceBitDepth: 16,
	}
	if err := r.enc.Write(buf); err != nil {
		return fmt.Errorf("encode %s: %w", r.path, err)
	}
	r.pending = r.pending[:0]
	return nil
}

// Close flushes the last block and finalises the file.
func (r *WAVRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true

	if r.err == nil {
		r.err = r.flush()
	}
	if r.file == nil {
		return r.err
	}
	defer r.file.Close()
	if r.err != nil {
		return r.err
	}
	if err := r.enc.Close(); err != nil {
		return fmt.Errorf("finalize %s: %w", r.path, err)
	}
	return nil
}

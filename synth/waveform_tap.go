package synth

// WaveformTap keeps the most recent samples of the master output.
type WaveformTap struct {
	ring []float32
	pos  int
}

func NewWaveformTap(size int) *WaveformTap {
	if size <= 0 {
		size = WaveformSize
	}
	return &WaveformTap{ring: make([]float32, size)}
}

func (w *WaveformTap) Push(s float32) {
	w.ring[w.pos] = s
	w.pos = (w.pos + 1) % len(w.ring)
}

func (w *WaveformTap) Size() int { return len(w.ring) }

// Snapshot copies the buffer oldest-first into dst, growing it if needed.
func (w *WaveformTap) Snapshot(dst []float32) []float32 {
	n := len(w.ring)
	if cap(dst) < n {
		dst = make([]float32, n)
	}
	dst = dst[:n]
	copy(dst, w.ring[w.pos:])
	copy(dst[n-w.pos:], w.ring[:w.pos])
	return dst
}

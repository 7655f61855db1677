package main

// Segment is one line of the waveform trace.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// RisingZeroCrossing returns the first index where the signal goes from
// negative to non-negative, or 0 when there is none.
func RisingZeroCrossing(buf []float32) int {
	for i := 1; i < len(buf); i++ {
		if buf[i-1] < 0 && buf[i] >= 0 {
			return i
		}
	}
	return 0
}

func mapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}

// WaveformTrace lays half a buffer out across width, starting at the first
// rising zero crossing. Amplitude -1..1 maps onto 0..height.
func WaveformTrace(buf []float32, width, height float64) []Segment {
	if len(buf) < 2 {
		return nil
	}
	start := RisingZeroCrossing(buf)
	end := start + len(buf)/2
	segs := make([]Segment, 0, end-start)
	for i := start; i < end; i++ {
		if i < 1 || i >= len(buf) {
			continue
		}
		segs = append(segs, Segment{
			X1: mapRange(float64(i-1), float64(start), float64(end), 0, width),
			Y1: mapRange(float64(buf[i-1]), -1, 1, 0, height),
			X2: mapRange(float64(i), float64(start), float64(end), 0, width),
			Y2: mapRange(float64(buf[i]), -1, 1, 0, height),
		})
	}
	return segs
}

package analysis

// padCenter surrounds y with pad zeros on both sides.
func padCenter(y []float64, pad int) []float64 {
	out := make([]float64, len(y)+2*pad)
	copy(out[pad:], y)
	return out
}

// frameCount is the number of full frames of length frameLength at hop spacing.
func frameCount(n, frameLength, hop int) int {
	if n < frameLength {
		return 0
	}
	return 1 + (n-frameLength)/hop
}

// centeredFrames slices y into overlapping frames after zero padding by frameLength/2.
// The frames share memory with the padded signal.
func centeredFrames(y []float64, frameLength, hop int) [][]float64 {
	padded := padCenter(y, frameLength/2)
	n := frameCount(len(padded), frameLength, hop)
	frames := make([][]float64, n)
	for i := range frames {
		start := i * hop
		frames[i] = padded[start : start+frameLength]
	}
	return frames
}

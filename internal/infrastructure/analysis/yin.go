package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	troughThreshold = 0.1
	// smallest normal float32, added to the CMNDF denominator
	tinyFloat32 = 1.1754944e-38
	nearZero    = 1e-6
)

// YINParams configures the pitch tracker.
type YINParams struct {
	FMin        float64
	FMax        float64
	FrameLength int
	HopLength   int
}

// YIN estimates the fundamental frequency of every centered frame of y.
// The integration window is half the frame length.
func YIN(y []float64, sampleRate int, p YINParams) ([]float64, error) {
	if p.FMin <= 0 || p.FMax <= p.FMin {
		return nil, fmt.Errorf("invalid pitch bounds fmin=%g fmax=%g", p.FMin, p.FMax)
	}
	if p.FrameLength < 4 || p.HopLength < 1 {
		return nil, fmt.Errorf("invalid framing frame=%d hop=%d", p.FrameLength, p.HopLength)
	}

	sr := float64(sampleRate)
	winLength := p.FrameLength / 2
	minPeriod := max(int(math.Floor(sr/p.FMax)), 1)
	maxPeriod := min(int(math.Ceil(sr/p.FMin)), p.FrameLength-winLength-1)
	if minPeriod >= maxPeriod {
		return nil, fmt.Errorf("frame length %d too short for fmin %g at %d Hz", p.FrameLength, p.FMin, sampleRate)
	}

	t := newYINTracker(p.FrameLength, winLength, minPeriod, maxPeriod)
	frames := centeredFrames(y, p.FrameLength, p.HopLength)
	f0 := make([]float64, len(frames))
	for i, frame := range frames {
		f0[i] = sr / t.period(frame)
	}
	return f0, nil
}

// yinTracker holds the scratch buffers for one pass over a signal.
type yinTracker struct {
	frameLength, winLength int
	minPeriod, maxPeriod   int

	fft      *fourier.FFT
	padded   []float64
	reversed []float64
	coeffA   []complex128
	coeffB   []complex128
	conv     []float64
	energy   []float64
	diff     []float64
	cmndf    []float64
	shifts   []float64
}

func newYINTracker(frameLength, winLength, minPeriod, maxPeriod int) *yinTracker {
	n := 2 * frameLength
	return &yinTracker{
		frameLength: frameLength,
		winLength:   winLength,
		minPeriod:   minPeriod,
		maxPeriod:   maxPeriod,
		fft:         fourier.NewFFT(n),
		padded:      make([]float64, n),
		reversed:    make([]float64, n),
		coeffA:      make([]complex128, n/2+1),
		coeffB:      make([]complex128, n/2+1),
		conv:        make([]float64, n),
		energy:      make([]float64, frameLength+1),
		diff:        make([]float64, maxPeriod+1),
		cmndf:       make([]float64, maxPeriod-minPeriod+1),
		shifts:      make([]float64, maxPeriod-minPeriod+1),
	}
}

// period returns the fractional lag of the best CMNDF trough of frame.
func (t *yinTracker) period(frame []float64) float64 {
	n := len(t.padded)
	w := t.winLength

	// acf[tau] = sum_{j=1..w} x[j] x[j+tau], as a linear convolution with x[w..1]
	clear(t.padded)
	clear(t.reversed)
	copy(t.padded, frame)
	for i := 0; i < w; i++ {
		t.reversed[i] = frame[w-i]
	}
	t.fft.Coefficients(t.coeffA, t.padded)
	t.fft.Coefficients(t.coeffB, t.reversed)
	for i := range t.coeffA {
		t.coeffA[i] *= t.coeffB[i]
	}
	// the inverse transform is unnormalized
	t.fft.Sequence(t.conv, t.coeffA)

	// energy[k] = sum_{j<k} x[j]^2
	t.energy[0] = 0
	for j, v := range frame {
		t.energy[j+1] = t.energy[j] + v*v
	}

	for tau := 0; tau <= t.maxPeriod; tau++ {
		acf := t.conv[w+tau] / float64(n)
		if math.Abs(acf) < nearZero {
			acf = 0
		}
		t.diff[tau] = acf
	}

	e0 := windowEnergy(t.energy, 0, w)
	for tau := 0; tau <= t.maxPeriod; tau++ {
		t.diff[tau] = e0 + windowEnergy(t.energy, tau, w) - 2*t.diff[tau]
	}

	// cumulative mean normalized difference over [minPeriod, maxPeriod]
	var cum float64
	for tau := 1; tau <= t.maxPeriod; tau++ {
		cum += t.diff[tau]
		if tau >= t.minPeriod {
			t.cmndf[tau-t.minPeriod] = t.diff[tau] / (cum/float64(tau) + tinyFloat32)
		}
	}

	parabolicShifts(t.cmndf, t.shifts)
	idx := bestTrough(t.cmndf)
	return float64(t.minPeriod+idx) + t.shifts[idx]
}

// windowEnergy is sum_{j=tau+1..tau+w} x[j]^2 from the prefix sums.
func windowEnergy(prefix []float64, tau, w int) float64 {
	e := prefix[tau+w+1] - prefix[tau+1]
	if math.Abs(e) < nearZero {
		return 0
	}
	return e
}

// parabolicShifts stores, for each interior point, the vertex offset of the parabola
// through it and its neighbours. Edges and ill-conditioned points get 0.
func parabolicShifts(x, shifts []float64) {
	last := len(x) - 1
	for i := range shifts {
		shifts[i] = 0
		if i == 0 || i == last {
			continue
		}
		a := x[i+1] + x[i-1] - 2*x[i]
		b := (x[i+1] - x[i-1]) / 2
		if math.Abs(b) < math.Abs(a) {
			shifts[i] = -b / a
		}
	}
}

// bestTrough returns the first local minimum below troughThreshold,
// falling back to the global minimum.
func bestTrough(x []float64) int {
	last := len(x) - 1
	for i := range x {
		var trough bool
		switch {
		case last == 0:
			trough = false
		case i == 0:
			trough = x[0] < x[1]
		case i == last:
			trough = x[i] < x[i-1]
		default:
			trough = x[i] < x[i-1] && x[i] <= x[i+1]
		}
		if trough && x[i] < troughThreshold {
			return i
		}
	}

	best := 0
	for i, v := range x {
		if v < x[best] {
			best = i
		}
	}
	return best
}

package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// FrameRMS returns the root-mean-square amplitude of every centered frame.
func FrameRMS(y []float64, frameLength, hop int) []float64 {
	frames := centeredFrames(y, frameLength, hop)
	out := make([]float64, len(frames))
	for i, frame := range frames {
		out[i] = math.Sqrt(floats.Dot(frame, frame) / float64(frameLength))
	}
	return out
}

// SpectralCentroid returns the magnitude-weighted mean frequency in Hz of every
// frame of a centered, periodic-Hann STFT with nFFT bins.
// Frames without spectral energy yield 0.
func SpectralCentroid(y []float64, sampleRate, nFFT, hop int) []float64 {
	frames := centeredFrames(y, nFFT, hop)
	out := make([]float64, len(frames))
	if len(frames) == 0 {
		return out
	}

	fft := fourier.NewFFT(nFFT)
	window := periodicHann(nFFT)
	windowed := make([]float64, nFFT)
	coeffs := make([]complex128, nFFT/2+1)
	freqs := make([]float64, len(coeffs))
	for k := range freqs {
		freqs[k] = fft.Freq(k) * float64(sampleRate)
	}
	mags := make([]float64, len(coeffs))

	for i, frame := range frames {
		floats.MulTo(windowed, frame, window)
		fft.Coefficients(coeffs, windowed)
		for k, c := range coeffs {
			mags[k] = cmplx.Abs(c)
		}

		total := floats.Sum(mags)
		if total < tinyFloat32 {
			out[i] = floats.Dot(freqs, mags)
			continue
		}
		out[i] = floats.Dot(freqs, mags) / total
	}
	return out
}

// periodicHann is the DFT-even Hann window of length n.
func periodicHann(n int) []float64 {
	w := make([]float64, n)
	for k := range w {
		w[k] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(k)/float64(n))
	}
	return w
}

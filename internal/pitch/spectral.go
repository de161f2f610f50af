package pitch

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// Spectral is the last-resort detector: Blackman-windowed FFT, peak
// magnitude bin within the accepted range, parabolic refinement. It can
// lock onto a harmonic instead of the fundamental, which is why it runs
// after the time-domain detectors.
type Spectral struct {
	sampleRate float64
	minFreq    float64
	maxFreq    float64
}

func NewSpectral(cfg Config) *Spectral {
	return &Spectral{
		sampleRate: cfg.SampleRate,
		minFreq:    cfg.MinFrequency,
		maxFreq:    cfg.MaxFrequency,
	}
}

func (s *Spectral) Detect(samples []float32) (float64, bool) {
	if len(samples) < 2 {
		return 0, false
	}
	input := meanRemoved(samples)
	win := window.Blackman(len(input))
	for i := range input {
		input[i] *= win[i]
	}
	spectrum := fft.FFTReal(input)

	binWidth := s.sampleRate / float64(len(input))
	minBin := int(s.minFreq / binWidth)
	maxBin := int(s.maxFreq / binWidth)
	if minBin < 1 {
		minBin = 1
	}
	if maxBin >= len(spectrum)/2 {
		maxBin = len(spectrum)/2 - 1
	}
	if maxBin <= minBin {
		return 0, false
	}

	peakBin := -1
	var peakMag float64
	for bin := minBin; bin <= maxBin; bin++ {
		mag := cmplx.Abs(spectrum[bin])
		if mag > peakMag {
			peakMag = mag
			peakBin = bin
		}
	}
	if peakBin < 0 || peakMag == 0 {
		return 0, false
	}

	// Parabolic interpolation on log magnitudes around the peak bin.
	m0 := math.Log(cmplx.Abs(spectrum[peakBin-1]) + 1e-12)
	m1 := math.Log(peakMag + 1e-12)
	m2 := math.Log(cmplx.Abs(spectrum[peakBin+1]) + 1e-12)
	denom := 2 * (2*m1 - m0 - m2)
	shift := 0.0
	if denom != 0 {
		shift = (m2 - m0) / denom
	}
	if shift > 0.5 {
		shift = 0.5
	} else if shift < -0.5 {
		shift = -0.5
	}
	return (float64(peakBin) + shift) * binWidth, true
}

// Package pitch estimates the fundamental frequency of short windows of
// mono audio. Detection runs through an ordered list of detectors; the
// first in-range result wins. Windows below the silence floor are
// rejected before any detector runs.
package pitch

import "math"

// Guitar range: safely below the low E string (82.41 Hz) and above the
// high E at the 12th fret.
const (
	DefaultMinFrequency = 60.0
	DefaultMaxFrequency = 1400.0
	DefaultSilenceFloor = 0.005
	DefaultWindowSize   = 8192
)

// Config is the per-session detector configuration. Detectors keep no
// state between calls beyond it.
type Config struct {
	SampleRate   float64
	MinFrequency float64
	MaxFrequency float64
	SilenceFloor float64 // RMS below this is treated as silence
}

// DefaultConfig returns the guitar defaults for the given sample rate.
func DefaultConfig(sampleRate float64) Config {
	return Config{
		SampleRate:   sampleRate,
		MinFrequency: DefaultMinFrequency,
		MaxFrequency: DefaultMaxFrequency,
		SilenceFloor: DefaultSilenceFloor,
	}
}

// Detector is a single pitch estimation strategy. It returns the
// estimated fundamental in Hz, or ok=false when the window carries no
// reliable pitch for this strategy.
type Detector interface {
	Detect(samples []float32) (float64, bool)
}

// Chain gates on signal energy and then tries each detector in order.
type Chain struct {
	cfg       Config
	detectors []Detector
}

// NewChain builds the default detector ordering: YIN first (accurate in
// the mid and high range), plain autocorrelation second (robust on low
// strings), spectral peak last.
func NewChain(cfg Config) *Chain {
	return &Chain{
		cfg: cfg,
		detectors: []Detector{
			NewYIN(cfg),
			NewAutocorrelation(cfg),
			NewSpectral(cfg),
		},
	}
}

// Analyze estimates the fundamental frequency of one window. It returns
// the window RMS alongside; ok is false for silence, noise and
// out-of-range results.
func (c *Chain) Analyze(samples []float32) (freq float64, rms float64, ok bool) {
	if len(samples) == 0 {
		return 0, 0, false
	}
	rms, peak := signalLevel(samples)
	if rms < c.cfg.SilenceFloor && peak < 2*c.cfg.SilenceFloor {
		return 0, rms, false
	}
	for _, d := range c.detectors {
		f, found := d.Detect(samples)
		if found && f >= c.cfg.MinFrequency && f <= c.cfg.MaxFrequency {
			return f, rms, true
		}
	}
	return 0, rms, false
}

func signalLevel(samples []float32) (rms float64, peak float64) {
	var energy float64
	for _, s := range samples {
		v := float64(s)
		energy += v * v
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	rms = math.Sqrt(energy / float64(len(samples)))
	return rms, peak
}

// meanRemoved copies samples to float64 with the DC offset subtracted.
func meanRemoved(samples []float32) []float64 {
	var sum float64
	for _, s := range samples {
		sum += float64(s)
	}
	mean := sum / float64(len(samples))
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s) - mean
	}
	return out
}

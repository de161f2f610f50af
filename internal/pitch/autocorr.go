package pitch

// Autocorrelation is the low-frequency fallback: a plain time-domain
// autocorrelation over the whole window. Less precise than YIN up high,
// but it stays stable on the wound low strings where the fundamental is
// weak relative to its harmonics.
type Autocorrelation struct {
	sampleRate float64
	minFreq    float64
	maxFreq    float64
}

func NewAutocorrelation(cfg Config) *Autocorrelation {
	return &Autocorrelation{
		sampleRate: cfg.SampleRate,
		minFreq:    cfg.MinFrequency,
		maxFreq:    cfg.MaxFrequency,
	}
}

func (a *Autocorrelation) Detect(samples []float32) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}
	normalized := meanRemoved(samples)

	minLag := int(a.sampleRate / a.maxFreq)
	maxLag := int(a.sampleRate / a.minFreq)
	if minLag < 1 {
		minLag = 1
	}
	if maxLag >= len(normalized) {
		maxLag = len(normalized) - 1
	}

	var bestLag int
	var bestCorr float64
	for lag := minLag; lag <= maxLag; lag++ {
		var corr float64
		for i := 0; i < len(normalized)-lag; i++ {
			corr += normalized[i] * normalized[i+lag]
		}
		if corr > bestCorr {
			bestCorr = corr
			bestLag = lag
		}
	}
	if bestLag == 0 {
		return 0, false
	}
	return a.sampleRate / float64(bestLag), true
}

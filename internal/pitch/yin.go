package pitch

// YIN threshold: allowed uncertainty in the cumulative mean normalized
// difference. 0.15 keeps attack transients from registering while still
// locking onto a plucked string quickly.
const yinThreshold = 0.15

// YIN implements the de Cheveigné/Kawahara pitch estimator. It is the
// primary detector: accurate from the middle of the guitar range up.
type YIN struct {
	sampleRate float64
	threshold  float64
}

func NewYIN(cfg Config) *YIN {
	return &YIN{sampleRate: cfg.SampleRate, threshold: yinThreshold}
}

func (y *YIN) Detect(samples []float32) (float64, bool) {
	half := len(samples) / 2
	if half < 2 {
		return 0, false
	}
	diff := make([]float64, half)

	// Squared difference of the signal against a lagged copy of itself.
	for tau := 1; tau < half; tau++ {
		for i := 0; i < half; i++ {
			delta := float64(samples[i]) - float64(samples[i+tau])
			diff[tau] += delta * delta
		}
	}

	// Cumulative mean normalized difference.
	diff[0] = 1
	var runningSum float64
	for tau := 1; tau < half; tau++ {
		runningSum += diff[tau]
		if runningSum == 0 {
			diff[tau] = 1
			continue
		}
		diff[tau] *= float64(tau) / runningSum
	}

	// First dip under the threshold, refined to the local minimum.
	tau := -1
	for t := 2; t < half; t++ {
		if diff[t] < y.threshold {
			for t+1 < half && diff[t+1] < diff[t] {
				t++
			}
			tau = t
			break
		}
	}
	if tau < 0 {
		return 0, false
	}

	return y.sampleRate / parabolicMin(diff, tau), true
}

// parabolicMin interpolates the true minimum position between samples
// around index tau.
func parabolicMin(buf []float64, tau int) float64 {
	x0 := tau - 1
	x2 := tau + 1
	if x0 < 0 {
		x0 = tau
	}
	if x2 >= len(buf) {
		x2 = tau
	}
	if x0 == tau || x2 == tau {
		return float64(tau)
	}
	s0, s1, s2 := buf[x0], buf[tau], buf[x2]
	denom := 2 * (2*s1 - s2 - s0)
	if denom == 0 {
		return float64(tau)
	}
	return float64(tau) + (s2-s0)/denom
}

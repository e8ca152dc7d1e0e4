package math

// MaxDrawdown returns the largest peak-to-trough decline as a fraction of the peak.
func MaxDrawdown(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var maxDrawdown float64
	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
		if peak <= 0 {
			continue
		}
		if dd := (peak - v) / peak; dd > maxDrawdown {
			maxDrawdown = dd
		}
	}
	return maxDrawdown
}

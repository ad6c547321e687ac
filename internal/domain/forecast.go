package domain

// Sample is one grid point of the forecast: a geographic coordinate and the
// aurora-visibility intensity predicted there. Samples are immutable once
// fetched.
type Sample struct {
	Lon       float64 `json:"lon"`
	Lat       float64 `json:"lat"`
	Intensity float64 `json:"aurora"`
}

// ForecastSnapshot is one complete fetch result: the full sample collection
// plus the feed's two optional timestamp strings. Sample order follows the
// source feed and carries no meaning. A snapshot is created once per run and
// never mutated.
type ForecastSnapshot struct {
	Samples         []Sample
	ObservationTime string // ISO-8601 or empty
	ForecastTime    string // ISO-8601 or empty
}

// MaxIntensity returns the largest intensity across all samples. The second
// return value is false when the snapshot is empty, in which case no color
// scale can be normalized.
func (s ForecastSnapshot) MaxIntensity() (float64, bool) {
	if len(s.Samples) == 0 {
		return 0, false
	}
	maxVal := s.Samples[0].Intensity
	for _, sample := range s.Samples[1:] {
		if sample.Intensity > maxVal {
			maxVal = sample.Intensity
		}
	}
	return maxVal, true
}

// FilterSamples returns the samples with intensity at or above the threshold,
// preserving feed order. Duplicate intensity values are all retained; an
// empty result is valid.
func FilterSamples(samples []Sample, threshold float64) []Sample {
	out := make([]Sample, 0, len(samples))
	for _, s := range samples {
		if s.Intensity >= threshold {
			out = append(out, s)
		}
	}
	return out
}

// NormalizeLon maps a longitude in either the 0..360 or -180..180 convention
// into [-180, 180).
func NormalizeLon(lon float64) float64 {
	for lon >= 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return lon
}

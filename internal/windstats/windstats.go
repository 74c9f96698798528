// Package windstats provides the rolling statistics and resampling helpers
// used to post-process reconstructed windfield series.
package windstats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrWindowSize reports an unusable rolling window size.
var ErrWindowSize = errors.New("window size must be positive")

// RollingMedian returns the centred rolling median of signal. Windows are
// truncated at the edges, so the output has the same length as the input.
// NaN elements are ignored within each window; a window of only NaNs yields
// NaN.
func RollingMedian(signal []float64, wsize int) ([]float64, error) {
	if wsize <= 0 {
		return nil, fmt.Errorf("wsize %d: %w", wsize, ErrWindowSize)
	}

	out := make([]float64, len(signal))
	half := wsize / 2
	buf := make([]float64, 0, wsize)
	for i := range signal {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half + 1
		if hi > len(signal) {
			hi = len(signal)
		}

		buf = buf[:0]
		for _, v := range signal[lo:hi] {
			if !math.IsNaN(v) {
				buf = append(buf, v)
			}
		}
		if len(buf) == 0 {
			out[i] = math.NaN()
			continue
		}
		sort.Float64s(buf)
		out[i] = stat.Quantile(0.5, stat.Empirical, buf, nil)
	}
	return out, nil
}

// DespikeMedian removes outliers from signal by comparing each element
// against the centred rolling median: elements further than tolerance from
// the local median are replaced with NaN. A non-positive tolerance defaults
// to one standard deviation of the finite part of the signal.
func DespikeMedian(signal []float64, wsize int, tolerance float64) ([]float64, error) {
	med, err := RollingMedian(signal, wsize)
	if err != nil {
		return nil, err
	}

	if tolerance <= 0 {
		finite := make([]float64, 0, len(signal))
		for _, v := range signal {
			if !math.IsNaN(v) {
				finite = append(finite, v)
			}
		}
		tolerance = stat.StdDev(finite, nil)
	}

	out := make([]float64, len(signal))
	for i, v := range signal {
		if math.Abs(v-med[i]) >= tolerance {
			out[i] = math.NaN()
			continue
		}
		out[i] = v
	}
	return out, nil
}

// ErrResample reports unusable resampling inputs.
var ErrResample = errors.New("resample requires sorted times and matching lengths")

// Resample linearly interpolates (times, values) onto the target timestamps.
// Times must be strictly increasing. Targets outside the source range yield
// NaN rather than extrapolating.
func Resample(times []int64, values []float64, onto []int64) ([]float64, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("%d times, %d values: %w", len(times), len(values), ErrResample)
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, fmt.Errorf("times not strictly increasing at %d: %w", i, ErrResample)
		}
	}

	out := make([]float64, len(onto))
	for i, t := range onto {
		out[i] = interpolateAt(times, values, t)
	}
	return out, nil
}

func interpolateAt(times []int64, values []float64, t int64) float64 {
	if len(times) == 0 || t < times[0] || t > times[len(times)-1] {
		return math.NaN()
	}
	j := sort.Search(len(times), func(k int) bool { return times[k] >= t })
	if times[j] == t {
		return values[j]
	}
	t0, t1 := times[j-1], times[j]
	frac := float64(t-t0) / float64(t1-t0)
	return values[j-1] + frac*(values[j]-values[j-1])
}

// Summary holds descriptive statistics of a windfield series, NaNs
// excluded.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes descriptive statistics over the finite elements of
// the series. An all-NaN or empty series gives a zero Count and NaN
// moments.
func Summarize(series []float64) Summary {
	finite := make([]float64, 0, len(series))
	for _, v := range series {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		nan := math.NaN()
		return Summary{Count: 0, Mean: nan, StdDev: nan, Min: nan, Max: nan}
	}

	min, max := finite[0], finite[0]
	for _, v := range finite[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return Summary{
		Count:  len(finite),
		Mean:   stat.Mean(finite, nil),
		StdDev: stat.StdDev(finite, nil),
		Min:    min,
		Max:    max,
	}
}

package weibull

import (
	"errors"
	"math"
)

// Sentinel errors returned by sample construction and parsing.
var (
	// ErrEmptySample indicates that no observations were supplied.
	ErrEmptySample = errors.New("weibull: sample must contain at least one observation")

	// ErrBadValue indicates a NaN or infinite observation.
	ErrBadValue = errors.New("weibull: sample contains a NaN or infinite value")

	// ErrBadFormat indicates a malformed line in a data series file.
	ErrBadFormat = errors.New("weibull: malformed data line")
)

// Sample holds a data series together with the summary statistics the
// moment fit needs. The statistics are computed once at construction;
// a Sample is immutable afterwards and safe for concurrent use.
type Sample struct {
	n             int
	mean          float64
	cubedMean     float64
	belowMeanFrac float64
}

// NewSample validates xs and precomputes its summary statistics:
// the mean, the mean of the cubed observations, and the empirical
// fraction of observations strictly below the mean.
//
// Errors: ErrEmptySample on empty input, ErrBadValue on NaN/±Inf.
//
// Complexity: O(n) time, O(1) extra space.
func NewSample(xs []float64) (*Sample, error) {
	if len(xs) == 0 {
		return nil, ErrEmptySample
	}

	var sum, sumCubes float64
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, ErrBadValue
		}
		sum += x
		sumCubes += x * x * x
	}

	n := float64(len(xs))
	mean := sum / n

	below := 0
	for _, x := range xs {
		if x < mean {
			below++
		}
	}

	return &Sample{
		n:             len(xs),
		mean:          mean,
		cubedMean:     sumCubes / n,
		belowMeanFrac: float64(below) / n,
	}, nil
}

// Len returns the number of observations.
func (s *Sample) Len() int { return s.n }

// Mean returns the sample mean.
func (s *Sample) Mean() float64 { return s.mean }

// CubedMean returns the mean of the cubed observations (the third raw
// moment estimate).
func (s *Sample) CubedMean() float64 { return s.cubedMean }

// BelowMeanFrac returns the empirical fraction of observations strictly
// below the sample mean.
func (s *Sample) BelowMeanFrac() float64 { return s.belowMeanFrac }

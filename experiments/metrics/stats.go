package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Statistic keeps a running mean and variance (Welford's algorithm).
type Statistic struct {
	n    int
	mean float64
	m2   float64
}

func (s *Statistic) Push(val float64) {
	s.n++
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
}

func (s *Statistic) Mean() float64 {
	return s.mean
}

func (s *Statistic) Variance() float64 {
	if s.n <= 1 {
		return 0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistic) Count() int {
	return s.n
}

// ZVal returns the two-tailed z-value for a confidence level given in percent.
func ZVal(confidence float64) float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	return dist.Quantile((1 + confidence/100) / 2)
}

// WinRateInterval returns the observed rate and its normal-approximation
// confidence interval, clamped to [0, 1].
func WinRateInterval(successes, trials int, confidence float64) (rate, low, high float64) {
	if trials <= 0 {
		return 0, 0, 0
	}
	rate = float64(successes) / float64(trials)
	margin := ZVal(confidence) * math.Sqrt(rate*(1-rate)/float64(trials))
	return rate, math.Max(0, rate-margin), math.Min(1, rate+margin)
}

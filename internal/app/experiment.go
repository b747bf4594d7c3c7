package app

import (
	"math/rand"
)

// Experiment produces placeholder readings for the data page until real
// device readings exist.
type Experiment struct {
	samples  int
	maxValue int
	rng      *rand.Rand
	data     []int
	runs     int
}

// NewExperiment creates an experiment drawing samples in [0, maxValue]
func NewExperiment(samples, maxValue int, seed int64) *Experiment {
	return &Experiment{
		samples:  samples,
		maxValue: maxValue,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Run replaces the data set with a fresh draw
func (e *Experiment) Run() []int {
	data := make([]int, e.samples)
	for i := range data {
		data[i] = e.rng.Intn(e.maxValue + 1)
	}
	e.data = data
	e.runs++
	return e.Data()
}

// Data returns a copy of the current readings, nil before the first run
func (e *Experiment) Data() []int {
	if e.data == nil {
		return nil
	}
	return append([]int(nil), e.data...)
}

// Runs counts completed runs
func (e *Experiment) Runs() int { return e.runs }

// MaxValue is the upper bound of a reading
func (e *Experiment) MaxValue() int { return e.maxValue }

// Stats returns min, max and mean of the current readings
func (e *Experiment) Stats() (lo, hi int, mean float64) {
	if len(e.data) == 0 {
		return 0, 0, 0
	}
	lo, hi = e.data[0], e.data[0]
	sum := 0
	for _, v := range e.data {
		lo = min(lo, v)
		hi = max(hi, v)
		sum += v
	}
	return lo, hi, float64(sum) / float64(len(e.data))
}

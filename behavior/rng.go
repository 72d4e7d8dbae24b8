package behavior

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// RNG is the single seeded random source threaded through a run. All random
// draws in the engine (initial saccade directions, escape direction and
// magnitude, probabilistic capture scaling) go through it, so a run is fully
// reproducible from its seed.
type RNG struct {
	src  *rand.PCG
	rand *rand.Rand
}

// NewRNG returns a source seeded for one run.
func NewRNG(seed uint64) *RNG {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &RNG{src: src, rand: rand.New(src)}
}

// Unit draws a uniform sample in [0, 1).
func (r *RNG) Unit() float64 { return r.rand.Float64() }

// Direction maps a uniform draw to ±1 by the sign of sample-0.5.
func (r *RNG) Direction() float64 {
	if r.Unit() < 0.5 {
		return -1
	}
	return 1
}

// Normal draws from a normal distribution with the given mean and standard
// deviation.
func (r *RNG) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: r.src}.Rand()
}

// ChiSquared2 draws from a chi-squared distribution with two degrees of
// freedom.
func (r *RNG) ChiSquared2() float64 {
	return distuv.ChiSquared{K: 2, Src: r.src}.Rand()
}

package chainnet

import (
	"math/rand"
)

type uniform int8

// Uniform returns the default RNG, drawing from math/rand with no scaling
// beyond the bounds given to Fill. It is the source every Base starts with;
// a different one can be injected with *Base.SetRNG.
func Uniform() RNG {
	return uniform(0)
}

// Fill is the implementation of RNG.
func (u uniform) Fill(dst []float64, lower, upper float64) {
	for i := range dst {
		dst[i] = rand.Float64()*(upper-lower) + lower
	}
}

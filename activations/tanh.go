package activations

import (
	"math"
)

type tanh int8

// Tanh returns the Activation applying the tanh() function.
func Tanh() tanh {
	return tanh(0)
}

func (t tanh) F(x float64) float64 {
	return math.Tanh(x)
}

// the derivative of tanh(x) is 1 - tanh(x)^2
func (t tanh) Deriv(fx float64) float64 {
	return 1 - fx*fx
}

func (t tanh) Deriv2(fx float64) float64 {
	return -2 * fx * (1 - fx*fx)
}

package activations

import (
	"math"
)

type logistic int8

// Logistic returns the sigmoid Activation, 1/(1+e^-x).
func Logistic() logistic {
	return logistic(0)
}

func (t logistic) F(x float64) float64 {
	return 0.5 + 0.5*math.Tanh(0.5*x)
}

func (t logistic) Deriv(fx float64) float64 {
	return fx * (1 - fx)
}

func (t logistic) Deriv2(fx float64) float64 {
	return fx * (1 - fx) * (1 - 2*fx)
}

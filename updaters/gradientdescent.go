// Package updaters provides the standard Updater implementations invoked by
// layers during backward propagation.
package updaters

const defaultRate float64 = 0.01

type gradientdescent struct {
	rate float64
}

// GradientDescent returns the plain first-order Updater, which steps each
// parameter by -rate * gradient and ignores the Hessian. The rate defaults
// to 0.01 and can be set by Rate.
func GradientDescent() *gradientdescent {
	return &gradientdescent{defaultRate}
}

// Rate sets the learning rate, returning the same Updater.
func (g *gradientdescent) Rate(rate float64) *gradientdescent {
	g.rate = rate
	return g
}

// Update is the implementation of chainnet.Updater.
func (g *gradientdescent) Update(params, grad, hessian []float64) {
	for i := range params {
		params[i] -= g.rate * grad[i]
	}
}

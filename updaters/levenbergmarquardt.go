package updaters

const defaultMu float64 = 0.02

type levenbergMarquardt struct {
	rate, mu float64
}

// LevenbergMarquardt returns the second-order-aware Updater, which scales
// each parameter's step by the inverse of its averaged diagonal Hessian
// term: -rate/(h+mu) * gradient. mu keeps the step bounded where curvature
// is near zero.
//
// The layers' Hessian buffers must hold averaged values when this Updater
// runs, which means the driver accumulates second-order passes over its
// sample set and calls Chain.DivideHessian before training.
func LevenbergMarquardt() *levenbergMarquardt {
	return &levenbergMarquardt{defaultRate, defaultMu}
}

// Rate sets the learning rate, returning the same Updater.
func (l *levenbergMarquardt) Rate(rate float64) *levenbergMarquardt {
	l.rate = rate
	return l
}

// Mu sets the damping constant added to each Hessian term, returning the
// same Updater.
func (l *levenbergMarquardt) Mu(mu float64) *levenbergMarquardt {
	l.mu = mu
	return l
}

// Update is the implementation of chainnet.Updater.
func (l *levenbergMarquardt) Update(params, grad, hessian []float64) {
	for i := range params {
		params[i] -= l.rate * grad[i] / (hessian[i] + l.mu)
	}
}

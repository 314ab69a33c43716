// Package layers provides the concrete layer variants built on
// chainnet.Base.
package layers

import (
	cn "github.com/sharnoff/chainnet"
)

// FullyConnected is the dense layer variant: every output unit is connected
// to every input, with one bias per output. Weights are stored in a single
// vector indexed [c*out+r] for input c and output r.
type FullyConnected struct {
	*cn.Base

	// reused gradient buffers handed to the Updater each backward pass
	gradW, gradB []float64
}

// NewFullyConnected returns a dense layer mapping in values to out values
// through the given Activation. Its parameters are uninitialized until
// InitWeight (or Reset) is called.
func NewFullyConnected(act cn.Activation, in, out int) *FullyConnected {
	l := new(FullyConnected)
	l.Base = cn.NewBase(l, act, in, out, in*out, out)
	l.gradW = make([]float64, in*out)
	l.gradB = make([]float64, out)
	return l
}

// FanInSize is the implementation of chainnet.Layer; every output unit is
// fed by all InSize inputs.
func (l *FullyConnected) FanInSize() int { return l.InSize() }

// ConnectionSize is the implementation of chainnet.Layer, counting one
// connection per weight and one per bias.
func (l *FullyConnected) ConnectionSize() int {
	return l.InSize()*l.OutSize() + l.OutSize()
}

// ForwardPropagation is the implementation of chainnet.Layer.
func (l *FullyConnected) ForwardPropagation(in []float64) []float64 {
	w, b, out := l.Weight(), l.Bias(), l.Output()
	a := l.ActivationFunction()
	n, m := l.InSize(), l.OutSize()

	for r := 0; r < m; r++ {
		z := b[r]
		for c := 0; c < n; c++ {
			z += w[c*m+r] * in[c]
		}
		out[r] = a.F(z)
	}

	if next := l.Next(); next != nil {
		return next.ForwardPropagation(out)
	}
	return out
}

// BackPropagation is the implementation of chainnet.Layer. delta is the
// gradient w.r.t. this layer's pre-activation; the predecessor's delta is
// computed before any parameter is touched, so the update never feeds back
// into the same pass.
func (l *FullyConnected) BackPropagation(delta []float64, u cn.Updater) []float64 {
	prev := l.Prev()
	prevOut := prev.Output()
	prevAct := prev.ActivationFunction()
	w, out := l.Weight(), l.Delta()
	n, m := l.InSize(), l.OutSize()

	for c := 0; c < n; c++ {
		var sum float64
		for r := 0; r < m; r++ {
			sum += delta[r] * w[c*m+r]
		}
		out[c] = sum * prevAct.Deriv(prevOut[c])
	}

	if u != nil {
		for c := 0; c < n; c++ {
			for r := 0; r < m; r++ {
				l.gradW[c*m+r] = delta[r] * prevOut[c]
			}
		}
		copy(l.gradB, delta)

		u.Update(w, l.gradW, l.WeightHessian())
		u.Update(l.Bias(), l.gradB, l.BiasHessian())
	}

	return prev.BackPropagation(out, u)
}

// BackPropagation2nd is the implementation of chainnet.Layer. It uses the
// Gauss-Newton approximation: curvature terms are built from squared inputs
// and squared weights, with the predecessor's squared first derivative in
// place of the full chain rule.
func (l *FullyConnected) BackPropagation2nd(delta2 []float64) []float64 {
	prev := l.Prev()
	prevOut := prev.Output()
	prevAct := prev.ActivationFunction()
	w, wh, bh := l.Weight(), l.WeightHessian(), l.BiasHessian()
	out := l.Delta2()
	n, m := l.InSize(), l.OutSize()

	for c := 0; c < n; c++ {
		for r := 0; r < m; r++ {
			wh[c*m+r] += delta2[r] * prevOut[c] * prevOut[c]
		}
	}
	for r := 0; r < m; r++ {
		bh[r] += delta2[r]
	}

	for c := 0; c < n; c++ {
		var sum float64
		for r := 0; r < m; r++ {
			sum += delta2[r] * w[c*m+r] * w[c*m+r]
		}
		d := prevAct.Deriv(prevOut[c])
		out[c] = sum * d * d
	}

	return prev.BackPropagation2nd(out)
}

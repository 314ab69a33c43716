// Package activations provides the standard Activation policies for
// chainnet layers. Each Activation exposes the function value and its first
// two derivatives, with the derivatives parameterized by the activation
// output so that propagation can reuse stored forward results.
package activations

type identity int8

// Identity returns the Activation that passes values through unchanged. It
// is the usual choice for a network's final layer.
func Identity() identity {
	return identity(0)
}

func (t identity) F(x float64) float64 { return x }

func (t identity) Deriv(fx float64) float64 { return 1 }

func (t identity) Deriv2(fx float64) float64 { return 0 }

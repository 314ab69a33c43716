package chainnet

// identity is the activation policy of the input layer.
type identity int8

func (t identity) F(x float64) float64 { return x }

func (t identity) Deriv(fx float64) float64 { return 1 }

func (t identity) Deriv2(fx float64) float64 { return 0 }

type inputLayer struct {
	*Base
}

// NewInput returns the transparent identity layer that heads every Chain. It
// is constructed with sizes of zero and adopts the input size of the first
// layer connected after it; until then it forwards whatever vector it is
// given. It has no parameters, and its backward passes return their argument
// unchanged without touching the Updater.
//
// A Chain creates and owns its own input layer; NewInput is exported for
// drivers that manage layers without a Chain.
func NewInput() Layer {
	l := new(inputLayer)
	l.Base = NewBase(l, identity(0), 0, 0, 0, 0)
	return l
}

// ForwardPropagation copies in into the layer's output buffer, re-sizing it
// if the layer has not been fixed to a size yet, and forwards through the
// successor when one exists.
func (l *inputLayer) ForwardPropagation(in []float64) []float64 {
	if l.outSize != len(in) {
		l.setSize(len(in), len(in), 0, 0)
	}

	copy(l.out.Values, in)

	if l.next != nil {
		return l.next.ForwardPropagation(l.out.Values)
	}
	return l.out.Values
}

func (l *inputLayer) BackPropagation(delta []float64, u Updater) []float64 {
	return delta
}

func (l *inputLayer) BackPropagation2nd(delta2 []float64) []float64 {
	return delta2
}

// FanInSize returns 1, so that a hypothetical InitWeight never divides by
// zero.
func (l *inputLayer) FanInSize() int { return 1 }

func (l *inputLayer) ConnectionSize() int { return l.inSize }

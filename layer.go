package chainnet

import (
	"math"

	"github.com/sharnoff/tensors"
)

// Base holds the state common to every Layer: fixed dimensions, the
// structural links into the chain, the reusable propagation buffers, and the
// learnable parameters with their Hessian buffers. Concrete variants embed
// *Base and provide the propagation methods on top of it.
//
// The buffers returned by the accessors are the layer's own storage, not
// copies. Propagation overwrites them on every call.
type Base struct {
	// the Layer this Base is embedded in, for the variant-defined methods
	// that the common operations depend on
	self Layer

	inSize, outSize int

	next, prev Layer

	// last output of the layer, set by ForwardPropagation
	out tensors.Tensor

	// last delta handed to the predecessor, set by BackPropagation
	delta []float64

	w, b []float64

	// diagonal terms of the Hessian, accumulated by BackPropagation2nd
	wHessian, bHessian []float64

	// last second-order delta handed to the predecessor
	prevDelta2 []float64

	act Activation
	src RNG
}

// NewBase returns a *Base for the given variant to embed. self must be the
// embedding Layer itself and act its activation policy; NewBase panics with
// type NilArgError if either is nil. inDim and outDim fix the layer's sizes
// for its lifetime (both zero only for the size-agnostic input layer);
// weightDim and biasDim size the parameter vectors and may be zero for
// variants without learnable parameters.
func NewBase(self Layer, act Activation, inDim, outDim, weightDim, biasDim int) *Base {
	if self == nil {
		panic(NilArgError{"Layer"})
	} else if act == nil {
		panic(NilArgError{"Activation"})
	}

	b := &Base{
		self: self,
		act:  act,
		src:  Uniform(),
	}
	b.setSize(inDim, outDim, weightDim, biasDim)
	return b
}

func (b *Base) setSize(inDim, outDim, weightDim, biasDim int) {
	b.inSize = inDim
	b.outSize = outDim
	if outDim != 0 {
		b.out = tensors.NewTensor([]int{outDim})
	} else {
		b.out = tensors.Tensor{}
	}
	b.delta = make([]float64, inDim)
	b.w = make([]float64, weightDim)
	b.b = make([]float64, biasDim)
	b.wHessian = make([]float64, weightDim)
	b.bHessian = make([]float64, biasDim)
	b.prevDelta2 = make([]float64, inDim)
}

// base implements Layer for every variant embedding a *Base.
func (b *Base) base() *Base { return b }

// Connect is the implementation of Layer. A receiver with output size zero
// (the not-yet-sized input layer) adopts next's input size as its own before
// linking.
func (b *Base) Connect(next Layer) error {
	if next == nil {
		panic(NilArgError{"Layer"})
	}

	if b.outSize != 0 && next.InSize() != b.outSize {
		return DimensionMismatchError{b.outSize, next.InSize()}
	}

	if b.outSize == 0 {
		b.setSize(next.InSize(), next.InSize(), len(b.w), len(b.b))
	}

	b.next = next
	next.base().prev = b.self
	return nil
}

// InitWeight is the implementation of Layer.
func (b *Base) InitWeight() {
	bound := 0.5 / math.Sqrt(float64(b.self.FanInSize()))

	b.src.Fill(b.w, -bound, bound)
	b.src.Fill(b.b, -bound, bound)

	for i := range b.wHessian {
		b.wHessian[i] = 0
	}
	for i := range b.bHessian {
		b.bHessian[i] = 0
	}
}

// Reset is the default implementation of Layer; it is exactly InitWeight.
func (b *Base) Reset() { b.InitWeight() }

// DivideHessian is the implementation of Layer.
func (b *Base) DivideHessian(n int) {
	d := float64(n)
	for i := range b.wHessian {
		b.wHessian[i] /= d
	}
	for i := range b.bHessian {
		b.bHessian[i] /= d
	}
}

// SetRNG replaces the source of random values used by InitWeight, returning
// the same *Base. The default source is Uniform(). SetRNG panics with type
// NilArgError if src is nil.
func (b *Base) SetRNG(src RNG) *Base {
	if src == nil {
		panic(NilArgError{"RNG"})
	}

	b.src = src
	return b
}

func (b *Base) InSize() int { return b.inSize }

func (b *Base) OutSize() int { return b.outSize }

// ParamSize is the implementation of Layer.
func (b *Base) ParamSize() int { return len(b.w) + len(b.b) }

// ActivationFunction is the implementation of Layer.
func (b *Base) ActivationFunction() Activation { return b.act }

// Next returns the layer's successor in the chain, or nil if it has none.
func (b *Base) Next() Layer { return b.next }

// Prev returns the layer's predecessor in the chain, or nil if it has none.
func (b *Base) Prev() Layer { return b.prev }

// Output is the implementation of Layer. The returned slice is the layer's
// own storage.
func (b *Base) Output() []float64 { return b.out.Values }

// Shape returns the Tensor responsible for storing the layer's output. The
// returned Tensor is NOT a copy.
func (b *Base) Shape() tensors.Tensor { return b.out }

// Delta is the implementation of Layer. The returned slice is the layer's
// own storage.
func (b *Base) Delta() []float64 { return b.delta }

// Delta2 returns the buffer holding the layer's last second-order delta, for
// variants to write into during BackPropagation2nd.
func (b *Base) Delta2() []float64 { return b.prevDelta2 }

func (b *Base) Weight() []float64 { return b.w }

func (b *Base) Bias() []float64 { return b.b }

// WeightHessian returns the accumulated diagonal Hessian terms for the
// layer's weights. The returned slice is the layer's own storage.
func (b *Base) WeightHessian() []float64 { return b.wHessian }

// BiasHessian returns the accumulated diagonal Hessian terms for the layer's
// biases. The returned slice is the layer's own storage.
func (b *Base) BiasHessian() []float64 { return b.bHessian }

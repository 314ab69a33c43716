package chainnet

// Layer is the interface implemented by every stage of a Chain. Concrete
// variants (fully-connected layers, the input layer, and so forth) embed
// *Base, which provides everything except the propagation methods and the
// two variant-defined size queries.
type Layer interface {
	// base returns the embedded *Base holding the layer's buffers and links.
	// Being unexported, it also restricts Layer implementations to types that
	// embed *Base.
	base() *Base

	// Connect wires the receiver to next, so that forward propagation flows
	// into next and backward propagation flows out of it. Connect returns
	// DimensionMismatchError if the receiver's output size is nonzero and
	// does not equal next's input size; in that case neither layer is
	// modified. Connections are permanent.
	Connect(next Layer) error

	// InitWeight overwrites the layer's weights and biases with values drawn
	// uniformly from [-w, w], where w = 0.5/sqrt(FanInSize()), and zeroes
	// both Hessian buffers. It may be called any number of times.
	InitWeight()

	// Reset restores the layer to a freshly initialized state. The default
	// behavior is exactly InitWeight; variants with extra state may do more,
	// but must re-initialize their parameters identically.
	Reset()

	// DivideHessian divides every element of the layer's Hessian buffers by
	// n, in place. It is used to turn curvature sums accumulated over n
	// samples into averages. n must not be zero; this is not checked.
	DivideHessian(n int)

	InSize() int
	OutSize() int

	// ParamSize returns the total number of learnable parameters, i.e.
	// len(Weight()) + len(Bias()).
	ParamSize() int

	// FanInSize returns the number of inputs feeding each output unit. It
	// scales the weight initialization range and is always positive.
	FanInSize() int

	// ConnectionSize returns the number of synaptic connections the layer
	// holds. It is reported for diagnostics and does not affect propagation.
	ConnectionSize() int

	// ActivationFunction returns the activation policy fixed at the layer's
	// construction.
	ActivationFunction() Activation

	// ForwardPropagation computes the layer's output from in (of length
	// InSize), then forwards the output through the successor if one exists,
	// returning the end of the recursion. The returned slice is the reusable
	// output buffer of the last layer reached; callers must not retain it
	// across the next propagation call.
	ForwardPropagation(in []float64) []float64

	// BackPropagation computes the predecessor's delta from delta (the
	// gradient of the cost w.r.t. this layer's pre-activation, of length
	// OutSize), invokes u on the layer's parameter vectors with their
	// gradients and Hessian buffers, and recurses into the predecessor. A
	// nil Updater leaves the parameters untouched.
	BackPropagation(delta []float64, u Updater) []float64

	// BackPropagation2nd propagates a second-order (diagonal curvature)
	// delta in the same direction as BackPropagation, accumulating into the
	// Hessian buffers as a side effect. Parameters are never modified. The
	// Hessian buffers must have been zeroed (via InitWeight) beforehand if a
	// fresh average is desired.
	BackPropagation2nd(delta2 []float64) []float64

	// Output returns the layer's reusable output buffer, holding the result
	// of the last forward pass.
	Output() []float64

	// Delta returns the layer's reusable delta buffer, holding the result of
	// the last backward pass.
	Delta() []float64

	Weight() []float64
	Bias() []float64
}

// Activation is the policy attached to a layer, exposing the function value
// and its first two derivatives. The derivatives are parameterized by the
// activation output F(x), not by x, so that propagation can reuse the stored
// outputs of the forward pass.
type Activation interface {
	F(x float64) float64

	// Deriv returns the first derivative, given the output value fx = F(x).
	Deriv(fx float64) float64

	// Deriv2 returns the second derivative, given the output value fx = F(x).
	Deriv2(fx float64) float64
}

// Updater adjusts a parameter vector in place, given the gradient of the
// cost w.r.t. those parameters and their diagonal Hessian estimate. It is
// invoked once per parameter vector (weights, then biases) per
// BackPropagation call on a layer with parameters.
//
// The Hessian slice holds whatever the layer's buffers currently hold; the
// documented protocol is that the driver calls Chain.DivideHessian before
// training so that Updaters see averaged values.
type Updater interface {
	Update(params, grad, hessian []float64)
}

// RNG produces the random values used for weight initialization. Fill
// overwrites dst with values drawn uniformly from the closed interval
// [lower, upper].
type RNG interface {
	Fill(dst []float64, lower, upper float64)
}

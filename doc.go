// Package chainnet provides the layer-propagation core of a small neural
// network engine: a polymorphic representation of a network as a
// singly-linked chain of layers, each capable of forward propagation,
// first-order backward propagation, and a second-order backward pass that
// accumulates a diagonal Hessian estimate.
//
// Building Chains
//
// The center of the package is the Chain, initialized by:
//
//		ch := cn.New()
//
// For brevity, chainnet is abbreviated 'cn'.
//
// A Chain always starts with a transparent input layer at its head, owned by
// the Chain itself. All other layers are added by the caller, who retains
// ownership and must keep them alive for the Chain's lifetime:
//
//		l1 := layers.NewFullyConnected(activations.Tanh(), 3, 2)
//		l2 := layers.NewFullyConnected(activations.Identity(), 2, 1)
//		if err := ch.Add(l1); err != nil {
//			return err
//		}
//		if err := ch.Add(l2); err != nil {
//			return err
//		}
//		ch.Reset()
//
// Add connects each new layer to the previous tail, and is the only operation
// in the package that can fail: a layer whose input size disagrees with the
// current tail's output size produces a DimensionMismatchError. Once a
// connection is made it is permanent; there is no disconnect.
//
// Propagation
//
// Propagation is chain-recursive. A forward pass is started by handing an
// input vector to the head; each layer transforms it and forwards the result
// to its successor:
//
//		out := ch.Head().ForwardPropagation(input)
//
// A first-order backward pass is started at the tail with the gradient of the
// cost w.r.t. the tail's pre-activation. Each layer computes its
// predecessor's delta and, as a side effect, hands its own parameter
// gradients to the supplied Updater:
//
//		ch.Tail().BackPropagation(delta, updaters.GradientDescent())
//
// The second-order pass mirrors the first-order one but updates no
// parameters; it accumulates a diagonal curvature estimate into each layer's
// Hessian buffers. After accumulating over n samples, ch.DivideHessian(n)
// turns the sums into averages, which second-order-aware Updaters (such as
// updaters.LevenbergMarquardt) use as per-parameter learning rate scales.
//
// Concrete layer variants can be found in the subpackage "layers", activation
// functions in "activations", and Updaters in "updaters".
//
// All propagation calls are synchronous and single-threaded; concurrent use
// of one Chain is out of contract.
package chainnet

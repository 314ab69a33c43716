package chainnet

import (
	"github.com/pkg/errors"
)

// Chain is the ordered sequence of layers making up a network. It is a
// bookkeeping container: propagation itself flows layer to layer, but the
// Chain drives the whole-network operations (Reset, DivideHessian) by
// walking its ordered collection of layers head to tail.
//
// A Chain owns exactly one layer, the input layer created by New. Every
// other layer is borrowed from the caller of Add and must outlive the Chain.
type Chain struct {
	// the arena of layers, in chain order; nodes[0] is the owned input layer
	nodes []Layer
}

// New returns a Chain containing only its input layer, which is both head
// and tail until the first Add.
func New() *Chain {
	c := new(Chain)
	c.nodes = append(c.nodes, NewInput())
	return c
}

// Add appends l after the current tail, connecting the two, and makes it the
// new tail. The first Add after New connects the input layer to l. If the
// connection fails its DimensionMismatchError is returned (wrapped) and the
// Chain is unchanged. Add panics with type NilArgError if l is nil.
func (c *Chain) Add(l Layer) error {
	if l == nil {
		panic(NilArgError{"Layer"})
	}

	if tail := c.Tail(); tail != nil {
		if err := tail.Connect(l); err != nil {
			return errors.Wrapf(err, "can't add layer after chain tail")
		}
	}

	c.nodes = append(c.nodes, l)
	return nil
}

// Empty returns whether the Chain has no layers at all. Because New installs
// the input layer, Empty is false for every Chain obtained from New.
func (c *Chain) Empty() bool { return len(c.nodes) == 0 }

// Head returns the first layer of the Chain, or nil if the Chain is empty.
func (c *Chain) Head() Layer {
	if c.Empty() {
		return nil
	}

	return c.nodes[0]
}

// Tail returns the last layer of the Chain, or nil if the Chain is empty.
func (c *Chain) Tail() Layer {
	if c.Empty() {
		return nil
	}

	return c.nodes[len(c.nodes)-1]
}

// Reset calls Reset on every layer, head to tail, re-initializing the whole
// network's parameters in one call.
func (c *Chain) Reset() {
	for _, l := range c.nodes {
		l.Reset()
	}
}

// DivideHessian calls DivideHessian(n) on every layer, head to tail. It is
// used after accumulating curvature over n samples to produce the averaged
// diagonal Hessian that second-order-aware Updaters consume.
func (c *Chain) DivideHessian(n int) {
	for _, l := range c.nodes {
		l.DivideHessian(n)
	}
}

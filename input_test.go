package chainnet_test

import (
	"testing"

	cn "github.com/sharnoff/chainnet"
	"github.com/sharnoff/chainnet/activations"
	"github.com/sharnoff/chainnet/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingUpdater records every Update call it receives.
type countingUpdater struct {
	calls int
}

func (u *countingUpdater) Update(params, grad, hessian []float64) {
	u.calls++
}

func TestInputForwardStandalone(t *testing.T) {
	in := cn.NewInput()

	v := []float64{1.5, -2, 0.25}
	out := in.ForwardPropagation(v)
	assert.Equal(t, v, out)

	// the returned slice is the layer's own buffer, not the input
	v[0] = 99
	assert.Equal(t, 1.5, out[0])

	// a standalone input layer stays size-agnostic
	out = in.ForwardPropagation([]float64{7})
	assert.Equal(t, []float64{7}, out)
}

func TestInputBackwardIsIdentity(t *testing.T) {
	in := cn.NewInput()
	u := new(countingUpdater)

	d := []float64{0.5, -0.5}
	got := in.BackPropagation(d, u)

	assert.Equal(t, d, got)
	assert.Zero(t, u.calls)

	d2 := []float64{1, 2}
	assert.Equal(t, d2, in.BackPropagation2nd(d2))
}

func TestInputAdoptsSuccessorSize(t *testing.T) {
	in := cn.NewInput()
	fc := layers.NewFullyConnected(activations.Tanh(), 3, 2)

	require.NoError(t, in.Connect(fc))

	assert.Equal(t, 3, in.InSize())
	assert.Equal(t, 3, in.OutSize())
	assert.Equal(t, 1, in.FanInSize())
	assert.Equal(t, 3, in.ConnectionSize())
	assert.Zero(t, in.ParamSize())
}

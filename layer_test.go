package chainnet_test

import (
	"testing"

	cn "github.com/sharnoff/chainnet"
	"github.com/sharnoff/chainnet/activations"
	"github.com/sharnoff/chainnet/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// layer variants satisfy Layer through the promoted methods of their
// embedded *Base
var (
	_ cn.Layer = cn.NewInput()
	_ cn.Layer = layers.NewFullyConnected(activations.Identity(), 1, 1)
)

// constantRNG fills every slice with the interval's upper bound, making
// InitWeight deterministic.
type constantRNG int8

func (r constantRNG) Fill(dst []float64, lower, upper float64) {
	for i := range dst {
		dst[i] = upper
	}
}

func TestConnectLinksBothLayers(t *testing.T) {
	l1 := layers.NewFullyConnected(activations.Tanh(), 3, 2)
	l2 := layers.NewFullyConnected(activations.Identity(), 2, 1)

	require.NoError(t, l1.Connect(l2))

	assert.Same(t, l2, l1.Next())
	assert.Same(t, l1, l2.Prev())
}

func TestConnectMismatchLeavesLayersUntouched(t *testing.T) {
	l1 := layers.NewFullyConnected(activations.Tanh(), 3, 2)
	l2 := layers.NewFullyConnected(activations.Identity(), 2, 1)

	err := l2.Connect(l1)
	require.Error(t, err)

	var dm cn.DimensionMismatchError
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 1, dm.OutSize)
	assert.Equal(t, 3, dm.InSize)

	assert.Nil(t, l2.Next())
	assert.Nil(t, l1.Prev())
}

func TestInitWeightRangeAndHessianZero(t *testing.T) {
	fc := layers.NewFullyConnected(activations.Tanh(), 4, 3)
	fc.InitWeight()

	bound := 0.5 / 2 // 0.5/sqrt(fan-in), fan-in = 4
	for i, w := range fc.Weight() {
		assert.GreaterOrEqual(t, w, -bound, "weight %d", i)
		assert.LessOrEqual(t, w, bound, "weight %d", i)
	}
	for i, b := range fc.Bias() {
		assert.GreaterOrEqual(t, b, -bound, "bias %d", i)
		assert.LessOrEqual(t, b, bound, "bias %d", i)
	}

	// InitWeight zeroes the Hessian buffers, so dividing by one sample must
	// leave them all-zero.
	fc.DivideHessian(1)
	for _, h := range fc.WeightHessian() {
		assert.Zero(t, h)
	}
	for _, h := range fc.BiasHessian() {
		assert.Zero(t, h)
	}
}

func TestInitWeightOverwritesFully(t *testing.T) {
	fc := layers.NewFullyConnected(activations.Tanh(), 4, 2)
	fc.SetRNG(constantRNG(0))

	fc.InitWeight()
	first := make([]float64, len(fc.Weight()))
	copy(first, fc.Weight())

	fc.Weight()[0] = 100
	fc.InitWeight()

	assert.Equal(t, first, fc.Weight())
	for _, w := range fc.Weight() {
		assert.Equal(t, 0.25, w)
	}
}

func TestSizeQueries(t *testing.T) {
	fc := layers.NewFullyConnected(activations.Logistic(), 3, 2)

	assert.Equal(t, 3, fc.InSize())
	assert.Equal(t, 2, fc.OutSize())
	assert.Equal(t, 8, fc.ParamSize())
	assert.Equal(t, 3, fc.FanInSize())
	assert.Equal(t, 8, fc.ConnectionSize())
	assert.Len(t, fc.Weight(), 6)
	assert.Len(t, fc.Bias(), 2)

	shape := fc.Shape()
	assert.Equal(t, []int{2}, shape.Dims)
	assert.Len(t, shape.Values, 2)
}

func TestDivideHessianAverages(t *testing.T) {
	fc := layers.NewFullyConnected(activations.Identity(), 2, 1)

	wh := fc.WeightHessian()
	wh[0], wh[1] = 3, 9
	fc.BiasHessian()[0] = 6

	fc.DivideHessian(3)

	assert.Equal(t, 1.0, wh[0])
	assert.Equal(t, 3.0, wh[1])
	assert.Equal(t, 2.0, fc.BiasHessian()[0])
}

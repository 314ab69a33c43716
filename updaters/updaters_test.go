package updaters_test

import (
	"testing"

	cn "github.com/sharnoff/chainnet"
	"github.com/sharnoff/chainnet/updaters"
	"github.com/stretchr/testify/assert"
)

var (
	_ cn.Updater = updaters.GradientDescent()
	_ cn.Updater = updaters.LevenbergMarquardt()
)

func TestGradientDescentStep(t *testing.T) {
	params := []float64{1, 2}
	grad := []float64{0.5, -1}

	updaters.GradientDescent().Rate(0.1).Update(params, grad, nil)

	assert.InDelta(t, 0.95, params[0], 1e-12)
	assert.InDelta(t, 2.1, params[1], 1e-12)
}

func TestGradientDescentDefaultRate(t *testing.T) {
	params := []float64{1}

	updaters.GradientDescent().Update(params, []float64{1}, nil)

	assert.InDelta(t, 0.99, params[0], 1e-12)
}

func TestLevenbergMarquardtScalesByCurvature(t *testing.T) {
	params := []float64{1, 1}
	grad := []float64{1, 1}
	hessian := []float64{0.08, 0.98}

	updaters.LevenbergMarquardt().Rate(0.1).Mu(0.02).Update(params, grad, hessian)

	// step = rate * grad / (h + mu)
	assert.InDelta(t, 0.0, params[0], 1e-12)
	assert.InDelta(t, 0.9, params[1], 1e-12)
}

func TestLevenbergMarquardtZeroCurvature(t *testing.T) {
	params := []float64{1}

	// mu alone bounds the step where the Hessian term is zero
	updaters.LevenbergMarquardt().Rate(0.01).Mu(0.02).Update(params, []float64{1}, []float64{0})

	assert.InDelta(t, 0.5, params[0], 1e-12)
}

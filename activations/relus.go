package activations

type relu int8

// ReLU returns the rectified linear Activation, max(0, x). Its second
// derivative is zero everywhere it is defined, which makes second-order
// passes through ReLU layers rely entirely on the Gauss-Newton term.
func ReLU() relu {
	return relu(0)
}

func (t relu) F(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

func (t relu) Deriv(fx float64) float64 {
	if fx > 0 {
		return 1
	}
	return 0
}

func (t relu) Deriv2(fx float64) float64 { return 0 }

type leakyReLU struct {
	a float64
}

// LeakyReLU returns a rectified linear Activation with slope a for negative
// inputs. a should be small and positive; 0.01 is typical.
func LeakyReLU(a float64) leakyReLU {
	return leakyReLU{a}
}

func (t leakyReLU) F(x float64) float64 {
	if x > 0 {
		return x
	}
	return t.a * x
}

func (t leakyReLU) Deriv(fx float64) float64 {
	if fx > 0 {
		return 1
	}
	return t.a
}

func (t leakyReLU) Deriv2(fx float64) float64 { return 0 }

package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sigmoid is the logistic squashing function 1/(1+e^(−z)).
func Sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// SigmoidDerivative returns σ'(z) expressed through the activation a = σ(z).
func SigmoidDerivative(a float64) float64 {
	return a * (1 - a)
}

// SquaredError returns Σ (target[i] − output[i])².
func SquaredError(target, output []float64) (float64, error) {
	if len(target) != len(output) {
		return 0, ErrDimensionMismatch
	}
	if len(target) == 0 {
		return 0, nil
	}
	d := floats.Distance(target, output, 2)

	return d * d, nil
}

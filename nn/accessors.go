package nn

import "fmt"

// LearningRate returns the current learning rate.
func (n *Network) LearningRate() float64 { return n.learningRate }

// SetLearningRate replaces the learning rate; it must be finite and > 0.
// The value is stored as given, never rescaled.
func (n *Network) SetLearningRate(lr float64) error {
	if err := validateLearningRate(lr); err != nil {
		return err
	}
	n.learningRate = lr

	return nil
}

// Momentum returns the current momentum coefficient.
func (n *Network) Momentum() float64 { return n.momentumCoef }

// SetMomentum replaces the momentum coefficient; it must lie in [0,1].
func (n *Network) SetMomentum(m float64) error {
	if err := validateMomentum(m); err != nil {
		return err
	}
	n.momentumCoef = m

	return nil
}

// Layers returns the number of layers, input and output included.
func (n *Network) Layers() int { return len(n.sizes) }

// LayerSizes returns a copy of the layer sizes given to New.
func (n *Network) LayerSizes() []int { return append([]int(nil), n.sizes...) }

// Activations returns a copy of the activations cached for layer l by the
// most recent Forward (zeros before the first one).
func (n *Network) Activations(l int) ([]float64, error) {
	if l < 0 || l >= len(n.sizes) {
		return nil, fmt.Errorf("%w: layer %d of %d", ErrDimensionMismatch, l, len(n.sizes))
	}

	return append([]float64(nil), n.activations[l]...), nil
}

// Weight returns the weight from neuron `from` of layer l to neuron `to` of layer l+1.
func (n *Network) Weight(l, from, to int) (float64, error) {
	if err := n.checkEdge(l, from, to); err != nil {
		return 0, err
	}

	return n.weights[l].At(from, to)
}

// SetWeight overwrites a single connection weight. Momentum is left untouched.
func (n *Network) SetWeight(l, from, to int, v float64) error {
	if err := n.checkEdge(l, from, to); err != nil {
		return err
	}

	return n.weights[l].Set(from, to, v)
}

// Bias returns the bias weight feeding neuron `to` of layer l+1.
func (n *Network) Bias(l, to int) (float64, error) {
	if err := n.checkEdge(l, 0, to); err != nil {
		return 0, err
	}

	return n.weights[l].At(n.sizes[l], to)
}

// SetBias overwrites the bias weight feeding neuron `to` of layer l+1.
func (n *Network) SetBias(l, to int, v float64) error {
	if err := n.checkEdge(l, 0, to); err != nil {
		return err
	}

	return n.weights[l].Set(n.sizes[l], to, v)
}

// checkEdge validates a (boundary, from, to) triple against the layer sizes.
func (n *Network) checkEdge(l, from, to int) error {
	if l < 0 || l >= len(n.weights) {
		return fmt.Errorf("%w: boundary %d of %d", ErrDimensionMismatch, l, len(n.weights))
	}
	if from < 0 || from >= n.sizes[l] || to < 0 || to >= n.sizes[l+1] {
		return fmt.Errorf("%w: edge (%d→%d) at boundary %d", ErrDimensionMismatch, from, to, l)
	}

	return nil
}

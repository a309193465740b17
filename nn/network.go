// Package nn - Network construction, forward inference and backpropagation.
//
// Indexing convention (per boundary l = 0..L−2, cols = size[l+1]):
//
//	weight(l, from, to) = weights[l].data[from*cols + to],  from ∈ [0..size[l]-1]
//	bias(l, to)         = weights[l].data[size[l]*cols + to]
//
// Backward recurrence (standard backpropagation with momentum):
//
//	δ_out[j] = a[j]·(1−a[j])·(t[j]−a[j])
//	δ_l[j]   = a_l[j]·(1−a_l[j])·Σ_i δ_{l+1}[i]·w[l][j][i]   (pre-update weights)
//	Δw       = μ·Δw_prev + η·δ_{l+1}[i]·a_l[j]
//	Δbias    = μ·Δbias_prev + η·δ_{l+1}[i]
package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlearn/matrix"
)

// Network is a fully connected feed-forward network with logistic units.
type Network struct {
	sizes []int // layer sizes, len ≥ 2

	activations [][]float64 // activations[l] has len sizes[l]; [0] is the last sample
	deltas      [][]float64 // error terms; deltas[0] is never computed

	weights  []*matrix.Dense // len(sizes)-1 boundaries; (sizes[l]+1)×sizes[l+1]
	momentum []*matrix.Dense // previous updates, same shapes as weights

	learningRate float64
	momentumCoef float64

	primed bool // a Forward pass has filled activations
}

// New builds a network for the given layer sizes.
//
// Steps:
//  1. Resolve options and validate sizes and rates (no allocation before this).
//  2. Allocate activation/error vectors per layer.
//  3. Allocate one weight matrix (with bias row) and one zeroed momentum matrix
//     per boundary; draw initial weights from the network-owned generator.
//
// Errors: ErrConfiguration (wrapped with detail).
//
// Complexity: O(Σ size[l]·size[l+1]) time and space.
func New(layerSizes []int, opts ...Option) (*Network, error) {
	o := gatherOptions(opts...)

	if len(layerSizes) < minLayers {
		return nil, fmt.Errorf("%w: need at least %d layers, got %d", ErrConfiguration, minLayers, len(layerSizes))
	}
	var l int
	for l = 0; l < len(layerSizes); l++ {
		if layerSizes[l] <= 0 {
			return nil, fmt.Errorf("%w: layer %d has size %d", ErrConfiguration, l, layerSizes[l])
		}
	}
	if err := validateLearningRate(o.learningRate); err != nil {
		return nil, err
	}
	if err := validateMomentum(o.momentum); err != nil {
		return nil, err
	}

	net := &Network{
		sizes:        append([]int(nil), layerSizes...),
		activations:  make([][]float64, len(layerSizes)),
		deltas:       make([][]float64, len(layerSizes)),
		weights:      make([]*matrix.Dense, len(layerSizes)-1),
		momentum:     make([]*matrix.Dense, len(layerSizes)-1),
		learningRate: o.learningRate,
		momentumCoef: o.momentum,
	}
	for l = 0; l < len(layerSizes); l++ {
		net.activations[l] = make([]float64, layerSizes[l])
		net.deltas[l] = make([]float64, layerSizes[l])
	}

	var (
		err  error
		i    int
		data []float64
	)
	for l = 0; l < len(net.weights); l++ {
		net.weights[l], err = matrix.NewDense(layerSizes[l]+1, layerSizes[l+1])
		if err != nil {
			return nil, fmt.Errorf("nn: weights %d: %w", l, err)
		}
		net.momentum[l], err = matrix.NewDense(layerSizes[l]+1, layerSizes[l+1])
		if err != nil {
			return nil, fmt.Errorf("nn: momentum %d: %w", l, err)
		}
		data = net.weights[l].RawData()
		for i = range data {
			data[i] = o.weightInit(o.rng)
		}
	}

	return net, nil
}

// Forward propagates sample through the network, caching every layer's
// activations for a following Backward, and returns a copy of the output layer.
//
// Errors: ErrDimensionMismatch if len(sample) != input layer size.
//
// Complexity: O(Σ size[l]·size[l+1]).
func (n *Network) Forward(sample []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(sample, n.sizes[0]); err != nil {
		return nil, fmt.Errorf("%w: sample has %d values, input layer has %d: %v",
			ErrDimensionMismatch, len(sample), n.sizes[0], err)
	}
	copy(n.activations[0], sample)

	var (
		l, i, j int
		cols    int
		z       float64
		w       []float64
		prev    []float64
		cur     []float64
		biasOff int
	)
	for l = 1; l < len(n.sizes); l++ {
		w = n.weights[l-1].RawData()
		cols = n.sizes[l]
		prev = n.activations[l-1]
		cur = n.activations[l]
		biasOff = n.sizes[l-1] * cols
		for j = 0; j < cols; j++ {
			z = w[biasOff+j]
			for i = 0; i < len(prev); i++ {
				z += w[i*cols+j] * prev[i]
			}
			cur[j] = Sigmoid(z)
		}
	}
	n.primed = true

	return append([]float64(nil), n.activations[len(n.sizes)-1]...), nil
}

// Backward applies one backpropagation-with-momentum update towards target,
// using the activations cached by the most recent Forward.
//
// Validation happens before any mutation: a failed call leaves weights,
// momentum and cached activations untouched.
//
// Errors: ErrDimensionMismatch, ErrNoForwardPass.
//
// Complexity: O(Σ size[l]·size[l+1]).
func (n *Network) Backward(target []float64) error {
	last := len(n.sizes) - 1
	if err := matrix.ValidateVecLen(target, n.sizes[last]); err != nil {
		return fmt.Errorf("%w: target has %d values, output layer has %d: %v",
			ErrDimensionMismatch, len(target), n.sizes[last], err)
	}
	if !n.primed {
		return ErrNoForwardPass
	}

	var (
		j, i  int
		a     float64
		out   = n.activations[last]
		delta = n.deltas[last]
	)
	for j = 0; j < len(out); j++ {
		a = out[j]
		delta[j] = SigmoidDerivative(a) * (target[j] - a)
	}

	var (
		l       int
		cols    int
		w, dw   []float64
		next    []float64
		acts    []float64
		row     []float64
		step    float64
		idx     int
		biasOff int
	)
	for l = last - 1; l >= 0; l-- {
		w = n.weights[l].RawData()
		dw = n.momentum[l].RawData()
		cols = n.sizes[l+1]
		next = n.deltas[l+1]
		acts = n.activations[l]

		// Propagate first so δ_l sees the weights the forward pass used.
		if l > 0 {
			for j = 0; j < len(acts); j++ {
				row = w[j*cols : (j+1)*cols]
				n.deltas[l][j] = SigmoidDerivative(acts[j]) * floats.Dot(next, row)
			}
		}

		for j = 0; j < len(acts); j++ {
			for i = 0; i < cols; i++ {
				idx = j*cols + i
				step = n.momentumCoef*dw[idx] + n.learningRate*next[i]*acts[j]
				w[idx] += step
				dw[idx] = step
			}
		}

		// Bias row: a virtual input fixed at 1.
		biasOff = len(acts) * cols
		for i = 0; i < cols; i++ {
			idx = biasOff + i
			step = n.momentumCoef*dw[idx] + n.learningRate*next[i]
			w[idx] += step
			dw[idx] = step
		}
	}

	return nil
}

// TrainStep runs Forward(sample) then Backward(target) and returns the squared
// error Σ(t−o)² of the forward pass (i.e. before the update).
// Both vectors are validated before anything is mutated.
func (n *Network) TrainStep(sample, target []float64) (float64, error) {
	last := len(n.sizes) - 1
	if err := matrix.ValidateVecLen(target, n.sizes[last]); err != nil {
		return 0, fmt.Errorf("%w: target has %d values, output layer has %d: %v",
			ErrDimensionMismatch, len(target), n.sizes[last], err)
	}
	out, err := n.Forward(sample)
	if err != nil {
		return 0, err
	}
	loss, err := SquaredError(target, out)
	if err != nil {
		return 0, err
	}
	if err = n.Backward(target); err != nil {
		return 0, err
	}

	return loss, nil
}

// Clone returns an independent deep copy: weights, momentum, rates and cached
// activations. Use it to give each goroutine its own network.
func (n *Network) Clone() *Network {
	cp := &Network{
		sizes:        append([]int(nil), n.sizes...),
		activations:  make([][]float64, len(n.activations)),
		deltas:       make([][]float64, len(n.deltas)),
		weights:      make([]*matrix.Dense, len(n.weights)),
		momentum:     make([]*matrix.Dense, len(n.momentum)),
		learningRate: n.learningRate,
		momentumCoef: n.momentumCoef,
		primed:       n.primed,
	}
	var l int
	for l = range n.activations {
		cp.activations[l] = append([]float64(nil), n.activations[l]...)
		cp.deltas[l] = append([]float64(nil), n.deltas[l]...)
	}
	for l = range n.weights {
		cp.weights[l] = n.weights[l].Clone().(*matrix.Dense)
		cp.momentum[l] = n.momentum[l].Clone().(*matrix.Dense)
	}

	return cp
}

// validateLearningRate enforces a finite, strictly positive learning rate.
func validateLearningRate(lr float64) error {
	if math.IsNaN(lr) || math.IsInf(lr, 0) || lr <= 0 {
		return fmt.Errorf("%w: learning rate %v must be finite and > 0", ErrConfiguration, lr)
	}

	return nil
}

// validateMomentum enforces a momentum coefficient in [0,1].
func validateMomentum(m float64) error {
	if math.IsNaN(m) || m < 0 || m > 1 {
		return fmt.Errorf("%w: momentum %v must lie in [0,1]", ErrConfiguration, m)
	}

	return nil
}

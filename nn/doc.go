// Package nn provides a fully connected feed-forward neural network trained by
// backpropagation with momentum.
//
// A Network is described by its layer sizes, e.g. []int{2, 3, 1}: two inputs,
// one hidden layer of three neurons and a single output. Every layer after the
// input applies the logistic function 1/(1+e^(−z)).
//
//   - Forward  — propagates a sample and caches every layer's activations.
//   - Backward — consumes the cached activations and applies one
//     gradient-descent-with-momentum update for a target vector.
//   - TrainStep — Forward followed by Backward on the same pair.
//
// Storage:
//
//	For each boundary l→l+1 the weights live in one matrix.Dense of shape
//	(size[l]+1)×size[l+1]; row size[l] holds the bias weights. Momentum buffers
//	share that shape and start at zero. Shapes never change after New.
//
// Randomness:
//
//	Initial weights are drawn from a generator owned by the network (WithSeed
//	or WithRand); no process-wide source is touched. Same seed ⇒ same network.
//
// Concurrency:
//
//	A Network is NOT safe for concurrent train steps: Backward reads the
//	activations cached by the preceding Forward. Use Clone to give each
//	goroutine its own instance.
//
// Numerical stability is the caller's concern: an excessive learning rate can
// drive weights to ±Inf/NaN and nothing here clips gradients.
package nn

package nn_test

import (
	"testing"

	"github.com/katalvlaran/lvlearn/nn"
)

func BenchmarkTrainStep_64x32x10(b *testing.B) {
	net, err := nn.New([]int{64, 32, 10}, nn.WithSeed(1), nn.WithLearningRate(0.05))
	if err != nil {
		b.Fatal(err)
	}
	sample := make([]float64, 64)
	for i := range sample {
		sample[i] = float64(i%7) / 7
	}
	target := make([]float64, 10)
	target[3] = 1

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = net.TrainStep(sample, target); err != nil {
			b.Fatal(err)
		}
	}
}

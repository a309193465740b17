package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/builder"
)

// ExampleEuclidean builds the distance table of a 3-4-5 triangle.
func ExampleEuclidean() {
	m, err := builder.Euclidean([]builder.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	n, raw := m.Rows(), m.RawData()
	for i := 0; i < n; i++ {
		fmt.Println(raw[i*n : (i+1)*n])
	}
	// Output:
	// [0 3 5]
	// [3 0 4]
	// [5 4 0]
}

// ExampleTruthTable lists the XOR samples.
func ExampleTruthTable() {
	ds, _ := builder.TruthTable(builder.GateXOR)
	for i := range ds.Inputs {
		fmt.Println(ds.Inputs[i], "->", ds.Targets[i][0])
	}
	// Output:
	// [0 0] -> 0
	// [0 1] -> 1
	// [1 0] -> 1
	// [1 1] -> 0
}

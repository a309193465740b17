// SPDX-License-Identifier: MIT
// Package: lvlearn/builder
//
// dataset.go — boolean datasets for feed-forward training.
//
// Inputs enumerate every combination of bits in binary counting order, most
// significant bit first: 00, 01, 10, 11, …. Targets hold one value in {0,1}.

package builder

import "fmt"

const (
	methodTruthTable = "TruthTable"
	methodParity     = "Parity"
	minParityBits    = 1
	maxParityBits    = 16
)

// Gate selects a two-input boolean function.
type Gate int

// Supported gates.
const (
	GateAND Gate = iota
	GateOR
	GateXOR
	GateNAND
)

// String returns the gate name.
func (g Gate) String() string {
	switch g {
	case GateAND:
		return "AND"
	case GateOR:
		return "OR"
	case GateXOR:
		return "XOR"
	case GateNAND:
		return "NAND"
	default:
		return fmt.Sprintf("Gate(%d)", int(g))
	}
}

// eval applies g to two bits.
func (g Gate) eval(a, b bool) (bool, error) {
	switch g {
	case GateAND:
		return a && b, nil
	case GateOR:
		return a || b, nil
	case GateXOR:
		return a != b, nil
	case GateNAND:
		return !(a && b), nil
	default:
		return false, ErrUnknownGate
	}
}

// Dataset pairs network inputs with their targets; Inputs[i] maps to Targets[i].
type Dataset struct {
	Inputs  [][]float64
	Targets [][]float64
}

// Len returns the number of samples.
func (d Dataset) Len() int { return len(d.Inputs) }

// TruthTable returns the four samples of a two-input gate.
func TruthTable(g Gate) (Dataset, error) {
	ds := Dataset{
		Inputs:  make([][]float64, 0, 4),
		Targets: make([][]float64, 0, 4),
	}
	var (
		row  int
		a, b bool
		out  bool
		err  error
	)
	for row = 0; row < 4; row++ {
		a, b = row&2 != 0, row&1 != 0
		if out, err = g.eval(a, b); err != nil {
			return Dataset{}, fmt.Errorf("%s: %v: %w", methodTruthTable, g, err)
		}
		ds.Inputs = append(ds.Inputs, []float64{bit(a), bit(b)})
		ds.Targets = append(ds.Targets, []float64{bit(out)})
	}

	return ds, nil
}

// Parity returns all 2^bits samples of the odd-parity function: the target is
// 1 when an odd number of inputs are set.
func Parity(bits int) (Dataset, error) {
	if bits < minParityBits {
		return Dataset{}, fmt.Errorf("%s: bits=%d < min=%d: %w", methodParity, bits, minParityBits, ErrTooFewPoints)
	}
	if bits > maxParityBits {
		return Dataset{}, fmt.Errorf("%s: bits=%d > max=%d: %w", methodParity, bits, maxParityBits, ErrTooLarge)
	}

	var (
		rows = 1 << bits
		ds   = Dataset{Inputs: make([][]float64, rows), Targets: make([][]float64, rows)}
		r, k int
		ones int
		in   []float64
	)
	for r = 0; r < rows; r++ {
		in = make([]float64, bits)
		ones = 0
		for k = 0; k < bits; k++ {
			if r&(1<<(bits-1-k)) != 0 {
				in[k] = 1
				ones++
			}
		}
		ds.Inputs[r] = in
		ds.Targets[r] = []float64{float64(ones % 2)}
	}

	return ds, nil
}

// bit maps false/true to 0/1.
func bit(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

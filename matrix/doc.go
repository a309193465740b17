// Package matrix provides the dense numeric storage shared by the learning engines.
//
// The matrix package provides:
//
//   - Matrix, a minimal bounds-checked interface (Rows, Cols, At, Set, Clone)
//     used by callers to hand distance tables and weights into the engines.
//   - Dense, a row-major implementation over a single flat []float64 buffer,
//     with no-copy access for hot loops (RawData, Scale).
//   - Validators (ValidateNotNil, ValidateSquare, ValidateVecLen,
//     ValidateFinite) returning package sentinels.
//
// Shapes never change after construction; every buffer is sized once.
// Public accessors never panic on bad indices, they return ErrOutOfRange.
package matrix

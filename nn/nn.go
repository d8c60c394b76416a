// Package nn provides the forward pass of a fully connected neural network
// layer and the activations it is used with.
package nn

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-highway/hwy/contrib"
	"github.com/ajroetker/go-highway/hwy/contrib/matmul"
)

// ErrShape is returned when operands are empty or their dimensions do not
// line up.
var ErrShape = errors.New("nn: invalid matrix shape")

// Matrix is a dense row-major float64 matrix.
type Matrix struct {
	Rows, Cols int
	Data       []float64
}

// NewMatrix allocates a zeroed rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// FromRows builds a matrix from equal-length rows.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrShape)
	}
	m := NewMatrix(len(rows), len(rows[0]))
	for i, r := range rows {
		if len(r) != m.Cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, i, len(r), m.Cols)
		}
		copy(m.Data[i*m.Cols:], r)
	}
	return m, nil
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 { return m.Data[i*m.Cols+j] }

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) { m.Data[i*m.Cols+j] = v }

func (m *Matrix) empty() bool {
	return m == nil || m.Rows <= 0 || m.Cols <= 0 || len(m.Data) < m.Rows*m.Cols
}

// Activation transforms every element of a matrix in place.
type Activation func(inout *Matrix)

// Sigmoid applies 1 / (1 + exp(-x)) element-wise.
func Sigmoid(inout *Matrix) {
	contrib.SigmoidTransform64(inout.Data, inout.Data)
}

// SigmoidDerivative replaces every element x, assumed to already be a
// sigmoid output, with (1 - x) * x.
func SigmoidDerivative(inout *Matrix) {
	for i, x := range inout.Data {
		inout.Data[i] = (1 - x) * x
	}
}

// ForwardPropagation computes act(weight * input + bias) for one layer.
//
// input is K x N (one sample per column), weight is M x K and bias is M x 1;
// bias is added to every column. The result is M x N. A nil act means
// Sigmoid.
func ForwardPropagation(input, weight, bias *Matrix, act Activation) (*Matrix, error) {
	if input.empty() || weight.empty() || bias.empty() {
		return nil, fmt.Errorf("%w: empty operand", ErrShape)
	}
	if weight.Cols != input.Rows {
		return nil, fmt.Errorf("%w: weight is %dx%d, input is %dx%d",
			ErrShape, weight.Rows, weight.Cols, input.Rows, input.Cols)
	}
	if bias.Rows != weight.Rows || bias.Cols != 1 {
		return nil, fmt.Errorf("%w: bias is %dx%d, want %dx1",
			ErrShape, bias.Rows, bias.Cols, weight.Rows)
	}
	if act == nil {
		act = Sigmoid
	}

	m, k, n := weight.Rows, weight.Cols, input.Cols
	out := NewMatrix(m, n)
	matmul.MatMul(weight.Data, input.Data, out.Data, m, n, k)

	for i := range m {
		b := bias.Data[i]
		row := out.Data[i*n : (i+1)*n]
		for j := range row {
			row[j] += b
		}
	}
	act(out)
	return out, nil
}

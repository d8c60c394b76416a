package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func TestForwardPropagation(t *testing.T) {
	input, err := FromRows([][]float64{
		{1, 0},
		{2, -1},
		{0, 3},
	})
	require.NoError(t, err)
	weight, err := FromRows([][]float64{
		{0.5, -0.25, 1},
		{1, 1, 1},
	})
	require.NoError(t, err)
	bias, err := FromRows([][]float64{{0.1}, {-2}})
	require.NoError(t, err)

	identity := func(*Matrix) {}
	out, err := ForwardPropagation(input, weight, bias, identity)
	require.NoError(t, err)
	require.Equal(t, 2, out.Rows)
	require.Equal(t, 2, out.Cols)

	want := [][]float64{
		{0.5 - 0.5 + 0.1, 0.25 + 3 + 0.1},
		{3 - 2, 2 - 2},
	}
	for i := range want {
		for j := range want[i] {
			assert.InDelta(t, want[i][j], out.At(i, j), 1e-9, "(%d,%d)", i, j)
		}
	}

	out, err = ForwardPropagation(input, weight, bias, nil)
	require.NoError(t, err)
	for i := range want {
		for j := range want[i] {
			assert.InDelta(t, sigmoid(want[i][j]), out.At(i, j), 1e-6, "(%d,%d)", i, j)
		}
	}
}

func TestForwardPropagation_ShapeErrors(t *testing.T) {
	in := NewMatrix(3, 2)
	w := NewMatrix(4, 3)
	b := NewMatrix(4, 1)

	tests := []struct {
		name             string
		input, weight, b *Matrix
	}{
		{"nil input", nil, w, b},
		{"empty weight", in, &Matrix{}, b},
		{"inner mismatch", NewMatrix(2, 2), w, b},
		{"bias rows", in, w, NewMatrix(3, 1)},
		{"bias cols", in, w, NewMatrix(4, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ForwardPropagation(tt.input, tt.weight, tt.b, nil)
			assert.ErrorIs(t, err, ErrShape)
		})
	}
}

func TestSigmoid(t *testing.T) {
	m := &Matrix{Rows: 1, Cols: 5, Data: []float64{-10, -1, 0, 1, 10}}
	want := make([]float64, len(m.Data))
	for i, x := range m.Data {
		want[i] = sigmoid(x)
	}

	Sigmoid(m)
	assert.InDeltaSlice(t, want, m.Data, 1e-6)

	SigmoidDerivative(m)
	for i, s := range want {
		assert.InDelta(t, (1-s)*s, m.Data[i], 1e-6)
	}
	assert.InDelta(t, 0.25, m.Data[2], 1e-6)
}

func TestFromRows(t *testing.T) {
	_, err := FromRows(nil)
	assert.ErrorIs(t, err, ErrShape)

	_, err = FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrShape)

	m, err := FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, m.Data)
	m.Set(1, 0, 9)
	assert.Equal(t, 9.0, m.At(1, 0))
}

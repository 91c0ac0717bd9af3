package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float64
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, expected: 1.0},
		{name: "opposite", a: []float32{1, 0}, b: []float32{-1, 0}, expected: -1.0},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, expected: 0},
		{name: "scaled vectors still identical", a: []float32{1, 1}, b: []float32{5, 5}, expected: 1.0},
		{name: "nil a", a: nil, b: []float32{1}, expected: 0},
		{name: "nil b", a: []float32{1}, b: nil, expected: 0},
		{name: "length mismatch", a: []float32{1, 2}, b: []float32{1}, expected: 0},
		{name: "zero norm", a: []float32{0, 0}, b: []float32{1, 2}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

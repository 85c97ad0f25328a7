package core

import (
	"math"
	"testing"
)

func TestDot(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{4, 5, 6}

	if got := Dot(a, b); got != 32 {
		t.Errorf("Dot() = %v, want 32", got)
	}
}

func TestDot_MismatchedLengths(t *testing.T) {
	a := []float32{1, 2, 3, 100}
	b := []float32{1, 1, 1}

	if got := Dot(a, b); got != 6 {
		t.Errorf("Dot() = %v, want 6", got)
	}
}

func TestNormalize(t *testing.T) {
	v := Normalize([]float32{3, 4})

	if math.Abs(float64(v[0])-0.6) > 1e-6 || math.Abs(float64(v[1])-0.8) > 1e-6 {
		t.Errorf("Normalize() = %v, want [0.6 0.8]", v)
	}
}

func TestNormalize_ZeroVector(t *testing.T) {
	v := Normalize([]float32{0, 0, 0})

	for i, val := range v {
		if val != 0 {
			t.Errorf("Normalize() zero vector element %d = %v, want 0", i, val)
		}
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{name: "identical", a: []float32{1, 0}, b: []float32{1, 0}, want: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "opposite", a: []float32{1, 0}, b: []float32{-1, 0}, want: -1},
		{name: "scale invariant", a: []float32{2, 2}, b: []float32{5, 5}, want: 1},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := float64(CosineSimilarity(tt.a, tt.b))
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

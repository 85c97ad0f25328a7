package core

import "math"

// Dot calculates the dot product of two vectors.
// Trailing elements of the longer vector are ignored.
func Dot(a, b []float32) float32 {
	var sum float32
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// Normalize returns a unit-length copy of v.
// A zero vector normalizes to a zero vector.
func Normalize(v []float32) []float32 {
	result := make([]float32, len(v))
	var magnitude float64
	for _, val := range v {
		magnitude += float64(val) * float64(val)
	}
	if magnitude == 0 {
		return result
	}
	norm := float32(1.0 / math.Sqrt(magnitude))
	for i, val := range v {
		result[i] = val * norm
	}
	return result
}

// CosineSimilarity returns the cosine of the angle between a and b.
// Equivalent to Dot for already-normalized vectors; zero vectors score 0.
func CosineSimilarity(a, b []float32) float32 {
	var dot, normA, normB float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

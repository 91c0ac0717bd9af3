// Package embedding provides the text-embedding collaborator contract and a
// Gemini-backed implementation.
package embedding

import (
	"context"
	"math"
)

// Embedder maps text to a fixed-length vector. Implementations must be
// deterministic for identical text within a session. A nil vector means the
// embedding is absent; callers treat absence as zero similarity, never as an
// error.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// CosineSimilarity computes dot(a,b) / (|a|*|b|). Returns 0 when either
// vector is absent or has zero norm.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

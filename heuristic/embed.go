package heuristic

import (
	"context"
	"hash/fnv"

	"gonum.org/v1/gonum/floats"
)

// DefaultDimension matches all-MiniLM-L6-v2.
const DefaultDimension = 384

// Embedder hashes content words into a fixed number of buckets and L2-normalizes the result.
// Texts sharing vocabulary land close together; text with no content words embeds to zeros.
type Embedder struct {
	dimension int
}

func NewEmbedder(dimension int) *Embedder {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &Embedder{dimension: dimension}
}

func (e *Embedder) Dimension() int { return e.dimension }

func (e *Embedder) Embed(_ context.Context, text string) ([]float64, error) {
	vec := make([]float64, e.dimension)
	for _, w := range words(text) {
		if stopwords[w] {
			continue
		}
		h := fnv.New64a()
		_, _ = h.Write([]byte(w))
		sum := h.Sum64()
		sign := 1.0
		if sum&(1<<63) != 0 {
			sign = -1
		}
		vec[sum%uint64(e.dimension)] += sign
	}
	if n := floats.Norm(vec, 2); n > 0 {
		floats.Scale(1/n, vec)
	}
	return vec, nil
}

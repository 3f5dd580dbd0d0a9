package embeddings

import (
	"context"

	"github.com/pgvector/pgvector-go"
)

// Dimensions matches the width of the vector column in the memories table.
const Dimensions = 768

// Embedder turns text into a fixed-length vector.
type Embedder interface {
	Embed(ctx context.Context, text string) pgvector.Vector
}

// Placeholder returns the same vector for any input. It exists to populate
// the embedding column until a real embedding provider is wired in.
type Placeholder struct{}

func (Placeholder) Embed(context.Context, string) pgvector.Vector {
	values := make([]float32, Dimensions)
	for i := range values {
		values[i] = 0.01
	}
	return pgvector.NewVector(values)
}

package port

import "cag/internal/domain"

// Embedder maps query text to a fixed-dimension vector.
// Implementations must be total: every string yields a vector.
type Embedder interface {
	Embed(query string) []float64
}

// VectorStore holds documents in insertion order and scores them against a query vector.
type VectorStore interface {
	// Insert adds a document or overwrites the one stored under the same key.
	Insert(doc domain.Document)

	// Scan computes similarity against every stored document in iteration order.
	// Results are neither sorted nor filtered.
	Scan(query []float64) []domain.Scored

	// Len returns the number of stored documents.
	Len() int
}

package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"cag/internal/domain"
	"cag/internal/port"
)

// DefaultThreshold is the similarity a match must reach to count as a hit.
const DefaultThreshold = 0.85

// ErrInvalidArgument is returned for a similarity threshold outside [0, 1].
var ErrInvalidArgument = errors.New("invalid argument")

const missMessage = "Sorry, no relevant information found in cache with sufficient accuracy."

// Engine answers queries from a pre-loaded vector store. A query hits when the
// most similar document reaches the threshold.
type Engine struct {
	mu        sync.RWMutex
	store     port.VectorStore
	embedder  port.Embedder
	threshold float64
	logger    *slog.Logger
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine over store. threshold must lie in [0, 1].
func NewEngine(store port.VectorStore, embedder port.Embedder, threshold float64, opts ...Option) (*Engine, error) {
	if err := validateThreshold(threshold); err != nil {
		return nil, err
	}
	e := &Engine{
		store:     store,
		embedder:  embedder,
		threshold: threshold,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Resolve embeds the query and classifies it against the store.
func (e *Engine) Resolve(query string) domain.Outcome {
	e.logger.Debug("processing query", "query", query)
	queryVector := e.embedder.Embed(query)

	e.mu.RLock()
	threshold := e.threshold
	results := e.store.Scan(queryVector)
	e.mu.RUnlock()

	var best *domain.Scored
	highest := 0.0
	for i := range results {
		r := results[i]
		e.logger.Debug("similarity", "key", r.Key, "score", fmt.Sprintf("%.3f", r.Similarity))
		// Strict comparison: on ties the earlier document wins.
		if r.Similarity > highest {
			highest = r.Similarity
			best = &results[i]
		}
	}

	outcome := domain.Outcome{
		Query:      query,
		Status:     domain.StatusMiss,
		Similarity: highest,
		Threshold:  threshold,
	}
	if best != nil && highest >= threshold {
		match := *best
		outcome.Status = domain.StatusHit
		outcome.Match = &match
	}

	e.logger.Debug("search result",
		"status", outcome.Status,
		"similarity", fmt.Sprintf("%.3f", highest),
		"threshold", threshold,
	)
	return outcome
}

func (e *Engine) Respond(query string) string {
	return Format(e.Resolve(query))
}

// Format renders an outcome as response text.
func Format(o domain.Outcome) string {
	if o.Hit() {
		return fmt.Sprintf("Hit cache (Similarity: %.3f):\nResponse from cache for \"%s\":\n%s",
			o.Similarity, o.Match.Key, o.Match.Content)
	}
	return fmt.Sprintf("Miss cache (Similarity: %.3f):\n%s", o.Similarity, missMessage)
}

// SetThreshold replaces the threshold for all subsequent queries.
func (e *Engine) SetThreshold(value float64) error {
	if err := validateThreshold(value); err != nil {
		return err
	}
	e.mu.Lock()
	e.threshold = value
	e.mu.Unlock()
	e.logger.Debug("similarity threshold updated", "threshold", value)
	return nil
}

func (e *Engine) Threshold() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.threshold
}

// Insert adds or overwrites a document at runtime.
func (e *Engine) Insert(key, content string, embedding []float64) {
	e.mu.Lock()
	e.store.Insert(domain.Document{Key: key, Content: content, Embedding: embedding})
	e.mu.Unlock()
	e.logger.Debug("document inserted", "key", key, "dimension", len(embedding))
}

func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.Len()
}

func validateThreshold(value float64) error {
	if math.IsNaN(value) || value < 0 || value > 1 {
		return fmt.Errorf("%w: similarity threshold must be between 0 and 1, got %v", ErrInvalidArgument, value)
	}
	return nil
}

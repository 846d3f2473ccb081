package embedding

import (
	"log/slog"
	"strings"
)

// Rule maps queries matching a predicate to a fixed vector.
type Rule struct {
	Topic  string
	Match  func(lowerQuery string) bool
	Vector []float64
}

// KeywordEmbedder is a stand-in embedding model. It lowercases the query and
// returns the vector of the first matching rule, or the fallback vector.
type KeywordEmbedder struct {
	rules    []Rule
	fallback []float64
	logger   *slog.Logger
}

// DefaultFallback is returned when no rule matches.
var DefaultFallback = []float64{0.1, 0.1, 0.1, 0.1}

// DefaultRules returns the built-in topic rules. Order matters: the CAG rule
// excludes queries mentioning RAG so they reach the RAG vs CAG rule.
func DefaultRules() []Rule {
	return []Rule{
		{
			Topic:  "AI",
			Match:  containsAny("ai"),
			Vector: []float64{0.85, 0.15, 0.25, 0.35},
		},
		{
			Topic: "CAG",
			Match: func(q string) bool {
				return strings.Contains(q, "cag") && !strings.Contains(q, "rag")
			},
			Vector: []float64{0.25, 0.75, 0.35, 0.15},
		},
		{
			Topic:  "RAG vs CAG",
			Match:  containsAny("rag", "difference"),
			Vector: []float64{0.35, 0.65, 0.45, 0.05},
		},
		{
			Topic:  "Vector Store",
			Match:  containsAny("vector", "store"),
			Vector: []float64{0.5, 0.5, 0.3, 0.2},
		},
	}
}

func NewKeywordEmbedder(logger *slog.Logger) *KeywordEmbedder {
	return NewKeywordEmbedderWithRules(DefaultRules(), DefaultFallback, logger)
}

func NewKeywordEmbedderWithRules(rules []Rule, fallback []float64, logger *slog.Logger) *KeywordEmbedder {
	if logger == nil {
		logger = slog.Default()
	}
	return &KeywordEmbedder{
		rules:    rules,
		fallback: fallback,
		logger:   logger,
	}
}

func (e *KeywordEmbedder) Embed(query string) []float64 {
	lower := strings.ToLower(query)
	for _, rule := range e.rules {
		if rule.Match(lower) {
			e.logger.Debug("query matched topic", "query", query, "topic", rule.Topic)
			return clone(rule.Vector)
		}
	}
	e.logger.Debug("no topic match", "query", query)
	return clone(e.fallback)
}

// Dimension returns the length of the fallback vector.
func (e *KeywordEmbedder) Dimension() int {
	return len(e.fallback)
}

func containsAny(terms ...string) func(string) bool {
	return func(q string) bool {
		for _, term := range terms {
			if strings.Contains(q, term) {
				return true
			}
		}
		return false
	}
}

func clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}

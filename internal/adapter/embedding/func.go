package embedding

import (
	"sync/atomic"

	"cag/internal/port"
)

// Func adapts an ordinary function to port.Embedder.
type Func func(query string) []float64

func (f Func) Embed(query string) []float64 {
	return f(query)
}

// Counting wraps an embedder and counts calls to it.
type Counting struct {
	next  port.Embedder
	calls atomic.Int64
}

func NewCounting(next port.Embedder) *Counting {
	return &Counting{next: next}
}

func (c *Counting) Embed(query string) []float64 {
	c.calls.Add(1)
	return c.next.Embed(query)
}

func (c *Counting) Calls() int64 {
	return c.calls.Load()
}

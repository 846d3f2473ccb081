package cache

import (
	"fmt"
	"sync"
	"testing"
)

type countingResponder struct {
	mu    sync.Mutex
	calls int
	reply func(query string) string
}

func (r *countingResponder) Respond(query string) string {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	return r.reply(query)
}

func TestCachedResponderMemoizes(t *testing.T) {
	inner := &countingResponder{reply: func(q string) string { return "answer:" + q }}
	r := NewCachedResponder(inner, nil, nil)

	first := r.Respond("What is AI?")
	second := r.Respond("What is AI?")

	if first != second {
		t.Errorf("expected identical responses, got %q and %q", first, second)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 delegated call, got %d", inner.calls)
	}
	if r.Cache().Size() != 1 {
		t.Errorf("expected cache size 1, got %d", r.Cache().Size())
	}
}

func TestCachedResponderExactKey(t *testing.T) {
	inner := &countingResponder{reply: func(q string) string { return q }}
	r := NewCachedResponder(inner, nil, nil)

	for _, q := range []string{"what is ai?", "What is AI?", "What is AI? ", ""} {
		r.Respond(q)
	}
	if inner.calls != 4 {
		t.Errorf("expected no query normalization (4 calls), got %d", inner.calls)
	}

	r.Respond("")
	if inner.calls != 4 {
		t.Errorf("expected empty query to be served from cache, got %d calls", inner.calls)
	}
}

func TestCachedResponderFreezesFirstResult(t *testing.T) {
	version := 1
	inner := &countingResponder{reply: func(q string) string { return fmt.Sprintf("%s v%d", q, version) }}
	r := NewCachedResponder(inner, nil, nil)

	r.Respond("q")
	version = 2

	if got := r.Respond("q"); got != "q v1" {
		t.Errorf("expected frozen response, got %q", got)
	}
	if got := r.Respond("other"); got != "other v2" {
		t.Errorf("expected fresh response for unseen query, got %q", got)
	}
}

func TestInvalidate(t *testing.T) {
	inner := &countingResponder{reply: func(q string) string { return q }}
	c := NewResponseCache()
	r := NewCachedResponder(inner, c, nil)

	r.Respond("q")
	c.Invalidate()
	r.Respond("q")

	if inner.calls != 2 {
		t.Errorf("expected recompute after invalidate, got %d calls", inner.calls)
	}
}

func TestCachedResponderConcurrent(t *testing.T) {
	inner := &countingResponder{reply: func(q string) string { return "r:" + q }}
	r := NewCachedResponder(inner, nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q := fmt.Sprintf("q%d", i%5)
			if got := r.Respond(q); got != "r:"+q {
				t.Errorf("unexpected response %q", got)
			}
		}(i)
	}
	wg.Wait()

	if r.Cache().Size() != 5 {
		t.Errorf("expected 5 cached entries, got %d", r.Cache().Size())
	}
	if inner.calls < 5 || inner.calls > 50 {
		t.Errorf("unexpected delegated call count %d", inner.calls)
	}
}

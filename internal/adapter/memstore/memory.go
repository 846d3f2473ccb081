package memstore

import (
	"sync"

	"cag/internal/adapter/similarity"
	"cag/internal/domain"
)

// VectorStore is an in-memory, insertion-ordered document store.
// Scans are exact: every document is scored on every call.
type VectorStore struct {
	mu    sync.RWMutex
	docs  []domain.Document
	index map[string]int
}

func NewVectorStore(docs ...domain.Document) *VectorStore {
	s := &VectorStore{
		index: make(map[string]int, len(docs)),
	}
	for _, doc := range docs {
		s.insert(doc)
	}
	return s
}

// Insert adds doc, or replaces the document stored under doc.Key in place.
func (s *VectorStore) Insert(doc domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insert(doc)
}

func (s *VectorStore) insert(doc domain.Document) {
	doc.Embedding = append([]float64(nil), doc.Embedding...)
	if i, ok := s.index[doc.Key]; ok {
		s.docs[i] = doc
		return
	}
	s.index[doc.Key] = len(s.docs)
	s.docs = append(s.docs, doc)
}

func (s *VectorStore) Scan(query []float64) []domain.Scored {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]domain.Scored, 0, len(s.docs))
	for _, doc := range s.docs {
		results = append(results, domain.Scored{
			Key:        doc.Key,
			Content:    doc.Content,
			Similarity: similarity.Cosine(query, doc.Embedding),
		})
	}
	return results
}

func (s *VectorStore) Get(key string) (domain.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[key]
	if !ok {
		return domain.Document{}, false
	}
	return s.docs[i], true
}

// Delete removes the document under key, preserving the order of the rest.
func (s *VectorStore) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[key]
	if !ok {
		return false
	}
	s.docs = append(s.docs[:i], s.docs[i+1:]...)
	delete(s.index, key)
	for j := i; j < len(s.docs); j++ {
		s.index[s.docs[j].Key] = j
	}
	return true
}

// Documents returns a copy of the stored documents in iteration order.
func (s *VectorStore) Documents() []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.Document, len(s.docs))
	copy(docs, s.docs)
	return docs
}

func (s *VectorStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

package corpus

import "cag/internal/domain"

// Default returns the built-in corpus in load order.
func Default() []domain.Document {
	return []domain.Document{
		{
			Key:       "AI basics",
			Content:   "Artificial Intelligence (AI) is the simulation of human intelligence processes by machines, especially computer systems. It includes learning, reasoning, and self-correction.",
			Embedding: []float64{0.9, 0.1, 0.2, 0.3},
		},
		{
			Key:       "LLM definition",
			Content:   "Large Language Models (LLMs) are AI models trained on vast datasets to understand and generate human-like text.",
			Embedding: []float64{0.8, 0.2, 0.3, 0.4},
		},
		{
			Key:       "CAG overview",
			Content:   "Cache Augmented Generation (CAG) is a method to pre-load relevant documents into an LLM's context memory to reduce latency and improve response time.",
			Embedding: []float64{0.3, 0.7, 0.4, 0.2},
		},
		{
			Key:       "RAG vs CAG",
			Content:   "Unlike Retrieval-Augmented Generation (RAG), which retrieves documents in real-time, CAG pre-loads data into memory for faster access.",
			Embedding: []float64{0.4, 0.6, 0.5, 0.1},
		},
	}
}

// VectorStoreBasics is the document ingested at runtime by the demo.
func VectorStoreBasics() domain.Document {
	return domain.Document{
		Key:       "Vector Store Basics",
		Content:   "Vector stores are databases designed to store and search embeddings efficiently.",
		Embedding: []float64{0.5, 0.5, 0.3, 0.2},
	}
}

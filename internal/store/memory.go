// Package store holds chunk embeddings for similarity search.
package store

import (
	"math"
	"sort"
)

type entry struct {
	chunk  string
	vector []float32
}

// MemoryStore is an in-memory vector index. Instances are created per
// request and discarded with it, so access is single-goroutine and the
// store carries no locking.
type MemoryStore struct {
	entries []entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Add(chunk string, vector []float32) {
	s.entries = append(s.entries, entry{chunk: chunk, vector: vector})
}

func (s *MemoryStore) Len() int {
	return len(s.entries)
}

// Search returns the k stored chunks most similar to the query vector,
// ordered by descending cosine similarity. Ties keep insertion order.
func (s *MemoryStore) Search(query []float32, k int) []string {
	if k <= 0 || len(s.entries) == 0 {
		return nil
	}

	type scored struct {
		index int
		score float64
	}
	results := make([]scored, len(s.entries))
	for i, e := range s.entries {
		results[i] = scored{index: i, score: cosineSimilarity(query, e.vector)}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	if k > len(results) {
		k = len(results)
	}
	chunks := make([]string, k)
	for i := 0; i < k; i++ {
		chunks[i] = s.entries[results[i].index].chunk
	}
	return chunks
}

func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

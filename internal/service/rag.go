package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aidyn-m/hf-gateway/internal/store"
	"github.com/aidyn-m/hf-gateway/internal/textsplit"
)

// qaTemplate combines retrieved context with the question for the final
// generation call.
var qaTemplate = NewPromptTemplate(
	"Use the following pieces of context to answer the question at the end. " +
		"If you don't know the answer, just say that you don't know, don't try to make up an answer.\n\n" +
		"{context}\n\nQuestion: {question}\nHelpful Answer:",
)

// DocumentQuery is one document question-answering request.
type DocumentQuery struct {
	Document     string
	Question     string
	ChunkSize    int
	ChunkOverlap int
}

// DocumentAnswer carries the generated answer plus pipeline facts echoed in
// the response envelope.
type DocumentAnswer struct {
	ChunksCreated int
	Answer        string
}

// RAGService answers questions over a document: split into chunks, embed
// them into a request-scoped index, retrieve the most similar chunks for
// the question and generate the answer from them.
type RAGService struct {
	llm      TextModel
	embedder Embedder
	topK     int
}

func NewRAGService(llm TextModel, embedder Embedder, topK int) *RAGService {
	if topK <= 0 {
		topK = 4
	}
	return &RAGService{llm: llm, embedder: embedder, topK: topK}
}

func (s *RAGService) Answer(ctx context.Context, q DocumentQuery) (DocumentAnswer, error) {
	chunks := textsplit.NewSplitter(q.ChunkSize, q.ChunkOverlap).Split(q.Document)
	if len(chunks) == 0 {
		return DocumentAnswer{}, fmt.Errorf("document produced no chunks")
	}

	// Index is scoped to this request and dropped with it.
	index := store.NewMemoryStore()
	for i, ch := range chunks {
		vec, err := s.embedder.Embedding(ctx, ch)
		if err != nil {
			return DocumentAnswer{}, fmt.Errorf("embedding chunk %d: %w", i, err)
		}
		index.Add(ch, vec)
	}

	qVec, err := s.embedder.Embedding(ctx, q.Question)
	if err != nil {
		return DocumentAnswer{}, fmt.Errorf("embedding question: %w", err)
	}

	relevant := index.Search(qVec, s.topK)

	prompt, err := qaTemplate.Format(map[string]string{
		"context":  strings.Join(relevant, "\n\n"),
		"question": q.Question,
	})
	if err != nil {
		return DocumentAnswer{}, fmt.Errorf("building prompt: %w", err)
	}

	answer, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return DocumentAnswer{}, fmt.Errorf("generating answer: %w", err)
	}

	return DocumentAnswer{ChunksCreated: len(chunks), Answer: answer}, nil
}

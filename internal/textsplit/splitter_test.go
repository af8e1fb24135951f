package textsplit

import (
	"strings"
	"testing"
)

func TestSplitShortTextSingleChunk(t *testing.T) {
	s := NewSplitter(1000, 200)
	chunks := s.Split("Hello world")

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "Hello world" {
		t.Errorf("chunk should equal input, got %q", chunks[0])
	}
}

func TestSplitEmptyInput(t *testing.T) {
	s := NewSplitter(100, 10)
	if chunks := s.Split(""); chunks != nil {
		t.Errorf("empty input should produce no chunks, got %v", chunks)
	}
	if chunks := s.Split("   \n\n  "); chunks != nil {
		t.Errorf("whitespace input should produce no chunks, got %v", chunks)
	}
}

func TestSplitRespectsChunkSize(t *testing.T) {
	s := NewSplitter(50, 10)
	text := strings.Repeat("some words in a sentence ", 40)
	chunks := s.Split(text)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, ch := range chunks {
		if len(ch) > 50 {
			t.Errorf("chunk %d exceeds size limit: %d chars", i, len(ch))
		}
	}
}

func TestSplitPrefersParagraphBoundary(t *testing.T) {
	s := NewSplitter(12, 0)
	chunks := s.Split("para one.\n\npara two.")

	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %v", len(chunks), chunks)
	}
	if chunks[0] != "para one." || chunks[1] != "para two." {
		t.Errorf("expected split at paragraph boundary, got %v", chunks)
	}
}

func TestSplitOverlapCarriesTrailingWords(t *testing.T) {
	s := NewSplitter(6, 3)
	chunks := s.Split("aa bb cc dd")

	want := []string{"aa bb", "bb cc", "cc dd"}
	if len(chunks) != len(want) {
		t.Fatalf("expected %d chunks, got %d: %v", len(want), len(chunks), chunks)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk %d: want %q, got %q", i, want[i], chunks[i])
		}
	}
}

func TestSplitHardCutWithoutSeparators(t *testing.T) {
	s := NewSplitter(4, 0)
	chunks := s.Split("abcdefghij")

	want := []string{"abcd", "efgh", "ij"}
	if len(chunks) != len(want) {
		t.Fatalf("expected %d chunks, got %d: %v", len(want), len(chunks), chunks)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk %d: want %q, got %q", i, want[i], chunks[i])
		}
	}
}

func TestSplitOversizedWordFallsBackToCharacters(t *testing.T) {
	s := NewSplitter(4, 0)
	chunks := s.Split("hi abcdefgh yo")

	for i, ch := range chunks {
		if len(ch) > 4 {
			t.Errorf("chunk %d exceeds size limit: %q", i, ch)
		}
	}
	joined := strings.Join(chunks, "")
	if !strings.Contains(joined, "abcd") || !strings.Contains(joined, "efgh") {
		t.Errorf("oversized word should be character-cut, got %v", chunks)
	}
}

// Re-splitting any produced chunk with the same parameters must reproduce
// the chunk itself.
func TestSplitIdempotentOnOwnOutput(t *testing.T) {
	s := NewSplitter(40, 10)
	text := "First sentence here. Second sentence follows.\n\nA new paragraph with more words in it."

	for _, ch := range s.Split(text) {
		again := s.Split(ch)
		if len(again) != 1 {
			t.Fatalf("re-split of %q produced %d chunks: %v", ch, len(again), again)
		}
		if again[0] != ch {
			t.Errorf("re-split changed chunk: %q -> %q", ch, again[0])
		}
	}
}

func TestSplitDeterministic(t *testing.T) {
	s := NewSplitter(30, 5)
	text := "one two three four five six seven eight nine ten eleven twelve"

	first := s.Split(text)
	second := s.Split(text)
	if len(first) != len(second) {
		t.Fatalf("non-deterministic chunk count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}

func TestNewSplitterDefaults(t *testing.T) {
	s := NewSplitter(0, -1)
	if s.chunkSize != 1000 {
		t.Errorf("expected default chunk size 1000, got %d", s.chunkSize)
	}
	if s.chunkOverlap != 0 {
		t.Errorf("expected overlap clamped to 0, got %d", s.chunkOverlap)
	}
}

// Package textsplit partitions documents into bounded, overlapping chunks.
//
// The splitter prefers breaking at larger structural boundaries first
// (paragraph, then line, then word) and only falls back to a hard character
// cut when a piece has no usable boundary. Output is deterministic for a
// given input and configuration.
package textsplit

import "strings"

// DefaultSeparators is the boundary preference order. The final empty
// separator means "split between characters".
var DefaultSeparators = []string{"\n\n", "\n", " ", ""}

type Splitter struct {
	chunkSize    int
	chunkOverlap int
	separators   []string
}

// NewSplitter builds a splitter producing chunks of at most chunkSize
// characters with chunkOverlap characters shared between neighbours.
// Non-positive sizes fall back to the service defaults; callers that need
// strict validation do it before constructing the splitter.
func NewSplitter(chunkSize, chunkOverlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if chunkOverlap < 0 {
		chunkOverlap = 0
	}
	if chunkOverlap >= chunkSize {
		chunkOverlap = chunkSize / 2
	}
	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		separators:   DefaultSeparators,
	}
}

// Split partitions text into ordered chunks. Empty or whitespace-only input
// produces no chunks.
func (s *Splitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return s.split(text, s.separators)
}

func (s *Splitter) split(text string, separators []string) []string {
	// Pick the first separator actually present in the text; the empty
	// separator always matches and ends the recursion.
	separator := separators[len(separators)-1]
	var next []string
	for i, sep := range separators {
		if sep == "" {
			separator = sep
			next = nil
			break
		}
		if strings.Contains(text, sep) {
			separator = sep
			next = separators[i+1:]
			break
		}
	}

	splits := splitOn(text, separator)

	var chunks []string
	var pending []string
	for _, piece := range splits {
		if len(piece) < s.chunkSize {
			pending = append(pending, piece)
			continue
		}
		if len(pending) > 0 {
			chunks = append(chunks, s.merge(pending, separator)...)
			pending = nil
		}
		if len(next) == 0 {
			// No finer boundary left to recurse on.
			chunks = append(chunks, piece)
		} else {
			chunks = append(chunks, s.split(piece, next)...)
		}
	}
	if len(pending) > 0 {
		chunks = append(chunks, s.merge(pending, separator)...)
	}
	return chunks
}

// merge greedily joins splits into chunks of at most chunkSize characters,
// carrying chunkOverlap characters of trailing pieces into the next chunk.
func (s *Splitter) merge(splits []string, separator string) []string {
	sepLen := len(separator)

	var chunks []string
	var current []string
	total := 0

	appendChunk := func() {
		joined := strings.TrimSpace(strings.Join(current, separator))
		if joined != "" {
			chunks = append(chunks, joined)
		}
	}

	for _, piece := range splits {
		pieceLen := len(piece)
		extra := 0
		if len(current) > 0 {
			extra = sepLen
		}
		if total+pieceLen+extra > s.chunkSize && len(current) > 0 {
			appendChunk()
			// Drop leading pieces until the retained tail fits inside
			// the overlap budget and leaves room for the new piece.
			for total > s.chunkOverlap ||
				(total+pieceLen+sepLenIf(len(current) > 0, sepLen) > s.chunkSize && total > 0) {
				total -= len(current[0]) + sepLenIf(len(current) > 1, sepLen)
				current = current[1:]
			}
		}
		current = append(current, piece)
		total += pieceLen + sepLenIf(len(current) > 1, sepLen)
	}
	appendChunk()
	return chunks
}

func sepLenIf(cond bool, sepLen int) int {
	if cond {
		return sepLen
	}
	return 0
}

// splitOn splits text on separator, dropping empty pieces. The empty
// separator splits into individual characters.
func splitOn(text, separator string) []string {
	var raw []string
	if separator == "" {
		raw = strings.Split(text, "")
	} else {
		raw = strings.Split(text, separator)
	}
	out := raw[:0]
	for _, piece := range raw {
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

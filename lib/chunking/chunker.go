// Copyright 2025 Antfly, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package chunking splits large documents into size-bounded segments that
// respect paragraph boundaries, so each segment can be annotated
// independently without exceeding a model's practical document length.
//
// Splitting is hierarchical: paragraphs are accumulated greedily into
// chunks up to the size limit; a paragraph that alone exceeds the limit is
// split on sentence boundaries; a sentence that alone exceeds the limit
// falls back to a hard cut at exactly the limit. Every level consumes at
// least one rune per emitted chunk, so chunking terminates on any input,
// including a single multi-megabyte token with no whitespace.
//
// Sizes are measured in runes, not bytes.
//
// All functions are safe for concurrent use by multiple goroutines.
package chunking

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MinChunkSize is the smallest permitted maxChunkSize. Anything below
	// this produces chunks too small to carry annotatable context.
	MinChunkSize = 100

	// DefaultMaxChunkSize bounds chunks to 100K runes, comfortably under
	// the practical document length limits of common NLP models.
	DefaultMaxChunkSize = 100_000

	// paragraphJoin re-joins paragraphs accumulated into one chunk.
	paragraphJoin = "\n\n"

	// sentenceJoin re-joins sentences accumulated into one chunk.
	sentenceJoin = " "
)

// ErrChunkSizeTooSmall is returned when maxChunkSize is below MinChunkSize.
// This is a caller configuration error, not a runtime condition.
var ErrChunkSizeTooSmall = errors.New("max chunk size below minimum")

// ChunkText splits text into ordered chunks of at most maxChunkSize runes,
// preserving paragraph boundaries where possible.
//
// Text that already fits in a single chunk is returned as one element
// without any segmentation work; callers rely on single-chunk inputs
// bypassing the merge machinery downstream. Empty or whitespace-only text
// yields no chunks and no error.
//
// Returns ErrChunkSizeTooSmall if maxChunkSize < MinChunkSize.
func ChunkText(text string, maxChunkSize int) ([]string, error) {
	if maxChunkSize < MinChunkSize {
		return nil, fmt.Errorf("%w: got %d, need at least %d",
			ErrChunkSizeTooSmall, maxChunkSize, MinChunkSize)
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	// Fast path: the whole text fits in one chunk.
	if utf8.RuneCountInString(trimmed) <= maxChunkSize {
		return []string{trimmed}, nil
	}

	var chunks []string
	var current []string
	currentRunes := 0

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, paragraphJoin))
			current = nil
			currentRunes = 0
		}
	}

	for _, para := range SplitIntoParagraphs(text) {
		paraRunes := utf8.RuneCountInString(para)

		switch {
		case paraRunes > maxChunkSize:
			// The paragraph alone exceeds the limit: close the current
			// chunk and descend to sentence-level splitting.
			flush()
			chunks = append(chunks, chunkOversizedParagraph(para, maxChunkSize)...)

		case len(current) > 0 && currentRunes+paraRunes+len(paragraphJoin) > maxChunkSize:
			flush()
			current = []string{para}
			currentRunes = paraRunes + len(paragraphJoin)

		default:
			current = append(current, para)
			currentRunes += paraRunes + len(paragraphJoin)
		}
	}

	flush()
	return chunks, nil
}

// chunkOversizedParagraph splits a paragraph exceeding the limit on
// sentence boundaries, accumulating sentences greedily. A single sentence
// exceeding the limit falls back to hard rune cuts. Emission is strictly
// source-ordered: accumulated sentences are flushed before any hard-cut
// pieces of a following oversized sentence.
func chunkOversizedParagraph(para string, maxChunkSize int) []string {
	var chunks []string
	var current []string
	currentRunes := 0

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, sentenceJoin))
			current = nil
			currentRunes = 0
		}
	}

	for _, sentence := range SplitSentences(para) {
		sentRunes := utf8.RuneCountInString(sentence)

		switch {
		case sentRunes > maxChunkSize:
			flush()
			chunks = append(chunks, hardCut(sentence, maxChunkSize)...)

		case len(current) > 0 && currentRunes+sentRunes+len(sentenceJoin) > maxChunkSize:
			flush()
			current = []string{sentence}
			currentRunes = sentRunes + len(sentenceJoin)

		default:
			current = append(current, sentence)
			currentRunes += sentRunes + len(sentenceJoin)
		}
	}

	flush()
	return chunks
}

// hardCut splits s into pieces of exactly size runes (the last piece may
// be shorter). Terminal fallback of the cascade: no further recursion.
func hardCut(s string, size int) []string {
	offsets := runeOffsets(s)
	totalRunes := len(offsets) - 1

	pieces := make([]string, 0, totalRunes/size+1)
	for pos := 0; pos < totalRunes; pos += size {
		end := min(pos+size, totalRunes)
		pieces = append(pieces, s[offsets[pos]:offsets[end]])
	}
	return pieces
}

// runeOffsets returns a slice mapping rune index -> byte offset, with the
// final element equal to len(s).
func runeOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))
	return offsets
}

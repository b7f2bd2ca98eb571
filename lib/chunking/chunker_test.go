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

package chunking

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTextSizeTooSmall(t *testing.T) {
	_, err := ChunkText("some text", MinChunkSize-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChunkSizeTooSmall)
}

func TestChunkTextEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\t  \n"} {
		chunks, err := ChunkText(input, DefaultMaxChunkSize)
		require.NoError(t, err)
		assert.Empty(t, chunks)
	}
}

func TestChunkTextSingleChunk(t *testing.T) {
	text := "  A short text that fits in one chunk.\n\nWith two paragraphs.  "
	chunks, err := ChunkText(text, DefaultMaxChunkSize)
	require.NoError(t, err)
	require.Len(t, chunks, 1)

	// Single-chunk output is the stripped input, boundaries untouched
	assert.Equal(t, strings.TrimSpace(text), chunks[0])
}

func TestChunkTextParagraphBoundaries(t *testing.T) {
	paraA := strings.Repeat("a", 60) + "."
	paraB := strings.Repeat("b", 60) + "."
	paraC := strings.Repeat("c", 60) + "."
	text := paraA + "\n\n" + paraB + "\n\n" + paraC

	// Any two paragraphs plus the separator exceed 100 runes
	chunks, err := ChunkText(text, 100)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	assert.Equal(t, paraA, chunks[0])
	assert.Equal(t, paraB, chunks[1])
	assert.Equal(t, paraC, chunks[2])
}

func TestChunkTextGreedyPacking(t *testing.T) {
	paraA := strings.Repeat("a", 40) + "."
	paraB := strings.Repeat("b", 40) + "."
	paraC := strings.Repeat("c", 40) + "."
	text := paraA + "\n\n" + paraB + "\n\n" + paraC

	// A+B fit together (41+2+41 = 84 <= 100), C starts a new chunk
	chunks, err := ChunkText(text, 100)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, paraA+"\n\n"+paraB, chunks[0])
	assert.Equal(t, paraC, chunks[1])
}

func TestChunkTextOversizedParagraphSentences(t *testing.T) {
	sentA := strings.Repeat("a", 59) + "."
	sentB := strings.Repeat("b", 59) + "."
	sentC := strings.Repeat("c", 59) + "."
	text := sentA + " " + sentB + " " + sentC

	// Paragraph of 182 runes, sentences of 60 runes: pairs of two fit
	chunks, err := ChunkText(text, 130)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, sentA+" "+sentB, chunks[0])
	assert.Equal(t, sentC, chunks[1])
}

func TestChunkTextHardCut(t *testing.T) {
	// One 250-rune token, no whitespace at all
	text := strings.Repeat("x", 250)
	chunks, err := ChunkText(text, 100)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	assert.Equal(t, strings.Repeat("x", 100), chunks[0])
	assert.Equal(t, strings.Repeat("x", 100), chunks[1])
	assert.Equal(t, strings.Repeat("x", 50), chunks[2])
}

func TestChunkTextHardCutSourceOrder(t *testing.T) {
	sent := strings.Repeat("s", 50) + "."
	long := strings.Repeat("y", 150)
	text := sent + " " + long + "."

	chunks, err := ChunkText(text, 100)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(chunks), 3)

	// The accumulated sentence is flushed before the oversized one is cut
	assert.Equal(t, sent, chunks[0])
	assert.Equal(t, strings.Repeat("y", 100), chunks[1])
}

func TestChunkTextMultibyte(t *testing.T) {
	// 120 three-byte runes; limits count runes, not bytes
	text := strings.Repeat("ж", 120)
	chunks, err := ChunkText(text, 100)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, 100, utf8.RuneCountInString(chunks[0]))
	assert.Equal(t, 20, utf8.RuneCountInString(chunks[1]))

	for _, c := range chunks {
		assert.True(t, utf8.ValidString(c))
	}
}

func TestChunkTextSizeBound(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
	}{
		{
			name: "mixed paragraphs",
			text: strings.Repeat("Short para.\n\n", 30) + strings.Repeat("word ", 80),
			max:  120,
		},
		{
			name: "long unbroken run",
			text: strings.Repeat("z", 1000),
			max:  150,
		},
		{
			name: "sentence heavy",
			text: strings.Repeat("This is a sentence. And another one follows! Is it long enough? ", 20),
			max:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, err := ChunkText(tt.text, tt.max)
			require.NoError(t, err)
			require.NotEmpty(t, chunks)
			for i, c := range chunks {
				assert.LessOrEqual(t, utf8.RuneCountInString(c), tt.max, "chunk %d over limit", i)
				assert.NotEmpty(t, strings.TrimSpace(c), "chunk %d is blank", i)
			}
		})
	}
}

func TestSplitIntoParagraphs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple double newline",
			text: "First.\n\nSecond.",
			want: []string{"First.", "Second."},
		},
		{
			name: "whitespace between newlines",
			text: "First.\n  \t\nSecond.",
			want: []string{"First.", "Second."},
		},
		{
			name: "many blank lines",
			text: "First.\n\n\n\n\nSecond.",
			want: []string{"First.", "Second."},
		},
		{
			name: "single newline is not a boundary",
			text: "First line.\nSecond line.",
			want: []string{"First line.\nSecond line."},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "only blank lines",
			text: "\n\n  \n\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitIntoParagraphs(tt.text))
		})
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple sentences",
			text: "First one. Second one! Third one?",
			want: []string{"First one.", "Second one!", "Third one?"},
		},
		{
			name: "no terminal punctuation",
			text: "just a fragment without an ending",
			want: []string{"just a fragment without an ending"},
		},
		{
			name: "decimal number not split",
			text: "Pi is 3.14 roughly. Euler is 2.71 roughly.",
			want: []string{"Pi is 3.14 roughly.", "Euler is 2.71 roughly."},
		},
		{
			name: "ellipsis run kept together",
			text: "Wait... Really?",
			want: []string{"Wait...", "Really?"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSentences(tt.text))
		})
	}
}

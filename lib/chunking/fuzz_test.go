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
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzChunkText(f *testing.F) {
	f.Add("Hello, world!", 100)
	f.Add("", 100)
	f.Add("Прва реченица. Друга реченица.", 100)
	f.Add(strings.Repeat("x", 1000), 100)
	f.Add("Para one.\n\nPara two.\n\nPara three.", 150)
	f.Add(strings.Repeat("A sentence here. ", 50), 100)
	f.Add("a\n\n"+strings.Repeat("b", 500)+"\n\nc", 120)

	f.Fuzz(func(t *testing.T, s string, maxChunkSize int) {
		if !utf8.ValidString(s) {
			return
		}

		chunks, err := ChunkText(s, maxChunkSize)
		if err != nil {
			if !errors.Is(err, ErrChunkSizeTooSmall) {
				t.Fatalf("unexpected error: %v", err)
			}
			if maxChunkSize >= MinChunkSize {
				t.Fatalf("size error for valid maxChunkSize %d", maxChunkSize)
			}
			return
		}

		if strings.TrimSpace(s) == "" {
			if len(chunks) != 0 {
				t.Fatalf("blank input produced %d chunks", len(chunks))
			}
			return
		}

		if len(chunks) == 0 {
			t.Fatal("non-blank input produced no chunks")
		}

		for i, c := range chunks {
			if utf8.RuneCountInString(c) > maxChunkSize {
				t.Fatalf("chunk %d has %d runes, limit %d",
					i, utf8.RuneCountInString(c), maxChunkSize)
			}
			if !utf8.ValidString(c) {
				t.Fatalf("chunk %d is not valid UTF-8: %q", i, c)
			}
			if strings.TrimSpace(c) == "" {
				t.Fatalf("chunk %d is blank", i)
			}
		}
	})
}

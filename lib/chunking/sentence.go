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
	"unicode"
	"unicode/utf8"
)

// isSentenceTerminal reports whether r ends a sentence.
func isSentenceTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// SplitSentences splits text into sentences. A boundary is sentence-
// terminal punctuation (., !, ?, or a run of them) followed by
// whitespace; the punctuation stays with the preceding sentence and the
// whitespace run is consumed. Text without any boundary is returned as a
// single sentence. No abbreviation handling: "Dr. Smith" splits after
// "Dr." — acceptable here because sentence splitting is only a fallback
// for paragraphs that already exceed the chunk size limit.
func SplitSentences(text string) []string {
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0

	for i := 0; i < len(text); {
		r, w := utf8.DecodeRuneInString(text[i:])
		if !isSentenceTerminal(r) {
			i += w
			continue
		}

		// Consume the run of terminal punctuation.
		j := i + w
		for j < len(text) {
			r2, w2 := utf8.DecodeRuneInString(text[j:])
			if !isSentenceTerminal(r2) {
				break
			}
			j += w2
		}

		// A boundary needs trailing whitespace; punctuation at end of
		// text or mid-token (e.g. "3.14") is not a boundary.
		r2, w2 := utf8.DecodeRuneInString(text[j:])
		if j >= len(text) || !unicode.IsSpace(r2) {
			i = j
			continue
		}

		sentences = append(sentences, text[start:j])

		// Consume the whitespace run.
		for j < len(text) {
			r2, w2 = utf8.DecodeRuneInString(text[j:])
			if !unicode.IsSpace(r2) {
				break
			}
			j += w2
		}
		start = j
		i = j
	}

	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}

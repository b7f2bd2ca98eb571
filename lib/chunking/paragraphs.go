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
	"regexp"
	"strings"
)

// paragraphBoundary matches one or more blank lines: a newline, optional
// whitespace (which may include further newlines), and at least one more
// newline. Runs of 2+ newlines with interspersed whitespace collapse into
// a single boundary.
var paragraphBoundary = regexp.MustCompile(`\n\s*\n+`)

// SplitIntoParagraphs splits text on blank-line boundaries into an ordered
// sequence of non-empty paragraphs. Each paragraph is stripped of leading
// and trailing whitespace; paragraphs that are empty after stripping are
// discarded. Empty or whitespace-only text returns nil; text without
// blank lines returns the stripped text as the sole element.
func SplitIntoParagraphs(text string) []string {
	if text == "" {
		return nil
	}

	parts := paragraphBoundary.Split(text, -1)
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	if len(paragraphs) == 0 {
		return nil
	}
	return paragraphs
}

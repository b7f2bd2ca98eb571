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

// Package translit converts Cyrillic text to Latin script for the
// languages the annotation models are trained on in Latin form.
// Supported language codes: sr (Serbian), me (Montenegrin),
// mk (Macedonian), ru (Russian), uk (Ukrainian), kk (Kazakh),
// bg (Bulgarian).
//
// Text already in Latin script is preserved; mixed Cyrillic/Latin input
// is supported. Characters outside the language's Cyrillic alphabet
// (digits, punctuation, other scripts) pass through unchanged.
//
// All functions are safe for concurrent use by multiple goroutines.
package translit

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrUnsupportedLanguage is returned for a language code without a
// conversion table.
var ErrUnsupportedLanguage = errors.New("unsupported transliteration language")

// DefaultLanguage is the language assumed when none is configured.
const DefaultLanguage = "sr"

// Supported returns the supported language codes in sorted order.
func Supported() []string {
	codes := make([]string, 0, len(tables))
	for code := range tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// IsSupported reports whether lang has a conversion table.
func IsSupported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// ToLatin converts Cyrillic text to Latin script using the table for
// lang. Returns ErrUnsupportedLanguage for an unknown code.
//
// Digraph case follows context: an uppercase Cyrillic letter whose Latin
// form is a digraph is rendered all-uppercase when the surrounding
// letters are uppercase (ЉУБА → LJUBA) and title-case otherwise
// (Љуба → Ljuba).
func ToLatin(text, lang string) (string, error) {
	table, ok := tables[lang]
	if !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)",
			ErrUnsupportedLanguage, lang, strings.Join(Supported(), ", "))
	}
	if text == "" {
		return "", nil
	}

	var b strings.Builder
	b.Grow(len(text))

	prevUpper := false
	for i, r := range text {
		lat, mapped := table[r]
		if !mapped {
			b.WriteString(string(r))
			prevUpper = unicode.IsUpper(r)
			continue
		}

		if utf8.RuneCountInString(lat) > 1 && unicode.IsUpper(r) && upperContext(text, i, prevUpper) {
			lat = strings.ToUpper(lat)
		}
		b.WriteString(lat)
		prevUpper = unicode.IsUpper(r)
	}

	return b.String(), nil
}

// ContainsCyrillic reports whether s contains at least one rune in the
// Cyrillic Unicode range. Used to decide whether transliteration is
// worthwhile at all.
func ContainsCyrillic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Cyrillic, r) {
			return true
		}
	}
	return false
}

// upperContext reports whether the rune at byte offset i sits in an
// all-uppercase run: the following letter is uppercase, or there is no
// following letter and the preceding one was uppercase.
func upperContext(text string, i int, prevUpper bool) bool {
	_, w := utf8.DecodeRuneInString(text[i:])
	for j := i + w; j < len(text); {
		r, rw := utf8.DecodeRuneInString(text[j:])
		if unicode.IsLetter(r) {
			return unicode.IsUpper(r)
		}
		if unicode.IsSpace(r) {
			break
		}
		j += rw
	}
	return prevUpper
}

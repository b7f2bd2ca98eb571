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

// Package pattern provides a rule-based annotator recognizing entities
// with fixed surface forms: email addresses, URLs, dates, monetary
// amounts, and phone numbers. It exists so the service runs end to end
// without an external model, and so tests have a deterministic real
// implementation of the ner.Annotator capability.
//
// Statistical entity types (person, organization, location) are out of
// reach for pattern matching and are deliberately not attempted.
package pattern

import (
	"cmp"
	"context"
	"regexp"
	"slices"

	"github.com/antflydb/marker/lib/ner"
	"github.com/antflydb/marker/lib/render"
	"go.uber.org/zap"
)

// Ensure Annotator implements the capability interface.
var _ ner.Annotator = (*Annotator)(nil)

// Compiled regexes per entity label. Order matters: more specific
// patterns (URL, Email) run first so they win overlap resolution ties
// against generic ones (bare numbers in dates and amounts).
var (
	// URL: http or https prefixed, restricted to RFC 3986 characters
	reURL = regexp.MustCompile(`https?://[A-Za-z0-9\-._~:/?#\[\]@!$&'()*+,;=%]+`)

	// Email: standard pattern
	reEmail = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// Date: ISO 8601 (2006-01-02)
	reDateISO = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	// Date: day-first or month-first with slashes (2/1/2006, 02/01/06)
	reDateSlash = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)
	// Date: month name forms (January 2, 2006 / 2 January 2006)
	reDateMonth = regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s\d{1,2},?\s\d{4}\b`)
	reDateDay   = regexp.MustCompile(`\b\d{1,2}\s(?:January|February|March|April|May|June|July|August|September|October|November|December)\s\d{4}\b`)

	// Money: currency symbol prefixed ($1,200.50) or code suffixed (300 EUR)
	reMoneySym  = regexp.MustCompile(`[$€£]\s?\d+(?:[.,]\d+)*`)
	reMoneyCode = regexp.MustCompile(`\b\d+(?:[.,]\d+)*\s?(?:USD|EUR|GBP|RSD|CHF)\b`)

	// Phone: international format, + and country code then digit groups
	rePhone = regexp.MustCompile(`\+\d{1,3}(?:[ \-/]?\d{2,4}){2,4}`)
)

// maxEntities caps the number of entities returned per call.
const maxEntities = 10_000

// Annotator recognizes pattern-matchable entities and renders them with
// the standard page renderer. Safe for concurrent use.
type Annotator struct {
	logger *zap.Logger
}

// NewAnnotator creates a pattern annotator. A nil logger disables logging.
func NewAnnotator(logger *zap.Logger) *Annotator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Annotator{logger: logger}
}

// Annotate extracts pattern entities from text and renders the markup.
// The error result is always nil; it exists to satisfy the capability
// contract shared with model-backed annotators.
func (a *Annotator) Annotate(ctx context.Context, text string) (*ner.Annotation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entities := recognize(text)
	a.logger.Debug("Pattern annotation completed",
		zap.Int("text_length", len(text)),
		zap.Int("num_entities", len(entities)))

	return &ner.Annotation{
		Entities: entities,
		HTML:     render.Page(text, entities, render.PageOptions{}),
	}, nil
}

// Close releases resources. The pattern annotator holds none.
func (a *Annotator) Close() error { return nil }

// recognize runs all patterns and resolves overlaps.
func recognize(s string) []ner.Entity {
	const minCap = 8
	all := make([]ner.Entity, 0, len(s)/200+minCap)

	all = appendMatches(all, s, reURL, "URL")
	all = appendMatches(all, s, reEmail, "EMAIL")
	all = appendMatches(all, s, reDateISO, "DATE")
	all = appendMatches(all, s, reDateSlash, "DATE")
	all = appendMatches(all, s, reDateMonth, "DATE")
	all = appendMatches(all, s, reDateDay, "DATE")
	all = appendMatches(all, s, reMoneySym, "MONEY")
	all = appendMatches(all, s, reMoneyCode, "MONEY")
	all = appendMatches(all, s, rePhone, "PHONE")

	if len(all) == 0 {
		return nil
	}
	return resolveOverlaps(all)
}

// appendMatches appends every match of re as an entity labeled label.
func appendMatches(all []ner.Entity, s string, re *regexp.Regexp, label string) []ner.Entity {
	for _, m := range re.FindAllStringIndex(s, -1) {
		if len(all) >= maxEntities {
			break
		}
		all = append(all, ner.Entity{
			Text:  s[m[0]:m[1]],
			Label: label,
			Start: m[0],
			End:   m[1],
			Score: 1.0,
		})
	}
	return all
}

// resolveOverlaps removes overlapping entities. The longer (more
// specific) match wins; if equal length, the earlier-registered pattern
// wins. Returns entities sorted by Start offset.
func resolveOverlaps(entities []ner.Entity) []ner.Entity {
	if len(entities) <= 1 {
		return entities
	}

	// Stable sort by start offset, then length descending, so ties keep
	// pattern registration order.
	slices.SortStableFunc(entities, func(a, b ner.Entity) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(b.End-b.Start, a.End-a.Start)
	})

	result := entities[:0]
	lastEnd := -1
	for _, e := range entities {
		if e.Start < lastEnd {
			continue
		}
		result = append(result, e)
		lastEnd = e.End
	}
	return result
}

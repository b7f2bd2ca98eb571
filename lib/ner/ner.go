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

// Package ner defines the entity data model and the Annotator capability
// consumed by the chunked processing pipeline. The pipeline treats the
// annotator as an opaque dependency: any implementation that extracts
// entities from a text and renders them as a self-contained HTML fragment
// can be plugged in, including wrappers around external model servers.
package ner

import "context"

// Entity represents a named entity extracted from text.
//
// Offsets are byte offsets into the annotated text and satisfy the
// invariant text[e.Start:e.End] == e.Text. When the annotated text is one
// chunk of a larger document, offsets are chunk-local, not document
// global.
type Entity struct {
	// Text is the entity text (e.g., "Nikola Tesla")
	Text string `json:"text"`
	// Label is the entity type (e.g., "PER", "ORG", "LOC", "DATE")
	Label string `json:"label"`
	// Start is the byte offset where the entity begins
	Start int `json:"start"`
	// End is the byte offset where the entity ends (exclusive)
	End int `json:"end"`
	// Score is the confidence score (0.0 to 1.0)
	Score float32 `json:"score"`
	// KBID is the knowledge-base identity the entity was linked to
	// (a Wikidata Q-ID such as "Q9036"), or empty if unlinked
	KBID string `json:"kb_id,omitempty"`
}

// Annotation is the result of annotating one text: the extracted entities
// and a self-contained HTML fragment visualizing them.
type Annotation struct {
	// Entities found in the text, sorted by Start offset
	Entities []Entity `json:"entities"`
	// HTML is a full-page fragment with the entities highlighted
	HTML string `json:"html"`
}

// Annotator is the external annotation capability: a single synchronous
// operation turning text into entities plus renderable markup.
type Annotator interface {
	// Annotate extracts entities from text and renders the markup.
	// The call is synchronous and may be expensive for large texts;
	// callers bound per-call cost by chunking the input first.
	Annotate(ctx context.Context, text string) (*Annotation, error)

	// Close releases any resources held by the annotator.
	Close() error
}

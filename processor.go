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

// Package marker orchestrates chunked entity annotation: large input
// text is split into size-bounded chunks, each chunk is annotated
// independently by an injected ner.Annotator, and the per-chunk HTML
// visualizations are merged into one document with visible section
// breaks.
//
// Chunks are annotated strictly in source order, one at a time. There is
// no cancellation at this layer beyond the context check between chunks;
// callers abort by cancelling the context before the next annotator
// call.
package marker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/antflydb/marker/lib/chunking"
	"github.com/antflydb/marker/lib/ner"
	"github.com/antflydb/marker/lib/render"
	"github.com/antflydb/marker/lib/translit"
	"go.uber.org/zap"
)

var (
	// ErrNilAnnotator is returned when no annotator was supplied.
	// Configuration error: raised before any chunking is done.
	ErrNilAnnotator = errors.New("annotator cannot be nil")

	// ErrEmptyText is returned for empty or whitespace-only input.
	ErrEmptyText = errors.New("text cannot be empty")
)

// DefaultTitle is the document title used when none is configured.
const DefaultTitle = "Chunked NER Output"

// ChunkEntity is an entity tagged with the chunk it was found in.
// Offsets stay local to that chunk's text: each chunk is annotated
// independently, so positions are never document-global. Callers that
// need global offsets must accumulate prior chunks' lengths themselves.
type ChunkEntity struct {
	ner.Entity
	// Chunk is the zero-based index of the originating chunk
	Chunk int `json:"chunk"`
}

// Document is the result of processing one text: the merged HTML
// visualization and every entity found, in chunk order.
type Document struct {
	// HTML is the merged self-contained visualization
	HTML string `json:"html"`
	// Entities across all chunks, with chunk-local offsets
	Entities []ChunkEntity `json:"entities"`
	// NumChunks the text was split into
	NumChunks int `json:"num_chunks"`
}

// ProcessorConfig holds configuration for creating a Processor.
type ProcessorConfig struct {
	// MaxChunkSize bounds chunk length in runes (0 = DefaultMaxChunkSize).
	// Values below chunking.MinChunkSize fail at processing time.
	MaxChunkSize int

	// Title for the merged document shell ("" = DefaultTitle)
	Title string

	// Transliterate converts Cyrillic input to Latin before chunking
	Transliterate bool

	// TransliterateLang is the transliteration language code
	// ("" = translit.DefaultLanguage)
	TransliterateLang string

	// Progress, if non-nil, is called before each chunk is annotated
	// with the zero-based chunk index and the total chunk count
	Progress func(current, total int)

	// Logger for logging (nil = no logging)
	Logger *zap.Logger
}

// Processor runs the chunked annotation pipeline against one annotator.
type Processor struct {
	annotator ner.Annotator
	merger    *render.Merger
	cfg       ProcessorConfig
	logger    *zap.Logger
}

// NewProcessor creates a Processor around the given annotator.
// Returns ErrNilAnnotator if annotator is nil.
func NewProcessor(annotator ner.Annotator, cfg ProcessorConfig) (*Processor, error) {
	if annotator == nil {
		return nil, ErrNilAnnotator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxChunkSize == 0 {
		cfg.MaxChunkSize = chunking.DefaultMaxChunkSize
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.TransliterateLang == "" {
		cfg.TransliterateLang = translit.DefaultLanguage
	}

	return &Processor{
		annotator: annotator,
		merger:    render.NewMerger(logger.Named("merger")),
		cfg:       cfg,
		logger:    logger,
	}, nil
}

// Process runs the full pipeline on text: optional transliteration,
// chunking, per-chunk annotation in source order, and merging.
//
// A text that fits in a single chunk returns that chunk's annotation
// HTML unchanged, indistinguishable from unchunked processing. Returns
// ErrEmptyText for empty or whitespace-only input; chunking and
// annotator errors are wrapped and returned as-is.
func (p *Processor) Process(ctx context.Context, text string) (*Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	textRequestOps.Inc()

	if p.cfg.Transliterate {
		converted, err := translit.ToLatin(text, p.cfg.TransliterateLang)
		if err != nil {
			return nil, fmt.Errorf("transliterating input: %w", err)
		}
		text = converted
	}

	chunks, err := chunking.ChunkText(text, p.cfg.MaxChunkSize)
	if err != nil {
		return nil, fmt.Errorf("chunking text: %w", err)
	}
	chunkCreationOps.Add(float64(len(chunks)))

	p.logger.Debug("Text chunked",
		zap.Int("text_length", len(text)),
		zap.Int("max_chunk_size", p.cfg.MaxChunkSize),
		zap.Int("num_chunks", len(chunks)))

	var entities []ChunkEntity
	fragments := make([]string, 0, len(chunks))

	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("annotation aborted before chunk %d: %w", i, err)
		}
		if p.cfg.Progress != nil {
			p.cfg.Progress(i, len(chunks))
		}

		ann, err := p.annotator.Annotate(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("annotating chunk %d of %d: %w", i, len(chunks), err)
		}
		annotateRequestOps.Inc()
		entityExtractionOps.Add(float64(len(ann.Entities)))

		for _, e := range ann.Entities {
			entities = append(entities, ChunkEntity{Entity: e, Chunk: i})
		}
		fragments = append(fragments, render.AddWikidataLinks(ann.HTML, ann.Entities))
	}

	html := ""
	if len(fragments) > 0 {
		if len(fragments) > 1 {
			documentMergeOps.Inc()
		}
		html, err = p.merger.Merge(fragments, p.cfg.Title)
		if err != nil {
			return nil, fmt.Errorf("merging annotated chunks: %w", err)
		}
	}

	p.logger.Info("Processing completed",
		zap.Int("num_chunks", len(chunks)),
		zap.Int("num_entities", len(entities)))

	return &Document{
		HTML:      html,
		Entities:  entities,
		NumChunks: len(chunks),
	}, nil
}

// ProcessTextInChunks is a convenience wrapper constructing a one-shot
// Processor. Returns ErrNilAnnotator if annotator is nil, before any
// chunking is done.
func ProcessTextInChunks(ctx context.Context, annotator ner.Annotator, text string, cfg ProcessorConfig) (*Document, error) {
	p, err := NewProcessor(annotator, cfg)
	if err != nil {
		return nil, err
	}
	return p.Process(ctx, text)
}

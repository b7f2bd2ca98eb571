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

package marker

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/antflydb/marker/lib/chunking"
	"github.com/antflydb/marker/lib/translit"
	"github.com/bytedance/sonic/decoder"
	"github.com/bytedance/sonic/encoder"
	"go.uber.org/zap"
)

// AnnotateRequest is the request body for POST /api/annotate
type AnnotateRequest struct {
	Text string `json:"text"`

	// MaxChunkSize overrides the configured chunk size (0 = server default)
	MaxChunkSize int `json:"max_chunk_size,omitempty"`

	// Title overrides the configured document title
	Title string `json:"title,omitempty"`

	// Transliterate converts Cyrillic input to Latin before chunking
	Transliterate bool `json:"transliterate,omitempty"`

	// Lang is the transliteration language code
	Lang string `json:"lang,omitempty"`
}

// AnnotateResponse is the response body for POST /api/annotate
type AnnotateResponse struct {
	HTML      string        `json:"html"`
	Entities  []ChunkEntity `json:"entities"`
	NumChunks int           `json:"num_chunks"`
}

// LanguagesResponse is the response body for GET /api/languages
type LanguagesResponse struct {
	Languages []string `json:"languages"`
	Default   string   `json:"default"`
}

// handleApiAnnotate handles chunked annotation requests
func (ln *MarkerNode) handleApiAnnotate(w http.ResponseWriter, r *http.Request) {
	defer func() { _ = r.Body.Close() }()

	var req AnnotateRequest
	if err := decoder.NewStreamDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("decoding request: %v", err), http.StatusBadRequest)
		return
	}

	// Validate the request
	if req.Text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	maxChunkSize := req.MaxChunkSize
	if maxChunkSize == 0 {
		maxChunkSize = ln.config.MaxChunkSize
	}
	title := req.Title
	if title == "" {
		title = ln.config.Title
	}
	lang := req.Lang
	if lang == "" {
		lang = ln.config.TransliterateLang
	}

	doc, err := ProcessTextInChunks(r.Context(), ln.annotator, req.Text, ProcessorConfig{
		MaxChunkSize:      maxChunkSize,
		Title:             title,
		Transliterate:     req.Transliterate || ln.config.Transliterate,
		TransliterateLang: lang,
		Logger:            ln.logger,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyText):
			http.Error(w, "text is required", http.StatusBadRequest)
		case errors.Is(err, chunking.ErrChunkSizeTooSmall):
			http.Error(w, fmt.Sprintf("invalid max_chunk_size: %v", err), http.StatusBadRequest)
		case errors.Is(err, translit.ErrUnsupportedLanguage):
			http.Error(w, fmt.Sprintf("invalid lang: %v", err), http.StatusBadRequest)
		default:
			ln.logger.Error("annotation failed", zap.Error(err))
			http.Error(w, fmt.Sprintf("annotating text: %v", err), http.StatusInternalServerError)
		}
		return
	}

	resp := AnnotateResponse{
		HTML:      doc.HTML,
		Entities:  doc.Entities,
		NumChunks: doc.NumChunks,
	}

	// Return response
	w.Header().Set("Content-Type", "application/json")
	if err := encoder.NewStreamEncoder(w).Encode(resp); err != nil {
		ln.logger.Error("encoding response", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// handleApiLanguages lists supported transliteration languages
func (ln *MarkerNode) handleApiLanguages(w http.ResponseWriter, r *http.Request) {
	resp := LanguagesResponse{
		Languages: translit.Supported(),
		Default:   translit.DefaultLanguage,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := encoder.NewStreamEncoder(w).Encode(resp); err != nil {
		ln.logger.Error("encoding response", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

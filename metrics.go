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
	"github.com/prometheus/client_golang/prometheus"
)

var (
	textRequestOps = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "marker_text_requests_total",
		Help: "The total number of texts submitted for processing",
	})
	chunkCreationOps = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "marker_chunks_created_total",
		Help: "The total number of chunks produced by the chunker",
	})
	annotateRequestOps = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "marker_annotate_requests_total",
		Help: "The total number of chunk annotation calls",
	})
	entityExtractionOps = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "marker_entities_extracted_total",
		Help: "The total number of entities extracted across all chunks",
	})
	documentMergeOps = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "marker_document_merges_total",
		Help: "The total number of multi-chunk document merges",
	})
	annotationCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "marker_annotation_cache_hits_total",
		Help: "The total number of annotation cache hits",
	})
	annotationCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "marker_annotation_cache_misses_total",
		Help: "The total number of annotation cache misses",
	})
)

func init() {
	prometheus.MustRegister(textRequestOps)
	prometheus.MustRegister(chunkCreationOps)
	prometheus.MustRegister(annotateRequestOps)
	prometheus.MustRegister(entityExtractionOps)
	prometheus.MustRegister(documentMergeOps)
	prometheus.MustRegister(annotationCacheHits)
	prometheus.MustRegister(annotationCacheMisses)
}

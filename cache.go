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
	"context"
	"encoding/binary"
	"sync/atomic"
	"time"

	"github.com/antflydb/marker/lib/ner"
	"github.com/cespare/xxhash/v2"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// AnnotationCacheTTL is the default TTL for cached annotations
const AnnotationCacheTTL = 2 * time.Minute

// CachedAnnotator wraps an annotator with caching support
type CachedAnnotator struct {
	annotator ner.Annotator
	name      string
	cache     *ttlcache.Cache[string, *ner.Annotation]
	sfGroup   *singleflight.Group
	logger    *zap.Logger
	cancel    context.CancelFunc

	// Metrics
	hits   atomic.Uint64
	misses atomic.Uint64
	sfHits atomic.Uint64
}

var _ ner.Annotator = (*CachedAnnotator)(nil)

// NewCachedAnnotator wraps an annotator with a TTL cache
func NewCachedAnnotator(annotator ner.Annotator, name string, ttl time.Duration, logger *zap.Logger) *CachedAnnotator {
	if ttl <= 0 {
		ttl = AnnotationCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cache := ttlcache.New(
		ttlcache.WithTTL[string, *ner.Annotation](ttl),
	)
	go cache.Start()

	ctx, cancel := context.WithCancel(context.Background())
	ca := &CachedAnnotator{
		annotator: annotator,
		name:      name,
		cache:     cache,
		sfGroup:   &singleflight.Group{},
		logger:    logger,
		cancel:    cancel,
	}

	// Log cache stats periodically
	go ca.logStats(ctx)

	return ca
}

// Annotate returns the cached annotation for text when available,
// otherwise delegates to the underlying annotator. Concurrent identical
// requests are deduplicated with singleflight.
func (c *CachedAnnotator) Annotate(ctx context.Context, text string) (*ner.Annotation, error) {
	key := c.cacheKey(text)

	if item := c.cache.Get(key); item != nil {
		c.hits.Add(1)
		annotationCacheHits.Inc()
		c.logger.Debug("Annotation cache hit",
			zap.String("annotator", c.name),
			zap.Int("text_length", len(text)))
		return item.Value(), nil
	}

	result, err, shared := c.sfGroup.Do(key, func() (any, error) {
		c.misses.Add(1)
		annotationCacheMisses.Inc()

		start := time.Now()
		ann, err := c.annotator.Annotate(ctx, text)
		if err != nil {
			return nil, err
		}

		c.cache.Set(key, ann, ttlcache.DefaultTTL)

		c.logger.Debug("Annotation completed and cached",
			zap.String("annotator", c.name),
			zap.Int("text_length", len(text)),
			zap.Int("num_entities", len(ann.Entities)),
			zap.Duration("duration", time.Since(start)))

		return ann, nil
	})

	if err != nil {
		return nil, err
	}

	if shared {
		c.sfHits.Add(1)
		c.logger.Debug("Singleflight hit for annotation request",
			zap.String("annotator", c.name))
	}

	return result.(*ner.Annotation), nil
}

// cacheKey generates a unique cache key from annotator name + text
func (c *CachedAnnotator) cacheKey(text string) string {
	h := xxhash.New()
	_, _ = h.WriteString(c.name)
	_, _ = h.WriteString("|")
	_, _ = h.WriteString(text)

	// Convert uint64 hash to string key
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], h.Sum64())
	return string(buf[:])
}

// Close stops the cache and closes the underlying annotator
func (c *CachedAnnotator) Close() error {
	c.cancel()
	c.cache.Stop()
	return c.annotator.Close()
}

// Stats returns cache statistics for this annotator
func (c *CachedAnnotator) Stats() AnnotationCacheStats {
	return AnnotationCacheStats{
		Annotator:        c.name,
		Hits:             c.hits.Load(),
		Misses:           c.misses.Load(),
		SingleflightHits: c.sfHits.Load(),
		Items:            c.cache.Len(),
	}
}

// AnnotationCacheStats holds cache statistics for an annotator
type AnnotationCacheStats struct {
	Annotator        string `json:"annotator"`
	Hits             uint64 `json:"hits"`
	Misses           uint64 `json:"misses"`
	SingleflightHits uint64 `json:"singleflight_hits"`
	Items            int    `json:"items"`
}

// logStats logs cache statistics periodically
func (c *CachedAnnotator) logStats(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			hits := c.hits.Load()
			misses := c.misses.Load()
			total := hits + misses
			if total == 0 {
				continue
			}
			c.logger.Info("Annotation cache stats",
				zap.Uint64("hits", hits),
				zap.Uint64("misses", misses),
				zap.Float64("hit_rate_pct", float64(hits)/float64(total)*100),
				zap.Int("items", c.cache.Len()))
		}
	}
}

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
	"net/http"
	"net/url"
	"time"

	"github.com/antflydb/marker/lib/ner"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MarkerNode serves the annotation API around one annotator
type MarkerNode struct {
	logger *zap.Logger

	annotator ner.Annotator
	cached    *CachedAnnotator
	config    Config
}

// corsMiddleware adds permissive CORS headers for the Marker API
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, Accept, Origin")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// DefaultShutdownTimeout is the default time to wait for graceful shutdown
const DefaultShutdownTimeout = 30 * time.Second

// RunAsMarker runs the annotation API server until ctx is cancelled.
// If readyC is non-nil, it will be closed when the server is ready to
// accept requests.
func RunAsMarker(ctx context.Context, zl *zap.Logger, config Config, annotator ner.Annotator, readyC chan struct{}) {
	zl = zl.Named("marker")
	zl.Info("Starting marker node", zap.Any("config", config))

	u, err := url.Parse(config.ApiUrl)
	if err != nil {
		zl.Fatal("Invalid API URL", zap.String("url", config.ApiUrl), zap.Error(err))
	}

	if annotator == nil {
		zl.Fatal("No annotator configured")
	}

	node := &MarkerNode{
		logger:    zl,
		annotator: annotator,
		config:    config,
	}

	// Wrap the annotator in a TTL cache unless caching is disabled
	if config.CacheTTL != "" && config.CacheTTL != "0" {
		ttl, err := time.ParseDuration(config.CacheTTL)
		if err != nil {
			zl.Fatal("Invalid cache_ttl duration", zap.String("cache_ttl", config.CacheTTL), zap.Error(err))
		}
		node.cached = NewCachedAnnotator(annotator, "default", ttl, zl.Named("annotation-cache"))
		node.annotator = node.cached
		defer func() { _ = node.cached.Close() }()
		zl.Info("Annotation cache enabled", zap.Duration("ttl", ttl))
	} else {
		defer func() { _ = annotator.Close() }()
		zl.Info("Annotation cache disabled")
	}

	rootMux := http.NewServeMux()

	// Health endpoints (outside /api prefix for k8s compatibility)
	rootMux.HandleFunc("GET /healthz", node.handleHealthz)
	rootMux.HandleFunc("GET /readyz", node.handleReadyz)
	rootMux.Handle("GET /metrics", promhttp.Handler())

	rootMux.HandleFunc("POST /api/annotate", node.handleApiAnnotate)
	rootMux.HandleFunc("GET /api/languages", node.handleApiLanguages)

	// Embedded web UI at the root path
	addDashboardRoutes(rootMux)

	srv := &http.Server{
		Addr:        u.Host,
		Handler:     corsMiddleware(rootMux),
		ReadTimeout: 540 * time.Second,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		zl.Info("Marker's api server starting", zap.String("address", config.ApiUrl))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Signal readiness after server starts
	if readyC != nil {
		close(readyC)
	}

	// Wait for context cancellation or server error
	select {
	case err := <-serverErr:
		if err != nil {
			zl.Fatal("HTTP server error", zap.Error(err))
		}
	case <-ctx.Done():
		zl.Info("Shutdown signal received, starting graceful shutdown...")
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer shutdownCancel()

	// Stop accepting new connections
	srv.SetKeepAlivesEnabled(false)

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Warn("Graceful shutdown failed, forcing close",
			zap.Error(err),
			zap.Duration("timeout", DefaultShutdownTimeout))
		_ = srv.Close()
	} else {
		zl.Info("Graceful shutdown completed successfully")
	}

	zl.Info("HTTP server stopped")
}

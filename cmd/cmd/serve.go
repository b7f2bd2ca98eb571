// Copyright 2025 Antfly, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/antflydb/marker"
	"github.com/antflydb/marker/lib/pattern"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the marker annotation server",
	Long:  `Start the marker server exposing the chunked annotation API.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Serve command flags
	serveCmd.Flags().String("api-url", "http://localhost:4600", "address the API server listens on")
	serveCmd.Flags().String("cache-ttl", "2m", "annotation cache TTL (0 disables caching)")
	mustBindPFlag("api_url", serveCmd.Flags().Lookup("api-url"))
	mustBindPFlag("cache_ttl", serveCmd.Flags().Lookup("cache-ttl"))
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Create logger from config
	logger := newLogger()
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("Running as marker")

	// Build marker config from viper/env
	cfg := marker.Config{
		ApiUrl:            viper.GetString("api_url"),
		MaxChunkSize:      viper.GetInt("max_chunk_size"),
		Title:             viper.GetString("title"),
		Transliterate:     viper.GetBool("transliterate"),
		TransliterateLang: viper.GetString("transliterate_lang"),
		CacheTTL:          viper.GetString("cache_ttl"),
	}
	if cfg.Title == "" {
		cfg.Title = marker.DefaultTitle
	}

	annotator := pattern.NewAnnotator(logger.Named("annotator"))

	marker.RunAsMarker(ctx, logger, cfg, annotator, nil)
	return nil
}

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

// Package cli provides shared helpers for the marker command line:
// output artifact persistence, input file loading, and the built-in
// sample text. The processing core never touches the filesystem; these
// helpers are the calling layer that does.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const (
	// outputPrefix and outputExt form the artifact naming scheme
	// ner_output_<YYYYMMDD_HHMMSS>.html.
	outputPrefix = "ner_output_"
	outputExt    = ".html"

	// outputTimestamp is the artifact timestamp layout.
	outputTimestamp = "20060102_150405"

	// DefaultMaxFileSize caps input file loading at 10 MiB.
	DefaultMaxFileSize = 10 << 20
)

// SaveOutput writes html to a timestamped artifact in dir, creating the
// directory if needed, and returns the file path.
func SaveOutput(dir, html string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	name := outputPrefix + time.Now().Format(outputTimestamp) + outputExt
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("writing output artifact: %w", err)
	}
	return path, nil
}

// LatestOutput returns the path of the most recent artifact in dir, or
// an error if none exists. Artifacts sort lexically by their embedded
// timestamp, so the last glob match is the newest.
func LatestOutput(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, outputPrefix+"*"+outputExt))
	if err != nil {
		return "", fmt.Errorf("listing output artifacts: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no output artifacts in %s", dir)
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}

// ReadInputFile reads a text file, rejecting files larger than maxSize
// bytes before reading (maxSize <= 0 means DefaultMaxFileSize). The size
// check keeps a mistyped path to a huge binary from being slurped into
// memory.
func ReadInputFile(path string, maxSize int64) (string, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reading input file: %w", err)
	}
	if info.Size() > maxSize {
		return "", fmt.Errorf("input file %s is %d bytes, exceeds limit of %d",
			path, info.Size(), maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input file: %w", err)
	}
	return string(data), nil
}

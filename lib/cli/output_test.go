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

package cli

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var outputName = regexp.MustCompile(`^ner_output_\d{8}_\d{6}\.html$`)

func TestSaveOutput(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveOutput(dir, "<html>content</html>")
	require.NoError(t, err)

	assert.Regexp(t, outputName, filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>content</html>", string(data))
}

func TestSaveOutputCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	path, err := SaveOutput(dir, "x")
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestLatestOutput(t *testing.T) {
	dir := t.TempDir()

	_, err := LatestOutput(dir)
	require.Error(t, err)

	older := filepath.Join(dir, "ner_output_20240101_000000.html")
	newer := filepath.Join(dir, "ner_output_20250101_000000.html")
	require.NoError(t, os.WriteFile(older, []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(newer, []byte("new"), 0o644))

	got, err := LatestOutput(dir)
	require.NoError(t, err)
	assert.Equal(t, newer, got)
}

func TestReadInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello input"), 0o644))

	got, err := ReadInputFile(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello input", got)
}

func TestReadInputFileTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.txt")
	require.NoError(t, os.WriteFile(path, make([]byte, 64), 0o644))

	_, err := ReadInputFile(path, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds limit")
}

func TestReadInputFileMissing(t *testing.T) {
	_, err := ReadInputFile(filepath.Join(t.TempDir(), "nope.txt"), 0)
	require.Error(t, err)
}

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

// Command marker runs the Marker chunked NER annotation tool.
//
// Marker splits large texts into size-bounded chunks, annotates each
// chunk with named entities, and merges the per-chunk HTML
// visualizations into a single document.
//
// Usage:
//
//	marker annotate <file>         # Annotate a text file
//	marker annotate --sample       # Annotate the built-in sample text
//	marker serve                   # Start the annotation API server
//	marker languages               # List transliteration languages
package main

import (
	"github.com/antflydb/marker/cmd/cmd"
)

// https://goreleaser.com/cookbooks/using-main.version/
//
// By default, GoReleaser will set the following 3 ldflags:
//
// main.version: Current Git tag (the v prefix is stripped) or the name of the snapshot, if you're using the --snapshot flag
var version = "dev"

func main() {
	cmd.Version = version
	cmd.Execute()
}

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

// Config holds the serve-mode configuration
type Config struct {
	// ApiUrl is the address the API server listens on
	ApiUrl string `json:"api_url,omitempty" mapstructure:"api_url"`

	// MaxChunkSize bounds chunk length in runes
	MaxChunkSize int `json:"max_chunk_size,omitempty" mapstructure:"max_chunk_size"`

	// Title for merged output documents
	Title string `json:"title,omitempty" mapstructure:"title"`

	// OutputDir is where annotate-command output files are written
	OutputDir string `json:"output_dir,omitempty" mapstructure:"output_dir"`

	// Transliterate converts Cyrillic input to Latin before chunking
	Transliterate bool `json:"transliterate,omitempty" mapstructure:"transliterate"`

	// TransliterateLang is the transliteration language code
	TransliterateLang string `json:"transliterate_lang,omitempty" mapstructure:"transliterate_lang"`

	// CacheTTL is the annotation cache TTL as a duration string
	// ("" or "0" disables caching)
	CacheTTL string `json:"cache_ttl,omitempty" mapstructure:"cache_ttl"`
}

// DefaultConfig returns the default serve-mode configuration
func DefaultConfig() Config {
	return Config{
		ApiUrl:            "http://localhost:4600",
		MaxChunkSize:      0, // chunking.DefaultMaxChunkSize
		Title:             DefaultTitle,
		OutputDir:         ".",
		Transliterate:     false,
		TransliterateLang: "sr",
		CacheTTL:          "2m",
	}
}

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
	"fmt"

	"github.com/antflydb/marker/lib/translit"
	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported transliteration languages",
	Long: `List the Cyrillic-to-Latin transliteration languages marker supports.

The language code is passed via --lang when annotating.

Examples:
  # List supported languages
  marker languages

  # Use one of them
  marker annotate --transliterate --lang ru document.txt`,
	RunE: runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(cmd *cobra.Command, args []string) error {
	for _, code := range translit.Supported() {
		if code == translit.DefaultLanguage {
			fmt.Printf("%s (default)\n", code)
			continue
		}
		fmt.Println(code)
	}
	return nil
}

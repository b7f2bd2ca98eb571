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
	"io"
	"os"

	"github.com/antflydb/marker"
	"github.com/antflydb/marker/lib/cli"
	"github.com/antflydb/marker/lib/pattern"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate [file]",
	Short: "Annotate a text file with named entities",
	Long: `Annotate a text file with named entities and write the merged
HTML visualization to the output directory.

Large texts are split into chunks, each chunk is annotated
independently, and the per-chunk results are merged with visible
section breaks. Cyrillic input can be transliterated to Latin first.

Examples:
  # Annotate a file
  marker annotate document.txt

  # Annotate the built-in sample text
  marker annotate --sample

  # Annotate from stdin
  cat document.txt | marker annotate -

  # Transliterate Serbian Cyrillic before annotating
  marker annotate --transliterate --lang sr document.txt

  # Write the HTML to stdout instead of a file
  marker annotate --stdout document.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnnotate,
}

func init() {
	rootCmd.AddCommand(annotateCmd)

	annotateCmd.Flags().Bool("sample", false, "Annotate the built-in sample text")
	annotateCmd.Flags().Bool("stdout", false, "Write the HTML to stdout instead of a file")
	annotateCmd.Flags().String("output-dir", ".", "Directory for output files")
	annotateCmd.Flags().String("title", marker.DefaultTitle, "Title for the output document")
	mustBindPFlag("output_dir", annotateCmd.Flags().Lookup("output-dir"))
	mustBindPFlag("title", annotateCmd.Flags().Lookup("title"))
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	sample, _ := cmd.Flags().GetBool("sample")
	toStdout, _ := cmd.Flags().GetBool("stdout")

	var text string
	switch {
	case sample:
		text = cli.SampleText
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(io.LimitReader(os.Stdin, cli.DefaultMaxFileSize))
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	case len(args) == 1:
		var err error
		text, err = cli.ReadInputFile(args[0], cli.DefaultMaxFileSize)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	default:
		return fmt.Errorf("a file argument, \"-\" for stdin, or --sample is required")
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	annotator := pattern.NewAnnotator(logger.Named("annotator"))
	defer func() { _ = annotator.Close() }()

	doc, err := marker.ProcessTextInChunks(cmd.Context(), annotator, text, marker.ProcessorConfig{
		MaxChunkSize:      viper.GetInt("max_chunk_size"),
		Title:             viper.GetString("title"),
		Transliterate:     viper.GetBool("transliterate"),
		TransliterateLang: viper.GetString("transliterate_lang"),
		Progress: func(current, total int) {
			if total > 1 {
				fmt.Fprintf(os.Stderr, "Processing chunk %d/%d...\n", current+1, total)
			}
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("annotating text: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Found %d entities in %d chunk(s)\n", len(doc.Entities), doc.NumChunks)

	if toStdout {
		fmt.Println(doc.HTML)
		return nil
	}

	path, err := cli.SaveOutput(viper.GetString("output_dir"), doc.HTML)
	if err != nil {
		return fmt.Errorf("saving output: %w", err)
	}
	fmt.Printf("Output written to %s\n", path)
	return nil
}

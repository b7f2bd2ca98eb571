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

// Package render produces and recombines HTML visualizations of annotated
// text. Page renders one text with its entities highlighted as a
// self-contained HTML document; Merger stitches independently rendered
// fragments back into a single document with visible section breaks.
//
// The page structure is displaCy-compatible: entity content lives in a
// <div class="entities"> inside a full HTML shell, with styling in a
// single <style> block. The Merger relies on exactly this structure when
// extracting fragment content.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/antflydb/marker/lib/ner"
)

// labelColors assigns a highlight background per entity label, following
// displaCy's default palette.
var labelColors = map[string]string{
	"ORG":    "#7aecec",
	"PER":    "#aa9cfc",
	"PERSON": "#aa9cfc",
	"LOC":    "#ff9561",
	"GPE":    "#feca74",
	"DATE":   "#bfe1d9",
	"TIME":   "#bfe1d9",
	"MONEY":  "#e4e7d2",
	"EMAIL":  "#9cc9cc",
	"URL":    "#9cc9cc",
	"PHONE":  "#9cc9cc",
	"MISC":   "#dddddd",
}

// defaultColor is used for labels not in labelColors.
const defaultColor = "#dddddd"

// pageCSS is the style block embedded in every rendered page. The merge
// step lifts it from the first fragment into the merged shell.
const pageCSS = `
        .entities { line-height: 2.5; direction: ltr; font-family: sans-serif; }
        mark.entity { padding: 0.45em 0.6em; margin: 0 0.25em; line-height: 1; border-radius: 0.35em; }
        mark.entity span.label { font-size: 0.8em; font-weight: bold; line-height: 1; vertical-align: middle; margin-left: 0.5rem; }
    `

// PageOptions controls rendering of a single page.
type PageOptions struct {
	// Title for the HTML document ("" = "NER Output")
	Title string
}

// Page renders text with its entities highlighted as a self-contained
// HTML document. Entities must be sorted by Start offset and
// non-overlapping, with byte offsets valid for text; entities with
// out-of-range or out-of-order offsets are skipped. All text content is
// HTML-escaped.
func Page(text string, entities []ner.Entity, opts PageOptions) string {
	title := opts.Title
	if title == "" {
		title = "NER Output"
	}

	var body strings.Builder
	pos := 0
	for _, e := range entities {
		if e.Start < pos || e.End > len(text) || e.Start > e.End {
			continue
		}
		body.WriteString(html.EscapeString(text[pos:e.Start]))
		writeMark(&body, text[e.Start:e.End], e.Label)
		pos = e.End
	}
	body.WriteString(html.EscapeString(text[pos:]))

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>%s</title>
    <style>%s</style>
</head>
<body>
    <div class="entities" style="line-height: 2.5; direction: ltr">%s</div>
</body>
</html>
`, html.EscapeString(title), pageCSS, body.String())
}

// writeMark writes one highlighted entity span.
func writeMark(b *strings.Builder, text, label string) {
	color, ok := labelColors[label]
	if !ok {
		color = defaultColor
	}
	fmt.Fprintf(b, `<mark class="entity" style="background: %s;">%s<span class="label">%s</span></mark>`,
		color, html.EscapeString(text), html.EscapeString(label))
}

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

package render

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// ErrNoFragments is returned when Merge is called with no fragments.
var ErrNoFragments = errors.New("no fragments to merge")

// sectionBreak is the visible divider inserted between fragments in a
// merged document; it marks where independently annotated chunks meet.
const sectionBreak = `<div class="section-break" style="margin: 20px 0; padding: 10px; ` +
	`border-top: 2px solid #ddd; border-bottom: 2px solid #ddd; ` +
	`text-align: center; color: #666; font-style: italic;">` +
	`--- Document Section Break ---</div>`

var (
	// stylePattern extracts the style block of a rendered page.
	stylePattern = regexp.MustCompile(`(?s)<style[^>]*>(.*?)</style>`)

	// contentPattern extracts the entity content of a rendered page.
	contentPattern = regexp.MustCompile(`(?s)<div class="entities"[^>]*>(.*?)</div>`)
)

// Merger combines independently rendered HTML fragments into a single
// document. It treats each fragment as an opaque string: fragments are
// never structurally validated, and a fragment that does not match the
// expected page shape is included verbatim with a warning rather than
// rejected, so one odd chunk never loses the whole document.
type Merger struct {
	logger *zap.Logger
}

// NewMerger creates a Merger. A nil logger disables logging.
func NewMerger(logger *zap.Logger) *Merger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Merger{logger: logger}
}

// Merge combines fragments into one HTML document titled title.
//
// A single fragment is returned unchanged, so single-chunk documents are
// indistinguishable from unchunked processing. With multiple fragments,
// the style block of the first fragment is lifted into the merged shell,
// each fragment's entity content is extracted, and a visible section
// break is placed between consecutive fragments (never before the first
// or after the last).
//
// Returns ErrNoFragments if fragments is empty.
func (m *Merger) Merge(fragments []string, title string) (string, error) {
	if len(fragments) == 0 {
		return "", ErrNoFragments
	}
	if len(fragments) == 1 {
		return fragments[0], nil
	}

	// All fragments carry the same style; take it from the first.
	style := ""
	if sm := stylePattern.FindStringSubmatch(fragments[0]); sm != nil {
		style = sm[1]
	}

	var content strings.Builder
	for i, frag := range fragments {
		if i > 0 {
			content.WriteString(sectionBreak)
		}
		if cm := contentPattern.FindStringSubmatch(frag); cm != nil {
			content.WriteString(cm[1])
		} else {
			m.logger.Warn("Fragment does not match expected page structure, including verbatim",
				zap.Int("fragment", i),
				zap.Int("fragment_length", len(frag)))
			content.WriteString(frag)
		}
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>%s</title>
    <style>%s</style>
</head>
<body>
    <div class="entities" style="line-height: 2.5; direction: ltr">
        %s
    </div>
</body>
</html>
`, html.EscapeString(title), style, content.String()), nil
}

// MergeHTMLOutputs merges fragments without logging. Convenience wrapper
// for callers that do not hold a Merger.
func MergeHTMLOutputs(fragments []string, title string) (string, error) {
	return NewMerger(nil).Merge(fragments, title)
}

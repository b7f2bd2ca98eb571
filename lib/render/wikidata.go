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
	"fmt"
	"html"
	"regexp"

	"github.com/antflydb/marker/lib/ner"
)

// wikidataQID matches a Wikidata Q-identifier.
var wikidataQID = regexp.MustCompile(`^Q\d+$`)

// AddWikidataLinks enhances rendered HTML with clickable Wikidata links
// for entities that carry a Q-ID in their KBID field. The entity text
// inside its <mark> is wrapped in a link and a [Q-ID] superscript is
// appended. Entities without a valid Q-ID are left untouched; HTML whose
// structure does not match the rendered page shape passes through
// unchanged.
func AddWikidataLinks(htmlDoc string, entities []ner.Entity) string {
	// Map entity text to Q-ID; later duplicates keep the first linking.
	qids := make(map[string]string)
	for _, e := range entities {
		if wikidataQID.MatchString(e.KBID) {
			if _, seen := qids[e.Text]; !seen {
				qids[e.Text] = e.KBID
			}
		}
	}
	if len(qids) == 0 {
		return htmlDoc
	}

	for text, qid := range qids {
		url := "https://www.wikidata.org/wiki/" + qid
		escaped := regexp.QuoteMeta(html.EscapeString(text))

		// Match the entity text directly after its mark tag so plain
		// body text with the same content is not linked.
		pattern := regexp.MustCompile(`(<mark[^>]*>)(` + escaped + `)`)
		replacement := fmt.Sprintf(
			`${1}<a href="%s" target="_blank" style="color: inherit; text-decoration: underline dotted;">${2}</a>`+
				`<sup style="font-size: 0.7em;"><a href="%s" target="_blank" title="View on Wikidata">[%s]</a></sup>`,
			url, url, qid)

		htmlDoc = pattern.ReplaceAllString(htmlDoc, replacement)
	}

	return htmlDoc
}

// LinkedQIDs returns the distinct Q-IDs carried by entities, in first-seen
// order. Used by callers that surface which knowledge-base identities a
// document was linked to.
func LinkedQIDs(entities []ner.Entity) []string {
	var qids []string
	seen := make(map[string]struct{})
	for _, e := range entities {
		if !wikidataQID.MatchString(e.KBID) {
			continue
		}
		if _, ok := seen[e.KBID]; ok {
			continue
		}
		seen[e.KBID] = struct{}{}
		qids = append(qids, e.KBID)
	}
	return qids
}

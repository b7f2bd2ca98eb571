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

package pattern

import (
	"context"
	"testing"

	"github.com/antflydb/marker/lib/ner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotateLabels(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		label string
	}{
		{
			name:  "email",
			text:  "Contact us at info@example.org today.",
			want:  "info@example.org",
			label: "EMAIL",
		},
		{
			name:  "url",
			text:  "See https://example.com/docs?q=1 for details.",
			want:  "https://example.com/docs?q=1",
			label: "URL",
		},
		{
			name:  "iso date",
			text:  "Released on 2024-03-15 worldwide.",
			want:  "2024-03-15",
			label: "DATE",
		},
		{
			name:  "slash date",
			text:  "Due 15/03/2024 at noon.",
			want:  "15/03/2024",
			label: "DATE",
		},
		{
			name:  "month name date",
			text:  "Signed on March 15, 2024 in Vienna.",
			want:  "March 15, 2024",
			label: "DATE",
		},
		{
			name:  "day first date",
			text:  "Signed on 15 March 2024 in Vienna.",
			want:  "15 March 2024",
			label: "DATE",
		},
		{
			name:  "money symbol",
			text:  "It costs $1,200.50 per unit.",
			want:  "$1,200.50",
			label: "MONEY",
		},
		{
			name:  "money code",
			text:  "A budget of 300 EUR was set.",
			want:  "300 EUR",
			label: "MONEY",
		},
		{
			name:  "phone",
			text:  "Call +381 11 123 4567 anytime.",
			want:  "+381 11 123 4567",
			label: "PHONE",
		},
	}

	a := NewAnnotator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ann, err := a.Annotate(context.Background(), tt.text)
			require.NoError(t, err)
			require.Len(t, ann.Entities, 1)

			e := ann.Entities[0]
			assert.Equal(t, tt.want, e.Text)
			assert.Equal(t, tt.label, e.Label)
			assert.Equal(t, tt.text[e.Start:e.End], e.Text)
		})
	}
}

func TestAnnotateNoEntities(t *testing.T) {
	a := NewAnnotator(nil)
	ann, err := a.Annotate(context.Background(), "Nothing structured in here at all.")
	require.NoError(t, err)
	assert.Empty(t, ann.Entities)
	assert.Contains(t, ann.HTML, "Nothing structured in here at all.")
}

func TestAnnotateOffsetsValid(t *testing.T) {
	text := "Mail info@example.org or visit https://example.com by 2024-01-01, it's $50 or 45 EUR, call +43 660 1234567."
	a := NewAnnotator(nil)
	ann, err := a.Annotate(context.Background(), text)
	require.NoError(t, err)
	require.NotEmpty(t, ann.Entities)

	lastEnd := 0
	for i, e := range ann.Entities {
		assert.Equal(t, text[e.Start:e.End], e.Text, "entity %d", i)
		assert.GreaterOrEqual(t, e.Start, lastEnd, "entity %d overlaps previous", i)
		lastEnd = e.End
	}
}

func TestAnnotateOverlapLongerWins(t *testing.T) {
	// The URL contains date-like digits; the URL match must win
	text := "Archived at https://example.com/2024-03-15/report yesterday."
	a := NewAnnotator(nil)
	ann, err := a.Annotate(context.Background(), text)
	require.NoError(t, err)
	require.Len(t, ann.Entities, 1)
	assert.Equal(t, "URL", ann.Entities[0].Label)
	assert.Equal(t, "https://example.com/2024-03-15/report", ann.Entities[0].Text)
}

func TestAnnotateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewAnnotator(nil)
	_, err := a.Annotate(ctx, "some text")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnnotatorImplementsInterface(t *testing.T) {
	var a ner.Annotator = NewAnnotator(nil)
	require.NoError(t, a.Close())
}

func TestResolveOverlaps(t *testing.T) {
	entities := []ner.Entity{
		{Text: "bbbb", Label: "DATE", Start: 2, End: 6},
		{Text: "aaaaaaaa", Label: "URL", Start: 0, End: 8},
		{Text: "cc", Label: "MONEY", Start: 10, End: 12},
	}

	got := resolveOverlaps(entities)
	require.Len(t, got, 2)
	assert.Equal(t, "URL", got[0].Label)
	assert.Equal(t, "MONEY", got[1].Label)
}

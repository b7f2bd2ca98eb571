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

package translit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLatinSerbian(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "basic word",
			in:   "Београд",
			want: "Beograd",
		},
		{
			name: "digraph title case",
			in:   "Љубазни фењерџија",
			want: "Ljubazni fenjerdžija",
		},
		{
			name: "digraph in all caps run",
			in:   "ЉУБА",
			want: "LJUBA",
		},
		{
			name: "special letters",
			in:   "Ђоковић чђжшћ",
			want: "Đoković čđžšć",
		},
		{
			name: "latin passes through",
			in:   "Beograd је main град",
			want: "Beograd je main grad",
		},
		{
			name: "digits and punctuation untouched",
			in:   "Цена: 1.500 динара!",
			want: "Cena: 1.500 dinara!",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToLatin(tt.in, "sr")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToLatinRussian(t *testing.T) {
	got, err := ToLatin("Москва", "ru")
	require.NoError(t, err)
	assert.Equal(t, "Moskva", got)

	got, err = ToLatin("Хорошо, что живёшь", "ru")
	require.NoError(t, err)
	assert.Equal(t, "Horosho, chto zhivyosh", got)
}

func TestToLatinMacedonian(t *testing.T) {
	got, err := ToLatin("Скопје", "mk")
	require.NoError(t, err)
	assert.Equal(t, "Skopje", got)
}

func TestToLatinMontenegrinAliasesSerbian(t *testing.T) {
	sr, err := ToLatin("Подгорица", "sr")
	require.NoError(t, err)
	me, err := ToLatin("Подгорица", "me")
	require.NoError(t, err)
	assert.Equal(t, sr, me)
}

func TestToLatinUnsupportedLanguage(t *testing.T) {
	_, err := ToLatin("текст", "xx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestSupported(t *testing.T) {
	langs := Supported()
	assert.Equal(t, []string{"bg", "kk", "me", "mk", "ru", "sr", "uk"}, langs)

	for _, code := range langs {
		assert.True(t, IsSupported(code))
	}
	assert.False(t, IsSupported("en"))
}

func TestContainsCyrillic(t *testing.T) {
	assert.True(t, ContainsCyrillic("mixed текст here"))
	assert.False(t, ContainsCyrillic("plain latin only"))
	assert.False(t, ContainsCyrillic(""))
}

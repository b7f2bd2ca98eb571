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

// Per-language Cyrillic→Latin tables. Keys are Cyrillic runes, values the
// Latin replacement (one or more runes, title case for uppercase keys).
// Runes absent from a table pass through unchanged. Hard and soft signs
// map to the empty string where the target orthography drops them.

// serbianToLatin covers Serbian (sr) and Montenegrin (me) Cyrillic.
// Gaj's Latin alphabet: each letter has a 1:1 or digraph equivalent.
var serbianToLatin = map[rune]string{
	'А': "A", 'а': "a",
	'Б': "B", 'б': "b",
	'В': "V", 'в': "v",
	'Г': "G", 'г': "g",
	'Д': "D", 'д': "d",
	'Ђ': "Đ", 'ђ': "đ",
	'Е': "E", 'е': "e",
	'Ж': "Ž", 'ж': "ž",
	'З': "Z", 'з': "z",
	'И': "I", 'и': "i",
	'Ј': "J", 'ј': "j",
	'К': "K", 'к': "k",
	'Л': "L", 'л': "l",
	'Љ': "Lj", 'љ': "lj",
	'М': "M", 'м': "m",
	'Н': "N", 'н': "n",
	'Њ': "Nj", 'њ': "nj",
	'О': "O", 'о': "o",
	'П': "P", 'п': "p",
	'Р': "R", 'р': "r",
	'С': "S", 'с': "s",
	'Т': "T", 'т': "t",
	'Ћ': "Ć", 'ћ': "ć",
	'У': "U", 'у': "u",
	'Ф': "F", 'ф': "f",
	'Х': "H", 'х': "h",
	'Ц': "C", 'ц': "c",
	'Ч': "Č", 'ч': "č",
	'Џ': "Dž", 'џ': "dž",
	'Ш': "Š", 'ш': "š",
}

// macedonianToLatin covers Macedonian (mk) Cyrillic.
var macedonianToLatin = map[rune]string{
	'А': "A", 'а': "a",
	'Б': "B", 'б': "b",
	'В': "V", 'в': "v",
	'Г': "G", 'г': "g",
	'Д': "D", 'д': "d",
	'Ѓ': "Gj", 'ѓ': "gj",
	'Е': "E", 'е': "e",
	'Ж': "Ž", 'ж': "ž",
	'З': "Z", 'з': "z",
	'Ѕ': "Dz", 'ѕ': "dz",
	'И': "I", 'и': "i",
	'Ј': "J", 'ј': "j",
	'К': "K", 'к': "k",
	'Л': "L", 'л': "l",
	'Љ': "Lj", 'љ': "lj",
	'М': "M", 'м': "m",
	'Н': "N", 'н': "n",
	'Њ': "Nj", 'њ': "nj",
	'О': "O", 'о': "o",
	'П': "P", 'п': "p",
	'Р': "R", 'р': "r",
	'С': "S", 'с': "s",
	'Т': "T", 'т': "t",
	'Ќ': "Kj", 'ќ': "kj",
	'У': "U", 'у': "u",
	'Ф': "F", 'ф': "f",
	'Х': "H", 'х': "h",
	'Ц': "C", 'ц': "c",
	'Ч': "Č", 'ч': "č",
	'Џ': "Dž", 'џ': "dž",
	'Ш': "Š", 'ш': "š",
}

// russianToLatin covers Russian (ru) Cyrillic. Hard and soft signs are
// dropped; iotated vowels become digraphs.
var russianToLatin = map[rune]string{
	'А': "A", 'а': "a",
	'Б': "B", 'б': "b",
	'В': "V", 'в': "v",
	'Г': "G", 'г': "g",
	'Д': "D", 'д': "d",
	'Е': "E", 'е': "e",
	'Ё': "Yo", 'ё': "yo",
	'Ж': "Zh", 'ж': "zh",
	'З': "Z", 'з': "z",
	'И': "I", 'и': "i",
	'Й': "J", 'й': "j",
	'К': "K", 'к': "k",
	'Л': "L", 'л': "l",
	'М': "M", 'м': "m",
	'Н': "N", 'н': "n",
	'О': "O", 'о': "o",
	'П': "P", 'п': "p",
	'Р': "R", 'р': "r",
	'С': "S", 'с': "s",
	'Т': "T", 'т': "t",
	'У': "U", 'у': "u",
	'Ф': "F", 'ф': "f",
	'Х': "H", 'х': "h",
	'Ц': "C", 'ц': "c",
	'Ч': "Ch", 'ч': "ch",
	'Ш': "Sh", 'ш': "sh",
	'Щ': "Shch", 'щ': "shch",
	'Ъ': "", 'ъ': "",
	'Ы': "Y", 'ы': "y",
	'Ь': "", 'ь': "",
	'Э': "E", 'э': "e",
	'Ю': "Yu", 'ю': "yu",
	'Я': "Ya", 'я': "ya",
}

// ukrainianToLatin covers Ukrainian (uk) Cyrillic.
var ukrainianToLatin = map[rune]string{
	'А': "A", 'а': "a",
	'Б': "B", 'б': "b",
	'В': "V", 'в': "v",
	'Г': "H", 'г': "h",
	'Ґ': "G", 'ґ': "g",
	'Д': "D", 'д': "d",
	'Е': "E", 'е': "e",
	'Є': "Ye", 'є': "ye",
	'Ж': "Zh", 'ж': "zh",
	'З': "Z", 'з': "z",
	'И': "Y", 'и': "y",
	'І': "I", 'і': "i",
	'Ї': "Yi", 'ї': "yi",
	'Й': "Y", 'й': "y",
	'К': "K", 'к': "k",
	'Л': "L", 'л': "l",
	'М': "M", 'м': "m",
	'Н': "N", 'н': "n",
	'О': "O", 'о': "o",
	'П': "P", 'п': "p",
	'Р': "R", 'р': "r",
	'С': "S", 'с': "s",
	'Т': "T", 'т': "t",
	'У': "U", 'у': "u",
	'Ф': "F", 'ф': "f",
	'Х': "Kh", 'х': "kh",
	'Ц': "Ts", 'ц': "ts",
	'Ч': "Ch", 'ч': "ch",
	'Ш': "Sh", 'ш': "sh",
	'Щ': "Shch", 'щ': "shch",
	'Ь': "", 'ь': "",
	'Ю': "Yu", 'ю': "yu",
	'Я': "Ya", 'я': "ya",
}

// kazakhToLatin covers Kazakh (kk) Cyrillic, following the 2021 Latin
// alphabet for the Kazakh-specific letters.
var kazakhToLatin = map[rune]string{
	'А': "A", 'а': "a",
	'Ә': "Ä", 'ә': "ä",
	'Б': "B", 'б': "b",
	'В': "V", 'в': "v",
	'Г': "G", 'г': "g",
	'Ғ': "Ğ", 'ғ': "ğ",
	'Д': "D", 'д': "d",
	'Е': "E", 'е': "e",
	'Ё': "Yo", 'ё': "yo",
	'Ж': "J", 'ж': "j",
	'З': "Z", 'з': "z",
	'И': "İ", 'и': "i",
	'Й': "Y", 'й': "y",
	'К': "K", 'к': "k",
	'Қ': "Q", 'қ': "q",
	'Л': "L", 'л': "l",
	'М': "M", 'м': "m",
	'Н': "N", 'н': "n",
	'Ң': "Ñ", 'ң': "ñ",
	'О': "O", 'о': "o",
	'Ө': "Ö", 'ө': "ö",
	'П': "P", 'п': "p",
	'Р': "R", 'р': "r",
	'С': "S", 'с': "s",
	'Т': "T", 'т': "t",
	'У': "U", 'у': "u",
	'Ұ': "Ū", 'ұ': "ū",
	'Ү': "Ü", 'ү': "ü",
	'Ф': "F", 'ф': "f",
	'Х': "H", 'х': "h",
	'Һ': "H", 'һ': "h",
	'Ц': "Ts", 'ц': "ts",
	'Ч': "Ch", 'ч': "ch",
	'Ш': "Ş", 'ш': "ş",
	'Щ': "Shch", 'щ': "shch",
	'Ъ': "", 'ъ': "",
	'Ы': "Y", 'ы': "y",
	'І': "I", 'і': "i",
	'Ь': "", 'ь': "",
	'Э': "E", 'э': "e",
	'Ю': "Yu", 'ю': "yu",
	'Я': "Ya", 'я': "ya",
}

// bulgarianToLatin covers Bulgarian (bg) Cyrillic, following the official
// streamlined system (Ъ→A, Щ→Sht).
var bulgarianToLatin = map[rune]string{
	'А': "A", 'а': "a",
	'Б': "B", 'б': "b",
	'В': "V", 'в': "v",
	'Г': "G", 'г': "g",
	'Д': "D", 'д': "d",
	'Е': "E", 'е': "e",
	'Ж': "Zh", 'ж': "zh",
	'З': "Z", 'з': "z",
	'И': "I", 'и': "i",
	'Й': "Y", 'й': "y",
	'К': "K", 'к': "k",
	'Л': "L", 'л': "l",
	'М': "M", 'м': "m",
	'Н': "N", 'н': "n",
	'О': "O", 'о': "o",
	'П': "P", 'п': "p",
	'Р': "R", 'р': "r",
	'С': "S", 'с': "s",
	'Т': "T", 'т': "t",
	'У': "U", 'у': "u",
	'Ф': "F", 'ф': "f",
	'Х': "H", 'х': "h",
	'Ц': "Ts", 'ц': "ts",
	'Ч': "Ch", 'ч': "ch",
	'Ш': "Sh", 'ш': "sh",
	'Щ': "Sht", 'щ': "sht",
	'Ъ': "A", 'ъ': "a",
	'Ь': "Y", 'ь': "y",
	'Ю': "Yu", 'ю': "yu",
	'Я': "Ya", 'я': "ya",
}

// tables maps supported language codes to their conversion table.
// Montenegrin shares the Serbian table; its two extra letters (ś, ź) are
// written with combining accents in Cyrillic and pass through unchanged.
var tables = map[string]map[rune]string{
	"sr": serbianToLatin,
	"me": serbianToLatin,
	"mk": macedonianToLatin,
	"ru": russianToLatin,
	"uk": ukrainianToLatin,
	"kk": kazakhToLatin,
	"bg": bulgarianToLatin,
}

// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package condition

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownLabel is shown for conditions that were not delivered at all.
const UnknownLabel = "Tidak Diketahui"

// labelRules are checked in order, the first contained pattern wins.
var labelRules = []Rule[string]{
	{"light rain", "Hujan Ringan"},
	{"drizzle", "Hujan Ringan"},
	{"moderate rain", "Hujan"},
	{"rain", "Hujan"},
	{"heavy rain", "Hujan Lebat"},
	{"downpour", "Hujan Lebat"},
	{"partly cloudy", "Sebagian Berawan"},
	{"sebagian berawan", "Sebagian Berawan"},
	{"mostly cloudy", "Berawan"},
	{"berawan", "Berawan"},
	{"overcast", "Mendung"},
	{"clear", "Cerah"},
	{"sunny", "Cerah"},
	{"cerah", "Cerah"},
	{"fog", "Berkabut"},
	{"mist", "Berkabut"},
	{"thunderstorm", "Badai Petir"},
	{"petir", "Badai Petir"},
}

// DisplayLabel converts a raw condition text into an Indonesian display label. Texts that match
// no rule are returned with the first letter upper-cased and the rest lower-cased.
func DisplayLabel(raw string) string {
	switch strings.TrimSpace(raw) {
	case "", "undefined", "null":
		return UnknownLabel
	}
	if label, ok := Match(labelRules, raw); ok {
		return label
	}
	return capitalize(raw)
}

func capitalize(val string) string {
	first, size := utf8.DecodeRuneInString(val)
	return string(unicode.ToUpper(first)) + strings.ToLower(val[size:])
}

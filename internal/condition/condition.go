// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package condition classifies the free-text weather conditions delivered by the prediction
// backend. The texts mix Indonesian and English vocabulary.
package condition

import (
	"strings"
)

// Category is the coarse, canonical weather condition used for icons and animations.
type Category string

const (
	Rain    Category = "rain"
	Sunny   Category = "sunny"
	Cloudy  Category = "cloudy"
	Unknown Category = "unknown"

	// Default is the dominant condition of an empty forecast set. It is not a result of Classify.
	Default Category = "default"
)

// Categories lists the categories in their enumeration order. Ties between categories are
// resolved in this order.
var Categories = []Category{Rain, Sunny, Cloudy, Unknown}

// Rule maps a lower-case substring to a result.
type Rule[T any] struct {
	Pattern string
	Result  T
}

// categoryRules are checked in order, rain beats sunny beats cloudy.
var categoryRules = []Rule[Category]{
	{"hujan", Rain},
	{"rain", Rain},
	{"drizzle", Rain},
	{"shower", Rain},
	{"gerimis", Rain},
	{"cerah", Sunny},
	{"sunny", Sunny},
	{"clear", Sunny},
	{"berawan", Cloudy},
	{"cloud", Cloudy},
	{"overcast", Cloudy},
	{"mendung", Cloudy},
}

// Match returns the result of the first rule whose pattern is contained in the lower-cased
// input. The second return value reports whether any rule matched.
func Match[T any](rules []Rule[T], raw string) (T, bool) {
	var zero T
	if raw == "" {
		return zero, false
	}
	lower := strings.ToLower(raw)
	for _, rule := range rules {
		if strings.Contains(lower, rule.Pattern) {
			return rule.Result, true
		}
	}
	return zero, false
}

// Classify maps a raw condition text to its Category. Empty or unmatched texts are Unknown.
func Classify(raw string) Category {
	if cat, ok := Match(categoryRules, raw); ok {
		return cat
	}
	return Unknown
}

// Index returns the position of the category in Categories or -1.
func (c Category) Index() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return -1
}

func (c Category) String() string {
	return string(c)
}

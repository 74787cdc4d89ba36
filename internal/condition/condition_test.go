// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package condition

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Category
	}{
		{"indonesian light rain", "Hujan Ringan", Rain},
		{"indonesian partly cloudy", "Sebagian Berawan", Cloudy},
		{"empty condition", "", Unknown},
		{"english rain", "Rain, Partially cloudy", Rain},
		{"drizzle", "drizzle", Rain},
		{"showers", "Scattered Showers", Rain},
		{"gerimis", "gerimis", Rain},
		{"clear sky", "Clear", Sunny},
		{"sunny upper case", "SUNNY", Sunny},
		{"cerah berawan prefers sunny", "Cerah Berawan", Sunny},
		{"overcast", "Overcast", Cloudy},
		{"mendung", "mendung", Cloudy},
		{"fog is unknown", "Fog", Unknown},
		{"undefined is unknown", "undefined", Unknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.raw); got != tc.want {
				t.Errorf("expected category for %q to be %s, got %s", tc.raw, tc.want, got)
			}
		})
	}
}

func TestDisplayLabel(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"light rain", "Light Rain", "Hujan Ringan"},
		{"drizzle", "drizzle", "Hujan Ringan"},
		{"moderate rain", "Moderate rain", "Hujan"},
		{"heavy rain matches rain first", "Heavy Rain", "Hujan"},
		{"downpour", "downpour", "Hujan Lebat"},
		{"partly cloudy", "Partly Cloudy", "Sebagian Berawan"},
		{"mostly cloudy", "mostly cloudy", "Berawan"},
		{"overcast", "Overcast", "Mendung"},
		{"clear", "clear", "Cerah"},
		{"fog", "Fog", "Berkabut"},
		{"mist", "mist", "Berkabut"},
		{"thunderstorm", "Thunderstorm", "Badai Petir"},
		{"petir", "hujan petir", "Badai Petir"},
		{"unmatched text is capitalized", "sNOW", "Snow"},
		{"unmatched unicode text", "éclair", "Éclair"},
		{"empty", "", UnknownLabel},
		{"undefined", "undefined", UnknownLabel},
		{"null", "null", UnknownLabel},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DisplayLabel(tc.raw); got != tc.want {
				t.Errorf("expected label for %q to be %q, got %q", tc.raw, tc.want, got)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	rules := []Rule[int]{{"ab", 1}, {"a", 2}}
	t.Run("first matching rule wins", func(t *testing.T) {
		got, ok := Match(rules, "xABx")
		if !ok {
			t.Fatal("expected a match")
		}
		if got != 1 {
			t.Errorf("expected result to be 1, got %d", got)
		}
	})
	t.Run("no match returns the zero value", func(t *testing.T) {
		got, ok := Match(rules, "xyz")
		if ok {
			t.Error("expected no match")
		}
		if got != 0 {
			t.Errorf("expected zero result, got %d", got)
		}
	})
}

func TestCategory_Index(t *testing.T) {
	for i, cat := range Categories {
		if got := cat.Index(); got != i {
			t.Errorf("expected index of %s to be %d, got %d", cat, i, got)
		}
	}
	if got := Default.Index(); got != -1 {
		t.Errorf("expected index of default category to be -1, got %d", got)
	}
}

func TestWindCategory(t *testing.T) {
	tests := []struct {
		speed float64
		want  string
	}{
		{0, "Tenang"},
		{5, "Tenang"},
		{5.1, "Lemah"},
		{15, "Lemah"},
		{20, "Sedang"},
		{31, "Kencang"},
		{50, "Kencang"},
		{51, "Sangat Kencang"},
	}
	for _, tc := range tests {
		if got := WindCategory(tc.speed); got != tc.want {
			t.Errorf("expected wind category for %.1f to be %q, got %q", tc.speed, tc.want, got)
		}
	}
}

func TestUVText(t *testing.T) {
	tests := []struct {
		index float64
		want  string
	}{
		{0, "Rendah"},
		{2, "Rendah"},
		{3, "Sedang"},
		{7, "Tinggi"},
		{10, "Sangat Tinggi"},
		{11, "Ekstrem"},
	}
	for _, tc := range tests {
		if got := UVText(tc.index); got != tc.want {
			t.Errorf("expected UV text for %.1f to be %q, got %q", tc.index, tc.want, got)
		}
	}
}

func TestIcon(t *testing.T) {
	if Icon(Rain) == Icon(Sunny) {
		t.Error("expected rain and sunny icons to differ")
	}
	if Icon(Unknown) != Icon(Default) {
		t.Error("expected unknown and default icons to be equal")
	}
}

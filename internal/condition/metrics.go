// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package condition

// WindCategory returns the Indonesian wind strength label for a wind speed in km/h.
func WindCategory(kmh float64) string {
	switch {
	case kmh > 50:
		return "Sangat Kencang"
	case kmh > 30:
		return "Kencang"
	case kmh > 15:
		return "Sedang"
	case kmh > 5:
		return "Lemah"
	default:
		return "Tenang"
	}
}

// UVText returns the Indonesian risk label for a UV index.
func UVText(index float64) string {
	switch {
	case index <= 2:
		return "Rendah"
	case index <= 5:
		return "Sedang"
	case index <= 7:
		return "Tinggi"
	case index <= 10:
		return "Sangat Tinggi"
	default:
		return "Ekstrem"
	}
}

var categoryIcons = map[Category]string{
	Rain:   "🌧️",
	Sunny:  "☀️",
	Cloudy: "☁️",
}

// Icon returns the emoji for a category. Unknown and Default use the cloud with sun.
func Icon(c Category) string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return "⛅"
}

// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"github.com/vorlif/spreak/localize"

	"github.com/wneessen/cuaca/internal/condition"
)

// MoonPhaseIcon is a map where moon phase names are keys and their corresponding emoji representations are values.
var MoonPhaseIcon = map[string]string{
	"New Moon":        "🌑",
	"Waxing Crescent": "🌒",
	"First Quarter":   "🌓",
	"Waxing Gibbous":  "🌔",
	"Full Moon":       "🌕",
	"Waning Gibbous":  "🌖",
	"Third Quarter":   "🌗",
	"Waning Crescent": "🌘",
}

// categoryLabels are the display labels of the dominant condition of an hourly forecast
var categoryLabels = map[condition.Category]string{
	condition.Rain:   "Hujan",
	condition.Sunny:  "Cerah",
	condition.Cloudy: "Berawan",
}

// i18nVars maps the keys usable with the loc template function to their message IDs
var i18nVars = map[string]localize.MsgID{
	"temp":            "Temperature",
	"humidity":        "Humidity",
	"wind":            "Wind",
	"uvindex":         "UV index",
	"visibility":      "Visibility",
	"pressure":        "Pressure",
	"feelslike":       "Feels like",
	"sunrise":         "Sunrise",
	"sunset":          "Sunset",
	"prediction":      "Prediction",
	"avgtemp":         "Average temperature",
	"avghumidity":     "Average humidity",
	"rainyhours":      "Rainy hours",
	"hourlyforecast":  "Hourly forecast",
	"dailyforecast":   "Daily forecast",
	"moonphase":       "Moon phase",
	"new moon":        "New moon",
	"waxing crescent": "Waxing crescent",
	"first quarter":   "First quarter",
	"waxing gibbous":  "Waxing gibbous",
	"full moon":       "Full moon",
	"waning gibbous":  "Waning gibbous",
	"third quarter":   "Third quarter",
	"waning crescent": "Waning crescent",
}

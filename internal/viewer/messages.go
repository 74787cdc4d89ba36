// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package viewer

import (
	"github.com/vorlif/spreak/localize"

	"github.com/wneessen/cuaca/internal/condition"
)

// errorMessages picks the user facing text for a failed fetch by the keywords in the error text.
// The first matching rule wins.
var errorMessages = []condition.Rule[localize.MsgID]{
	{Pattern: "fetch", Result: "Could not connect to the weather server. Check your internet connection."},
	{Pattern: "json", Result: "The received weather data is invalid. Please try again."},
	{Pattern: "404", Result: "The weather prediction service is currently unavailable."},
	{Pattern: "500", Result: "The weather server is experiencing problems. Please try again in a moment."},
}

// ErrorMessage returns the localized message for a failed fetch.
func (a *App) ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg, ok := condition.Match(errorMessages, err.Error()); ok {
		return a.localizer.Get(msg)
	}
	return a.localizer.Get("An error occurred in the weather application.") + " " +
		a.localizer.Get("Please try again.")
}

func (a *App) fetchErrorMessage(title string, err error) string {
	return title + "\n" + a.ErrorMessage(err)
}

func (a *App) invalidDateMessage() string {
	return a.localizer.Getf("Invalid date. Please choose a date from today up to %d days ahead.",
		a.conf.Forecast.MaxDaysAhead)
}

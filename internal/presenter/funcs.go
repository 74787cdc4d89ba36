// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"math"
	"strings"
	"text/template"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/vorlif/humanize"
	"golang.org/x/text/language"

	"github.com/wneessen/cuaca/internal/condition"
	"github.com/wneessen/cuaca/internal/weather"
)

func (p *Presenter) templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"timeFormat":    p.timeFormat,
		"localizedTime": p.localizedTime,
		"localizedDate": p.localizedDate,
		"floatFormat":   p.floatFormat,
		"round":         p.round,
		"loc":           p.loc,
		"lc":            strings.ToLower,
		"uc":            strings.ToUpper,
		"pad":           pad,
		"label":         condition.DisplayLabel,
		"windCategory":  condition.WindCategory,
		"uvText":        condition.UVText,
	}
}

func (p *Presenter) loc(val string) string {
	val = strings.ToLower(val)
	if raw, ok := i18nVars[val]; ok {
		return p.localizer.Get(raw)
	}
	return val
}

func (p *Presenter) localizedTime(val time.Time) string {
	if p.isIndonesian() {
		return val.In(p.location).Format("15.04")
	}
	return p.humanizer.FormatTime(val.In(p.location), humanize.TimeFormat)
}

func (p *Presenter) localizedDate(val time.Time) string {
	if p.isIndonesian() {
		return weather.FormatDate(val)
	}
	return val.Format("Monday, 2 January 2006")
}

func (p *Presenter) timeFormat(val time.Time, fmt string) string {
	return val.In(p.location).Format(fmt)
}

func (p *Presenter) floatFormat(val float64, precision int) string {
	pow := math.Pow(10, float64(precision))
	return fmt.Sprintf("%.*f", precision, math.Trunc(val*pow)/pow)
}

func (p *Presenter) round(val float64) string {
	return fmt.Sprintf("%.0f", math.Round(val))
}

func (p *Presenter) isIndonesian() bool {
	base, _ := p.tag.Base()
	indonesian, _ := language.Indonesian.Base()
	return base == indonesian
}

// pad fills val with spaces up to the given terminal cell width. Wide runes such as emoji count
// with their display width.
func pad(val string, width int) string {
	w := runewidth.StringWidth(val)
	if w >= width {
		return val + " "
	}
	return val + strings.Repeat(" ", width-w)
}

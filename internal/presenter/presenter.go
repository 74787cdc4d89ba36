// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"bytes"
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/vorlif/humanize"
	"github.com/vorlif/spreak"
	"github.com/wneessen/go-moonphase"
	"golang.org/x/text/language"

	"github.com/wneessen/cuaca/internal/animation"
	"github.com/wneessen/cuaca/internal/condition"
	"github.com/wneessen/cuaca/internal/config"
	"github.com/wneessen/cuaca/internal/i18n"
	"github.com/wneessen/cuaca/internal/vartype"
	"github.com/wneessen/cuaca/internal/weather"
)

// Defaults applied to absent values at render time
const (
	DefaultVisibility = 10
	DefaultPressure   = 1013
)

// CardView is a single hour of the forecast, prepared for display.
type CardView struct {
	Index     int
	Hour      string
	DayName   string
	Date      time.Time
	Condition string
	Label     string
	Icon      string
	Category  condition.Category

	Temperature float64
	FeelsLike   float64
	Humidity    float64
	WindSpeed   float64
	UVIndex     float64
	Visibility  float64
	Pressure    float64
	TempText    string
	HasUV       bool

	WindCategory    string
	UVText          string
	ModelPrediction string
	Description     string

	Focused  bool
	Selected bool
	Marker   string
}

// Screen carries the fields shared by all screens.
type Screen struct {
	Location        string
	PageClass       string
	Animation       animation.Animation
	AnimationBanner string
}

// Astro holds the sun and moon data of a date at the configured location.
type Astro struct {
	SunriseTime   time.Time
	SunsetTime    time.Time
	MoonPhase     string
	MoonPhaseIcon string
}

type DailyContext struct {
	Screen
	Astro
	Date            time.Time
	Condition       string
	Label           string
	Icon            string
	Temperature     float64
	FeelsLike       float64
	Humidity        float64
	WindSpeed       float64
	UVIndex         float64
	Visibility      float64
	Pressure        float64
	WindCategory    string
	UVText          string
	Description     string
	ModelPrediction string
	Probability     vartype.VarFloat64
}

type HourlyContext struct {
	Screen
	Date          time.Time
	Current       CardView
	Stats         weather.Stats
	DominantLabel string
	Cards         []CardView
}

type DetailContext struct {
	Screen
	Astro
	Card     CardView
	Position int
	Total    int
}

// Marks exposes the focus and selection marks of the hourly grid.
type Marks interface {
	Focused() int
	Selected() int
}

type Presenter struct {
	DailyTemplate   *template.Template
	HourlyTemplate  *template.Template
	DetailTemplate  *template.Template
	TooltipTemplate *template.Template

	localizer *spreak.Localizer
	humanizer *humanize.Humanizer
	tag       language.Tag
	banner    animation.Renderer

	locationName string
	latitude     float64
	longitude    float64
	location     *time.Location
}

// New parses the configured templates and checks that they render.
func New(conf *config.Config, loc *spreak.Localizer) (*Presenter, error) {
	tag, err := i18n.Tag(conf.Locale)
	if err != nil {
		return nil, err
	}
	pres := &Presenter{
		localizer:    loc,
		humanizer:    humanize.MustNew().CreateHumanizer(tag),
		tag:          tag,
		banner:       animation.Banner{},
		locationName: conf.Location.Name,
		latitude:     conf.Location.Latitude,
		longitude:    conf.Location.Longitude,
		location:     conf.TimeZone(),
	}

	templates := []struct {
		name   string
		text   string
		target **template.Template
		data   any
	}{
		{"daily", conf.Templates.Daily, &pres.DailyTemplate, DailyContext{}},
		{"hourly", conf.Templates.Hourly, &pres.HourlyTemplate, HourlyContext{Cards: []CardView{{}}}},
		{"detail", conf.Templates.Detail, &pres.DetailTemplate, DetailContext{}},
		{"tooltip", conf.Templates.Tooltip, &pres.TooltipTemplate, CardView{}},
	}
	for _, tpl := range templates {
		parsed, err := template.New(tpl.name).Funcs(pres.templateFuncMap()).Parse(tpl.text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", tpl.name, err)
		}
		if err = parsed.Execute(io.Discard, tpl.data); err != nil {
			return nil, fmt.Errorf("failed to render %s template: %w", tpl.name, err)
		}
		*tpl.target = parsed
	}

	return pres, nil
}

// BuildDaily prepares the daily summary screen.
func (p *Presenter) BuildDaily(daily *weather.DailyForecast, date time.Time, anim animation.Animation,
	pageClass string,
) DailyContext {
	ctx := DailyContext{
		Screen: p.screen(anim, pageClass),
		Astro:  p.astro(date),
		Date:   date,
	}
	if daily == nil {
		return ctx
	}

	obs := daily.Observation
	ctx.Condition = daily.PredictedCondition
	ctx.Label = condition.DisplayLabel(daily.PredictedCondition)
	ctx.Icon = condition.Icon(condition.Classify(daily.PredictedCondition))
	ctx.Temperature = obs.Temperature.Value()
	ctx.FeelsLike = obs.FeelsLike.ValueOr(ctx.Temperature)
	ctx.Humidity = obs.Humidity.Value()
	ctx.WindSpeed = obs.WindSpeed.Value()
	ctx.UVIndex = obs.UVIndex.Value()
	ctx.Visibility = obs.Visibility.ValueOr(DefaultVisibility)
	ctx.Pressure = obs.Pressure.ValueOr(DefaultPressure)
	ctx.WindCategory = condition.WindCategory(ctx.WindSpeed)
	ctx.UVText = condition.UVText(ctx.UVIndex)
	ctx.Description = obs.Description
	ctx.ModelPrediction = daily.ModelPredictionResult
	ctx.Probability = daily.ModelProbability
	return ctx
}

// BuildHourly prepares the hourly grid screen.
func (p *Presenter) BuildHourly(set *weather.ForecastSet, stats weather.Stats, marks Marks,
	anim animation.Animation, pageClass string,
) HourlyContext {
	ctx := HourlyContext{
		Screen:        p.screen(anim, pageClass),
		Stats:         stats,
		DominantLabel: dominantLabel(stats.DominantCondition),
		Cards:         make([]CardView, 0, set.Len()),
	}
	if set == nil {
		return ctx
	}

	ctx.Date = set.BaseDate
	for _, rec := range set.Records {
		focused, selected := false, false
		if marks != nil {
			focused = marks.Focused() == rec.Offset
			selected = marks.Selected() == rec.Offset
		}
		ctx.Cards = append(ctx.Cards, p.BuildCard(rec, focused, selected))
	}
	if len(ctx.Cards) > 0 {
		ctx.Current = ctx.Cards[0]
	}
	return ctx
}

// BuildDetail prepares the single hour screen for the card at index.
func (p *Presenter) BuildDetail(set *weather.ForecastSet, index int, anim animation.Animation,
	pageClass string,
) (DetailContext, bool) {
	rec, ok := set.At(index)
	if !ok {
		return DetailContext{}, false
	}
	return DetailContext{
		Screen:   p.screen(anim, pageClass),
		Astro:    p.astro(rec.CalendarDate),
		Card:     p.BuildCard(rec, false, true),
		Position: index + 1,
		Total:    set.Len(),
	}, true
}

// BuildCard prepares a single hour record. Absent values are replaced by their defaults.
func (p *Presenter) BuildCard(rec weather.HourRecord, focused, selected bool) CardView {
	card := CardView{
		Index:           rec.Offset,
		Hour:            rec.Hour,
		DayName:         rec.DayName,
		Date:            rec.CalendarDate,
		Condition:       rec.Condition,
		Label:           condition.DisplayLabel(rec.Condition),
		Category:        rec.Category(),
		Temperature:     rec.Temperature.Value(),
		FeelsLike:       rec.FeelsLike.ValueOr(rec.Temperature.Value()),
		Humidity:        rec.Humidity.Value(),
		WindSpeed:       rec.WindSpeed.Value(),
		UVIndex:         rec.UVIndex.Value(),
		Visibility:      rec.Visibility.ValueOr(DefaultVisibility),
		Pressure:        rec.Pressure.ValueOr(DefaultPressure),
		HasUV:           rec.UVIndex.IsSet(),
		ModelPrediction: rec.ModelPredictionResult,
		Description:     rec.Description,
		Focused:         focused,
		Selected:        selected,
		Marker:          " ",
	}
	card.Icon = condition.Icon(card.Category)
	card.WindCategory = condition.WindCategory(card.WindSpeed)
	card.UVText = condition.UVText(card.UVIndex)
	card.TempText = "N/A"
	if rec.Temperature.IsSet() {
		card.TempText = p.round(card.Temperature) + "°C"
	}
	switch {
	case focused:
		card.Marker = ">"
	case selected:
		card.Marker = "*"
	}
	return card
}

func (p *Presenter) RenderDaily(ctx DailyContext) (string, error) {
	return render(p.DailyTemplate, ctx)
}

func (p *Presenter) RenderHourly(ctx HourlyContext) (string, error) {
	return render(p.HourlyTemplate, ctx)
}

func (p *Presenter) RenderDetail(ctx DetailContext) (string, error) {
	return render(p.DetailTemplate, ctx)
}

func (p *Presenter) RenderTooltip(card CardView) (string, error) {
	return render(p.TooltipTemplate, card)
}

func (p *Presenter) screen(anim animation.Animation, pageClass string) Screen {
	return Screen{
		Location:        p.locationName,
		PageClass:       pageClass,
		Animation:       anim,
		AnimationBanner: p.banner.Render(anim),
	}
}

func (p *Presenter) astro(date time.Time) Astro {
	local := date.In(p.location)
	rise, set := sunrise.SunriseSunset(p.latitude, p.longitude, local.Year(), local.Month(), local.Day())
	moon := moonphase.New(time.Date(local.Year(), local.Month(), local.Day(), 12, 0, 0, 0, p.location))
	return Astro{
		SunriseTime:   rise.In(p.location),
		SunsetTime:    set.In(p.location),
		MoonPhase:     moon.PhaseName(),
		MoonPhaseIcon: MoonPhaseIcon[moon.PhaseName()],
	}
}

func dominantLabel(cat condition.Category) string {
	if label, ok := categoryLabels[cat]; ok {
		return label
	}
	return condition.UnknownLabel
}

func render(tpl *template.Template, data any) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := tpl.Execute(buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", tpl.Name(), err)
	}
	return buf.String(), nil
}

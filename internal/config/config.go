// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // the location time zone must resolve on systems without zoneinfo

	"github.com/kkyr/fig"
)

const (
	configEnv = "CUACA"

	DefaultDailyTpl = `{{.AnimationBanner}}
{{.Location}} - {{localizedDate .Date}}
{{.Icon}} {{uc .Label}}   {{round .Temperature}}°C ({{loc "feelslike"}} {{round .FeelsLike}}°C)
{{loc "humidity"}}: {{round .Humidity}}%  {{loc "wind"}}: {{.WindCategory}}  {{loc "uvindex"}}: {{.UVText}}
{{loc "visibility"}}: {{round .Visibility}} km  {{loc "pressure"}}: {{round .Pressure}} hPa
{{loc "sunrise"}}: {{timeFormat .SunriseTime "15:04"}}  {{loc "sunset"}}: {{timeFormat .SunsetTime "15:04"}}  {{.MoonPhaseIcon}} {{loc .MoonPhase}}
{{loc "prediction"}}: {{.ModelPrediction}}{{if .Probability.IsSet}} ({{floatFormat .Probability.Value 1}}%){{end}}
`
	DefaultHourlyTpl = `{{.AnimationBanner}}
{{.Location}} - {{localizedDate .Date}}
{{.Current.Icon}} {{uc .Current.Label}}   {{round .Current.Temperature}}° ({{loc "feelslike"}} {{round .Current.FeelsLike}}°C)
{{loc "avgtemp"}}: {{round .Stats.TempAverage}}°C  {{loc "avghumidity"}}: {{round .Stats.HumidityAverage}}%  {{loc "rainyhours"}}: {{.Stats.RainyHourCount}}
{{range .Cards}}{{.Marker}} {{pad (printf "%d" .Index) 3}}{{pad .Hour 6}}{{pad .Icon 3}}{{pad .TempText 6}}{{pad .Label 18}}{{round .Humidity}}% | {{round .WindSpeed}} km/h
{{end}}`
	DefaultDetailTpl = `{{.AnimationBanner}}
{{loc "hourlyforecast"}} > {{.Card.Hour}} ({{.Position}}/{{.Total}})
{{.Location}} - {{.Card.DayName}}, {{localizedDate .Card.Date}} {{.Card.Hour}}
{{.Card.Icon}} {{uc .Card.Label}}   {{.Card.TempText}} ({{loc "feelslike"}} {{round .Card.FeelsLike}}°C)
{{loc "humidity"}}: {{round .Card.Humidity}}%  {{loc "wind"}}: {{.Card.WindCategory}}  {{loc "uvindex"}}: {{.Card.UVText}}
{{loc "visibility"}}: {{round .Card.Visibility}} km  {{loc "pressure"}}: {{round .Card.Pressure}} hPa
{{loc "sunrise"}}: {{timeFormat .SunriseTime "15:04"}}  {{loc "sunset"}}: {{timeFormat .SunsetTime "15:04"}}  {{.MoonPhaseIcon}} {{loc .MoonPhase}}
{{loc "prediction"}}: {{.Card.ModelPrediction}}
`
	DefaultTooltipTpl = `[{{.Hour}} - {{.Label}}] {{loc "temp"}}: {{round .Temperature}}°C, {{loc "humidity"}}: {{round .Humidity}}%, {{loc "wind"}}: {{round .WindSpeed}} km/h{{if .HasUV}}, UV: {{.UVText}}{{end}}
`
)

// Config represents the application's configuration structure.
type Config struct {
	Locale   string     `fig:"locale"`
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	Backend struct {
		URL     string        `fig:"url" default:"http://localhost:5000"`
		Timeout time.Duration `fig:"timeout" default:"15s"`
		// Requests per second towards the backend, 0 disables the limit
		RateLimit float64 `fig:"rate_limit" default:"2"`
		Burst     int     `fig:"burst" default:"2"`
	} `fig:"backend"`

	Location struct {
		Name      string  `fig:"name" default:"Ambon, Maluku"`
		Latitude  float64 `fig:"latitude" default:"-3.6954"`
		Longitude float64 `fig:"longitude" default:"128.1814"`
		Timezone  string  `fig:"timezone" default:"Asia/Jayapura"`
	} `fig:"location"`

	Forecast struct {
		// Allowed value: 0 to 23
		DefaultStartHour int `fig:"default_start_hour" default:"12"`
		// Allowed value: 0 to 366
		MaxDaysAhead int `fig:"max_days_ahead" default:"30"`
	} `fig:"forecast"`

	UI struct {
		TooltipDelay      time.Duration `fig:"tooltip_delay" default:"2s"`
		NotificationDelay time.Duration `fig:"notification_delay" default:"3s"`
		SwipeThreshold    float64       `fig:"swipe_threshold" default:"100"`
	} `fig:"ui"`

	Templates struct {
		Daily   string `fig:"daily"`
		Hourly  string `fig:"hourly"`
		Detail  string `fig:"detail"`
		Tooltip string `fig:"tooltip"`
	} `fig:"templates"`
}

func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.Locale == "" {
		c.Locale = getLocale()
	}

	backend, err := url.Parse(c.Backend.URL)
	if err != nil {
		return fmt.Errorf("invalid backend URL: %w", err)
	}
	if backend.Scheme != "http" && backend.Scheme != "https" || backend.Host == "" {
		return fmt.Errorf("invalid backend URL: %s", c.Backend.URL)
	}
	c.Backend.URL = strings.TrimRight(c.Backend.URL, "/")
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("invalid backend timeout: %s", c.Backend.Timeout)
	}
	if c.Backend.RateLimit < 0 {
		return fmt.Errorf("invalid backend rate limit: %f", c.Backend.RateLimit)
	}
	if c.Backend.Burst < 1 {
		return fmt.Errorf("invalid backend burst: %d", c.Backend.Burst)
	}

	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("invalid latitude: %f", c.Location.Latitude)
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("invalid longitude: %f", c.Location.Longitude)
	}
	if _, err = time.LoadLocation(c.Location.Timezone); err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}

	if c.Forecast.DefaultStartHour < 0 || c.Forecast.DefaultStartHour > 23 {
		return fmt.Errorf("invalid default start hour: %d", c.Forecast.DefaultStartHour)
	}
	if c.Forecast.MaxDaysAhead < 0 || c.Forecast.MaxDaysAhead > 366 {
		return fmt.Errorf("invalid max days ahead: %d", c.Forecast.MaxDaysAhead)
	}

	if c.UI.TooltipDelay <= 0 {
		return fmt.Errorf("invalid tooltip delay: %s", c.UI.TooltipDelay)
	}
	if c.UI.NotificationDelay <= 0 {
		return fmt.Errorf("invalid notification delay: %s", c.UI.NotificationDelay)
	}
	if c.UI.SwipeThreshold <= 0 {
		return fmt.Errorf("invalid swipe threshold: %f", c.UI.SwipeThreshold)
	}

	if c.Templates.Daily == "" {
		c.Templates.Daily = DefaultDailyTpl
	}
	if c.Templates.Hourly == "" {
		c.Templates.Hourly = DefaultHourlyTpl
	}
	if c.Templates.Detail == "" {
		c.Templates.Detail = DefaultDetailTpl
	}
	if c.Templates.Tooltip == "" {
		c.Templates.Tooltip = DefaultTooltipTpl
	}

	return nil
}

// TimeZone returns the time zone of the configured location. Validate guarantees that the
// name resolves, UTC is returned for configs that were never validated.
func (c *Config) TimeZone() *time.Location {
	loc, err := time.LoadLocation(c.Location.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getLocale() string {
	locale := os.Getenv("LC_MESSAGES")
	if idx := strings.Index(locale, "."); idx != -1 {
		lang := locale[:idx]
		return strings.ReplaceAll(lang, "_", "-")
	}
	return locale
}

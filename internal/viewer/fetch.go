// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package viewer

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/wneessen/cuaca/internal/condition"
	"github.com/wneessen/cuaca/internal/logger"
	"github.com/wneessen/cuaca/internal/weather"
)

// SubmitDaily validates the date and fetches the daily prediction in the background.
func (a *App) SubmitDaily(ctx context.Context, dateVal string) {
	if apply := a.requestDaily(ctx, dateVal); apply != nil {
		go func() { a.post(apply()) }()
	}
}

// SubmitHourly validates the date and fetches the hourly prediction in the background.
func (a *App) SubmitHourly(ctx context.Context, dateVal, hourVal string) {
	if apply := a.requestHourly(ctx, dateVal, hourVal); apply != nil {
		go func() { a.post(apply()) }()
	}
}

// requestDaily returns the blocking fetch of a daily query. The fetch returns the task that
// applies its result. Nil is returned for invalid input, no request is made in that case and
// the current screen stays as it is.
func (a *App) requestDaily(ctx context.Context, dateVal string) func() func() {
	date, err := a.parseDate(dateVal)
	if err != nil {
		a.logger.Debug("daily query rejected", logger.Err(err))
		a.message = a.invalidDateMessage()
		a.render()
		return nil
	}

	a.seq++
	seq := a.seq
	a.println(a.localizer.Get("Fetching daily weather data..."))
	a.logger.Debug("fetching daily prediction", slog.String("date", date.Format(weather.DateFormat)),
		slog.Uint64("seq", seq))

	return func() func() {
		daily, err := a.provider.Daily(ctx, date)
		return func() { a.applyDaily(seq, date, daily, err) }
	}
}

func (a *App) requestHourly(ctx context.Context, dateVal, hourVal string) func() func() {
	date, err := a.parseDate(dateVal)
	if err != nil {
		a.logger.Debug("hourly query rejected", logger.Err(err))
		a.message = a.invalidDateMessage()
		a.render()
		return nil
	}
	hour := weather.ParseStartHour(hourVal, a.conf.Forecast.DefaultStartHour)

	a.seq++
	seq := a.seq
	a.println(a.localizer.Get("Fetching hourly prediction..."))
	a.logger.Debug("fetching hourly prediction", slog.String("date", date.Format(weather.DateFormat)),
		slog.Int("start_hour", hour), slog.Uint64("seq", seq))

	return func() func() {
		raw, err := a.provider.Hourly(ctx, date)
		return func() { a.applyHourly(seq, date, hour, raw, err) }
	}
}

func (a *App) applyDaily(seq uint64, date time.Time, daily *weather.DailyForecast, err error) {
	if !a.latest(seq) {
		return
	}
	a.view.EnterDaily()
	if err != nil {
		a.logger.Error("failed to fetch daily prediction", logger.Err(err))
		a.dailyErr = a.fetchErrorMessage(a.localizer.Get("Failed to fetch the daily prediction"), err)
		a.render()
		return
	}

	a.dailyErr = ""
	a.daily = daily
	a.dailyDate = date
	a.view.SetCondition(condition.Classify(daily.PredictedCondition))
	a.render()
}

func (a *App) applyHourly(seq uint64, date time.Time, hour int, raw json.RawMessage, err error) {
	if !a.latest(seq) {
		return
	}
	if err != nil {
		a.logger.Error("failed to fetch hourly prediction", logger.Err(err))
		a.failHourly(a.fetchErrorMessage(a.localizer.Get("Failed to fetch the hourly prediction"), err))
		a.render()
		return
	}

	set, err := a.store.Load(raw, hour, date)
	if err != nil {
		a.logger.Error("failed to load hourly prediction", logger.Err(err))
		a.failHourly(a.fetchErrorMessage(a.localizer.Get("Failed to fetch the hourly prediction"), err))
		a.render()
		return
	}

	a.hourlyErr = ""
	a.stats = weather.ComputeStats(set)
	a.view.EnterHourlyGrid()
	a.nav.Reset(set.Len())
	a.nav.JumpTo(0)
	a.view.SetCondition(a.stats.DominantCondition)
	a.logger.Debug("hourly prediction loaded", slog.Int("hours", set.Len()),
		slog.String("dominant", a.stats.DominantCondition.String()))
	a.notify(a.localizer.Get("Hourly prediction loaded successfully!"))
	a.render()
}

// failHourly shows an hourly error. The previous set is kept but cannot be navigated.
func (a *App) failHourly(msg string) {
	a.hourlyErr = msg
	a.view.EnterHourlyGrid()
	a.nav.Deactivate()
	a.view.ClearCondition()
}

// latest reports whether seq belongs to the most recent submission. Older responses are dropped.
func (a *App) latest(seq uint64) bool {
	if seq != a.seq {
		a.logger.Debug("discarding stale response", slog.Uint64("seq", seq), slog.Uint64("latest", a.seq))
		return false
	}
	return true
}

func (a *App) parseDate(val string) (time.Time, error) {
	now := a.today()
	if val == "" {
		return weather.StartOfDay(now), nil
	}
	return weather.ParseDate(val, now, a.conf.Forecast.MaxDaysAhead)
}

// notify shows a notification that dismisses itself after the configured delay.
func (a *App) notify(msg string) {
	if a.dismissNotice != nil {
		a.dismissNotice()
		a.dismissNotice = nil
	}
	a.notification = msg

	cancel, err := loopTimers{a}.After(a.conf.UI.NotificationDelay, "notification_dismiss_timer", func() {
		a.notification = ""
		a.dismissNotice = nil
	})
	if err != nil {
		a.logger.Warn("failed to schedule notification dismissal", logger.Err(err))
		return
	}
	a.dismissNotice = cancel
}

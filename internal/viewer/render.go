// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package viewer

import (
	"log/slog"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/wneessen/cuaca/internal/logger"
	"github.com/wneessen/cuaca/internal/view"
)

const rule = "────────────────────────────────────────"

// render prints the screen of the current view mode followed by any open message.
func (a *App) render() {
	screen, err := a.screen()
	if err != nil {
		a.logger.Error("failed to render screen", logger.Err(err), slog.String("mode", a.view.Mode().String()))
		screen = a.ErrorMessage(err)
	}

	a.println(rule, "["+a.view.PageClass()+"]")
	if screen != "" {
		a.println(strings.TrimRight(screen, "\n"))
	}
	if a.message != "" {
		a.println(box(a.message, a.localizer.Get("Type 'ok' to dismiss this message.")))
	}
	if a.notification != "" {
		a.println("✔ " + a.notification)
	}
}

func (a *App) screen() (string, error) {
	switch a.view.Mode() {
	case view.HourlyGrid:
		if a.hourlyErr != "" {
			return box(a.hourlyErr, a.localizer.Get("Type 'ok' to dismiss this message.")), nil
		}
		set := a.store.Current()
		if set.Len() == 0 {
			return a.localizer.Get("No hourly forecast loaded."), nil
		}
		grid, err := a.presenter.RenderHourly(a.presenter.BuildHourly(set, a.stats, a.nav, a.view.Animation(),
			a.view.PageClass()))
		if err != nil {
			return "", err
		}
		if index, ok := a.nav.Tooltip(); ok {
			if rec, ok := set.At(index); ok {
				tooltip, err := a.presenter.RenderTooltip(a.presenter.BuildCard(rec, a.nav.Focused() == index,
					a.nav.Selected() == index))
				if err != nil {
					return "", err
				}
				grid += "\n" + tooltip
			}
		}
		return grid, nil
	case view.HourDetail:
		index, _ := a.view.DetailIndex()
		ctx, ok := a.presenter.BuildDetail(a.store.Current(), index, a.view.Animation(), a.view.PageClass())
		if !ok {
			return a.localizer.Get("No hourly forecast loaded."), nil
		}
		return a.presenter.RenderDetail(ctx)
	default:
		if a.dailyErr != "" {
			return box(a.dailyErr, a.localizer.Get("Type 'ok' to dismiss this message.")), nil
		}
		if a.daily == nil {
			return "", nil
		}
		return a.presenter.RenderDaily(a.presenter.BuildDaily(a.daily, a.dailyDate, a.view.Animation(),
			a.view.PageClass()))
	}
}

// box frames the given lines.
func box(lines ...string) string {
	var all []string
	for _, line := range lines {
		all = append(all, strings.Split(line, "\n")...)
	}
	width := 0
	for _, line := range all {
		width = max(width, runewidth.StringWidth(line))
	}

	var sb strings.Builder
	sb.WriteString("┌" + strings.Repeat("─", width+2) + "┐\n")
	for _, line := range all {
		sb.WriteString("│ " + runewidth.FillRight(line, width) + " │\n")
	}
	sb.WriteString("└" + strings.Repeat("─", width+2) + "┘")
	return sb.String()
}

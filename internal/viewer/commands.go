// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package viewer

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/wneessen/cuaca/internal/logger"
	"github.com/wneessen/cuaca/internal/navigation"
	"github.com/wneessen/cuaca/internal/view"
)

var keyCommands = map[string]navigation.Key{
	"left":  navigation.KeyLeft,
	"right": navigation.KeyRight,
	"home":  navigation.KeyHome,
	"end":   navigation.KeyEnd,
	"enter": navigation.KeyEnter,
	"space": navigation.KeySpace,
	"esc":   navigation.KeyEscape,
	"back":  navigation.KeyEscape,
}

// Execute runs a single command line. It reports whether the viewer should quit.
func (a *App) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	if key, ok := keyCommands[cmd]; ok {
		a.apply(a.nav.HandleKey(key, a.view.Mode() == view.HourDetail))
		a.render()
		return false
	}

	switch cmd {
	case "quit", "exit", "q":
		return true
	case "daily":
		a.SubmitDaily(ctx, arg(args, 0))
	case "hourly":
		a.SubmitHourly(ctx, arg(args, 0), arg(args, 1))
	case "click":
		index, err := strconv.Atoi(arg(args, 0))
		if err != nil {
			a.message = a.localizer.Getf("Unknown command: %s", line)
			break
		}
		if a.view.Mode() != view.HourlyGrid || !a.nav.State().ViewActive {
			break
		}
		if index < 0 || index >= a.nav.Len() {
			a.message = a.localizer.Get("The data for the selected hour is not available.")
			break
		}
		a.apply(a.nav.Click(index))
	case "swipe":
		dx, errX := strconv.ParseFloat(arg(args, 0), 64)
		dy, errY := strconv.ParseFloat(arg(args, 1), 64)
		if errX != nil || errY != nil {
			a.message = a.localizer.Getf("Unknown command: %s", line)
			break
		}
		a.apply(a.nav.HandleSwipe(dx, dy, a.view.Mode() == view.HourDetail))
	case "ok":
		a.dismiss()
	case "help", "?":
		a.help()
		return false
	default:
		a.message = a.localizer.Getf("Unknown command: %s", cmd)
	}

	if cmd != "daily" && cmd != "hourly" {
		a.render()
	}
	return false
}

// apply performs the view change requested by the navigation controller.
func (a *App) apply(action navigation.Action) {
	var err error
	switch action {
	case navigation.ActionOpenDetail:
		index := a.nav.State().Index
		rec, ok := a.store.Current().At(index)
		if !ok {
			return
		}
		err = a.view.OpenDetail(index, rec.Category())
	case navigation.ActionReturnToGrid:
		err = a.view.ReturnToGrid(a.stats.DominantCondition)
	default:
		return
	}
	if err != nil {
		a.logger.Warn("failed to change view", logger.Err(err), slog.String("mode", a.view.Mode().String()))
	}
}

// dismiss closes the message box of the current screen.
func (a *App) dismiss() {
	a.message = ""
	switch a.view.Mode() {
	case view.Daily:
		a.dailyErr = ""
	default:
		a.hourlyErr = ""
	}
}

func (a *App) help() {
	rows := []struct {
		cmd  string
		desc string
	}{
		{"daily [YYYY-MM-DD]", "show the daily prediction"},
		{"hourly [YYYY-MM-DD] [HOUR]", "show the hourly prediction"},
		{"left / right", "move the focus between hours"},
		{"home / end", "jump to the first or last hour"},
		{"enter / space", "open the detail of the focused hour"},
		{"esc / back", "return to the hourly overview"},
		{"click N", "open the detail of the hour numbered N in the grid"},
		{"swipe DX DY", "swipe gesture"},
		{"ok", "dismiss the message"},
		{"quit", "exit"},
	}
	a.println(a.localizer.Get("Commands") + ":")
	for _, row := range rows {
		a.printf("  %-28s %s\n", row.cmd, a.localizer.Get(row.desc))
	}
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

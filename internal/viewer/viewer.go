// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package viewer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/vorlif/spreak"

	"github.com/wneessen/cuaca/internal/config"
	"github.com/wneessen/cuaca/internal/logger"
	"github.com/wneessen/cuaca/internal/navigation"
	"github.com/wneessen/cuaca/internal/presenter"
	"github.com/wneessen/cuaca/internal/timer"
	"github.com/wneessen/cuaca/internal/view"
	"github.com/wneessen/cuaca/internal/weather"
)

const eventQueueSize = 64

// Timers schedules one-shot tasks.
type Timers interface {
	After(delay time.Duration, name string, task func()) (timer.Cancel, error)
}

// App is the interactive forecast viewer. All of its state is owned by the goroutine running
// Run, fetches and timers post their results to it.
type App struct {
	conf      *config.Config
	provider  weather.Provider
	presenter *presenter.Presenter
	localizer *spreak.Localizer
	logger    *logger.Logger
	clock     clockwork.Clock
	timers    Timers
	out       io.Writer

	store *weather.Store
	nav   *navigation.Controller
	view  *view.Controller
	stats weather.Stats

	daily     *weather.DailyForecast
	dailyDate time.Time
	dailyErr  string
	hourlyErr string
	message   string

	notification  string
	dismissNotice timer.Cancel

	seq    uint64
	events chan func()
	done   <-chan struct{}
}

// Option configures an App.
type Option func(*App)

// WithClock sets the clock used to determine today.
func WithClock(clock clockwork.Clock) Option {
	return func(a *App) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// WithOutput sets the writer the screens are printed to.
func WithOutput(out io.Writer) Option {
	return func(a *App) {
		if out != nil {
			a.out = out
		}
	}
}

// New returns an App showing the empty daily screen.
func New(conf *config.Config, provider weather.Provider, pres *presenter.Presenter, loc *spreak.Localizer,
	log *logger.Logger, timers Timers, opts ...Option,
) *App {
	app := &App{
		conf:      conf,
		provider:  provider,
		presenter: pres,
		localizer: loc,
		logger:    log,
		clock:     clockwork.NewRealClock(),
		timers:    timers,
		out:       io.Discard,
		store:     weather.NewStore(),
		events:    make(chan func(), eventQueueSize),
	}
	for _, opt := range opts {
		opt(app)
	}

	app.nav = navigation.New(loopTimers{app}, log,
		navigation.WithTooltipDelay(conf.UI.TooltipDelay),
		navigation.WithSwipeThreshold(conf.UI.SwipeThreshold),
	)
	app.view = view.New(app.nav)
	return app
}

// Run reads commands line by line from in and prints the resulting screens to out. It returns
// when the context is cancelled, the input is exhausted or the quit command was given.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if out != nil {
		a.out = out
	}
	a.done = ctx.Done()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	a.logger.Debug("viewer started", slog.String("location", a.conf.Location.Name))
	a.render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-a.events:
			event()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("failed to read command: %w", err)
					}
				default:
				}
				return nil
			}
			if quit := a.Execute(ctx, line); quit {
				return nil
			}
		}
	}
}

// post hands a task to the goroutine running Run.
func (a *App) post(task func()) {
	select {
	case a.events <- task:
	case <-a.done:
	}
}

// today returns the current time in the configured time zone.
func (a *App) today() time.Time {
	return a.clock.Now().In(a.conf.TimeZone())
}

func (a *App) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(a.out, format, args...); err != nil {
		a.logger.Error("failed to write output", logger.Err(err))
	}
}

func (a *App) println(lines ...string) {
	a.printf("%s\n", strings.Join(lines, "\n"))
}

// loopTimers runs timer tasks on the event loop.
type loopTimers struct {
	app *App
}

func (l loopTimers) After(delay time.Duration, name string, task func()) (timer.Cancel, error) {
	if l.app.timers == nil {
		return func() {}, nil
	}
	return l.app.timers.After(delay, name, func() { l.app.post(task) })
}

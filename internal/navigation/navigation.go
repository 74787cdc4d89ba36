// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package navigation

import (
	"log/slog"
	"math"
	"time"

	"github.com/wneessen/cuaca/internal/logger"
	"github.com/wneessen/cuaca/internal/timer"
)

const (
	DefaultTooltipDelay   = time.Second * 2
	DefaultSwipeThreshold = 100

	// NoCard marks the absence of a focused, selected or tooltip card.
	NoCard = -1
)

// Scheduler schedules the tooltip auto-hide. Scheduled tasks must run on the goroutine that
// owns the Controller.
type Scheduler interface {
	After(delay time.Duration, name string, task func()) (timer.Cancel, error)
}

// Action is the view change an input handler requests from its caller.
type Action int

const (
	ActionNone Action = iota
	ActionOpenDetail
	ActionReturnToGrid
)

// Key is a keyboard input.
type Key string

const (
	KeyLeft   Key = "left"
	KeyRight  Key = "right"
	KeyHome   Key = "home"
	KeyEnd    Key = "end"
	KeyEnter  Key = "enter"
	KeySpace  Key = "space"
	KeyEscape Key = "esc"
)

// FocusState is the focused card index and whether the hourly grid accepts navigation.
type FocusState struct {
	Index      int
	ViewActive bool
}

// Controller owns the focus state of the hourly card grid.
type Controller struct {
	length   int
	state    FocusState
	focused  int
	selected int

	tooltip     int
	tooltipGen  uint64
	hideTooltip timer.Cancel

	tooltipDelay   time.Duration
	swipeThreshold float64
	scheduler      Scheduler
	logger         *logger.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithTooltipDelay sets the delay after which a tooltip hides itself.
func WithTooltipDelay(delay time.Duration) Option {
	return func(c *Controller) {
		if delay > 0 {
			c.tooltipDelay = delay
		}
	}
}

// WithSwipeThreshold sets the minimal horizontal distance of a swipe.
func WithSwipeThreshold(threshold float64) Option {
	return func(c *Controller) {
		if threshold > 0 {
			c.swipeThreshold = threshold
		}
	}
}

// New returns a Controller for an empty, inactive grid.
func New(scheduler Scheduler, log *logger.Logger, opts ...Option) *Controller {
	c := &Controller{
		focused:        NoCard,
		selected:       NoCard,
		tooltip:        NoCard,
		tooltipDelay:   DefaultTooltipDelay,
		swipeThreshold: DefaultSwipeThreshold,
		scheduler:      scheduler,
		logger:         log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset prepares the controller for a newly loaded set of the given length. The focus returns
// to the first card and all marks are cleared.
func (c *Controller) Reset(length int) {
	c.length = max(length, 0)
	c.state.Index = 0
	c.focused = NoCard
	c.selected = NoCard
	c.clearTooltip()
}

// Activate enables grid navigation.
func (c *Controller) Activate() {
	c.state.ViewActive = true
}

// Deactivate disables grid navigation and hides the tooltip. The focus index is kept.
func (c *Controller) Deactivate() {
	c.state.ViewActive = false
	c.clearTooltip()
}

// Resume re-enables grid navigation and focuses the previously focused card.
func (c *Controller) Resume() {
	c.state.ViewActive = true
	c.JumpTo(c.state.Index)
}

func (c *Controller) State() FocusState {
	return c.state
}

func (c *Controller) Len() int {
	return c.length
}

// Focused returns the index of the card carrying the focus mark or NoCard.
func (c *Controller) Focused() int {
	return c.focused
}

// Selected returns the index of the selected card or NoCard.
func (c *Controller) Selected() int {
	return c.selected
}

// Tooltip returns the index of the card whose tooltip is visible.
func (c *Controller) Tooltip() (int, bool) {
	return c.tooltip, c.tooltip != NoCard
}

// MoveBy moves the focus by delta cards. The index is clamped to the grid, never wrapped.
func (c *Controller) MoveBy(delta int) {
	if c.length == 0 {
		return
	}
	c.JumpTo(c.state.Index + delta)
}

// JumpTo focuses the card at index, clamped to the grid, and shows its tooltip.
func (c *Controller) JumpTo(index int) {
	if c.length == 0 {
		return
	}
	c.state.Index = c.clamp(index)
	c.focused = c.state.Index
	c.showTooltip(c.state.Index)
}

// Select moves to the card at index and marks it selected. The focus mark is cleared.
func (c *Controller) Select(index int) {
	if c.length == 0 {
		return
	}
	c.state.Index = c.clamp(index)
	c.focused = NoCard
	c.selected = c.state.Index
	c.showTooltip(c.state.Index)
}

// Click focuses the card at index and requests its detail view. Indexes outside the grid are
// ignored.
func (c *Controller) Click(index int) Action {
	if !c.state.ViewActive || index < 0 || index >= c.length {
		return ActionNone
	}
	c.JumpTo(index)
	return ActionOpenDetail
}

// HandleKey applies a key press. Escape is the only key honored while the detail view is open,
// all other keys are ignored unless the grid is active.
func (c *Controller) HandleKey(key Key, detailOpen bool) Action {
	if detailOpen {
		if key == KeyEscape {
			return ActionReturnToGrid
		}
		return ActionNone
	}
	if !c.state.ViewActive {
		return ActionNone
	}

	switch key {
	case KeyLeft:
		c.MoveBy(-1)
	case KeyRight:
		c.MoveBy(1)
	case KeyHome:
		c.JumpTo(0)
	case KeyEnd:
		c.JumpTo(c.length - 1)
	case KeyEnter, KeySpace:
		if c.length == 0 {
			return ActionNone
		}
		c.Select(c.state.Index)
		return ActionOpenDetail
	}
	return ActionNone
}

// HandleSwipe applies a swipe gesture with the given travel distances. Only horizontal swipes
// longer than the threshold count. A right swipe moves back in the grid or closes the detail
// view, a left swipe moves forward in the grid.
func (c *Controller) HandleSwipe(dx, dy float64, detailOpen bool) Action {
	if math.Abs(dx) <= math.Abs(dy) || math.Abs(dx) <= c.swipeThreshold {
		return ActionNone
	}
	if detailOpen {
		if dx > 0 {
			return ActionReturnToGrid
		}
		return ActionNone
	}
	if !c.state.ViewActive {
		return ActionNone
	}

	if dx > 0 {
		c.MoveBy(-1)
	} else {
		c.MoveBy(1)
	}
	return ActionNone
}

func (c *Controller) clamp(index int) int {
	return min(max(index, 0), c.length-1)
}

func (c *Controller) showTooltip(index int) {
	c.cancelTooltipTimer()
	c.tooltipGen++
	c.tooltip = index
	if c.scheduler == nil {
		return
	}

	gen := c.tooltipGen
	cancel, err := c.scheduler.After(c.tooltipDelay, "tooltip_hide_timer", func() {
		if c.tooltipGen == gen {
			c.tooltip = NoCard
			c.hideTooltip = nil
		}
	})
	if err != nil {
		c.logger.Warn("failed to schedule tooltip auto-hide", logger.Err(err), slog.Int("card", index))
		return
	}
	c.hideTooltip = cancel
}

func (c *Controller) clearTooltip() {
	c.cancelTooltipTimer()
	c.tooltipGen++
	c.tooltip = NoCard
}

func (c *Controller) cancelTooltipTimer() {
	if c.hideTooltip != nil {
		c.hideTooltip()
		c.hideTooltip = nil
	}
}

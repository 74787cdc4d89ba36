// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package view

import (
	"errors"
	"fmt"

	"github.com/wneessen/cuaca/internal/animation"
	"github.com/wneessen/cuaca/internal/condition"
)

const (
	classPrefix = "weather-"
	classGrid   = "weekly-forecast-background"
)

// ErrIllegalTransition is returned for mode changes that the current mode does not allow.
var ErrIllegalTransition = errors.New("illegal view transition")

// Mode is the active presentation.
type Mode int

const (
	Daily Mode = iota
	HourlyGrid
	HourDetail
)

func (m Mode) String() string {
	switch m {
	case Daily:
		return "daily"
	case HourlyGrid:
		return "hourly-grid"
	case HourDetail:
		return "hour-detail"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Grid is the navigable hourly card grid whose activity follows the view mode.
type Grid interface {
	Activate()
	Deactivate()
	Resume()
}

// Controller holds the current view mode and the condition that drives the animation.
type Controller struct {
	grid        Grid
	mode        Mode
	detailIndex int
	category    condition.Category
	animation   animation.Animation
}

// New returns a Controller in daily mode without animation.
func New(grid Grid) *Controller {
	return &Controller{
		grid:        grid,
		mode:        Daily,
		detailIndex: -1,
		category:    condition.Default,
		animation:   animation.None,
	}
}

func (c *Controller) Mode() Mode {
	return c.mode
}

// DetailIndex returns the card shown in the detail view.
func (c *Controller) DetailIndex() (int, bool) {
	return c.detailIndex, c.mode == HourDetail
}

func (c *Controller) Animation() animation.Animation {
	return c.animation
}

func (c *Controller) Category() condition.Category {
	return c.category
}

// EnterDaily switches to the daily summary. It is allowed from every mode.
func (c *Controller) EnterDaily() {
	c.mode = Daily
	c.detailIndex = -1
	c.grid.Deactivate()
	c.ClearCondition()
}

// EnterHourlyGrid switches to the hourly grid for a new hourly query. It is allowed from every
// mode. Use ReturnToGrid to leave the detail view.
func (c *Controller) EnterHourlyGrid() {
	c.mode = HourlyGrid
	c.detailIndex = -1
	c.grid.Activate()
	c.ClearCondition()
}

// OpenDetail shows the card at index. The animation follows the condition of that hour.
func (c *Controller) OpenDetail(index int, cat condition.Category) error {
	if c.mode != HourlyGrid {
		return fmt.Errorf("%w: cannot open the detail view from %s", ErrIllegalTransition, c.mode)
	}
	c.mode = HourDetail
	c.detailIndex = index
	c.grid.Deactivate()
	c.SetCondition(cat)
	return nil
}

// ReturnToGrid leaves the detail view. The grid restores its previous focus and the animation
// follows the given condition, usually the dominant condition of the set.
func (c *Controller) ReturnToGrid(cat condition.Category) error {
	if c.mode != HourDetail {
		return fmt.Errorf("%w: cannot return to the grid from %s", ErrIllegalTransition, c.mode)
	}
	c.mode = HourlyGrid
	c.detailIndex = -1
	c.grid.Resume()
	c.SetCondition(cat)
	return nil
}

// SetCondition selects the animation for the given category.
func (c *Controller) SetCondition(cat condition.Category) {
	c.category = cat
	c.animation = animation.Select(cat)
}

// ClearCondition stops any animation.
func (c *Controller) ClearCondition() {
	c.SetCondition(condition.Default)
}

// PageClass returns the styling class of the current screen.
func (c *Controller) PageClass() string {
	if c.mode == HourlyGrid {
		return classGrid
	}
	switch c.category {
	case condition.Rain, condition.Sunny, condition.Cloudy:
		return classPrefix + c.category.String()
	default:
		return classPrefix + condition.Default.String()
	}
}

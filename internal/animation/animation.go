// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package animation

import (
	"github.com/wneessen/cuaca/internal/condition"
)

// Animation is the decorative effect shown behind a forecast.
type Animation string

const (
	None   Animation = "none"
	Rain   Animation = "rain"
	Cloudy Animation = "cloudy"
	Sunny  Animation = "sunny"
)

// Renderer draws an animation. Implementations must accept None as a request to clear any
// running effect.
type Renderer interface {
	Render(Animation) string
}

// Select maps a condition category to its animation.
func Select(cat condition.Category) Animation {
	switch cat {
	case condition.Rain:
		return Rain
	case condition.Cloudy:
		return Cloudy
	case condition.Sunny:
		return Sunny
	default:
		return None
	}
}

// Banner is a Renderer that draws a single line of emoji.
type Banner struct{}

var banners = map[Animation]string{
	Rain:   "💧 💧 💧 💧 💧 💧 💧 💧",
	Cloudy: "☁️  ☁️  ☁️  ☁️",
	Sunny:  "☀️ ✨ ☀️ ✨ ☀️",
}

func (Banner) Render(a Animation) string {
	return banners[a]
}

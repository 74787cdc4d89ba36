// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package animation

import (
	"testing"

	"github.com/wneessen/cuaca/internal/condition"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		cat  condition.Category
		want Animation
	}{
		{condition.Rain, Rain},
		{condition.Sunny, Sunny},
		{condition.Cloudy, Cloudy},
		{condition.Unknown, None},
		{condition.Default, None},
		{condition.Category("snow"), None},
	}
	for _, tc := range tests {
		t.Run(string(tc.cat), func(t *testing.T) {
			if got := Select(tc.cat); got != tc.want {
				t.Errorf("expected animation for %s to be %s, got %s", tc.cat, tc.want, got)
			}
		})
	}
}

func TestBanner_Render(t *testing.T) {
	var renderer Renderer = Banner{}
	t.Run("none renders an empty banner", func(t *testing.T) {
		if got := renderer.Render(None); got != "" {
			t.Errorf("expected empty banner, got %q", got)
		}
	})
	t.Run("animations render a banner", func(t *testing.T) {
		for _, a := range []Animation{Rain, Cloudy, Sunny} {
			if renderer.Render(a) == "" {
				t.Errorf("expected banner for %s to be non-empty", a)
			}
		}
	})
}

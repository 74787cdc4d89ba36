// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/time/rate"

	"github.com/wneessen/cuaca/internal/weather"
)

// RateLimited wraps a weather.Provider with a request rate limit. It waits for a free slot,
// requests are never dropped or retried.
type RateLimited struct {
	provider weather.Provider
	limiter  *rate.Limiter
}

// NewRateLimited limits the provider to rps requests per second with the given burst. An rps
// of zero or less disables the limit.
func NewRateLimited(provider weather.Provider, rps float64, burst int) *RateLimited {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &RateLimited{
		provider: provider,
		limiter:  rate.NewLimiter(limit, max(burst, 1)),
	}
}

// Daily waits for the rate limiter and forwards to the provider.
func (r *RateLimited) Daily(ctx context.Context, date time.Time) (*weather.DailyForecast, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, &Error{Kind: NetworkFailure, Err: err}
	}
	return r.provider.Daily(ctx, date)
}

// Hourly waits for the rate limiter and forwards to the provider.
func (r *RateLimited) Hourly(ctx context.Context, date time.Time) (json.RawMessage, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, &Error{Kind: NetworkFailure, Err: err}
	}
	return r.provider.Hourly(ctx, date)
}

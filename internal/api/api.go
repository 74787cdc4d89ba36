// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wneessen/cuaca/internal/http"
	"github.com/wneessen/cuaca/internal/logger"
	"github.com/wneessen/cuaca/internal/weather"
)

const (
	pathDaily  = "/api/predict_weather"
	pathHourly = "/api/predict_weekly_weather"

	DefaultTimeout = time.Second * 15
)

// Client talks to the prediction backend.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	logger  *logger.Logger
}

type dailyResponse struct {
	weather.DailyForecast
	Error string `json:"error"`
}

type hourlyResponse struct {
	WeeklyForecast json.RawMessage `json:"weeklyForecast"`
	Error          string          `json:"error"`
}

// New returns a Client for the backend at baseURL. A timeout of zero selects DefaultTimeout.
func New(httpClient *http.Client, log *logger.Logger, baseURL string, timeout time.Duration) (*Client, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid backend URL: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http:    httpClient,
		logger:  log,
	}, nil
}

// Daily requests the daily prediction for the given date.
func (c *Client) Daily(ctx context.Context, date time.Time) (*weather.DailyForecast, error) {
	res := new(dailyResponse)
	if err := c.get(ctx, pathDaily, date, res, func() string { return res.Error }); err != nil {
		return nil, err
	}
	return &res.DailyForecast, nil
}

// Hourly requests the hourly prediction starting at the given date and returns the raw hourly
// array. A response without a weeklyForecast array is malformed.
func (c *Client) Hourly(ctx context.Context, date time.Time) (json.RawMessage, error) {
	res := new(hourlyResponse)
	if err := c.get(ctx, pathHourly, date, res, func() string { return res.Error }); err != nil {
		return nil, err
	}

	raw := bytes.TrimSpace(res.WeeklyForecast)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, &Error{
			Kind:   MalformedResponse,
			Status: nethttp.StatusOK,
			Err:    errors.New("weeklyForecast is missing or not an array"),
		}
	}
	return raw, nil
}

func (c *Client) get(ctx context.Context, path string, date time.Time, target any, errMsg func() string) error {
	query := url.Values{}
	query.Set("date", date.Format(weather.DateFormat))
	endpoint := c.baseURL + path

	c.logger.Debug("requesting prediction", slog.String("endpoint", endpoint),
		slog.String("date", query.Get("date")))
	status, err := c.http.GetWithTimeout(ctx, endpoint, target, query, c.timeout)
	switch {
	case status == 0:
		return &Error{Kind: NetworkFailure, Err: err}
	case status < 200 || status > 299:
		msg := ""
		if err == nil {
			msg = errMsg()
		}
		if msg == "" {
			msg = nethttp.StatusText(status)
		}
		return &Error{Kind: ServerError, Status: status, Message: msg, Err: err}
	case err != nil:
		return &Error{Kind: MalformedResponse, Status: status, Err: err}
	}
	return nil
}

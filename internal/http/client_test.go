// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	stdhttp "net/http"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/wneessen/cuaca/internal/logger"
	"github.com/wneessen/cuaca/internal/testhelper"
)

type testType struct {
	String string  `json:"string"`
	Int    int     `json:"int"`
	Float  float64 `json:"float"`
	Bool   bool    `json:"bool"`
}

const testFile = "../../testdata/testtype.json"

func TestNew(t *testing.T) {
	client := New(logger.New(slog.LevelInfo))
	if client == nil {
		t.Fatal("expected client to be non-nil")
	}
}

func TestClient_Get(t *testing.T) {
	t.Run("getting and serializing JSON should work", func(t *testing.T) {
		var gotQuery url.Values
		var gotAgent string
		rtFn := func(req *stdhttp.Request) (*stdhttp.Response, error) {
			gotQuery = req.URL.Query()
			gotAgent = req.Header.Get("User-Agent")
			data, err := os.Open(testFile)
			if err != nil {
				t.Fatalf("failed to open JSON response file: %s", err)
			}
			return &stdhttp.Response{
				StatusCode: 200,
				Body:       data,
				Header:     make(stdhttp.Header),
			}, nil
		}

		client := New(logger.New(slog.LevelInfo))
		client.Transport = testhelper.MockRoundTripper{Fn: rtFn}
		query := url.Values{}
		query.Add("date", "2026-10-18")

		target := new(testType)
		status, err := client.Get(t.Context(), "https://example.com/api/predict_weather", target, query)
		if err != nil {
			t.Fatalf("failed to get JSON response: %s", err)
		}
		if status != 200 {
			t.Errorf("expected status code 200, got %d", status)
		}
		if gotQuery.Get("date") != "2026-10-18" {
			t.Errorf("expected date query parameter to be sent, got %q", gotQuery.Get("date"))
		}
		if gotAgent != UserAgent {
			t.Errorf("expected user agent %q, got %q", UserAgent, gotAgent)
		}
		if target.String != "test" || target.Int != 123 || target.Float != 123.456 || !target.Bool {
			t.Errorf("unexpected decoded target: %+v", target)
		}
	})
	t.Run("status code is returned with a decoded error body", func(t *testing.T) {
		rtFn := func(req *stdhttp.Request) (*stdhttp.Response, error) {
			return &stdhttp.Response{
				StatusCode: 404,
				Body:       io.NopCloser(strings.NewReader(`{"error":"Data per jam tidak tersedia"}`)),
				Header:     make(stdhttp.Header),
			}, nil
		}
		client := New(logger.New(slog.LevelInfo))
		client.Transport = testhelper.MockRoundTripper{Fn: rtFn}

		target := &struct {
			Error string `json:"error"`
		}{}
		status, err := client.Get(t.Context(), "https://example.com", target, nil)
		if err != nil {
			t.Fatalf("expected no error, got %s", err)
		}
		if status != 404 {
			t.Errorf("expected status code 404, got %d", status)
		}
		if target.Error != "Data per jam tidak tersedia" {
			t.Errorf("expected error body to be decoded, got %q", target.Error)
		}
	})
	t.Run("non-JSON body fails with status code", func(t *testing.T) {
		rtFn := func(req *stdhttp.Request) (*stdhttp.Response, error) {
			return &stdhttp.Response{
				StatusCode: 502,
				Body:       io.NopCloser(strings.NewReader("<html>Bad Gateway</html>")),
				Header:     make(stdhttp.Header),
			}, nil
		}
		client := New(logger.New(slog.LevelInfo))
		client.Transport = testhelper.MockRoundTripper{Fn: rtFn}

		status, err := client.Get(t.Context(), "https://example.com", new(testType), nil)
		if err == nil {
			t.Fatal("expected decoding to fail")
		}
		if status != 502 {
			t.Errorf("expected status code 502, got %d", status)
		}
		if !strings.Contains(err.Error(), "JSON") {
			t.Errorf("expected error to mention JSON, got %s", err)
		}
	})
	t.Run("unmarshalling into non-pointer should fail", func(t *testing.T) {
		client := New(logger.New(slog.LevelInfo))
		var target testType
		_, err := client.Get(t.Context(), "https://example.com", target, nil)
		if !errors.Is(err, ErrNonPointerTarget) {
			t.Errorf("expected error to be %s, got %s", ErrNonPointerTarget, err)
		}
	})
	t.Run("parsing an invalid url should fail", func(t *testing.T) {
		client := New(logger.New(slog.LevelInfo))
		_, err := client.Get(t.Context(), "http://example.com/xyz%", new(testType), nil)
		if err == nil {
			t.Fatal("expected get to fail")
		}
		if !strings.Contains(err.Error(), "failed to parse URL") {
			t.Errorf("expected error to contain 'failed to parse URL', got %s", err)
		}
	})
	t.Run("get request fails", func(t *testing.T) {
		rtFn := func(req *stdhttp.Request) (*stdhttp.Response, error) {
			return nil, errors.New("intentionally failing")
		}
		client := New(logger.New(slog.LevelInfo))
		client.Transport = testhelper.MockRoundTripper{Fn: rtFn}

		status, err := client.Get(t.Context(), "https://example.com", new(testType), nil)
		if err == nil {
			t.Fatal("expected get request to fail")
		}
		if status != 0 {
			t.Errorf("expected status code 0, got %d", status)
		}
	})
	t.Run("failing body close is logged, not returned", func(t *testing.T) {
		rtFn := func(req *stdhttp.Request) (*stdhttp.Response, error) {
			return &stdhttp.Response{
				StatusCode: 200,
				Body:       &failCloser{Reader: strings.NewReader(`{"string":"ok"}`)},
				Header:     make(stdhttp.Header),
			}, nil
		}
		buf := &strings.Builder{}
		client := New(logger.NewLogger(slog.LevelInfo, buf))
		client.Transport = testhelper.MockRoundTripper{Fn: rtFn}

		target := new(testType)
		if _, err := client.Get(t.Context(), "https://example.com", target, nil); err != nil {
			t.Fatalf("expected get to succeed, got %s", err)
		}
		if !strings.Contains(buf.String(), "failed to close HTTP response body") {
			t.Errorf("expected close failure to be logged, got %q", buf.String())
		}
	})
}

func TestClient_GetWithTimeout(t *testing.T) {
	t.Run("get request fails on context cancel", func(t *testing.T) {
		testhelper.PerformIntegrationTests(t)
		client := New(logger.New(slog.LevelInfo))
		ctx, cancel := context.WithTimeout(t.Context(), time.Millisecond)
		defer cancel()

		_, err := client.GetWithTimeout(ctx, testhelper.TestOnlineAPIURL, new(testType), nil, time.Second*5)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected error to be %s, got %s", context.DeadlineExceeded, err)
		}
	})
	t.Run("get request honours the timeout", func(t *testing.T) {
		rtFn := func(req *stdhttp.Request) (*stdhttp.Response, error) {
			<-req.Context().Done()
			return nil, req.Context().Err()
		}
		client := New(logger.New(slog.LevelInfo))
		client.Transport = testhelper.MockRoundTripper{Fn: rtFn}

		_, err := client.GetWithTimeout(t.Context(), "https://example.com", new(testType), nil, time.Millisecond*10)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected error to be %s, got %s", context.DeadlineExceeded, err)
		}
	})
}

type failCloser struct {
	io.Reader
}

func (failCloser) Close() error { return errors.New("failed to close") }

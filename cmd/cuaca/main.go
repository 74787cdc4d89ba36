// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package main implements the cuaca forecast viewer.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/wneessen/cuaca/internal/api"
	"github.com/wneessen/cuaca/internal/config"
	"github.com/wneessen/cuaca/internal/http"
	"github.com/wneessen/cuaca/internal/i18n"
	"github.com/wneessen/cuaca/internal/logger"
	"github.com/wneessen/cuaca/internal/presenter"
	"github.com/wneessen/cuaca/internal/timer"
	"github.com/wneessen/cuaca/internal/viewer"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGABRT, os.Interrupt)
	defer cancel()

	// Initialize Logger
	log := logger.NewLogger(slog.LevelError)

	// Environment overrides from a .env file in the working directory
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("failed to load .env file", logger.Err(err))
	}

	// Read config
	confRead := false
	confPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	// Read default config
	conf, err := config.New()
	if err != nil {
		log.Error("failed to load config", logger.Err(err))
		os.Exit(1)
	}

	// If config file was specified, read it
	if *confPath != "" {
		conf, err = config.NewFromFile(filepath.Dir(*confPath), filepath.Base(*confPath))
		if err != nil {
			log.Error("failed to load config from file", logger.Err(err))
			os.Exit(1)
		}
		confRead = true
	}

	// Check if we have a config file in the default location
	if path, file := findConfigFile(); !confRead && (path != "" && file != "") {
		conf, err = config.NewFromFile(path, file)
		if err != nil {
			log.Error("failed to load config from file", logger.Err(err))
			os.Exit(1)
		}
	}

	log = logger.NewLogger(conf.LogLevel)
	t, err := i18n.New(conf.Locale)
	if err != nil {
		log.Error("failed to initialize localizer", logger.Err(err))
		os.Exit(1)
	}

	pres, err := presenter.New(conf, t)
	if err != nil {
		log.Error("failed to initialize templates", logger.Err(err))
		os.Exit(1)
	}

	client, err := api.New(http.New(log), log, conf.Backend.URL, conf.Backend.Timeout)
	if err != nil {
		log.Error("failed to initialize backend client", logger.Err(err))
		os.Exit(1)
	}
	provider := api.NewRateLimited(client, conf.Backend.RateLimit, conf.Backend.Burst)

	timers, err := timer.New(log, nil)
	if err != nil {
		log.Error("failed to initialize timers", logger.Err(err))
		os.Exit(1)
	}
	defer func() {
		if err := timers.Shutdown(); err != nil {
			log.Error("failed to shut down timers", logger.Err(err))
		}
	}()

	log.Info("starting cuaca", slog.String("version", version), slog.String("commit", commit),
		slog.String("date", date), slog.String("backend", conf.Backend.URL))
	app := viewer.New(conf, provider, pres, t, log, timers)
	if err = app.Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Error("viewer stopped unexpectedly", logger.Err(err))
	}
	log.Info("shutting down cuaca")
}

func findConfigFile() (string, string) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	exts := []string{"toml", "yaml", "yml", "json"}
	for _, ext := range exts {
		path := filepath.Join(homedir, ".config", "cuaca", "config."+ext)
		if _, err = os.Stat(path); err == nil {
			return filepath.Dir(path), filepath.Base(path)
		}
	}
	return "", ""
}

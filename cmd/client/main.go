// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bookmark-sync/internal/client"
	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/tui"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewClientLogger("bookmark-sync", cfg.Log.File)
	logger.SetLevel(cfg.Log.Level)
	log.Info().Str("build", buildInfo.String()).Str("command", cfg.Command).Msg("starting")

	if cfg.Command == "" || cfg.Command == client.CommandRun {
		fmt.Println(tui.RenderBuildInfo(buildInfo))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	app, err := client.NewApp(ctx, cfg, os.Stdout, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return err
	}
	defer app.Close()

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		return err
	}

	return nil
}
